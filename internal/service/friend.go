package service

import (
	"context"

	"github.com/ellenmartin11/newhaven-hangouts/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// FriendAPI определяет контракт удаленного API для управления друзьями
type FriendAPI interface {
	Friends(ctx context.Context) ([]models.Friend, error)
	FriendRequests(ctx context.Context) ([]models.FriendRequest, error)
	AddFriend(ctx context.Context, email string) (string, error)
	AcceptFriend(ctx context.Context, userID string) error
	RejectFriend(ctx context.Context, userID string) error
}

// FriendService - заявки в друзья: отправка по email, входящие, решения
type FriendService struct {
	api      FriendAPI
	logger   *logrus.Logger
	validate *validator.Validate
}

func NewFriendService(apiClient FriendAPI, logger *logrus.Logger) *FriendService {
	return &FriendService{
		api:      apiClient,
		logger:   logger,
		validate: validator.New(),
	}
}

// List возвращает подтвержденных друзей
func (s *FriendService) List(ctx context.Context) ([]models.Friend, error) {
	friends, err := s.api.Friends(ctx)
	if err != nil {
		s.log("List").WithError(err).Error("Failed to load friends")
		return nil, err
	}
	return friends, nil
}

// Requests возвращает входящие заявки, ожидающие решения
func (s *FriendService) Requests(ctx context.Context) ([]models.FriendRequest, error) {
	requests, err := s.api.FriendRequests(ctx)
	if err != nil {
		s.log("Requests").WithError(err).Error("Failed to load friend requests")
		return nil, err
	}
	return requests, nil
}

// Add отправляет заявку по email. Адрес проверяется до сетевого вызова.
// Возвращается сообщение сервера: заявка могла быть сразу принята.
func (s *FriendService) Add(ctx context.Context, email string) (string, error) {
	log := s.log("Add")
	if email == "" {
		return "", &ValidationError{Message: "Please enter an email address"}
	}
	if err := s.validate.Var(email, "email"); err != nil {
		return "", &ValidationError{Message: "Please enter a valid email address"}
	}

	message, err := s.api.AddFriend(ctx, email)
	if err != nil {
		log.WithError(err).Error("Failed to send friend request")
		return "", err
	}

	log.Info("Friend request sent")
	return message, nil
}

// Accept принимает входящую заявку от пользователя
func (s *FriendService) Accept(ctx context.Context, userID string) error {
	if userID == "" {
		return &ValidationError{Message: "Friend user id required"}
	}
	if err := s.api.AcceptFriend(ctx, userID); err != nil {
		s.log("Accept").WithError(err).Error("Failed to accept friend request")
		return err
	}
	return nil
}

// Reject отклоняет входящую заявку от пользователя
func (s *FriendService) Reject(ctx context.Context, userID string) error {
	if userID == "" {
		return &ValidationError{Message: "Friend user id required"}
	}
	if err := s.api.RejectFriend(ctx, userID); err != nil {
		s.log("Reject").WithError(err).Error("Failed to reject friend request")
		return err
	}
	return nil
}

func (s *FriendService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service": "friend",
		"method":  method,
	})
}
