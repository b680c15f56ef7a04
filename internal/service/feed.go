package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ellenmartin11/newhaven-hangouts/internal/api"
	"github.com/ellenmartin11/newhaven-hangouts/internal/config"
	"github.com/ellenmartin11/newhaven-hangouts/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// HangoutsAPI определяет контракт удаленного API, нужный ленте
type HangoutsAPI interface {
	Feed(ctx context.Context, userID string) ([]models.Checkin, error)
	CreateCheckin(ctx context.Context, req api.CheckinRequest) (*models.Checkin, error)
	DeleteCheckin(ctx context.Context, checkinID, userID string) error
	MarkComing(ctx context.Context, checkinID, userID string) error
}

// FeedRenderer перерисовывает представление ленты по свежим данным
type FeedRenderer interface {
	Render(checkins []models.Checkin)
}

// ConfirmFunc запрашивает у пользователя подтверждение удаления чекина
type ConfirmFunc func(checkinID string) bool

// FeedService управляет жизненным циклом ленты: загрузка, публикация
// чекина, отметка "я приду" и удаление. Каждое изменяющее действие
// после успеха перечитывает ленту у сервера - его ответ и есть истина.
type FeedService struct {
	api      HangoutsAPI
	view     FeedRenderer
	form     *FormService
	session  *models.Session
	cfg      *config.Config
	logger   *logrus.Logger
	validate *validator.Validate
	confirm  ConfirmFunc

	// Флаги незавершенных действий: повторное нажатие не создает дубль
	submitting atomic.Bool
	attending  atomic.Bool
	deleting   atomic.Bool
}

func NewFeedService(apiClient HangoutsAPI, view FeedRenderer, form *FormService, session *models.Session, cfg *config.Config, logger *logrus.Logger, confirm ConfirmFunc) *FeedService {
	return &FeedService{
		api:      apiClient,
		view:     view,
		form:     form,
		session:  session,
		cfg:      cfg,
		logger:   logger,
		validate: validator.New(),
		confirm:  confirm,
	}
}

// Refresh перечитывает ленту и перерисовывает представление.
// Сбой загрузки только логируется: лента не должна ронять интерфейс.
func (s *FeedService) Refresh(ctx context.Context) {
	log := s.log("Refresh")
	if !s.session.LoggedIn() {
		log.Debug("Skipping feed refresh without session")
		return
	}

	checkins, err := s.api.Feed(ctx, s.session.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to load feed")
		return
	}

	// Истекшие записи сервер еще мог не убрать; рисуются все, счетчик
	// активных идет в лог
	active := 0
	now := time.Now()
	for i := range checkins {
		if checkins[i].Active(now) {
			active++
		}
	}

	s.view.Render(checkins)
	log.WithFields(logrus.Fields{
		"count":  len(checkins),
		"active": active,
	}).Info("Feed refreshed")
}

// SubmitCheckin валидирует черновик и публикует чекин. Ошибки валидации
// возвращаются без сетевого вызова; ошибка сервера доходит дословно.
// После успеха форма сбрасывается и лента перечитывается.
func (s *FeedService) SubmitCheckin(ctx context.Context, draft CheckinDraft) error {
	log := s.log("SubmitCheckin")
	if !s.session.LoggedIn() {
		return ErrNotLoggedIn
	}
	if !s.submitting.CompareAndSwap(false, true) {
		log.Warn("Check-in submission already in progress")
		return ErrInFlight
	}
	defer s.submitting.Store(false)

	if err := s.validateDraft(&draft); err != nil {
		log.WithError(err).Warn("Check-in draft validation failed")
		return err
	}

	req := api.CheckinRequest{
		UserID:          s.session.UserID,
		Lat:             draft.Lat,
		Lng:             draft.Lng,
		LocationName:    draft.LocationName,
		Message:         draft.Message,
		DurationMinutes: draft.DurationMinutes,
	}
	if s.cfg.FriendSharing {
		req.Visibility = draft.Visibility
		req.ShareWith = draft.ShareWith
	}

	created, err := s.api.CreateCheckin(ctx, req)
	if err != nil {
		log.WithError(err).Error("Failed to create check-in")
		return err
	}

	log.WithFields(logrus.Fields{
		"checkin_id": created.ID,
		"location":   draft.LocationName,
	}).Info("Check-in posted")

	if s.form != nil {
		s.form.Reset()
	}
	s.Refresh(ctx)
	return nil
}

// MarkAttending отмечает пользователя идущим на чужой чекин
func (s *FeedService) MarkAttending(ctx context.Context, checkinID string) error {
	log := s.log("MarkAttending").WithField("checkin_id", checkinID)
	if !s.session.LoggedIn() {
		return ErrNotLoggedIn
	}
	if !s.attending.CompareAndSwap(false, true) {
		log.Warn("Attendance request already in progress")
		return ErrInFlight
	}
	defer s.attending.Store(false)

	if err := s.api.MarkComing(ctx, checkinID, s.session.UserID); err != nil {
		log.WithError(err).Error("Failed to mark attending")
		return err
	}

	log.Info("Marked as coming")
	s.Refresh(ctx)
	return nil
}

// DeleteCheckin удаляет собственный чекин. Сетевому вызову предшествует
// явное подтверждение пользователя.
func (s *FeedService) DeleteCheckin(ctx context.Context, checkinID string) error {
	log := s.log("DeleteCheckin").WithField("checkin_id", checkinID)
	if !s.session.LoggedIn() {
		return ErrNotLoggedIn
	}
	if s.confirm != nil && !s.confirm(checkinID) {
		log.Info("Deletion declined by user")
		return ErrDeclined
	}
	if !s.deleting.CompareAndSwap(false, true) {
		log.Warn("Deletion already in progress")
		return ErrInFlight
	}
	defer s.deleting.Store(false)

	if err := s.api.DeleteCheckin(ctx, checkinID, s.session.UserID); err != nil {
		log.WithError(err).Error("Failed to delete check-in")
		return err
	}

	log.Info("Check-in deleted")
	s.Refresh(ctx)
	return nil
}

// validateDraft повторяет проверки исходной формы в том же порядке,
// затем прогоняет черновик через validator как общий заслон
func (s *FeedService) validateDraft(draft *CheckinDraft) error {
	if draft.LocationName == "" {
		return &ValidationError{Message: "Please search for a location or use your current location"}
	}
	if draft.Lat == 0 && draft.Lng == 0 {
		return &ValidationError{Message: "Please select a location first"}
	}
	if s.cfg.FriendSharing && draft.Visibility == models.VisibilitySpecific && len(draft.ShareWith) == 0 {
		return &ValidationError{Message: "Please select at least one friend to share with"}
	}
	if err := s.validate.Struct(draft); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	return nil
}

func (s *FeedService) log(method string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"service": "feed",
		"method":  method,
	})
}
