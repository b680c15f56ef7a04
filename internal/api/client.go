// Package api - клиент REST API Hangouts. Для сервисов это аналог слоя
// репозитория: единственный источник данных, только за сетью.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/ellenmartin11/newhaven-hangouts/internal/config"
	"github.com/ellenmartin11/newhaven-hangouts/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Client struct {
	baseURL    string
	mode       string
	httpClient *http.Client
	tokens     *TokenStore
	deviceID   string
	logger     *logrus.Logger
}

// NewClient создает клиент API в режиме из конфигурации: сессионная кука
// (web/mobile) либо bearer-токен из локального хранилища (legacy)
func NewClient(cfg *config.Config, tokens *TokenStore, logger *logrus.Logger) (*Client, error) {
	// Клиентский таймаут не задается: как и fetch в исходных клиентах,
	// запрос завершает только ответ сервера или отказ транспорта
	httpClient := &http.Client{}
	if cfg.CredentialMode == config.CredentialCookie {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	// Идентификатор установки разрешается один раз; без него клиент
	// работает, просто не подписывает запросы
	var deviceID string
	if tokens != nil {
		id, err := tokens.DeviceID()
		if err != nil {
			logger.WithError(err).Warn("Failed to resolve device id")
		} else {
			deviceID = id
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		mode:       cfg.CredentialMode,
		httpClient: httpClient,
		tokens:     tokens,
		deviceID:   deviceID,
		logger:     logger,
	}, nil
}

// CurrentUser возвращает активную сессию, ErrUnauthorized - если ее нет
func (c *Client) CurrentUser(ctx context.Context) (*models.Session, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodGet, "/api/current_user", nil, &resp); err != nil {
		return nil, err
	}
	return &models.Session{UserID: resp.UserID, Username: resp.Username}, nil
}

// Login выполняет вход; remember просит сервер выдать долгоживущую сессию
func (c *Client) Login(ctx context.Context, email, password string, remember bool) (*models.Session, error) {
	log := c.log("Login")

	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/login", loginRequest{Email: email, Password: password, Remember: remember}, &resp)
	if err != nil {
		return nil, err
	}

	if err := c.storeToken(resp.Token); err != nil {
		log.WithError(err).Warn("Failed to persist auth token")
	}
	log.WithField("user_id", resp.UserID).Info("Logged in")
	return &models.Session{UserID: resp.UserID, Username: resp.Username}, nil
}

// Signup регистрирует пользователя и сразу открывает сессию
func (c *Client) Signup(ctx context.Context, username, email, password string) (*models.Session, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/signup", signupRequest{Username: username, Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	if err := c.storeToken(resp.Token); err != nil {
		c.log("Signup").WithError(err).Warn("Failed to persist auth token")
	}
	return &models.Session{UserID: resp.UserID, Username: resp.Username}, nil
}

// Logout закрывает сессию на сервере и чистит локальный токен
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil)
	if c.mode == config.CredentialToken && c.tokens != nil {
		if clearErr := c.tokens.Clear(); clearErr != nil {
			c.log("Logout").WithError(clearErr).Warn("Failed to clear stored token")
		}
	}
	return err
}

// DeleteAccount безвозвратно удаляет аккаунт текущего пользователя
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/api/user/delete", nil, nil); err != nil {
		return err
	}
	if c.mode == config.CredentialToken && c.tokens != nil {
		if err := c.tokens.Clear(); err != nil {
			c.log("DeleteAccount").WithError(err).Warn("Failed to clear stored token")
		}
	}
	return nil
}

// Feed возвращает активные чекины, видимые пользователю, в порядке сервера
func (c *Client) Feed(ctx context.Context, userID string) ([]models.Checkin, error) {
	var resp feedResponse
	path := "/api/feed?user_id=" + url.QueryEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Checkins, nil
}

// CreateCheckin публикует новый чекин
func (c *Client) CreateCheckin(ctx context.Context, req CheckinRequest) (*models.Checkin, error) {
	var resp checkinResponse
	if err := c.do(ctx, http.MethodPost, "/api/checkin", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Checkin, nil
}

// DeleteCheckin удаляет собственный чекин
func (c *Client) DeleteCheckin(ctx context.Context, checkinID, userID string) error {
	path := "/api/checkin/" + url.PathEscape(checkinID)
	return c.do(ctx, http.MethodDelete, path, deleteCheckinRequest{UserID: userID}, nil)
}

// MarkComing отмечает пользователя как идущего на чужой чекин
func (c *Client) MarkComing(ctx context.Context, checkinID, userID string) error {
	return c.do(ctx, http.MethodPost, "/api/coming", comingRequest{UserID: userID, CheckinID: checkinID}, nil)
}

// Friends возвращает подтвержденных друзей пользователя
func (c *Client) Friends(ctx context.Context) ([]models.Friend, error) {
	var resp friendsResponse
	if err := c.do(ctx, http.MethodGet, "/api/friends", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Friends, nil
}

// FriendRequests возвращает входящие заявки в друзья
func (c *Client) FriendRequests(ctx context.Context) ([]models.FriendRequest, error) {
	var resp friendRequestsResponse
	if err := c.do(ctx, http.MethodGet, "/api/friends/requests", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Requests, nil
}

// AddFriend отправляет заявку в друзья по email; сервер может сразу
// принять встречную заявку, поэтому возвращается его сообщение
func (c *Client) AddFriend(ctx context.Context, email string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/api/friends/add", addFriendRequest{FriendEmail: email}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// AcceptFriend принимает входящую заявку
func (c *Client) AcceptFriend(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, "/api/friends/accept", friendDecisionRequest{UserID: userID}, nil)
}

// RejectFriend отклоняет входящую заявку
func (c *Client) RejectFriend(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodPost, "/api/friends/reject", friendDecisionRequest{UserID: userID}, nil)
}

// RequestPasswordReset запрашивает письмо для сброса пароля
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/reset-password-request", resetPasswordRequest{Email: email}, nil)
}

// RegisterFCMToken привязывает push-токен устройства к пользователю
func (c *Client) RegisterFCMToken(ctx context.Context, userID, token string) error {
	return c.do(ctx, http.MethodPost, "/api/fcm-token", fcmTokenRequest{UserID: userID, Token: token}, nil)
}

// do выполняет запрос и разбирает ответ по общим правилам:
// 401 -> ErrUnauthorized, прочие не-2xx -> APIError с дословным
// сообщением сервера, отказ транспорта -> обернутая ошибка.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.deviceID != "" {
		req.Header.Set("X-Device-ID", c.deviceID)
	}

	if c.mode == config.CredentialToken && c.tokens != nil {
		token, err := c.tokens.Load()
		if err != nil {
			return fmt.Errorf("api: failed to load token: %w", err)
		}
		if token != "" {
			// Истекший токен отбрасывается локально, без сетевого вызова
			if TokenExpired(token, time.Now()) {
				if err := c.tokens.Clear(); err != nil {
					c.log("do").WithError(err).Warn("Failed to clear expired token")
				}
				return ErrUnauthorized
			}
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr != nil || errResp.Error == "" {
			errResp.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("api: failed to decode response: %w", err)
		}
	}
	return nil
}

// storeToken сохраняет bearer-токен в legacy-режиме; в cookie-режиме no-op
func (c *Client) storeToken(token string) error {
	if c.mode != config.CredentialToken || c.tokens == nil || token == "" {
		return nil
	}
	return c.tokens.Save(token)
}

func (c *Client) log(method string) *logrus.Entry {
	return c.logger.WithFields(logrus.Fields{
		"client": "hangouts",
		"method": method,
	})
}
