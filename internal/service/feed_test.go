package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ellenmartin11/newhaven-hangouts/internal/api"
	"github.com/ellenmartin11/newhaven-hangouts/internal/config"
	"github.com/ellenmartin11/newhaven-hangouts/internal/models"
	"github.com/ellenmartin11/newhaven-hangouts/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestFeedService — вспомогательная функция для создания сервиса ленты с моками.
func newTestFeedService(t *testing.T, confirm ConfirmFunc) (*FeedService, *mocks.MockHangoutsAPI, *mocks.MockFeedRenderer, *mocks.MockFriendDirectory) {
	ctrl := gomock.NewController(t)
	apiMock := mocks.NewMockHangoutsAPI(ctrl)
	viewMock := mocks.NewMockFeedRenderer(ctrl)
	directoryMock := mocks.NewMockFriendDirectory(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{FriendSharing: true}
	session := &models.Session{UserID: "user-1", Username: "ellen"}
	form := NewFormService(directoryMock, logger)

	service := NewFeedService(apiMock, viewMock, form, session, cfg, logger, confirm)
	return service, apiMock, viewMock, directoryMock
}

func validDraft() CheckinDraft {
	return CheckinDraft{
		LocationName:    "Blue State Coffee",
		Lat:             41.3083,
		Lng:             -72.9279,
		Message:         "studying here",
		DurationMinutes: 60,
		Visibility:      models.VisibilityEveryone,
	}
}

func TestRefresh_Success(t *testing.T) {
	// Подготовка
	service, apiMock, viewMock, _ := newTestFeedService(t, nil)
	ctx := context.Background()
	checkins := []models.Checkin{
		{ID: "c-1", UserID: "user-2", Username: "max", LocationName: "East Rock Park"},
	}

	// Ожидания
	apiMock.EXPECT().
		Feed(ctx, "user-1").
		Return(checkins, nil).
		Times(1)
	viewMock.EXPECT().
		Render(checkins).
		Times(1)

	// Действие
	service.Refresh(ctx)
}

func TestRefresh_APIError_NoRender(t *testing.T) {
	// Подготовка
	service, apiMock, _, _ := newTestFeedService(t, nil)
	ctx := context.Background()

	// Ожидания: при ошибке загрузки представление не перерисовывается
	apiMock.EXPECT().
		Feed(ctx, "user-1").
		Return(nil, errors.New("network unreachable")).
		Times(1)

	// Действие
	service.Refresh(ctx)
}

func TestRefresh_NotLoggedIn_Skipped(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestFeedService(t, nil)
	service.session.Clear()

	// Действие: без сессии сетевых вызовов нет
	service.Refresh(context.Background())
}

func TestSubmitCheckin_Success(t *testing.T) {
	// Подготовка
	service, apiMock, viewMock, _ := newTestFeedService(t, nil)
	ctx := context.Background()
	draft := validDraft()
	service.form.SetMessage("stale message") // черновик формы должен сброситься после успеха

	created := &models.Checkin{
		ID:           "c-9",
		UserID:       "user-1",
		LocationName: draft.LocationName,
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	// Ожидания
	apiMock.EXPECT().
		CreateCheckin(ctx, api.CheckinRequest{
			UserID:          "user-1",
			Lat:             draft.Lat,
			Lng:             draft.Lng,
			LocationName:    draft.LocationName,
			Message:         draft.Message,
			DurationMinutes: draft.DurationMinutes,
			Visibility:      draft.Visibility,
		}).
		Return(created, nil).
		Times(1)
	apiMock.EXPECT().
		Feed(ctx, "user-1").
		Return([]models.Checkin{*created}, nil).
		Times(1)
	viewMock.EXPECT().
		Render(gomock.Any()).
		Times(1)

	// Действие
	err := service.SubmitCheckin(ctx, draft)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, service.form.Draft().Message)
}

func TestSubmitCheckin_SpecificWithoutFriends(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestFeedService(t, nil)
	draft := validDraft()
	draft.Visibility = models.VisibilitySpecific
	draft.ShareWith = nil

	// Действие: валидация отсекает черновик до сетевого вызова
	err := service.SubmitCheckin(context.Background(), draft)

	// Проверки
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "Please select at least one friend to share with")
}

func TestSubmitCheckin_MissingLocation(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestFeedService(t, nil)
	draft := validDraft()
	draft.LocationName = ""

	// Действие
	err := service.SubmitCheckin(context.Background(), draft)

	// Проверки
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "Please search for a location or use your current location")
}

func TestSubmitCheckin_ZeroCoordinates(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestFeedService(t, nil)
	draft := validDraft()
	draft.Lat, draft.Lng = 0, 0

	// Действие
	err := service.SubmitCheckin(context.Background(), draft)

	// Проверки
	require.Error(t, err)
	assert.EqualError(t, err, "Please select a location first")
}

func TestSubmitCheckin_SharingDisabled_StripsVisibility(t *testing.T) {
	// Подготовка
	service, apiMock, viewMock, _ := newTestFeedService(t, nil)
	service.cfg.FriendSharing = false
	ctx := context.Background()
	draft := validDraft()
	draft.Visibility = models.VisibilitySpecific
	draft.ShareWith = []string{"user-2"}

	// Ожидания: при выключенном шаринге поля видимости не уходят на сервер
	apiMock.EXPECT().
		CreateCheckin(ctx, gomock.Cond(func(x any) bool {
			req, ok := x.(api.CheckinRequest)
			return ok && req.Visibility == "" && req.ShareWith == nil
		})).
		Return(&models.Checkin{ID: "c-3"}, nil).
		Times(1)
	apiMock.EXPECT().
		Feed(ctx, "user-1").
		Return(nil, nil).
		Times(1)
	viewMock.EXPECT().
		Render(gomock.Any()).
		Times(1)

	// Действие
	err := service.SubmitCheckin(ctx, draft)

	// Проверки
	require.NoError(t, err)
}

func TestSubmitCheckin_NotLoggedIn(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestFeedService(t, nil)
	service.session.Clear()

	// Действие
	err := service.SubmitCheckin(context.Background(), validDraft())

	// Проверки
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestSubmitCheckin_InFlight(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestFeedService(t, nil)
	service.submitting.Store(true)

	// Действие: повторная отправка при незавершенной блокируется
	err := service.SubmitCheckin(context.Background(), validDraft())

	// Проверки
	assert.ErrorIs(t, err, ErrInFlight)
}

func TestMarkAttending_Success_RefreshesFeed(t *testing.T) {
	// Подготовка
	service, apiMock, viewMock, _ := newTestFeedService(t, nil)
	ctx := context.Background()

	// Ожидания
	apiMock.EXPECT().
		MarkComing(ctx, "c-1", "user-1").
		Return(nil).
		Times(1)
	apiMock.EXPECT().
		Feed(ctx, "user-1").
		Return(nil, nil).
		Times(1)
	viewMock.EXPECT().
		Render(gomock.Any()).
		Times(1)

	// Действие
	err := service.MarkAttending(ctx, "c-1")

	// Проверки
	require.NoError(t, err)
}

func TestMarkAttending_APIError(t *testing.T) {
	// Подготовка
	service, apiMock, _, _ := newTestFeedService(t, nil)
	ctx := context.Background()
	wantErr := errors.New("service unavailable")

	// Ожидания: при ошибке лента не перечитывается
	apiMock.EXPECT().
		MarkComing(ctx, "c-1", "user-1").
		Return(wantErr).
		Times(1)

	// Действие
	err := service.MarkAttending(ctx, "c-1")

	// Проверки
	assert.ErrorIs(t, err, wantErr)
}

func TestDeleteCheckin_Confirmed(t *testing.T) {
	// Подготовка
	confirmed := ""
	confirm := func(checkinID string) bool {
		confirmed = checkinID
		return true
	}
	service, apiMock, viewMock, _ := newTestFeedService(t, confirm)
	ctx := context.Background()

	// Ожидания
	apiMock.EXPECT().
		DeleteCheckin(ctx, "c-1", "user-1").
		Return(nil).
		Times(1)
	apiMock.EXPECT().
		Feed(ctx, "user-1").
		Return(nil, nil).
		Times(1)
	viewMock.EXPECT().
		Render(gomock.Any()).
		Times(1)

	// Действие
	err := service.DeleteCheckin(ctx, "c-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "c-1", confirmed)
}

func TestDeleteCheckin_Declined(t *testing.T) {
	// Подготовка
	confirm := func(string) bool { return false }
	service, _, _, _ := newTestFeedService(t, confirm)

	// Действие: отказ пользователя отменяет удаление до сетевого вызова
	err := service.DeleteCheckin(context.Background(), "c-1")

	// Проверки
	assert.ErrorIs(t, err, ErrDeclined)
}

func TestDeleteCheckin_InFlight(t *testing.T) {
	// Подготовка
	service, _, _, _ := newTestFeedService(t, nil)
	service.deleting.Store(true)

	// Действие
	err := service.DeleteCheckin(context.Background(), "c-1")

	// Проверки
	assert.ErrorIs(t, err, ErrInFlight)
}
