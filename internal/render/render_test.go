package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ellenmartin11/newhaven-hangouts/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const currentUserID = "user-1"

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func testCheckins(now time.Time) []models.Checkin {
	return []models.Checkin{
		{
			ID:           "c-1",
			UserID:       "user-2",
			Username:     "sam",
			Lat:          41.31,
			Lng:          -72.92,
			LocationName: "East Rock Park",
			Message:      "Picnic!",
			CreatedAt:    now.Add(-10 * time.Minute),
			ExpiresAt:    now.Add(50 * time.Minute),
			Attendees: []models.Attendee{
				{UserID: "user-3", Username: "ellen"},
				{UserID: "user-4", Username: "max"},
			},
		},
		{
			ID:           "c-2",
			UserID:       currentUserID,
			Username:     "me",
			Lat:          41.308,
			Lng:          -72.927,
			LocationName: "The Stack",
			CreatedAt:    now.Add(-2 * time.Hour),
			ExpiresAt:    now.Add(30 * time.Minute),
		},
	}
}

func TestBuildCards_ActionsByOwnership(t *testing.T) {
	now := time.Now()
	r := NewRenderer(newTestLogger())

	cards := r.BuildCards(testCheckins(now), currentUserID, now)
	require.Len(t, cards, 2)

	// Чужой чекин: только "я приду", никогда не удаление
	assert.False(t, cards[0].Own)
	assert.Equal(t, ActionAttend, cards[0].Action)

	// Свой чекин: только удаление
	assert.True(t, cards[1].Own)
	assert.Equal(t, ActionDelete, cards[1].Action)
}

func TestBuildCards_PreservesServerOrder(t *testing.T) {
	now := time.Now()
	r := NewRenderer(newTestLogger())

	cards := r.BuildCards(testCheckins(now), currentUserID, now)
	require.Len(t, cards, 2)
	assert.Equal(t, "c-1", cards[0].CheckinID)
	assert.Equal(t, "c-2", cards[1].CheckinID)
}

func TestBuildCards_AttendeeSummary(t *testing.T) {
	now := time.Now()
	r := NewRenderer(newTestLogger())

	cards := r.BuildCards(testCheckins(now), currentUserID, now)
	require.Len(t, cards, 2)
	assert.Equal(t, "2 coming: ellen, max", cards[0].Attendees)
	assert.Empty(t, cards[1].Attendees)
}

func TestBuildMarkers(t *testing.T) {
	now := time.Now()
	r := NewRenderer(newTestLogger())

	markers := r.BuildMarkers(testCheckins(now), currentUserID, now)
	require.Len(t, markers, 2)
	assert.Equal(t, MarkerCheckin, markers[0].Kind)
	assert.Equal(t, 41.31, markers[0].Lat)
	assert.Equal(t, ActionAttend, markers[0].Popup.Action)
	assert.Equal(t, ActionDelete, markers[1].Popup.Action)

	// Маркер собственного местоположения отличается от маркера чекина
	self := r.SelfMarker(41.3, -72.9)
	assert.Equal(t, MarkerSelf, self.Kind)
	assert.NotEqual(t, markers[0].Kind, self.Kind)
}

func TestMarkerSet_ReplaceAll(t *testing.T) {
	var set MarkerSet
	set.ReplaceAll([]Marker{{CheckinID: "a"}, {CheckinID: "b"}, {CheckinID: "c"}})
	require.Equal(t, 3, set.Count())

	// Каждое обновление полностью заменяет набор, без слияния со старым
	set.ReplaceAll([]Marker{{CheckinID: "d"}})
	require.Equal(t, 1, set.Count())
	assert.Equal(t, "d", set.Markers()[0].CheckinID)

	set.ReplaceAll(nil)
	assert.Equal(t, 0, set.Count())
}

func TestFeedView_EmptyFeed(t *testing.T) {
	session := &models.Session{UserID: currentUserID, Username: "me"}
	view := NewFeedView(session, newTestLogger())

	view.Render(nil)

	// Пустая лента: плейсхолдер в списке и ни одного маркера на карте
	assert.Equal(t, 0, view.Markers().Count())
	var buf bytes.Buffer
	view.WriteList(&buf)
	assert.Equal(t, EmptyFeedPlaceholder+"\n", buf.String())
}

func TestFeedView_RenderReplacesPreviousState(t *testing.T) {
	now := time.Now()
	session := &models.Session{UserID: currentUserID, Username: "me"}
	view := NewFeedView(session, newTestLogger())

	view.Render(testCheckins(now))
	require.Equal(t, 2, view.Markers().Count())
	require.Len(t, view.Cards(), 2)

	view.Render(testCheckins(now)[:1])
	assert.Equal(t, 1, view.Markers().Count())
	assert.Len(t, view.Cards(), 1)

	var buf bytes.Buffer
	view.WriteList(&buf)
	out := buf.String()
	assert.True(t, strings.Contains(out, "sam @ East Rock Park"))
	assert.True(t, strings.Contains(out, "2 coming: ellen, max"))
	assert.False(t, strings.Contains(out, EmptyFeedPlaceholder))
}
