// Package render строит представления ленты чекинов: маркеры карты и
// карточки списка. Пакет не знает про виджеты, он готовит только данные.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/ellenmartin11/newhaven-hangouts/internal/models"
	"github.com/ellenmartin11/newhaven-hangouts/internal/timefmt"
	"github.com/sirupsen/logrus"
)

// EmptyFeedPlaceholder показывается в списке при пустой ленте
const EmptyFeedPlaceholder = "No active check-ins from friends 😔"

// Типы маркеров: чекин друга и собственное местоположение пользователя
const (
	MarkerCheckin = "checkin"
	MarkerSelf    = "self"
)

// Действие, доступное пользователю в карточке или попапе маркера
const (
	ActionAttend = "attend"
	ActionDelete = "delete"
)

// Popup - содержимое попапа маркера на карте
type Popup struct {
	Username     string
	LocationName string
	Message      string
	Attendees    string
	Posted       string
	Remaining    string
	Action       string
}

// Marker - точка на карте
type Marker struct {
	CheckinID string
	Lat       float64
	Lng       float64
	Kind      string
	Popup     Popup
}

// Card - карточка чекина в списочном представлении
type Card struct {
	CheckinID    string
	Own          bool
	Username     string
	LocationName string
	Message      string
	Attendees    string
	Updated      string
	Remaining    string
	Action       string
}

// Renderer строит маркеры и карточки из коллекции чекинов.
// Порядок записей сервера сохраняется, клиент ничего не пересортировывает.
type Renderer struct {
	logger *logrus.Logger
}

func NewRenderer(logger *logrus.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// BuildCards строит карточки списка. currentUserID определяет,
// какое действие доступно: свой чекин можно удалить, к чужому - прийти.
func (r *Renderer) BuildCards(checkins []models.Checkin, currentUserID string, now time.Time) []Card {
	cards := make([]Card, 0, len(checkins))
	for _, c := range checkins {
		cards = append(cards, Card{
			CheckinID:    c.ID,
			Own:          c.OwnedBy(currentUserID),
			Username:     c.Username,
			LocationName: c.LocationName,
			Message:      c.Message,
			Attendees:    attendeeSummary(c.Attendees),
			Updated:      timefmt.Elapsed(c.CreatedAt, now),
			Remaining:    timefmt.Remaining(c.ExpiresAt, now),
			Action:       actionFor(&c, currentUserID),
		})
	}
	return cards
}

// BuildMarkers строит маркеры карты, по одному на чекин
func (r *Renderer) BuildMarkers(checkins []models.Checkin, currentUserID string, now time.Time) []Marker {
	markers := make([]Marker, 0, len(checkins))
	for _, c := range checkins {
		markers = append(markers, Marker{
			CheckinID: c.ID,
			Lat:       c.Lat,
			Lng:       c.Lng,
			Kind:      MarkerCheckin,
			Popup: Popup{
				Username:     c.Username,
				LocationName: c.LocationName,
				Message:      c.Message,
				Attendees:    attendeeSummary(c.Attendees),
				Posted:       timefmt.Elapsed(c.CreatedAt, now),
				Remaining:    timefmt.Remaining(c.ExpiresAt, now),
				Action:       actionFor(&c, currentUserID),
			},
		})
	}
	return markers
}

// SelfMarker - маркер "вы здесь", визуально отличный от маркеров чекинов
func (r *Renderer) SelfMarker(lat, lng float64) Marker {
	return Marker{Lat: lat, Lng: lng, Kind: MarkerSelf, Popup: Popup{LocationName: "You are here"}}
}

func actionFor(c *models.Checkin, currentUserID string) string {
	if c.OwnedBy(currentUserID) {
		return ActionDelete
	}
	return ActionAttend
}

// attendeeSummary сворачивает список пришедших в строку вида "2 coming: ellen, sam"
func attendeeSummary(attendees []models.Attendee) string {
	if len(attendees) == 0 {
		return ""
	}
	names := make([]string, 0, len(attendees))
	for _, a := range attendees {
		names = append(names, a.Username)
	}
	return fmt.Sprintf("%d coming: %s", len(attendees), strings.Join(names, ", "))
}
