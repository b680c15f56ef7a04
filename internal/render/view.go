package render

import (
	"fmt"
	"io"
	"time"

	"github.com/ellenmartin11/newhaven-hangouts/internal/models"
	"github.com/sirupsen/logrus"
)

// MarkerSet хранит текущий набор маркеров карты. Каждое обновление ленты
// полностью заменяет набор, инкрементального сравнения нет.
type MarkerSet struct {
	markers []Marker
}

// ReplaceAll сбрасывает прежние маркеры и ставит новые
func (s *MarkerSet) ReplaceAll(markers []Marker) {
	s.markers = s.markers[:0]
	s.markers = append(s.markers, markers...)
}

// Markers возвращает копию текущего набора
func (s *MarkerSet) Markers() []Marker {
	out := make([]Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

// Count возвращает число маркеров на карте
func (s *MarkerSet) Count() int {
	return len(s.markers)
}

// FeedView - представление ленты для текущего пользователя: карточки списка
// плюс набор маркеров. Реализует render-контракт сервиса ленты.
type FeedView struct {
	renderer *Renderer
	session  *models.Session
	logger   *logrus.Logger
	markers  MarkerSet
	cards    []Card
}

func NewFeedView(session *models.Session, logger *logrus.Logger) *FeedView {
	return &FeedView{
		renderer: NewRenderer(logger),
		session:  session,
		logger:   logger,
	}
}

// Render перестраивает карточки и маркеры из свежей ленты
func (v *FeedView) Render(checkins []models.Checkin) {
	now := time.Now()
	v.cards = v.renderer.BuildCards(checkins, v.session.UserID, now)
	v.markers.ReplaceAll(v.renderer.BuildMarkers(checkins, v.session.UserID, now))
	v.logger.WithFields(logrus.Fields{
		"cards":   len(v.cards),
		"markers": v.markers.Count(),
	}).Debug("Feed view rebuilt")
}

// Cards возвращает карточки последнего рендера
func (v *FeedView) Cards() []Card {
	return v.cards
}

// Markers возвращает маркеры последнего рендера
func (v *FeedView) Markers() *MarkerSet {
	return &v.markers
}

// WriteList печатает списочное представление ленты
func (v *FeedView) WriteList(w io.Writer) {
	if len(v.cards) == 0 {
		fmt.Fprintln(w, EmptyFeedPlaceholder)
		return
	}
	for _, c := range v.cards {
		fmt.Fprintf(w, "%s @ %s (updated %s, %s)\n", c.Username, c.LocationName, c.Updated, c.Remaining)
		if c.Message != "" {
			fmt.Fprintf(w, "  %s\n", c.Message)
		}
		if c.Attendees != "" {
			fmt.Fprintf(w, "  %s\n", c.Attendees)
		}
		if c.Own {
			fmt.Fprintf(w, "  [delete: %s]\n", c.CheckinID)
		} else {
			fmt.Fprintf(w, "  [coming: %s]\n", c.CheckinID)
		}
	}
}
