package geocode

import (
	"context"
	"sync"
	"time"

	"github.com/ellenmartin11/newhaven-hangouts/internal/models"
	"github.com/sirupsen/logrus"
)

// SearchFunc выполняет прямой поиск; вынесен в тип ради подмены в тестах
type SearchFunc func(ctx context.Context, query string) ([]models.Place, error)

// Searcher - дебаунс над поиском мест. Каждый новый ввод отменяет еще не
// отправленный запланированный запрос, в сеть уходит только последний запрос
// за окно задержки. Уже отправленный сетевой вызов не прерывается.
type Searcher struct {
	search SearchFunc
	delay  time.Duration
	logger *logrus.Logger

	mu    sync.Mutex
	timer *time.Timer
}

func NewSearcher(client *Client, delay time.Duration, logger *logrus.Logger) *Searcher {
	return &Searcher{
		search: client.Search,
		delay:  delay,
		logger: logger,
	}
}

// Search планирует поиск и доставляет результат через deliver.
// Короткий запрос сразу доставляет пустой результат, очищая прежние
// подсказки, и ничего не планирует.
func (s *Searcher) Search(ctx context.Context, query string, deliver func([]models.Place, error)) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if len([]rune(query)) < MinQueryLen {
		s.mu.Unlock()
		deliver(nil, nil)
		return
	}

	s.timer = time.AfterFunc(s.delay, func() {
		places, err := s.search(ctx, query)
		if err != nil {
			s.logger.WithError(err).WithField("query", query).Error("Debounced search failed")
		}
		deliver(places, err)
	})
	s.mu.Unlock()
}

// Cancel отменяет запланированный, но еще не отправленный поиск.
// Вызывается при закрытии формы чекина.
func (s *Searcher) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
