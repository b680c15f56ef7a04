package service

import (
	"context"
	"slices"

	"github.com/ellenmartin11/newhaven-hangouts/internal/models"
	"github.com/sirupsen/logrus"
)

// DurationOptions - допустимые значения длительности чекина в минутах
var DurationOptions = []int{30, 60, 120, 240}

// DefaultDurationMinutes используется для нового черновика
const DefaultDurationMinutes = 60

// CheckinDraft - черновик чекина, собираемый формой
type CheckinDraft struct {
	LocationName    string   `json:"location_name" validate:"required"`
	Lat             float64  `json:"lat" validate:"latitude"`
	Lng             float64  `json:"lng" validate:"longitude"`
	Message         string   `json:"message"`
	DurationMinutes int      `json:"duration_minutes" validate:"required,oneof=30 60 120 240"`
	Visibility      string   `json:"visibility" validate:"required,oneof=everyone specific"`
	ShareWith       []string `json:"share_with"`
}

// FriendDirectory отдает список друзей для выбора видимости
type FriendDirectory interface {
	Friends(ctx context.Context) ([]models.Friend, error)
}

// FormService держит переходное состояние формы чекина: черновик,
// подсказки поиска и кешированный на сессию список друзей.
// Состояние трогает только один UI-поток, блокировок не нужно.
type FormService struct {
	directory FriendDirectory
	logger    *logrus.Logger

	draft         CheckinDraft
	searchResults []models.Place
	friends       []models.Friend
	friendsLoaded bool
}

func NewFormService(directory FriendDirectory, logger *logrus.Logger) *FormService {
	return &FormService{
		directory: directory,
		logger:    logger,
		draft:     newDraft(),
	}
}

func newDraft() CheckinDraft {
	return CheckinDraft{
		DurationMinutes: DefaultDurationMinutes,
		Visibility:      models.VisibilityEveryone,
	}
}

// Open готовит форму к показу: список друзей загружается один раз
// за сессию и дальше берется из кеша, пока его явно не сбросят
func (f *FormService) Open(ctx context.Context) error {
	log := f.log("Open")
	if f.friendsLoaded {
		log.Debug("Friend list served from session cache")
		return nil
	}

	friends, err := f.directory.Friends(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load friends for sharing")
		return err
	}

	f.friends = friends
	f.friendsLoaded = true
	log.WithField("count", len(friends)).Info("Friend list loaded")
	return nil
}

// Friends возвращает кешированный список друзей
func (f *FormService) Friends() []models.Friend {
	return f.friends
}

// InvalidateFriends сбрасывает кеш; следующий Open перечитает список
func (f *FormService) InvalidateFriends() {
	f.friends = nil
	f.friendsLoaded = false
}

// SetLocation фиксирует выбранные координаты и название места
func (f *FormService) SetLocation(name string, lat, lng float64) {
	f.draft.LocationName = name
	f.draft.Lat = lat
	f.draft.Lng = lng
}

// SelectPlace применяет кандидата из поиска: координаты и короткое имя
// берутся напрямую, без дополнительного сетевого вызова
func (f *FormService) SelectPlace(p models.Place) {
	f.SetLocation(p.ShortName(), p.Lat, p.Lon)
	f.searchResults = nil
}

// SetMessage задает сопроводительное сообщение
func (f *FormService) SetMessage(message string) {
	f.draft.Message = message
}

// SetDuration задает длительность из фиксированного набора вариантов
func (f *FormService) SetDuration(minutes int) error {
	if !slices.Contains(DurationOptions, minutes) {
		return &ValidationError{Message: "Invalid check-in duration"}
	}
	f.draft.DurationMinutes = minutes
	return nil
}

// SetVisibility переключает режим видимости. Остальные поля черновика
// при переключении не трогаются.
func (f *FormService) SetVisibility(visibility string) error {
	if visibility != models.VisibilityEveryone && visibility != models.VisibilitySpecific {
		return &ValidationError{Message: "Invalid visibility mode"}
	}
	f.draft.Visibility = visibility
	return nil
}

// ToggleFriend добавляет или убирает друга из списка получателей
func (f *FormService) ToggleFriend(userID string) {
	if i := slices.Index(f.draft.ShareWith, userID); i >= 0 {
		f.draft.ShareWith = slices.Delete(f.draft.ShareWith, i, i+1)
		return
	}
	f.draft.ShareWith = append(f.draft.ShareWith, userID)
}

// SetShareWith задает список получателей целиком
func (f *FormService) SetShareWith(userIDs []string) {
	f.draft.ShareWith = slices.Clone(userIDs)
}

// SetSearchResults сохраняет подсказки поиска для показа
func (f *FormService) SetSearchResults(places []models.Place) {
	f.searchResults = places
}

// SearchResults возвращает текущие подсказки поиска
func (f *FormService) SearchResults() []models.Place {
	return f.searchResults
}

// Draft возвращает копию текущего черновика
func (f *FormService) Draft() CheckinDraft {
	draft := f.draft
	draft.ShareWith = slices.Clone(f.draft.ShareWith)
	return draft
}

// Reset очищает черновик и подсказки поиска. Кеш друзей живет до конца
// сессии и при сбросе формы не трогается.
func (f *FormService) Reset() {
	f.draft = newDraft()
	f.searchResults = nil
	f.log("Reset").Debug("Check-in form cleared")
}

func (f *FormService) log(method string) *logrus.Entry {
	return f.logger.WithFields(logrus.Fields{
		"service": "form",
		"method":  method,
	})
}
