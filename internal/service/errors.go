package service

import "errors"

// ErrInFlight возвращается, когда такое же действие еще выполняется.
// Защита от дублей при двойном нажатии; повтор после завершения разрешен.
var ErrInFlight = errors.New("service: action already in progress")

// ErrDeclined возвращается, когда пользователь не подтвердил удаление
var ErrDeclined = errors.New("service: deletion not confirmed")

// ErrNotLoggedIn возвращается при попытке действия без активной сессии
var ErrNotLoggedIn = errors.New("service: not logged in")

// ValidationError - ошибка клиентской валидации. Показывается пользователю
// до какого-либо сетевого вызова.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation сообщает, является ли ошибка клиентской валидацией
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
