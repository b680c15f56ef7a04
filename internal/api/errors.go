package api

import "errors"

// ErrUnauthorized возвращается на 401: сессии нет или она истекла,
// пользователя нужно отправить на повторный логин
var ErrUnauthorized = errors.New("api: unauthorized")

// APIError - ошибка, о которой сообщил сервер в теле {"error": ...}.
// Message показывается пользователю дословно.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// AsAPIError достает APIError из цепочки ошибок
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
