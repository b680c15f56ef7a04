package models

// Friend - подтвержденная дружеская связь текущего пользователя.
// Используется для выбора получателей чекина с видимостью "specific".
type Friend struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// FriendRequest - входящая заявка в друзья, ожидающая решения
type FriendRequest struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
