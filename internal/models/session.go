package models

// Session - состояние авторизованного пользователя на время жизни процесса.
// Передается сервисам явно, вместо глобальных переменных исходных клиентов.
type Session struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// LoggedIn сообщает, есть ли активная сессия
func (s *Session) LoggedIn() bool {
	return s != nil && s.UserID != ""
}

// Set заполняет сессию после успешного логина
func (s *Session) Set(userID, username string) {
	s.UserID = userID
	s.Username = username
}

// Clear сбрасывает сессию при логауте
func (s *Session) Clear() {
	s.UserID = ""
	s.Username = ""
}
