package models

import (
	"time"
)

// Области видимости чекина
const (
	VisibilityEveryone = "everyone"
	VisibilitySpecific = "specific"
)

// Attendee - пользователь, отметивший "я приду" к чужому чекину
type Attendee struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Checkin представляет отметку пользователя о месте встречи с ограниченным временем жизни
type Checkin struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Username     string     `json:"username"`
	Lat          float64    `json:"lat"`
	Lng          float64    `json:"lng"`
	LocationName string     `json:"location_name"`
	Message      string     `json:"message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ExpiresAt    time.Time  `json:"expires_at"`
	Visibility   string     `json:"visibility,omitempty"`
	Attendees    []Attendee `json:"attendees,omitempty"`
}

// Active сообщает, не истек ли чекин на момент now.
// Сервер сам решает, когда убрать истекший чекин из ленты,
// клиент только отображает состояние.
func (c *Checkin) Active(now time.Time) bool {
	return now.Before(c.ExpiresAt)
}

// OwnedBy проверяет, принадлежит ли чекин пользователю
func (c *Checkin) OwnedBy(userID string) bool {
	return c.UserID == userID
}
