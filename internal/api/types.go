package api

import "github.com/ellenmartin11/newhaven-hangouts/internal/models"

// CheckinRequest - тело POST /api/checkin
type CheckinRequest struct {
	UserID          string   `json:"user_id"`
	Lat             float64  `json:"lat"`
	Lng             float64  `json:"lng"`
	LocationName    string   `json:"location_name"`
	Message         string   `json:"message"`
	DurationMinutes int      `json:"duration_minutes"`
	Visibility      string   `json:"visibility,omitempty"`
	ShareWith       []string `json:"share_with,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type comingRequest struct {
	UserID    string `json:"user_id"`
	CheckinID string `json:"checkin_id"`
}

type deleteCheckinRequest struct {
	UserID string `json:"user_id"`
}

type addFriendRequest struct {
	FriendEmail string `json:"friend_email"`
}

type friendDecisionRequest struct {
	UserID string `json:"user_id"`
}

type resetPasswordRequest struct {
	Email string `json:"email"`
}

type fcmTokenRequest struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// authResponse - ответ login/signup/current_user; token приходит
// только в legacy-сборке с bearer-режимом
type authResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}

type feedResponse struct {
	Checkins []models.Checkin `json:"checkins"`
}

type checkinResponse struct {
	Success bool           `json:"success"`
	Checkin models.Checkin `json:"checkin"`
}

type friendsResponse struct {
	Friends []models.Friend `json:"friends"`
}

type friendRequestsResponse struct {
	Requests []models.FriendRequest `json:"requests"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
