package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenStore хранит bearer-токен legacy-сборки и идентификатор установки
// в каталоге состояния - аналог localStorage исходного клиента
type TokenStore struct {
	dir string
}

func NewTokenStore(dir string) (*TokenStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	return &TokenStore{dir: dir}, nil
}

func (s *TokenStore) tokenPath() string {
	return filepath.Join(s.dir, "token")
}

// Load возвращает сохраненный токен; пустая строка означает, что токена нет
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.tokenPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save сохраняет токен после успешного логина с remember
func (s *TokenStore) Save(token string) error {
	if err := os.WriteFile(s.tokenPath(), []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Clear удаляет токен при логауте
func (s *TokenStore) Clear() error {
	if err := os.Remove(s.tokenPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

// DeviceID возвращает стабильный идентификатор установки, создавая его при
// первом обращении. Клиент подписывает им каждый запрос.
func (s *TokenStore) DeviceID() (string, error) {
	path := filepath.Join(s.dir, "device_id")
	data, err := os.ReadFile(path)
	if err == nil {
		return strings.TrimSpace(string(data)), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read device id: %w", err)
	}

	id := uuid.NewString()
	if err := os.WriteFile(path, []byte(id), 0o600); err != nil {
		return "", fmt.Errorf("failed to save device id: %w", err)
	}
	return id, nil
}

// TokenExpired локально проверяет exp сохраненного JWT, не обращаясь к
// серверу. Подпись здесь не проверяется - она забота сервера, клиенту
// достаточно срока действия, чтобы вовремя запросить повторный логин.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Непрозрачный токен - пусть решает сервер
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
