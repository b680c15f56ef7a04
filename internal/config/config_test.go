package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Действие
	cfg, err := LoadConfig("")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "https://newhaven-hangouts.vercel.app", cfg.APIBaseURL)
	assert.Equal(t, CredentialCookie, cfg.CredentialMode)
	assert.True(t, cfg.FriendSharing)
	assert.False(t, cfg.Push)
	assert.Equal(t, "-73.8,42.1,-71.7,40.9", cfg.SearchViewBox)
	assert.Equal(t, 5, cfg.SearchLimit)
	assert.Equal(t, 350*time.Millisecond, cfg.SearchDebounce)
	assert.NotEmpty(t, cfg.StateDir)
}

func TestLoadConfig_Profile(t *testing.T) {
	// Подготовка
	profile := filepath.Join(t.TempDir(), "legacy.yaml")
	data := `
api_base_url: https://hangouts.example.com
credential_mode: token
friend_sharing: false
search_debounce: 500ms
log_level: debug
`
	require.NoError(t, os.WriteFile(profile, []byte(data), 0o600))

	// Действие
	cfg, err := LoadConfig(profile)

	// Проверки: профиль перекрывает значения по умолчанию, остальное не трогает
	require.NoError(t, err)
	assert.Equal(t, "https://hangouts.example.com", cfg.APIBaseURL)
	assert.Equal(t, CredentialToken, cfg.CredentialMode)
	assert.False(t, cfg.FriendSharing)
	assert.Equal(t, 500*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.NominatimURL)
}

func TestLoadConfig_EnvOverridesProfile(t *testing.T) {
	// Подготовка
	profile := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(profile, []byte("api_base_url: https://from-profile.example.com\n"), 0o600))
	t.Setenv("HANGOUTS_API_URL", "https://from-env.example.com")
	t.Setenv("SEARCH_LIMIT", "10")
	t.Setenv("HANGOUTS_STATE_DIR", t.TempDir())

	// Действие
	cfg, err := LoadConfig(profile)

	// Проверки: переменные окружения сильнее профиля
	require.NoError(t, err)
	assert.Equal(t, "https://from-env.example.com", cfg.APIBaseURL)
	assert.Equal(t, 10, cfg.SearchLimit)
}

func TestLoadConfig_InvalidCredentialMode(t *testing.T) {
	t.Setenv("HANGOUTS_CREDENTIAL_MODE", "basic")

	_, err := LoadConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "credential_mode")
}

func TestLoadConfig_MissingProfile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
