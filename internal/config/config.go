package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Режимы передачи учетных данных API
const (
	CredentialCookie = "cookie" // сессионная кука (web/mobile сборки)
	CredentialToken  = "token"  // bearer-токен (legacy сборка)
)

// Config - единая конфигурация клиента. Исходные сборки (web, mobile,
// legacy) различались только базовым URL, режимом учетных данных и
// флагами фич; здесь это один профиль, выбираемый при запуске.
type Config struct {
	// Hangouts API
	APIBaseURL     string `yaml:"api_base_url"`
	CredentialMode string `yaml:"credential_mode"`

	// Флаги фич сборки
	FriendSharing bool `yaml:"friend_sharing"`
	Push          bool `yaml:"push"`

	// Геокодер
	NominatimURL   string        `yaml:"nominatim_url"`
	SearchViewBox  string        `yaml:"search_view_box"`
	SearchBounded  bool          `yaml:"search_bounded"`
	SearchLimit    int           `yaml:"search_limit"`
	SearchDebounce time.Duration `yaml:"search_debounce"`
	GeocodeTimeout time.Duration `yaml:"geocode_timeout"`

	// Локальное состояние (токен, идентификатор устройства)
	StateDir string `yaml:"state_dir"`

	LogLevel string `yaml:"log_level"`
}

// LoadConfig собирает конфигурацию: значения по умолчанию, затем YAML-профиль
// (если задан путь), затем переменные окружения и .env файл поверх
func LoadConfig(profilePath string) (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		APIBaseURL:     "https://newhaven-hangouts.vercel.app",
		CredentialMode: CredentialCookie,
		FriendSharing:  true,
		NominatimURL:   "https://nominatim.openstreetmap.org",
		SearchViewBox:  "-73.8,42.1,-71.7,40.9", // Большой Нью-Хейвен
		SearchBounded:  true,
		SearchLimit:    5,
		SearchDebounce: 350 * time.Millisecond,
		GeocodeTimeout: 10 * time.Second,
		LogLevel:       "info",
	}

	if profilePath != "" {
		data, err := os.ReadFile(profilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile %s: %w", profilePath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse profile %s: %w", profilePath, err)
		}
	}

	cfg.APIBaseURL = getEnv("HANGOUTS_API_URL", cfg.APIBaseURL)
	cfg.CredentialMode = getEnv("HANGOUTS_CREDENTIAL_MODE", cfg.CredentialMode)
	cfg.FriendSharing = getEnvAsBool("HANGOUTS_FRIEND_SHARING", cfg.FriendSharing)
	cfg.Push = getEnvAsBool("HANGOUTS_PUSH", cfg.Push)
	cfg.NominatimURL = getEnv("NOMINATIM_URL", cfg.NominatimURL)
	cfg.SearchViewBox = getEnv("SEARCH_VIEW_BOX", cfg.SearchViewBox)
	cfg.SearchBounded = getEnvAsBool("SEARCH_BOUNDED", cfg.SearchBounded)
	cfg.SearchLimit = getEnvAsInt("SEARCH_LIMIT", cfg.SearchLimit)
	cfg.SearchDebounce = getEnvAsDuration("SEARCH_DEBOUNCE", cfg.SearchDebounce)
	cfg.GeocodeTimeout = getEnvAsDuration("GEOCODE_TIMEOUT", cfg.GeocodeTimeout)
	cfg.StateDir = getEnv("HANGOUTS_STATE_DIR", cfg.StateDir)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.StateDir = home + "/.hangouts"
	}

	if cfg.CredentialMode != CredentialCookie && cfg.CredentialMode != CredentialToken {
		return nil, fmt.Errorf("invalid credential_mode %q: must be %q or %q",
			cfg.CredentialMode, CredentialCookie, CredentialToken)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
