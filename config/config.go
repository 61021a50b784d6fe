package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yourusername/telegram-translate-bot/internal/domain/constants"
	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
)

// Tarjima provayderlari
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	TelegramToken     string
	AllowEmptySecrets bool

	TranslatorProvider string
	GeminiAPIKey       string
	GeminiModel        string
	OpenAIAPIKey       string
	OpenAIModel        string
	OpenAIBaseURL      string

	DefaultLang      string
	CacheSize        int
	CacheKeyLength   int
	MaxRetries       int
	RetryDelay       time.Duration
	TranslateTimeout time.Duration
	WorkerCount      int

	PrefsStorage string
	PostgresDSN  string
	PrefsDBPath  string
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:      os.Getenv("TELEGRAM_BOT_TOKEN"),
		AllowEmptySecrets:  getEnvBool("ALLOW_EMPTY_SECRETS", false),
		TranslatorProvider: strings.ToLower(getenvDefault("TRANSLATOR_PROVIDER", ProviderGemini)),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getenvDefault("GEMINI_MODEL", constants.GeminiModelName),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        getenvDefault("OPENAI_MODEL", constants.OpenAIModelName),
		OpenAIBaseURL:      strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		DefaultLang:        entity.NormalizeLanguageCode(getenvDefault("DEFAULT_LANG", constants.DefaultLanguage)),
		PrefsStorage:       strings.ToLower(strings.TrimSpace(os.Getenv("PREFS_STORAGE"))),
		PostgresDSN:        PostgresDSNFromEnv(),
		PrefsDBPath:        getenvDefault("PREFS_DB_PATH", constants.SQLiteDefaultPath),
	}

	var err error
	if config.CacheSize, err = getEnvInt("CACHE_SIZE", constants.DefaultCacheSize); err != nil {
		return nil, err
	}
	if config.CacheKeyLength, err = getEnvInt("CACHE_KEY_LENGTH", constants.DefaultCacheKeyLength); err != nil {
		return nil, err
	}
	if config.MaxRetries, err = getEnvInt("MAX_RETRIES", constants.MaxRetries); err != nil {
		return nil, err
	}
	if config.WorkerCount, err = getEnvInt("WORKER_COUNT", constants.DefaultWorkerCount); err != nil {
		return nil, err
	}
	delayMS, err := getEnvInt("RETRY_DELAY_MS", int(constants.RetryDelay/time.Millisecond))
	if err != nil {
		return nil, err
	}
	config.RetryDelay = time.Duration(delayMS) * time.Millisecond
	timeoutSec, err := getEnvInt("TRANSLATE_TIMEOUT_SECONDS", int(constants.TranslateTimeout/time.Second))
	if err != nil {
		return nil, err
	}
	config.TranslateTimeout = time.Duration(timeoutSec) * time.Second

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.CacheSize <= 0 {
		return fmt.Errorf("CACHE_SIZE musbat bo'lishi kerak: %d", c.CacheSize)
	}
	if c.CacheKeyLength <= 0 {
		return fmt.Errorf("CACHE_KEY_LENGTH musbat bo'lishi kerak: %d", c.CacheKeyLength)
	}
	if c.MaxRetries <= 0 {
		return fmt.Errorf("MAX_RETRIES musbat bo'lishi kerak: %d", c.MaxRetries)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("RETRY_DELAY_MS manfiy bo'lmasligi kerak")
	}
	if c.TranslateTimeout <= 0 {
		return fmt.Errorf("TRANSLATE_TIMEOUT_SECONDS musbat bo'lishi kerak")
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("WORKER_COUNT musbat bo'lishi kerak: %d", c.WorkerCount)
	}
	if !entity.IsSupportedLanguage(c.DefaultLang) {
		return fmt.Errorf("DEFAULT_LANG qo'llab-quvvatlanmaydi: %q", c.DefaultLang)
	}
	switch c.PrefsStorage {
	case "", "memory", "sqlite", "postgres":
	default:
		return fmt.Errorf("PREFS_STORAGE noto'g'ri: %q (memory|sqlite|postgres)", c.PrefsStorage)
	}
	if c.PrefsStorage == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("PREFS_STORAGE=postgres, lekin POSTGRES_DSN bo'sh")
	}

	switch c.TranslatorProvider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("TRANSLATOR_PROVIDER noto'g'ri: %q (gemini|openai)", c.TranslatorProvider)
	}

	// Validatsiya
	if c.AllowEmptySecrets {
		return nil
	}
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable bo'sh")
	}
	if c.TranslatorProvider == ProviderGemini && c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable bo'sh")
	}
	if c.TranslatorProvider == ProviderOpenAI && c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable bo'sh")
	}
	return nil
}

// PostgresDSNFromEnv POSTGRES_DSN, DATABASE_URL yoki POSTGRES_* qismlari (shu tartibda)
func PostgresDSNFromEnv() string {
	if dsn := getenvAny("POSTGRES_DSN", "DATABASE_URL"); dsn != "" {
		return dsn
	}
	return BuildPostgresDSNFromEnv()
}

// BuildPostgresDSNFromEnv POSTGRES_HOST/USER/DB/... dan DSN yig'adi.
// Majburiy qismlar bo'lmasa bo'sh string.
func BuildPostgresDSNFromEnv() string {
	host := strings.TrimSpace(os.Getenv("POSTGRES_HOST"))
	user := strings.TrimSpace(os.Getenv("POSTGRES_USER"))
	password := os.Getenv("POSTGRES_PASSWORD")
	db := strings.TrimSpace(os.Getenv("POSTGRES_DB"))
	port := strings.TrimSpace(os.Getenv("POSTGRES_PORT"))
	sslmode := strings.TrimSpace(os.Getenv("POSTGRES_SSLMODE"))

	if host == "" || user == "" || db == "" {
		return ""
	}
	if port == "" {
		port = "5432"
	}
	if sslmode == "" {
		sslmode = "disable"
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + strings.TrimPrefix(db, "/"),
	}
	if password == "" {
		u.User = url.User(user)
	} else {
		u.User = url.UserPassword(user, password)
	}
	q := u.Query()
	q.Set("sslmode", sslmode)
	u.RawQuery = q.Encode()
	return u.String()
}

func getenvAny(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func getenvDefault(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s butun son bo'lishi kerak: %q", key, value)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return defaultValue
	}
}
