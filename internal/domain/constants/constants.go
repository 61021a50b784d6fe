package constants

import "time"

// Tarjima pipeline konstantalari
const (
	// DefaultLanguage foydalanuvchi til tanlamagan bo'lsa ishlatiladi
	DefaultLanguage = "en"

	// DefaultCacheSize tarjima keshidagi maksimal kalitlar soni
	DefaultCacheSize = 100

	// DefaultCacheKeyLength kesh kalitiga kiradigan matn prefiksi (rune)
	DefaultCacheKeyLength = 50

	// MaxRetries tarjima provayderiga so'rov yuborish uchun max urinishlar
	MaxRetries = 3

	// RetryDelay urinishlar orasidagi doimiy kutish vaqti
	RetryDelay = time.Second

	// TranslateTimeout bitta xabar tarjimasi uchun umumiy limit
	TranslateTimeout = 45 * time.Second
)

// AI Model konstantalari
const (
	// GeminiModelName Gemini model nomi
	GeminiModelName = "gemini-2.5-flash"

	// OpenAIModelName OpenAI model nomi
	OpenAIModelName = "gpt-4o-mini"

	// AITemperature tarjima uchun past temperatura
	AITemperature = 0.1
)

// Telegram konstantalari
const (
	// MessageLimit Telegram xabar uzunligi limiti
	MessageLimit = 4096

	// DefaultWorkerCount tarjima workerlari soni
	DefaultWorkerCount = 30

	// SQLiteDefaultPath preference DB fayli
	SQLiteDefaultPath = "users.db"
)
