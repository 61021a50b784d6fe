package entity

import "time"

// Translation tarjima natijasi (keshda o'zgarmas holda saqlanadi)
type Translation struct {
	Text       string
	SourceText string
	TargetLang string
	Provider   string
	Model      string
}

// CacheKey kesh kaliti: matn prefiksi + til
type CacheKey struct {
	TextPrefix string
	TargetLang string
}

// UserPreference foydalanuvchi tanlagan tarjima tili
type UserPreference struct {
	UserID       int64
	LanguageCode string
	UpdatedAt    time.Time
}
