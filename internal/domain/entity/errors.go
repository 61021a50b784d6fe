package entity

import "errors"

// Noto'g'ri kiritish xatolari. Handler ularni log qilmaydi, foydalanuvchiga tuzatish matnini yuboradi.
var (
	ErrEmptyText           = errors.New("empty text")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
