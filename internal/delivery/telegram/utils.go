package telegram

import "github.com/google/uuid"

// newRequestID har bir hodisa uchun log korrelyatsiya ID si
func newRequestID() string {
	return uuid.New().String()
}
