package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
)

func TestBuildPreferencesXLSX(t *testing.T) {
	updated := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	data, err := BuildPreferencesXLSX([]entity.UserPreference{
		{UserID: 7, LanguageCode: "ru", UpdatedAt: updated},
		{UserID: 42, LanguageCode: "it"},
	})
	if err != nil {
		t.Fatalf("BuildPreferencesXLSX returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	for i, h := range PreferenceHeaders() {
		if rows[0][i] != h {
			t.Fatalf("header %d = %q, want %q", i, rows[0][i], h)
		}
	}
	if rows[1][0] != "7" || rows[1][1] != "ru" || rows[1][2] != "Russian" || rows[1][3] != "2025-03-01T12:00:00Z" {
		t.Fatalf("unexpected row %v", rows[1])
	}
	// menyuda yo'q kod CLDR nomini oladi
	if rows[2][2] != "Italian" {
		t.Fatalf("unexpected language name %q", rows[2][2])
	}
}

func TestDefaultFileName(t *testing.T) {
	got := DefaultFileName(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	if got != "user_languages_20250102_030405.xlsx" {
		t.Fatalf("DefaultFileName=%q", got)
	}
}
