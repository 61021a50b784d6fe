package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
)

// SheetName eksport varag'i nomi
const SheetName = "Languages"

// PreferenceHeaders eksport ustunlari
func PreferenceHeaders() []string {
	return []string{"User ID", "Language", "Language Name", "Updated At"}
}

func preferenceRowValues(p entity.UserPreference) []interface{} {
	updated := ""
	if !p.UpdatedAt.IsZero() {
		updated = p.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return []interface{}{
		p.UserID,
		p.LanguageCode,
		entity.LanguageName(p.LanguageCode),
		updated,
	}
}

// BuildPreferencesXLSX foydalanuvchi tillarini XLSX ga yozadi
func BuildPreferencesXLSX(prefs []entity.UserPreference) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, err
	}

	for i, h := range PreferenceHeaders() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for i, pref := range prefs {
		rowIdx := i + 2
		for c, v := range preferenceRowValues(pref) {
			cell, err := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "D", 20); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultFileName user_languages_20060102_150405.xlsx
func DefaultFileName(now time.Time) string {
	return fmt.Sprintf("user_languages_%s.xlsx", now.Format("20060102_150405"))
}
