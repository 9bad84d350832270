// Package dates содержит вспомогательные функции для разбора и нормализации дат,
// приходящих из JSON-запросов в виде строк.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Допустимые форматы целевой даты.
var layouts = []string{
	time.RFC3339,
	"2006-01-02",
	"02.01.2006",
	"01/02/2006",
}

// Normalize разбирает строку с датой в одном из поддерживаемых форматов
// и возвращает дату без времени суток (полночь UTC).
func Normalize(dateStr string) (time.Time, error) {
	const op = "dates.Normalize"
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return time.Time{}, fmt.Errorf("%s: empty date", op)
	}
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("%s: unsupported date format: %q", op, dateStr)
}
