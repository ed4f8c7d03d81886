package utils

import (
	"fmt"
	"time"
)

var acceptedDateLayouts = []string{time.RFC3339, time.DateTime, time.DateOnly}

// ParseOptionalDate aceita RFC3339, "2006-01-02 15:04:05" ou "2006-01-02".
// Uma string vazia retorna nil sem erro
func ParseOptionalDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	for _, layout := range acceptedDateLayouts {
		date, err := time.Parse(layout, dateStr)
		if err == nil {
			return &date, nil
		}
	}

	return nil, fmt.Errorf("data inválida: %s", dateStr)
}

// EndOfDay leva uma data para o último instante do mesmo dia
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), date.Location())
}

// IsDateOnly indica se a string está no formato "2006-01-02"
func IsDateOnly(dateStr string) bool {
	_, err := time.Parse(time.DateOnly, dateStr)
	return err == nil
}

func GetFirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}
