package utils

import (
	"strconv"
	"time"
)

// ParseDate aceita uma data (2006-01-02), um RFC3339 ou um timestamp Unix.
// String vazia retorna nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	if unix, err := strconv.ParseInt(dateStr, 10, 64); err == nil {
		date := time.Unix(unix, 0).UTC()
		return &date, nil
	}

	if date, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return &date, nil
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ParseUnix converte um timestamp Unix opcional
func ParseUnix(value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}

	unix, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, err
	}

	return &unix, nil
}
