package repository

import (
	"time"

	"portfolio-be/internal/database"
)

func rowString(row database.Row, key string) string {
	if value, ok := row[key].(string); ok {
		return value
	}
	return ""
}

func rowInt64(row database.Row, key string) int64 {
	switch value := row[key].(type) {
	case int64:
		return value
	case int32:
		return int64(value)
	case int:
		return int64(value)
	}
	return 0
}

// rowTime returns nil for NULL date columns.
func rowTime(row database.Row, key string) *time.Time {
	if value, ok := row[key].(time.Time); ok {
		return &value
	}
	return nil
}
