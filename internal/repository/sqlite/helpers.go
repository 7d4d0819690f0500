package sqlite

import (
	"database/sql"
	"strings"
	"time"
)

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

// timestamps are stored in UTC so text comparison matches time order
func utc(t time.Time) time.Time {
	return t.UTC()
}

// builds "?, ?, ?" for an IN clause
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
