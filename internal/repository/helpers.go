package repository

import (
	"database/sql"
	"time"
)

const dateLayout = "2006-01-02"

// parseDate parses a stored date-only column. Dates are stored and
// compared as UTC midnights.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// stringOrEmpty unwraps a sql.NullString.
func stringOrEmpty(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
