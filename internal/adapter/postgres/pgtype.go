package postgres

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// TextToPtr converts a nullable text column to *string.
func TextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// PtrToText converts a *string to pgtype.Text (nil -> NULL).
func PtrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// DateToPtr converts a nullable date column to *time.Time (UTC midnight).
func DateToPtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	t := d.Time.UTC()
	return &t
}

// PtrToDate converts a *time.Time to pgtype.Date (nil -> NULL).
func PtrToDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}
