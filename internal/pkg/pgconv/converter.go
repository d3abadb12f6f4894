package pgconv

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// StringFromPgtype maps NULL to the empty string.
func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

// OptionalStringToPgtype stores an empty string as NULL.
func OptionalStringToPgtype(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	return pt.Time.UTC()
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// SearchPattern escapes LIKE wildcards so a search term only matches literally.
// A blank term yields NULL, which the list queries treat as "no filter".
func SearchPattern(term string) pgtype.Text {
	t := strings.TrimSpace(term)
	if t == "" {
		return pgtype.Text{Valid: false}
	}
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return pgtype.Text{String: r.Replace(t), Valid: true}
}

func IntToInt32(v int) int32 {
	switch {
	case v > int(^uint32(0)>>1):
		return int32(^uint32(0) >> 1)
	case v < 0:
		return 0
	}
	return int32(v)
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
