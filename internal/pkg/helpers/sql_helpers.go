package helpers

import "database/sql"

// GetNullFloat64 converts a float64 pointer to sql.NullFloat64.
// A nil pointer maps to SQL NULL.
func GetNullFloat64(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// Float64Ptr converts a sql.NullFloat64 back to a float64 pointer.
func Float64Ptr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// GetNullString converts a string value to sql.NullString.
// An empty string maps to SQL NULL.
func GetNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// GetNullInt64 converts an int64 to sql.NullInt64. Zero maps to SQL NULL.
func GetNullInt64(i int64) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: i, Valid: true}
}
