package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CreateDefaultData inserts a small starter catalog so a fresh install can
// create offerings right away. Every insert is idempotent; re-running on an
// existing database is a no-op.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default catalog data...")
	var finalErr error

	programs := []struct {
		code string
		name string
	}{
		{"BSCS", "Bachelor of Science in Computer Science"},
		{"BSED", "Bachelor of Secondary Education"},
	}
	for _, p := range programs {
		if _, err := dbPool.Exec(ctx,
			`INSERT INTO programs (code, name) VALUES ($1, $2) ON CONFLICT (code) DO NOTHING`,
			p.code, p.name); err != nil {
			lgr.Error().Err(err).Str("program", p.code).Msg("Error seeding program")
			finalErr = errors.Join(finalErr, err)
		}
	}

	courses := []struct {
		program string
		code    string
		title   string
		units   int
	}{
		{"BSCS", "MATH101", "College Algebra", 3},
		{"BSCS", "CS101", "Introduction to Programming", 3},
		{"BSED", "ENG101", "Communication Arts I", 3},
	}
	for _, c := range courses {
		if _, err := dbPool.Exec(ctx, `
			INSERT INTO courses (program_id, code, title, units)
			SELECT id, $2, $3, $4 FROM programs WHERE code = $1
			ON CONFLICT (code) DO NOTHING`,
			c.program, c.code, c.title, c.units); err != nil {
			lgr.Error().Err(err).Str("course", c.code).Msg("Error seeding course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	teachers := []struct {
		first string
		last  string
		email string
	}{
		{"Liza", "Santos", "l.santos@scholaris.edu"},
		{"Marco", "Dela Cruz", "m.delacruz@scholaris.edu"},
	}
	for _, t := range teachers {
		if _, err := dbPool.Exec(ctx,
			`INSERT INTO teachers (first_name, last_name, email) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`,
			t.first, t.last, t.email); err != nil {
			lgr.Error().Err(err).Str("teacher", t.email).Msg("Error seeding teacher")
			finalErr = errors.Join(finalErr, err)
		}
	}

	students := []struct {
		number  string
		first   string
		last    string
		program string
		year    int
		section string
	}{
		{"2023-00001", "Ana", "Reyes", "BSCS", 2, "A"},
		{"2023-00002", "Ben", "Cruz", "BSCS", 2, "A"},
		{"2023-00003", "Carla", "Lim", "BSCS", 2, "B"},
		{"2024-00001", "Diego", "Torres", "BSED", 1, "A"},
	}
	for _, s := range students {
		if _, err := dbPool.Exec(ctx, `
			INSERT INTO students (student_number, first_name, last_name, program_id, year_level, section, status)
			SELECT $2, $3, $4, id, $5, $6, 'ACTIVE' FROM programs WHERE code = $1
			ON CONFLICT (student_number) DO NOTHING`,
			s.program, s.number, s.first, s.last, s.year, s.section); err != nil {
			lgr.Error().Err(err).Str("student", s.number).Msg("Error seeding student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr != nil {
		return fmt.Errorf("seeding default data: %w", finalErr)
	}
	lgr.Info().Msg("Default catalog data in place")
	return nil
}
