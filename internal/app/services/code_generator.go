package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emreo/scholaris/internal/app/models"
)

// maxCodeRetries bounds how often an offering create is replayed when the
// allocated code loses a uniqueness race at commit time.
const maxCodeRetries = 3

// CodeGenerator produces unique, human-debuggable offering codes of the form
// COURSECODE-S-YYYY-NN where S is the semester digit and NN the per
// course+term sequence. Allocation runs inside the caller's transaction so
// the sequence read-modify-write serializes with the offering insert.
type CodeGenerator struct {
	offerings OfferingStore
}

// NewCodeGenerator creates a new code generator.
func NewCodeGenerator(offerings OfferingStore) *CodeGenerator {
	return &CodeGenerator{offerings: offerings}
}

// Generate allocates the next sequence for the course and term and formats
// the offering code.
func (g *CodeGenerator) Generate(ctx context.Context, tx pgx.Tx, course *models.Course, term models.Term) (string, error) {
	seq, err := g.offerings.NextCodeSequence(ctx, tx, course.ID, term)
	if err != nil {
		return "", err
	}
	return FormatOfferingCode(course.Code, term, seq), nil
}

// FormatOfferingCode renders an offering code deterministically from its
// parts. Kept separate from allocation so tests and tooling can predict
// codes.
func FormatOfferingCode(courseCode string, term models.Term, seq int) string {
	return fmt.Sprintf("%s-%s-%s-%02d", courseCode, semesterDigit(term.Semester), startYear(term.SchoolYear), seq)
}

func semesterDigit(s models.Semester) string {
	switch s {
	case models.SemesterFirst:
		return "1"
	case models.SemesterSecond:
		return "2"
	case models.SemesterSummer:
		return "S"
	}
	return "?"
}

// startYear extracts the opening year of a "2025-2026" school year label.
func startYear(schoolYear string) string {
	if len(schoolYear) >= 4 {
		return schoolYear[:4]
	}
	return schoolYear
}
