package services

import (
	"context"
	"sync"
	"testing"

	"github.com/emreo/scholaris/internal/app/models"
)

func TestFormatOfferingCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		term models.Term
		seq  int
		want string
	}{
		{
			name: "first semester single digit seq",
			code: "MATH101",
			term: models.Term{Semester: models.SemesterFirst, SchoolYear: "2025-2026"},
			seq:  1,
			want: "MATH101-1-2025-01",
		},
		{
			name: "second semester",
			code: "ENG205",
			term: models.Term{Semester: models.SemesterSecond, SchoolYear: "2025-2026"},
			seq:  7,
			want: "ENG205-2-2025-07",
		},
		{
			name: "summer term uses S",
			code: "PE1",
			term: models.Term{Semester: models.SemesterSummer, SchoolYear: "2024-2025"},
			seq:  3,
			want: "PE1-S-2024-03",
		},
		{
			name: "double digit seq not padded further",
			code: "CS50",
			term: models.Term{Semester: models.SemesterFirst, SchoolYear: "2025-2026"},
			seq:  12,
			want: "CS50-1-2025-12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatOfferingCode(tt.code, tt.term, tt.seq)
			if got != tt.want {
				t.Errorf("FormatOfferingCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeGeneratorSequencesPerCourseAndTerm(t *testing.T) {
	ctx := context.Background()
	store := newFakeOfferingStore()
	gen := NewCodeGenerator(store)

	course := &models.Course{ID: 1, Code: "MATH101"}
	other := &models.Course{ID: 2, Code: "ENG205"}
	first := models.Term{Semester: models.SemesterFirst, SchoolYear: "2025-2026"}
	second := models.Term{Semester: models.SemesterSecond, SchoolYear: "2025-2026"}

	got1, err := gen.Generate(ctx, nil, course, first)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	got2, err := gen.Generate(ctx, nil, course, first)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got1 != "MATH101-1-2025-01" || got2 != "MATH101-1-2025-02" {
		t.Errorf("same course+term sequence = %q, %q; want -01 then -02", got1, got2)
	}

	// A different term or course restarts its own sequence.
	got3, err := gen.Generate(ctx, nil, course, second)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got3 != "MATH101-2-2025-01" {
		t.Errorf("new term sequence = %q, want MATH101-2-2025-01", got3)
	}
	got4, err := gen.Generate(ctx, nil, other, first)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got4 != "ENG205-1-2025-01" {
		t.Errorf("new course sequence = %q, want ENG205-1-2025-01", got4)
	}
}

func TestCodeGeneratorNoDuplicatesUnderSequentialLoad(t *testing.T) {
	ctx := context.Background()
	store := newFakeOfferingStore()
	gen := NewCodeGenerator(store)

	course := &models.Course{ID: 1, Code: "MATH101"}
	term := models.Term{Semester: models.SemesterFirst, SchoolYear: "2025-2026"}

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := gen.Generate(ctx, nil, course, term)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if seen[code] {
			t.Fatalf("duplicate code allocated: %s", code)
		}
		seen[code] = true
	}
}

func TestCodeGeneratorNoDuplicatesUnderConcurrentAllocation(t *testing.T) {
	store := newFakeOfferingStore()
	gen := NewCodeGenerator(store)

	course := &models.Course{ID: 1, Code: "MATH101"}
	term := models.Term{Semester: models.SemesterFirst, SchoolYear: "2025-2026"}

	const workers = 32
	codes := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := gen.Generate(context.Background(), nil, course, term)
			if err != nil {
				t.Errorf("Generate() error = %v", err)
				return
			}
			codes <- code
		}()
	}
	wg.Wait()
	close(codes)

	seen := map[string]bool{}
	for code := range codes {
		if seen[code] {
			t.Errorf("duplicate code allocated: %s", code)
		}
		seen[code] = true
	}
	if len(seen) != workers {
		t.Errorf("allocated %d distinct codes, want %d", len(seen), workers)
	}
}
