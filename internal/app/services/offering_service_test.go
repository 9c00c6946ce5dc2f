package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/app/models/dto"
	"github.com/emreo/scholaris/internal/pkg/apperrors"
)

type offeringFixture struct {
	svc       OfferingService
	offerings *fakeOfferingStore
	meetings  *fakeMeetingStore
	ledger    *fakeLedgerStore
	students  *fakeStudentStore
	notifier  *fakeNotifier
}

func newOfferingFixture(t *testing.T) *offeringFixture {
	t.Helper()
	f := &offeringFixture{
		offerings: newFakeOfferingStore(),
		meetings:  newFakeMeetingStore(),
		ledger:    newFakeLedgerStore(),
		students: newFakeStudentStore(
			&models.Student{ID: 10, StudentNumber: "2023-00010"},
			&models.Student{ID: 11, StudentNumber: "2023-00011"},
		),
		notifier: &fakeNotifier{},
	}
	catalog := newFakeCatalogStore()
	catalog.courses[1] = &models.Course{ID: 1, ProgramID: 1, Code: "MATH101", Title: "College Algebra", Units: 3}
	catalog.teachers[5] = &models.Teacher{ID: 5, FirstName: "Liza", LastName: "Santos"}
	catalog.teachers[6] = &models.Teacher{ID: 6, FirstName: "Marco", LastName: "Dela Cruz"}
	catalog.programs[1] = &models.Program{ID: 1, Code: "BSCS", Name: "Computer Science"}

	f.svc = NewOfferingService(
		&fakeTxRunner{},
		f.offerings,
		f.meetings,
		f.ledger,
		f.students,
		catalog,
		NewCodeGenerator(f.offerings),
		NewScheduleValidator(f.meetings, false),
		f.notifier,
		zerolog.Nop(),
	)
	return f
}

func validCreateRequest() dto.CreateOfferingRequest {
	return dto.CreateOfferingRequest{
		CourseID:   1,
		TeacherID:  5,
		ProgramID:  1,
		Section:    "A",
		Semester:   "FIRST",
		SchoolYear: "2025-2026",
		Meetings: []dto.MeetingRequest{
			{Day: 1, Start: "09:00", End: "10:30", Room: "RM-204"},
			{Day: 3, Start: "09:00", End: "10:30", Room: "RM-204"},
		},
		StudentIDs: []int64{10, 11},
	}
}

func TestCreateOfferingHappyPath(t *testing.T) {
	f := newOfferingFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Create(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if resp.Code != "MATH101-1-2025-01" {
		t.Errorf("code = %q, want MATH101-1-2025-01", resp.Code)
	}
	if resp.Units != 3 {
		t.Errorf("units = %d, want the catalog course's 3", resp.Units)
	}
	if resp.Status != string(models.OfferingActive) {
		t.Errorf("status = %q, want ACTIVE", resp.Status)
	}
	if len(resp.Meetings) != 2 || resp.Meetings[0].Start != "09:00" || resp.Meetings[0].End != "10:30" {
		t.Errorf("meetings = %+v, want both requested blocks", resp.Meetings)
	}
	if resp.Enrolled != 2 {
		t.Errorf("enrolled = %d, want 2", resp.Enrolled)
	}

	saved, _ := f.meetings.GetByOffering(ctx, resp.ID)
	if len(saved) != 2 {
		t.Errorf("persisted meetings = %d, want 2", len(saved))
	}
	if count, _ := f.ledger.CountForOffering(ctx, resp.ID); count != 2 {
		t.Errorf("ledger rows = %d, want 2", count)
	}
	if len(f.notifier.calls) != 1 || !strings.HasPrefix(f.notifier.calls[0], "5:") {
		t.Errorf("notifications = %v, want one to teacher 5", f.notifier.calls)
	}
}

func TestCreateOfferingSequencePerTerm(t *testing.T) {
	f := newOfferingFixture(t)
	ctx := context.Background()

	req := validCreateRequest()
	req.StudentIDs = nil
	req.Meetings = nil
	first, err := f.svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	req.Section = "B"
	second, err := f.svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if first.Code != "MATH101-1-2025-01" || second.Code != "MATH101-1-2025-02" {
		t.Errorf("codes = %q, %q; want sequential -01, -02", first.Code, second.Code)
	}
}

func TestCreateOfferingConcurrentSameCourseAndTerm(t *testing.T) {
	f := newOfferingFixture(t)

	const workers = 8
	codes := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		section := string(rune('A' + i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := validCreateRequest()
			req.Meetings = nil
			req.StudentIDs = nil
			req.Section = section
			resp, err := f.svc.Create(context.Background(), req)
			if err != nil {
				t.Errorf("Create(section %s) error = %v", section, err)
				return
			}
			codes <- resp.Code
		}()
	}
	wg.Wait()
	close(codes)

	seen := map[string]bool{}
	for code := range codes {
		if seen[code] {
			t.Errorf("two offerings committed with code %s", code)
		}
		seen[code] = true
	}
	if len(seen) != workers {
		t.Errorf("committed %d distinct codes, want %d", len(seen), workers)
	}

	persisted, _ := f.offerings.ListByTerm(context.Background(), nil)
	if len(persisted) != workers {
		t.Errorf("offerings persisted = %d, want %d", len(persisted), workers)
	}
}

func TestCreateOfferingScheduleConflict(t *testing.T) {
	f := newOfferingFixture(t)
	f.meetings.scheduled = []*models.ScheduledMeeting{
		scheduled(99, 6, 1, 540, 630, "RM-204", "ENG205-1-2025-01"),
	}

	_, err := f.svc.Create(context.Background(), validCreateRequest())
	if !apperrors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("Create() error = %v, want ErrConflict", err)
	}
	if !strings.Contains(err.Error(), "ENG205-1-2025-01") {
		t.Errorf("error = %q, want it to name the colliding offering", err)
	}

	// Nothing may persist from the rolled-back attempt.
	offerings, _ := f.offerings.ListByTerm(context.Background(), nil)
	if len(offerings) != 0 {
		t.Errorf("offerings persisted = %d, want 0", len(offerings))
	}
}

func TestCreateOfferingValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateOfferingRequest)
		want   error
	}{
		{
			name:   "unknown course",
			mutate: func(r *dto.CreateOfferingRequest) { r.CourseID = 99 },
			want:   apperrors.ErrNotFound,
		},
		{
			name:   "unknown teacher",
			mutate: func(r *dto.CreateOfferingRequest) { r.TeacherID = 99 },
			want:   apperrors.ErrNotFound,
		},
		{
			name:   "unknown student in initial block",
			mutate: func(r *dto.CreateOfferingRequest) { r.StudentIDs = []int64{999} },
			want:   apperrors.ErrNotFound,
		},
		{
			name:   "bad semester",
			mutate: func(r *dto.CreateOfferingRequest) { r.Semester = "THIRD" },
			want:   apperrors.ErrValidation,
		},
		{
			name:   "non consecutive school year",
			mutate: func(r *dto.CreateOfferingRequest) { r.SchoolYear = "2025-2027" },
			want:   apperrors.ErrValidation,
		},
		{
			name:   "meeting start not before end",
			mutate: func(r *dto.CreateOfferingRequest) { r.Meetings[0].End = "09:00" },
			want:   apperrors.ErrValidation,
		},
		{
			name:   "malformed meeting time",
			mutate: func(r *dto.CreateOfferingRequest) { r.Meetings[0].Start = "9am" },
			want:   apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOfferingFixture(t)
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := f.svc.Create(context.Background(), req)
			if !apperrors.Is(err, tt.want) {
				t.Fatalf("Create() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreateOfferingRetriesOnCodeCollision(t *testing.T) {
	f := newOfferingFixture(t)
	f.offerings.createErr = []error{apperrors.NewConflictError("offering code MATH101-1-2025-01 already exists")}

	resp, err := f.svc.Create(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v, want success after retry", err)
	}
	// The retry re-allocated the sequence, so the second attempt got -02.
	if resp.Code != "MATH101-1-2025-02" {
		t.Errorf("code = %q, want MATH101-1-2025-02 from the retried allocation", resp.Code)
	}
}

func TestCreateOfferingGivesUpAfterRepeatedCollisions(t *testing.T) {
	f := newOfferingFixture(t)
	collision := apperrors.NewConflictError("offering code already exists")
	f.offerings.createErr = []error{collision, collision, collision}

	_, err := f.svc.Create(context.Background(), validCreateRequest())
	if !apperrors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("Create() error = %v, want ErrConflict after exhausted retries", err)
	}
}

func TestUpdateOfferingReassignsAndReconcilesEnrollment(t *testing.T) {
	f := newOfferingFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	f.students.students[12] = &models.Student{ID: 12, StudentNumber: "2023-00012"}
	f.notifier.calls = nil

	newMeetings := []dto.MeetingRequest{{Day: 2, Start: "13:00", End: "14:30", Room: "RM-301"}}
	updated, err := f.svc.Update(ctx, created.ID, dto.UpdateOfferingRequest{
		TeacherID:        6,
		ProgramID:        1,
		Section:          "B",
		Semester:         "FIRST",
		SchoolYear:       "2025-2026",
		Meetings:         &newMeetings,
		AddStudentIDs:    []int64{12},
		RemoveStudentIDs: []int64{10},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Code != created.Code {
		t.Errorf("code changed from %q to %q; the code is immutable", created.Code, updated.Code)
	}
	if updated.TeacherID != 6 || updated.Section != "B" {
		t.Errorf("updated = %+v, want teacher 6 section B", updated)
	}
	if len(updated.Meetings) != 1 || updated.Meetings[0].Room != "RM-301" {
		t.Errorf("meetings = %+v, want the replacement block", updated.Meetings)
	}
	if updated.Enrolled != 2 {
		t.Errorf("enrolled = %d, want 2 after add+remove", updated.Enrolled)
	}
	if len(f.notifier.calls) != 1 || !strings.HasPrefix(f.notifier.calls[0], "6:") {
		t.Errorf("notifications = %v, want one to the new teacher", f.notifier.calls)
	}
}

func TestUpdateOfferingRejectsRetired(t *testing.T) {
	f := newOfferingFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := f.svc.Retire(ctx, created.ID); err != nil {
		t.Fatalf("Retire() error = %v", err)
	}

	_, err = f.svc.Update(ctx, created.ID, dto.UpdateOfferingRequest{
		TeacherID:  5,
		ProgramID:  1,
		Section:    "A",
		Semester:   "FIRST",
		SchoolYear: "2025-2026",
	})
	if !apperrors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("Update() on retired offering error = %v, want ErrConflict", err)
	}
}

func TestDeleteOfferingBlockedByGrades(t *testing.T) {
	f := newOfferingFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	for _, row := range f.ledger.rows {
		if row.OfferingID == created.ID && row.StudentID == 10 {
			row.Prelim = floatPtr(2.0)
		}
	}

	err = f.svc.Delete(ctx, created.ID, false)
	if !apperrors.Is(err, apperrors.ErrHasDependents) {
		t.Fatalf("Delete() error = %v, want ErrHasDependents", err)
	}
	if _, err := f.svc.Get(ctx, created.ID); err != nil {
		t.Errorf("offering gone after refused delete: %v", err)
	}

	// force cascades the offering with its meetings and ledger rows.
	if err := f.svc.Delete(ctx, created.ID, true); err != nil {
		t.Fatalf("Delete(force) error = %v", err)
	}
	if _, err := f.svc.Get(ctx, created.ID); !apperrors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if count, _ := f.ledger.CountForOffering(ctx, created.ID); count != 0 {
		t.Errorf("ledger rows = %d, want 0 after cascade", count)
	}
	if saved, _ := f.meetings.GetByOffering(ctx, created.ID); len(saved) != 0 {
		t.Errorf("meetings = %d, want 0 after cascade", len(saved))
	}
}

func TestDeleteOfferingWithoutGrades(t *testing.T) {
	f := newOfferingFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := f.svc.Delete(ctx, created.ID, false); err != nil {
		t.Fatalf("Delete() error = %v, ungraded offerings delete without force", err)
	}
}

func TestRetireIsIdempotent(t *testing.T) {
	f := newOfferingFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, validCreateRequest())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := f.svc.Retire(ctx, created.ID); err != nil {
		t.Fatalf("Retire() error = %v", err)
	}
	if err := f.svc.Retire(ctx, created.ID); err != nil {
		t.Fatalf("second Retire() error = %v, want no-op", err)
	}

	got, err := f.svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != string(models.OfferingRetired) {
		t.Errorf("status = %q, want RETIRED", got.Status)
	}
}

func TestListOfferingsFiltersByTerm(t *testing.T) {
	f := newOfferingFixture(t)
	ctx := context.Background()

	req := validCreateRequest()
	req.Meetings = nil
	req.StudentIDs = nil
	if _, err := f.svc.Create(ctx, req); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	req.Semester = "SECOND"
	if _, err := f.svc.Create(ctx, req); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	term := &models.Term{Semester: models.SemesterFirst, SchoolYear: "2025-2026"}
	got, err := f.svc.List(ctx, term)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 1 || got[0].Semester != "FIRST" {
		t.Errorf("List(term) = %+v, want only the first-semester offering", got)
	}

	all, err := f.svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("List(nil) = %d offerings, want 2", len(all))
	}
}
