package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/app/models/dto"
	"github.com/emreo/scholaris/internal/db"
	"github.com/emreo/scholaris/internal/pkg/apperrors"
)

// In-memory store fakes. The tx parameter is always nil in tests; the fakes
// ignore it.

type fakeTxRunner struct {
	fail error
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	if f.fail != nil {
		return f.fail
	}
	return fn(ctx, nil)
}

type fakeOfferingStore struct {
	mu        sync.Mutex
	nextID    int64
	seqs      map[string]int
	byID      map[int64]*models.Offering
	codes     map[string]bool
	createErr []error // consumed one per Create call, nil entries mean "no injected failure"
}

func newFakeOfferingStore() *fakeOfferingStore {
	return &fakeOfferingStore{
		seqs:  map[string]int{},
		byID:  map[int64]*models.Offering{},
		codes: map[string]bool{},
	}
}

func seqKey(courseID int64, term models.Term) string {
	return fmt.Sprintf("%d|%s|%s", courseID, term.Semester, term.SchoolYear)
}

func (f *fakeOfferingStore) NextCodeSequence(ctx context.Context, tx pgx.Tx, courseID int64, term models.Term) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seqs[seqKey(courseID, term)]++
	return f.seqs[seqKey(courseID, term)], nil
}

func (f *fakeOfferingStore) Create(ctx context.Context, tx pgx.Tx, offering *models.Offering) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.createErr) > 0 {
		err := f.createErr[0]
		f.createErr = f.createErr[1:]
		if err != nil {
			return err
		}
	}
	if f.codes[offering.Code] {
		return apperrors.NewConflictError(fmt.Sprintf("offering code %s already exists", offering.Code))
	}
	f.nextID++
	offering.ID = f.nextID
	cp := *offering
	f.byID[offering.ID] = &cp
	f.codes[offering.Code] = true
	return nil
}

func (f *fakeOfferingStore) GetByID(ctx context.Context, id int64) (*models.Offering, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("offering %d not found", id))
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOfferingStore) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*models.Offering, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeOfferingStore) ListByTerm(ctx context.Context, term *models.Term) ([]*models.Offering, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Offering
	for _, o := range f.byID {
		if term != nil && (o.Term.Semester != term.Semester || o.Term.SchoolYear != term.SchoolYear) {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeOfferingStore) Update(ctx context.Context, tx pgx.Tx, offering *models.Offering) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[offering.ID]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("offering %d not found", offering.ID))
	}
	cp := *offering
	f.byID[offering.ID] = &cp
	return nil
}

func (f *fakeOfferingStore) UpdateStatus(ctx context.Context, id int64, status models.OfferingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("offering %d not found", id))
	}
	o.Status = status
	return nil
}

func (f *fakeOfferingStore) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.byID[id]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("offering %d not found", id))
	}
	delete(f.codes, o.Code)
	delete(f.byID, id)
	return nil
}

type fakeMeetingStore struct {
	mu         sync.Mutex
	byOffering map[int64][]*models.Meeting
	scheduled  []*models.ScheduledMeeting // canned conflict-scan universe
}

func newFakeMeetingStore() *fakeMeetingStore {
	return &fakeMeetingStore{byOffering: map[int64][]*models.Meeting{}}
}

func (f *fakeMeetingStore) GetByOffering(ctx context.Context, offeringID int64) ([]*models.Meeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.Meeting(nil), f.byOffering[offeringID]...), nil
}

func (f *fakeMeetingStore) FindCandidateConflicts(ctx context.Context, tx pgx.Tx, teacherID int64, rooms []string, term models.Term, crossTerm bool, excludeOfferingID int64) ([]*models.ScheduledMeeting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	roomSet := map[string]bool{}
	for _, r := range rooms {
		roomSet[r] = true
	}
	var out []*models.ScheduledMeeting
	for _, m := range f.scheduled {
		if m.OfferingID == excludeOfferingID {
			continue
		}
		if !crossTerm && (m.Term.Semester != term.Semester || m.Term.SchoolYear != term.SchoolYear) {
			continue
		}
		if m.TeacherID != teacherID && !roomSet[m.Room] {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMeetingStore) ReplaceForOffering(ctx context.Context, tx pgx.Tx, offeringID int64, meetings []*models.Meeting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := make([]*models.Meeting, 0, len(meetings))
	for i, m := range meetings {
		cp := *m
		cp.ID = int64(i + 1)
		cp.OfferingID = offeringID
		saved = append(saved, &cp)
	}
	f.byOffering[offeringID] = saved
	return nil
}

func (f *fakeMeetingStore) DeleteForOffering(ctx context.Context, tx pgx.Tx, offeringID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byOffering, offeringID)
	return nil
}

type fakeLedgerStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*models.LedgerRow
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{rows: map[int64]*models.LedgerRow{}}
}

func (f *fakeLedgerStore) addRow(row *models.LedgerRow) *models.LedgerRow {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	row.ID = f.nextID
	f.rows[row.ID] = row
	return row
}

func (f *fakeLedgerStore) CreateRows(ctx context.Context, tx pgx.Tx, offeringID int64, studentIDs []int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	added := 0
	for _, sid := range studentIDs {
		exists := false
		for _, r := range f.rows {
			if r.OfferingID == offeringID && r.StudentID == sid {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		f.nextID++
		f.rows[f.nextID] = &models.LedgerRow{
			ID:         f.nextID,
			OfferingID: offeringID,
			StudentID:  sid,
			Remark:     "INCOMPLETE",
		}
		added++
	}
	return added, nil
}

func (f *fakeLedgerStore) DeleteRows(ctx context.Context, tx pgx.Tx, offeringID int64, studentIDs []int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	removed := 0
	for id, r := range f.rows {
		if r.OfferingID != offeringID {
			continue
		}
		for _, sid := range studentIDs {
			if r.StudentID == sid {
				delete(f.rows, id)
				removed++
				break
			}
		}
	}
	return removed, nil
}

func (f *fakeLedgerStore) DeleteForOffering(ctx context.Context, tx pgx.Tx, offeringID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, r := range f.rows {
		if r.OfferingID == offeringID {
			delete(f.rows, id)
		}
	}
	return nil
}

func (f *fakeLedgerStore) GetByOffering(ctx context.Context, offeringID int64) ([]*models.LedgerRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.LedgerRow
	for _, r := range f.rows {
		if r.OfferingID == offeringID {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeLedgerStore) GetRowsForUpdate(ctx context.Context, tx pgx.Tx, offeringID int64, rowIDs []int64) (map[int64]*models.LedgerRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[int64]*models.LedgerRow{}
	for _, id := range rowIDs {
		if r, ok := f.rows[id]; ok && r.OfferingID == offeringID {
			cp := *r
			out[id] = &cp
		}
	}
	return out, nil
}

func (f *fakeLedgerStore) GetByStudentNumbers(ctx context.Context, tx pgx.Tx, offeringID int64, studentNumbers []string) (map[string]*models.LedgerRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	want := map[string]bool{}
	for _, n := range studentNumbers {
		want[n] = true
	}
	out := map[string]*models.LedgerRow{}
	for _, r := range f.rows {
		if r.OfferingID != offeringID || r.Student == nil {
			continue
		}
		if want[r.Student.StudentNumber] {
			cp := *r
			out[r.Student.StudentNumber] = &cp
		}
	}
	return out, nil
}

func (f *fakeLedgerStore) UpdateScores(ctx context.Context, tx pgx.Tx, row *models.LedgerRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.rows[row.ID]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("ledger row %d not found", row.ID))
	}
	stored.Prelim = row.Prelim
	stored.Midterm = row.Midterm
	stored.Semifinal = row.Semifinal
	stored.Final = row.Final
	stored.Remark = row.Remark
	return nil
}

func (f *fakeLedgerStore) CountForOffering(ctx context.Context, offeringID int64) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.rows {
		if r.OfferingID == offeringID {
			n++
		}
	}
	return n, nil
}

func (f *fakeLedgerStore) HasGradedRows(ctx context.Context, tx pgx.Tx, offeringID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.OfferingID == offeringID && r.HasAnyScore() {
			return true, nil
		}
	}
	return false, nil
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	addable  []*models.Student
	total    int64

	lastFilter dto.AddableStudentsFilter
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	f := &fakeStudentStore{students: map[int64]*models.Student{}}
	for _, s := range students {
		f.students[s.ID] = s
	}
	return f
}

func (f *fakeStudentStore) FindAddable(ctx context.Context, offeringID int64, filter dto.AddableStudentsFilter) ([]*models.Student, int64, error) {
	f.lastFilter = filter
	return f.addable, f.total, nil
}

func (f *fakeStudentStore) FilterExisting(ctx context.Context, studentIDs []int64) ([]int64, error) {
	var out []int64
	for _, id := range studentIDs {
		if _, ok := f.students[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

type fakeCatalogStore struct {
	courses  map[int64]*models.Course
	teachers map[int64]*models.Teacher
	programs map[int64]*models.Program
}

func newFakeCatalogStore() *fakeCatalogStore {
	return &fakeCatalogStore{
		courses:  map[int64]*models.Course{},
		teachers: map[int64]*models.Teacher{},
		programs: map[int64]*models.Program{},
	}
}

func (f *fakeCatalogStore) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if c, ok := f.courses[id]; ok {
		return c, nil
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("course %d not found", id))
}

func (f *fakeCatalogStore) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if t, ok := f.teachers[id]; ok {
		return t, nil
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("teacher %d not found", id))
}

func (f *fakeCatalogStore) GetProgramByID(ctx context.Context, id int64) (*models.Program, error) {
	if p, ok := f.programs[id]; ok {
		return p, nil
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("program %d not found", id))
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeNotifier) Notify(userID int64, title, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf("%d:%s", userID, title))
}

func (f *fakeNotifier) Close() {}

func floatPtr(v float64) *float64 { return &v }
