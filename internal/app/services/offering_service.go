package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/emreo/scholaris/internal/app/models"
	"github.com/emreo/scholaris/internal/app/models/dto"
	"github.com/emreo/scholaris/internal/db"
	"github.com/emreo/scholaris/internal/pkg/apperrors"
	"github.com/emreo/scholaris/internal/pkg/helpers"
	"github.com/emreo/scholaris/internal/pkg/notifier"
)

type offeringService struct {
	tx        db.TxRunner
	offerings OfferingStore
	meetings  MeetingStore
	ledger    LedgerStore
	students  StudentStore
	catalog   CatalogStore
	codegen   *CodeGenerator
	validator *ScheduleValidator
	notify    notifier.Notifier
	logger    zerolog.Logger
}

// NewOfferingService creates the course assignment orchestrator.
func NewOfferingService(
	tx db.TxRunner,
	offerings OfferingStore,
	meetings MeetingStore,
	ledger LedgerStore,
	students StudentStore,
	catalog CatalogStore,
	codegen *CodeGenerator,
	validator *ScheduleValidator,
	notify notifier.Notifier,
	logger zerolog.Logger,
) OfferingService {
	return &offeringService{
		tx:        tx,
		offerings: offerings,
		meetings:  meetings,
		ledger:    ledger,
		students:  students,
		catalog:   catalog,
		codegen:   codegen,
		validator: validator,
		notify:    notify,
		logger:    logger,
	}
}

// Create builds a new offering as one transaction: code allocation, schedule
// validation, the offering row, its meetings and the optional initial
// enrollment block all commit or roll back together. If the allocated code
// loses a uniqueness race at insert time the whole transaction is replayed
// with a fresh sequence value, at most maxCodeRetries times.
func (s *offeringService) Create(ctx context.Context, req dto.CreateOfferingRequest) (*dto.OfferingResponse, error) {
	course, err := s.catalog.GetCourseByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	teacher, err := s.catalog.GetTeacherByID(ctx, req.TeacherID)
	if err != nil {
		return nil, err
	}
	program, err := s.catalog.GetProgramByID(ctx, req.ProgramID)
	if err != nil {
		return nil, err
	}

	term, err := parseTerm(req.Semester, req.SchoolYear)
	if err != nil {
		return nil, err
	}
	meetings, err := parseMeetings(req.Meetings)
	if err != nil {
		return nil, err
	}
	if err := s.requireKnownStudents(ctx, req.StudentIDs); err != nil {
		return nil, err
	}

	offering := &models.Offering{
		CourseID:  req.CourseID,
		TeacherID: req.TeacherID,
		ProgramID: req.ProgramID,
		Section:   strings.TrimSpace(req.Section),
		Term:      term,
		Units:     course.Units,
		Status:    models.OfferingActive,
	}

	enrolled := 0
	for attempt := 1; ; attempt++ {
		err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			code, err := s.codegen.Generate(ctx, tx, course, term)
			if err != nil {
				return apperrors.NewTransientError(err, "failed to allocate offering code")
			}
			offering.Code = code

			conflict, err := s.validator.Validate(ctx, tx, req.TeacherID, term, 0, meetings)
			if err != nil {
				return apperrors.NewTransientError(err, "failed to scan for schedule conflicts")
			}
			if conflict != nil {
				return conflict
			}

			if err := s.offerings.Create(ctx, tx, offering); err != nil {
				return err
			}
			if err := s.meetings.ReplaceForOffering(ctx, tx, offering.ID, meetings); err != nil {
				return apperrors.NewTransientError(err, "failed to save meetings")
			}

			enrolled = 0
			if len(req.StudentIDs) > 0 {
				enrolled, err = s.ledger.CreateRows(ctx, tx, offering.ID, req.StudentIDs)
				if err != nil {
					return apperrors.NewTransientError(err, "failed to enroll initial students")
				}
			}
			return nil
		})
		if err == nil {
			break
		}

		var conflict *ScheduleConflict
		if errors.As(err, &conflict) {
			return nil, apperrors.NewConflictError(conflict.Error())
		}
		// The only ErrConflict left is a duplicate offering code: another
		// create committed the same code between our sequence read and insert.
		if apperrors.Is(err, apperrors.ErrConflict) && attempt < maxCodeRetries {
			s.logger.Warn().
				Str("code", offering.Code).
				Int("attempt", attempt).
				Msg("Offering code collision, retrying with fresh sequence")
			continue
		}
		return nil, err
	}

	s.logger.Info().
		Int64("offeringId", offering.ID).
		Str("code", offering.Code).
		Int64("teacherId", teacher.ID).
		Int("enrolled", enrolled).
		Msg("Offering created")

	s.notify.Notify(teacher.ID, "New course assignment",
		fmt.Sprintf("You have been assigned %s %s (%s)", course.Code, offering.Section, offering.Code))

	offering.Course = course
	offering.Teacher = teacher
	offering.Program = program
	offering.Meetings = meetings
	resp := dto.FromOffering(offering, enrolled)
	return &resp, nil
}

// Update re-assigns an offering, optionally replaces its schedule and
// reconciles enrollment, all in one transaction. The offering code and any
// recorded scores are never touched.
func (s *offeringService) Update(ctx context.Context, id int64, req dto.UpdateOfferingRequest) (*dto.OfferingResponse, error) {
	teacher, err := s.catalog.GetTeacherByID(ctx, req.TeacherID)
	if err != nil {
		return nil, err
	}
	if _, err := s.catalog.GetProgramByID(ctx, req.ProgramID); err != nil {
		return nil, err
	}

	term, err := parseTerm(req.Semester, req.SchoolYear)
	if err != nil {
		return nil, err
	}

	var candidates []*models.Meeting
	if req.Meetings != nil {
		candidates, err = parseMeetings(*req.Meetings)
		if err != nil {
			return nil, err
		}
	} else {
		candidates, err = s.meetings.GetByOffering(ctx, id)
		if err != nil {
			return nil, apperrors.NewTransientError(err, "failed to load current meetings")
		}
	}

	if err := s.requireKnownStudents(ctx, req.AddStudentIDs); err != nil {
		return nil, err
	}

	var (
		offering     *models.Offering
		notifyNew    bool
		addedCount   int
		removedCount int
	)
	err = s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		offering, err = s.offerings.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		if offering.Status != models.OfferingActive {
			return apperrors.NewConflictError(fmt.Sprintf("offering %s is retired and cannot be reassigned", offering.Code))
		}

		conflict, err := s.validator.Validate(ctx, tx, req.TeacherID, term, id, candidates)
		if err != nil {
			return apperrors.NewTransientError(err, "failed to scan for schedule conflicts")
		}
		if conflict != nil {
			return apperrors.NewConflictError(conflict.Error())
		}

		notifyNew = offering.TeacherID != req.TeacherID
		offering.TeacherID = req.TeacherID
		offering.ProgramID = req.ProgramID
		offering.Section = strings.TrimSpace(req.Section)
		offering.Term = term

		if err := s.offerings.Update(ctx, tx, offering); err != nil {
			return err
		}
		if req.Meetings != nil {
			if err := s.meetings.ReplaceForOffering(ctx, tx, id, candidates); err != nil {
				return apperrors.NewTransientError(err, "failed to replace meetings")
			}
		}
		if len(req.AddStudentIDs) > 0 {
			addedCount, err = s.ledger.CreateRows(ctx, tx, id, req.AddStudentIDs)
			if err != nil {
				return apperrors.NewTransientError(err, "failed to enroll students")
			}
		}
		if len(req.RemoveStudentIDs) > 0 {
			removedCount, err = s.ledger.DeleteRows(ctx, tx, id, req.RemoveStudentIDs)
			if err != nil {
				return apperrors.NewTransientError(err, "failed to unenroll students")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("offeringId", id).
		Str("code", offering.Code).
		Int("added", addedCount).
		Int("removed", removedCount).
		Msg("Offering updated")

	if notifyNew {
		s.notify.Notify(teacher.ID, "New course assignment",
			fmt.Sprintf("You have been assigned %s", offering.Code))
	}

	return s.Get(ctx, id)
}

// Delete removes an offering with its meetings and ledger rows. When any
// ledger row already carries a score the delete is refused unless force is
// set, since it would silently destroy grades.
func (s *offeringService) Delete(ctx context.Context, id int64, force bool) error {
	var code string
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		offering, err := s.offerings.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}
		code = offering.Code

		if !force {
			graded, err := s.ledger.HasGradedRows(ctx, tx, id)
			if err != nil {
				return apperrors.NewTransientError(err, "failed to inspect ledger")
			}
			if graded {
				return apperrors.NewHasDependentsError(fmt.Sprintf("offering %s has recorded scores; delete requires force", code))
			}
		}

		if err := s.ledger.DeleteForOffering(ctx, tx, id); err != nil {
			return apperrors.NewTransientError(err, "failed to delete ledger rows")
		}
		if err := s.meetings.DeleteForOffering(ctx, tx, id); err != nil {
			return apperrors.NewTransientError(err, "failed to delete meetings")
		}
		return s.offerings.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info().Int64("offeringId", id).Str("code", code).Bool("force", force).Msg("Offering deleted")
	return nil
}

// Retire marks an offering retired. Retired offerings stop accepting
// enrollments and drop out of conflict scans, but their ledger remains
// readable and editable. Retiring twice is a no-op.
func (s *offeringService) Retire(ctx context.Context, id int64) error {
	offering, err := s.offerings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if offering.Status == models.OfferingRetired {
		return nil
	}
	if err := s.offerings.UpdateStatus(ctx, id, models.OfferingRetired); err != nil {
		return err
	}
	s.logger.Info().Int64("offeringId", id).Str("code", offering.Code).Msg("Offering retired")
	return nil
}

// Get returns the offering detail with meetings and the enrolled count.
func (s *offeringService) Get(ctx context.Context, id int64) (*dto.OfferingResponse, error) {
	offering, err := s.offerings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	offering.Meetings, err = s.meetings.GetByOffering(ctx, id)
	if err != nil {
		return nil, apperrors.NewTransientError(err, "failed to load meetings")
	}
	enrolled, err := s.ledger.CountForOffering(ctx, id)
	if err != nil {
		return nil, apperrors.NewTransientError(err, "failed to count enrollment")
	}

	resp := dto.FromOffering(offering, enrolled)
	return &resp, nil
}

// List returns offerings, optionally filtered to one term, with meetings and
// enrolled counts attached.
func (s *offeringService) List(ctx context.Context, term *models.Term) ([]dto.OfferingResponse, error) {
	if term != nil {
		if _, err := parseTerm(string(term.Semester), term.SchoolYear); err != nil {
			return nil, err
		}
	}

	offerings, err := s.offerings.ListByTerm(ctx, term)
	if err != nil {
		return nil, apperrors.NewTransientError(err, "failed to list offerings")
	}

	result := make([]dto.OfferingResponse, 0, len(offerings))
	for _, o := range offerings {
		o.Meetings, err = s.meetings.GetByOffering(ctx, o.ID)
		if err != nil {
			return nil, apperrors.NewTransientError(err, "failed to load meetings")
		}
		enrolled, err := s.ledger.CountForOffering(ctx, o.ID)
		if err != nil {
			return nil, apperrors.NewTransientError(err, "failed to count enrollment")
		}
		result = append(result, dto.FromOffering(o, enrolled))
	}
	return result, nil
}

// requireKnownStudents rejects unknown ids. An empty list is fine here;
// enrollment is optional on create and update.
func (s *offeringService) requireKnownStudents(ctx context.Context, studentIDs []int64) error {
	if len(studentIDs) == 0 {
		return nil
	}

	existing, err := s.students.FilterExisting(ctx, studentIDs)
	if err != nil {
		return apperrors.NewTransientError(err, "failed to resolve students")
	}
	known := make(map[int64]bool, len(existing))
	for _, id := range existing {
		known[id] = true
	}
	var missing []int64
	for _, id := range studentIDs {
		if !known[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("unknown student ids: %v", missing))
	}
	return nil
}

// parseTerm validates the semester label and the "YYYY-YYYY" school year pair.
func parseTerm(semester, schoolYear string) (models.Term, error) {
	sem := models.Semester(strings.ToUpper(strings.TrimSpace(semester)))
	if !sem.Valid() {
		return models.Term{}, apperrors.NewValidationError(fmt.Sprintf("invalid semester %q", semester))
	}

	parts := strings.Split(strings.TrimSpace(schoolYear), "-")
	if len(parts) != 2 {
		return models.Term{}, apperrors.NewValidationError(fmt.Sprintf("invalid school year %q, expected YYYY-YYYY", schoolYear))
	}
	first, err1 := strconv.Atoi(parts[0])
	second, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || second != first+1 {
		return models.Term{}, apperrors.NewValidationError(fmt.Sprintf("invalid school year %q, expected consecutive years", schoolYear))
	}

	return models.Term{Semester: sem, SchoolYear: fmt.Sprintf("%d-%d", first, second)}, nil
}

// parseMeetings converts and validates requested time blocks. Each block
// needs a day 0-6, HH:MM endpoints with start strictly before end, and a
// room.
func parseMeetings(reqs []dto.MeetingRequest) ([]*models.Meeting, error) {
	meetings := make([]*models.Meeting, 0, len(reqs))
	for i, r := range reqs {
		if r.Day < 0 || r.Day > 6 {
			return nil, apperrors.NewValidationError(fmt.Sprintf("meeting %d: day %d out of range 0-6", i+1, r.Day))
		}
		start, err := helpers.ParseClockMinute(r.Start)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("meeting %d: %v", i+1, err))
		}
		end, err := helpers.ParseClockMinute(r.End)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("meeting %d: %v", i+1, err))
		}
		if start >= end {
			return nil, apperrors.NewValidationError(fmt.Sprintf("meeting %d: start %s must be before end %s", i+1, r.Start, r.End))
		}
		room := strings.TrimSpace(r.Room)
		if room == "" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("meeting %d: room is required", i+1))
		}
		meetings = append(meetings, &models.Meeting{
			Day:         r.Day,
			StartMinute: start,
			EndMinute:   end,
			Room:        room,
		})
	}
	return meetings, nil
}
