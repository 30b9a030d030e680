package services

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/yigit/roster/internal/app/models"
	"github.com/yigit/roster/internal/app/repositories"
	"github.com/yigit/roster/internal/pkg/apperrors"
)

// LoadReport summarizes a students file scan
type LoadReport struct {
	Enrolled int
	Skipped  int
}

// RosterService defines the course roster workflows
type RosterService interface {
	// LoadFromFiles reads the course, its instructor and its students from the
	// data files and returns the assembled course. Any error is terminal.
	LoadFromFiles() (*models.Course, LoadReport, error)

	// EnrollFromFile adds students from the students file to course until the
	// first failure, which is logged. It never fails.
	EnrollFromFile(course *models.Course) LoadReport

	// Display prints the course details
	Display(w io.Writer, course *models.Course) error

	// Save overwrites the three data files with the course state. Every file
	// is attempted; the returned error joins the individual failures.
	Save(course *models.Course) error
}

// rosterServiceImpl implements the RosterService interface
type rosterServiceImpl struct {
	rosterRepo *repositories.RosterRepository
	logger     zerolog.Logger
}

// NewRosterService creates a new roster service instance
func NewRosterService(rosterRepo *repositories.RosterRepository, logger zerolog.Logger) RosterService {
	return &rosterServiceImpl{
		rosterRepo: rosterRepo,
		logger:     logger,
	}
}

// LoadFromFiles loads course, instructor and students
func (s *rosterServiceImpl) LoadFromFiles() (*models.Course, LoadReport, error) {
	files := s.rosterRepo.Files()

	course, err := s.rosterRepo.ReadCourse()
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("error reading course: %w", err)
	}
	if course == nil {
		return nil, LoadReport{}, fmt.Errorf("%s: %w", files.Course, apperrors.ErrNoRecord)
	}
	s.logger.Debug().Str("course_id", course.CourseID).Msg("Course loaded")

	instructor, err := s.rosterRepo.ReadInstructor()
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("error reading instructor: %w", err)
	}
	if instructor == nil {
		return nil, LoadReport{}, fmt.Errorf("%s: %w", files.Instructor, apperrors.ErrNoRecord)
	}
	s.logger.Info().Str("role", string(instructor.Role())).Str("instructor_id", instructor.InstructorID).Msg("Instructor loaded")

	report, err := s.loadStudents(course)
	if err != nil {
		return nil, report, err
	}

	course.AssignInstructor(*instructor)
	return course, report, nil
}

// loadStudents enrolls every valid student line. Format errors and read
// failures are logged and skipped; a conversion error aborts the load.
func (s *rosterServiceImpl) loadStudents(course *models.Course) (LoadReport, error) {
	var report LoadReport
	file := s.rosterRepo.Files().Students

	err := s.rosterRepo.ReadStudents(func(lineNo int, student models.Student, parseErr error) error {
		if parseErr == nil {
			course.AddStudent(student)
			report.Enrolled++
			return nil
		}
		if apperrors.KindOf(parseErr) == apperrors.KindConversion {
			return fmt.Errorf("%s line %d: %w", file, lineNo, parseErr)
		}
		report.Skipped++
		s.logger.Error().Err(parseErr).Str("role", string(student.Role())).Str("file", file).Int("line", lineNo).Msg("Error reading students")
		return nil
	})

	switch {
	case err == nil:
	case apperrors.KindOf(err) == apperrors.KindConversion:
		return report, err
	default:
		s.logger.Error().Err(err).Str("file", file).Msg("Error reading students")
	}

	s.logger.Info().Int("enrolled", report.Enrolled).Int("skipped", report.Skipped).Msg("Students loaded")
	return report, nil
}

// EnrollFromFile adds students until the first failure
func (s *rosterServiceImpl) EnrollFromFile(course *models.Course) LoadReport {
	var report LoadReport
	err := s.rosterRepo.ReadStudents(func(_ int, student models.Student, parseErr error) error {
		if parseErr != nil {
			return parseErr
		}
		course.AddStudent(student)
		report.Enrolled++
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.rosterRepo.Files().Students).Msg("Error reading students")
	}

	s.logger.Info().Int("enrolled", report.Enrolled).Msg("Students loaded")
	return report
}

// Display prints the course details
func (s *rosterServiceImpl) Display(w io.Writer, course *models.Course) error {
	if course == nil {
		return errors.New("no course to display")
	}
	return course.WriteDetails(w)
}

// Save writes students, instructor and course files
func (s *rosterServiceImpl) Save(course *models.Course) error {
	if course == nil {
		return errors.New("no course to save")
	}
	files := s.rosterRepo.Files()
	var finalErr error

	if err := s.rosterRepo.WriteStudents(course.Students()); err != nil {
		s.logger.Error().Err(err).Str("file", files.Students).Msg("Error saving students to CSV")
		finalErr = errors.Join(finalErr, err)
	}

	var instructor *models.Instructor
	if i, ok := course.Instructor(); ok {
		instructor = &i
	}
	if err := s.rosterRepo.WriteInstructor(instructor); err != nil {
		s.logger.Error().Err(err).Str("file", files.Instructor).Msg("Error saving instructor to CSV")
		finalErr = errors.Join(finalErr, err)
	}

	if err := s.rosterRepo.WriteCourse(course); err != nil {
		s.logger.Error().Err(err).Str("file", files.Course).Msg("Error saving course to CSV")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		s.logger.Info().Str("course_id", course.CourseID).Msg("Roster saved")
	}
	return finalErr
}
