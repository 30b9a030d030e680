package repositories

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yigit/roster/internal/app/models"
	"github.com/yigit/roster/internal/pkg/apperrors"
	"github.com/yigit/roster/internal/pkg/filestorage"
)

// Header lines written on save. Headers are never validated on read.
const (
	StudentsHeader   = "StudentID,Name,Email"
	InstructorHeader = "InstructorID,Name,Email,Department"
	CourseHeader     = "CourseID,CourseName,Credits"
)

// Files names the three roster files inside the storage
type Files struct {
	Course     string
	Instructor string
	Students   string
}

// DefaultFiles returns the file names used when none are configured
func DefaultFiles() Files {
	return Files{
		Course:     "course.csv",
		Instructor: "instructor.csv",
		Students:   "students.csv",
	}
}

// StudentVisitor receives the outcome of every student data line.
// lineNo counts from 1 and includes the header line. Returning a non-nil
// error stops the scan and ReadStudents returns that error.
type StudentVisitor func(lineNo int, student models.Student, parseErr error) error

// RosterRepository reads and writes the course, instructor and students files
type RosterRepository struct {
	storage filestorage.FileStorage
	files   Files
}

// NewRosterRepository creates a new RosterRepository
func NewRosterRepository(storage filestorage.FileStorage, files Files) *RosterRepository {
	return &RosterRepository{
		storage: storage,
		files:   files,
	}
}

// Files returns the configured file names
func (r *RosterRepository) Files() Files {
	return r.files
}

// firstDataLine skips the header and returns the first data line.
// ok is false when the file has no data line.
func (r *RosterRepository) firstDataLine(name string) (line string, ok bool, err error) {
	rc, err := r.storage.Open(name)
	if err != nil {
		return "", false, apperrors.NewIOError(r.storage.GetFullPath(name), err)
	}
	defer rc.Close()

	lines := newLineReader(rc)
	for i := 0; i < 2; i++ {
		line, ok, err = lines.next()
		if err != nil {
			return "", false, apperrors.NewIOError(r.storage.GetFullPath(name), err)
		}
		if !ok {
			return "", false, nil
		}
	}
	return line, true, nil
}

// lineReader reads newline-terminated lines of any length. The "\n" or
// "\r\n" terminator is stripped; a final unterminated line is still returned.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the next line. ok is false once the input is exhausted.
func (l *lineReader) next() (line string, ok bool, err error) {
	line, err = l.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}

// ReadCourse reads the course from the first data line of the course file.
// Lines after the first data line are ignored. Returns nil, nil when the file
// has no data line.
func (r *RosterRepository) ReadCourse() (*models.Course, error) {
	line, ok, err := r.firstDataLine(r.files.Course)
	if err != nil || !ok {
		return nil, err
	}

	course, err := ParseCourse(line)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", r.files.Course, err)
	}
	return course, nil
}

// ReadInstructor reads the instructor from the first data line of the
// instructor file. Returns nil, nil when the file has no data line.
func (r *RosterRepository) ReadInstructor() (*models.Instructor, error) {
	line, ok, err := r.firstDataLine(r.files.Instructor)
	if err != nil || !ok {
		return nil, err
	}

	instructor, err := ParseInstructor(line)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", r.files.Instructor, err)
	}
	return &instructor, nil
}

// ReadStudents parses every line after the header of the students file and
// hands each result to visit.
func (r *RosterRepository) ReadStudents(visit StudentVisitor) error {
	path := r.storage.GetFullPath(r.files.Students)
	rc, err := r.storage.Open(r.files.Students)
	if err != nil {
		return apperrors.NewIOError(path, err)
	}
	defer rc.Close()

	lines := newLineReader(rc)
	for lineNo := 1; ; lineNo++ {
		line, ok, err := lines.next()
		if err != nil {
			return apperrors.NewIOError(path, err)
		}
		if !ok {
			return nil
		}
		if lineNo == 1 {
			continue // header
		}

		student, parseErr := ParseStudent(line)
		if err := visit(lineNo, student, parseErr); err != nil {
			return err
		}
	}
}

// WriteStudents overwrites the students file with a header and one line per student
func (r *RosterRepository) WriteStudents(students []models.Student) error {
	return r.replace(r.files.Students, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, StudentsHeader); err != nil {
			return err
		}
		for _, s := range students {
			if _, err := fmt.Fprintln(w, joinFields(s.StudentID, s.Name, s.Email)); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteInstructor overwrites the instructor file. Only the header is written
// when instructor is nil.
func (r *RosterRepository) WriteInstructor(instructor *models.Instructor) error {
	return r.replace(r.files.Instructor, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, InstructorHeader); err != nil {
			return err
		}
		if instructor == nil {
			return nil
		}
		_, err := fmt.Fprintln(w, joinFields(instructor.InstructorID, instructor.Name, instructor.Email, instructor.Department))
		return err
	})
}

// WriteCourse overwrites the course file with a header and the course line
func (r *RosterRepository) WriteCourse(course *models.Course) error {
	return r.replace(r.files.Course, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, CourseHeader); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, joinFields(course.CourseID, course.CourseName, strconv.Itoa(course.Credits)))
		return err
	})
}

func (r *RosterRepository) replace(name string, write func(w io.Writer) error) error {
	if err := r.storage.Replace(name, write); err != nil {
		return apperrors.NewIOError(r.storage.GetFullPath(name), err)
	}
	return nil
}
