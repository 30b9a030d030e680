package repositories

import (
	"errors"
	"strconv"
	"testing"

	"github.com/yigit/roster/internal/app/models"
	"github.com/yigit/roster/internal/pkg/apperrors"
)

func TestParseStudent(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		want     models.Student
		wantKind apperrors.Kind
	}{
		{name: "valid", line: "1,Alice,a@u.edu", want: models.NewStudent(1, "Alice", "a@u.edu")},
		{name: "normalizes id", line: "007,Bond,b@u.edu", want: models.NewStudent(7, "Bond", "b@u.edu")},
		{name: "empty name allowed", line: "3,,c@u.edu", want: models.NewStudent(3, "", "c@u.edu")},
		{name: "two fields", line: "1,Alice", wantKind: apperrors.KindFormat},
		{name: "four fields", line: "1,Alice,a@u.edu,extra", wantKind: apperrors.KindFormat},
		{name: "trailing empty field dropped", line: "1,Alice,", wantKind: apperrors.KindFormat},
		{name: "blank line", line: "", wantKind: apperrors.KindFormat},
		{name: "quoted comma not supported", line: `1,"Smith, Ann",s@u.edu`, wantKind: apperrors.KindFormat},
		{name: "non-integer id", line: "x1,Alice,a@u.edu", wantKind: apperrors.KindConversion},
		{name: "padded id", line: " 1,Alice,a@u.edu", wantKind: apperrors.KindConversion},
		{name: "largest 32-bit id", line: "2147483647,Max,m@u.edu", want: models.NewStudent(2147483647, "Max", "m@u.edu")},
		{name: "id beyond 32 bits", line: "3000000000,Alice,a@u.edu", wantKind: apperrors.KindConversion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStudent(tt.line)
			if tt.wantKind != "" {
				if err == nil {
					t.Fatalf("expected %s error, got %v", tt.wantKind, got)
				}
				if kind := apperrors.KindOf(err); kind != tt.wantKind {
					t.Fatalf("kind = %s, want %s (%v)", kind, tt.wantKind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseStudent_ErrorKindsAreDistinct(t *testing.T) {
	_, err := ParseStudent("1,Alice")
	if !errors.Is(err, apperrors.ErrInvalidFormat) || errors.Is(err, apperrors.ErrConversion) {
		t.Fatalf("expected only format error, got %v", err)
	}
	if err.Error() != "Invalid student format. Each line must have 3 fields." {
		t.Fatalf("unexpected message %q", err.Error())
	}

	_, err = ParseStudent("abc,Alice,a@u.edu")
	if !errors.Is(err, apperrors.ErrConversion) || errors.Is(err, apperrors.ErrInvalidFormat) {
		t.Fatalf("expected only conversion error, got %v", err)
	}
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected *strconv.NumError cause, got %v", err)
	}
}

func TestParseCourse(t *testing.T) {
	c, err := ParseCourse("101,Intro to CS,3")
	if err != nil {
		t.Fatal(err)
	}
	if c.CourseID != "101" || c.CourseName != "Intro to CS" || c.Credits != 3 {
		t.Fatalf("unexpected course %+v", c)
	}
	if len(c.Students()) != 0 {
		t.Fatalf("parsed course should have no students")
	}
	if _, ok := c.Instructor(); ok {
		t.Fatalf("parsed course should have no instructor")
	}

	if _, err := ParseCourse("101,Intro to CS"); apperrors.KindOf(err) != apperrors.KindFormat {
		t.Fatalf("expected format error, got %v", err)
	}
	if _, err := ParseCourse("101,Intro to CS,three"); apperrors.KindOf(err) != apperrors.KindConversion {
		t.Fatalf("expected conversion error, got %v", err)
	}
	if _, err := ParseCourse("101,Intro to CS,3000000000"); apperrors.KindOf(err) != apperrors.KindConversion {
		t.Fatalf("expected conversion error for out of range credits, got %v", err)
	}
}

func TestParseInstructor(t *testing.T) {
	got, err := ParseInstructor("501,Dr. White,white@u.edu,CS")
	if err != nil {
		t.Fatal(err)
	}
	want := models.NewInstructor("501", "Dr. White", "white@u.edu", "CS")
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}

	for _, line := range []string{"501,Dr. White,white@u.edu", "501,Dr. White,white@u.edu,CS,extra"} {
		_, err := ParseInstructor(line)
		if apperrors.KindOf(err) != apperrors.KindFormat {
			t.Fatalf("%q: expected format error, got %v", line, err)
		}
		if err.Error() != "Invalid instructor format. Each line must have 4 fields." {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}
}
