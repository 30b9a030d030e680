package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yigit/roster/internal/config"
)

func testConfig(t *testing.T, files map[string]string) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := &config.Config{}
	cfg.Data.Dir = dir
	cfg.Data.CourseFile = "course.csv"
	cfg.Data.InstructorFile = "instructor.csv"
	cfg.Data.StudentsFile = "students.csv"
	cfg.Demo.CourseID = "101"
	cfg.Demo.CourseName = "Object-Oriented Programming"
	cfg.Demo.Credits = 4
	cfg.Demo.InstructorID = "501"
	cfg.Demo.InstructorName = "Dr. Emily White"
	cfg.Demo.InstructorEmail = "emily.white@university.com"
	cfg.Demo.InstructorDept = "Computer Science"
	return cfg, dir
}

func TestRunFromFiles_DisplaysAndSaves(t *testing.T) {
	cfg, dir := testConfig(t, map[string]string{
		"course.csv":     "CourseID,CourseName,Credits\n101,Intro to CS,3\n999,Ignored,1\n",
		"instructor.csv": "InstructorID,Name,Email,Department\n501,Dr. White,white@u.edu,CS\n",
		"students.csv":   "StudentID,Name,Email\n1,Alice,a@u.edu\n2,Bob\n02,Bob,b@u.edu\n",
	})

	var out, logs bytes.Buffer
	r, err := New(cfg, zerolog.New(&logs), &out)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RunFromFiles(); err != nil {
		t.Fatalf("RunFromFiles: %v", err)
	}

	display := out.String()
	alice := strings.Index(display, "Student ID: 1\nName: Alice")
	bob := strings.Index(display, "Student ID: 2\nName: Bob")
	if !strings.HasPrefix(display, "Course ID: 101\n") || alice < 0 || bob < alice {
		t.Fatalf("unexpected display:\n%s", display)
	}

	want := map[string]string{
		"course.csv":     "CourseID,CourseName,Credits\n101,Intro to CS,3\n",
		"instructor.csv": "InstructorID,Name,Email,Department\n501,Dr. White,white@u.edu,CS\n",
		"students.csv":   "StudentID,Name,Email\n1,Alice,a@u.edu\n2,Bob,b@u.edu\n",
	}
	for name, content := range want {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != content {
			t.Fatalf("%s = %q, want %q", name, data, content)
		}
	}
}

func TestRunFromFiles_LongStudentLineKeepsLaterStudents(t *testing.T) {
	longName := strings.Repeat("b", 70*1024)
	students := "StudentID,Name,Email\n1,Alice,a@u.edu\n2," + longName + ",b@u.edu\n3,Carol,c@u.edu\n"
	cfg, dir := testConfig(t, map[string]string{
		"course.csv":     "CourseID,CourseName,Credits\n101,Intro to CS,3\n",
		"instructor.csv": "InstructorID,Name,Email,Department\n501,Dr. White,white@u.edu,CS\n",
		"students.csv":   students,
	})

	var out, logs bytes.Buffer
	r, err := New(cfg, zerolog.New(&logs), &out)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RunFromFiles(); err != nil {
		t.Fatalf("RunFromFiles: %v", err)
	}

	if !strings.Contains(out.String(), "Student ID: 3\nName: Carol") {
		t.Fatalf("Carol missing from display")
	}
	data, err := os.ReadFile(filepath.Join(dir, "students.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != students {
		t.Fatalf("students.csv lost data after save: %d bytes, want %d", len(data), len(students))
	}
}

func TestRunFromFiles_EmptyCourseStops(t *testing.T) {
	original := map[string]string{
		"course.csv":     "CourseID,CourseName,Credits\n",
		"instructor.csv": "InstructorID,Name,Email,Department\n501,Dr. White,white@u.edu,CS\n",
		"students.csv":   "StudentID,Name,Email\n1,Alice,a@u.edu\n",
	}
	cfg, dir := testConfig(t, original)

	var out, logs bytes.Buffer
	r, err := New(cfg, zerolog.New(&logs), &out)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RunFromFiles(); err == nil {
		t.Fatalf("expected error")
	}

	if out.Len() != 0 {
		t.Fatalf("nothing should be displayed, got %q", out.String())
	}
	if !strings.Contains(logs.String(), "Unexpected error") {
		t.Fatalf("expected unexpected error log, got %s", logs.String())
	}
	for name, content := range original {
		data, _ := os.ReadFile(filepath.Join(dir, name))
		if string(data) != content {
			t.Fatalf("%s was rewritten: %q", name, data)
		}
	}
}

func TestRunDemo(t *testing.T) {
	cfg, _ := testConfig(t, map[string]string{
		"students.csv": "StudentID,Name,Email\n1,Alice,a@u.edu\n2,Bob,b@u.edu\n",
	})

	var out bytes.Buffer
	r, err := New(cfg, zerolog.Nop(), &out)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RunDemo(); err != nil {
		t.Fatal(err)
	}

	display := out.String()
	for _, want := range []string{
		"Course ID: 101\nCourse Name: Object-Oriented Programming\nCredits: 4\n",
		"Instructor ID: 501\nDepartment: Computer Science\nName: Dr. Emily White\n",
		"Student ID: 1\nName: Alice\nEmail: a@u.edu\n\nStudent ID: 2\nName: Bob\n",
	} {
		if !strings.Contains(display, want) {
			t.Fatalf("display missing %q:\n%s", want, display)
		}
	}
}

func TestRunDemo_MissingStudentsStillDisplays(t *testing.T) {
	cfg, _ := testConfig(t, nil)

	var out, logs bytes.Buffer
	r, err := New(cfg, zerolog.New(&logs), &out)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.RunDemo(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No students enrolled yet.") {
		t.Fatalf("unexpected display:\n%s", out.String())
	}
	if !strings.Contains(logs.String(), "Error reading students") {
		t.Fatalf("missing file not logged: %s", logs.String())
	}
}

func TestNewRunner_FromEnvironment(t *testing.T) {
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	dataDir := filepath.Join(dir, "data")
	t.Setenv("ROSTER_CONFIG", filepath.Join(dir, "absent.yaml"))
	t.Setenv("ROSTER_DATA_DIR", dataDir)

	var out bytes.Buffer
	r, err := NewRunner(&out)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	if r.config.Data.Dir != dataDir {
		t.Fatalf("data dir = %q", r.config.Data.Dir)
	}
	if _, err := os.Stat(dataDir); err != nil {
		t.Fatalf("data dir not created: %v", err)
	}
}
