package models

import (
	"fmt"
	"io"
)

// Course aggregates at most one instructor and the enrolled students.
type Course struct {
	CourseID   string `json:"courseId" yaml:"course_id"`
	CourseName string `json:"courseName" yaml:"course_name"`
	Credits    int    `json:"credits" yaml:"credits"`

	instructor    Instructor
	hasInstructor bool
	students      []Student // enrollment order
}

// NewCourse creates a course with no instructor and no students
func NewCourse(courseID, courseName string, credits int) *Course {
	return &Course{
		CourseID:   courseID,
		CourseName: courseName,
		Credits:    credits,
		students:   []Student{},
	}
}

// AssignInstructor replaces the current instructor, if any
func (c *Course) AssignInstructor(instructor Instructor) {
	c.instructor = instructor
	c.hasInstructor = true
}

// Instructor returns the assigned instructor and whether one is assigned
func (c *Course) Instructor() (Instructor, bool) {
	return c.instructor, c.hasInstructor
}

// AddStudent appends a student. Duplicates are kept.
func (c *Course) AddStudent(student Student) {
	c.students = append(c.students, student)
}

// Students returns a copy of the enrolled students in enrollment order
func (c *Course) Students() []Student {
	out := make([]Student, len(c.students))
	copy(out, c.students)
	return out
}

// WriteDetails prints the course, its instructor and its students
func (c *Course) WriteDetails(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Course ID: %s\nCourse Name: %s\nCredits: %d\n", c.CourseID, c.CourseName, c.Credits); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\nInstructor Details:\n"); err != nil {
		return err
	}
	if c.hasInstructor {
		if err := WriteMember(w, c.instructor); err != nil {
			return err
		}
	} else if _, err := io.WriteString(w, "No instructor assigned.\n"); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\nEnrolled Students:\n"); err != nil {
		return err
	}
	if len(c.students) == 0 {
		_, err := io.WriteString(w, "No students enrolled yet.\n")
		return err
	}
	for _, s := range c.students {
		if err := WriteMember(w, s); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
