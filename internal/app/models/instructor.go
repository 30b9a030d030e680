package models

import (
	"fmt"
	"io"
)

// Instructor is the person teaching a course
type Instructor struct {
	Person
	InstructorID string `json:"instructorId" yaml:"instructor_id"`
	Department   string `json:"department" yaml:"department"`
}

// NewInstructor creates an instructor
func NewInstructor(instructorID, name, email, department string) Instructor {
	return Instructor{
		Person:       Person{Name: name, Email: email},
		InstructorID: instructorID,
		Department:   department,
	}
}

// Role implements Member
func (i Instructor) Role() RoleType {
	return RoleInstructor
}

// WriteDetails prints the instructor id and department, then the person fields
func (i Instructor) WriteDetails(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Instructor ID: %s\nDepartment: %s\n", i.InstructorID, i.Department); err != nil {
		return err
	}
	return i.Person.WriteDetails(w)
}
