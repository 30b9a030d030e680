package models

import (
	"fmt"
	"io"
	"strconv"
)

// Student is a person enrolled in a course
type Student struct {
	Person
	StudentID string `json:"studentId" yaml:"student_id"` // numeric on input, kept as text
}

// NewStudent creates a student; the numeric id is stored as its decimal text
func NewStudent(studentID int, name, email string) Student {
	return Student{
		Person:    Person{Name: name, Email: email},
		StudentID: strconv.Itoa(studentID),
	}
}

// Role implements Member
func (s Student) Role() RoleType {
	return RoleStudent
}

// WriteDetails prints the student id, then the person fields
func (s Student) WriteDetails(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Student ID: %s\n", s.StudentID); err != nil {
		return err
	}
	return s.Person.WriteDetails(w)
}
