package models

import (
	"errors"
	"io"
)

// RoleType tags which kind of person a Member is
type RoleType string

const (
	RoleStudent    RoleType = "STUDENT"
	RoleInstructor RoleType = "INSTRUCTOR"
)

// Member is a person taking part in a course, either a Student or an Instructor
type Member interface {
	Role() RoleType
	WriteDetails(w io.Writer) error
}

var errNilMember = errors.New("nil member")

// WriteMember prints the role-specific fields of m followed by the shared
// person fields.
func WriteMember(w io.Writer, m Member) error {
	switch v := m.(type) {
	case nil:
		return errNilMember
	case *Student:
		if v == nil {
			return errNilMember
		}
	case *Instructor:
		if v == nil {
			return errNilMember
		}
	}
	return m.WriteDetails(w)
}
