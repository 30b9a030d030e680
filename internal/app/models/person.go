package models

import (
	"fmt"
	"io"
)

// Person holds the fields shared by students and instructors
type Person struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// WriteDetails prints the name and email lines
func (p Person) WriteDetails(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Name: %s\nEmail: %s\n", p.Name, p.Email)
	return err
}
