package repositories

import (
	"strconv"
	"strings"

	"github.com/yigit/roster/internal/app/models"
	"github.com/yigit/roster/internal/pkg/apperrors"
)

const fieldSeparator = ","

// splitFields splits a data line on literal commas. Quoting is not supported.
// Trailing empty fields are dropped, so "1,Alice," yields two fields.
func splitFields(line string) []string {
	fields := strings.Split(line, fieldSeparator)
	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}

// ParseStudent parses "<int id>,<name>,<email>"
func ParseStudent(line string) (models.Student, error) {
	data := splitFields(line)
	if len(data) != 3 {
		return models.Student{}, apperrors.NewFormatError("Invalid student format. Each line must have 3 fields.").
			WithDetails(map[string]interface{}{"fields": len(data)})
	}

	id, err := parseInt32(data[0])
	if err != nil {
		return models.Student{}, apperrors.NewConversionError("student ID", data[0], err)
	}

	return models.NewStudent(id, data[1], data[2]), nil
}

// ParseCourse parses "<id>,<name>,<int credits>"
func ParseCourse(line string) (*models.Course, error) {
	data := splitFields(line)
	if len(data) != 3 {
		return nil, apperrors.NewFormatError("Invalid course format. Each line must have 3 fields.").
			WithDetails(map[string]interface{}{"fields": len(data)})
	}

	credits, err := parseInt32(data[2])
	if err != nil {
		return nil, apperrors.NewConversionError("credits", data[2], err)
	}

	return models.NewCourse(data[0], data[1], credits), nil
}

// ParseInstructor parses "<id>,<name>,<email>,<department>"
func ParseInstructor(line string) (models.Instructor, error) {
	data := splitFields(line)
	if len(data) != 4 {
		return models.Instructor{}, apperrors.NewFormatError("Invalid instructor format. Each line must have 4 fields.").
			WithDetails(map[string]interface{}{"fields": len(data)})
	}

	return models.NewInstructor(data[0], data[1], data[2], data[3]), nil
}

// parseInt32 parses a decimal integer that must fit in 32 bits, the range the
// file format has always allowed for ids and credits
func parseInt32(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// joinFields is the inverse of splitFields; values are written unescaped
func joinFields(fields ...string) string {
	return strings.Join(fields, fieldSeparator)
}
