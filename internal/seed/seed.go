package seed

import (
	"github.com/rs/zerolog"
	appModels "github.com/yigit/roster/internal/app/models"
	"github.com/yigit/roster/internal/config"
)

// DefaultCourse builds the demo course from configuration. No file is read.
func DefaultCourse(cfg *config.Config, lgr zerolog.Logger) *appModels.Course {
	course := appModels.NewCourse(cfg.Demo.CourseID, cfg.Demo.CourseName, cfg.Demo.Credits)
	lgr.Debug().Str("course_id", course.CourseID).Msg("Seeded demo course")
	return course
}

// DefaultInstructor builds the demo instructor from configuration.
func DefaultInstructor(cfg *config.Config, lgr zerolog.Logger) appModels.Instructor {
	instructor := appModels.NewInstructor(
		cfg.Demo.InstructorID,
		cfg.Demo.InstructorName,
		cfg.Demo.InstructorEmail,
		cfg.Demo.InstructorDept,
	)
	lgr.Debug().Str("instructor_id", instructor.InstructorID).Msg("Seeded demo instructor")
	return instructor
}
