package main

import (
	"os"

	"github.com/yigit/roster/internal/pkg/logger"
	"github.com/yigit/roster/internal/runner"
)

// Loads course.csv, instructor.csv and students.csv, prints the course and
// writes the three files back. Failures are logged; the exit status is always 0.
func main() {
	r, err := runner.NewRunner(os.Stdout)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize roster")
		return
	}

	// errors are already logged by the runner
	_ = r.RunFromFiles()
}
