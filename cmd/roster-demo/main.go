package main

import (
	"os"

	"github.com/yigit/roster/internal/pkg/logger"
	"github.com/yigit/roster/internal/runner"
)

// Prints the seeded demo course with the students read from students.csv.
func main() {
	r, err := runner.NewRunner(os.Stdout)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize roster")
		return
	}

	_ = r.RunDemo()
}
