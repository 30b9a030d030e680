package runner

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/yigit/roster/internal/bootstrap"
	"github.com/yigit/roster/internal/config"
	"github.com/yigit/roster/internal/seed"
)

// Runner holds the state for one roster run.
type Runner struct {
	config *config.Config
	deps   *bootstrap.Dependencies
	logger zerolog.Logger
	out    io.Writer
}

// NewRunner loads configuration, sets up logging and wires dependencies.
// Course details are printed to out.
func NewRunner(out io.Writer) (*Runner, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}
	return New(cfg, lgr, out)
}

// New creates a runner from an already loaded configuration.
func New(cfg *config.Config, lgr zerolog.Logger, out io.Writer) (*Runner, error) {
	deps, err := bootstrap.BuildDependencies(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return &Runner{
		config: cfg,
		deps:   deps,
		logger: lgr,
		out:    out,
	}, nil
}

// RunFromFiles loads course, instructor and students from the data files,
// displays the course and writes it back. Nothing is displayed or saved when
// the course or instructor cannot be loaded.
func (r *Runner) RunFromFiles() error {
	svc := r.deps.RosterService

	course, _, err := svc.LoadFromFiles()
	if err != nil {
		r.logger.Error().Err(err).Msg("Unexpected error")
		return err
	}

	if err := svc.Display(r.out, course); err != nil {
		r.logger.Error().Err(err).Msg("Failed to display course")
		return err
	}

	// Save logs each failed file itself
	return svc.Save(course)
}

// RunDemo uses the seeded course and instructor, enrolls students from the
// students file and displays the course. The course is always displayed.
func (r *Runner) RunDemo() error {
	svc := r.deps.RosterService

	course := seed.DefaultCourse(r.config, r.logger)
	instructor := seed.DefaultInstructor(r.config, r.logger)

	svc.EnrollFromFile(course)
	course.AssignInstructor(instructor)

	if err := svc.Display(r.out, course); err != nil {
		r.logger.Error().Err(err).Msg("Failed to display course")
		return err
	}
	return nil
}
