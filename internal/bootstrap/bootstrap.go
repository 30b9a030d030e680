package bootstrap

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appRepos "github.com/yigit/roster/internal/app/repositories"
	appServices "github.com/yigit/roster/internal/app/services"
	"github.com/yigit/roster/internal/config"
	"github.com/yigit/roster/internal/pkg/filestorage"
	"github.com/yigit/roster/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	RosterService appServices.RosterService
	Repos         *appRepos.Repositories
	FileStorage   *filestorage.LocalStorage
	Logger        zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// Every log line of the run carries the same run_id.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(config.PathFromEnv())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger.With().Str("run_id", uuid.New().String()).Logger()
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes storage, repositories and services.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Data.Dir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Repos = appRepos.NewRepositories(deps.FileStorage, appRepos.Files{
		Course:     cfg.Data.CourseFile,
		Instructor: cfg.Data.InstructorFile,
		Students:   cfg.Data.StudentsFile,
	})

	deps.RosterService = appServices.NewRosterService(deps.Repos.RosterRepository, lgr)

	return deps, nil
}
