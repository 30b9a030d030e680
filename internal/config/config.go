package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when ROSTER_CONFIG is not set
const DefaultConfigPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Data struct {
		Dir            string `yaml:"dir" env:"ROSTER_DATA_DIR"`
		CourseFile     string `yaml:"course_file" env:"ROSTER_COURSE_FILE"`
		InstructorFile string `yaml:"instructor_file" env:"ROSTER_INSTRUCTOR_FILE"`
		StudentsFile   string `yaml:"students_file" env:"ROSTER_STUDENTS_FILE"`
	} `yaml:"data"`

	// Demo holds the course and instructor used by the seeded demo run
	Demo struct {
		CourseID        string `yaml:"course_id" env:"ROSTER_DEMO_COURSE_ID"`
		CourseName      string `yaml:"course_name" env:"ROSTER_DEMO_COURSE_NAME"`
		Credits         int    `yaml:"credits" env:"ROSTER_DEMO_CREDITS"`
		InstructorID    string `yaml:"instructor_id" env:"ROSTER_DEMO_INSTRUCTOR_ID"`
		InstructorName  string `yaml:"instructor_name" env:"ROSTER_DEMO_INSTRUCTOR_NAME"`
		InstructorEmail string `yaml:"instructor_email" env:"ROSTER_DEMO_INSTRUCTOR_EMAIL"`
		InstructorDept  string `yaml:"instructor_department" env:"ROSTER_DEMO_INSTRUCTOR_DEPARTMENT"`
	} `yaml:"demo"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from defaults, an optional YAML file, an
// optional .env file and environment variables, in that order.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// .env is optional; variables already set in the environment win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// PathFromEnv returns the config file path, honoring ROSTER_CONFIG
func PathFromEnv() string {
	return GetEnv("ROSTER_CONFIG", DefaultConfigPath)
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Data.Dir = "."
	config.Data.CourseFile = "course.csv"
	config.Data.InstructorFile = "instructor.csv"
	config.Data.StudentsFile = "students.csv"

	config.Demo.CourseID = "101"
	config.Demo.CourseName = "Object-Oriented Programming"
	config.Demo.Credits = 4
	config.Demo.InstructorID = "501"
	config.Demo.InstructorName = "Dr. Emily White"
	config.Demo.InstructorEmail = "emily.white@university.com"
	config.Demo.InstructorDept = "Computer Science"

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return applyEnvOverrides(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	files := map[string]string{
		"course file":     config.Data.CourseFile,
		"instructor file": config.Data.InstructorFile,
		"students file":   config.Data.StudentsFile,
	}
	for name, value := range files {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	switch strings.ToLower(config.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", config.Logging.Format)
	}

	return nil
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
