// internal/config/config.go
//
// Runtime configuration for the solver service and CLI.
// Responsibilities:
//   - Provide built-in defaults.
//   - Overlay an optional YAML file (--config or WORDLE_CONFIG).
//   - Overlay environment variables (after godotenv has populated them).
//   - Validate the result.
//
// Notes:
//   - Word-list and matrix paths left empty are derived from DataDir, so
//     moving DataDir moves all of them.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle-solver/internal/errs"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

// Default file names inside DataDir.
const (
	AllowedFileName = "allowed_words.txt"
	AnswersFileName = "possible_words.txt"
	MatrixFileName  = "pattern_allowed_answers.bin"
)

// Config is the full runtime configuration.
type Config struct {
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`

	DataDir     string `yaml:"data_dir"`
	AllowedFile string `yaml:"allowed_file"`
	AnswersFile string `yaml:"answers_file"`
	MatrixFile  string `yaml:"matrix_file"`
	PriorsFile  string `yaml:"priors_file"`
	PriorsDB    string `yaml:"priors_db"`

	BatchSize     int    `yaml:"batch_size"`
	SampleSize    int    `yaml:"sample_size"`
	DefaultPolicy string `yaml:"default_policy"`

	ClientOrigin   string        `yaml:"client_origin"`
	JWTSecret      string        `yaml:"jwt_secret"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

func defaults() Config {
	return Config{
		Port:           "5175",
		LogLevel:       "info",
		DataDir:        "data",
		BatchSize:      1200,
		SampleSize:     solver.DefaultSampleSize,
		DefaultPolicy:  string(solver.PolicyExpected),
		ClientOrigin:   "http://localhost:5173",
		RequestTimeout: 10 * time.Second,
	}
}

// Default returns the built-in configuration with paths resolved.
func Default() Config {
	c := defaults()
	c.resolvePaths()
	return c
}

// Load builds the configuration from defaults, the YAML file at path (or
// $WORDLE_CONFIG when path is empty; no file is fine) and the environment.
func Load(path string) (Config, error) {
	c := defaults()
	if path == "" {
		path = os.Getenv("WORDLE_CONFIG")
	}
	if path != "" {
		if err := c.readYAML(path); err != nil {
			return Config{}, err
		}
	}
	if err := c.applyEnv(); err != nil {
		return Config{}, err
	}
	c.resolvePaths()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) readYAML(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: parse config %s: %v", errs.ErrInvalidInput, path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.DataDir = getEnv("DATA_DIR", c.DataDir)
	c.AllowedFile = getEnv("ALLOWED_WORDS_FILE", c.AllowedFile)
	c.AnswersFile = getEnv("POSSIBLE_WORDS_FILE", c.AnswersFile)
	c.MatrixFile = getEnv("MATRIX_FILE", c.MatrixFile)
	c.PriorsFile = getEnv("PRIORS_FILE", c.PriorsFile)
	c.PriorsDB = getEnv("PRIORS_DB", c.PriorsDB)
	c.DefaultPolicy = getEnv("DEFAULT_POLICY", c.DefaultPolicy)
	c.ClientOrigin = getEnv("CLIENT_ORIGIN", c.ClientOrigin)
	c.JWTSecret = getEnv("JWT_SECRET", c.JWTSecret)

	var err error
	if c.BatchSize, err = getEnvInt("BATCH_SIZE", c.BatchSize); err != nil {
		return err
	}
	if c.SampleSize, err = getEnvInt("SAMPLE_SIZE", c.SampleSize); err != nil {
		return err
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: REQUEST_TIMEOUT=%q: %v", errs.ErrInvalidInput, v, err)
		}
		c.RequestTimeout = d
	}
	return nil
}

func (c *Config) resolvePaths() {
	if c.AllowedFile == "" {
		c.AllowedFile = filepath.Join(c.DataDir, AllowedFileName)
	}
	if c.AnswersFile == "" {
		c.AnswersFile = filepath.Join(c.DataDir, AnswersFileName)
	}
	if c.MatrixFile == "" {
		c.MatrixFile = filepath.Join(c.DataDir, MatrixFileName)
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("%w: port is empty", errs.ErrInvalidInput)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size %d must be positive", errs.ErrInvalidInput, c.BatchSize)
	}
	if c.SampleSize < 0 {
		return fmt.Errorf("%w: sample size %d is negative", errs.ErrInvalidInput, c.SampleSize)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout %s must be positive", errs.ErrInvalidInput, c.RequestTimeout)
	}
	if _, err := solver.ParsePolicy(c.DefaultPolicy); err != nil {
		return fmt.Errorf("default policy: %w", err)
	}
	return nil
}

// Policy returns the parsed default policy. Call after Validate.
func (c Config) Policy() solver.Policy {
	p, _ := solver.ParsePolicy(c.DefaultPolicy)
	return p
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", errs.ErrInvalidInput, k, v)
	}
	return n, nil
}
