// Package config loads the pathstep command-line configuration: a YAML
// file merged over defaults, then overridden by flags, then validated.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathstep/builder"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// MaxBatch caps how many units one key press or print may perform.
const MaxBatch = 10000

// Config is the CLI configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Batch is the number of work units per "b" key press or per printed frame.
	Batch int `yaml:"batch" validate:"gte=1,lte=10000"`

	// Color enables lipgloss styling.
	Color bool `yaml:"color"`

	// Interactive opens the step-button UI; nil means "when stdout is a terminal".
	Interactive *bool `yaml:"interactive,omitempty"`

	// Preset names a builder fixture as "name:n", e.g. "grid:4".
	Preset string `yaml:"preset,omitempty" validate:"omitempty,preset"`

	// IDs names the preset vertex labelling: auto, pool, letters, excel,
	// decimal or prefix:P.
	IDs string `yaml:"ids" validate:"idscheme"`

	// Weights names the preset edge weights: integer, uniform, exponential or constant.
	Weights string `yaml:"weights" validate:"oneof=integer uniform exponential constant"`

	// Seed feeds random presets.
	Seed int64 `yaml:"seed"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("preset", validatePreset)
	_ = validate.RegisterValidation("idscheme", validateIDScheme)
}

func validateIDScheme(fl validator.FieldLevel) bool {
	_, err := builder.IDScheme(fl.Field().String(), 0)
	return err == nil
}

// validatePreset accepts "name:n" with a known builder preset and n ≥ 1.
func validatePreset(fl validator.FieldLevel) bool {
	_, _, err := ParsePreset(fl.Field().String())
	return err == nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Batch:    1,
		Color:    true,
		IDs:      builder.IDsAuto,
		Weights:  builder.WeightsInteger,
		Seed:     1,
	}
}

// Load reads path over Default. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Normalize()
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Normalize lower-cases and trims the enumerated fields.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.Weights = strings.ToLower(strings.TrimSpace(c.Weights))
	c.IDs = strings.TrimSpace(c.IDs)
	c.Preset = strings.TrimSpace(c.Preset)
}

// Validate checks the struct tags, then that IDs can label every vertex
// of Preset.
func (c Config) Validate() error {
	c.Normalize()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Preset == "" {
		return nil
	}
	if _, err := PresetIDs(c.Preset, c.IDs); err != nil {
		return err
	}

	return nil
}

// Level maps LogLevel to a slog level; unknown values mean warn.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// InteractiveOr resolves Interactive, falling back to tty.
func (c Config) InteractiveOr(tty bool) bool {
	if c.Interactive == nil {
		return tty
	}

	return *c.Interactive
}

// ParsePreset splits "name:n" and checks name against builder.Presets.
func ParsePreset(s string) (name string, n int, err error) {
	name, size, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return "", 0, fmt.Errorf("%w: preset %q: want name:n", ErrInvalid, s)
	}
	n, err = strconv.Atoi(size)
	if err != nil || n < 1 {
		return "", 0, fmt.Errorf("%w: preset %q: size must be a positive integer", ErrInvalid, s)
	}
	if _, err = builder.Preset(name, n); err != nil {
		return "", 0, fmt.Errorf("%w: preset %q: %v", ErrInvalid, s, err)
	}

	return name, n, nil
}

// PresetIDs resolves the ID scheme for preset ("name:n").
func PresetIDs(preset, ids string) (builder.BuilderOption, error) {
	name, n, err := ParsePreset(preset)
	if err != nil {
		return nil, err
	}
	opt, err := builder.IDScheme(ids, builder.PresetOrder(name, n))
	if err != nil {
		return nil, fmt.Errorf("%w: preset %q: %v", ErrInvalid, preset, err)
	}

	return opt, nil
}
