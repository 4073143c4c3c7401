package config

import (
	"errors"
	"fmt"

	"github.com/mchmarny/gradestat/pkg/i18n"
	"github.com/mchmarny/gradestat/pkg/score"
)

// Settings holds the options for one run, assembled from flags and env vars.
type Settings struct {
	Capacity int          `json:"capacity" yaml:"capacity"`
	Lang     string       `json:"lang" yaml:"lang"`
	Format   score.Format `json:"format" yaml:"format"`
	Debug    bool         `json:"debug" yaml:"debug"`
}

// Default returns settings matching the flag defaults.
func Default() *Settings {
	return &Settings{
		Capacity: score.DefaultCapacity,
		Format:   score.FormatText,
	}
}

// New builds validated settings from raw flag values.
func New(capacity int, lang, format string, debug bool) (*Settings, error) {
	f, err := score.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	s := &Settings{
		Capacity: capacity,
		Lang:     lang,
		Format:   f,
		Debug:    debug,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that capacity is positive and the format is supported.
func (s *Settings) Validate() error {
	if s == nil {
		return errors.New("settings required")
	}
	if s.Capacity < 1 {
		return fmt.Errorf("invalid settings: capacity must be at least 1, got %d", s.Capacity)
	}
	if _, err := score.ParseFormat(string(s.Format)); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// Messages returns the catalog for the configured display language.
func (s *Settings) Messages() *i18n.Messages {
	return i18n.Lookup(s.Lang)
}

// LogLevel returns the level name for the logging package.
func (s *Settings) LogLevel() string {
	if s.Debug {
		return "debug"
	}
	return "info"
}
