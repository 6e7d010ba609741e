package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Frontend selects the frame driver
type Frontend string

const (
	FrontendWindow   Frontend = "window"
	FrontendTerminal Frontend = "terminal"
)

// Settings holds runtime options read from the environment. Capacities are
// not among them: those are build-time constants.
type Settings struct {
	Frontend        Frontend
	LogLevel        string
	LogFormat       string // "text" or "json"
	LogFile         string
	TemplateDir     string // empty means the embedded templates
	InitialEntities int
	Seed            uint64 // 0 means a random seed
	Profile         string // "", "cpu" or "mem"
	Fullscreen      bool

	// EnvFileLoaded reports whether a .env file was found and applied
	EnvFileLoaded bool
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Frontend:        FrontendWindow,
		LogLevel:        "info",
		LogFormat:       "text",
		InitialEntities: 24,
	}
}

// LoadSettings applies the given .env files (".env" when none are given) to
// the process environment and reads PATHSIM_* variables on top of the
// defaults. A missing .env file is not an error.
func LoadSettings(files ...string) (Settings, error) {
	s := DefaultSettings()

	err := godotenv.Load(files...)
	switch {
	case err == nil:
		s.EnvFileLoaded = true
	case errors.Is(err, fs.ErrNotExist):
	default:
		return s, fmt.Errorf("failed to load env file: %w", err)
	}

	if v, ok := lookup("PATHSIM_FRONTEND"); ok {
		switch Frontend(strings.ToLower(v)) {
		case FrontendWindow:
			s.Frontend = FrontendWindow
		case FrontendTerminal:
			s.Frontend = FrontendTerminal
		default:
			return s, fmt.Errorf("PATHSIM_FRONTEND: unknown frontend %q", v)
		}
	}
	if v, ok := lookup("PATHSIM_LOG_LEVEL"); ok {
		s.LogLevel = v
	}
	if v, ok := lookup("PATHSIM_LOG_FORMAT"); ok {
		s.LogFormat = strings.ToLower(v)
	}
	if v, ok := lookup("PATHSIM_LOG_FILE"); ok {
		s.LogFile = v
	}
	if v, ok := lookup("PATHSIM_TEMPLATE_DIR"); ok {
		s.TemplateDir = v
	}
	if v, ok := lookup("PATHSIM_INITIAL_ENTITIES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return s, fmt.Errorf("PATHSIM_INITIAL_ENTITIES: invalid count %q", v)
		}
		if n > MaxEntities {
			n = MaxEntities
		}
		s.InitialEntities = n
	}
	if v, ok := lookup("PATHSIM_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("PATHSIM_SEED: %w", err)
		}
		s.Seed = seed
	}
	if v, ok := lookup("PATHSIM_PROFILE"); ok {
		switch v {
		case "", "cpu", "mem":
			s.Profile = v
		default:
			return s, fmt.Errorf("PATHSIM_PROFILE: unknown profile mode %q", v)
		}
	}
	if v, ok := lookup("PATHSIM_FULLSCREEN"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("PATHSIM_FULLSCREEN: %w", err)
		}
		s.Fullscreen = b
	}

	return s, nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}
