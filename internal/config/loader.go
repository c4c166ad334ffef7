package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/modu-ai/namelint/pkg/models"
)

// LookupFunc reads an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Loader reads configuration from a .namelint.yaml file and the environment.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu             sync.RWMutex
	lookupEnv      LookupFunc
	logger         *slog.Logger
	loadedSections map[string]bool
	source         string
}

// NewLoader creates a Loader reading the process environment. A nil logger
// discards output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{lookupEnv: os.LookupEnv, logger: logger}
}

// WithLookup replaces the environment lookup, mainly for tests.
func (l *Loader) WithLookup(fn LookupFunc) *Loader {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lookupEnv = fn
	return l
}

// Load builds the configuration for path. When path names a directory the
// loader looks for FileName inside it and falls back to defaults when it is
// missing; an explicit file that does not exist is ErrConfigNotFound.
// Environment overrides are applied over file values and the result is
// validated.
func (l *Loader) Load(path string) (*Config, error) {
	return l.LoadWith(path, nil)
}

// LoadWith is Load with a final overlay, such as command-line flags,
// applied after the environment and before validation. Only the merged
// result is validated, so an overlay can correct a bad file or env value.
func (l *Loader) LoadWith(path string, overlay func(*Config)) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loadedSections = make(map[string]bool)
	l.source = ""
	cfg := NewDefaultConfig()

	file, explicit, err := resolve(path)
	if err != nil {
		return nil, err
	}

	loaded, err := l.loadFile(file, cfg)
	switch {
	case err != nil:
		return nil, err
	case loaded:
		l.source = file
	case explicit:
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, file)
	default:
		l.logger.Debug("no configuration file, using defaults", "path", file)
	}

	lookup := l.envLookup(filepath.Dir(file))
	envErrs := applyEnvOverrides(cfg, lookup)
	if overlay != nil {
		overlay(cfg)
	}

	if err := Validate(cfg); err != nil {
		var verrs *ValidationErrors
		if errors.As(err, &verrs) {
			verrs.Errors = append(envErrs, verrs.Errors...)
			return nil, verrs
		}
		return nil, err
	}
	if len(envErrs) > 0 {
		return nil, &ValidationErrors{Errors: envErrs}
	}
	return cfg, nil
}

// LoadedSections returns a copy of the map indicating which sections
// were read from the configuration file.
func (l *Loader) LoadedSections() map[string]bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]bool, len(l.loadedSections))
	maps.Copy(result, l.loadedSections)
	return result
}

// Source returns the configuration file used by the last Load, or "" when
// only defaults and the environment applied.
func (l *Loader) Source() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.source
}

// resolve maps a user-supplied path to the configuration file to read.
func resolve(path string) (file string, explicit bool, err error) {
	if path == "" {
		path = "."
	}
	path = filepath.Clean(path)
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return filepath.Join(path, FileName), false, nil
	case err == nil:
		return path, true, nil
	case errors.Is(err, fs.ErrNotExist):
		return "", false, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	default:
		return "", false, fmt.Errorf("stat %s: %w", path, err)
	}
}

// loadFile overlays the sections present in file onto cfg. It reports
// whether the file existed.
func (l *Loader) loadFile(file string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", file, err)
	}

	var sections map[string]yaml.Node
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return false, fmt.Errorf("parse %s: %w: %v", file, ErrInvalidYAML, err)
	}

	targets := map[string]any{
		"rules":  &cfg.Rules,
		"scan":   &cfg.Scan,
		"output": &cfg.Output,
	}
	for name, node := range sections {
		target, ok := targets[name]
		if !ok {
			l.logger.Warn("ignoring unknown config section", "section", name, "path", file)
			continue
		}
		if err := node.Decode(target); err != nil {
			return false, fmt.Errorf("parse %s section %q: %w: %v", file, name, ErrInvalidYAML, err)
		}
		l.loadedSections[name] = true
	}
	return true, nil
}

// envLookup combines the process environment with the .env file in dir.
// Process values win, as with godotenv.Load.
func (l *Loader) envLookup(dir string) LookupFunc {
	dotenv, err := godotenv.Read(filepath.Join(dir, EnvFileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("failed to read .env file", "dir", dir, "error", err)
	}
	lookup := l.lookupEnv
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

// applyEnvOverrides sets configuration values from environment variables.
// Unusable values are returned as validation errors and leave the field
// unchanged.
func applyEnvOverrides(cfg *Config, lookup LookupFunc) []ValidationError {
	var errs []ValidationError
	envErr := func(key, value, msg string) {
		errs = append(errs, ValidationError{
			Field:   key,
			Message: msg,
			Value:   value,
			Wrapped: ErrInvalidEnv,
		})
	}

	if v, ok := lookup(EnvAllowPascalFilenames); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Rules.AllowPascalFilenames = b
		} else {
			envErr(EnvAllowPascalFilenames, v, "must be a boolean")
		}
	}
	if v, ok := lookup(EnvMaxExportsPerFile); ok && v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.Rules.MaxExportsPerFile = n
		} else {
			envErr(EnvMaxExportsPerFile, v, "must be an integer")
		}
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Output.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	// https://no-color.org: any non-empty value disables colour.
	if v, ok := lookup(EnvNoColorStandard); ok && v != "" {
		cfg.Output.NoColor = true
	}
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Output.NoColor = b
		} else {
			envErr(EnvNoColor, v, "must be a boolean")
		}
	}
	return errs
}

// WriteFile saves cfg as YAML to path. An existing file is only replaced
// when overwrite is set.
func WriteFile(path string, cfg *Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}
	if cfg.Rules.Disabled == nil {
		cfg.Rules.Disabled = []models.RuleID{}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	return atomicWrite(path, data)
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".namelint-config-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // cleanup on error path

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
