// Package config merges flags, environment and an optional config file into
// a resolved scan configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/bryanrm/duplix-duplicate-file-handler/internal/adapter"
	"github.com/bryanrm/duplix-duplicate-file-handler/internal/controller"
	m "github.com/bryanrm/duplix-duplicate-file-handler/internal/model"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName names the config file and its XDG directory.
	AppName = "duplix"
	// EnvPrefix prefixes environment overrides, e.g. DUPLIX_ALGORITHM.
	EnvPrefix = "DUPLIX"
	// DefaultDestDir is created under the working directory when move mode
	// has no destination.
	DefaultDestDir = "MovedFiles"

	exportTimeFormat = "20060102150405"
)

// Settings stores the raw, unvalidated configuration.
type Settings struct {
	Recursive      bool          `mapstructure:"recursive"`
	NoRecursive    bool          `mapstructure:"no-recursive"`
	Move           bool          `mapstructure:"move"`
	Destination    string        `mapstructure:"dest"`
	Delete         bool          `mapstructure:"delete"`
	Save           bool          `mapstructure:"save"`
	ExportFile     string        `mapstructure:"export-file"`
	Algorithm      string        `mapstructure:"algorithm"`
	Heartbeat      time.Duration `mapstructure:"heartbeat"`
	HeartbeatEvery int           `mapstructure:"heartbeat-every"`
	Verbose        int           `mapstructure:"verbose"`
}

// Load reads settings from configFile (or the default search path when
// empty), DUPLIX_* environment variables and flags, flags taking precedence.
// A missing config file in the default search path is not an error.
func Load(configFile string, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))
		v.SetConfigName(AppName)
	}

	v.SetDefault("recursive", true)
	v.SetDefault("algorithm", string(m.AlgorithmSHA256))
	v.SetDefault("heartbeat", controller.DefaultHeartbeat)
	v.SetDefault("heartbeat-every", controller.DefaultHeartbeatEvery)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Settings{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, m.NewError(m.ErrConfigInvalid, m.Path(configFile), "read config file", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, m.NewError(m.ErrConfigInvalid, "", "decode settings", err)
	}

	return s, nil
}

// Option tweaks Resolve.
type Option func(*resolveOptions)

type resolveOptions struct {
	workingDir string
	clock      func() time.Time
}

// WithWorkingDir resolves relative paths and the default destination against
// dir instead of the process working directory.
func WithWorkingDir(dir string) Option {
	return func(o *resolveOptions) {
		o.workingDir = dir
	}
}

// WithClock sets the time source used for the default export file name.
func WithClock(clock func() time.Time) Option {
	return func(o *resolveOptions) {
		o.clock = clock
	}
}

// Resolve validates s against fs and produces the Config of a scan of
// source. Move wins over delete. In move mode the destination directory is
// created here, so a run that cannot create it never starts scanning.
func Resolve(fs afero.Fs, source string, s Settings, opts ...Option) (m.Config, error) {
	o := resolveOptions{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if o.workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return m.Config{}, m.NewError(m.ErrConfigInvalid, "", "determine working directory", err)
		}

		o.workingDir = wd
	}

	if strings.TrimSpace(source) == "" {
		return m.Config{}, m.NewError(m.ErrConfigInvalid, "", "source directory is required", nil)
	}

	src := absolute(o.workingDir, source)

	info, err := fs.Stat(src)
	if err != nil {
		return m.Config{}, m.NewError(m.ErrSourceNotFound, m.Path(src), "source directory not found", err)
	}

	if !info.IsDir() {
		return m.Config{}, m.NewError(m.ErrConfigInvalid, m.Path(src), "source is not a directory", nil)
	}

	algorithm := m.Algorithm(strings.ToLower(s.Algorithm))
	if algorithm == "" {
		algorithm = m.AlgorithmSHA256
	}

	if _, err := adapter.HashFunc(algorithm); err != nil {
		return m.Config{}, err
	}

	cfg := m.Config{
		Source:         m.Path(src),
		Recursive:      s.Recursive && !s.NoRecursive,
		Mode:           m.ModeReport,
		Algorithm:      algorithm,
		Heartbeat:      s.Heartbeat,
		HeartbeatEvery: s.HeartbeatEvery,
	}

	switch {
	case s.Move:
		cfg.Mode = m.ModeMove

		dest := filepath.Join(o.workingDir, DefaultDestDir)
		if s.Destination != "" {
			dest = absolute(o.workingDir, s.Destination)
		}

		if err := fs.MkdirAll(dest, 0o755); err != nil {
			return m.Config{}, m.NewError(m.ErrDestCreate, m.Path(dest), "create destination directory", err)
		}

		cfg.Destination = m.Path(dest)
	case s.Delete:
		cfg.Mode = m.ModeDelete
	}

	if s.Save || s.ExportFile != "" {
		cfg.Export = true

		if s.ExportFile != "" {
			cfg.ExportPath = m.Path(absolute(o.workingDir, s.ExportFile))
		} else {
			cfg.ExportPath = DefaultExportPath(cfg.Source, o.clock())
		}
	}

	return cfg, nil
}

// DefaultExportPath is "<source>/duplix-<yyyyMMddHHmmss>.txt".
func DefaultExportPath(source m.Path, now time.Time) m.Path {
	return m.Path(filepath.Join(string(source), fmt.Sprintf("%s-%s.txt", AppName, now.Format(exportTimeFormat))))
}

func absolute(wd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(wd, path)
}
