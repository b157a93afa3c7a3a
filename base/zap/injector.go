package zap

import (
	"fmt"
	"strings"

	"github.com/isabella232/v8ppc/base/buildcfg"
	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const callerSkipFrames = 1

// Profile selects the baseline logger configuration.
type Profile string

const (
	// ProfileProduction emits JSON at info level with zap's production
	// sampling.
	ProfileProduction Profile = "production"

	// ProfileDevelopment emits JSON at debug level without sampling.
	ProfileDevelopment Profile = "development"
)

// Config contains the logger initialization inputs.
type Config struct {
	// Profile selects the baseline configuration. Required.
	Profile Profile

	// Level overrides the profile's default level when non-empty.
	Level string

	// OTelLibraryName names the instrumentation scope of the OpenTelemetry
	// log bridge. Required.
	OTelLibraryName string
}

func (c Config) validate() error {
	if c.OTelLibraryName == "" {
		return fmt.Errorf("OTelLibraryName is required")
	}

	switch c.Profile {
	case ProfileProduction, ProfileDevelopment:
		return nil
	default:
		return fmt.Errorf("invalid profile %q", c.Profile)
	}
}

// New creates a structured logger with a runtime-adjustable level. Every
// event is teed to the OpenTelemetry log bridge under the configured
// instrumentation scope.
func New(cfg Config) (*Logger, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid zap config: %w", err)
	}

	baseConfig := buildConfigByProfile(cfg.Profile)

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, err
	}

	baseConfig.Level = level
	baseConfig.DisableStacktrace = true

	coreOptions := []zap.Option{
		zap.AddCallerSkip(callerSkipFrames),
		zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, otelzap.NewCore(cfg.OTelLibraryName))
		}),
	}

	built, err := baseConfig.Build(coreOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return &Logger{logger: built, atomicLevel: level}, nil
}

// NewForBuild creates a logger profiled for the compile-time diagnostic
// configuration: debug builds log at debug level with the development
// profile, everything else at info with the production profile.
func NewForBuild(cfg buildcfg.Config, libraryName string) (*Logger, error) {
	profile := ProfileProduction
	if cfg.Debug {
		profile = ProfileDevelopment
	}

	return New(Config{Profile: profile, OTelLibraryName: libraryName})
}

func resolveLevel(cfg Config) (zap.AtomicLevel, error) {
	if strings.TrimSpace(cfg.Level) != "" {
		var parsed zapcore.Level
		if err := parsed.Set(cfg.Level); err != nil {
			return zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", cfg.Level, err)
		}

		return zap.NewAtomicLevelAt(parsed), nil
	}

	if cfg.Profile == ProfileDevelopment {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel), nil
	}

	return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
}

func buildConfigByProfile(profile Profile) zap.Config {
	if profile == ProfileDevelopment {
		cfg := zap.NewDevelopmentConfig()
		cfg.Encoding = "json"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

		return cfg
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}
