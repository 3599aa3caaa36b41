// Package config loads and validates the lvcluster run configuration.
//
// Configuration is a small YAML document:
//
//	cap: 1000              # merge cap K for bounded-merge mode (>= 0)
//	tie_break: index       # index | squared | coordinates
//	count_policy: merges   # merges | attempts
//	result_axis: 0         # axis multiplied by the full-span result
//	dimension: 3           # coordinates per record (0 = infer)
//	log_level: info        # debug | info | warn | error
//
// Missing keys keep their Default values. Validation uses struct tags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/lvcluster/builder"
	"github.com/katalvlaran/lvcluster/cluster"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New()

// Config holds every knob of a run.
type Config struct {
	Cap         int    `yaml:"cap" validate:"gte=0"`
	TieBreak    string `yaml:"tie_break" validate:"oneof=index squared coordinates"`
	CountPolicy string `yaml:"count_policy" validate:"oneof=merges attempts"`
	ResultAxis  int    `yaml:"result_axis" validate:"gte=0"`
	Dimension   int    `yaml:"dimension" validate:"gte=0"`
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Cap:         10,
		TieBreak:    builder.TieBreakIndex.String(),
		CountPolicy: cluster.CountMerges.String(),
		ResultAxis:  0,
		Dimension:   3,
		LogLevel:    "info",
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the struct tags and reports every failing field.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// EngineOptions maps the configuration onto cluster options. The config
// must have passed Validate.
func (c Config) EngineOptions(logger *zap.Logger) ([]cluster.Option, error) {
	tb, err := builder.ParseTieBreak(c.TieBreak)
	if err != nil {
		return nil, err
	}
	policy, err := cluster.ParseCountPolicy(c.CountPolicy)
	if err != nil {
		return nil, err
	}

	return []cluster.Option{
		cluster.WithMergeCap(c.Cap),
		cluster.WithTieBreak(tb),
		cluster.WithCountPolicy(policy),
		cluster.WithResultFunc(cluster.ProductOfAxis(c.ResultAxis)),
		cluster.WithLogger(logger),
	}, nil
}

// Logger builds the zap logger for LogLevel: a development logger at debug,
// a production logger otherwise.
func (c Config) Logger() (*zap.Logger, error) {
	if c.LogLevel == "debug" {
		return zap.NewDevelopment()
	}

	zc := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc.Level = level

	return zc.Build()
}
