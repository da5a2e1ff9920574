package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Environment variable names recognized by NewPlannerSpecFromEnv.
const (
	// EnvPrefix is the prefix for all planner environment variables.
	EnvPrefix = "FLEETPLAN"

	keyWorkers   = "workers"
	keyTimeLimit = "time_limit"
)

// PlannerSpec holds runtime settings for the optimizer. It does not affect
// which plan is optimal, only how the search for it runs.
type PlannerSpec struct {
	// Workers is the number of goroutines searching in parallel.
	// Defaults to GOMAXPROCS.
	Workers int `yaml:"workers" json:"workers"`

	// TimeLimit bounds the wall-clock time of a Solve call. Zero means
	// no limit. When the limit fires, the best plan found so far is
	// returned and marked as not certified optimal.
	TimeLimit time.Duration `yaml:"timeLimit" json:"timeLimit"`
}

// Validate checks for invalid planner settings.
func (s *PlannerSpec) Validate() error {
	if s.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", s.Workers)
	}
	if s.TimeLimit < 0 {
		return fmt.Errorf("timeLimit must be >= 0, got %s", s.TimeLimit)
	}
	return nil
}

// DefaultPlannerSpec returns the defaults: one worker per CPU, no time
// limit.
func DefaultPlannerSpec() *PlannerSpec {
	return &PlannerSpec{
		Workers:   runtime.GOMAXPROCS(0),
		TimeLimit: 0,
	}
}

// NewPlannerSpecFromEnv builds a PlannerSpec from defaults overridden by
// FLEETPLAN_WORKERS and FLEETPLAN_TIME_LIMIT.
func NewPlannerSpecFromEnv() (*PlannerSpec, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	defaults := DefaultPlannerSpec()
	v.SetDefault(keyWorkers, defaults.Workers)
	v.SetDefault(keyTimeLimit, defaults.TimeLimit)

	spec := &PlannerSpec{
		Workers:   v.GetInt(keyWorkers),
		TimeLimit: v.GetDuration(keyTimeLimit),
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid planner settings: %w", err)
	}
	return spec, nil
}
