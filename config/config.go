package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"os-scheduler/internal/schedulers"
)

type SchedulerConfig struct {
	Port                     int
	RoundRobinTimeQuantum    int
	ImprovedRoundRobinRounds int
	UtilizationHorizon       schedulers.Horizon
	Parallel                 bool
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once.
// A missing file is fine; defaults and SCHEDULER_* environment variables
// still apply.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
		cfg, err := load(v)
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.improved_round_robin.rounds", 0)
	v.SetDefault("scheduler.metrics.utilization_horizon", string(schedulers.HorizonMax))
	v.SetDefault("scheduler.parallel", false)
}

func load(v *viper.Viper) (*SchedulerConfig, error) {
	setDefaults(v)
	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("config file not found, using defaults")
	}

	horizon, err := schedulers.ParseHorizon(v.GetString("scheduler.metrics.utilization_horizon"))
	if err != nil {
		return nil, err
	}

	cfg := &SchedulerConfig{}
	cfg.Port = v.GetInt("port")
	cfg.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	cfg.ImprovedRoundRobinRounds = v.GetInt("scheduler.improved_round_robin.rounds")
	cfg.UtilizationHorizon = horizon
	cfg.Parallel = v.GetBool("scheduler.parallel")

	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("%w: scheduler.round_robin.time_quantum = %d", schedulers.ErrInvalidQuantum, cfg.RoundRobinTimeQuantum)
	}
	if cfg.ImprovedRoundRobinRounds < 0 {
		return nil, fmt.Errorf("improved round robin rounds must not be negative: scheduler.improved_round_robin.rounds = %d", cfg.ImprovedRoundRobinRounds)
	}
	return cfg, nil
}

// Options returns the scheduling options carried by the config.
func (c *SchedulerConfig) Options() schedulers.Options {
	return schedulers.Options{
		Horizon:                  c.UtilizationHorizon,
		ImprovedRoundRobinRounds: c.ImprovedRoundRobinRounds,
	}
}
