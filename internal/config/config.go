package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// RateLimit stores admission limiter settings. The effective window is
// Limit*Ticks clock units; with the wall clock a tick is one millisecond.
type RateLimit struct {
	Enabled bool
	Limit   int
	Ticks   int64
}

// Pprof stores the optional profiling sidecar settings. An empty Addr
// disables the sidecar.
type Pprof struct {
	Addr string
}

// Config stores HTTP service settings.
type Config struct {
	Port      int
	RateLimit RateLimit
	Pprof     Pprof
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		RateLimit: DefaultRateLimit(),
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.BoolVar(&cfg.RateLimit.Enabled, "rate-limit", cfg.RateLimit.Enabled, "enable per-client admission control")
	pflag.IntVar(&cfg.RateLimit.Limit, "rate-limit-count", cfg.RateLimit.Limit, "max admitted requests per client within the window")
	pflag.Int64Var(&cfg.RateLimit.Ticks, "rate-limit-ticks-ms", cfg.RateLimit.Ticks, "milliseconds per window slot")
	pflag.StringVar(&cfg.Pprof.Addr, "pprof-addr", cfg.Pprof.Addr, "pprof listen address (empty disables)")
	pflag.Parse()

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_ENABLED %q: %w", v, err)
		}
		cfg.RateLimit.Enabled = b
	}
	if v := os.Getenv("RATE_LIMIT_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_LIMIT %q: %w", v, err)
		}
		cfg.RateLimit.Limit = n
	}
	if v := os.Getenv("RATE_LIMIT_TICKS_MS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_TICKS_MS %q: %w", v, err)
		}
		cfg.RateLimit.Ticks = n
	}
	if v := os.Getenv("PPROF_ADDR"); v != "" {
		cfg.Pprof.Addr = v
	}
	return nil
}

func validate(cfg *Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Port)
	}
	// limit=0 is a valid deny-everything policy, negatives are not.
	if cfg.RateLimit.Limit < 0 {
		return fmt.Errorf("invalid rate limit count: %d", cfg.RateLimit.Limit)
	}
	if cfg.RateLimit.Ticks < 0 {
		return fmt.Errorf("invalid rate limit ticks: %d", cfg.RateLimit.Ticks)
	}
	return nil
}
