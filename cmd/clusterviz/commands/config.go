package commands

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/hupe1980/clusterviz/internal/kmeans"
)

// Config is the resolved CLI configuration.
type Config struct {
	Dim       int
	K         int
	MaxK      int
	MaxIters  int
	Tol       float64
	Seed      int64
	SeedSet   bool
	Restarts  int
	Format    string
	LogLevel  string
	LogFormat string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dim", 3)
	v.SetDefault("k", 2)
	v.SetDefault("max_k", 10)
	v.SetDefault("max_iters", kmeans.DefaultOptions.MaxIters)
	v.SetDefault("tol", kmeans.DefaultOptions.Tol)
	v.SetDefault("restarts", 1)
	v.SetDefault("format", "table")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// loadConfig snapshots the current settings.
func loadConfig(v *viper.Viper) Config {
	cfg := Config{
		Dim:       v.GetInt("dim"),
		K:         v.GetInt("k"),
		MaxK:      v.GetInt("max_k"),
		MaxIters:  v.GetInt("max_iters"),
		Tol:       v.GetFloat64("tol"),
		Restarts:  v.GetInt("restarts"),
		Format:    v.GetString("format"),
		LogLevel:  v.GetString("log.level"),
		LogFormat: v.GetString("log.format"),
	}
	if v.IsSet("seed") {
		cfg.Seed = v.GetInt64("seed")
		cfg.SeedSet = true
	}
	return cfg
}

// baseSeed returns the configured seed or a time-based one.
func (c Config) baseSeed() int64 {
	if c.SeedSet {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// boundK applies the same limit an interactive slider would:
// 1 <= k <= min(MaxK, n).
func (c Config) boundK(k, n int) error {
	upper := n
	if c.MaxK > 0 && c.MaxK < upper {
		upper = c.MaxK
	}
	if k < 1 || k > upper {
		return fmt.Errorf("k must be between 1 and %d, got %d", upper, k)
	}
	return nil
}
