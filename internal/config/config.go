// Package config loads tunables for the optimizer the way the CLI's
// original config.json idiom did: a JSON object decoded through
// mapstructure, defaults filled in for anything the file omits.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/mitchellh/mapstructure"
)

const (
	DefaultThreshold        uint32 = 80
	DefaultTimeLimitSeconds uint32 = 30
)

// Config mirrors solve.Config's tunables, decoded from disk before the
// solver package is even reached.
type Config struct {
	Threshold        uint32 `mapstructure:"threshold"`
	TimeLimitSeconds uint32 `mapstructure:"timeLimitSeconds"`
	WorkerCount      uint32 `mapstructure:"workerCount"`
}

// Default returns the baseline tunables: ILP attempted up to 80 rooms per
// partition, a 30s wall-clock budget, and one worker per CPU.
func Default() Config {
	return Config{
		Threshold:        DefaultThreshold,
		TimeLimitSeconds: DefaultTimeLimitSeconds,
		WorkerCount:      uint32(runtime.NumCPU()),
	}
}

// Load reads a JSON config file at path and overlays it onto Default().
// A missing file is not an error; Default() alone is returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config file: %w", err)
	}

	var asJSON map[string]any
	if err := json.Unmarshal(raw, &asJSON); err != nil {
		return cfg, fmt.Errorf("cannot parse config file: %w", err)
	}

	if err := mapstructure.Decode(asJSON, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot decode config file: %w", err)
	}

	return cfg, nil
}
