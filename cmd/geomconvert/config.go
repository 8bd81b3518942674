package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// fileConfig is the shape of --config's YAML overlay. Every field except
// Epsilon is a default for the matching CLI flag: a flag passed on the
// command line always wins over the file. Epsilon has no flag; it is
// validated here, and the conversion uses the loaded model's own epsilon.
type fileConfig struct {
	InModel      string  `yaml:"in_model"`
	InMesh       string  `yaml:"in_mesh"`
	OutModel     string  `yaml:"out_model"`
	OutMesh      string  `yaml:"out_mesh"`
	Repair       bool    `yaml:"repair"`
	ValidityMode string  `yaml:"validity_mode" validate:"omitempty,oneof=none topology geometry all"`
	DebugDir     string  `yaml:"debug_dir"`
	Epsilon      float64 `yaml:"epsilon" validate:"gte=0"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &fileConfig{Epsilon: 1e-6, ValidityMode: "all"}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
