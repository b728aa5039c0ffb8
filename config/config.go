// Package config loads named ARMA process definitions from YAML files for
// tooling built on top of the library.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-arma/arma"
)

// Process describes an ARMA process in a configuration file.
type Process struct {
	Phi   []float64 `yaml:"phi"`
	Theta []float64 `yaml:"theta"`
	Sigma float64   `yaml:"sigma"`
}

// File maps preset names to process definitions.
type File struct {
	Processes map[string]Process `yaml:"processes"`
}

// Default returns built-in presets.
func Default() *File {
	return &File{
		Processes: map[string]Process{
			"white-noise": {},
			"ar1":         {Phi: []float64{0.5}},
			"arma12":      {Phi: []float64{0.5}, Theta: []float64{0, -0.8}},
		},
	}
}

// Load reads process definitions from a YAML file. Definitions are merged
// over the built-in presets.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes process definitions to a YAML file.
func Save(path string, cfg *File) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Build constructs the process model from a definition. A zero Sigma means
// the library default of 1.
func (p Process) Build() (*arma.Process, error) {
	opts := []arma.Option{}
	if len(p.Theta) > 0 {
		opts = append(opts, arma.WithMA(p.Theta...))
	}
	if p.Sigma != 0 {
		opts = append(opts, arma.WithNoiseScale(p.Sigma))
	}
	return arma.New(p.Phi, opts...)
}

// Get returns the named process definition.
func (f *File) Get(name string) (Process, error) {
	proc, ok := f.Processes[name]
	if !ok {
		return Process{}, fmt.Errorf("config: unknown process %q", name)
	}
	return proc, nil
}
