package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the YAML surface of one batch run: a topology, an engine,
// and the SIR parameters. Flag values fill the same struct, so a scenario
// file and flags go through identical validation (the library clamps).
type Scenario struct {
	Name string `yaml:"name"`

	Topology string `yaml:"topology"` // small-world | scale-free | clustered
	N        int    `yaml:"n"`
	Seed     int64  `yaml:"seed"`

	// SmallWorld
	K          int     `yaml:"k"`
	RewireProb float64 `yaml:"rewireProb"`

	// ScaleFree
	M int `yaml:"m"`

	// Clustered
	ClusterCount int     `yaml:"clusterCount"`
	IntraK       int     `yaml:"intraK"`
	InterProb    float64 `yaml:"interProb"`

	Engine string `yaml:"engine"` // discrete | event

	Beta            float64 `yaml:"beta"`
	Gamma           float64 `yaml:"gamma"`
	InitialInfected int     `yaml:"initialInfected"`

	// Discrete engine
	Steps      int     `yaml:"steps"`
	Resistance bool    `yaml:"resistance"`
	Gain       float64 `yaml:"gain"`

	// Event engine
	MaxEvents   int     `yaml:"maxEvents"`
	TimeHorizon float64 `yaml:"timeHorizon"`
}

// loadScenario reads and decodes a YAML scenario file.
func loadScenario(path string) (Scenario, error) {
	var sc Scenario

	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("parse scenario: %w", err)
	}

	return sc, nil
}
