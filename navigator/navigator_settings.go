package navigator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NavigatorSettings is the immutable configuration of a Navigator.
// Zero fields are filled with defaults when loaded from file.
type NavigatorSettings struct {
	MaxPath        int `yaml:"max_path"`         // corridor capacity
	MaxSmoothPath  int `yaml:"max_smooth_path"`  // waypoint output capacity
	MaxSteerPoints int `yaml:"max_steer_points"` // straight-path projection limit
	MaxMoveVisits  int `yaml:"max_move_visits"`  // surface move visited-trace limit
	MaxQueryNodes  int `yaml:"max_query_nodes"`  // engine query node pool

	SteerTargetRadius float32 `yaml:"steer_target_radius"`
	SteerTargetHeight float32 `yaml:"steer_target_height"`
	SmoothStepSize    float32 `yaml:"smooth_step_size"`
}

// DefaultSettings returns the reference configuration.
func DefaultSettings() *NavigatorSettings {
	return &NavigatorSettings{
		MaxPath:           64,
		MaxSmoothPath:     128,
		MaxSteerPoints:    3,
		MaxMoveVisits:     16,
		MaxQueryNodes:     2048,
		SteerTargetRadius: 0.3,
		SteerTargetHeight: 1000.0,
		SmoothStepSize:    2.0,
	}
}

// LoadSettings reads a YAML settings file, filling unset fields with
// defaults.
func LoadSettings(path string) (*NavigatorSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("navigator: read settings: %w", err)
	}

	s := &NavigatorSettings{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("navigator: parse settings: %w", err)
	}
	s.fillDefaults()
	return s, nil
}

func (s *NavigatorSettings) fillDefaults() {
	d := DefaultSettings()
	if s.MaxPath <= 0 {
		s.MaxPath = d.MaxPath
	}
	if s.MaxSmoothPath <= 0 {
		s.MaxSmoothPath = d.MaxSmoothPath
	}
	if s.MaxSteerPoints <= 0 {
		s.MaxSteerPoints = d.MaxSteerPoints
	}
	if s.MaxMoveVisits <= 0 {
		s.MaxMoveVisits = d.MaxMoveVisits
	}
	if s.MaxQueryNodes <= 0 {
		s.MaxQueryNodes = d.MaxQueryNodes
	}
	if s.SteerTargetRadius <= 0 {
		s.SteerTargetRadius = d.SteerTargetRadius
	}
	if s.SteerTargetHeight <= 0 {
		s.SteerTargetHeight = d.SteerTargetHeight
	}
	if s.SmoothStepSize <= 0 {
		s.SmoothStepSize = d.SmoothStepSize
	}
}
