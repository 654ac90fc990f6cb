package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a scenario file. Fields omitted in the file keep the
// Default scenario's values; the merged result is then validated.
func Load(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario := Default()
	if err := yaml.Unmarshal(data, scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	if err := validate(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return scenario, nil
}

func validate(s *Scenario) error {
	if len(s.FreqLevels) == 0 {
		return fmt.Errorf("freqLevels must not be empty")
	}
	for _, f := range s.FreqLevels {
		if f <= 0 || f > 1 {
			return fmt.Errorf("freqLevels entries must be in (0,1], got %v", f)
		}
	}
	if s.MaxCores <= 0 {
		return fmt.Errorf("maxCores must be greater than 0")
	}
	if s.Tick <= 0 {
		return fmt.Errorf("tick must be greater than 0")
	}
	if s.Horizon <= 0 {
		return fmt.Errorf("horizon must be greater than 0")
	}

	if len(s.Tasks) == 0 && s.TaskCount <= 0 {
		return fmt.Errorf("either tasks or a positive taskCount is required")
	}
	for i, task := range s.Tasks {
		if task.Work <= 0 {
			return fmt.Errorf("task %d: work must be greater than 0", i)
		}
		if task.Arrival < 0 {
			return fmt.Errorf("task %d: arrival must not be negative", i)
		}
		if task.Deadline <= task.Arrival {
			return fmt.Errorf("task %d: deadline must be after arrival", i)
		}
	}
	return nil
}
