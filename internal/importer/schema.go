package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/daybill/internal/schedule"
	"gopkg.in/yaml.v3"
)

// ProjectSetImport is one project set in a fixture file.
type ProjectSetImport struct {
	Description string            `yaml:"description" json:"description"`
	Projects    []ProjectImport   `yaml:"projects" json:"projects"`
	Evaluation  *EvaluationImport `yaml:"evaluation,omitempty" json:"evaluation,omitempty"`
}

// ProjectImport is a single project record.
type ProjectImport struct {
	Name      string `yaml:"name" json:"name"`
	City      string `yaml:"city" json:"city"`
	StartDate string `yaml:"start_date" json:"start_date"`
	EndDate   string `yaml:"end_date" json:"end_date"`
}

// EvaluationImport holds the expected outcome of a project set.
type EvaluationImport struct {
	Low   TierEvaluationImport `yaml:"low" json:"low"`
	High  TierEvaluationImport `yaml:"high" json:"high"`
	Total int                  `yaml:"total" json:"total"`
}

// TierEvaluationImport holds expected day counts for one tier.
type TierEvaluationImport struct {
	Travel int `yaml:"travel" json:"travel"`
	Full   int `yaml:"full" json:"full"`
}

// Counts converts the expected day counts to schedule counts.
func (e *EvaluationImport) Counts() schedule.Counts {
	return schedule.Counts{
		LowTravel:  e.Low.Travel,
		LowFull:    e.Low.Full,
		HighTravel: e.High.Travel,
		HighFull:   e.High.Full,
	}
}

// LoadFixtures reads a fixture file. The format is chosen by extension:
// .yml/.yaml or .json.
func LoadFixtures(path string) ([]ProjectSetImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseFixtures(data, filepath.Ext(path))
}

// ParseFixtures decodes fixture data in the given format (".yaml", ".yml" or ".json").
func ParseFixtures(data []byte, format string) ([]ProjectSetImport, error) {
	var sets []ProjectSetImport
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &sets); err != nil {
			return nil, fmt.Errorf("parsing fixture file: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &sets); err != nil {
			return nil, fmt.Errorf("parsing fixture file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported fixture format %q (use .yml, .yaml or .json)", format)
	}
	return sets, nil
}
