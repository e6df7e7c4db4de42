package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"labelpr/pkg/labels"
)

// DefaultConfigPath is where the labeling rules live unless CONFIG_PATH says otherwise
const DefaultConfigPath = ".github/label-pr.yml"

// LoadFiltersFromPath loads and validates labeling rules from a YAML file
func LoadFiltersFromPath(path string) ([]labels.Filter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &labels.ConfigurationError{
				Field:   "path",
				Value:   path,
				Message: "configuration file not found",
				Cause:   err,
			}
		}
		return nil, labels.NewConfigurationError("failed to read config file", err)
	}

	return ParseFilters(data)
}

// LoadMatcherFromPath loads labeling rules and compiles their patterns once.
// Pattern errors are reported with their filter field paths.
func LoadMatcherFromPath(path string) (*labels.Matcher, error) {
	filters, err := LoadFiltersFromPath(path)
	if err != nil {
		return nil, err
	}

	return labels.NewMatcher(filters)
}

// ParseFilters decodes labeling rules. The document must be a sequence of
// {regExp, labels} mappings; unknown keys are rejected.
func ParseFilters(data []byte) ([]labels.Filter, error) {
	var filters []labels.Filter

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&filters); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, labels.NewConfigurationError("configuration file is empty", nil)
		}
		return nil, labels.NewConfigurationError("failed to parse config file", err)
	}

	if err := ValidateFilters(filters); err != nil {
		return nil, err
	}

	return filters, nil
}

// ValidateFilters checks the shape of every filter. Patterns are compiled by
// labels.NewMatcher, see LoadMatcherFromPath.
func ValidateFilters(filters []labels.Filter) error {
	var configErrs labels.ConfigurationErrors

	if len(filters) == 0 {
		configErrs.Add("filters", "", "at least one filter is required", nil)
	}

	for i, f := range filters {
		field := fmt.Sprintf("filters[%d]", i)

		if strings.TrimSpace(f.Pattern) == "" {
			configErrs.Add(field+".regExp", "", "pattern is required", nil)
		}

		if len(f.Labels) == 0 {
			configErrs.Add(field+".labels", "", "at least one label is required", nil)
		}

		for j, label := range f.Labels {
			if strings.TrimSpace(label) == "" {
				configErrs.Add(fmt.Sprintf("%s.labels[%d]", field, j), "", "label name cannot be empty", nil)
			}
		}
	}

	if configErrs.HasErrors() {
		return configErrs
	}

	return nil
}
