package labels

import (
	"fmt"
	"maps"
	"regexp"
)

// compiledFilter pairs a filter with its compiled pattern
type compiledFilter struct {
	source Filter
	re     *regexp.Regexp
}

// Matcher tests changed files against compiled filters
type Matcher struct {
	compiled   []compiledFilter
	configured Set
}

// NewMatcher compiles every filter pattern. Patterns use search semantics:
// a pattern matches a path when it matches any substring of it, unless the
// pattern anchors itself with ^ or $.
func NewMatcher(filters []Filter) (*Matcher, error) {
	compiled := make([]compiledFilter, 0, len(filters))
	var configErrs ConfigurationErrors

	for i, f := range filters {
		re, err := regexp.Compile(f.Pattern)
		if err != nil {
			configErrs.Add(fmt.Sprintf("filters[%d].regExp", i), f.Pattern,
				"pattern is not a valid regular expression", fmt.Errorf("%w: %w", ErrInvalidPattern, err))
			continue
		}
		compiled = append(compiled, compiledFilter{source: f, re: re})
	}

	if configErrs.HasErrors() {
		return nil, configErrs
	}

	return &Matcher{
		compiled:   compiled,
		configured: LabelsOf(filters),
	}, nil
}

// Match returns the filters whose pattern matches at least one file path,
// in configuration order.
func (m *Matcher) Match(files []ChangedFile) []Filter {
	matched := make([]Filter, 0, len(m.compiled))
	for _, cf := range m.compiled {
		for _, file := range files {
			if cf.re.MatchString(file.Path) {
				matched = append(matched, cf.source)
				break
			}
		}
	}
	return matched
}

// EligibleLabels returns the union of labels of every filter matching files
func (m *Matcher) EligibleLabels(files []ChangedFile) Set {
	return LabelsOf(m.Match(files))
}

// ConfiguredLabels returns every label named by any filter. These are the
// only labels labelpr ever adds or removes.
func (m *Matcher) ConfiguredLabels() Set {
	return maps.Clone(m.configured)
}

// Filters returns the filters in configuration order
func (m *Matcher) Filters() []Filter {
	filters := make([]Filter, 0, len(m.compiled))
	for _, cf := range m.compiled {
		filters = append(filters, cf.source)
	}
	return filters
}

// MatchFilters compiles filters and returns those matching at least one file.
// An invalid pattern aborts with a ConfigurationError.
func MatchFilters(files []ChangedFile, filters []Filter) ([]Filter, error) {
	m, err := NewMatcher(filters)
	if err != nil {
		return nil, err
	}
	return m.Match(files), nil
}
