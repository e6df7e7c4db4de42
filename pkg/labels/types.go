package labels

// Filter maps a file path pattern to the labels it justifies
type Filter struct {
	Pattern string   `yaml:"regExp" json:"regExp"`
	Labels  []string `yaml:"labels" json:"labels"`
}

// ChangedFile represents a file touched by a pull request
type ChangedFile struct {
	Path string `json:"path"`
}

// Paths returns the paths of the given files in order
func Paths(files []ChangedFile) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	return paths
}

// LabelsOf flattens the label lists of the given filters into a set
func LabelsOf(filters []Filter) Set {
	lists := make([][]string, 0, len(filters))
	for _, f := range filters {
		lists = append(lists, f.Labels)
	}
	return Union(lists...)
}
