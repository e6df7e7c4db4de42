package labels

// Plan represents the label changes for one run
type Plan struct {
	ToAdd    []string `json:"to_add"`
	ToRemove []string `json:"to_remove"`
}

// HasChanges reports whether the plan adds or removes anything
func (p *Plan) HasChanges() bool {
	return len(p.ToAdd) > 0 || len(p.ToRemove) > 0
}

// NewPlan computes the label changes from one snapshot of the pull request's
// labels. Only configured labels are ever removed. A label already present is
// never added again, whether configured or not.
func NewPlan(current, eligible, configured Set) *Plan {
	governed := Intersect(current, configured)

	return &Plan{
		ToAdd:    Difference(eligible, current).Sorted(),
		ToRemove: Difference(governed, eligible).Sorted(),
	}
}

// Apply returns the label set that results from applying the plan to current
func (p *Plan) Apply(current Set) Set {
	next := Difference(current, NewSet(p.ToRemove...))
	for _, label := range p.ToAdd {
		next[label] = struct{}{}
	}
	return next
}
