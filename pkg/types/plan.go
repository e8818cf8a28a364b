package types

// RenamePair is one planned rename inside a single folder
type RenamePair struct {
	OldPath string `json:"old_path" yaml:"old_path"`
	NewPath string `json:"new_path" yaml:"new_path"`
	OldName string `json:"old_name" yaml:"old_name"`
	NewName string `json:"new_name" yaml:"new_name"`
}

// Changes reports whether the pair renames anything
func (p RenamePair) Changes() bool {
	return p.OldName != p.NewName
}

// RenamePlan is the ordered list of renames for one folder. The preview and
// the executed batch are built from the same plan.
type RenamePlan struct {
	Dir   string       `json:"dir" yaml:"dir"`
	Pairs []RenamePair `json:"pairs" yaml:"pairs"`
}

// Len returns the number of pairs, including unchanged ones
func (p RenamePlan) Len() int {
	return len(p.Pairs)
}

// Changes returns the pairs whose name actually changes
func (p RenamePlan) Changes() []RenamePair {
	out := make([]RenamePair, 0, len(p.Pairs))
	for _, pair := range p.Pairs {
		if pair.Changes() {
			out = append(out, pair)
		}
	}
	return out
}

// RenameResult holds the outcome of executing a plan
type RenameResult struct {
	Renamed int          `json:"renamed"`
	Skipped int          `json:"skipped"`
	DryRun  bool         `json:"dry_run"`
	Pairs   []RenamePair `json:"pairs,omitempty"`
}
