package model

// ChangeCategory classifies a status change between two runs.
type ChangeCategory int

const (
	// Improvement indicates the severity rank decreased.
	Improvement ChangeCategory = iota
	// Regression indicates the severity rank increased.
	Regression
	// Lateral indicates an equal rank but a different label (e.g. FAIL -> CRASH).
	Lateral
	// NoChange indicates identical outcomes.
	NoChange
)

func (c ChangeCategory) String() string {
	switch c {
	case Improvement:
		return "Improvement"
	case Regression:
		return "Regression"
	case Lateral:
		return "Lateral"
	case NoChange:
		return "No Change"
	default:
		return "unknown"
	}
}

// Classify derives the change category for an old/new outcome pair.
// It is the single source of truth for severity semantics.
func Classify(oldOutcome, newOutcome Outcome) ChangeCategory {
	oldRank, newRank := oldOutcome.Rank(), newOutcome.Rank()

	switch {
	case oldRank > newRank:
		return Improvement
	case oldRank < newRank:
		return Regression
	case oldOutcome != newOutcome:
		return Lateral
	default:
		return NoChange
	}
}

// Entry is a flat key paired with its outcome, used for new/removed listings.
type Entry struct {
	Key     string
	Outcome Outcome
}

// StatusChange records a key present in both runs with differing outcomes.
type StatusChange struct {
	Key string
	Old Outcome
	New Outcome
}

// Category classifies the change carried by this pair.
func (s StatusChange) Category() ChangeCategory {
	return Classify(s.Old, s.New)
}

// ChangeSet is the result of diffing two outcome mappings (A -> B).
// Every key of the union appears in exactly one of New, Removed or
// StatusChanges, or in none when its outcome is unchanged.
type ChangeSet struct {
	New           []Entry
	Removed       []Entry
	StatusChanges []StatusChange
}

// ByCategory returns the status changes belonging to the given category,
// preserving order.
func (cs ChangeSet) ByCategory(category ChangeCategory) []StatusChange {
	var changes []StatusChange

	for _, change := range cs.StatusChanges {
		if change.Category() == category {
			changes = append(changes, change)
		}
	}

	return changes
}

// FilterPassing drops passing-outcome entries when showPassing is false.
// This only ever shapes detail listings; summary counts are never filtered.
func FilterPassing(entries []Entry, showPassing bool) []Entry {
	if showPassing {
		return entries
	}

	var kept []Entry

	for _, entry := range entries {
		if !entry.Outcome.Passing() {
			kept = append(kept, entry)
		}
	}

	return kept
}

// SplitPassing partitions entries into passing and non-passing groups.
func SplitPassing(entries []Entry) (passing, nonPassing []Entry) {
	for _, entry := range entries {
		if entry.Outcome.Passing() {
			passing = append(passing, entry)
		} else {
			nonPassing = append(nonPassing, entry)
		}
	}

	return passing, nonPassing
}
