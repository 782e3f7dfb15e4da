// Package experiment defines the experiment and trial model.
package experiment

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Status indicates where a trial is in its lifecycle.
type Status string

const (
	// StatusSuggested means the trial has been proposed but not picked up.
	StatusSuggested Status = "suggested"
	// StatusReserved means a worker is executing the trial.
	StatusReserved Status = "reserved"
	// StatusCompleted means the trial finished and reported an objective.
	StatusCompleted Status = "completed"
	// StatusBroken means the trial failed to produce an objective.
	StatusBroken Status = "broken"
)

// Trial is a single evaluation of a parameter assignment.
type Trial struct {
	// ID uniquely identifies the trial.
	ID string `yaml:"id"`
	// Params maps parameter names to the values evaluated.
	Params map[string]float64 `yaml:"params"`
	// Objective is the reported result. Only meaningful once completed.
	Objective float64 `yaml:"objective"`
	// Status is the trial's lifecycle state.
	Status Status `yaml:"status"`
	// SuggestedAt is when the trial was proposed.
	SuggestedAt time.Time `yaml:"suggested_at"`
	// ReservedAt is when a worker picked the trial up.
	ReservedAt time.Time `yaml:"reserved_at,omitempty"`
	// CompletedAt is when the trial reported its objective.
	CompletedAt time.Time `yaml:"completed_at,omitempty"`
}

// Experiment is a named optimization run and its trial history.
type Experiment struct {
	// ID uniquely identifies the experiment.
	ID string `yaml:"id"`
	// Name is the user-facing experiment name, unique within a store.
	Name string `yaml:"name"`
	// Version increments when the experiment configuration changes.
	Version int `yaml:"version"`
	// Trials is the full trial history, in insertion order.
	Trials []Trial `yaml:"trials"`
}

// New creates an empty experiment with a fresh ID.
func New(name string) *Experiment {
	return &Experiment{
		ID:      uuid.NewString(),
		Name:    name,
		Version: 1,
	}
}

// NewTrial creates a suggested trial with a fresh ID.
func NewTrial(params map[string]float64) Trial {
	return Trial{
		ID:          uuid.NewString(),
		Params:      params,
		Status:      StatusSuggested,
		SuggestedAt: time.Now().UTC(),
	}
}

// Trial ordering keys.
const (
	// OrderSuggested sorts trials by suggestion time.
	OrderSuggested = "suggested"
	// OrderReserved sorts trials by reservation time.
	OrderReserved = "reserved"
	// OrderCompleted sorts trials by completion time.
	OrderCompleted = "completed"
)

// TrialsOrderedBy returns a copy of the trial history sorted by the given
// ordering key. An unknown key falls back to suggestion time.
func (e *Experiment) TrialsOrderedBy(order string) []Trial {
	trials := make([]Trial, len(e.Trials))
	copy(trials, e.Trials)

	key := func(t Trial) time.Time {
		switch order {
		case OrderReserved:
			return t.ReservedAt
		case OrderCompleted:
			return t.CompletedAt
		default:
			return t.SuggestedAt
		}
	}
	sort.SliceStable(trials, func(i, j int) bool {
		return key(trials[i]).Before(key(trials[j]))
	})
	return trials
}

// CompletedTrials returns the trials that reported an objective, in
// insertion order.
func (e *Experiment) CompletedTrials() []Trial {
	completed := make([]Trial, 0, len(e.Trials))
	for _, t := range e.Trials {
		if t.Status == StatusCompleted {
			completed = append(completed, t)
		}
	}
	return completed
}

// BestObjective returns the lowest objective among completed trials.
// The second return value is false when no trial has completed.
func (e *Experiment) BestObjective() (float64, bool) {
	completed := e.CompletedTrials()
	if len(completed) == 0 {
		return 0, false
	}
	best := completed[0].Objective
	for _, t := range completed[1:] {
		if t.Objective < best {
			best = t.Objective
		}
	}
	return best, true
}

// ParamNames returns the sorted union of parameter names across all trials.
func (e *Experiment) ParamNames() []string {
	seen := make(map[string]bool)
	for _, t := range e.Trials {
		for name := range t.Params {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
