package model

import (
	"slices"
	"strings"
)

// State is an immutable snapshot of every record held by the application.
// Operations return a new State and never modify the receiver; records inside a
// State must be treated as read-only.
type State struct {
	Resources  []*Resource         `json:"resources"`
	Activities []*Activity         `json:"activities"`
	Risks      []*Risk             `json:"risks"`
	Strategies []*RecoveryStrategy `json:"strategies"`
}

// NewState returns an empty State
func NewState() *State {
	return &State{
		Resources:  []*Resource{},
		Activities: []*Activity{},
		Risks:      []*Risk{},
		Strategies: []*RecoveryStrategy{},
	}
}

func (s *State) shallowCopy() *State {
	return &State{
		Resources:  s.Resources,
		Activities: s.Activities,
		Risks:      s.Risks,
		Strategies: s.Strategies,
	}
}

// upsert returns a new slice with v replacing the element with the same id, or appended
func upsert[T any](list []*T, v *T, id func(*T) string) []*T {
	out := make([]*T, 0, len(list)+1)
	replaced := false
	for _, item := range list {
		if id(item) == id(v) {
			out = append(out, v)
			replaced = true
			continue
		}
		out = append(out, item)
	}
	if !replaced {
		out = append(out, v)
	}
	return out
}

// remove returns a new slice without the element with the given id
func remove[T any](list []*T, target string, id func(*T) string) []*T {
	out := make([]*T, 0, len(list))
	for _, item := range list {
		if id(item) != target {
			out = append(out, item)
		}
	}
	return out
}

func resourceID(r *Resource) string { return r.ID }
func activityID(a *Activity) string { return a.ID }
func riskID(r *Risk) string { return r.ID }
func strategyID(s *RecoveryStrategy) string { return s.ID }

// WithResource returns a new State with the resource inserted or replaced
func (s *State) WithResource(r *Resource) *State {
	next := s.shallowCopy()
	next.Resources = upsert(s.Resources, r.Clone(), resourceID)
	return next
}

// WithoutResource returns a new State without the resource
func (s *State) WithoutResource(id string) *State {
	next := s.shallowCopy()
	next.Resources = remove(s.Resources, id, resourceID)
	return next
}

// WithActivity returns a new State with the activity inserted or replaced
func (s *State) WithActivity(a *Activity) *State {
	next := s.shallowCopy()
	next.Activities = upsert(s.Activities, a.Clone(), activityID)
	return next
}

// WithoutActivity returns a new State without the activity. Records referring to it are kept.
func (s *State) WithoutActivity(id string) *State {
	next := s.shallowCopy()
	next.Activities = remove(s.Activities, id, activityID)
	return next
}

// WithRisk returns a new State with the risk inserted or replaced
func (s *State) WithRisk(r *Risk) *State {
	next := s.shallowCopy()
	next.Risks = upsert(s.Risks, r.Clone(), riskID)
	return next
}

// WithoutRisk returns a new State without the risk
func (s *State) WithoutRisk(id string) *State {
	next := s.shallowCopy()
	next.Risks = remove(s.Risks, id, riskID)
	return next
}

// WithStrategy returns a new State with the strategy inserted or replaced
func (s *State) WithStrategy(st *RecoveryStrategy) *State {
	return s.WithStrategies(st)
}

// WithStrategies returns a new State with every given strategy inserted or replaced
func (s *State) WithStrategies(strategies ...*RecoveryStrategy) *State {
	next := s.shallowCopy()
	list := s.Strategies
	for _, st := range strategies {
		list = upsert(list, st.Clone(), strategyID)
	}
	next.Strategies = list
	return next
}

// WithoutStrategy returns a new State without the strategy
func (s *State) WithoutStrategy(id string) *State {
	next := s.shallowCopy()
	next.Strategies = remove(s.Strategies, id, strategyID)
	return next
}

// FindResource returns the resource with the id, or nil
func (s *State) FindResource(id string) *Resource {
	idx := slices.IndexFunc(s.Resources, func(r *Resource) bool { return r.ID == id })
	if idx < 0 {
		return nil
	}
	return s.Resources[idx]
}

// FindActivity returns the activity with the id, or nil
func (s *State) FindActivity(id string) *Activity {
	idx := slices.IndexFunc(s.Activities, func(a *Activity) bool { return a.ID == id })
	if idx < 0 {
		return nil
	}
	return s.Activities[idx]
}

// FindRisk returns the risk with the id, or nil
func (s *State) FindRisk(id string) *Risk {
	idx := slices.IndexFunc(s.Risks, func(r *Risk) bool { return r.ID == id })
	if idx < 0 {
		return nil
	}
	return s.Risks[idx]
}

// FindStrategy returns the strategy with the id, or nil
func (s *State) FindStrategy(id string) *RecoveryStrategy {
	idx := slices.IndexFunc(s.Strategies, func(st *RecoveryStrategy) bool { return st.ID == id })
	if idx < 0 {
		return nil
	}
	return s.Strategies[idx]
}

// StrategiesFor returns the strategies belonging to an activity
func (s *State) StrategiesFor(activityID string) []*RecoveryStrategy {
	var out []*RecoveryStrategy
	for _, st := range s.Strategies {
		if st.ActivityID == activityID {
			out = append(out, st)
		}
	}
	return out
}

// SelectedStrategy returns the selected strategy of an activity, or nil
func (s *State) SelectedStrategy(activityID string) *RecoveryStrategy {
	for _, st := range s.Strategies {
		if st.ActivityID == activityID && st.IsSelected {
			return st
		}
	}
	return nil
}

// SearchActivities returns activities whose name or department contains the query,
// case-insensitively. An empty query matches everything.
func (s *State) SearchActivities(query string) []*Activity {
	q := strings.ToLower(query)
	var out []*Activity
	for _, a := range s.Activities {
		if strings.Contains(strings.ToLower(a.Name), q) || strings.Contains(strings.ToLower(a.Department), q) {
			out = append(out, a)
		}
	}
	return out
}

// ActivitiesByPriority returns activities ordered from highest to lowest priority.
// Ties keep their current order.
func (s *State) ActivitiesByPriority() []*Activity {
	out := slices.Clone(s.Activities)
	slices.SortStableFunc(out, func(a, b *Activity) int {
		return b.Priority.Rank() - a.Priority.Rank()
	})
	return out
}
