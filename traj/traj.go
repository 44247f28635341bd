// Public domain.

// Package traj groups ingested observations into per-object
// trajectories and owns the grouped data for the lifetime of an
// estimation run.
package traj

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"orbdet/environ"
	"orbdet/obs"
)

// Trajectory is the ordered set of observations attributed to one
// object.  Order is ingestion order; nothing here re-sorts by time.
type Trajectory struct {
	ID       obs.ObjectID
	Observer *environ.Observer // site the observations came from
	Obs      []obs.Observation
}

// TrajectorySet holds trajectories keyed by object designation.
// A zero set is not usable; construct with NewSet.
type TrajectorySet struct {
	m     map[obs.ObjectID]*Trajectory
	order []obs.ObjectID // first-seen order, for stable iteration
}

func NewSet() *TrajectorySet {
	return &TrajectorySet{m: make(map[obs.ObjectID]*Trajectory)}
}

func (s *TrajectorySet) add(id obs.ObjectID, o obs.Observation,
	observer *environ.Observer) {
	t, ok := s.m[id]
	if !ok {
		t = &Trajectory{ID: id, Observer: observer}
		s.m[id] = t
		s.order = append(s.order, id)
	}
	t.Obs = append(t.Obs, o)
}

// AddBatch merges a batch into the set, grouping records by trajectory
// id.  Grouping is stable: records sharing an id keep their relative
// batch order.  The batch's observer is attached to trajectories first
// seen in this call; repeated calls with different observers merge
// multi-observer data into one set.
func (s *TrajectorySet) AddBatch(b *obs.Batch, observer *environ.Observer) {
	for i := 0; i < b.Len(); i++ {
		s.add(obs.NumberID(b.ID[i]), b.At(i), observer)
	}
}

// Get returns the trajectory for an object designation.
func (s *TrajectorySet) Get(id obs.ObjectID) (*Trajectory, bool) {
	t, ok := s.m[id]
	return t, ok
}

// All returns the trajectories in first-seen order.
func (s *TrajectorySet) All() []*Trajectory {
	ts := make([]*Trajectory, len(s.order))
	for i, id := range s.order {
		ts[i] = s.m[id]
	}
	return ts
}

// NumberOfTrajectories returns the count of distinct objects.
func (s *TrajectorySet) NumberOfTrajectories() int { return len(s.m) }

// TotalObservations returns the observation count over all trajectories.
func (s *TrajectorySet) TotalObservations() int {
	n := 0
	for _, t := range s.m {
		n += len(t.Obs)
	}
	return n
}

// Stats summarizes the observations-per-trajectory distribution.
// Diagnostic only.
type Stats struct {
	Trajectories int
	Observations int
	Min, Max     int
	Mean         float64
}

// ObsCountStats computes the distribution summary.  ok is false for an
// empty set.
func (s *TrajectorySet) ObsCountStats() (st Stats, ok bool) {
	if len(s.m) == 0 {
		return
	}
	st.Trajectories = len(s.m)
	st.Min = int(^uint(0) >> 1)
	for _, t := range s.m {
		n := len(t.Obs)
		st.Observations += n
		if n < st.Min {
			st.Min = n
		}
		if n > st.Max {
			st.Max = n
		}
	}
	st.Mean = float64(st.Observations) / float64(st.Trajectories)
	return st, true
}

func (st Stats) String() string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Trajectories", "Observations",
		"Min obs", "Max obs", "Mean obs"})
	tw.AppendRow(table.Row{st.Trajectories, st.Observations,
		st.Min, st.Max, fmt.Sprintf("%.2f", st.Mean)})
	return tw.Render()
}
