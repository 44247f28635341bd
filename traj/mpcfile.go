// Public domain.

package traj

import (
	"io"

	"github.com/soniakeys/mpcformat"
	"github.com/soniakeys/observation"
	"github.com/soniakeys/unit"

	"orbdet/environ"
	"orbdet/obs"
)

// default observational error when a site specifies none, 1 arc second.
var defaultSigma = unit.AngleFromSec(1)

// AddMPCFile ingests MPC 80-column observations, splitting the stream
// into per-designation trajectories.  The stream must be grouped by
// designation with times increasing within each object.  Lines that do
// not parse and arcs that are not valid (fewer than two observations,
// non-increasing times, no motion) are dropped without notice, the same
// policy digest2 applies.  Read errors are fatal.
//
// Per-observation uncertainties come from the observer's accuracy
// fields when set, else default to one arc second.  A nil observer gets
// the default throughout.
func (s *TrajectorySet) AddMPCFile(r io.Reader, pmap observation.ParallaxMap,
	observer *environ.Observer) error {
	sigmaRA, sigmaDec := defaultSigma, defaultSigma
	if observer != nil {
		if observer.RAAccuracy != 0 {
			sigmaRA = observer.RAAccuracy
		}
		if observer.DecAccuracy != 0 {
			sigmaDec = observer.DecAccuracy
		}
	}
	for split := mpcformat.ArcSplitter(r, pmap); ; {
		a, err := split()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if _, ok := err.(mpcformat.ArcError); ok {
				continue
			}
			return err
		}
		if !validArc(a) {
			continue
		}
		id := obs.DesigID(a.Desig)
		for _, vo := range a.Obs {
			m := vo.Meas()
			s.add(id, obs.Observation{
				MJD:      m.MJD,
				RA:       m.Equa.RA.Rad(),
				Dec:      m.Equa.Dec.Rad(),
				SigmaRA:  sigmaRA.Rad(),
				SigmaDec: sigmaDec.Rad(),
			}, observer)
		}
	}
}

// validArc applies digest2's arc sanity checks: at least two
// observations, strictly increasing positive times, and motion over
// the arc.
func validArc(a *observation.Arc) bool {
	if len(a.Obs) < 2 {
		return false
	}
	var t0 float64
	for _, o := range a.Obs {
		t := o.Meas().MJD
		if t <= t0 {
			return false
		}
		t0 = t
	}
	first := a.Obs[0].Meas()
	last := a.Obs[len(a.Obs)-1].Meas()
	if first.RA == last.RA && first.Dec == last.Dec {
		return false
	}
	return true
}
