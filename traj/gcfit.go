// Public domain.

package traj

import (
	"github.com/soniakeys/coord"
	"github.com/soniakeys/lmfit"
	"github.com/soniakeys/unit"
)

// GreatCircleRMS fits linear great-circle motion over the trajectory
// and returns the residual RMS.  It is a cheap quality diagnostic: a
// high value means either bad astrometry or real departure from
// great-circle motion over the arc.  ok is false with fewer than two
// observations, where no fit is defined.
func (t *Trajectory) GreatCircleRMS() (rms unit.Angle, ok bool) {
	if len(t.Obs) < 2 {
		return 0, false
	}
	mjd := make([]float64, len(t.Obs))
	s := make(coord.EquaS, len(t.Obs))
	for i, o := range t.Obs {
		mjd[i] = o.MJD
		s[i] = coord.Equa{RA: unit.RA(o.RA), Dec: unit.Angle(o.Dec)}
	}
	return lmfit.New(mjd, s).Rms(), true
}
