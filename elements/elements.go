// Public domain.

// Package elements defines orbital element sets in three standard
// parameterizations and the conversions between them.
//
// The keplerian and equinoctial forms describe bound orbits and convert
// freely in both directions.  The cometary form is valid through and
// beyond e=1 but converts to the other two forms only for hyperbolic
// orbits, where a finite semi-major axis exists.  Conversions return new
// values; element sets are never modified in place.
//
// All angles are radians, all epochs MJD on the TDB scale.
package elements

import (
	"fmt"

	"github.com/soniakeys/meeus/v3/julian"
)

// Set is the closed family of orbital element parameterizations.
// Exactly three types implement it: Keplerian, Equinoctial and Cometary.
type Set interface {
	// ReferenceMJD returns the epoch the elements are referenced to,
	// MJD (TDB).
	ReferenceMJD() float64

	set()
}

func (k Keplerian) set()   {}
func (e Equinoctial) set() {}
func (c Cometary) set()    {}

// Stage distinguishes a direct Gauss triangulation result from one that
// has been through the iterative refinement pass.
type Stage int

const (
	Preliminary Stage = iota
	Corrected
)

func (s Stage) String() string {
	if s == Corrected {
		return "corrected"
	}
	return "preliminary"
}

// GaussResult is one orbit produced by the Gauss solver: an element set
// tagged with its refinement stage.
type GaussResult struct {
	Stage    Stage
	Elements Set
}

// Keplerian returns the contained element set if it is keplerian.
func (g GaussResult) Keplerian() (Keplerian, bool) {
	k, ok := g.Elements.(Keplerian)
	return k, ok
}

// Equinoctial returns the contained element set if it is equinoctial.
func (g GaussResult) Equinoctial() (Equinoctial, bool) {
	e, ok := g.Elements.(Equinoctial)
	return e, ok
}

// Cometary returns the contained element set if it is cometary.
func (g GaussResult) Cometary() (Cometary, bool) {
	c, ok := g.Elements.(Cometary)
	return c, ok
}

func (g GaussResult) String() string {
	switch e := g.Elements.(type) {
	case Keplerian:
		return fmt.Sprintf("%v keplerian %v", g.Stage, e)
	case Equinoctial:
		return fmt.Sprintf("%v equinoctial %v", g.Stage, e)
	case Cometary:
		return fmt.Sprintf("%v cometary %v", g.Stage, e)
	}
	return g.Stage.String()
}

// NonEllipticalError is returned by cometary conversions attempted with
// eccentricity ≤ 1, where q/(1-e) gives no finite semi-major axis.
type NonEllipticalError struct {
	Eccentricity float64
}

func (e NonEllipticalError) Error() string {
	return fmt.Sprintf(
		"cometary orbit with eccentricity %g has no finite semi-major axis",
		e.Eccentricity)
}

// epochString formats an MJD epoch as a calendar date for display.
func epochString(mjd float64) string {
	y, m, d := julian.JDToCalendar(mjd + 2400000.5)
	return fmt.Sprintf("%d-%02d-%05.2f", y, m, d)
}
