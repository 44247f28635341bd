// Public domain.

// Package obs defines the observation record and the batch ingestion
// boundary that turns flat numeric arrays into validated, unit-normalized
// observations.
package obs

import "strconv"

// Observation is a single optical astrometric measurement.  Values are
// fixed at ingestion and not modified afterward.
type Observation struct {
	MJD      float64 // epoch, MJD (TT)
	RA       float64 // right ascension, rad
	Dec      float64 // declination, rad
	SigmaRA  float64 // 1-σ RA uncertainty, rad
	SigmaDec float64 // 1-σ Dec uncertainty, rad
}

// ObjectID designates the object a trajectory belongs to, either by
// number or by a packed/provisional designation string.  Exactly two
// types implement it.  Both are comparable and stable across a run, so
// an ObjectID serves directly as a map key.
type ObjectID interface {
	String() string

	objectID()
}

// NumberID is an unsigned numeric designation.
type NumberID uint32

// DesigID is a string designation, typically provisional.
type DesigID string

func (NumberID) objectID() {}
func (DesigID) objectID()  {}

func (n NumberID) String() string { return strconv.FormatUint(uint64(n), 10) }
func (d DesigID) String() string  { return string(d) }
