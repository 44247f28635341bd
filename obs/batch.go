// Public domain.

package obs

import (
	"fmt"

	"github.com/soniakeys/unit"
)

// Batch holds ingested observations as parallel slices, not yet grouped
// by trajectory.  The two σ values apply uniformly to the batch.  All
// angles are radians and epochs MJD (TT) regardless of the ingestion
// path that built the batch.
type Batch struct {
	ID       []uint32  // trajectory id per record
	RA       []float64 // rad
	Dec      []float64 // rad
	MJD      []float64 // TT
	SigmaRA  float64   // rad
	SigmaDec float64   // rad
}

// LengthMismatchError reports parallel input sequences of unequal length.
// Ingestion never truncates or pads; the whole call fails.
type LengthMismatchError struct {
	Field    string
	Expected int
	Actual   int
}

func (e LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %s has %d elements, expected %d",
		e.Field, e.Actual, e.Expected)
}

func checkLengths(id []uint32, ra, dec, mjd []float64) error {
	n := len(id)
	for _, c := range []struct {
		field string
		n     int
	}{
		{"ra", len(ra)},
		{"dec", len(dec)},
		{"mjd", len(mjd)},
	} {
		if c.n != n {
			return LengthMismatchError{c.field, n, c.n}
		}
	}
	return nil
}

// BatchFromRadians ingests angles already in radians and epochs in
// MJD (TT).  The slices are borrowed, not copied: the caller must not
// modify them for the lifetime of the batch.
func BatchFromRadians(id []uint32, ra, dec []float64,
	sigmaRA, sigmaDec float64, mjd []float64) (*Batch, error) {
	if err := checkLengths(id, ra, dec, mjd); err != nil {
		return nil, err
	}
	return &Batch{
		ID:       id,
		RA:       ra,
		Dec:      dec,
		MJD:      mjd,
		SigmaRA:  sigmaRA,
		SigmaDec: sigmaDec,
	}, nil
}

// BatchFromDegrees ingests angles in degrees and uncertainties in arc
// seconds, converting every value to radians once into owned storage.
// The input slices are free for reuse when the call returns.
func BatchFromDegrees(id []uint32, raDeg, decDeg []float64,
	sigmaRASec, sigmaDecSec float64, mjd []float64) (*Batch, error) {
	if err := checkLengths(id, raDeg, decDeg, mjd); err != nil {
		return nil, err
	}
	n := len(id)
	b := &Batch{
		ID:       append([]uint32{}, id...),
		RA:       make([]float64, n),
		Dec:      make([]float64, n),
		MJD:      append([]float64{}, mjd...),
		SigmaRA:  unit.AngleFromSec(sigmaRASec).Rad(),
		SigmaDec: unit.AngleFromSec(sigmaDecSec).Rad(),
	}
	for i := 0; i < n; i++ {
		b.RA[i] = unit.AngleFromDeg(raDeg[i]).Rad()
		b.Dec[i] = unit.AngleFromDeg(decDeg[i]).Rad()
	}
	return b, nil
}

// Len returns the number of records in the batch.
func (b *Batch) Len() int { return len(b.ID) }

// At assembles the i'th record as an Observation.
func (b *Batch) At(i int) Observation {
	return Observation{
		MJD:      b.MJD[i],
		RA:       b.RA[i],
		Dec:      b.Dec[i],
		SigmaRA:  b.SigmaRA,
		SigmaDec: b.SigmaDec,
	}
}
