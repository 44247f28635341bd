// Public domain.

package elements

import (
	"fmt"
	"math"
)

// Cometary parameterizes an orbit by perihelion distance and true
// anomaly.  Unlike the keplerian and equinoctial forms it stays
// well-defined through e=1 and beyond, so it is the natural form for
// parabolic and hyperbolic solutions.
type Cometary struct {
	ReferenceEpoch         float64 // MJD (TDB)
	PerihelionDistance     float64 // AU
	Eccentricity           float64
	Inclination            float64 // rad
	AscendingNodeLongitude float64 // rad
	PeriapsisArgument      float64 // rad
	TrueAnomaly            float64 // rad
}

func (c Cometary) ReferenceMJD() float64 { return c.ReferenceEpoch }

// Keplerian converts to classical elements.  Only hyperbolic orbits
// convert: for e ≤ 1 the semi-major axis q/(1-e) is undefined or
// non-finite and a NonEllipticalError is returned.  For e > 1 the
// semi-major axis comes out negative by convention, i, Ω and ω carry
// through unchanged, and the true anomaly maps to mean anomaly through
// the hyperbolic Kepler equation.
func (c Cometary) Keplerian() (Keplerian, error) {
	if c.Eccentricity <= 1 {
		return Keplerian{}, NonEllipticalError{c.Eccentricity}
	}
	// hyperbolic anomaly from true anomaly,
	// tanh(H/2) = √((e-1)/(e+1)) tan(ν/2)
	e := c.Eccentricity
	h := 2 * math.Atanh(math.Sqrt((e-1)/(e+1))*math.Tan(c.TrueAnomaly*.5))
	return Keplerian{
		ReferenceEpoch:         c.ReferenceEpoch,
		SemiMajorAxis:          c.PerihelionDistance / (1 - e),
		Eccentricity:           e,
		Inclination:            c.Inclination,
		AscendingNodeLongitude: c.AscendingNodeLongitude,
		PeriapsisArgument:      c.PeriapsisArgument,
		MeanAnomaly:            e*math.Sinh(h) - h,
	}, nil
}

// Equinoctial converts through the keplerian form and fails under the
// same condition, without attempting the second step.
func (c Cometary) Equinoctial() (Equinoctial, error) {
	k, err := c.Keplerian()
	if err != nil {
		return Equinoctial{}, err
	}
	return k.Equinoctial(), nil
}

func (c Cometary) String() string {
	return fmt.Sprintf(
		"epoch %s q %.6f e %.6f i %.6f Ω %.6f ω %.6f ν %.6f",
		epochString(c.ReferenceEpoch), c.PerihelionDistance,
		c.Eccentricity, c.Inclination, c.AscendingNodeLongitude,
		c.PeriapsisArgument, c.TrueAnomaly)
}
