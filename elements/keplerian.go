// Public domain.

package elements

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// Keplerian is the classical six-element orbit description.
//
// The parameterization is singular at e=0, where the periapsis argument
// is undefined, and at i=0, where the node longitude is undefined.
// Conversions near those points remain numerically valid but the
// individual singular angles are only meaningful in combination.
type Keplerian struct {
	ReferenceEpoch         float64 // MJD (TDB)
	SemiMajorAxis          float64 // AU
	Eccentricity           float64
	Inclination            float64 // rad
	AscendingNodeLongitude float64 // rad
	PeriapsisArgument      float64 // rad
	MeanAnomaly            float64 // rad
}

func (k Keplerian) ReferenceMJD() float64 { return k.ReferenceEpoch }

// Equinoctial converts to the singularity-free equinoctial form.
// The conversion is total and preserves the physical orbit.
func (k Keplerian) Equinoctial() Equinoctial {
	plon := k.PeriapsisArgument + k.AscendingNodeLongitude // ϖ = ω + Ω
	sp, cp := math.Sincos(plon)
	sn, cn := math.Sincos(k.AscendingNodeLongitude)
	ti := math.Tan(k.Inclination * .5)
	return Equinoctial{
		ReferenceEpoch:     k.ReferenceEpoch,
		SemiMajorAxis:      k.SemiMajorAxis,
		EccentricitySinLon: k.Eccentricity * sp,
		EccentricityCosLon: k.Eccentricity * cp,
		TanHalfInclSinNode: ti * sn,
		TanHalfInclCosNode: ti * cn,
		MeanLongitude:      unit.PMod(k.MeanAnomaly+plon, 2*math.Pi),
	}
}

func (k Keplerian) String() string {
	return fmt.Sprintf(
		"epoch %s a %.6f e %.6f i %.6f Ω %.6f ω %.6f M %.6f",
		epochString(k.ReferenceEpoch), k.SemiMajorAxis, k.Eccentricity,
		k.Inclination, k.AscendingNodeLongitude, k.PeriapsisArgument,
		k.MeanAnomaly)
}
