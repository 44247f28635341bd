// Public domain.

package elements

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// Equinoctial reparameterizes a keplerian orbit free of the e=0 and i=0
// singularities.  h and k carry the eccentricity vector resolved along
// the longitude of periapsis ϖ=ω+Ω, p and q the inclination resolved
// along the node.
type Equinoctial struct {
	ReferenceEpoch     float64 // MJD (TDB)
	SemiMajorAxis      float64 // AU
	EccentricitySinLon float64 // h = e sin ϖ
	EccentricityCosLon float64 // k = e cos ϖ
	TanHalfInclSinNode float64 // p = tan(i/2) sin Ω
	TanHalfInclCosNode float64 // q = tan(i/2) cos Ω
	MeanLongitude      float64 // ℓ = M + ϖ, rad
}

func (e Equinoctial) ReferenceMJD() float64 { return e.ReferenceEpoch }

// Keplerian recovers the classical elements.  Angles come back in
// [0, 2π).  At e=0 or i=0 the recovered ω and Ω individually take the
// atan2 branch values; their sums with the other angles still describe
// the same orbit.
func (e Equinoctial) Keplerian() Keplerian {
	ecc := math.Hypot(e.EccentricitySinLon, e.EccentricityCosLon)
	node := math.Atan2(e.TanHalfInclSinNode, e.TanHalfInclCosNode)
	plon := math.Atan2(e.EccentricitySinLon, e.EccentricityCosLon)
	incl := 2 * math.Atan2(
		math.Hypot(e.TanHalfInclSinNode, e.TanHalfInclCosNode), 1)
	return Keplerian{
		ReferenceEpoch:         e.ReferenceEpoch,
		SemiMajorAxis:          e.SemiMajorAxis,
		Eccentricity:           ecc,
		Inclination:            incl,
		AscendingNodeLongitude: unit.PMod(node, 2*math.Pi),
		PeriapsisArgument:      unit.PMod(plon-node, 2*math.Pi),
		MeanAnomaly:            unit.PMod(e.MeanLongitude-plon, 2*math.Pi),
	}
}

func (e Equinoctial) String() string {
	return fmt.Sprintf(
		"epoch %s a %.6f h %.6f k %.6f p %.6f q %.6f ℓ %.6f",
		epochString(e.ReferenceEpoch), e.SemiMajorAxis,
		e.EccentricitySinLon, e.EccentricityCosLon,
		e.TanHalfInclSinNode, e.TanHalfInclCosNode, e.MeanLongitude)
}
