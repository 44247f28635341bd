// Public domain.

package environ

import (
	"fmt"
	"math"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/coord"
	"github.com/soniakeys/observation"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// Earth figure constants used to derive parallax constants from
// geodetic coordinates.
const (
	earthRadius = 6.37814e6   // m, equatorial
	auMeters    = 149.59787e9 // m
	flattening  = 1 / 298.257
)

// Observer is a fixed ground-based observing site.  The parallax
// constants rhoCos and rhoSin are kept in AU, matching the catalog
// convention, so site vectors come out directly in AU.
type Observer struct {
	Name        string
	Longitude   unit.Angle // east
	Latitude    unit.Angle // geodetic
	Elevation   float64    // m above MSL
	RAAccuracy  unit.Angle // 0 when unspecified
	DecAccuracy unit.Angle // 0 when unspecified

	rhoCos, rhoSin float64 // AU
}

// NewObserver builds a site from geodetic coordinates in degrees and an
// elevation in meters.
func NewObserver(lonDeg, latDeg, elevM float64, name string) *Observer {
	o := &Observer{
		Name:      name,
		Longitude: unit.AngleFromDeg(lonDeg),
		Latitude:  unit.AngleFromDeg(latDeg),
		Elevation: elevM,
	}
	// geodetic to geocentric parallax constants
	lat := o.Latitude.Rad()
	u := math.Atan((1 - flattening) * math.Tan(lat))
	su, cu := math.Sincos(u)
	sl, cl := math.Sincos(lat)
	h := elevM / earthRadius
	scale := earthRadius / auMeters
	o.rhoSin = ((1-flattening)*su + h*sl) * scale
	o.rhoCos = (cu + h*cl) * scale
	return o
}

// observerFromParallax builds a site from MPC catalog parallax
// constants.  The catalog stores longitude as a fraction of a circle
// and rho terms in AU.  Elevation is folded into the rho terms and not
// recoverable; latitude is the geocentric value implied by them.
func observerFromParallax(code string, p *observation.ParallaxConst) *Observer {
	return &Observer{
		Name:      code,
		Longitude: unit.AngleFromDeg(float64(p.Longitude) * 360),
		Latitude:  unit.Angle(math.Atan2(p.RhoSinPhi, p.RhoCosPhi)),
		rhoCos:    p.RhoCosPhi,
		rhoSin:    p.RhoSinPhi,
	}
}

// EarthObserverVect returns the geocentric site position at the given
// epoch, equatorial coordinates, AU.
func (o *Observer) EarthObserverVect(mjd float64) coord.Cart {
	sl, cl := math.Sincos(astro.Lst(mjd, o.Longitude).Rad())
	return coord.Cart{
		X: o.rhoCos * cl,
		Y: o.rhoCos * sl,
		Z: o.rhoSin,
	}
}

// SunObserver returns the heliocentric observer position at the given
// epoch, rotated into ecliptic coordinates, AU.  This is the read-only
// geometry solvers share during a run.
func (e *Environment) SunObserver(o *Observer, mjd float64) coord.Cart {
	sunEarth, soe, coe := astro.Se2000(mjd)
	earthSite := o.EarthObserverVect(mjd)
	var sunObserver coord.Cart
	sunObserver.Sub(&earthSite, &sunEarth)
	sunObserver.RotateX(&sunObserver, soe, coe)
	return sunObserver
}

// LongitudeString formats the site longitude sexagesimally.
func (o *Observer) LongitudeString() string {
	return fmt.Sprintf("%v", sexa.FmtAngle(o.Longitude))
}

// LatitudeString formats the site latitude sexagesimally.
func (o *Observer) LatitudeString() string {
	return fmt.Sprintf("%v", sexa.FmtAngle(o.Latitude))
}
