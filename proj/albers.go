// Package proj provides the Albers equal-area map projection used to
// compute true areas and perimeters from geographic coordinates.
package proj

import "math"

// GRS80 ellipsoid.
const (
	semiMajorAxis       = 6378137.0
	eccentricitySquared = 0.00669438002290
)

// Albers is a fully constructed equal-area projection. Build one with
// NewAlbers and pass it in explicitly, there is no hidden global
// projection state.
type Albers struct {
	e    float64
	n    float64
	c    float64
	rho0 float64
	lon0 float64
}

// NewAlbers constructs an ellipsoidal Albers equal-area projection
// from two standard parallels and the projection origin, all in
// degrees. Formulas follow Snyder, Map Projections: A Working Manual.
func NewAlbers(lat1, lat2, lat0, lon0 float64) *Albers {
	e := math.Sqrt(eccentricitySquared)

	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	phi0 := lat0 * math.Pi / 180

	m1 := albersM(phi1, e)
	m2 := albersM(phi2, e)
	q1 := albersQ(phi1, e)
	q2 := albersQ(phi2, e)
	q0 := albersQ(phi0, e)

	n := (m1*m1 - m2*m2) / (q2 - q1)
	c := m1*m1 + n*q1

	return &Albers{
		e:    e,
		n:    n,
		c:    c,
		rho0: semiMajorAxis * math.Sqrt(c-n*q0) / n,
		lon0: lon0 * math.Pi / 180,
	}
}

// NewConus returns the projection used for the national datasets:
// standard parallels 30N and 60N, origin 40N 100W.
func NewConus() *Albers {
	return NewAlbers(30, 60, 40, -100)
}

// Project converts a longitude/latitude pair in degrees to projected
// x/y in meters.
func (p *Albers) Project(lon, lat float64) (x, y float64) {
	phi := lat * math.Pi / 180
	lam := lon * math.Pi / 180

	q := albersQ(phi, p.e)
	rho := semiMajorAxis * math.Sqrt(p.c-p.n*q) / p.n
	theta := p.n * (lam - p.lon0)

	return rho * math.Sin(theta), p.rho0 - rho*math.Cos(theta)
}

func albersM(phi, e float64) float64 {
	s := math.Sin(phi)
	return math.Cos(phi) / math.Sqrt(1-e*e*s*s)
}

func albersQ(phi, e float64) float64 {
	s := math.Sin(phi)
	return (1 - e*e) * (s/(1-e*e*s*s) - (1/(2*e))*math.Log((1-e*s)/(1+e*s)))
}
