package attr

import "fmt"

// DetectorInfo describes the detector a spectrum was recorded by.
// Angles are in degrees, distances in metres.
type DetectorInfo struct {
	ID       int32
	TwoTheta float64 // scattering angle
	Azimuth  float64
	Distance float64 // sample to detector
}

func (d DetectorInfo) String() string {
	return fmt.Sprintf("det %d (2θ=%g, φ=%g, L=%g)", d.ID, d.TwoTheta, d.Azimuth, d.Distance)
}

// Orientation is the sample orientation triple, in degrees.
type Orientation struct {
	Phi   float64
	Chi   float64
	Omega float64
}

func (o Orientation) String() string {
	return fmt.Sprintf("(phi=%g, chi=%g, omega=%g)", o.Phi, o.Chi, o.Omega)
}

// Sum returns Phi + Chi + Omega, the orientation's sort key.
func (o Orientation) Sum() float64 {
	return o.Phi + o.Chi + o.Omega
}
