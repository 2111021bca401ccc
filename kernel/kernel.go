package kernel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncomplete indicates a Set with one or more nil kernel entries.
var ErrIncomplete = errors.New("kernel: incomplete kernel set")

// Func is a pure per-element kernel. The in slice carries one value
// per named parameter of the owning operation, in declaration order
// (primary argument first). A NaN result marks a physically invalid
// input combination; it is never an error.
type Func func(in []float64) float64

// PairFunc is a pure per-adjacent-pair kernel. lo and hi carry the
// full parameter tuples at sample indices i and i+1. It returns two
// derived quantities plus a midpoint coordinate (e.g. the pressure
// halfway between the two samples).
type PairFunc func(lo, hi []float64) (q1, q2, mid float64)

// Set is the injected kernel capability: one pure function per public
// operation. Real deployments populate it from the compiled TEOS-10
// bindings; tests populate it with stubs.
type Set struct {
	// Salinity conversions. SAFromSP and SPFromSA receive
	// (salinity, p, longitude, latitude) per element.
	SAFromSP Func
	SPFromSA Func
	SRFromSP Func
	SPFromSR Func

	// Temperature conversions.
	CTFromT  Func
	TFromCT  Func
	CTFromPt Func
	PtFromCT Func
	Pt0FromT Func

	// Density and related quantities, (SA, CT, p) unless noted.
	Rho     Func
	SpecVol Func
	Alpha   Func
	Beta    Func
	Sigma0  Func // (SA, CT)
	Sigma1  Func // (SA, CT)
	Sigma2  Func // (SA, CT)
	Sigma3  Func // (SA, CT)
	Sigma4  Func // (SA, CT)

	// Acoustic and compressibility.
	SoundSpeed Func
	Kappa      Func

	// Energy, entropy and heat capacity.
	Enthalpy       Func
	InternalEnergy Func
	EntropyFromT   Func // (SA, t, p)
	CpT            Func // (SA, t, p)

	// Latent heats.
	LatentHeatEvapCT  Func // (SA, CT)
	LatentHeatMelting Func // (SA, p)

	// Lapse rate and spiciness.
	AdiabaticLapseRateFromCT Func
	Spiciness0               Func // (SA, CT)

	// Freezing points, (SA, p, saturationFraction).
	CTFreezing Func
	TFreezing  Func

	// Geopotential and gravity.
	ZFromP Func // (p, latitude)
	PFromZ Func // (z, latitude)
	Grav   Func // (latitude, p)

	// Paired-output stability kernels over adjacent samples.
	Nsquared      PairFunc // (SA, CT, p, latitude) -> (N^2, gMid, pMid)
	TurnerRsubrho PairFunc // (SA, CT, p)           -> (Tu, Rsubrho, pMid)
}

// Complete reports whether every kernel entry is populated. On failure
// it returns ErrIncomplete wrapped with the missing entry names, so
// errors.Is(err, ErrIncomplete) holds.
func (s Set) Complete() error {
	entries := []struct {
		name string
		ok   bool
	}{
		{"SAFromSP", s.SAFromSP != nil},
		{"SPFromSA", s.SPFromSA != nil},
		{"SRFromSP", s.SRFromSP != nil},
		{"SPFromSR", s.SPFromSR != nil},
		{"CTFromT", s.CTFromT != nil},
		{"TFromCT", s.TFromCT != nil},
		{"CTFromPt", s.CTFromPt != nil},
		{"PtFromCT", s.PtFromCT != nil},
		{"Pt0FromT", s.Pt0FromT != nil},
		{"Rho", s.Rho != nil},
		{"SpecVol", s.SpecVol != nil},
		{"Alpha", s.Alpha != nil},
		{"Beta", s.Beta != nil},
		{"Sigma0", s.Sigma0 != nil},
		{"Sigma1", s.Sigma1 != nil},
		{"Sigma2", s.Sigma2 != nil},
		{"Sigma3", s.Sigma3 != nil},
		{"Sigma4", s.Sigma4 != nil},
		{"SoundSpeed", s.SoundSpeed != nil},
		{"Kappa", s.Kappa != nil},
		{"Enthalpy", s.Enthalpy != nil},
		{"InternalEnergy", s.InternalEnergy != nil},
		{"EntropyFromT", s.EntropyFromT != nil},
		{"CpT", s.CpT != nil},
		{"LatentHeatEvapCT", s.LatentHeatEvapCT != nil},
		{"LatentHeatMelting", s.LatentHeatMelting != nil},
		{"AdiabaticLapseRateFromCT", s.AdiabaticLapseRateFromCT != nil},
		{"Spiciness0", s.Spiciness0 != nil},
		{"CTFreezing", s.CTFreezing != nil},
		{"TFreezing", s.TFreezing != nil},
		{"ZFromP", s.ZFromP != nil},
		{"PFromZ", s.PFromZ != nil},
		{"Grav", s.Grav != nil},
		{"Nsquared", s.Nsquared != nil},
		{"TurnerRsubrho", s.TurnerRsubrho != nil},
	}

	var missing []string
	for _, e := range entries {
		if !e.ok {
			missing = append(missing, e.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}

	return nil
}
