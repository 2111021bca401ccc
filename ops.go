package gsw

import (
	"github.com/oceanum/gsw/shape"
)

// Every operation below follows the same contract: the first (primary)
// argument's shape determines the output shape; every other argument
// recycles cyclically to the primary's element count. Physically
// invalid input combinations surface as NaN elements, never as errors.
//
// Units: SA g/kg, SP unitless (PSS-78), CT and t °C, p dbar (sea
// pressure), z m (height, negative below the surface), longitude °E,
// latitude °N.

// SRFromSP computes Reference Salinity from Practical Salinity.
func (l *Library) SRFromSP(sp shape.Value) shape.Value {
	return l.mapN(l.k.SRFromSP, sp)
}

// SPFromSR computes Practical Salinity from Reference Salinity.
func (l *Library) SPFromSR(sr shape.Value) shape.Value {
	return l.mapN(l.k.SPFromSR, sr)
}

// CTFromT computes Conservative Temperature from in-situ temperature.
func (l *Library) CTFromT(sa, t, p shape.Value) shape.Value {
	return l.mapN(l.k.CTFromT, sa, t, p)
}

// TFromCT computes in-situ temperature from Conservative Temperature.
func (l *Library) TFromCT(sa, ct, p shape.Value) shape.Value {
	return l.mapN(l.k.TFromCT, sa, ct, p)
}

// CTFromPt computes Conservative Temperature from potential temperature
// referenced to 0 dbar.
func (l *Library) CTFromPt(sa, pt shape.Value) shape.Value {
	return l.mapN(l.k.CTFromPt, sa, pt)
}

// PtFromCT computes potential temperature (0 dbar reference) from
// Conservative Temperature.
func (l *Library) PtFromCT(sa, ct shape.Value) shape.Value {
	return l.mapN(l.k.PtFromCT, sa, ct)
}

// Pt0FromT computes potential temperature with a 0 dbar reference from
// in-situ temperature.
func (l *Library) Pt0FromT(sa, t, p shape.Value) shape.Value {
	return l.mapN(l.k.Pt0FromT, sa, t, p)
}

// Rho computes in-situ density (kg/m³).
func (l *Library) Rho(sa, ct, p shape.Value) shape.Value {
	return l.mapN(l.k.Rho, sa, ct, p)
}

// SpecVol computes specific volume (m³/kg).
func (l *Library) SpecVol(sa, ct, p shape.Value) shape.Value {
	return l.mapN(l.k.SpecVol, sa, ct, p)
}

// Alpha computes the thermal expansion coefficient with respect to
// Conservative Temperature (1/K).
func (l *Library) Alpha(sa, ct, p shape.Value) shape.Value {
	return l.mapN(l.k.Alpha, sa, ct, p)
}

// Beta computes the saline contraction coefficient at constant
// Conservative Temperature (kg/g).
func (l *Library) Beta(sa, ct, p shape.Value) shape.Value {
	return l.mapN(l.k.Beta, sa, ct, p)
}

// Sigma0 computes potential density anomaly referenced to 0 dbar.
func (l *Library) Sigma0(sa, ct shape.Value) shape.Value {
	return l.mapN(l.k.Sigma0, sa, ct)
}

// Sigma1 computes potential density anomaly referenced to 1000 dbar.
func (l *Library) Sigma1(sa, ct shape.Value) shape.Value {
	return l.mapN(l.k.Sigma1, sa, ct)
}

// Sigma2 computes potential density anomaly referenced to 2000 dbar.
func (l *Library) Sigma2(sa, ct shape.Value) shape.Value {
	return l.mapN(l.k.Sigma2, sa, ct)
}

// Sigma3 computes potential density anomaly referenced to 3000 dbar.
func (l *Library) Sigma3(sa, ct shape.Value) shape.Value {
	return l.mapN(l.k.Sigma3, sa, ct)
}

// Sigma4 computes potential density anomaly referenced to 4000 dbar.
func (l *Library) Sigma4(sa, ct shape.Value) shape.Value {
	return l.mapN(l.k.Sigma4, sa, ct)
}

// SoundSpeed computes the speed of sound in seawater (m/s).
func (l *Library) SoundSpeed(sa, ct, p shape.Value) shape.Value {
	return l.mapN(l.k.SoundSpeed, sa, ct, p)
}

// Kappa computes the isentropic compressibility (1/Pa).
func (l *Library) Kappa(sa, ct, p shape.Value) shape.Value {
	return l.mapN(l.k.Kappa, sa, ct, p)
}

// Enthalpy computes specific enthalpy (J/kg).
func (l *Library) Enthalpy(sa, ct, p shape.Value) shape.Value {
	return l.mapN(l.k.Enthalpy, sa, ct, p)
}

// InternalEnergy computes specific internal energy (J/kg).
func (l *Library) InternalEnergy(sa, ct, p shape.Value) shape.Value {
	return l.mapN(l.k.InternalEnergy, sa, ct, p)
}

// EntropyFromT computes specific entropy (J/(kg·K)) from in-situ
// temperature.
func (l *Library) EntropyFromT(sa, t, p shape.Value) shape.Value {
	return l.mapN(l.k.EntropyFromT, sa, t, p)
}

// CpT computes the isobaric heat capacity (J/(kg·K)) from in-situ
// temperature.
func (l *Library) CpT(sa, t, p shape.Value) shape.Value {
	return l.mapN(l.k.CpT, sa, t, p)
}

// LatentHeatEvapCT computes the latent heat of evaporation (J/kg).
func (l *Library) LatentHeatEvapCT(sa, ct shape.Value) shape.Value {
	return l.mapN(l.k.LatentHeatEvapCT, sa, ct)
}

// LatentHeatMelting computes the latent heat of melting (J/kg).
func (l *Library) LatentHeatMelting(sa, p shape.Value) shape.Value {
	return l.mapN(l.k.LatentHeatMelting, sa, p)
}

// AdiabaticLapseRateFromCT computes the adiabatic lapse rate (K/Pa).
func (l *Library) AdiabaticLapseRateFromCT(sa, ct, p shape.Value) shape.Value {
	return l.mapN(l.k.AdiabaticLapseRateFromCT, sa, ct, p)
}

// Spiciness0 computes spiciness referenced to 0 dbar.
func (l *Library) Spiciness0(sa, ct shape.Value) shape.Value {
	return l.mapN(l.k.Spiciness0, sa, ct)
}

// CTFreezing computes the Conservative Temperature at which seawater
// freezes. nil opts selects DefaultFreezingOptions (saturation
// fraction 1); the fraction reaches the kernel as a broadcast third
// parameter.
func (l *Library) CTFreezing(sa, p shape.Value, opts *FreezingOptions) shape.Value {
	o := DefaultFreezingOptions()
	if opts != nil {
		o = *opts
	}

	return l.mapN(l.k.CTFreezing, sa, p, shape.FromScalar(o.SaturationFraction))
}

// TFreezing computes the in-situ temperature at which seawater
// freezes. Options as for CTFreezing.
func (l *Library) TFreezing(sa, p shape.Value, opts *FreezingOptions) shape.Value {
	o := DefaultFreezingOptions()
	if opts != nil {
		o = *opts
	}

	return l.mapN(l.k.TFreezing, sa, p, shape.FromScalar(o.SaturationFraction))
}

// ZFromP computes height z (m, negative below the surface) from sea
// pressure and latitude.
func (l *Library) ZFromP(p, lat shape.Value) shape.Value {
	return l.mapN(l.k.ZFromP, p, lat)
}

// PFromZ computes sea pressure (dbar) from height and latitude.
func (l *Library) PFromZ(z, lat shape.Value) shape.Value {
	return l.mapN(l.k.PFromZ, z, lat)
}

// Grav computes gravitational acceleration (m/s²) from latitude and
// sea pressure.
func (l *Library) Grav(lat, p shape.Value) shape.Value {
	return l.mapN(l.k.Grav, lat, p)
}
