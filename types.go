// Package gsw defines the public options for the operation surface.
package gsw

// Options configures a Library.
//   - Workers: number of parallel dispatch workers used by every
//     element-wise operation. Values <= 1 select serial dispatch.
//     Parallel and serial dispatch produce identical results.
type Options struct {
	Workers int
}

// DefaultOptions returns serial dispatch.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// FreezingOptions configures the freezing-point operations.
//   - SaturationFraction: the saturation fraction of dissolved air in
//     seawater, between 0 (none) and 1 (fully saturated).
type FreezingOptions struct {
	SaturationFraction float64
}

// DefaultFreezingOptions returns SaturationFraction = 1
// (air-saturated seawater), the documented default when the option is
// omitted.
func DefaultFreezingOptions() FreezingOptions {
	return FreezingOptions{SaturationFraction: 1}
}
