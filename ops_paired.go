package gsw

import (
	"github.com/oceanum/gsw/broadcast"
	"github.com/oceanum/gsw/shape"
)

// The paired operations derive their outputs from adjacent sample
// pairs, so each result sequence has one fewer element than the
// primary argument. They always return flat sequences: a grid-shaped
// primary fails with broadcast.ErrGridUnsupported before any kernel
// invocation, because n-1 results cannot be laid back onto an
// n-element grid.

// Nsquared computes the square of the buoyancy (Brunt–Väisälä)
// frequency between adjacent samples, together with the mid-point
// gravitational acceleration and mid-point pressure. Samples are
// assumed ordered by pressure.
func (l *Library) Nsquared(sa, ct, p, lat shape.Value) (n2, gMid, pMid []float64, err error) {
	set := broadcast.Reconcile(sa, ct, p, lat)

	return broadcast.MapPairs(set, l.k.Nsquared)
}

// TurnerRsubrho computes the Turner angle (°) and the stability ratio
// R_rho between adjacent samples, together with the mid-point
// pressure.
func (l *Library) TurnerRsubrho(sa, ct, p shape.Value) (tu, rSubRho, pMid []float64, err error) {
	set := broadcast.Reconcile(sa, ct, p)

	return broadcast.MapPairs(set, l.k.TurnerRsubrho)
}
