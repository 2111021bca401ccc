package gsw

import (
	"github.com/oceanum/gsw/broadcast"
	"github.com/oceanum/gsw/shape"
)

// The two salinity conversions below accept geographic coordinates.
// When the primary argument is a grid whose row extent equals
// len(longitude) and whose column extent equals len(latitude), the two
// 1-D axes are promoted to full per-cell coordinate sequences
// (longitude varying fastest) before ordinary reconciliation. Any
// other combination of shapes falls through to plain recycling.

// SAFromSP computes Absolute Salinity from Practical Salinity at the
// given sea pressure and geographic location.
func (l *Library) SAFromSP(sp, p, lon, lat shape.Value) shape.Value {
	lon, lat = broadcast.ExpandGeoAxes(sp, lon, lat)

	return l.mapN(l.k.SAFromSP, sp, p, lon, lat)
}

// SPFromSA computes Practical Salinity from Absolute Salinity at the
// given sea pressure and geographic location.
func (l *Library) SPFromSA(sa, p, lon, lat shape.Value) shape.Value {
	lon, lat = broadcast.ExpandGeoAxes(sa, lon, lat)

	return l.mapN(l.k.SPFromSA, sa, p, lon, lat)
}
