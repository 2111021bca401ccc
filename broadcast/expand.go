package broadcast

import (
	"github.com/oceanum/gsw/shape"
)

// ExpandGeoAxes promotes 1-D longitude/latitude axes to full per-cell
// coordinate sequences when primary is a grid whose row extent equals
// len(longitude) and whose column extent equals len(latitude).
//
// The expansion enumerates the full outer product with longitude
// varying fastest: for each of the Cols latitude values the entire
// Rows-length longitude sequence repeats once, so the coordinate at
// flat index k = j*Rows + i is (longitude[i], latitude[j]) — matching
// the column-major flattening of the primary grid.
//
// If primary is not a grid, or the axis lengths do not match its
// extents, both axes pass through unchanged and are subject to
// ordinary recycling downstream. Dimension mismatch is a silent
// fall-through, never an error.
//
// Complexity: O(Rows·Cols). Memory: O(Rows·Cols) per axis.
func ExpandGeoAxes(primary, lon, lat shape.Value) (shape.Value, shape.Value) {
	d := primary.Desc
	if d.Kind != shape.Grid || d.Rows != lon.Len() || d.Cols != lat.Len() {
		return lon, lat
	}

	n := d.Rows * d.Cols
	lonOut := make([]float64, 0, n)
	latOut := make([]float64, 0, n)
	for j := 0; j < d.Cols; j++ {
		for i := 0; i < d.Rows; i++ {
			lonOut = append(lonOut, lon.Data[i])
			latOut = append(latOut, lat.Data[j])
		}
	}

	return shape.FromSlice(lonOut), shape.FromSlice(latOut)
}
