package randx

import (
	"fmt"
	"time"
)

// Color returns a uniformly random 24-bit RGB color, one byte per channel.
func (r *Rand) Color() (red, green, blue uint8) {
	return r.Byte(), r.Byte(), r.Byte()
}

// HexColor returns a uniformly random color formatted as "#RRGGBB".
func (r *Rand) HexColor() string {
	red, green, blue := r.Color()
	return fmt.Sprintf("#%02X%02X%02X", red, green, blue)
}

// Coordinate returns a uniformly random geographic position in degrees:
// latitude in [-90, 90), then longitude in [-180, 180).
func (r *Rand) Coordinate() (lat, lon float64) {
	lat = -90 + 180*r.Float64()
	lon = -180 + 360*r.Float64()
	return lat, lon
}

// Time returns a uniformly random instant in [min, max) with nanosecond
// resolution. Fails with ErrInvalidRange unless max is after min, without
// consuming a draw.
func (r *Rand) Time(min, max time.Time) (time.Time, error) {
	if !max.After(min) {
		return time.Time{}, ErrInvalidRange
	}
	span := max.Sub(min)
	n, _ := r.Int(0, int64(span))
	return min.Add(time.Duration(n)), nil
}
