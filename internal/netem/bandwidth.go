package netem

import "github.com/ooni/linkemu/internal/humanize"

// Bandwidth is the transfer speed of a link in bytes per millisecond.
type Bandwidth int64

// BytesPerMillisecond is the constant to multiply [Bandwidth] for so that
// the measurement unit is bytes per millisecond.
const BytesPerMillisecond = 1

// MinBandwidth is the slowest transfer speed a [Throttle] accepts.
const MinBandwidth = Bandwidth(1 * BytesPerMillisecond)

// String returns a human readable representation of the bandwidth.
func (b Bandwidth) String() string {
	return humanize.Rate(int64(b))
}

// normalize returns b when positive and [MinBandwidth] otherwise.
func (b Bandwidth) normalize() Bandwidth {
	if b <= 0 {
		return MinBandwidth
	}
	return b
}
