package netem

//
// Delay
//

import (
	"fmt"

	"github.com/ooni/linkemu/internal/model"
	"github.com/ooni/linkemu/internal/randx"
	"github.com/ooni/linkemu/internal/runtimex"
)

// Delay adds latency to a packet. The latency is either fixed or drawn
// uniformly from the closed interval [min, max] milliseconds.
type Delay[T model.Payload] struct {
	minMs int
	maxMs int
	rng   model.RandomSource
}

var _ model.Disturbance[string] = &Delay[string]{}

// NewDelay returns a [Delay] adding exactly fixedMs milliseconds. A
// negative value is clamped to zero.
func NewDelay[T model.Payload](fixedMs int) *Delay[T] {
	return newDelay[T](nil, fixedMs, fixedMs)
}

// NewDelayRange returns a [Delay] adding a random latency in [minMs, maxMs]
// drawn from rng. When either bound is negative, both bounds become
// zero. When minMs > maxMs, the bounds are swapped.
//
// The rng MUST NOT be nil. A nil interface panics here, while a typed nil
// pointer such as a nil *randx.Source is not detected and panics on Apply.
func NewDelayRange[T model.Payload](rng model.RandomSource, minMs, maxMs int) *Delay[T] {
	runtimex.PanicIfNil(rng, "netem: NewDelayRange: nil random source")
	return newDelay[T](rng, minMs, maxMs)
}

func newDelay[T model.Payload](rng model.RandomSource, minMs, maxMs int) *Delay[T] {
	if minMs < 0 || maxMs < 0 {
		minMs, maxMs = 0, 0
	}
	if minMs > maxMs {
		minMs, maxMs = maxMs, minMs
	}
	return &Delay[T]{minMs: minMs, maxMs: maxMs, rng: rng}
}

// Bounds returns the normalized delay bounds in milliseconds.
func (d *Delay[T]) Bounds() (minMs, maxMs int) {
	return d.minMs, d.maxMs
}

// Apply implements model.Disturbance.
func (d *Delay[T]) Apply(pkt *model.Packet[T]) {
	if d.minMs == d.maxMs {
		pkt.AddDelay(d.minMs)
		return
	}
	pkt.AddDelay(randx.IntRange(d.rng, d.minMs, d.maxMs))
}

// String implements fmt.Stringer.
func (d *Delay[T]) String() string {
	if d.minMs == d.maxMs {
		return fmt.Sprintf("delay(%dms)", d.minMs)
	}
	return fmt.Sprintf("delay(%d..%dms)", d.minMs, d.maxMs)
}
