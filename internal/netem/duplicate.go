package netem

import (
	"fmt"

	"github.com/ooni/linkemu/internal/model"
	"github.com/ooni/linkemu/internal/runtimex"
)

// Duplicate flags a packet as duplicated with a given probability. It
// does not create a second packet: the flag is only informational.
type Duplicate[T model.Payload] struct {
	probability float64
	rng         model.RandomSource
}

var _ model.Disturbance[string] = &Duplicate[string]{}

// NewDuplicate returns a [Duplicate] with the given probability, clamped
// into [0, 1]. Values above one therefore duplicate every packet.
//
// The rng MUST NOT be nil. A nil interface panics here, while a typed nil
// pointer such as a nil *randx.Source is not detected and panics on Apply.
func NewDuplicate[T model.Payload](rng model.RandomSource, probability float64) *Duplicate[T] {
	runtimex.PanicIfNil(rng, "netem: NewDuplicate: nil random source")
	return &Duplicate[T]{probability: ClampProbability(probability), rng: rng}
}

// Probability returns the clamped duplication probability.
func (d *Duplicate[T]) Probability() float64 {
	return d.probability
}

// Apply implements model.Disturbance.
func (d *Duplicate[T]) Apply(pkt *model.Packet[T]) {
	if triggers(d.rng, d.probability) {
		pkt.MarkDuplicate()
	}
}

// String implements fmt.Stringer.
func (d *Duplicate[T]) String() string {
	return fmt.Sprintf("duplicate(%g)", d.probability)
}
