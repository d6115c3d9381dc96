package netem

//
// Packet loss
//

import (
	"fmt"

	"github.com/ooni/linkemu/internal/model"
	"github.com/ooni/linkemu/internal/runtimex"
)

// PacketLoss drops a packet with a given probability. A dropped packet
// stops its traversal of the [LinkEmulator].
type PacketLoss[T model.Payload] struct {
	probability float64
	rng         model.RandomSource
}

var _ model.Disturbance[string] = &PacketLoss[string]{}

// NewPacketLoss returns a [PacketLoss] dropping packets with the given
// probability, clamped into [0, 1].
//
// The rng MUST NOT be nil. A nil interface panics here, while a typed nil
// pointer such as a nil *randx.Source is not detected and panics on Apply.
func NewPacketLoss[T model.Payload](rng model.RandomSource, probability float64) *PacketLoss[T] {
	runtimex.PanicIfNil(rng, "netem: NewPacketLoss: nil random source")
	return &PacketLoss[T]{probability: ClampProbability(probability), rng: rng}
}

// Probability returns the clamped loss probability.
func (pl *PacketLoss[T]) Probability() float64 {
	return pl.probability
}

// Apply implements model.Disturbance.
func (pl *PacketLoss[T]) Apply(pkt *model.Packet[T]) {
	if triggers(pl.rng, pl.probability) {
		pkt.MarkAsLost()
	}
}

// String implements fmt.Stringer.
func (pl *PacketLoss[T]) String() string {
	return fmt.Sprintf("loss(%g)", pl.probability)
}
