package netem

//
// Payload corruption
//

import (
	"fmt"

	"github.com/ooni/linkemu/internal/model"
	"github.com/ooni/linkemu/internal/runtimex"
)

// CorruptionMarker is the byte [Tamper] writes over the payload.
const CorruptionMarker = '#'

// Tamper corrupts a packet with a given probability by overwriting one
// uniformly chosen payload byte with [CorruptionMarker].
//
// When the probability triggers, the packet is marked as corrupted even
// if the payload is empty and nothing could be overwritten.
type Tamper[T model.Payload] struct {
	probability float64
	rng         model.RandomSource
}

var _ model.Disturbance[string] = &Tamper[string]{}

// NewTamper returns a [Tamper] with the given probability, clamped into [0, 1].
//
// The rng MUST NOT be nil. A nil interface panics here, while a typed nil
// pointer such as a nil *randx.Source is not detected and panics on Apply.
func NewTamper[T model.Payload](rng model.RandomSource, probability float64) *Tamper[T] {
	runtimex.PanicIfNil(rng, "netem: NewTamper: nil random source")
	return &Tamper[T]{probability: ClampProbability(probability), rng: rng}
}

// Probability returns the clamped corruption probability.
func (tp *Tamper[T]) Probability() float64 {
	return tp.probability
}

// Apply implements model.Disturbance.
func (tp *Tamper[T]) Apply(pkt *model.Packet[T]) {
	if !triggers(tp.rng, tp.probability) {
		return
	}
	if data := []byte(pkt.Data()); len(data) > 0 {
		data[tp.rng.IntN(len(data))] = CorruptionMarker
		pkt.SetData(T(data))
	}
	pkt.MarkCorrupted()
}

// String implements fmt.Stringer.
func (tp *Tamper[T]) String() string {
	return fmt.Sprintf("tamper(%g)", tp.probability)
}
