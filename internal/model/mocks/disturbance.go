package mocks

import "github.com/ooni/linkemu/internal/model"

// Disturbance allows mocking a [model.Disturbance].
type Disturbance[T model.Payload] struct {
	MockApply func(pkt *model.Packet[T])

	MockString func() string
}

var _ model.Disturbance[string] = &Disturbance[string]{}

// Apply calls MockApply.
func (d *Disturbance[T]) Apply(pkt *model.Packet[T]) {
	d.MockApply(pkt)
}

// String calls MockString when set and returns "mock" otherwise.
func (d *Disturbance[T]) String() string {
	if d.MockString == nil {
		return "mock"
	}
	return d.MockString()
}
