package netem

//
// Bandwidth throttling
//

import (
	"fmt"

	"github.com/ooni/linkemu/internal/model"
)

// Throttle models a link with limited bandwidth by adding a delay
// proportional to the payload size. It does not set any flag.
type Throttle[T model.Payload] struct {
	speed Bandwidth
}

var _ model.Disturbance[string] = &Throttle[string]{}

// NewThrottle returns a [Throttle] transferring speed bytes per
// millisecond. A non-positive speed becomes [MinBandwidth].
func NewThrottle[T model.Payload](speed Bandwidth) *Throttle[T] {
	return &Throttle[T]{speed: speed.normalize()}
}

// Speed returns the normalized transfer speed.
func (th *Throttle[T]) Speed() Bandwidth {
	return th.speed
}

// TransferDelay returns the milliseconds needed to transfer size bytes,
// rounded down.
func (th *Throttle[T]) TransferDelay(size int) int {
	return int(int64(size) / int64(th.speed))
}

// Apply implements model.Disturbance.
func (th *Throttle[T]) Apply(pkt *model.Packet[T]) {
	if ms := th.TransferDelay(pkt.Len()); ms > 0 {
		pkt.AddDelay(ms)
	}
}

// String implements fmt.Stringer.
func (th *Throttle[T]) String() string {
	return fmt.Sprintf("throttle(%s)", th.speed)
}
