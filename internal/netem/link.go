package netem

//
// Link emulation
//

import (
	"fmt"

	"github.com/ooni/linkemu/internal/model"
	"github.com/ooni/linkemu/internal/runtimex"
)

// LinkEmulator models a network link as an ordered chain of impairments.
// The zero value is invalid; please, use [NewLinkEmulator] to construct.
//
// The link does not keep any per-packet state. It also does not reset
// the packets it sends: sending the same packet twice applies every
// impairment again on top of the flags and delay left by the first send.
type LinkEmulator[T model.Payload] struct {
	// effects contains the impairments in registration order.
	effects []model.Disturbance[T]

	// logger is the logger to use.
	logger model.Logger
}

// NewLinkEmulator creates an empty [LinkEmulator]. A nil logger
// is replaced with [model.DiscardLogger].
func NewLinkEmulator[T model.Payload](logger model.Logger) *LinkEmulator[T] {
	return &LinkEmulator[T]{
		effects: []model.Disturbance[T]{},
		logger:  model.ValidLoggerOrDefault(logger),
	}
}

// Append registers an impairment after the ones already registered and
// returns the link itself to allow chaining. The same impairment may be
// registered more than once and on more than one link.
func (l *LinkEmulator[T]) Append(effect model.Disturbance[T]) *LinkEmulator[T] {
	runtimex.PanicIfNil(effect, "netem: LinkEmulator.Append: nil effect")
	l.effects = append(l.effects, effect)
	return l
}

// Len returns the number of registered impairments.
func (l *LinkEmulator[T]) Len() int {
	return len(l.effects)
}

// Send applies every registered impairment to pkt in registration order.
// It returns false as soon as an impairment marks the packet as lost,
// without running the remaining ones, and true otherwise.
func (l *LinkEmulator[T]) Send(pkt *model.Packet[T]) bool {
	for idx, effect := range l.effects {
		effect.Apply(pkt)
		l.logger.Debugf("netem: frame %d: #%d %s: delay=%dms", pkt.ID(), idx, effectName(effect), pkt.Delay())
		if pkt.IsLost() {
			l.logger.Debugf("netem: frame %d: lost after %s", pkt.ID(), effectName(effect))
			return false
		}
	}
	l.logger.Debugf("netem: frame %d: delivered", pkt.ID())
	return true
}

// effectName returns a name suitable for logging.
func effectName(effect any) string {
	if s, ok := effect.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", effect)
}
