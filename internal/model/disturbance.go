package model

//
// Disturbance
//

// Disturbance is a network impairment applied to a [Packet] while it
// traverses a link (e.g., delay, loss, corruption).
//
// Apply mutates the packet in place. It MUST NOT replace the packet
// identity and MUST NOT panic for any configuration accepted by the
// constructor, provided that any [RandomSource] it was given is usable
// (a typed nil pointer is not). Calling Apply several times on the
// same packet is allowed; each call repeats the documented mutation.
type Disturbance[T Payload] interface {
	Apply(pkt *Packet[T])
}

// RandomSource is the source of randomness used by probabilistic
// disturbances. Implementations shared by several disturbances MUST
// be safe for concurrent use.
type RandomSource interface {
	// Float64 returns a number in [0, 1).
	Float64() float64

	// IntN returns a number in [0, n). It panics if n <= 0.
	IntN(n int) int
}
