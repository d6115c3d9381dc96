package model

//
// Packet
//

import (
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"
)

// Payload is the set of data units a [Packet] can carry. The payload
// must have a length and must be addressable byte by byte, which
// is what corruption and throttling operate on.
type Payload interface {
	~string | ~[]byte
}

// frameCounter generates frame IDs. It starts from a random offset
// so IDs look like those of independent links.
var frameCounter = func() *atomic.Int64 {
	v := &atomic.Int64{}
	v.Store(int64(rand.Int32N(1 << 30)))
	return v
}()

// nextFrameID returns a frame ID unique within this process.
func nextFrameID() int {
	return int(frameCounter.Add(1))
}

// Packet is a simulated packet. It carries addressing, a payload, and
// the simulation flags that each [Disturbance] reads and mutates while
// the packet traverses a link.
//
// The simulation flags are never reset by the link. Sending the same
// packet twice accumulates delay and keeps the flags set by the first
// traversal. Callers wanting a fresh state must create a new packet.
//
// A packet is not safe for concurrent use.
type Packet[T Payload] struct {
	id              int
	timestamp       time.Time
	sourceIP        string
	destinationIP   string
	sourcePort      int
	destinationPort int
	payload         T

	lost      bool
	delayMs   int
	corrupted bool
	duplicate bool
}

// NewPacket creates a [Packet] with a fresh frame ID and the
// current time as the creation timestamp.
func NewPacket[T Payload](source, destination string, sourcePort, destinationPort int, data T) *Packet[T] {
	return NewPacketWithFrame(nextFrameID(), time.Now(), source, destination, sourcePort, destinationPort, data)
}

// NewPacketWithFrame is like [NewPacket] but lets the caller choose
// the frame ID and the creation timestamp.
func NewPacketWithFrame[T Payload](
	id int,
	timestamp time.Time,
	source, destination string,
	sourcePort, destinationPort int,
	data T,
) *Packet[T] {
	return &Packet[T]{
		id:              id,
		timestamp:       timestamp,
		sourceIP:        source,
		destinationIP:   destination,
		sourcePort:      sourcePort,
		destinationPort: destinationPort,
		payload:         clonePayload(data),
	}
}

// NewEmptyPacket returns a packet addressed from and to 0.0.0.0 with
// zero ports and an empty payload.
func NewEmptyPacket[T Payload]() *Packet[T] {
	var zero T
	return NewPacket("0.0.0.0", "0.0.0.0", 0, 0, zero)
}

// ID returns the frame ID.
func (p *Packet[T]) ID() int {
	return p.id
}

// Time returns the creation timestamp.
func (p *Packet[T]) Time() time.Time {
	return p.timestamp
}

// SourceIP returns the sender's address.
func (p *Packet[T]) SourceIP() string {
	return p.sourceIP
}

// DestinationIP returns the recipient's address.
func (p *Packet[T]) DestinationIP() string {
	return p.destinationIP
}

// SourcePort returns the sender's port.
func (p *Packet[T]) SourcePort() int {
	return p.sourcePort
}

// DestinationPort returns the recipient's port.
func (p *Packet[T]) DestinationPort() int {
	return p.destinationPort
}

// Data returns a copy of the payload.
func (p *Packet[T]) Data() T {
	return clonePayload(p.payload)
}

// SetData replaces the payload with a copy of data.
func (p *Packet[T]) SetData(data T) {
	p.payload = clonePayload(data)
}

// Len returns the payload size in bytes.
func (p *Packet[T]) Len() int {
	return len(p.payload)
}

// IsLost returns whether the packet has been lost.
func (p *Packet[T]) IsLost() bool {
	return p.lost
}

// MarkAsLost marks the packet as lost.
func (p *Packet[T]) MarkAsLost() {
	p.lost = true
}

// Delay returns the accumulated delay in milliseconds.
func (p *Packet[T]) Delay() int {
	return p.delayMs
}

// AddDelay adds ms milliseconds to the accumulated delay. Non-positive
// values are ignored and the sum saturates at [math.MaxInt], so the
// delay never decreases.
func (p *Packet[T]) AddDelay(ms int) {
	switch {
	case ms <= 0:
		// nothing
	case ms > math.MaxInt-p.delayMs:
		p.delayMs = math.MaxInt
	default:
		p.delayMs += ms
	}
}

// IsCorrupted returns whether the payload has been tampered with.
func (p *Packet[T]) IsCorrupted() bool {
	return p.corrupted
}

// MarkCorrupted marks the packet as corrupted.
func (p *Packet[T]) MarkCorrupted() {
	p.corrupted = true
}

// IsDuplicate returns whether the link duplicated the packet. No
// second packet exists: the flag only tells the presentation layer
// to render a copy.
func (p *Packet[T]) IsDuplicate() bool {
	return p.duplicate
}

// MarkDuplicate marks the packet as duplicated.
func (p *Packet[T]) MarkDuplicate() {
	p.duplicate = true
}

// Equal returns whether two packets carry the same payload. Addressing,
// identity and simulation flags are deliberately not compared: two
// packets are equal when they transport the same data.
func (p *Packet[T]) Equal(other *Packet[T]) bool {
	if p == nil || other == nil {
		return p == other
	}
	return string(p.payload) == string(other.payload)
}

// clonePayload returns a copy of data that does not share memory.
func clonePayload[T Payload](data T) T {
	buf := make([]byte, len(data))
	copy(buf, data)
	return T(buf)
}
