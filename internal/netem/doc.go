// Package netem emulates an unreliable network link.
//
// A [LinkEmulator] owns an ordered chain of impairments implementing
// [model.Disturbance]. Sending a [model.Packet] through the link applies
// each impairment in registration order. When an impairment marks the
// packet as lost, the link stops and reports failure; the remaining
// impairments never run.
//
// This package provides the following impairments:
//
// - [Delay] adds a fixed or uniformly random latency;
//
// - [PacketLoss] drops the packet with a given probability;
//
// - [Duplicate] flags the packet as duplicated with a given probability;
//
// - [Tamper] overwrites a random payload byte with a given probability;
//
// - [Throttle] adds latency proportional to the payload size.
//
// Impairment constructors never fail. Out-of-range settings are clamped
// to the nearest valid value, so a malformed configuration degrades
// gracefully instead of aborting the simulation.
//
// Impairments are immutable after construction. A link is safe for
// concurrent use with distinct packets provided the [model.RandomSource]
// given to the impairments is (see the randx package).
package netem
