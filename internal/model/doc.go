// Package model contains the shared interfaces and data structures.
//
// This package contains the data types every other package needs
// to agree upon: the simulated [Packet], the [Disturbance] contract
// implemented by network impairments, the [RandomSource] used by
// probabilistic impairments, and the [Logger].
//
// In general, this package should not contain logic, unless this
// logic is strictly related to data structures.
//
// Files:
//
// - disturbance.go: the impairment contract and the random source;
//
// - logger.go: an apex/log compatible logger;
//
// - packet.go: the packet and its simulation flags.
package model
