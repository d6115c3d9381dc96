// Package linkconfig loads link profiles.
//
// A link profile is a JSON document (comments and trailing commas are
// allowed) or a YAML document describing the ordered impairments of a
// link. For example:
//
//	{
//		"version": 1,
//		"seed": 42,
//		"effects": [
//			{"type": "throttle", "speed": 10},
//			{"type": "delay", "min_ms": 100, "max_ms": 300},
//			{"type": "loss", "probability": 0.5},
//		],
//	}
//
// Malformed documents are errors. Out-of-range values are not: they are
// clamped by the impairment constructors.
package linkconfig

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ooni/linkemu/internal/model"
	"github.com/ooni/linkemu/internal/netem"
	"github.com/ooni/linkemu/internal/randx"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Version is the current version of the profile format.
const Version = 1

// Effect types.
const (
	TypeDelay     = "delay"
	TypeLoss      = "loss"
	TypeDuplicate = "duplicate"
	TypeTamper    = "tamper"
	TypeThrottle  = "throttle"
)

var (
	// ErrUnsupportedVersion means the profile has the wrong version number.
	ErrUnsupportedVersion = errors.New("linkconfig: unsupported profile version")

	// ErrUnknownEffect means an effect has an unknown type.
	ErrUnknownEffect = errors.New("linkconfig: unknown effect type")

	// ErrMissingParameter means an effect lacks a mandatory parameter.
	ErrMissingParameter = errors.New("linkconfig: missing effect parameter")
)

// Profile describes a link.
type Profile struct {
	// Version is the MANDATORY profile version.
	Version int `json:"version" yaml:"version"`

	// Seed is the OPTIONAL seed for the random source.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// Effects contains the impairments in application order.
	Effects []Effect `json:"effects" yaml:"effects"`
}

// Effect describes a single impairment.
type Effect struct {
	// Type is the MANDATORY impairment type (e.g., "delay").
	Type string `json:"type" yaml:"type"`

	// DelayMs is the fixed delay of a "delay" effect.
	DelayMs *int `json:"delay_ms,omitempty" yaml:"delay_ms,omitempty"`

	// MinMs and MaxMs are the bounds of a random "delay" effect.
	MinMs *int `json:"min_ms,omitempty" yaml:"min_ms,omitempty"`
	MaxMs *int `json:"max_ms,omitempty" yaml:"max_ms,omitempty"`

	// Probability is used by "loss", "duplicate" and "tamper".
	Probability *float64 `json:"probability,omitempty" yaml:"probability,omitempty"`

	// Speed is the "throttle" speed in bytes per millisecond.
	Speed *int64 `json:"speed,omitempty" yaml:"speed,omitempty"`
}

// Default returns the profile of the demo link.
func Default() *Profile {
	return &Profile{
		Version: Version,
		Effects: []Effect{
			{Type: TypeThrottle, Speed: ptr[int64](10)},
			{Type: TypeDelay, MinMs: ptr(100), MaxMs: ptr(300)},
			{Type: TypeLoss, Probability: ptr(0.5)},
			{Type: TypeTamper, Probability: ptr(0.5)},
			{Type: TypeDuplicate, Probability: ptr(1.4)},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

// Parse parses a profile in human JSON format.
func Parse(data []byte) (*Profile, error) {
	value, err := hujson.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "linkconfig: parsing human JSON")
	}
	value.Standardize()
	decoder := json.NewDecoder(bytes.NewReader(value.Pack()))
	decoder.DisallowUnknownFields()
	var profile Profile
	if err := decoder.Decode(&profile); err != nil {
		return nil, errors.Wrap(err, "linkconfig: decoding profile")
	}
	return validate(&profile)
}

// ParseYAML parses a profile in YAML format.
func ParseYAML(data []byte) (*Profile, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var profile Profile
	if err := decoder.Decode(&profile); err != nil {
		return nil, errors.Wrap(err, "linkconfig: decoding YAML profile")
	}
	return validate(&profile)
}

// ReadFile reads a profile from path. Files ending in .yaml
// or .yml are YAML; anything else is human JSON.
func ReadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "linkconfig: reading profile")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// validate makes sure the profile is well formed.
func validate(profile *Profile) (*Profile, error) {
	if profile.Version != Version {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "expected=%d got=%d", Version, profile.Version)
	}
	for idx, effect := range profile.Effects {
		if err := effect.validate(); err != nil {
			return nil, errors.Wrapf(err, "effect #%d", idx)
		}
	}
	return profile, nil
}

func (e *Effect) validate() error {
	switch e.Type {
	case TypeDelay:
		if e.DelayMs == nil && (e.MinMs == nil || e.MaxMs == nil) {
			return errors.Wrap(ErrMissingParameter, "delay needs delay_ms or min_ms and max_ms")
		}
	case TypeLoss, TypeDuplicate, TypeTamper:
		if e.Probability == nil {
			return errors.Wrapf(ErrMissingParameter, "%s needs probability", e.Type)
		}
	case TypeThrottle:
		if e.Speed == nil {
			return errors.Wrap(ErrMissingParameter, "throttle needs speed")
		}
	default:
		return errors.Wrapf(ErrUnknownEffect, "%q", e.Type)
	}
	return nil
}

// NewRandomSource returns a random source seeded with the profile
// seed, if any, and with the current time otherwise.
func (p *Profile) NewRandomSource() *randx.Source {
	if p.Seed != nil {
		return randx.NewSource(*p.Seed)
	}
	return randx.NewSourceFromTime()
}

// Build creates a link implementing profile. The rng argument is the
// random source shared by the probabilistic impairments.
func Build[T model.Payload](profile *Profile, rng model.RandomSource, logger model.Logger) (*netem.LinkEmulator[T], error) {
	if _, err := validate(profile); err != nil {
		return nil, err
	}
	link := netem.NewLinkEmulator[T](logger)
	for _, effect := range profile.Effects {
		link.Append(newDisturbance[T](&effect, rng))
	}
	return link, nil
}

// newDisturbance creates the impairment described by a validated effect.
func newDisturbance[T model.Payload](effect *Effect, rng model.RandomSource) model.Disturbance[T] {
	switch effect.Type {
	case TypeDelay:
		if effect.DelayMs != nil {
			return netem.NewDelay[T](*effect.DelayMs)
		}
		return netem.NewDelayRange[T](rng, *effect.MinMs, *effect.MaxMs)
	case TypeLoss:
		return netem.NewPacketLoss[T](rng, *effect.Probability)
	case TypeDuplicate:
		return netem.NewDuplicate[T](rng, *effect.Probability)
	case TypeTamper:
		return netem.NewTamper[T](rng, *effect.Probability)
	default:
		return netem.NewThrottle[T](netem.Bandwidth(*effect.Speed))
	}
}
