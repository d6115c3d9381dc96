package main

import (
	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/ooni/linkemu/internal/linkconfig"
	"github.com/ooni/linkemu/internal/model"
	"github.com/ooni/linkemu/internal/netem"
	"github.com/ooni/linkemu/internal/randx"
	"github.com/ooni/linkemu/internal/report"
	"github.com/pkg/errors"
)

// loadProfile returns the profile selected by the options.
func loadProfile(options *Options) (*linkconfig.Profile, error) {
	if options.Config == "" {
		log.Debug("linkemu: using the demo link profile")
		return linkconfig.Default(), nil
	}
	log.Debugf("linkemu: loading link profile from %s", options.Config)
	return linkconfig.ReadFile(options.Config)
}

// newRandomSource returns the random source selected by the options.
func newRandomSource(options *Options, profile *linkconfig.Profile) model.RandomSource {
	if options.Seed >= 0 {
		return randx.NewSource(uint64(options.Seed))
	}
	return profile.NewRandomSource()
}

// newLink creates the link selected by the options.
func newLink(options *Options) (*netem.LinkEmulator[string], error) {
	profile, err := loadProfile(options)
	if err != nil {
		return nil, err
	}
	link, err := linkconfig.Build[string](profile, newRandomSource(options, profile), log.Log)
	if err != nil {
		return nil, errors.Wrap(err, "linkemu: building link")
	}
	log.Debugf("linkemu: link with %d effects", link.Len())
	return link, nil
}

// newReportStyle returns the report style selected by the options.
func newReportStyle(options *Options) *report.Style {
	if options.NoColor || color.NoColor {
		return report.PlainStyle
	}
	return report.ColorStyle
}
