// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package uiadapters

import (
	"strings"

	"github.com/toeirei/keysmith/core/history"
	"github.com/toeirei/keysmith/core/keygen"
	"github.com/toeirei/keysmith/core/session"
	"github.com/toeirei/keysmith/internal/config"
	"github.com/toeirei/keysmith/internal/logging"
)

// SourceOptions picks the random source. Seed wins over Secure.
type SourceOptions struct {
	Seed   *uint64
	Secure bool
}

// NewSource returns the source described by opts.
func NewSource(opts SourceOptions) keygen.Source {
	switch {
	case opts.Seed != nil:
		logging.Debugf("using seeded random source (seed %d)", *opts.Seed)
		return keygen.NewSeededSource(*opts.Seed)
	case opts.Secure:
		logging.Debugf("using crypto random source")
		return keygen.NewCryptoSource()
	default:
		return keygen.NewSource()
	}
}

// NewSession builds a session whose history is bounded by cfg.History.Max.
func NewSession(cfg config.Config, opts SourceOptions) *session.Session {
	if !opts.Secure {
		opts.Secure = cfg.Generate.Secure
	}
	return session.New(keygen.NewGenerator(NewSource(opts)), history.New(cfg.History.Max))
}

// FormFromConfig seeds a form with the configured defaults. Listing "mix"
// turns on the Mix toggle instead of the four individual ones.
func FormFromConfig(gc config.GenerateConfig) (session.Form, error) {
	mix := false
	var names []string
	for _, n := range gc.Classes {
		if strings.EqualFold(strings.TrimSpace(n), keygen.MixName) {
			mix = true
			continue
		}
		names = append(names, n)
	}

	classes, err := keygen.ParseClasses(names)
	if err != nil {
		return session.Form{}, err
	}
	form := session.FormFromClasses(classes, gc.Length, gc.Parts)
	form.Mix = mix
	return form, nil
}
