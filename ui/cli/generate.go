// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/keysmith/core/keygen"
	"github.com/toeirei/keysmith/core/session"
	"github.com/toeirei/keysmith/internal/i18n"
	"github.com/toeirei/keysmith/internal/logging"
	"github.com/toeirei/keysmith/uiadapters"
)

// ErrNonPositiveCount rejects --count below one.
var ErrNonPositiveCount = errors.New("--count must be at least 1")

type generateOptions struct {
	lower, upper, special, digits, mix bool

	classes []string
	length  int
	parts   int
	count   int
	seed    uint64
	secure  bool
	copy    bool
}

var classFlags = []string{"lower", "upper", "special", "digits", "mix", "classes"}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "Generate one or more keys",
		Long: `Generates keys made of --parts hyphen-separated segments of --length
characters each. Character types default to the configured set; any of the
type flags replaces that set. --mix draws from all four types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.lower, "lower", false, "Include small letters (a-z)")
	f.BoolVar(&opts.upper, "upper", false, "Include capital letters (A-Z)")
	f.BoolVar(&opts.special, "special", false, "Include special characters (! to /)")
	f.BoolVar(&opts.digits, "digits", false, "Include digits (0-9)")
	f.BoolVar(&opts.mix, "mix", false, "Use all character types")
	f.StringSliceVar(&opts.classes, "classes", nil, "Comma-separated character types (lower,upper,special,digit,mix)")
	f.IntVarP(&opts.length, "length", "l", 4, "Characters per segment")
	f.IntVarP(&opts.parts, "parts", "p", 4, "Number of segments")
	f.IntVarP(&opts.count, "count", "n", 1, "Number of keys to generate")
	f.Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible output")
	f.BoolVar(&opts.secure, "secure", false, "Draw from the operating system's entropy source")
	f.BoolVarP(&opts.copy, "copy", "c", false, "Copy the last key to the clipboard")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	if opts.count < 1 {
		return &uiadapters.UserError{Msg: i18n.T("generate.warn_count"), Err: ErrNonPositiveCount}
	}

	form, err := buildForm(cmd, opts)
	if err != nil {
		return uiadapters.Warning(err)
	}

	srcOpts := uiadapters.SourceOptions{Secure: opts.secure}
	if cmd.Flags().Changed("seed") {
		srcOpts.Seed = &opts.seed
	}
	s := uiadapters.NewSession(appConfig, srcOpts)

	out := cmd.OutOrStdout()
	req := form.Request()
	for i := 0; i < opts.count; i++ {
		key, err := s.Generate(req)
		if err != nil {
			return uiadapters.Warning(err)
		}
		fmt.Fprintln(out, key)
	}
	logging.Debugf("generated %d key(s), %d distinct in history", opts.count, s.History().Len())

	if opts.copy {
		if err := clip.WriteAll(s.Output()); err != nil {
			return &uiadapters.UserError{Msg: i18n.T("copy.failed", err), Err: err}
		}
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.copied"))
	}
	return nil
}

// buildForm starts from the configured defaults and applies whichever flags
// the user set.
func buildForm(cmd *cobra.Command, opts *generateOptions) (session.Form, error) {
	form, err := uiadapters.FormFromConfig(appConfig.Generate)
	if err != nil {
		return form, err
	}

	if anyChanged(cmd, classFlags...) {
		selected := session.NewForm(form.SegmentLength, form.SegmentCount)
		selected.Lower = opts.lower
		selected.Upper = opts.upper
		selected.Special = opts.special
		selected.Digits = opts.digits
		selected.Mix = opts.mix
		for _, name := range opts.classes {
			name = strings.TrimSpace(name)
			if strings.EqualFold(name, keygen.MixName) {
				selected.Mix = true
				continue
			}
			if name == "" {
				continue
			}
			c, err := keygen.ParseClass(name)
			if err != nil {
				return form, err
			}
			selected.Set(c, true)
		}
		form = selected
	}

	if cmd.Flags().Changed("length") {
		form.SegmentLength = opts.length
	}
	if cmd.Flags().Changed("parts") {
		form.SegmentCount = opts.parts
	}
	return form, nil
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}
