// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, configuration loading and the version
// command. Running without a subcommand starts the TUI on a terminal and
// prints a single key otherwise.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/keysmith/buildvars"
	"github.com/toeirei/keysmith/internal/config"
	"github.com/toeirei/keysmith/internal/i18n"
	"github.com/toeirei/keysmith/internal/logging"
	"github.com/toeirei/keysmith/ui/tui"
	"github.com/toeirei/keysmith/uiadapters"
	"golang.org/x/term"
)

const modulePath = "github.com/toeirei/keysmith"

var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var verbose bool

var appConfig config.Config

// clip is the clipboard used by --copy and the TUI. Tests replace it.
var clip uiadapters.Clipboard = uiadapters.SystemClipboard{}

// isInteractive reports whether both stdin and stdout are terminals.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// runTUI is swapped out in tests.
var runTUI = tui.Run

func setupDefaultServices(cmd *cobra.Command, _ []string) error {
	logging.SetDebug(verbose)

	explicitPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), explicitPath)
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		// First run, or the file was removed. The app runs on defaults either
		// way; persist them so the user has something to edit.
		if explicitPath == nil {
			if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
				logging.Warnf("could not write default config file: %v", writeErr)
			} else {
				logging.Debugf("wrote default config to user config path")
			}
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if appConfig.Language == "" {
		appConfig.Language = "en"
	}
	if appConfig.History.Max < 1 {
		appConfig.History.Max = config.Defaults()["history.max"].(int)
	}

	i18n.Init(appConfig.Language)
	return nil
}

// Execute runs the CLI entrypoint. The main package calls this function and
// handles process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if cmd.Flags().Lookup("config") == nil || !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates the root command with all subcommands. Each call
// returns fresh command and flag instances, so tests can build isolated
// trees.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "keysmith",
		Short:             i18n.T("app.short"),
		Long:              i18n.T("app.long"),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
		RunE:              runRoot,
		Version:           compositeVersion(),
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().Int("history.max", 20, "Number of keys kept in the session history")

	cmd.AddCommand(newGenerateCmd(), newClassesCmd(), newVersionCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, _ []string) error {
	form, err := uiadapters.FormFromConfig(appConfig.Generate)
	if err != nil {
		return uiadapters.Warning(err)
	}
	s := uiadapters.NewSession(appConfig, uiadapters.SourceOptions{})

	if !isInteractive() {
		key, err := s.Generate(form.Request())
		if err != nil {
			return uiadapters.Warning(err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
		return err
	}

	// the TUI owns the terminal; stray log lines would corrupt it
	logging.SetOutput(io.Discard)
	defer logging.SetOutput(os.Stderr)
	return runTUI(s, form, clip)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, _ []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	if c != "" && c != "dev" {
		v += " (" + c + ")"
	}
	if d != "" {
		v += " built: " + d
	}
	return v
}

// resolveBuildVersion computes the best-available version, commit and build
// date. If info is nil it reads build info from the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
