// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/toeirei/keysmith/core/keygen"
	"github.com/toeirei/keysmith/core/session"
	"github.com/toeirei/keysmith/uiadapters"
)

// isolateConfig keeps tests away from the real user config and cwd.
func isolateConfig(t *testing.T) {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(t.TempDir())
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keysmith.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestGenerate_SeededDigitsAreReproducible(t *testing.T) {
	isolateConfig(t)

	first, _, err := execute(t, "generate", "--digits", "-l", "4", "-p", "3", "--seed", "42")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	second, _, err := execute(t, "generate", "--digits", "-l", "4", "-p", "3", "--seed", "42")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical output for identical seeds: %q vs %q", first, second)
	}
	if !regexp.MustCompile(`^\d{4}-\d{4}-\d{4}\n$`).MatchString(first) {
		t.Fatalf("unexpected output %q", first)
	}
}

func TestGenerate_CountPrintsOneKeyPerLine(t *testing.T) {
	isolateConfig(t)

	out, _, err := execute(t, "generate", "--classes", "upper", "-l", "5", "-p", "2", "-n", "3", "--seed", "1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 keys, got %d: %q", len(lines), out)
	}
	for _, l := range lines {
		if !regexp.MustCompile(`^[A-Z]{5}-[A-Z]{5}$`).MatchString(l) {
			t.Fatalf("unexpected key %q", l)
		}
	}
}

func TestGenerate_UsesConfiguredDefaults(t *testing.T) {
	isolateConfig(t)
	cfg := writeConfig(t, "generate:\n  classes: [digit]\n  length: 3\n  parts: 2\n")

	out, _, err := execute(t, "--config", cfg, "generate", "--seed", "3")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !regexp.MustCompile(`^\d{3}-\d{3}\n$`).MatchString(out) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGenerate_InvalidRequests(t *testing.T) {
	isolateConfig(t)

	cases := []struct {
		args     []string
		msg      string
		sentinel error
	}{
		{[]string{"generate", "--classes", ""}, "Please select at least one character type.", keygen.ErrNoCharacterClass},
		{[]string{"generate", "--mix", "-l", "0"}, "Please specify the character length.", keygen.ErrNonPositiveLength},
		{[]string{"generate", "--mix", "-p", "0"}, "Please specify the number of parts.", keygen.ErrNonPositiveSegmentCount},
		{[]string{"generate", "--classes", "lower,emoji"}, "Unknown character type", keygen.ErrUnknownClass},
		{[]string{"generate", "--mix", "-n", "0"}, "Please specify at least one key to generate.", ErrNonPositiveCount},
	}

	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			if err == nil {
				t.Fatalf("expected error, got output %q", out)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("expected message %q, got %q", tc.msg, err.Error())
			}
			if !errors.Is(err, tc.sentinel) {
				t.Fatalf("expected %v in error chain, got %v", tc.sentinel, err)
			}
			if out != "" {
				t.Fatalf("no key should be printed on error, got %q", out)
			}
		})
	}
}

func TestGenerate_GermanWarnings(t *testing.T) {
	isolateConfig(t)

	_, _, err := execute(t, "--language", "de", "generate", "--mix", "-p", "0")
	if err == nil || err.Error() != "Bitte die Anzahl der Teile angeben." {
		t.Fatalf("expected German warning, got %v", err)
	}

	_, _, err = execute(t, "--language", "de", "generate", "--mix", "-n", "0")
	if err == nil || err.Error() != "Bitte mindestens einen zu erzeugenden Schlüssel angeben." {
		t.Fatalf("expected German count warning, got %v", err)
	}
	if !errors.Is(err, ErrNonPositiveCount) {
		t.Fatalf("expected ErrNonPositiveCount in chain, got %v", err)
	}
}

func TestGenerate_CopyWritesLastKey(t *testing.T) {
	isolateConfig(t)
	prev := clip
	mem := &uiadapters.MemoryClipboard{}
	clip = mem
	defer func() { clip = prev }()

	out, errOut, err := execute(t, "generate", "--mix", "-n", "2", "--copy", "--seed", "9")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if mem.Text != lines[len(lines)-1] || mem.Writes != 1 {
		t.Fatalf("expected last key %q on clipboard, got %q (%d writes)", lines[len(lines)-1], mem.Text, mem.Writes)
	}
	if !strings.Contains(errOut, "copied") {
		t.Fatalf("expected copy confirmation on stderr, got %q", errOut)
	}
}

func TestClasses_ListsRanges(t *testing.T) {
	isolateConfig(t)

	out, _, err := execute(t, "classes")
	if err != nil {
		t.Fatalf("classes failed: %v", err)
	}
	for _, want := range []string{"lower", "97-122", "upper", "65-90", "special", "33-47", "digit", "48-57", "mix"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestRoot_NonInteractivePrintsOneKey(t *testing.T) {
	isolateConfig(t)
	prev := isInteractive
	isInteractive = func() bool { return false }
	defer func() { isInteractive = prev }()

	out, _, err := execute(t)
	if err != nil {
		t.Fatalf("root failed: %v", err)
	}
	// defaults: lower, upper, digit; 4 segments of 4
	if !regexp.MustCompile(`^[a-zA-Z0-9]{4}(-[a-zA-Z0-9]{4}){3}\n$`).MatchString(out) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRoot_InteractiveStartsTUI(t *testing.T) {
	isolateConfig(t)
	prevInteractive, prevRun := isInteractive, runTUI
	defer func() { isInteractive, runTUI = prevInteractive, prevRun }()
	isInteractive = func() bool { return true }

	var gotForm session.Form
	var gotMax int
	runTUI = func(s *session.Session, form session.Form, _ uiadapters.Clipboard) error {
		gotForm = form
		gotMax = s.History().Max()
		return nil
	}

	if _, _, err := execute(t, "--history.max", "7"); err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if gotMax != 7 {
		t.Fatalf("expected history bound from flag, got %d", gotMax)
	}
	if !gotForm.Lower || !gotForm.Upper || !gotForm.Digits || gotForm.Special {
		t.Fatalf("expected default class toggles, got %+v", gotForm)
	}
}

func TestSetup_WritesDefaultConfigOnFirstRun(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(t.TempDir())

	if _, _, err := execute(t, "classes"); err != nil {
		t.Fatalf("classes failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmp, "keysmith", "keysmith.yaml")); err != nil {
		t.Fatalf("expected default config to be written: %v", err)
	}
}

func TestVersionCmd(t *testing.T) {
	isolateConfig(t)
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "version: ") || !strings.Contains(out, "commit: ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestResolveBuildVersion_WithBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2026-01-01T00:00:00Z"},
		},
	}

	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" || c != "deadbeef" || d != "2026-01-01T00:00:00Z" {
		t.Fatalf("unexpected build version: %s %s %s", v, c, d)
	}
}

func TestResolveBuildVersion_DependencyFallback(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: modulePath, Version: "(devel)"},
		Deps: []*debug.Module{{Path: modulePath, Version: "v0.3.1-0.20260110101010-abcdef123456"}},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "v0.3.1-0.20260110101010-abcdef123456" {
		t.Fatalf("expected dependency version fallback got %s", v)
	}
}

func TestResolveBuildVersion_GitCommitFallback(t *testing.T) {
	orig := gitCommit
	defer func() { gitCommit = orig }()
	gitCommit = "cafebabe"

	v, _, _ := resolveBuildVersion(&debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "(devel)"}})
	if v != "cafebabe" {
		t.Fatalf("expected gitCommit fallback got %s", v)
	}
}

func TestGetConfigPathFromCli(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")

	p, err := getConfigPathFromCli(cmd)
	if err != nil || p != nil {
		t.Fatalf("expected nil path when flag not set, got %v %v", p, err)
	}

	file := writeConfig(t, "language: en\n")
	if err := cmd.Flags().Set("config", file); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	p, err = getConfigPathFromCli(cmd)
	if err != nil || p == nil || *p != file {
		t.Fatalf("expected path %s, got %v %v", file, p, err)
	}

	if err := cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if _, err := getConfigPathFromCli(cmd); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
