// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every translation key referenced from Go code
// exists in the primary locale, that every other locale carries the same
// keys, and lists keys nobody references.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// dynamicPrefixes are key families built at runtime (e.g. "class." + name);
// every key under them counts as used.
var dynamicPrefixes = []string{"class."}

// usedKeyRe matches the literal message ID of an i18n.T call. Other dotted
// string literals (viper keys, for one) are not translation keys.
var usedKeyRe = regexp.MustCompile(`i18n\.T\(\s*"([^"]+)"`)

func main() {
	os.Exit(run(projectRoot, os.Stdout))
}

// run returns 1 when keys are missing anywhere and 0 otherwise. Orphaned keys
// are reported but do not fail the run.
func run(root string, out io.Writer) int {
	used, err := findUsedKeys(root)
	if err != nil {
		fmt.Fprintf(out, "error finding used keys: %v\n", err)
		return 1
	}

	dir := filepath.Join(root, localesDir)
	primary, err := loadKeysFromLocale(filepath.Join(dir, primaryLocale))
	if err != nil {
		fmt.Fprintf(out, "error loading primary locale %s: %v\n", primaryLocale, err)
		return 1
	}
	fmt.Fprintf(out, "%d keys used in code, %d keys in %s\n", len(used), len(primary), primaryLocale)

	failed := false

	if missing := difference(used, primary); len(missing) > 0 {
		failed = true
		fmt.Fprintf(out, "--- used in code but missing from %s ---\n", primaryLocale)
		for _, k := range missing {
			fmt.Fprintf(out, "  - %s\n", k)
		}
	}

	var orphaned []string
	for _, k := range difference(primary, used) {
		if !hasDynamicPrefix(k) {
			orphaned = append(orphaned, k)
		}
	}
	if len(orphaned) > 0 {
		fmt.Fprintln(out, "--- orphaned (defined but never used) ---")
		for _, k := range orphaned {
			fmt.Fprintf(out, "  - %s\n", k)
		}
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		fmt.Fprintf(out, "error listing locales: %v\n", err)
		return 1
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Fprintf(out, "error loading %s: %v\n", file, err)
			failed = true
			continue
		}
		if missing := difference(primary, keys); len(missing) > 0 {
			failed = true
			fmt.Fprintf(out, "--- missing from %s ---\n", filepath.Base(file))
			for _, k := range missing {
				fmt.Fprintf(out, "  - %s\n", k)
			}
		}
	}

	if failed {
		fmt.Fprintln(out, "translation files are inconsistent")
		return 1
	}
	fmt.Fprintln(out, "all translation files are consistent")
	return 0
}

// findUsedKeys scans non-test .go files outside tools/ for translation keys.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			switch info.Name() {
			case "tools", "_examples", ".git":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range usedKeyRe.FindAllStringSubmatch(string(content), -1) {
			k := m[1]
			// "class." + name style calls are covered by dynamicPrefixes
			if strings.HasSuffix(k, ".") {
				continue
			}
			keys[k] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML joins nested map keys with dots.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func hasDynamicPrefix(k string) bool {
	for _, p := range dynamicPrefixes {
		if strings.HasPrefix(k, p) {
			return true
		}
	}
	return false
}
