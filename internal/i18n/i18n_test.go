// Copyright (c) 2026 Keysmith Team
// Keysmith - segmented key generator
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/toeirei/keysmith/internal/logging"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present, got %v", k, av)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("generate.warn_no_class"); got != "Please select at least one character type." {
		t.Fatalf("unexpected translation: %q", got)
	}

	got := T("tui.history_position", 3, 20)
	if got != "History 3/20" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	defer Init("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("copy.success"); got != "Erfolgreich kopiert" {
		t.Fatalf("expected German translation, got %q", got)
	}
}

func TestT_UnknownIDFallsBackToID(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected message id fallback, got %q", got)
	}
}

func TestT_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	Init("xx")
	defer Init("en")
	if got := T("help.quit"); got != "quit" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestLoadBundle_LogsBrokenLocale(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	defer logging.SetOutput(os.Stderr)

	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("tui.title: \"Keysmith\"\n")},
		"locales/de.yaml": {Data: []byte("tui.title: [unclosed\n")},
	}
	b := loadBundle(fsys)

	if !strings.Contains(buf.String(), "de.yaml") {
		t.Fatalf("expected a warning naming the broken locale, got %q", buf.String())
	}
	tags := b.LanguageTags()
	if len(tags) != 1 || tags[0].String() != "en" {
		t.Fatalf("expected only the valid locale to load, got %v", tags)
	}
}
