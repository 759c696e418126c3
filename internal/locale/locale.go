// Package locale provides the localized phrase tables used when composing
// spoken responses. Tables ship embedded in the binary; unknown languages
// fall back to English.
package locale

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales.yaml
var rawLocales []byte

const fallbackLanguage = "en"

// Table holds per-language phrase templates keyed by phrase name.
type Table struct {
	phrases map[string]map[string]string
}

// Load parses the embedded locale tables.
func Load() (*Table, error) {
	phrases := make(map[string]map[string]string)
	if err := yaml.Unmarshal(rawLocales, &phrases); err != nil {
		return nil, fmt.Errorf("parse locale tables: %w", err)
	}
	if _, ok := phrases[fallbackLanguage]; !ok {
		return nil, fmt.Errorf("locale tables missing fallback language %q", fallbackLanguage)
	}
	return &Table{phrases: phrases}, nil
}

// Supports reports whether a language has its own table.
func (t *Table) Supports(lang string) bool {
	_, ok := t.phrases[lang]
	return ok
}

// String resolves a phrase template for a language and interpolates params
// into its {name} placeholders. Missing languages fall back to English;
// a missing key returns the key itself so a broken lookup stays audible
// instead of silent.
func (t *Table) String(lang, key string, params map[string]string) string {
	table, ok := t.phrases[lang]
	if !ok {
		table = t.phrases[fallbackLanguage]
	}
	tmpl, ok := table[key]
	if !ok {
		tmpl, ok = t.phrases[fallbackLanguage][key]
		if !ok {
			return key
		}
	}
	for name, value := range params {
		tmpl = strings.ReplaceAll(tmpl, "{"+name+"}", value)
	}
	return tmpl
}
