package library

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultCode is the sentinel code of the default language: subtitle files
// without a language infix ("ep1.vtt" rather than "ep1.eng.vtt").
const DefaultCode = ""

// DefaultLabel is the display label of the default language.
const DefaultLabel = "Default"

// Language is one row of the language table.
type Language struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// IsDefault reports whether l is the sentinel default language.
func (l Language) IsDefault() bool {
	return l.Code == DefaultCode
}

// Filename returns the subtitle file name for a media stem in this language:
// "stem.ext" for the default language, "stem.code.ext" otherwise.
func (l Language) Filename(stem, ext string) string {
	if l.IsDefault() {
		return stem + "." + ext
	}
	return stem + "." + l.Code + "." + ext
}

// LanguageTable is the ordered list of languages subtitles are searched for.
// The sentinel default language is always the first entry.
type LanguageTable []Language

// DefaultLanguages returns the built-in table.
func DefaultLanguages() LanguageTable {
	return LanguageTable{
		{Code: DefaultCode, Label: DefaultLabel},
		{Code: "eng", Label: "English"},
		{Code: "fre", Label: "French"},
		{Code: "jpn", Label: "Japanese"},
	}
}

// Validate checks the table invariants: non-empty, the default sentinel first and
// only once, unique codes, and codes usable as a file name infix.
func (t LanguageTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("language table is empty")
	}
	if !t[0].IsDefault() {
		return fmt.Errorf("language table must start with the default language, got %q", t[0].Code)
	}

	seen := make(map[string]bool, len(t))
	for i, lang := range t {
		if i > 0 && lang.IsDefault() {
			return fmt.Errorf("default language listed more than once (position %d)", i)
		}
		if seen[lang.Code] {
			return fmt.Errorf("duplicate language code %q", lang.Code)
		}
		seen[lang.Code] = true
		if strings.ContainsAny(lang.Code, `./\ `) {
			return fmt.Errorf("invalid language code %q", lang.Code)
		}
		if lang.Label == "" {
			return fmt.Errorf("language %q has no label", lang.Code)
		}
	}
	return nil
}

// Codes returns the language codes in table order.
func (t LanguageTable) Codes() []string {
	codes := make([]string, len(t))
	for i, lang := range t {
		codes[i] = lang.Code
	}
	return codes
}

// ParseLanguages builds a table from a comma separated list of "code" or
// "code=Label" items, e.g. "eng,fre=Français,jpn". The default language is
// prepended. Missing labels are derived from the code's English display name.
func ParseLanguages(list string) (LanguageTable, error) {
	table := LanguageTable{{Code: DefaultCode, Label: DefaultLabel}}
	for _, item := range strings.Split(list, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		code, label, _ := strings.Cut(item, "=")
		code = strings.TrimSpace(code)
		label = strings.TrimSpace(label)
		if code == "" {
			return nil, fmt.Errorf("language item %q has no code", item)
		}
		if label == "" {
			label = LabelFor(code)
		}
		table = append(table, Language{Code: code, Label: label})
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// LabelFor returns the English display name of a BCP 47 or ISO 639 code
// ("eng" -> "English"), or the code itself when it is not recognized.
func LabelFor(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
