package holidays

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is always the last entry of a language chain.
const DefaultLanguage = "en"

// normalizeLanguage canonicalizes a language code ("DE_at" -> "de-AT").
// Codes x/text cannot parse are lowercased and kept as given.
func normalizeLanguage(code string) string {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	return tag.String()
}

// languageParents returns the parent tags of code from closest to root,
// without "und" ("de-CH-1996" -> "de-CH", "de").
func languageParents(code string) []string {
	tag, err := language.Parse(code)
	if err != nil {
		return nil
	}
	var parents []string
	for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
		value := parent.String()
		if value == "" || value == "und" || value == code {
			break
		}
		parents = append(parents, value)
	}
	return parents
}

// languageChain builds the ordered fallback chain: requested, then configured,
// then DefaultLanguage. Each code is followed by its parents and duplicates
// keep their first position.
func languageChain(requested string, configured []string) []string {
	seen := make(map[string]struct{}, len(configured)+2)
	chain := make([]string, 0, len(configured)+2)

	add := func(code string) {
		if code == "" {
			return
		}
		if _, ok := seen[code]; ok {
			return
		}
		seen[code] = struct{}{}
		chain = append(chain, code)
	}

	candidates := append([]string{requested}, configured...)
	candidates = append(candidates, DefaultLanguage)
	for _, c := range candidates {
		code := normalizeLanguage(c)
		add(code)
		for _, p := range languageParents(code) {
			add(p)
		}
	}
	return chain
}

// translateName picks the first name in chain, falling back to fallback when
// no language has one.
func translateName(names map[string]string, chain []string, fallback string) string {
	for _, lang := range chain {
		if name, ok := names[lang]; ok {
			return name
		}
	}
	return fallback
}

// substituteSuffix returns " (phrase)" for the first chain language with a
// substitute-day phrase, or "" when none has one.
func substituteSuffix(phrases map[string]string, chain []string) string {
	for _, lang := range chain {
		if phrase, ok := phrases[lang]; ok && phrase != "" {
			return " (" + phrase + ")"
		}
	}
	return ""
}
