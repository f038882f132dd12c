package logcon

import "strings"

// LanguageDefinition maps a spoken language's keyword spellings onto the
// canonical TokenID set, so the same grammar can be authored in English,
// Russian, or any other registered tongue.
type LanguageDefinition struct {
	Name     string
	Keywords map[string]TokenID // lowercase spelling -> token
}

// LanguageRegistry holds every registered LanguageDefinition and performs
// detection by counting, per language, how many words in a sample of
// source text match that language's keyword table (repeats included).
type LanguageRegistry struct {
	languages []*LanguageDefinition
}

// NewLanguageRegistry returns a registry pre-populated with the built-in
// English and Russian keyword tables.
func NewLanguageRegistry() *LanguageRegistry {
	reg := &LanguageRegistry{}
	reg.Register(englishLanguage())
	reg.Register(russianLanguage())
	return reg
}

func (r *LanguageRegistry) Register(def *LanguageDefinition) {
	r.languages = append(r.languages, def)
}

func (r *LanguageRegistry) Languages() []*LanguageDefinition {
	return r.languages
}

// Lookup resolves word (case-insensitively) against a specific language's
// keyword table. ok is false for identifiers that are not keywords in
// that language.
func (d *LanguageDefinition) Lookup(word string) (TokenID, bool) {
	id, ok := d.Keywords[strings.ToLower(word)]
	return id, ok
}

// detectionThreshold is the number of keyword hits (repeats included) after which
// Detect stops scanning further words and commits to a language — most
// scripts settle this within the first few keywords, so voting the whole
// file adds cost without changing the answer.
const detectionThreshold = 3

// Detect scans words (already split on whitespace/punctuation boundaries
// by the caller) and returns the language whose keyword table accumulates
// the most hits, short-circuiting as soon as one language reaches
// detectionThreshold hits. Ties fall back to the first-registered
// language (English, by construction of NewLanguageRegistry).
func (r *LanguageRegistry) Detect(words []string) *LanguageDefinition {
	if len(r.languages) == 0 {
		return nil
	}
	counts := make([]int, len(r.languages))
	for _, w := range words {
		lw := strings.ToLower(w)
		for i, lang := range r.languages {
			if _, ok := lang.Keywords[lw]; ok {
				counts[i]++
				if counts[i] >= detectionThreshold {
					return lang
				}
			}
		}
	}
	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return r.languages[best]
}

func englishLanguage() *LanguageDefinition {
	return &LanguageDefinition{
		Name: "english",
		Keywords: map[string]TokenID{
			"entity": TokenEntity, "on": TokenOn, "var": TokenVar, "let": TokenLet,
			"global": TokenGlobal, "const": TokenConst,
			"func": TokenFunc, "return": TokenReturn, "if": TokenIf, "else": TokenElse,
			"for": TokenFor, "while": TokenWhile, "break": TokenBreak, "continue": TokenContinue,
			"true": TokenTrue, "false": TokenFalse,
			"trigger": TokenTrigger, "emit": TokenEmit, "event": TokenEvent,
		},
	}
}

// russianLanguage provides Cyrillic spellings of the core keyword set.
// The source engine's English table also maps "destroy" onto its
// entity-removal keyword, colliding with the identifier a script would
// otherwise use for a user-defined "destroy" function; that collision is
// deliberately not reproduced here — LogCon has no "destroy" keyword and
// no builtin function of that name; `on destroy` names the lifecycle event
// with a plain identifier.
func russianLanguage() *LanguageDefinition {
	return &LanguageDefinition{
		Name: "russian",
		Keywords: map[string]TokenID{
			"сущность": TokenEntity, "при": TokenOn, "перем": TokenVar, "пусть": TokenLet,
			"глобальный": TokenGlobal, "константа": TokenConst,
			"функция": TokenFunc, "вернуть": TokenReturn, "если": TokenIf, "иначе": TokenElse,
			"для": TokenFor, "пока": TokenWhile, "прервать": TokenBreak, "продолжить": TokenContinue,
			"истина": TokenTrue, "ложь": TokenFalse,
			"вызвать": TokenTrigger, "испустить": TokenEmit, "событие": TokenEvent,
		},
	}
}
