package frlex

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenTester func(string) bool

// Tokenizer splits text into word and punctuation strings.
type Tokenizer interface {
	Tokenize(string) []string
}

// iterTokenizer splits a French sentence into words.
type iterTokenizer struct {
	specialRE      *regexp.Regexp
	sanitizer      *strings.Replacer
	elisions       []string
	clitics        []string
	suffixes       []string
	prefixes       []string
	isUnsplittable TokenTester
}

type TokenizerOptFunc func(*iterTokenizer)

// UsingIsUnsplittable gives a function that tests whether a token is splittable or not.
func UsingIsUnsplittable(x TokenTester) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.isUnsplittable = x
	}
}

// Use the provided special regex for unsplittable tokens.
func UsingSpecialRE(x *regexp.Regexp) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.specialRE = x
	}
}

// Use the provided sanitizer.
func UsingSanitizer(x *strings.Replacer) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.sanitizer = x
	}
}

// Use the provided suffixes.
func UsingSuffixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.suffixes = x
	}
}

// Use the provided prefixes.
func UsingPrefixes(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.prefixes = x
	}
}

// Use the provided elided forms ("l'", "qu'", ...).
func UsingElisions(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.elisions = x
	}
}

// Use the provided hyphenated clitics ("-t-il", "-vous", ...).
func UsingClitics(x []string) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.clitics = x
	}
}

// Constructor for default iterTokenizer
func NewIterTokenizer(opts ...TokenizerOptFunc) *iterTokenizer {
	tok := new(iterTokenizer)

	// Set default parameters
	tok.elisions = elisions
	tok.clitics = clitics
	tok.isUnsplittable = func(_ string) bool { return false }
	tok.prefixes = prefixes
	tok.sanitizer = sanitizer
	tok.specialRE = internalRE
	tok.suffixes = suffixes

	// Apply options if provided
	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	return tok
}

func addToken(s string, toks []string) []string {
	if strings.TrimSpace(s) != "" {
		toks = append(toks, s)
	}
	return toks
}

func (t *iterTokenizer) isSpecial(token string) bool {
	return t.specialRE.MatchString(token) || t.isUnsplittable(token)
}

func (t *iterTokenizer) doSplit(token string) []string {
	tokens := []string{}
	suffs := []string{}

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		if t.isSpecial(token) {
			// Abbreviations and initials stay whole.
			tokens = addToken(token, tokens)
			break
		}
		last = utf8.RuneCountInString(token)
		lower := strings.ToLower(token)
		if p := hasAnyPrefix(token, t.prefixes); p != "" {
			// Remove prefixes -- e.g., «bonjour -> [«, bonjour].
			tokens = addToken(p, tokens)
			token = token[len(p):]
		} else if e := hasAnyPrefix(lower, t.elisions); e != "" && len(token) > len(e) {
			// Split elisions -- e.g., l'homme -> [l', homme].
			tokens = addToken(token[:len(e)], tokens)
			token = token[len(e):]
		} else if s := hasAnySuffix(token, t.suffixes); s != "" {
			// Remove suffixes -- e.g., pomme. -> [pomme, .].
			suffs = append([]string{s}, suffs...)
			token = token[:len(token)-len(s)]
		} else if idx := hasAnyIndex(lower, t.clitics); idx > 0 {
			// Split inverted subjects -- e.g., mange-t-il -> [mange, -t-il].
			tokens = addToken(token[:idx], tokens)
			suffs = append([]string{token[idx:]}, suffs...)
			break
		} else {
			tokens = addToken(token, tokens)
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits a sentence into a slice of words.
func (t *iterTokenizer) Tokenize(text string) []string {
	var tokens []string

	clean := t.sanitizer.Replace(text)
	cache := map[string][]string{}
	for _, span := range strings.FieldsFunc(clean, unicode.IsSpace) {
		if toks, found := cache[span]; found {
			tokens = append(tokens, toks...)
			continue
		}
		toks := t.doSplit(span)
		cache[span] = toks
		tokens = append(tokens, toks...)
	}

	return tokens
}

// hasAnyPrefix returns the first prefix of s found in prefixes, or "".
func hasAnyPrefix(s string, prefixes []string) string {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return p
		}
	}
	return ""
}

// hasAnySuffix returns the first suffix of s found in suffixes, or "".
func hasAnySuffix(s string, suffixes []string) string {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return suf
		}
	}
	return ""
}

// hasAnyIndex returns the smallest index at which any of subs occurs in s,
// or -1.
func hasAnyIndex(s string, subs []string) int {
	best := -1
	for _, sub := range subs {
		if idx := strings.Index(s, sub); idx >= 0 && (best < 0 || idx < best) {
			best = idx
		}
	}
	return best
}

var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^(?:M|Mme|Mlle|MM|Dr|Pr|St|Ste|etc|cf|p|av|bd)\.$`)
var sanitizer = strings.NewReplacer(
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2018", "'",
	"\u2019", "'",
	"\u00a0", " ",
	"\u202f", " ",
	"&rsquo;", "'")
var elisions = []string{
	"jusqu'", "lorsqu'", "puisqu'", "quoiqu'", "qu'",
	"l'", "d'", "j'", "n'", "s'", "c'", "m'", "t'",
}
var clitics = []string{
	"-t-il", "-t-elle", "-t-on", "-t-ils", "-t-elles",
	"-je", "-tu", "-il", "-elle", "-on", "-nous", "-vous", "-ils", "-elles",
	"-moi", "-toi", "-lui", "-leur",
}
var suffixes = []string{"...", "\u2026", ",", ")", `"`, "»", "]", "!", ";", ".", "?", ":", "'"}
var prefixes = []string{"«", "(", `"`, "[", "'"}
