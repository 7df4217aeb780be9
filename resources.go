package frlex

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// Resources holds the language tables the analyzers consult. A Resources is
// built once, handed to the analyzers at construction and never modified
// afterwards, so analyzers built from different tables can run side by side.
type Resources struct {
	stopWords   map[string]struct{}
	contentPOS  map[string]struct{}
	posBonus    map[string]float64
	numberWords map[string]struct{}

	indicativeTenses  map[string]string
	subjunctiveTenses map[string]string
}

// FrenchResources returns the default French tables.
func FrenchResources() *Resources {
	return &Resources{
		stopWords:   toSet(frenchStopWords),
		contentPOS:  toSet([]string{POSNoun, POSAdj, POSVerb, POSAdv, POSPropn}),
		posBonus:    map[string]float64{POSPropn: 1.5, POSNoun: 1.3, POSAdj: 1.1, POSVerb: 1.0},
		numberWords: toSet(append(append([]string{}, frenchCardinals...), frenchOrdinals...)),
		indicativeTenses: map[string]string{
			"Pres": "Present",
			"Imp":  "Imperfect",
			"Past": "SimplePast",
			"Fut":  "Future",
		},
		subjunctiveTenses: map[string]string{
			"Pres": "Present",
			"Imp":  "Imperfect",
		},
	}
}

// WithStopWords returns a copy of r whose stopword table also contains
// words.
func (r *Resources) WithStopWords(words ...string) *Resources {
	out := r.clone()
	for _, w := range words {
		out.stopWords[foldLemma(w)] = struct{}{}
	}
	return out
}

// WithExtendedStopwords returns a copy of r whose stopword table is extended
// with every candidate word the stopwords library filters for French.
func (r *Resources) WithExtendedStopwords() *Resources {
	return r.WithStopWords(libraryStopWords("fr")...)
}

// IsStopWord reports whether the lower-cased lemma is a stopword.
func (r *Resources) IsStopWord(lemma string) bool {
	_, ok := r.stopWords[foldLemma(lemma)]
	return ok
}

// StopWordCount returns the size of the stopword table.
func (r *Resources) StopWordCount() int {
	return len(r.stopWords)
}

// IsContentPOS reports whether pos is one of the content-word categories.
func (r *Resources) IsContentPOS(pos string) bool {
	_, ok := r.contentPOS[pos]
	return ok
}

// POSBonus returns the importance multiplier for pos (1.0 when unlisted).
func (r *Resources) POSBonus(pos string) float64 {
	if b, ok := r.posBonus[pos]; ok {
		return b
	}
	return 1.0
}

func (r *Resources) isNumberWord(lower string) bool {
	_, ok := r.numberWords[lower]
	return ok
}

func (r *Resources) clone() *Resources {
	out := *r
	out.stopWords = make(map[string]struct{}, len(r.stopWords))
	for w := range r.stopWords {
		out.stopWords[w] = struct{}{}
	}
	return &out
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// libraryStopWords probes the stopwords library with a list of candidates,
// since the library only exposes a cleaning function and not its tables.
func libraryStopWords(langCode string) []string {
	var found []string
	for _, word := range stopWordCandidates {
		cleaned := strings.TrimSpace(stopwords.CleanString(word, langCode, false))
		if cleaned == "" || cleaned != word {
			found = append(found, word)
		}
	}
	return found
}

var frenchStopWords = []string{
	"le", "la", "les", "de", "du", "des", "un", "une", "à", "au", "aux",
	"être", "avoir", "et", "en", "que", "pour", "dans", "ce", "il", "sur",
	"avec", "ne", "se", "pas", "tout", "plus", "par", "grand", "comme",
	"mais", "cette", "ces", "son", "sa", "ses", "leur", "leurs", "mon",
	"ma", "mes", "ton", "ta", "tes", "notre", "nos", "votre", "vos", "je",
	"tu", "nous", "vous", "ils", "elles", "qui", "quoi", "où", "quand",
	"comment", "pourquoi", "dont", "si", "car", "donc", "or", "ni", "ou",
	"aussi", "très", "bien", "encore", "déjà", "toujours", "jamais",
	"souvent", "parfois", "puis", "alors", "ainsi", "cependant",
	"néanmoins", "toutefois", "pourtant", "malgré", "grâce", "selon",
	"pendant", "durant", "après", "avant", "depuis", "jusqu", "vers",
	"chez", "sans", "sous", "entre", "parmi", "contre", "sauf", "except",
}

var frenchCardinals = []string{
	"zero", "zéro", "un", "une", "deux", "trois", "quatre", "cinq", "six",
	"sept", "huit", "neuf", "dix", "onze", "douze", "treize", "quatorze",
	"quinze", "seize", "dix-sept", "dix-huit", "dix-neuf", "vingt",
	"trente", "quarante", "cinquante", "soixante", "soixante-dix",
	"septante", "quatre-vingt", "quatre-vingts", "huitante",
	"quatre-vingt-dix", "nonante", "cent", "cents", "mille", "mil",
	"million", "millions", "milliard", "milliards", "billion",
}

var frenchOrdinals = []string{
	"premier", "première", "deuxième", "second", "seconde", "troisième",
	"quatrième", "cinquième", "sixième", "septième", "huitième",
	"neuvième", "dixième", "onzième", "douzième", "treizième",
	"quatorzième", "quinzième", "seizième", "dix-septième", "dix-huitième",
	"dix-neuvième", "vingtième", "trentième", "quarantième",
	"cinquantième", "soixantième", "soixante-dixième", "quatre-vingtième",
	"quatre-vingt-dixième", "centième", "millième", "millionième",
	"milliardième",
}

// stopWordCandidates are the French function words tested against the
// stopwords library.
var stopWordCandidates = []string{
	"le", "la", "les", "un", "une", "des", "de", "du", "et", "à", "au", "aux",
	"en", "pour", "par", "avec", "sans", "sous", "sur", "dans", "contre",
	"vers", "chez", "entre", "depuis", "pendant", "avant", "après", "devant",
	"derrière", "est", "sont", "être", "avoir", "fait", "faire", "dit", "dire",
	"aller", "voir", "savoir", "pouvoir", "falloir", "vouloir", "je", "tu",
	"il", "elle", "on", "nous", "vous", "ils", "elles", "mon", "ton", "son",
	"ma", "ta", "sa", "mes", "tes", "ses", "notre", "votre", "leur", "nos",
	"vos", "leurs", "ce", "cette", "ces", "celui", "celle", "ceux", "celles",
	"ceci", "cela", "ça", "que", "qui", "quoi", "dont", "où", "si", "ne",
	"pas", "plus", "moins", "très", "bien", "mal", "peu", "beaucoup", "trop",
	"tout", "tous", "toute", "toutes", "quel", "quelle", "quels", "quelles",
	"même", "autre", "aucun", "certain", "plusieurs", "tel", "chaque",
	"me", "te", "se", "lui", "eux", "moi", "toi", "soi", "y", "était",
	"étaient", "été", "ai", "as", "avons", "avez", "ont", "avait", "eu",
}
