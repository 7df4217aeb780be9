// Package report renders analysis results: JSON result files, console
// summaries and an HTML page.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tsawler/frlex"
	"github.com/tsawler/frlex/internal/mapped"
)

// Default result file names.
const (
	VerbResultsFile = "verb_analysis_results.json"
	WordResultsFile = "bag_of_words_results.json"
)

const (
	verbContextPreview = 60
	wordExamplePreview = 80
	topWords           = 20
	rule               = 60
)

// ReadText returns the contents of the UTF-8 text file at path.
func ReadText(path string) (string, error) {
	data, err := mapped.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteJSON writes v as indented JSON without escaping non-ASCII or HTML
// characters.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// SaveJSON writes v to the file at path, replacing it.
func SaveJSON(path string, v interface{}) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save %s: %w", path, cerr)
		}
	}()
	if err := WriteJSON(f, v); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

var posNames = map[string]string{
	frlex.POSNoun:  "Noms",
	frlex.POSAdj:   "Adjectifs",
	frlex.POSVerb:  "Verbes",
	frlex.POSAdv:   "Adverbes",
	frlex.POSPropn: "Noms propres",
}

// POSName returns the French display name of a POS group, or pos itself.
func POSName(pos string) string {
	if name, ok := posNames[pos]; ok {
		return name
	}
	return pos
}

// tenseName renders a tense label, in French when french is set.
func tenseName(label frlex.TenseLabel, french bool) string {
	if french {
		return label.French()
	}
	return string(label)
}

// PrintVerbSummary writes the verb totals, the counts per tense and the
// detailed verb list.
func PrintVerbSummary(w io.Writer, verbs []frlex.VerbOccurrence, french bool) {
	if len(verbs) == 0 {
		fmt.Fprintln(w, "No verbs found in the text.")
		return
	}

	fmt.Fprintln(w, "\nVERB ANALYSIS SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintf(w, "Total verbs found: %d\n", len(verbs))

	fmt.Fprintln(w, "\nVerbs by Tense:")
	for _, c := range frlex.TenseCounts(verbs) {
		fmt.Fprintf(w, "  • %s: %d\n", tenseName(frlex.TenseLabel(c.Label), french), c.Count)
	}

	fmt.Fprintln(w, "\nDetailed Verb List:")
	fmt.Fprintln(w, strings.Repeat("-", rule))
	for i, v := range verbs {
		fmt.Fprintf(w, "%2d. %-15s | %-15s | %s\n", i+1, v.Text, v.Lemma, tenseName(v.Tense, french))
		var details []string
		if v.Person != "" {
			details = append(details, "Personne: "+v.Person)
		}
		if v.Number != "" {
			details = append(details, "Nombre: "+v.Number)
		}
		if len(details) > 0 {
			fmt.Fprintf(w, "    └── %s\n", strings.Join(details, " | "))
		}
		fmt.Fprintf(w, "    Context: ...%s...\n\n", truncate(v.Context, verbContextPreview))
	}
}

// PrintWordSummary writes the word totals, the counts per POS and the top
// twenty words.
func PrintWordSummary(w io.Writer, words []frlex.LexicalItem) {
	if len(words) == 0 {
		fmt.Fprintln(w, "No important words found in the text.")
		return
	}

	fmt.Fprintln(w, "\nBAG-OF-WORDS ANALYSIS SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintf(w, "Total important words found: %d\n", len(words))

	fmt.Fprintln(w, "\nWords by Part-of-Speech:")
	for _, c := range frlex.POSCounts(words) {
		fmt.Fprintf(w, "  • %s: %d\n", POSName(c.Label), c.Count)
	}

	fmt.Fprintln(w, "\nTop Important Words (by importance score):")
	fmt.Fprintln(w, strings.Repeat("-", rule))
	for i, word := range words {
		if i == topWords {
			break
		}
		fmt.Fprintf(w, "%2d. %-20s | %-20s | Score: %-6s\n", i+1, word.SurfaceText, word.Lemma, formatScore(word.ImportanceScore))
		fmt.Fprintf(w, "    Fréquence: %d | POS: %s\n", word.Frequency, word.POS)
		if len(word.ContextExamples) > 0 {
			fmt.Fprintf(w, "    Exemple: %s...\n", truncate(word.ContextExamples[0], wordExamplePreview))
		}
		fmt.Fprintln(w)
	}
}

// PrintRunSummary writes the closing summary of a file analysis.
func PrintRunSummary(w io.Writer, input string, verbs, words int, verbFile, wordFile string) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", rule))
	fmt.Fprintln(w, "PROCESSING SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", rule))
	fmt.Fprintf(w, "Input file: %s\n", input)
	fmt.Fprintf(w, "Verbs extracted: %d\n", verbs)
	fmt.Fprintf(w, "Important words extracted: %d\n", words)
	fmt.Fprintf(w, "Verb results: %s\n", verbFile)
	fmt.Fprintf(w, "Bag-of-Words results: %s\n", wordFile)
}

// truncate keeps the first n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
