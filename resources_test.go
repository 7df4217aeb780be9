package frlex

import "testing"

func TestFrenchResources(t *testing.T) {
	res := FrenchResources()

	for _, w := range []string{"le", "Être", "AVOIR", "déjà", "pourquoi"} {
		if !res.IsStopWord(w) {
			t.Errorf("Expected %q to be a stopword", w)
		}
	}
	for _, w := range []string{"pomme", "manger", "Paris"} {
		if res.IsStopWord(w) {
			t.Errorf("Expected %q not to be a stopword", w)
		}
	}

	bonuses := map[string]float64{
		POSPropn: 1.5,
		POSNoun:  1.3,
		POSAdj:   1.1,
		POSVerb:  1.0,
		POSAdv:   1.0,
		POSUnknownWord: 1.0,
	}
	for pos, want := range bonuses {
		if got := res.POSBonus(pos); got != want {
			t.Errorf("POSBonus(%s) = %v, want %v", pos, got, want)
		}
	}

	for _, pos := range []string{POSNoun, POSAdj, POSVerb, POSAdv, POSPropn} {
		if !res.IsContentPOS(pos) {
			t.Errorf("Expected %s to be a content POS", pos)
		}
	}
	for _, pos := range []string{POSAux, POSDet, POSPron, POSNum, POSPunct} {
		if res.IsContentPOS(pos) {
			t.Errorf("Expected %s not to be a content POS", pos)
		}
	}
}

func TestWithStopWordsCopies(t *testing.T) {
	res := FrenchResources()
	before := res.StopWordCount()

	extended := res.WithStopWords("pomme", "Poire")

	if res.StopWordCount() != before {
		t.Errorf("Base table changed: %d stopwords, want %d", res.StopWordCount(), before)
	}
	if res.IsStopWord("pomme") {
		t.Error("Expected base table not to contain pomme")
	}
	if !extended.IsStopWord("poire") {
		t.Error("Expected extended table to contain poire")
	}
	if extended.StopWordCount() != before+2 {
		t.Errorf("Extended table has %d stopwords, want %d", extended.StopWordCount(), before+2)
	}
}

func TestWithExtendedStopwords(t *testing.T) {
	res := FrenchResources()
	extended := res.WithExtendedStopwords()

	if extended.StopWordCount() < res.StopWordCount() {
		t.Errorf("Extended table shrank: %d < %d", extended.StopWordCount(), res.StopWordCount())
	}

	found := libraryStopWords("fr")
	if len(found) == 0 {
		t.Fatal("Expected the stopwords library to know French function words")
	}
	for _, w := range found {
		if !extended.IsStopWord(w) {
			t.Errorf("Expected %q from the library to be a stopword", w)
		}
	}
	t.Logf("stopwords library: %d French words, table: %d", len(found), extended.StopWordCount())
}
