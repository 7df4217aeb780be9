package frlex

import "strings"

// tk builds a token from its annotation columns.
func tk(text, lemma, pos, tag, feats string) Token {
	return Token{
		Text:    text,
		Lemma:   lemma,
		POS:     pos,
		Tag:     tag,
		Morph:   ParseFeatures(feats),
		IsPunct: pos == POSPunct,
		IsSpace: pos == POSSpace,
	}
}

// sents numbers tokens and sets their sentence spans.
func sents(sentences ...[]Token) []Token {
	var b sentenceBuilder
	for _, s := range sentences {
		for _, tok := range s {
			b.add(tok)
		}
		b.closeSentence()
	}
	return b.result()
}

// frenchExample is "Je mange une pomme. Tu mangeais du pain." as a French
// tagger annotates it.
func frenchExample() []Token {
	return sents(
		[]Token{
			tk("Je", "je", POSPron, "CLS", "Number=Sing|Person=1"),
			tk("mange", "manger", POSVerb, "V", "Mood=Ind|Number=Sing|Person=1|Tense=Pres|VerbForm=Fin"),
			tk("une", "un", POSDet, "DET", "Definite=Ind|Gender=Fem|Number=Sing"),
			tk("pomme", "pomme", POSNoun, "NC", "Gender=Fem|Number=Sing"),
			tk(".", ".", POSPunct, "PONCT", ""),
		},
		[]Token{
			tk("Tu", "tu", POSPron, "CLS", "Number=Sing|Person=2"),
			tk("mangeais", "manger", POSVerb, "V", "Mood=Ind|Number=Sing|Person=2|Tense=Imp|VerbForm=Fin"),
			tk("du", "de", POSDet, "DET", "Definite=Def|Gender=Masc|Number=Sing"),
			tk("pain", "pain", POSNoun, "NC", "Gender=Masc|Number=Sing"),
			tk(".", ".", POSPunct, "PONCT", ""),
		},
	)
}

// frenchExampleCoNLLU is frenchExample in CoNLL-U.
const frenchExampleCoNLLU = `# sent_id = 1
# text = Je mange une pomme.
1	Je	je	PRON	CLS	Number=Sing|Person=1	2	nsubj	_	_
2	mange	manger	VERB	V	Mood=Ind|Number=Sing|Person=1|Tense=Pres|VerbForm=Fin	0	root	_	_
3	une	un	DET	DET	Definite=Ind|Gender=Fem|Number=Sing	4	det	_	_
4	pomme	pomme	NOUN	NC	Gender=Fem|Number=Sing	2	obj	_	SpaceAfter=No
5	.	.	PUNCT	PONCT	_	2	punct	_	_

# sent_id = 2
# text = Tu mangeais du pain.
1	Tu	tu	PRON	CLS	Number=Sing|Person=2	2	nsubj	_	_
2	mangeais	manger	VERB	V	Mood=Ind|Number=Sing|Person=2|Tense=Imp|VerbForm=Fin	0	root	_	_
3	du	de	DET	DET	Definite=Def|Gender=Masc|Number=Sing	4	det	_	_
4	pain	pain	NOUN	NC	Gender=Masc|Number=Sing	2	obj	_	SpaceAfter=No
5	.	.	PUNCT	PONCT	_	2	punct	_	_

`

// frenchExampleLexicon covers the words of frenchExample.
var frenchExampleLexicon = strings.Join([]string{
	"je\tje\tPRON\tCLS\tNumber=Sing|Person=1",
	"tu\ttu\tPRON\tCLS\tNumber=Sing|Person=2",
	"mange\tmanger\tVERB\tV\tMood=Ind|Number=Sing|Person=1|Tense=Pres|VerbForm=Fin",
	"mangeais\tmanger\tVERB\tV\tMood=Ind|Number=Sing|Person=2|Tense=Imp|VerbForm=Fin",
	"une\tun\tDET\tDET\tDefinite=Ind|Gender=Fem|Number=Sing",
	"du\tde\tDET\tDET\tDefinite=Def|Gender=Masc|Number=Sing",
	"pomme\tpomme\tNOUN\tNC\tGender=Fem|Number=Sing",
	"pain\tpain\tNOUN\tNC\tGender=Masc|Number=Sing",
	".\t.\tPUNCT\tPONCT\t_",
}, "\n")

func tenses(verbs []VerbOccurrence) []TenseLabel {
	out := make([]TenseLabel, len(verbs))
	for i, v := range verbs {
		out[i] = v.Tense
	}
	return out
}
