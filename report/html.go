package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"

	"github.com/tsawler/frlex"
)

// Page is the data rendered by WriteHTML.
type Page struct {
	Title    string
	Input    string
	Metadata frlex.DocumentMetadata
	Analysis frlex.Analysis
}

type tenseRow struct {
	Label  string
	French string
	Count  int
}

type posRow struct {
	Name  string
	Count int
}

var pageTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"marked": marked,
	"inc":    func(i int) int { return i + 1 },
	"french": func(t frlex.TenseLabel) string { return t.French() },
}).Parse(`<!DOCTYPE html>
<html lang="fr">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: sans-serif; margin: 2em; }
    table { border-collapse: collapse; }
    td, th { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
    b { color: #a00; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  {{if .Input}}<p>Fichier : {{.Input}}</p>{{end}}
  <p>{{.Metadata.TokenCount}} tokens, {{.Metadata.SentenceCount}} phrases, annotateur {{.Metadata.Annotator}}.</p>

  <h2>Verbes ({{len .Analysis.Verbs}})</h2>
  <table>
    <tr><th>Temps</th><th>Libellé</th><th>Nombre</th></tr>
    {{range .Tenses}}<tr><td>{{.Label}}</td><td>{{.French}}</td><td>{{.Count}}</td></tr>
    {{end}}
  </table>
  <table>
    <tr><th>#</th><th>Forme</th><th>Lemme</th><th>Temps</th><th>Contexte</th></tr>
    {{range $i, $v := .Analysis.Verbs}}<tr><td>{{inc $i}}</td><td>{{$v.Text}}</td><td>{{$v.Lemma}}</td><td>{{french $v.Tense}}</td><td>{{marked $v.Context}}</td></tr>
    {{end}}
  </table>

  <h2>Mots importants ({{len .Analysis.Words}})</h2>
  <table>
    <tr><th>Catégorie</th><th>Nombre</th></tr>
    {{range .POS}}<tr><td>{{.Name}}</td><td>{{.Count}}</td></tr>
    {{end}}
  </table>
  <p>Score moyen {{.Stats.Mean}}, écart type {{.Stats.StdDev}}.</p>
  <table>
    <tr><th>#</th><th>Forme</th><th>Lemme</th><th>POS</th><th>Fréquence</th><th>Score</th><th>Exemple</th></tr>
    {{range $i, $w := .Analysis.Words}}<tr><td>{{inc $i}}</td><td>{{$w.SurfaceText}}</td><td>{{$w.Lemma}}</td><td>{{$w.POS}}</td><td>{{$w.Frequency}}</td><td>{{$w.ImportanceScore}}</td><td>{{with $w.ContextExamples}}{{marked (index . 0)}}{{end}}</td></tr>
    {{end}}
  </table>
</body>
</html>
`))

// marked escapes s and renders its "**word**" markers in bold.
func marked(s string) template.HTML {
	parts := strings.Split(s, "**")
	var sb strings.Builder
	for i, p := range parts {
		esc := template.HTMLEscapeString(p)
		if i%2 == 1 && i < len(parts)-1 {
			sb.WriteString("<b>" + esc + "</b>")
		} else {
			if i%2 == 1 {
				sb.WriteString("**")
			}
			sb.WriteString(esc)
		}
	}
	return template.HTML(sb.String())
}

// WriteHTML renders p as a minified HTML page.
func WriteHTML(w io.Writer, p Page) error {
	if p.Title == "" {
		p.Title = "Analyse du texte"
	}

	var tenses []tenseRow
	for _, c := range frlex.TenseCounts(p.Analysis.Verbs) {
		tenses = append(tenses, tenseRow{Label: c.Label, French: frlex.TenseLabel(c.Label).French(), Count: c.Count})
	}
	var pos []posRow
	for _, c := range frlex.POSCounts(p.Analysis.Words) {
		pos = append(pos, posRow{Name: POSName(c.Label), Count: c.Count})
	}

	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, struct {
		Page
		Tenses []tenseRow
		POS    []posRow
		Stats  ScoreStats
	}{p, tenses, pos, Scores(p.Analysis.Words)})
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	if err := m.Minify("text/html", w, &buf); err != nil {
		return fmt.Errorf("minify report: %w", err)
	}
	return nil
}
