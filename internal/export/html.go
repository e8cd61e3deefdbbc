package export

import (
	"html/template"
	"io"
	"time"

	"github.com/abhisek/codecade/internal/api"
)

// printTemplate is the printable rendering of a history page. It is kept
// deliberately plain so browsers produce a clean print-to-PDF result.
var printTemplate = template.Must(template.New("history").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Codecade history</title>
<style>
body { font-family: Georgia, serif; max-width: 48rem; margin: 2rem auto; }
.challenge { page-break-inside: avoid; border-bottom: 1px solid #ccc; padding: 1rem 0; }
.meta { color: #666; font-size: 0.85rem; }
ol.options li.correct { font-weight: bold; }
.explanation { background: #f6f6f6; padding: 0.5rem; margin-top: 0.5rem; }
</style>
</head>
<body>
<h1>Challenge history</h1>
<p class="meta">Exported {{.Date}} · {{len .Challenges}} challenges</p>
{{range .Challenges}}
<div class="challenge">
<h2>{{.Title}}</h2>
<p class="meta">{{.Topic}} · {{.Difficulty}}</p>
<p>{{.Question}}</p>
<ol class="options">
{{$correct := .CorrectAnswerID}}
{{range $i, $opt := .Options}}<li{{if eq $i $correct}} class="correct"{{end}}>{{$opt}}</li>
{{end}}</ol>
<div class="explanation">{{.Explanation}}</div>
</div>
{{end}}
</body>
</html>
`))

func writeHTML(w io.Writer, challenges []api.Challenge, now time.Time) error {
	return printTemplate.Execute(w, struct {
		Date       string
		Challenges []api.Challenge
	}{
		Date:       now.Format("January 2, 2006"),
		Challenges: challenges,
	})
}
