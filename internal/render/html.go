// Package render turns query results into presentation output. The
// engine returns raw feed text; all escaping happens here.
package render

import (
	"html/template"
	"io"

	"github.com/clearlane/waitboard/backend/internal/query"
)

// htmlPage escapes every data-supplied value through html/template
// contexts. Band values become CSS class names.
var htmlPage = template.Must(template.New("results").Parse(`<section class="results">
{{- if .Message}}
<p class="empty">{{.Message}}</p>
{{- end}}
{{- if .Classes}}
<table class="classes">
<thead><tr><th>Class</th><th>Waiting</th></tr></thead>
<tbody>
{{- range .Classes}}
<tr class="band-{{.Band}}"><td>{{.ClassName}}</td><td>{{.WaitingCount}}</td></tr>
{{- end}}
</tbody>
</table>
{{- end}}
{{- if .Students}}
<table class="students">
<thead><tr><th>Class</th><th>Position</th><th>Name</th></tr></thead>
<tbody>
{{- range .Students}}
<tr class="band-{{.Band}}"><td>{{.ClassName}}</td><td>{{.Position}}</td><td>{{.Name}}</td></tr>
{{- end}}
</tbody>
</table>
{{- end}}
{{- if .Openings}}
<table class="openings">
<thead><tr><th>Class</th><th>Open spots</th></tr></thead>
<tbody>
{{- range .Openings}}
<tr class="band-{{.Band}}"><td>{{.Name}}</td><td>{{.OpenSpots}}</td></tr>
{{- end}}
</tbody>
</table>
{{- end}}
</section>
`))

type htmlView struct {
	Message  string
	Classes  []query.ClassResult
	Students []query.StudentResult
	Openings []query.OpeningResult
}

// WriteHTML renders the result as an HTML fragment, emitting the
// context-sensitive empty-state message when there are no rows.
func WriteHTML(w io.Writer, result query.Result, params query.Params) error {
	view := htmlView{
		Classes:  result.Classes,
		Students: result.Students,
		Openings: result.Openings,
	}
	if result.Empty() {
		view.Message = NoResultsMessage(params)
	}
	return htmlPage.Execute(w, view)
}
