package server

import (
	"html/template"
	"net/http"

	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/pipeline"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: sans-serif; margin: 24px; display: flex; gap: 24px; }
  nav { min-width: 180px; font-size: 13px; }
  nav a { display: block; padding: 2px 4px; color: #333; text-decoration: none; }
  nav a.brushed { background: #222; color: #fff; }
  nav small { color: #888; }
</style>
</head>
<body>
<nav>
  <a href="?"{{if not .Brushed}} class="brushed"{{end}}>All states</a>
  {{range .States}}<a href="?brushed={{.Name}}"{{if .Brushed}} class="brushed"{{end}}>{{.Name}} <small>{{printf "%.2f" .Rate}}</small></a>
  {{end}}
</nav>
<main>{{.Chart}}</main>
</body>
</html>
`))

type indexState struct {
	Name    string
	Rate    float64
	Brushed bool
}

type indexPage struct {
	Title   string
	Brushed string
	States  []indexState
	Chart   template.HTML
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	res, ok := s.run(w, r, pipeline.FormatSVG)
	if !ok {
		return
	}

	brushed := data.NormalizeName(r.URL.Query().Get("brushed"))
	page := indexPage{
		Title:   s.Runner.Renderer.Options.Title,
		Brushed: brushed,
		Chart:   template.HTML(res.Artifacts[pipeline.FormatSVG]),
	}
	for _, e := range res.Entries {
		page.States = append(page.States, indexState{
			Name:    e.Name,
			Rate:    e.Per100k,
			Brushed: e.Name == brushed,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, page); err != nil {
		s.Logger.Error("index template", "err", err)
	}
}
