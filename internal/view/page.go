package view

import (
	"fmt"
	"html/template"
	"io"
)

// PageData is everything the lookup page template needs for one render.
type PageData struct {
	UID            string
	Region         string
	Regions        []string
	Error          string
	CatalogWarning string
	Cards          []Card
}

// DefaultRegions are the region codes offered by the lookup form.
var DefaultRegions = []string{"ind", "br", "sg", "ru", "id", "tw", "us", "vn", "th", "me", "pk", "cis", "bd"}

var pageTemplate = template.Must(template.New("player").Parse(pageHTML))

// RenderPage writes the lookup page HTML.
func RenderPage(w io.Writer, data PageData) error {
	if len(data.Regions) == 0 {
		data.Regions = DefaultRegions
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render player page: %w", err)
	}
	return nil
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Free Fire Player Info</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
<main class="container">
<h1>Free Fire Player Info</h1>
<form class="lookup-form" method="get" action="/player">
<input type="text" name="uid" value="{{.UID}}" placeholder="Player UID">
<select name="region">
{{- range .Regions}}
<option value="{{.}}"{{if eq . $.Region}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
<button type="submit">Fetch Player Info</button>
</form>
{{- if .CatalogWarning}}
<p class="warning">{{.CatalogWarning}}</p>
{{- end}}
{{- if .Error}}
<p class="error">{{.Error}}</p>
{{- end}}
<div class="cards">
{{- range .Cards}}
<section class="info-card{{if .Wide}} wide{{end}}">
<h3>{{.Title}}</h3>
{{- if .HeaderTiles}}
<div class="header-tiles">
{{- range .HeaderTiles}}
<div class="image-name-wrapper">
<img src="{{.Image.Src}}" alt="{{.Image.Alt}}" onerror="this.onerror=null;this.src='{{.Image.FallbackSrc}}';this.alt='{{.Image.FallbackAlt}}';">
<p class="item-name-text">{{.Name}}</p>
</div>
{{- end}}
</div>
{{- end}}
{{- range .Fields}}
<p><strong>{{.Label}}:</strong> {{.Value}}</p>
{{- end}}
{{- if .Tiles}}
<div class="image-grid">
{{- range .Tiles}}
<div class="image-name-wrapper">
<img src="{{.Image.Src}}" alt="{{.Image.Alt}}" onerror="this.onerror=null;this.src='{{.Image.FallbackSrc}}';this.alt='{{.Image.FallbackAlt}}';">
<p class="item-name-text">{{.Name}}</p>
</div>
{{- end}}
</div>
{{- end}}
</section>
{{- end}}
</div>
</main>
</body>
</html>
`
