// template.go -
// Copyright (C) 2016  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package html

import (
	"html/template"
	textTemplate "text/template"

	"github.com/Masterminds/sprig/v3"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="document-id" content="{{ .ID.URN }}">
<title>{{ .Name | base }}</title>
<link rel="stylesheet" href="{{ .Stylesheet }}">
</head>
<body>
<div class="filepath">
<ul>
{{- $parts := splitList "/" .Name }}
{{- range initial $parts }}
<li>{{ . }}/</li>
{{- end }}
<li class="file">{{ last $parts }}</li>
</ul>
</div>
<div class="code">
<ol id="code">
{{- range .Lines }}
<li><div line="{{ .Number }}">
{{- range .Spans }}{{ template "span" . }}{{ end -}}
</div></li>
{{- end }}
</ol>
</div>
</body>
</html>
`

const spanTemplate = `
{{- if .Break }}<br/>
{{- else if eq .Class "error" -}}
<span class="error">{{ .Text }}</span><span class="hidden-error">{{ .Hidden }}</span>
{{- else -}}
<span class="{{ .Class }}"{{ with .Depth }} depth="{{ . }}"{{ end }}>{{ .Text }}</span>
{{- end }}`

const stylesheetTemplate = `/* syntax highlighting for Common Lisp */
body { font-family: sans-serif; }
.filepath ul { list-style: none; padding: 0; }
.filepath li { display: inline; }
.filepath li.file { font-weight: bold; }
#code { font-family: monospace; white-space: pre; }
#code li::marker { color: #999; }
{{ range .Colors -}}
.{{ .Class }} { color: {{ .Color }}; }
{{ end -}}
{{ range $i, $color := .Depths -}}
[depth="{{ $i }}"] { color: {{ $color }}; }
{{ end -}}
[depth="error"], .error { color: #ffffff; background-color: #cc0000; }
.hidden-error { display: none; }
.error:hover + .hidden-error {
  display: inline; position: absolute;
  background-color: #ffffdd; border: 1px solid #cc0000;
}
`

var (
	pageTmpl = template.Must(
		template.New("page").
			Funcs(sprig.FuncMap()).
			Parse(pageTemplate))
	_ = template.Must(pageTmpl.New("span").Parse(spanTemplate))

	stylesheetTmpl = textTemplate.Must(
		textTemplate.New("stylesheet").
			Funcs(sprig.TxtFuncMap()).
			Parse(stylesheetTemplate))
)
