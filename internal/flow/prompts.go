package flow

import (
	"embed"
	"text/template"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

func mustPrompt(name string) *template.Template {
	return template.Must(template.New(name).ParseFS(promptFS, "prompts/"+name))
}
