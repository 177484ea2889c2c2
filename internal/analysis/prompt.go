package analysis

import (
	_ "embed"
	"strings"
	"text/template"
)

// NotProvided stands in for hints the user left empty.
const NotProvided = "Not provided"

//go:embed prompt.tmpl
var promptSource string

var promptTemplate = template.Must(template.New("prompt").Funcs(template.FuncMap{
	"join": strings.Join,
	"orNotProvided": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return NotProvided
		}
		return s
	},
}).Parse(promptSource))

type promptData struct {
	Document      string
	Hints         *Hints
	Personalities []string
	Styles        []string
}

// BuildPrompt renders the analysis instruction for text. The hint block is
// included only when hints is non-nil.
func BuildPrompt(text string, hints *Hints) (string, error) {
	var b strings.Builder
	err := promptTemplate.Execute(&b, promptData{
		Document:      text,
		Hints:         hints,
		Personalities: Personalities,
		Styles:        Styles,
	})
	return b.String(), err
}
