package template

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"godot-cli/internal/interfaces"
)

// DefaultMarker is the minimal project descriptor written into new projects
const DefaultMarker = `[application]

config/name={{ .Name | quote }}
`

// Processor implements the MarkerRenderer interface
type Processor struct {
	tmpl *template.Template
}

// NewProcessor parses the marker template text; an empty text selects DefaultMarker
func NewProcessor(text string) (*Processor, error) {
	if text == "" {
		text = DefaultMarker
	}

	tmpl := template.New(interfaces.MarkerFile).Option("missingkey=error")
	registerHelpersToTemplate(tmpl)

	tmpl, err := tmpl.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse marker template: %w", err)
	}

	return &Processor{tmpl: tmpl}, nil
}

// MustNewProcessor is NewProcessor for templates known to be valid
func MustNewProcessor(text string) *Processor {
	p, err := NewProcessor(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Render executes the marker template with the descriptor
func (p *Processor) Render(data interfaces.Descriptor) (string, error) {
	var buf strings.Builder

	if err := p.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute marker template: %w", err)
	}

	return buf.String(), nil
}

// registerHelpersToTemplate registers sprig helpers on a template
func registerHelpersToTemplate(tmpl *template.Template) {
	tmpl.Funcs(sprig.TxtFuncMap())
}
