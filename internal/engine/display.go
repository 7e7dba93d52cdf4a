package engine

import (
	"bytes"
	"fmt"
	"text/template"
)

// GenerateDisplay emits the display unit: a String method returning the
// textual form of the stored inner value, nothing more. Returns nil when the
// capability is disabled.
func GenerateDisplay(ctx *Context) (*Unit, error) {
	if !ctx.Opts.stringerEnabled() {
		return nil, nil
	}

	var buf bytes.Buffer
	err := displayTemplate.Execute(&buf, map[string]any{
		"Name":     ctx.Desc.Name,
		"Accessor": ctx.Accessor,
	})
	if err != nil {
		return nil, fmt.Errorf("executing display template: %w", err)
	}

	return &Unit{
		Kind:    UnitDisplay,
		Source:  buf.String(),
		Imports: []ImportSpec{{Path: "fmt"}},
	}, nil
}

var displayTemplate = template.Must(template.New("display").Parse(`// String returns the textual form of the wrapped value.
func (v {{.Name}}) String() string {
	return fmt.Sprint(v.{{.Accessor}})
}
`))
