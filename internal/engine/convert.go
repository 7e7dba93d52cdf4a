package engine

import (
	"bytes"
	"fmt"
	"text/template"
)

// GenerateConversion emits the conversion unit: a <Name>From function that
// applies the load function to a raw inner value and returns its outcome
// unchanged. Returns nil when the capability is disabled.
func GenerateConversion(ctx *Context) (*Unit, error) {
	if !ctx.Opts.convertEnabled() {
		return nil, nil
	}

	var buf bytes.Buffer
	err := conversionTemplate.Execute(&buf, map[string]any{
		"Name":   ctx.Desc.Name,
		"Inner":  ctx.Inner.Code,
		"LoadFn": ctx.Opts.LoadFn.Code,
	})
	if err != nil {
		return nil, fmt.Errorf("executing conversion template: %w", err)
	}

	imports := append([]ImportSpec(nil), ctx.Inner.Imports...)
	imports = append(imports, ctx.Opts.LoadFn.Imports...)
	return &Unit{
		Kind:    UnitConversion,
		Source:  buf.String(),
		Imports: imports,
	}, nil
}

var conversionTemplate = template.Must(template.New("conversion").Parse(`// {{.Name}}From converts a raw {{.Inner}} into a {{.Name}} via {{.LoadFn}}.
func {{.Name}}From(value {{.Inner}}) ({{.Name}}, error) {
	return {{.LoadFn}}(value)
}
`))
