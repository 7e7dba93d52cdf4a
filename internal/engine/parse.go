package engine

import (
	"bytes"
	"fmt"
	"text/template"

	"valueobject-generator/primitive"
)

// GenerateParse emits the parse unit: a Parse<Name> function reading the
// inner value from text and applying the load function.
//
// Default enablement is a name-based heuristic: the unit is generated
// automatically only when the inner type's rendered name is one of the
// primitive type names, since only those have standard textual parsing. Any
// other inner type needs an explicit parse=true; the generated code then
// decodes through encoding.TextUnmarshaler, and whether the inner type
// actually implements it is left to compilation of the emitted file.
func GenerateParse(ctx *Context) (*Unit, error) {
	kind := primitive.KindOf(ctx.Inner.Code)
	if !ctx.Opts.parseEnabled(kind != 0) {
		return nil, nil
	}

	plainErr := ctx.Opts.ErrorType.Code == "error"
	data := map[string]any{
		"Name":     ctx.Desc.Name,
		"Inner":    ctx.Inner.Code,
		"LoadFn":   ctx.Opts.LoadFn.Code,
		"ErrType":  ctx.Opts.ErrorType.Code,
		"PlainErr": plainErr,
	}

	var (
		tmpl    *template.Template
		imports []ImportSpec
	)
	switch {
	case kind == primitive.KindString:
		tmpl = parseStringTemplate
	case kind == primitive.KindRune:
		tmpl = parseRuneTemplate
		if plainErr {
			imports = append(imports, ImportSpec{Path: "errors"})
		}
	case kind != 0:
		call, ok := kind.StrconvCall("s")
		if !ok {
			return nil, fmt.Errorf("no parse call for primitive kind %s", kind)
		}
		data["Call"] = call.Expr
		tmpl = parseStrconvTemplate
		imports = append(imports, ImportSpec{Path: "strconv"})
	default:
		tmpl = parseTextTemplate
	}
	// The string template hands s straight to the load function and never
	// names the error type; importing its package there would leave the
	// generated file with an unused import.
	if tmpl != parseStringTemplate && !plainErr {
		imports = append(imports, ctx.Opts.ErrorType.Imports...)
	}
	imports = append(imports, ctx.Inner.Imports...)
	imports = append(imports, ctx.Opts.LoadFn.Imports...)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing parse template: %w", err)
	}
	return &Unit{Kind: UnitParse, Source: buf.String(), Imports: imports}, nil
}

var parseStringTemplate = template.Must(template.New("parse-string").Parse(`// Parse{{.Name}} parses s into a {{.Name}} via {{.LoadFn}}.
func Parse{{.Name}}(s string) ({{.Name}}, error) {
	return {{.LoadFn}}(s)
}
`))

var parseRuneTemplate = template.Must(template.New("parse-rune").Parse(`// Parse{{.Name}} parses a single character into a {{.Name}} via {{.LoadFn}}.
func Parse{{.Name}}(s string) ({{.Name}}, error) {
	r := []rune(s)
	if len(r) != 1 {
		var zero {{.Name}}
		return zero, {{if .PlainErr}}errors.New("parse {{.Name}}: expected a single character"){{else}}{{.ErrType}}("parse {{.Name}}: expected a single character"){{end}}
	}
	return {{.LoadFn}}(r[0])
}
`))

var parseStrconvTemplate = template.Must(template.New("parse-strconv").Parse(`// Parse{{.Name}} parses s into a {{.Name}} via {{.LoadFn}}.
func Parse{{.Name}}(s string) ({{.Name}}, error) {
	parsed, err := {{.Call}}
	if err != nil {
		var zero {{.Name}}
		return zero, {{if .PlainErr}}err{{else}}{{.ErrType}}(err.Error()){{end}}
	}
	return {{.LoadFn}}({{.Inner}}(parsed))
}
`))

var parseTextTemplate = template.Must(template.New("parse-text").Parse(`// Parse{{.Name}} parses s into a {{.Name}} via {{.LoadFn}}. The inner type
// must implement encoding.TextUnmarshaler.
func Parse{{.Name}}(s string) ({{.Name}}, error) {
	var inner {{.Inner}}
	if err := inner.UnmarshalText([]byte(s)); err != nil {
		var zero {{.Name}}
		return zero, {{if .PlainErr}}err{{else}}{{.ErrType}}(err.Error()){{end}}
	}
	return {{.LoadFn}}(inner)
}
`))
