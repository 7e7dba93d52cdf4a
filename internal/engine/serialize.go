package engine

import (
	"bytes"
	"fmt"
	"text/template"

	"valueobject-generator/internal/common"
)

// GenerateSerialization emits the serialization unit: a MarshalJSON method
// delegating to the inner value's own encoding and an UnmarshalJSON method
// that decodes a value of the inner type and passes it through the load
// function. A load failure surfaces as a plain error built from its textual
// rendering. Returns nil when the capability is disabled.
func GenerateSerialization(ctx *Context) (*Unit, error) {
	if !ctx.Opts.jsonEnabled() {
		return nil, nil
	}
	path, ident := ctx.Opts.jsonPackage()

	var buf bytes.Buffer
	err := serializationTemplate.Execute(&buf, map[string]any{
		"Name":     ctx.Desc.Name,
		"Inner":    ctx.Inner.Code,
		"Accessor": ctx.Accessor,
		"LoadFn":   ctx.Opts.LoadFn.Code,
		"Pkg":      ident,
	})
	if err != nil {
		return nil, fmt.Errorf("executing serialization template: %w", err)
	}

	imports := []ImportSpec{{Path: "fmt"}, jsonImport(path, ident)}
	imports = append(imports, ctx.Inner.Imports...)
	imports = append(imports, ctx.Opts.LoadFn.Imports...)
	return &Unit{Kind: UnitSerialization, Source: buf.String(), Imports: imports}, nil
}

// jsonImport aliases the import only when the configured identifier differs
// from the path's natural package name.
func jsonImport(path, ident string) ImportSpec {
	spec := ImportSpec{Path: path}
	if common.PkgAlias(path) != ident {
		spec.Alias = ident
	}
	return spec
}

var serializationTemplate = template.Must(template.New("serialization").Parse(`// MarshalJSON encodes the wrapped value.
func (v {{.Name}}) MarshalJSON() ([]byte, error) {
	return {{.Pkg}}.Marshal(v.{{.Accessor}})
}

// UnmarshalJSON decodes a value of the inner type and passes it through
// {{.LoadFn}} before storing it.
func (v *{{.Name}}) UnmarshalJSON(data []byte) error {
	var inner {{.Inner}}
	if err := {{.Pkg}}.Unmarshal(data, &inner); err != nil {
		return err
	}
	loaded, err := {{.LoadFn}}(inner)
	if err != nil {
		return fmt.Errorf("{{.Name}}: %v", err)
	}
	*v = loaded
	return nil
}
`))
