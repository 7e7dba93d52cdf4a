// Package render splices generated units into a formatted Go source file
// next to the declaration they were generated for. It only places text; the
// meaning of each unit is the engine's business.
package render

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"text/template"

	"github.com/go-openapi/inflect"

	"valueobject-generator/internal/engine"
)

// File is one generated Go source file.
type File struct {
	// Filename is the base name, e.g. "email_valueobject.go".
	Filename string
	// Content is the formatted source.
	Content []byte
}

// Filename returns the output file name for a value object type.
func Filename(typeName string) string {
	return inflect.Underscore(typeName) + "_valueobject.go"
}

// Render assembles the ordered units into one source file for the given
// package: header, package clause, merged import block, then the unit
// sources in exactly the order the engine produced them. On a formatting
// failure the unformatted content is returned alongside the error so it can
// be inspected.
func Render(pkgName, typeName string, units []engine.Unit) (*File, error) {
	data := map[string]any{
		"PackageName": pkgName,
		"Imports":     mergeImports(units),
		"Units":       unitSources(units),
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing file template: %w", err)
	}

	name := Filename(typeName)
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return &File{Filename: name, Content: buf.Bytes()}, fmt.Errorf("formatting %s: %w", name, err)
	}
	return &File{Filename: name, Content: formatted}, nil
}

func unitSources(units []engine.Unit) []string {
	out := make([]string, 0, len(units))
	for _, u := range units {
		out = append(out, u.Source)
	}
	return out
}

// mergeImports deduplicates the units' imports and sorts them by path for
// deterministic output.
func mergeImports(units []engine.Unit) []engine.ImportSpec {
	seen := make(map[engine.ImportSpec]bool)
	var merged []engine.ImportSpec
	for _, u := range units {
		for _, imp := range u.Imports {
			if seen[imp] {
				continue
			}
			seen[imp] = true
			merged = append(merged, imp)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Path != merged[j].Path {
			return merged[i].Path < merged[j].Path
		}
		return merged[i].Alias < merged[j].Alias
	})
	return merged
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by valueobject-gen. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{range .Units}}{{.}}
{{end}}`))
