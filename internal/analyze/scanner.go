package analyze

import (
	"go/ast"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"valueobject-generator/internal/common"
	"valueobject-generator/internal/config"
	"valueobject-generator/internal/engine"
)

// Target is one annotated type declaration, decoded and ready for the
// engine.
type Target struct {
	// Desc is the structural description of the declaration.
	Desc *engine.TypeDescriptor

	// Directive holds the raw options parsed from the //valueobject:
	// directive. File-level configuration is merged beneath it later.
	Directive config.Options

	// DirectiveErr is set when the directive could not be parsed. The
	// target then carries no usable options and must be reported, but it
	// never aborts sibling targets.
	DirectiveErr error

	// Pos is the source position of the declaration, for diagnostics.
	Pos token.Position

	// Dir is the directory of the declaring file; generated output goes
	// next to it.
	Dir string

	// PkgName is the package the declaration (and its generated file)
	// belongs to.
	PkgName string

	// fileImports maps package identifiers visible in the declaring file
	// to their import paths, used to resolve qualified type references
	// from the configuration.
	fileImports map[string]string
}

// FindTargets scans every syntax file of pkg for type declarations carrying
// a valueobject directive and decodes them. When typeName is non-empty only
// that declaration is returned.
func FindTargets(pkg *packages.Package, typeName string) []*Target {
	var targets []*Target
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				args, ok := directiveArgs(genDecl, typeSpec)
				if !ok {
					continue
				}
				if typeName != "" && typeSpec.Name.Name != typeName {
					continue
				}
				targets = append(targets, newTarget(pkg, file, typeSpec, args))
			}
		}
	}
	return targets
}

func newTarget(pkg *packages.Package, file *ast.File, typeSpec *ast.TypeSpec, args string) *Target {
	pos := pkg.Fset.Position(typeSpec.Pos())
	t := &Target{
		Desc:        buildDescriptor(pkg, file, typeSpec),
		Pos:         pos,
		Dir:         filepath.Dir(pos.Filename),
		PkgName:     pkg.Name,
		fileImports: fileImports(file),
	}
	t.Directive, t.DirectiveErr = config.ParseDirective(args)
	return t
}

// directiveArgs finds the valueobject directive in the declaration's doc
// comment, preferring the spec's own doc (grouped type blocks) over the
// enclosing GenDecl's.
func directiveArgs(genDecl *ast.GenDecl, typeSpec *ast.TypeSpec) (string, bool) {
	for _, doc := range []*ast.CommentGroup{typeSpec.Doc, genDecl.Doc} {
		if doc == nil {
			continue
		}
		for _, c := range doc.List {
			text := strings.TrimPrefix(c.Text, "//")
			if args, ok := strings.CutPrefix(text, config.DirectivePrefix); ok {
				return strings.TrimSpace(args), true
			}
		}
	}
	return "", false
}

// fileImports maps the package identifiers usable in a file to import
// paths. Dot and blank imports contribute nothing.
func fileImports(file *ast.File) map[string]string {
	imports := make(map[string]string, len(file.Imports))
	for _, imp := range file.Imports {
		importPath := strings.Trim(imp.Path.Value, `"`)
		name := common.PkgAlias(importPath)
		if imp.Name != nil {
			name = imp.Name.Name
		}
		if name == "." || name == "_" {
			continue
		}
		imports[name] = importPath
	}
	return imports
}
