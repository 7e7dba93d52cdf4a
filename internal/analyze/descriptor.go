package analyze

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/packages"

	"valueobject-generator/internal/common"
	"valueobject-generator/internal/engine"
)

// buildDescriptor decodes an ast.TypeSpec into the engine's structural
// description. It never fails: ineligible declarations (interfaces, enums,
// multi-field structs) are described as-is and rejected by the engine with
// a proper message.
func buildDescriptor(pkg *packages.Package, file *ast.File, typeSpec *ast.TypeSpec) *engine.TypeDescriptor {
	desc := &engine.TypeDescriptor{
		Name: typeSpec.Name.Name,
	}
	if typeSpec.TypeParams != nil {
		for _, p := range typeSpec.TypeParams.List {
			for _, name := range p.Names {
				desc.TypeParams = append(desc.TypeParams, name.Name)
			}
		}
	}

	switch t := typeSpec.Type.(type) {
	case *ast.StructType:
		desc.Shape = engine.ShapeStruct
		desc.Style, desc.Fields = structFields(pkg, file, t)
	case *ast.InterfaceType:
		desc.Shape = engine.ShapeUnion
	default:
		desc.Shape = engine.ShapeEnum
	}
	return desc
}

// structFields flattens a struct's field list: one entry per declared name,
// one entry per embedded type. A struct mixing named and embedded entries
// counts as named.
func structFields(pkg *packages.Package, file *ast.File, st *ast.StructType) (engine.FieldStyle, []engine.Field) {
	var (
		fields   []engine.Field
		anyNamed bool
	)
	for _, field := range st.Fields.List {
		expr := typeExpr(pkg, file, field.Type)
		if len(field.Names) == 0 {
			fields = append(fields, engine.Field{Type: expr})
			continue
		}
		anyNamed = true
		for _, name := range field.Names {
			fields = append(fields, engine.Field{Name: name.Name, Type: expr})
		}
	}

	switch {
	case len(fields) == 0:
		return engine.FieldsNone, nil
	case anyNamed:
		return engine.FieldsNamed, fields
	default:
		return engine.FieldsEmbedded, fields
	}
}

// typeExpr renders a field's type expression and collects the imports it
// references. Package qualifiers are resolved through go/types information
// when available, falling back to the file's import table.
func typeExpr(pkg *packages.Package, file *ast.File, expr ast.Expr) engine.TypeExpr {
	out := engine.TypeExpr{Code: types.ExprString(expr)}

	seen := make(map[string]bool)
	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		ident, ok := sel.X.(*ast.Ident)
		if !ok || seen[ident.Name] {
			return true
		}
		if spec, ok := resolveQualifier(pkg, file, ident); ok {
			seen[ident.Name] = true
			out.Imports = append(out.Imports, spec)
		}
		return true
	})
	return out
}

// resolveQualifier maps a package identifier to its import, preferring type
// checker facts over the syntactic import table.
func resolveQualifier(pkg *packages.Package, file *ast.File, ident *ast.Ident) (engine.ImportSpec, bool) {
	if pkg != nil && pkg.TypesInfo != nil {
		if obj, ok := pkg.TypesInfo.Uses[ident]; ok {
			pkgName, ok := obj.(*types.PkgName)
			if !ok {
				return engine.ImportSpec{}, false
			}
			return importSpec(ident.Name, pkgName.Imported().Path()), true
		}
	}
	if file != nil {
		if importPath, ok := fileImports(file)[ident.Name]; ok {
			return importSpec(ident.Name, importPath), true
		}
	}
	return engine.ImportSpec{}, false
}

// importSpec aliases the import only when the identifier used at the
// declaration site differs from the path's natural package name.
func importSpec(ident, importPath string) engine.ImportSpec {
	spec := engine.ImportSpec{Path: importPath}
	if common.PkgAlias(importPath) != ident {
		spec.Alias = ident
	}
	return spec
}
