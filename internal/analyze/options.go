package analyze

import (
	"strings"

	"valueobject-generator/internal/config"
	"valueobject-generator/internal/engine"
)

// EngineOptions decodes merged raw options into the form the engine
// consumes: the error type and load function become TypeExprs with their
// imports resolved against the declaring file, and the JSON namespace is
// split into import path and identifier. The options must already have
// passed Validate.
func (t *Target) EngineOptions(merged config.Options) *engine.Options {
	jsonPath, jsonIdent := merged.JSONPackage()
	return &engine.Options{
		ErrorType: t.typeRef(merged.ErrorType),
		LoadFn:    t.typeRef(merged.LoadFn),
		JSON:      merged.JSON,
		JSONPath:  jsonPath,
		JSONIdent: jsonIdent,
		Stringer:  merged.Stringer,
		Convert:   merged.Convert,
		Parse:     merged.Parse,
	}
}

// typeRef turns a configured reference like "apperr.Validation" or
// "validators.NewEmail" into a TypeExpr. An unresolvable qualifier is left
// without an import; the generated file then fails to compile at the
// reference, which is the same deferred check applied to capability support.
func (t *Target) typeRef(code string) engine.TypeExpr {
	out := engine.TypeExpr{Code: code}
	qualifier, _, ok := strings.Cut(code, ".")
	if !ok {
		return out
	}
	if importPath, found := t.fileImports[qualifier]; found {
		out.Imports = append(out.Imports, importSpec(qualifier, importPath))
	}
	return out
}
