// Package analyze finds value object declarations in Go packages.
//
// It loads packages through golang.org/x/tools/go/packages, scans type
// declarations for the //valueobject: directive, and decodes each annotated
// declaration into the structural descriptor plus raw options consumed by
// the engine. Declarations are decoded independently: a bad directive on one
// type never hides its siblings.
package analyze
