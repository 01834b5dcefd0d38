package gen

import (
	"slices"
	"strings"

	"github.com/syssam/pgc/compiler/ir"
)

// TypeFuncs exposes the projections of a canonical type onto the target
// language, as seen from a module.
type TypeFuncs struct {
	service *TypeService
}

// NewTypeFuncs returns the type functions of a type service.
func NewTypeFuncs(s *TypeService) *TypeFuncs {
	return &TypeFuncs{service: s}
}

// Annotation returns the annotation of t.
func (f *TypeFuncs) Annotation(module []string, t ir.Type) string {
	return f.service.Get(module, t).Annotation
}

// Name returns the declared name of t, or the empty string.
func (f *TypeFuncs) Name(module []string, t ir.Type) string {
	return f.service.Get(module, t).Name
}

// Imports returns the import statements needed by t.
func (f *TypeFuncs) Imports(module []string, t ir.Type) []string {
	return f.service.Get(module, t).Imports
}

// TypeModule returns the dotted module declaring t, or the empty string.
func (f *TypeFuncs) TypeModule(module []string, t ir.Type) string {
	return f.service.Get(module, t).Module
}

// Parser returns the runtime parser expression of t.
func (*TypeFuncs) Parser(_ []string, t ir.Type) string {
	return Parser(t)
}

// Context is the data a template is executed with. It is read-only during
// the execution.
type Context struct {
	IR     *ir.IR
	Target *Target
	// Path is the output path of the file being rendered.
	Path string
	// Module is the module path of the file being rendered.
	Module []string
	// UsedTypes holds the types referenced by the file.
	UsedTypes ir.TypeSet
	// ModelModule is set when rendering a model module.
	ModelModule *ir.ModelModule
	// Namespace is set when rendering a query namespace.
	Namespace *ir.Namespace
	// Package is the value of the package option, if any.
	Package string

	types *TypeFuncs
}

// Annotation returns the annotation of t in the current module.
func (c *Context) Annotation(t ir.Type) string { return c.types.Annotation(c.Module, t) }

// Name returns the declared name of t.
func (c *Context) Name(t ir.Type) string { return c.types.Name(c.Module, t) }

// Imports returns the imports needed by t.
func (c *Context) Imports(t ir.Type) []string { return c.types.Imports(c.Module, t) }

// TypeModule returns the module declaring t.
func (c *Context) TypeModule(t ir.Type) string { return c.types.TypeModule(c.Module, t) }

// Parser returns the runtime parser expression of t.
func (c *Context) Parser(t ir.Type) string { return c.types.Parser(c.Module, t) }

// UsedImports returns the sorted, deduplicated imports of the used types.
func (c *Context) UsedImports() []string {
	var imports []string
	for _, t := range c.UsedTypes {
		imports = append(imports, c.Imports(t)...)
	}
	slices.Sort(imports)
	return slices.Compact(imports)
}

// Root returns the relative path from the rendered file to the output
// root, ending with a slash.
func (c *Context) Root() string {
	depth := strings.Count(c.Path, "/")
	if depth == 0 {
		return "./"
	}
	return strings.Repeat("../", depth)
}

// ChildModule returns the import path of a child namespace relative to
// the rendered namespace.
func (c *Context) ChildModule(n *ir.Namespace) string {
	if !n.HasChildren() {
		return "./" + n.Name
	}
	entry := strings.TrimSuffix(c.Target.QueryEntrypoint, "."+c.Target.Extension)
	return "./" + n.Name + "/" + entry
}
