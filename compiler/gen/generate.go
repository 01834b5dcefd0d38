package gen

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"strconv"
	"strings"
	"text/template"

	"github.com/syssam/pgc/compiler/ir"
	"github.com/syssam/pgc/compiler/request"
)

//go:embed templates
var templates embed.FS

// Template names of the files rendered for every target.
const (
	ModelTemplate     = "model"
	ModelInitTemplate = "model_init"
	QueryTemplate     = "query"
)

// File is a generated file. Path is relative to the output root and
// separated by forward slashes.
type File struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Generate renders the files of the IR for the target selected by its
// codegen configuration. Either all files are returned or an error.
func Generate(x *ir.IR, opts ...Option) ([]File, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	codegen := &x.Request.Config.Codegen
	target, err := LookupTarget(codegen.Language, codegen.Driver)
	if err != nil {
		return nil, err
	}
	if err := target.CheckOptions(codegen); err != nil {
		return nil, err
	}
	tmpl, err := loadTemplates(cfg.Templates, target)
	if err != nil {
		return nil, err
	}
	overrides := maps.Clone(codegen.Types)
	if overrides == nil {
		overrides = make(map[string]request.TypeConfig)
	}
	maps.Copy(overrides, cfg.Overrides)
	g := &generator{
		ir:     x,
		target: target,
		tmpl:   tmpl,
		types:  NewTypeFuncs(NewTypeService(target.NewMapper(codegen), overrides)),
		pkg:    codegen.StringOption(PackageOption),
		log:    cfg.Logger.With("target", target.String()),
	}
	return g.generate()
}

// loadTemplates parses the templates of a target. Templates shared by all
// drivers of a language are parsed first, so a driver can redefine them.
func loadTemplates(fsys fs.FS, t *Target) (*template.Template, error) {
	if fsys == nil {
		sub, err := fs.Sub(templates, "templates")
		if err != nil {
			return nil, &TemplateError{Cause: err}
		}
		fsys = sub
	}
	tmpl := template.New(t.String()).Funcs(Funcs())
	for _, pattern := range []string{t.Language + "/*.tmpl", t.Dir() + "/*.tmpl"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, &TemplateError{Template: pattern, Cause: err}
		}
		if len(matches) == 0 {
			continue
		}
		if tmpl, err = tmpl.ParseFS(fsys, matches...); err != nil {
			return nil, &TemplateError{Template: pattern, Cause: err}
		}
	}
	return tmpl, nil
}

type generator struct {
	ir     *ir.IR
	target *Target
	tmpl   *template.Template
	types  *TypeFuncs
	pkg    string
	log    *slog.Logger
	files  []File
	// emitted maps each output path to the template that rendered it.
	emitted map[string]string
}

func (g *generator) generate() ([]File, error) {
	for _, m := range g.ir.Models {
		err := g.render(ModelTemplate, &Context{
			Path:        g.target.ModelPath(m.Name),
			Module:      m.Path(),
			UsedTypes:   m.UsedTypes(),
			ModelModule: m,
		})
		if err != nil {
			return nil, err
		}
	}
	err := g.render(ModelInitTemplate, &Context{
		Path:   g.target.ModelEntrypointPath(),
		Module: []string{ir.ModelsModule},
	})
	if err != nil {
		return nil, err
	}
	err = g.ir.Namespace.Walk(func(n *ir.Namespace) error {
		return g.render(QueryTemplate, &Context{
			Path:      g.target.QueryPath(n.Path, n.HasChildren()),
			Module:    n.Path,
			UsedTypes: n.UsedTypes(),
			Namespace: n,
		})
	})
	if err != nil {
		return nil, err
	}
	for _, name := range g.target.Auxiliary {
		if err := g.render(name, &Context{Path: name}); err != nil {
			return nil, err
		}
	}
	return g.files, nil
}

// render executes the named template with ctx and records the output.
func (g *generator) render(name string, ctx *Context) error {
	ctx.IR, ctx.Target, ctx.Package, ctx.types = g.ir, g.target, g.pkg, g.types
	if err := g.claim(ctx.Path, name); err != nil {
		return err
	}
	t := g.tmpl.Lookup(name + ".tmpl")
	if t == nil {
		return &TemplateError{Template: name, Path: ctx.Path, Cause: fmt.Errorf("template not found in %s", g.target.Dir())}
	}
	var b bytes.Buffer
	if err := t.Execute(&b, ctx); err != nil {
		return &TemplateError{Template: name, Path: ctx.Path, Cause: err}
	}
	g.log.Debug("rendered file", "path", ctx.Path, "template", name, "bytes", b.Len())
	g.files = append(g.files, File{Path: ctx.Path, Content: b.String()})
	return nil
}

// claim reserves an output path. Paths come from schema and namespace
// names of the request, so they are checked before anything is rendered.
func (g *generator) claim(p, name string) error {
	if err := checkPath(p); err != nil {
		return err
	}
	if prev, ok := g.emitted[p]; ok {
		return &PathError{Path: p, Reason: "is rendered by both " + strconv.Quote(prev) + " and " + strconv.Quote(name)}
	}
	if g.emitted == nil {
		g.emitted = make(map[string]string)
	}
	g.emitted[p] = name
	return nil
}

// checkPath verifies p is a clean, slash separated relative path.
func checkPath(p string) error {
	switch {
	case p == "":
		return &PathError{Path: p, Reason: "is empty"}
	case strings.HasPrefix(p, "/"):
		return &PathError{Path: p, Reason: "is absolute"}
	case strings.Contains(p, "\\"):
		return &PathError{Path: p, Reason: "contains a backslash"}
	}
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "":
			return &PathError{Path: p, Reason: "has an empty segment"}
		case ".", "..":
			return &PathError{Path: p, Reason: "has a " + strconv.Quote(seg) + " segment"}
		}
	}
	return nil
}
