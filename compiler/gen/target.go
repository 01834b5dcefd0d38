package gen

import (
	"slices"
	"strings"

	"github.com/syssam/pgc/compiler/request"
)

// Target describes a supported language and driver pair: where its files
// go, which templates render them and how its types are mapped.
type Target struct {
	Language string
	Driver   string
	// Extension of the query and model files.
	Extension string
	// QueryEntrypoint is the file name of namespaces with children.
	QueryEntrypoint string
	// ModelEntrypoint is the file name of the models directory entrypoint.
	ModelEntrypoint string
	// Options that must be present in the codegen options.
	Options []string
	// Auxiliary lists extra files rendered with the whole IR. Each is
	// rendered from the template of the same name.
	Auxiliary []string
	// NewMapper returns the type mapper of the target.
	NewMapper func(*request.Codegen) Mapper
}

// targets holds the supported targets.
var targets = []*Target{
	{
		Language:        "python",
		Driver:          "asyncpg",
		Extension:       "py",
		QueryEntrypoint: "__init__.py",
		ModelEntrypoint: "__init__.py",
		Options:         []string{PackageOption},
		NewMapper:       newAsyncpgMapper,
	},
	{
		Language:        "python",
		Driver:          "psycopg",
		Extension:       "py",
		QueryEntrypoint: "__init__.py",
		ModelEntrypoint: "__init__.py",
		Options:         []string{PackageOption},
		NewMapper:       newPsycopgMapper,
	},
	{
		Language:        "typescript",
		Driver:          "postgres",
		Extension:       "ts",
		QueryEntrypoint: "queries.ts",
		ModelEntrypoint: "models.ts",
		Auxiliary:       []string{"parsers.ts"},
		NewMapper:       newTypescriptMapper,
	},
}

// LookupTarget returns the target of the given language and driver. It
// fails with an *UnsupportedLanguageError or an *UnsupportedDriverError.
func LookupTarget(language, driver string) (*Target, error) {
	known := false
	for _, t := range targets {
		if t.Language != language {
			continue
		}
		known = true
		if t.Driver == driver {
			return t, nil
		}
	}
	if known {
		return nil, &UnsupportedDriverError{Language: language, Driver: driver}
	}
	return nil, &UnsupportedLanguageError{Language: language}
}

// Targets returns all supported targets.
func Targets() []*Target {
	return slices.Clone(targets)
}

// Drivers returns the drivers supported for a language.
func Drivers(language string) []string {
	var drivers []string
	for _, t := range targets {
		if t.Language == language {
			drivers = append(drivers, t.Driver)
		}
	}
	return drivers
}

// String implements the fmt.Stringer interface.
func (t *Target) String() string { return t.Language + "/" + t.Driver }

// Dir returns the directory of the target templates.
func (t *Target) Dir() string { return t.Language + "/" + t.Driver }

// CheckOptions verifies the codegen configuration carries every option
// required by the target.
func (t *Target) CheckOptions(c *request.Codegen) error {
	for _, opt := range t.Options {
		if _, ok := c.Option(opt); !ok {
			return &MissingOptionError{Language: t.Language, Option: opt}
		}
	}
	return nil
}

// ModelPath returns the output path of the model module of a schema.
func (t *Target) ModelPath(schema string) string {
	return "models/" + schema + "." + t.Extension
}

// ModelEntrypointPath returns the output path of the models entrypoint.
func (t *Target) ModelEntrypointPath() string {
	return "models/" + t.ModelEntrypoint
}

// QueryPath returns the output path of the namespace at the given path.
// The root namespace renders at the query entrypoint.
func (t *Target) QueryPath(path []string, hasChildren bool) string {
	dir := strings.Join(path, "/")
	switch {
	case len(path) == 0:
		return t.QueryEntrypoint
	case hasChildren:
		return dir + "/" + t.QueryEntrypoint
	default:
		return dir + "." + t.Extension
	}
}
