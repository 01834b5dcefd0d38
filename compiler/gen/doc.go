// Package gen renders the intermediate representation of a request into
// the source files of a target language.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	request.Request
//	        ↓
//	   ir.Build (models, methods, namespace tree)
//	        ↓
//	   Target (language + driver) and its Mapper
//	        ↓
//	   TypeService (wrapper recursion + type overrides)
//	        ↓
//	   templates/{language}/{driver}/*.tmpl
//	        ↓
//	   []File
//
// # Targets
//
// The supported targets form a closed table:
//
//   - python/asyncpg: dataclass models and an asyncpg Queries class.
//   - python/psycopg: the same models with psycopg named placeholders.
//   - typescript/postgres: interfaces, query functions and runtime parsers.
//
// Python targets require the "package" option, the import root of the
// generated code.
//
// # Files
//
// Generate emits, in order:
//
//   - models/{schema}.{ext} for every schema of the catalog, by schema name.
//   - models/{model entrypoint}, re-exporting every schema module.
//   - one file per namespace in pre-order. The root namespace renders at the
//     query entrypoint, namespaces with children at {path}/{entrypoint} and
//     leaves at {path}.{ext}.
//   - the auxiliary files of the target, such as parsers.ts.
//
// # Templates
//
// Templates are executed with a *Context. Besides its methods, the
// functions returned by Funcs are available:
//
//	{{ pascal .Name }}                         // user_info -> UserInfo
//	{{ $.Annotation .Type }}                   // int | None
//	{{ regexReplace .Query.Query `\$(\d+)` "%(p${1})s" }}
//	{{ if requiresParsing .Type }}{{ typeParser .Type }}{{ end }}
//
// Custom templates can replace the bundled ones with WithTemplates.
//
// # Errors
//
// Errors returned by Generate can be inspected with IsUnsupportedTarget,
// IsMissingOptionError, IsPathError, IsTemplateError and IsConfigError.
// Output paths are derived from schema and namespace names; a path that is
// absolute, leaves the output root or is emitted twice fails with a
// PathError before any file is returned.
package gen
