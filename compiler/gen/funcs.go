package gen

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"text/template"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/pgc/compiler/ir"
)

// Funcs returns the functions available to the templates. Each call
// returns a new map with its own regular expression cache.
func Funcs() template.FuncMap {
	var re regexCache
	return template.FuncMap{
		"camel":           camel,
		"pascal":          pascal,
		"snake":           snake,
		"kebab":           kebab,
		"screamingSnake":  screamingSnake,
		"title":           title,
		"quote":           strconv.Quote,
		"hasPrefix":       strings.HasPrefix,
		"trimPrefix":      strings.TrimPrefix,
		"regexReplace":    re.replace,
		"join":            strings.Join,
		"add":             add,
		"isNullable":      ir.IsNullable,
		"isUserDefined":   isUserDefined,
		"isArray":         isArray,
		"nullable":        ir.MakeNullable,
		"array":           arrayOf,
		"unwrap":          ir.Unwrap,
		"typeParser":      Parser,
		"requiresParsing": RequiresParsing,
	}
}

// camel converts a name to lower camel case: "user_info" -> "userInfo".
func camel(s string) string {
	if s == "" {
		return ""
	}
	return inflect.CamelizeDownFirst(s)
}

// pascal converts a name to upper camel case: "user_info" -> "UserInfo".
func pascal(s string) string {
	if s == "" {
		return ""
	}
	return inflect.Camelize(s)
}

func snake(s string) string {
	return inflect.Underscore(s)
}

func kebab(s string) string {
	return inflect.Dasherize(s)
}

func screamingSnake(s string) string {
	return strings.ToUpper(snake(s))
}

func title(s string) string {
	return cases.Title(language.English).String(s)
}

func add(a, b int) int { return a + b }

func isUserDefined(t ir.Type) bool {
	_, ok := ir.Unwrap(t).(ir.UserDefined)
	return ok
}

func isArray(t ir.Type) bool {
	_, ok := ir.Unwrap(t).(ir.Array)
	return ok
}

func arrayOf(t ir.Type) ir.Type {
	return ir.MakeArray(t, 1)
}

// regexCache compiles each pattern once per function map.
type regexCache struct {
	mu sync.Mutex
	re map[string]*regexp.Regexp
}

// replace replaces the matches of pattern in s. The replacement may refer
// to submatches as in regexp.Regexp.ReplaceAllString.
func (c *regexCache) replace(s, pattern, replacement string) (string, error) {
	c.mu.Lock()
	re, ok := c.re[pattern]
	if !ok {
		var err error
		if re, err = regexp.Compile(pattern); err != nil {
			c.mu.Unlock()
			return "", err
		}
		if c.re == nil {
			c.re = make(map[string]*regexp.Regexp)
		}
		c.re[pattern] = re
	}
	c.mu.Unlock()
	return re.ReplaceAllString(s, replacement), nil
}
