package ir

import (
	"fmt"
	"strconv"
)

// ParseType parses the display form of a type as returned by Type.String.
func ParseType(s string) (Type, error) {
	p := &typeParser{src: s}
	t, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.space()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected trailing input %q", p.src[p.pos:])
	}
	return t, nil
}

// MustParseType is like ParseType but panics on error. It simplifies
// tables of types in tests and templates.
func MustParseType(s string) Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) errorf(format string, args ...any) error {
	return fmt.Errorf("ir: parse type %q at offset %d: %s", p.src, p.pos, fmt.Sprintf(format, args...))
}

func (p *typeParser) space() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) ident() string {
	p.space()
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

func (p *typeParser) expect(c byte) error {
	p.space()
	if p.pos >= len(p.src) || p.src[p.pos] != c {
		return p.errorf("expected %q", c)
	}
	p.pos++
	return nil
}

func (p *typeParser) peek() byte {
	p.space()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *typeParser) quoted() (string, error) {
	p.space()
	q, err := strconv.QuotedPrefix(p.src[p.pos:])
	if err != nil {
		return "", p.errorf("expected quoted string")
	}
	p.pos += len(q)
	return strconv.Unquote(q)
}

func (p *typeParser) parse() (Type, error) {
	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected type")
	}
	if p.peek() != '(' {
		k, ok := LookupBuiltin(name)
		if !ok {
			return nil, p.errorf("unknown type %q", name)
		}
		return k, nil
	}
	p.pos++
	var (
		t   Type
		err error
	)
	switch name {
	case "nullable":
		t, err = p.nullable()
	case "array":
		t, err = p.array()
	case "other":
		t, err = p.other()
	case "user":
		t, err = p.user()
	default:
		return nil, p.errorf("unknown type constructor %q", name)
	}
	if err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *typeParser) nullable() (Type, error) {
	elem, err := p.parse()
	if err != nil {
		return nil, err
	}
	if IsNullable(elem) {
		return nil, p.errorf("nested nullable type")
	}
	return Nullable{Elem: elem}, nil
}

func (p *typeParser) array() (Type, error) {
	elem, err := p.parse()
	if err != nil {
		return nil, err
	}
	if _, ok := elem.(Array); ok {
		return nil, p.errorf("nested array type")
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	p.space()
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	dim, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return nil, p.errorf("invalid array dimension")
	}
	if dim < 1 {
		return nil, p.errorf("array dimension %d is below 1", dim)
	}
	return Array{Elem: elem, Dim: dim}, nil
}

func (p *typeParser) other() (Type, error) {
	schema, err := p.quoted()
	if err != nil {
		return nil, err
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	name, err := p.quoted()
	if err != nil {
		return nil, err
	}
	return Other{Schema: schema, Name: name}, nil
}

func (p *typeParser) user() (Type, error) {
	path := []string{}
	for p.peek() != ';' {
		if len(path) > 0 {
			if err := p.expect(','); err != nil {
				return nil, err
			}
		}
		seg, err := p.quoted()
		if err != nil {
			return nil, err
		}
		path = append(path, seg)
	}
	p.pos++
	name, err := p.quoted()
	if err != nil {
		return nil, err
	}
	return UserDefined{ModulePath: path, Name: name}, nil
}
