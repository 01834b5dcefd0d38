package ir

// Field is a named, typed entry of Fields.
type Field struct {
	Name string
	Type Type
}

// Fields is an insertion-ordered map from names to types. Setting an
// existing name replaces its type and keeps its position.
type Fields struct {
	list  []Field
	index map[string]int
}

// Set inserts or replaces the type of name.
func (f *Fields) Set(name string, t Type) {
	if i, ok := f.index[name]; ok {
		f.list[i].Type = t
		return
	}
	if f.index == nil {
		f.index = make(map[string]int)
	}
	f.index[name] = len(f.list)
	f.list = append(f.list, Field{Name: name, Type: t})
}

// Get returns the type of name.
func (f *Fields) Get(name string) (Type, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	return f.list[i].Type, true
}

// Len returns the number of fields.
func (f *Fields) Len() int { return len(f.list) }

// All returns the fields in insertion order.
func (f *Fields) All() []Field { return f.list }

// Names returns the field names in insertion order.
func (f *Fields) Names() []string {
	names := make([]string, len(f.list))
	for i, e := range f.list {
		names[i] = e.Name
	}
	return names
}
