package schema

// field is one property recorded by the builder, in registration order.
type field struct {
	name     string
	node     *Node
	required bool
}

// Builder incrementally composes an object schema. It is a plain value:
// every method returns an updated copy, so a partially-built Builder can be
// reused as a template without the extensions leaking back into it.
// Build is the only terminal operation.
type Builder struct {
	fields []field
}

// NewBuilder returns an empty object schema builder.
func NewBuilder() Builder {
	return Builder{}
}

// Option customizes a single field added to a Builder.
type Option func(*field)

// Required marks the field as mandatory in the built schema.
func Required() Option {
	return func(f *field) { f.required = true }
}

// Format sets the field's format constraint (eg "uri", "date-time").
func Format(format string) Option {
	return func(f *field) { f.node.Format = format }
}

// Enum restricts the field to the given set of values.
func Enum(values ...any) Option {
	return func(f *field) { f.node.Enum = values }
}

// Default records the value assumed when the caller omits the field.
func Default(value any) Option {
	return func(f *field) { f.node.Default = value }
}

// String adds a string property.
func (b Builder) String(name, description string, opts ...Option) Builder {
	return b.add(name, &Node{Type: TypeString, Description: description}, opts)
}

// Integer adds an integer property.
func (b Builder) Integer(name, description string, opts ...Option) Builder {
	return b.add(name, &Node{Type: TypeInteger, Description: description}, opts)
}

// Number adds a floating-point number property.
func (b Builder) Number(name, description string, opts ...Option) Builder {
	return b.add(name, &Node{Type: TypeNumber, Description: description}, opts)
}

// Boolean adds a boolean property.
func (b Builder) Boolean(name, description string, opts ...Option) Builder {
	return b.add(name, &Node{Type: TypeBoolean, Description: description}, opts)
}

// Array adds an array property whose elements conform to the items node.
func (b Builder) Array(name, description string, items *Node, opts ...Option) Builder {
	return b.add(name, &Node{Type: TypeArray, Description: description, Items: items}, opts)
}

// Object adds a nested object property built from another Builder.
func (b Builder) Object(name, description string, nested Builder, opts ...Option) Builder {
	n := nested.Build()
	n.Description = description
	return b.add(name, n, opts)
}

// add appends the field to a copy of the builder. The three-index slice
// expression caps the capacity so sibling builders derived from the same
// prefix never alias each other's backing array.
func (b Builder) add(name string, n *Node, opts []Option) Builder {
	f := field{name: name, node: n}
	for _, opt := range opts {
		opt(&f)
	}
	b.fields = append(b.fields[:len(b.fields):len(b.fields)], f)
	return b
}

// Build yields the object schema accumulated so far. The required list keeps
// registration order and is omitted entirely when empty. Adding the same
// property name twice keeps the last definition.
func (b Builder) Build() *Node {
	root := &Node{
		Type:       TypeObject,
		Properties: make(map[string]*Node, len(b.fields)),
	}
	for _, f := range b.fields {
		if _, seen := root.Properties[f.name]; seen {
			// last write wins; drop the stale required entry so it is not duplicated
			root.Required = removeName(root.Required, f.name)
		}
		root.Properties[f.name] = f.node
		if f.required {
			root.Required = append(root.Required, f.name)
		}
	}
	return root
}

func removeName(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
