// Package schema constructs JSON-Schema-like descriptors for tool inputs
// and outputs. Tool authors compose an object schema field by field with
// Builder and hand the Build() output to the registry.
package schema

// Node is a single schema node. An object node carries Properties (and
// optionally Required, a subset of the property names); an array node
// carries Items; primitive nodes carry only their constraints.
type Node struct {
	Type        string           `json:"type"`
	Description string           `json:"description,omitempty"`
	Format      string           `json:"format,omitempty"`
	Enum        []any            `json:"enum,omitempty"`
	Default     any              `json:"default,omitempty"`
	Items       *Node            `json:"items,omitempty"`
	Properties  map[string]*Node `json:"properties,omitempty"`
	Required    []string         `json:"required,omitempty"`
}

// Schema type names. These follow JSON Schema, not Go types.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
	TypeObject  = "object"
)

// StringItem returns a string node for use as an array item schema.
func StringItem(description string) *Node {
	return &Node{Type: TypeString, Description: description}
}

// IntegerItem returns an integer node for use as an array item schema.
func IntegerItem(description string) *Node {
	return &Node{Type: TypeInteger, Description: description}
}

// NumberItem returns a number node for use as an array item schema.
func NumberItem(description string) *Node {
	return &Node{Type: TypeNumber, Description: description}
}

// BooleanItem returns a boolean node for use as an array item schema.
func BooleanItem(description string) *Node {
	return &Node{Type: TypeBoolean, Description: description}
}

// ObjectItem builds the nested builder and returns the resulting object node
// for use as an array item schema.
func ObjectItem(nested Builder, description string) *Node {
	n := nested.Build()
	n.Description = description
	return n
}

// ArrayItem returns an array node wrapping the given item schema, for arrays
// of arrays.
func ArrayItem(items *Node, description string) *Node {
	return &Node{Type: TypeArray, Description: description, Items: items}
}
