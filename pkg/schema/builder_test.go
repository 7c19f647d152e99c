package schema

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestBuilderBuildEmptyObject(t *testing.T) {
	got := NewBuilder().Build()
	if got.Type != TypeObject {
		t.Errorf("Build() type = %q, want %q", got.Type, TypeObject)
	}
	if len(got.Properties) != 0 {
		t.Errorf("Build() properties = %v, want empty", got.Properties)
	}
	if got.Required != nil {
		t.Errorf("Build() required = %v, want nil (omitted when empty)", got.Required)
	}
}

func TestBuilderPrimitiveFields(t *testing.T) {
	got := NewBuilder().
		String("name", "the name", Required()).
		Integer("age", "the age").
		Number("score", "the score").
		Boolean("active", "whether active").
		Build()

	tests := []struct {
		field    string
		wantType string
	}{
		{"name", TypeString},
		{"age", TypeInteger},
		{"score", TypeNumber},
		{"active", TypeBoolean},
	}
	for _, tt := range tests {
		prop, ok := got.Properties[tt.field]
		if !ok {
			t.Fatalf("Build() missing property %q", tt.field)
		}
		if prop.Type != tt.wantType {
			t.Errorf("property %q type = %q, want %q", tt.field, prop.Type, tt.wantType)
		}
	}
	if !reflect.DeepEqual(got.Required, []string{"name"}) {
		t.Errorf("Build() required = %v, want [name]", got.Required)
	}
}

func TestBuilderConstraints(t *testing.T) {
	got := NewBuilder().
		String("format", "output format",
			Enum("json", "text"),
			Default("json"),
			Format("media-type"),
		).
		Build()

	prop := got.Properties["format"]
	if prop == nil {
		t.Fatal("Build() missing property 'format'")
	}
	if !reflect.DeepEqual(prop.Enum, []any{"json", "text"}) {
		t.Errorf("enum = %v, want [json text]", prop.Enum)
	}
	if prop.Default != "json" {
		t.Errorf("default = %v, want json", prop.Default)
	}
	if prop.Format != "media-type" {
		t.Errorf("format = %q, want media-type", prop.Format)
	}
}

func TestBuilderArrayAndNestedObject(t *testing.T) {
	address := NewBuilder().
		String("city", "the city", Required()).
		String("zip", "the postal code")

	got := NewBuilder().
		Array("tags", "free-form labels", StringItem("one label")).
		Object("address", "where it lives", address, Required()).
		Build()

	tags := got.Properties["tags"]
	if tags == nil || tags.Type != TypeArray {
		t.Fatalf("tags = %+v, want array node", tags)
	}
	if tags.Items == nil || tags.Items.Type != TypeString {
		t.Errorf("tags items = %+v, want string node", tags.Items)
	}

	addr := got.Properties["address"]
	if addr == nil || addr.Type != TypeObject {
		t.Fatalf("address = %+v, want object node", addr)
	}
	if addr.Description != "where it lives" {
		t.Errorf("address description = %q", addr.Description)
	}
	if _, ok := addr.Properties["city"]; !ok {
		t.Error("address is missing nested property 'city'")
	}
	if !reflect.DeepEqual(addr.Required, []string{"city"}) {
		t.Errorf("address required = %v, want [city]", addr.Required)
	}
	if !reflect.DeepEqual(got.Required, []string{"address"}) {
		t.Errorf("root required = %v, want [address]", got.Required)
	}
}

func TestBuilderIsDeterministic(t *testing.T) {
	build := func() []byte {
		n := NewBuilder().
			String("b", "second", Required()).
			String("a", "first").
			Integer("c", "third", Required()).
			Build()
		out, err := json.Marshal(n)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return out
	}
	first := build()
	second := build()
	if string(first) != string(second) {
		t.Errorf("identical builder calls produced different output:\n%s\n%s", first, second)
	}
}

func TestBuilderValueSemantics(t *testing.T) {
	// a shared prefix must not leak fields between derived builders
	base := NewBuilder().String("common", "shared field")
	left := base.String("left", "only on the left")
	right := base.Integer("right", "only on the right")

	l := left.Build()
	r := right.Build()

	if _, ok := l.Properties["right"]; ok {
		t.Error("left builder leaked the 'right' field")
	}
	if _, ok := r.Properties["left"]; ok {
		t.Error("right builder leaked the 'left' field")
	}
	if len(base.Build().Properties) != 1 {
		t.Error("base builder was mutated by derived builders")
	}
}

func TestBuilderDuplicateFieldLastWriteWins(t *testing.T) {
	got := NewBuilder().
		String("field", "first definition", Required()).
		Integer("field", "second definition").
		Build()

	prop := got.Properties["field"]
	if prop == nil || prop.Type != TypeInteger {
		t.Fatalf("property = %+v, want the second (integer) definition", prop)
	}
	if len(got.Required) != 0 {
		t.Errorf("required = %v, want empty after the field was redefined as optional", got.Required)
	}
}

func TestBuilderRequiredIsSubsetOfProperties(t *testing.T) {
	got := NewBuilder().
		String("a", "", Required()).
		String("b", "").
		Build()
	for _, name := range got.Required {
		if _, ok := got.Properties[name]; !ok {
			t.Errorf("required name %q is not a property", name)
		}
	}
}
