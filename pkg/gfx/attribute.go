package gfx

import "fmt"

// Attribute is a named vertex attribute of size components, e.g. a position
// (x,y,z) is NewAttribute("position", 3).
type Attribute struct {
	name string
	size int
}

// NewAttribute panics if size is not positive.
func NewAttribute(name string, size int) Attribute {
	if size < 1 {
		panic(fmt.Sprintf("attribute %q: size must be at least 1, got %d", name, size))
	}
	return Attribute{name: name, size: size}
}

func (a Attribute) Name() string {
	return a.name
}

func (a Attribute) Size() int {
	return a.size
}

// Equal reports whether a and other have the same name and size.
func (a Attribute) Equal(other Attribute) bool {
	return a.name == other.name && a.size == other.size
}

func (a Attribute) String() string {
	return fmt.Sprintf("Attribute(%q, size:%d)", a.name, a.size)
}

func containsAttribute(attrs []Attribute, a Attribute) bool {
	for _, e := range attrs {
		if e.Equal(a) {
			return true
		}
	}
	return false
}
