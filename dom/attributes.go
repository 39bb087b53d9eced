package dom

import "strings"

// Attribute is a single attribute. Namespace is empty for HTML attributes
// and carries the namespace URL for adjusted foreign attributes.
type Attribute struct {
	Namespace string
	Name      string
	Value     string
}

// Attributes is an ordered attribute collection. Names are unique per
// element; the tokenizer enforces first-occurrence-wins before the
// collection is built.
type Attributes struct {
	items []Attribute
}

// NewAttributes creates an empty collection.
func NewAttributes() *Attributes {
	return &Attributes{}
}

// Get returns the value of an HTML attribute (case-insensitive lookup).
func (a *Attributes) Get(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, attr := range a.items {
		if attr.Namespace == "" && strings.ToLower(attr.Name) == lower {
			return attr.Value, true
		}
	}
	return "", false
}

// GetNS returns the value of a namespaced attribute.
func (a *Attributes) GetNS(namespace, name string) (string, bool) {
	for _, attr := range a.items {
		if attr.Namespace == namespace && attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Set sets or updates an HTML attribute. Callers pass lowercase names; the
// tokenizer already lowercases them.
func (a *Attributes) Set(name, value string) {
	a.SetNS("", strings.ToLower(name), value)
}

// SetNS sets or updates a namespaced attribute.
func (a *Attributes) SetNS(namespace, name, value string) {
	for i := range a.items {
		if a.items[i].Namespace == namespace && strings.EqualFold(a.items[i].Name, name) {
			a.items[i].Value = value
			return
		}
	}
	a.items = append(a.items, Attribute{Namespace: namespace, Name: name, Value: value})
}

// Has reports whether an HTML attribute exists.
func (a *Attributes) Has(name string) bool {
	_, found := a.Get(name)
	return found
}

// HasNS reports whether a namespaced attribute exists.
func (a *Attributes) HasNS(namespace, name string) bool {
	_, found := a.GetNS(namespace, name)
	return found
}

// All returns the attributes in insertion order.
func (a *Attributes) All() []Attribute {
	out := make([]Attribute, len(a.items))
	copy(out, a.items)
	return out
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	return len(a.items)
}

// Clone copies the collection.
func (a *Attributes) Clone() *Attributes {
	clone := &Attributes{items: make([]Attribute, len(a.items))}
	copy(clone.items, a.items)
	return clone
}

// Signature returns an order-independent fingerprint of the HTML
// attributes, used to compare formatting elements for identity.
func (a *Attributes) Signature() string {
	if len(a.items) == 0 {
		return ""
	}
	names := make([]string, 0, len(a.items))
	values := make(map[string]string, len(a.items))
	for _, attr := range a.items {
		if attr.Namespace != "" {
			continue
		}
		names = append(names, attr.Name)
		values[attr.Name] = attr.Value
	}
	sortStrings(names)
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(values[name])
		sb.WriteByte(0)
	}
	return sb.String()
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
