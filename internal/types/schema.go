package types

// Annotation is implemented by every annotation the analysis attaches
// to a declaration context.
type Annotation interface {
	AnnotationContext() *Context
}

// Fields holds the schema fields a composition pass may relocate. The
// zero value of every field is its default; a Fields value equal to
// Fields{} carries no declarations.
type Fields struct {
	Ref        string
	Type       string
	Format     string
	Required   []string
	Properties []*Property
	Items      *Schema
	Enum       []any
	Default    any
	Example    any
	Nullable   bool
	ReadOnly   bool
	WriteOnly  bool
	Deprecated bool
	Minimum    *float64
	Maximum    *float64
	MinLength  *int
	MaxLength  *int
	Pattern    string
}

// IsZero reports whether every field still holds its default.
func (f Fields) IsZero() bool {
	return f.Ref == "" &&
		f.Type == "" &&
		f.Format == "" &&
		len(f.Required) == 0 &&
		len(f.Properties) == 0 &&
		f.Items == nil &&
		len(f.Enum) == 0 &&
		f.Default == nil &&
		f.Example == nil &&
		!f.Nullable &&
		!f.ReadOnly &&
		!f.WriteOnly &&
		!f.Deprecated &&
		f.Minimum == nil &&
		f.Maximum == nil &&
		f.MinLength == nil &&
		f.MaxLength == nil &&
		f.Pattern == ""
}

// PropertyNames returns the names of the declared properties in order,
// skipping unnamed ones.
func (f Fields) PropertyNames() []string {
	names := make([]string, 0, len(f.Properties))
	for _, property := range f.Properties {
		if property != nil && property.Property != "" {
			names = append(names, property.Property)
		}
	}
	return names
}

// Schema is a schema annotation. Schema (the name) makes it addressable
// from other schemas through a components reference.
type Schema struct {
	Context     *Context
	Schema      string
	Title       string
	Description string

	// AllOf is nil until the schema is composed.
	AllOf []*Schema

	Fields
}

func (s *Schema) AnnotationContext() *Context {
	return s.Context
}

func (s *Schema) IsNamed() bool {
	return s != nil && s.Schema != ""
}

// Property is a property annotation. Its identity for merging is the
// property name; an empty name means the name was never set.
type Property struct {
	Property    string
	Context     *Context
	Title       string
	Description string

	Fields
}

func (p *Property) AnnotationContext() *Context {
	return p.Context
}

// DeclaredProperty is a property declared on a class, with the
// annotations attached to the declaration.
type DeclaredProperty struct {
	Context     *Context
	Annotations []Annotation
}

// ClassRecord is a class as seen from the analysis: its context, its
// declared properties and the annotations attached to the class itself.
type ClassRecord struct {
	Context     *Context
	Properties  []DeclaredProperty
	Annotations []Annotation
}

// NamedSchema returns the first annotation of the ancestor that is a
// named schema, if any.
func (c ClassRecord) NamedSchema() (*Schema, bool) {
	for _, annotation := range c.Annotations {
		if schema, ok := annotation.(*Schema); ok && schema.IsNamed() {
			return schema, true
		}
	}
	return nil, false
}

var (
	_ Annotation = (*Schema)(nil)
	_ Annotation = (*Property)(nil)
)
