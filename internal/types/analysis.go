package types

// AnalysisFile is the top-level structure of an analysis.yaml file: a
// flattened dump of the classes the static analysis found, with their
// annotations and their parent class.
type AnalysisFile struct {
	// AnalysisVersion identifies the file format version.
	AnalysisVersion string `yaml:"analysis_version"`

	Classes []ClassEntry `yaml:"classes"`
}

// ClassEntry is one class-like declaration.
type ClassEntry struct {
	Name      string      `yaml:"name"`
	Namespace string      `yaml:"namespace,omitempty"`
	Kind      ContextKind `yaml:"kind,omitempty"`

	// Extends names the direct parent. A leading backslash marks a fully
	// qualified name; otherwise it resolves against Namespace.
	Extends string `yaml:"extends,omitempty"`

	File string `yaml:"file,omitempty"`
	Line int    `yaml:"line,omitempty"`

	// Schemas are the schema annotations attached to the class itself.
	Schemas []SchemaEntry `yaml:"schemas,omitempty"`

	// Properties are the class property declarations, each with the
	// property annotation attached to it.
	Properties []PropertyEntry `yaml:"properties,omitempty"`

	Methods []MethodEntry `yaml:"methods,omitempty"`
}

// MethodEntry carries schema annotations attached to a method, such as
// inline request or response bodies.
type MethodEntry struct {
	Name    string        `yaml:"name"`
	Line    int           `yaml:"line,omitempty"`
	Schemas []SchemaEntry `yaml:"schemas,omitempty"`
}

type SchemaEntry struct {
	Schema      string `yaml:"schema,omitempty"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`

	// AllOf stays nil when the key is absent; an explicit empty list is
	// kept as an already composed schema.
	AllOf []SchemaEntry `yaml:"all_of,omitempty"`

	FieldsEntry `yaml:",inline"`
}

type PropertyEntry struct {
	Property    string `yaml:"property"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Line        int    `yaml:"line,omitempty"`

	FieldsEntry `yaml:",inline"`
}

type FieldsEntry struct {
	Ref        string          `yaml:"ref,omitempty"`
	Type       string          `yaml:"type,omitempty"`
	Format     string          `yaml:"format,omitempty"`
	Required   []string        `yaml:"required,omitempty"`
	Properties []PropertyEntry `yaml:"properties,omitempty"`
	Items      *SchemaEntry    `yaml:"items,omitempty"`
	Enum       []any           `yaml:"enum,omitempty"`
	Default    any             `yaml:"default,omitempty"`
	Example    any             `yaml:"example,omitempty"`
	Nullable   bool            `yaml:"nullable,omitempty"`
	ReadOnly   bool            `yaml:"read_only,omitempty"`
	WriteOnly  bool            `yaml:"write_only,omitempty"`
	Deprecated bool            `yaml:"deprecated,omitempty"`
	Minimum    *float64        `yaml:"minimum,omitempty"`
	Maximum    *float64        `yaml:"maximum,omitempty"`
	MinLength  *int            `yaml:"min_length,omitempty"`
	MaxLength  *int            `yaml:"max_length,omitempty"`
	Pattern    string          `yaml:"pattern,omitempty"`
}
