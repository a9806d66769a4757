package types

type ContextKind string

const (
	ContextKindNone      ContextKind = ""
	ContextKindClass     ContextKind = "class"
	ContextKindInterface ContextKind = "interface"
	ContextKindTrait     ContextKind = "trait"
	ContextKindProperty  ContextKind = "property"
	ContextKindMethod    ContextKind = "method"
)

type OutputFormat string

const (
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatJSON OutputFormat = "json"
)

// InheritanceState tracks where a class schema ended up after a pass.
// Collected is transient; the three remaining states are terminal.
type InheritanceState string

const (
	InheritanceStateUnprocessed      InheritanceState = "unprocessed"
	InheritanceStateCollected        InheritanceState = "collected"
	InheritanceStateNoAncestorAction InheritanceState = "no_ancestor_action"
	InheritanceStatePropertiesMerged InheritanceState = "properties_merged"
	InheritanceStateComposed         InheritanceState = "composed"
)
