package types

import (
	"strings"

	"github.com/google/uuid"
)

// ContextID is the identity key of a declaration context. Two contexts
// describing the same source location are still different contexts
// unless they share an ID.
type ContextID string

// NewContextID returns a fresh random context identity.
func NewContextID() ContextID {
	return ContextID(uuid.NewString())
}

// Context locates an annotation in the analysed source.
type Context struct {
	ID        ContextID
	Kind      ContextKind
	Namespace string
	Class     string
	Property  string
	Method    string
	Filename  string
	Line      int

	// Generated marks contexts created by processing passes rather than
	// by parsing source.
	Generated bool
	Parent    *Context
}

// NewContext returns a context of the given kind with a fresh identity.
func NewContext(kind ContextKind, namespace string, class string) *Context {
	return &Context{
		ID:        NewContextID(),
		Kind:      kind,
		Namespace: namespace,
		Class:     class,
	}
}

// NewGeneratedContext returns a synthetic child of parent. The child
// reports the parent's location but is never class-level.
func NewGeneratedContext(parent *Context) *Context {
	ctx := &Context{
		ID:        NewContextID(),
		Generated: true,
		Parent:    parent,
	}
	if parent != nil {
		ctx.Namespace = parent.Namespace
		ctx.Class = parent.Class
		ctx.Filename = parent.Filename
		ctx.Line = parent.Line
	}
	return ctx
}

func (c *Context) IsClassLevel() bool {
	return c != nil && c.Kind == ContextKindClass && c.Class != ""
}

// FullyQualifiedName resolves class against the context namespace.
// A leading backslash marks a name that is already qualified. The
// result never carries a leading backslash.
func (c *Context) FullyQualifiedName(class string) string {
	class = strings.TrimSpace(class)
	if class == "" {
		return ""
	}
	if strings.HasPrefix(class, `\`) {
		return strings.TrimLeft(class, `\`)
	}
	if c == nil {
		return class
	}
	namespace := strings.Trim(strings.TrimSpace(c.Namespace), `\`)
	if namespace == "" {
		return class
	}
	return namespace + `\` + class
}

// Same reports whether both contexts carry the same identity.
func (c *Context) Same(other *Context) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.ID == other.ID
}
