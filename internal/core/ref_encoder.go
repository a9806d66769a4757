package core

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// SchemaRefPrefix is the JSON pointer to the components schema map.
const SchemaRefPrefix = "#/components/schemas/"

var refEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// RefEncode escapes a raw name for use as a JSON pointer segment.
func RefEncode(raw string) string {
	return refEscaper.Replace(raw)
}

// EncodeSchemaRef returns the components reference of a named schema.
func EncodeSchemaRef(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("cannot encode reference for unnamed schema")
	}
	return SchemaRefPrefix + RefEncode(name), nil
}
