package adapters

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"schema-inherit/internal/ports"
	"schema-inherit/internal/shared"
	"schema-inherit/internal/types"
)

const openAPIVersion = "3.0.0"

// SchemaFileAdapter writes class schemas as the components section of
// an OpenAPI document. Property and allOf order is preserved.
type SchemaFileAdapter struct{}

func NewSchemaFileAdapter() SchemaFileAdapter {
	return SchemaFileAdapter{}
}

// WriteSchemas writes the document to path, or to stdout when path is "-".
func (a SchemaFileAdapter) WriteSchemas(path string, format types.OutputFormat, schemas []*types.Schema) error {
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is empty")
	}
	if path == "-" {
		return a.Encode(os.Stdout, format, schemas)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	file, err := os.Create(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output file: " + path).
			WithCause(err)
	}
	defer file.Close()
	if err := a.Encode(file, format, schemas); err != nil {
		return err
	}
	return file.Close()
}

func (a SchemaFileAdapter) Encode(w io.Writer, format types.OutputFormat, schemas []*types.Schema) error {
	doc, err := documentNode(schemas)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to build schema document").
			WithCause(err)
	}
	switch format {
	case types.OutputFormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode yaml").
				WithCause(err)
		}
		return enc.Close()
	case types.OutputFormatJSON:
		enc := jsontext.NewEncoder(w, jsontext.WithIndent("  "))
		if err := writeJSON(enc, doc); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode json").
				WithCause(err)
		}
		return nil
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported output format: " + string(format))
	}
}

// SchemaName is the components key of a class schema: its declared name,
// or the short class name when the schema is unnamed.
func SchemaName(schema *types.Schema) string {
	if schema.Schema != "" {
		return schema.Schema
	}
	if schema.Context == nil {
		return ""
	}
	return shared.ShortClassName(schema.Context.FullyQualifiedName(schema.Context.Class))
}

func documentNode(schemas []*types.Schema) (*yaml.Node, error) {
	components := mappingNode()
	seen := map[string]struct{}{}
	for _, schema := range schemas {
		name := SchemaName(schema)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			log.Warn().Str("schema", name).Msg("duplicate schema name, keeping first")
			continue
		}
		seen[name] = struct{}{}
		node, err := schemaNode(schema)
		if err != nil {
			return nil, err
		}
		appendPair(components, name, node)
	}

	root := mappingNode()
	appendPair(root, "openapi", stringNode(openAPIVersion))
	section := mappingNode()
	appendPair(section, "schemas", components)
	appendPair(root, "components", section)
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}, nil
}

func schemaNode(schema *types.Schema) (*yaml.Node, error) {
	node := mappingNode()
	if schema.Title != "" {
		appendPair(node, "title", stringNode(schema.Title))
	}
	if schema.Description != "" {
		appendPair(node, "description", stringNode(schema.Description))
	}
	if err := appendFields(node, schema.Fields); err != nil {
		return nil, err
	}
	if len(schema.AllOf) > 0 {
		entries := sequenceNode()
		for _, entry := range schema.AllOf {
			if entry == nil {
				continue
			}
			child, err := schemaNode(entry)
			if err != nil {
				return nil, err
			}
			entries.Content = append(entries.Content, child)
		}
		appendPair(node, "allOf", entries)
	}
	return node, nil
}

func propertyNode(property *types.Property) (*yaml.Node, error) {
	node := mappingNode()
	if property.Title != "" {
		appendPair(node, "title", stringNode(property.Title))
	}
	if property.Description != "" {
		appendPair(node, "description", stringNode(property.Description))
	}
	if err := appendFields(node, property.Fields); err != nil {
		return nil, err
	}
	return node, nil
}

func appendFields(node *yaml.Node, fields types.Fields) error {
	if fields.Ref != "" {
		appendPair(node, "$ref", stringNode(fields.Ref))
	}
	if fields.Type != "" {
		appendPair(node, "type", stringNode(fields.Type))
	}
	if fields.Format != "" {
		appendPair(node, "format", stringNode(fields.Format))
	}
	if len(fields.Required) > 0 {
		required := sequenceNode()
		for _, name := range fields.Required {
			required.Content = append(required.Content, stringNode(name))
		}
		appendPair(node, "required", required)
	}
	if len(fields.Properties) > 0 {
		properties := mappingNode()
		for _, property := range fields.Properties {
			if property == nil || property.Property == "" {
				continue
			}
			child, err := propertyNode(property)
			if err != nil {
				return err
			}
			appendPair(properties, property.Property, child)
		}
		appendPair(node, "properties", properties)
	}
	if fields.Items != nil {
		items, err := schemaNode(fields.Items)
		if err != nil {
			return err
		}
		appendPair(node, "items", items)
	}
	for _, value := range []struct {
		key   string
		value any
		set   bool
	}{
		{"enum", fields.Enum, len(fields.Enum) > 0},
		{"default", fields.Default, fields.Default != nil},
		{"example", fields.Example, fields.Example != nil},
		{"minimum", fields.Minimum, fields.Minimum != nil},
		{"maximum", fields.Maximum, fields.Maximum != nil},
		{"minLength", fields.MinLength, fields.MinLength != nil},
		{"maxLength", fields.MaxLength, fields.MaxLength != nil},
	} {
		if !value.set {
			continue
		}
		encoded := &yaml.Node{}
		if err := encoded.Encode(value.value); err != nil {
			return err
		}
		appendPair(node, value.key, encoded)
	}
	if fields.Pattern != "" {
		appendPair(node, "pattern", stringNode(fields.Pattern))
	}
	for _, flag := range []struct {
		key string
		set bool
	}{
		{"nullable", fields.Nullable},
		{"readOnly", fields.ReadOnly},
		{"writeOnly", fields.WriteOnly},
		{"deprecated", fields.Deprecated},
	} {
		if flag.set {
			appendPair(node, flag.key, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"})
		}
	}
	return nil
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func sequenceNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func stringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func appendPair(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, stringNode(key), value)
}

// writeJSON replays a yaml node tree as JSON tokens so that key order
// survives.
func writeJSON(enc *jsontext.Encoder, node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return enc.WriteToken(jsontext.Null)
		}
		return writeJSON(enc, node.Content[0])
	case yaml.AliasNode:
		return writeJSON(enc, node.Alias)
	case yaml.MappingNode:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			if err := enc.WriteToken(jsontext.String(node.Content[i].Value)); err != nil {
				return err
			}
			if err := writeJSON(enc, node.Content[i+1]); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	case yaml.SequenceNode:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, child := range node.Content {
			if err := writeJSON(enc, child); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	default:
		return enc.WriteToken(scalarToken(node))
	}
}

func scalarToken(node *yaml.Node) jsontext.Token {
	switch node.ShortTag() {
	case "!!null":
		return jsontext.Null
	case "!!bool":
		if value, err := strconv.ParseBool(node.Value); err == nil {
			return jsontext.Bool(value)
		}
	case "!!int":
		if value, err := strconv.ParseInt(node.Value, 0, 64); err == nil {
			return jsontext.Int(value)
		}
	case "!!float":
		if value, err := strconv.ParseFloat(node.Value, 64); err == nil && !math.IsInf(value, 0) && !math.IsNaN(value) {
			return jsontext.Float(value)
		}
	}
	return jsontext.String(node.Value)
}

var _ ports.SchemaWriterPort = SchemaFileAdapter{}
