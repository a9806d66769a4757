package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"schema-inherit/internal/ports"
	"schema-inherit/internal/types"
)

// AnalysisFileAdapter loads analysis.yaml files into an AnalysisGraph.
// A directory input is scanned for analysis files, which are merged
// into one graph in lexical path order.
type AnalysisFileAdapter struct {
	Workspace ports.WorkspacePort
}

func NewAnalysisFileAdapter() AnalysisFileAdapter {
	return AnalysisFileAdapter{Workspace: NewWorkspaceAdapter()}
}

func (a AnalysisFileAdapter) LoadAnalysis(path string) (ports.AnalysisGraphPort, error) {
	graph, err := a.Load(path)
	if err != nil {
		return nil, err
	}
	return graph, nil
}

func (a AnalysisFileAdapter) Load(path string) (*AnalysisGraph, error) {
	paths, err := a.inputFiles(path)
	if err != nil {
		return nil, err
	}
	merged := types.AnalysisFile{}
	for _, filePath := range paths {
		file, err := readAnalysisFile(filePath)
		if err != nil {
			return nil, err
		}
		if merged.AnalysisVersion == "" {
			merged.AnalysisVersion = file.AnalysisVersion
		}
		merged.Classes = append(merged.Classes, file.Classes...)
	}
	graph, err := BuildAnalysisGraph(merged)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("path", path).
		Int("files", len(paths)).
		Int("classes", len(merged.Classes)).
		Int("schemas", len(graph.schemas)).
		Msg("analysis loaded")
	return graph, nil
}

func (a AnalysisFileAdapter) inputFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read analysis file: " + path).
			WithCause(err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	workspace := a.Workspace
	if workspace == nil {
		workspace = NewWorkspaceAdapter()
	}
	paths, err := workspace.FindAnalysisFiles(path)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no analysis files found in " + path)
	}
	return paths, nil
}

func readAnalysisFile(path string) (types.AnalysisFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.AnalysisFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read analysis file: " + path).
			WithCause(err)
	}
	var file types.AnalysisFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return types.AnalysisFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse analysis file: " + path).
			WithCause(err)
	}
	if strings.TrimSpace(file.AnalysisVersion) == "" {
		return types.AnalysisFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("analysis file missing analysis_version: " + path)
	}
	return file, nil
}

// BuildAnalysisGraph turns a decoded analysis file into a graph. Every
// class gets one context shared by all of its class-level schemas.
func BuildAnalysisGraph(file types.AnalysisFile) (*AnalysisGraph, error) {
	graph := NewAnalysisGraph()
	for idx, entry := range file.Classes {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("class entry %d has no name", idx))
		}
		kind := entry.Kind
		if kind == types.ContextKindNone {
			kind = types.ContextKindClass
		}
		if kind != types.ContextKindClass && kind != types.ContextKindInterface && kind != types.ContextKindTrait {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("class '%s' has invalid kind '%s'", name, kind))
		}

		classCtx := types.NewContext(kind, entry.Namespace, name)
		classCtx.Filename = entry.File
		classCtx.Line = entry.Line

		decl := ClassDeclaration{
			Context: classCtx,
			Extends: classCtx.FullyQualifiedName(entry.Extends),
		}
		for _, schemaEntry := range entry.Schemas {
			decl.Annotations = append(decl.Annotations, toSchema(schemaEntry, classCtx))
		}
		for _, propertyEntry := range entry.Properties {
			propertyCtx := types.NewContext(types.ContextKindProperty, entry.Namespace, name)
			propertyCtx.Property = propertyEntry.Property
			propertyCtx.Filename = entry.File
			propertyCtx.Line = propertyEntry.Line
			propertyCtx.Parent = classCtx
			decl.Properties = append(decl.Properties, types.DeclaredProperty{
				Context:     propertyCtx,
				Annotations: []types.Annotation{toProperty(propertyEntry, propertyCtx)},
			})
		}
		if err := graph.AddClass(decl); err != nil {
			return nil, err
		}

		for _, method := range entry.Methods {
			methodCtx := types.NewContext(types.ContextKindMethod, entry.Namespace, name)
			methodCtx.Method = method.Name
			methodCtx.Filename = entry.File
			methodCtx.Line = method.Line
			methodCtx.Parent = classCtx
			for _, schemaEntry := range method.Schemas {
				graph.AddSchema(toSchema(schemaEntry, methodCtx))
			}
		}
	}
	return graph, nil
}

func toSchema(entry types.SchemaEntry, ctx *types.Context) *types.Schema {
	schema := &types.Schema{
		Context:     ctx,
		Schema:      strings.TrimSpace(entry.Schema),
		Title:       entry.Title,
		Description: entry.Description,
		Fields:      toFields(entry.FieldsEntry, ctx),
	}
	if entry.AllOf != nil {
		schema.AllOf = make([]*types.Schema, 0, len(entry.AllOf))
		for _, sub := range entry.AllOf {
			schema.AllOf = append(schema.AllOf, toSchema(sub, nestedContext(ctx)))
		}
	}
	return schema
}

func toProperty(entry types.PropertyEntry, ctx *types.Context) *types.Property {
	return &types.Property{
		Property:    strings.TrimSpace(entry.Property),
		Context:     ctx,
		Title:       entry.Title,
		Description: entry.Description,
		Fields:      toFields(entry.FieldsEntry, ctx),
	}
}

func toFields(entry types.FieldsEntry, ctx *types.Context) types.Fields {
	fields := types.Fields{
		Ref:        strings.TrimSpace(entry.Ref),
		Type:       entry.Type,
		Format:     entry.Format,
		Required:   entry.Required,
		Enum:       entry.Enum,
		Default:    entry.Default,
		Example:    entry.Example,
		Nullable:   entry.Nullable,
		ReadOnly:   entry.ReadOnly,
		WriteOnly:  entry.WriteOnly,
		Deprecated: entry.Deprecated,
		Minimum:    entry.Minimum,
		Maximum:    entry.Maximum,
		MinLength:  entry.MinLength,
		MaxLength:  entry.MaxLength,
		Pattern:    entry.Pattern,
	}
	for _, property := range entry.Properties {
		propertyCtx := nestedContext(ctx)
		propertyCtx.Kind = types.ContextKindProperty
		propertyCtx.Property = property.Property
		fields.Properties = append(fields.Properties, toProperty(property, propertyCtx))
	}
	if entry.Items != nil {
		fields.Items = toSchema(*entry.Items, nestedContext(ctx))
	}
	return fields
}

// nestedContext anchors an authored annotation nested inside another
// one. It shares the location of its parent but is never class-level.
func nestedContext(parent *types.Context) *types.Context {
	return &types.Context{
		ID:        types.NewContextID(),
		Namespace: parent.Namespace,
		Class:     parent.Class,
		Filename:  parent.Filename,
		Line:      parent.Line,
		Parent:    parent,
	}
}

var _ ports.AnalysisSourcePort = AnalysisFileAdapter{}
