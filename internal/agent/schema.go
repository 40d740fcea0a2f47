package agent

import (
	"github.com/google/generative-ai-go/genai"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func buildGeminiTools(tools []*mcp.Tool) []*genai.Tool {
	var out []*genai.Tool
	for _, tool := range tools {
		declaration := &genai.FunctionDeclaration{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  convertSchema(tool.InputSchema),
		}
		out = append(out, &genai.Tool{FunctionDeclarations: []*genai.FunctionDeclaration{declaration}})
	}
	return out
}

// convertSchema maps a decoded JSON Schema onto the Gemini subset
func convertSchema(schema any) *genai.Schema {
	schemaMap, ok := schema.(map[string]any)
	if !ok {
		return &genai.Schema{Type: genai.TypeObject}
	}

	result := &genai.Schema{
		Type: schemaType(schemaMap["type"]),
	}
	if desc, ok := schemaMap["description"].(string); ok {
		result.Description = desc
	}

	if required, ok := schemaMap["required"].([]any); ok {
		for _, req := range required {
			if reqStr, ok := req.(string); ok {
				result.Required = append(result.Required, reqStr)
			}
		}
	}

	if properties, ok := schemaMap["properties"].(map[string]any); ok {
		result.Properties = make(map[string]*genai.Schema, len(properties))
		for name, prop := range properties {
			result.Properties[name] = convertSchema(prop)
		}
	}

	if items, ok := schemaMap["items"]; ok {
		result.Items = convertSchema(items)
	}

	return result
}

// schemaType accepts "string" or a union such as ["null","array"]
func schemaType(v any) genai.Type {
	switch t := v.(type) {
	case string:
		return typeOf(t)
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && s != "null" {
				return typeOf(s)
			}
		}
	}
	return genai.TypeObject
}

func typeOf(name string) genai.Type {
	switch name {
	case "string":
		return genai.TypeString
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	default:
		return genai.TypeObject
	}
}
