package types

import "fmt"

// JSONSchema is a JSON Schema document in map form.
type JSONSchema map[string]interface{}

const schemaDialect = "https://json-schema.org/draft/2020-12/schema"

// OverrideSchema returns the JSON Schema an override object for kind must
// satisfy. The key field is absent: it cannot be overridden.
func OverrideSchema(kind Kind) (JSONSchema, error) {
	props := map[string]interface{}{
		"name":           JSONSchema{"type": "string"},
		"liveUpdates":    JSONSchema{"type": "boolean"},
		LiveUpdatesAlias: JSONSchema{"type": "boolean"},
		"section":        JSONSchema{"type": "string"},
		"hoverText":      JSONSchema{"type": "string"},
		"fullWidthInput": JSONSchema{"type": "boolean"},
	}

	switch kind {
	case KindNumber:
		addBounds(props)
		props["style"] = enumSchema(NumberStyles())
		props["options"] = optionsSchema(JSONSchema{"type": "number"})
		props["default"] = JSONSchema{"type": "number"}
	case KindBoolean:
		props["enables"] = stringArraySchema()
		props["disables"] = stringArraySchema()
		props["default"] = JSONSchema{"type": "boolean"}
	case KindString:
		props["style"] = enumSchema(StringStyles())
		props["options"] = optionsSchema(JSONSchema{"type": "string"})
		props["default"] = JSONSchema{"type": "string"}
	case KindFunction:
		props["buttonText"] = JSONSchema{"type": "string"}
	case KindFile:
		props["accept"] = JSONSchema{"type": "string"}
		props["multiple"] = JSONSchema{"type": "boolean"}
		props["mode"] = enumSchema(FileModes())
	case KindNumericArray:
		addBounds(props)
		props["style"] = enumSchema(NumericArrayStyles())
		props["options"] = optionsSchema(vectorSchema())
		props["default"] = vectorSchema()
	default:
		return nil, fmt.Errorf("no override schema for kind %q", kind)
	}

	return JSONSchema{
		"$schema":              schemaDialect,
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}, nil
}

func addBounds(props map[string]interface{}) {
	props["min"] = JSONSchema{"type": "number"}
	props["max"] = JSONSchema{"type": "number"}
	props["step"] = JSONSchema{"type": "number", "exclusiveMinimum": 0}
}

func enumSchema[S ~string](values []S) JSONSchema {
	enum := make([]interface{}, len(values))
	for i, v := range values {
		enum[i] = string(v)
	}
	return JSONSchema{"type": "string", "enum": enum}
}

func stringArraySchema() JSONSchema {
	return JSONSchema{"type": "array", "items": JSONSchema{"type": "string"}}
}

func vectorSchema() JSONSchema {
	return JSONSchema{"type": "array", "minItems": 1, "items": JSONSchema{"type": "number"}}
}

// optionsSchema accepts a list of items or an object of labelled items.
func optionsSchema(item JSONSchema) JSONSchema {
	return JSONSchema{
		"anyOf": []interface{}{
			JSONSchema{"type": "array", "items": item},
			JSONSchema{"type": "object", "additionalProperties": item},
		},
	}
}
