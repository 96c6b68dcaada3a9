package catalog

// catalogSchema defines the JSON schema for catalog files.
// Structural invariants that JSON schema cannot express (globally
// unique ids, unique variants per exercise) are checked by
// validateExercises after parsing.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"exercises": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":     map[string]any{"type": "integer"},
					"number": map[string]any{"type": "string"},
					"questions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":          map[string]any{"type": "integer"},
								"variant":     map[string]any{"type": "string", "minLength": 1},
								"description": map[string]any{"type": "string"},
								"result": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"columns": map[string]any{
											"type":  "array",
											"items": map[string]any{"type": "string"},
										},
										"values": map[string]any{
											"type": "array",
											"items": map[string]any{
												"type": "array",
												"items": map[string]any{
													"type": []any{"string", "number"},
												},
											},
										},
									},
									"required":             []any{"columns", "values"},
									"additionalProperties": false,
								},
							},
							"required":             []any{"id", "variant", "description", "result"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "number", "questions"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"exercises"},
	"additionalProperties": false,
}
