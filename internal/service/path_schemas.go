package service

import "smart_learning_path/internal/llm"

func stringArray() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
}

var resourceSchema = map[string]any{
	"type":     "object",
	"required": []string{"title", "type", "search_query", "estimated_time"},
	"properties": map[string]any{
		"title":          map[string]any{"type": "string"},
		"type":           map[string]any{"type": "string"},
		"search_query":   map[string]any{"type": "string"},
		"estimated_time": map[string]any{"type": "string"},
	},
}

var weekSchema = map[string]any{
	"type": "object",
	"required": []string{
		"week_number", "topic", "subtopics", "why_this_first",
		"prerequisites_covered", "resources", "estimated_hours", "key_takeaways",
	},
	"properties": map[string]any{
		"week_number":           map[string]any{"type": "integer", "minimum": 1},
		"topic":                 map[string]any{"type": "string", "minLength": 1},
		"subtopics":             stringArray(),
		"why_this_first":        map[string]any{"type": "string"},
		"prerequisites_covered": stringArray(),
		"resources":             map[string]any{"type": "array", "items": resourceSchema},
		"estimated_hours":       map[string]any{"type": "number", "minimum": 0},
		"key_takeaways":         stringArray(),
	},
}

// learningPathSchema is the shape the roadmap prompt asks for. user_input,
// id and created_at are filled in by the service, not the model.
var learningPathSchema = &llm.Schema{
	Name: "learning_path",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"path_title", "total_weeks", "total_hours", "weekly_breakdown", "final_project"},
		"properties": map[string]any{
			"path_title":       map[string]any{"type": "string", "minLength": 1},
			"total_weeks":      map[string]any{"type": "integer", "minimum": 1},
			"total_hours":      map[string]any{"type": "number", "minimum": 0},
			"weekly_breakdown": map[string]any{"type": "array", "minItems": 1, "items": weekSchema},
			"final_project":    map[string]any{"type": "string"},
		},
	},
}

var quizSchema = &llm.Schema{
	Name: "quiz",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"questions"},
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []string{"question", "options", "explanation"},
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []string{"text", "is_correct"},
								"properties": map[string]any{
									"text":       map[string]any{"type": "string"},
									"is_correct": map[string]any{"type": "boolean"},
								},
							},
						},
						"explanation": map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}
