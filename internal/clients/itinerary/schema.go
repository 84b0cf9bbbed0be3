package itinerary

// resultSchema mirrors the backend's itinerary response model. The echoed
// request fields, the two narrative fields, and a numeric cost breakdown are
// all mandatory; a body missing any of them is treated as malformed.
const resultSchema = `{
	"type": "object",
	"required": [
		"destination",
		"budget",
		"duration_days",
		"start_date",
		"itinerary",
		"recommendations",
		"estimated_costs"
	],
	"properties": {
		"id": {"type": "string"},
		"destination": {"type": "string", "minLength": 1},
		"budget": {"type": "integer", "minimum": 1},
		"duration_days": {"type": "integer", "minimum": 1},
		"start_date": {"type": "string", "minLength": 1},
		"interests": {
			"type": "array",
			"items": {"type": "string"}
		},
		"travel_style": {"type": "string"},
		"itinerary": {"type": "string"},
		"recommendations": {"type": "string"},
		"estimated_costs": {
			"type": "object",
			"additionalProperties": {"type": "number"}
		},
		"created_at": {"type": "string"}
	}
}`
