// parser.go — Structure JSON parsing and example generation.
package adspec

import (
	"encoding/json"
	"fmt"
	"os"
)

// structureFields are the accepted top-level keys of a structure document.
var structureFields = map[string]bool{
	"canvas":          true,
	"elements":        true,
	"design_strategy": true,
}

// ParseStructure decodes an AdStructure from JSON. Unknown top-level fields
// are rejected; nested objects tolerate extra keys, so structures produced by
// a generator carrying vendor fields still parse. The structure is validated
// before being returned.
func ParseStructure(data []byte) (*AdStructure, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse structure JSON: %w", err)
	}
	for key := range raw {
		if !structureFields[key] {
			return nil, fmt.Errorf("parse structure JSON: unknown field %q", key)
		}
	}

	var s AdStructure
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse structure JSON: %w", err)
	}

	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseStructureFile loads and parses a structure JSON file.
func ParseStructureFile(path string) (*AdStructure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read structure: %w", err)
	}
	return ParseStructure(data)
}

// GetExampleJSON returns a sample structure for admimic init.
func GetExampleJSON() string {
	return `{
  "canvas": {
    "width": 800,
    "height": 600,
    "background": {
      "type": "gradient",
      "value": "#1a1a2e",
      "gradient_direction": "vertical",
      "gradient_colors": ["#1a1a2e", "#16213e"]
    }
  },
  "elements": [
    {
      "id": "headline",
      "type": "text",
      "content": "Launch Something Great",
      "position": { "x": 50, "y": 60, "width": 700, "height": 140 },
      "styling": {
        "font_size": 48,
        "font_weight": "bold",
        "color": "#ffffff",
        "text_align": "center"
      },
      "z_index": 2
    },
    {
      "id": "accent",
      "type": "background_element",
      "content": "circle",
      "position": { "x": 560, "y": 320, "width": 200, "height": 200 },
      "styling": { "background_color": "#0f3460", "opacity": 0.8 },
      "z_index": 1
    },
    {
      "id": "cta",
      "type": "button",
      "content": "Shop Now",
      "position": { "x": 300, "y": 480, "width": 200, "height": 60 },
      "styling": {
        "font_size": 22,
        "color": "#ffffff",
        "background_color": "#e94560",
        "border_radius": 16
      },
      "z_index": 3
    }
  ],
  "design_strategy": {
    "primary_emotion": "excitement",
    "visual_flow": "headline to accent to call-to-action",
    "key_success_factors": ["high contrast", "single clear action"],
    "brand_signals": "modern and confident",
    "adaptation_notes": "keep the CTA isolated in the lower third"
  }
}`
}
