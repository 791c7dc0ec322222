package adspec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructureJSON() string {
	return `{
	  "canvas": {
	    "width": 800, "height": 600,
	    "background": { "type": "solid_color", "value": "#FFFFFF" }
	  },
	  "elements": [
	    {
	      "id": "t1", "type": "text", "content": "Hello",
	      "position": { "x": 10, "y": 10, "width": 200, "height": 50 },
	      "z_index": 1
	    }
	  ],
	  "design_strategy": {
	    "primary_emotion": "calm",
	    "visual_flow": "top to bottom",
	    "brand_signals": "minimal",
	    "adaptation_notes": "none"
	  }
	}`
}

func TestParseStructure(t *testing.T) {
	s, err := ParseStructure([]byte(validStructureJSON()))
	require.NoError(t, err)
	assert.Equal(t, 800, s.Canvas.Width)
	assert.Equal(t, BackgroundSolid, s.Canvas.Background.Type)
	require.Len(t, s.Elements, 1)
	assert.Equal(t, ElementText, s.Elements[0].Type)
}

func TestParseStructureRejectsUnknownTopLevelField(t *testing.T) {
	bad := strings.Replace(validStructureJSON(), `"canvas"`, `"surprise": 1, "canvas"`, 1)
	_, err := ParseStructure([]byte(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "surprise")
}

func TestParseStructureToleratesNestedUnknownFields(t *testing.T) {
	// Only the top level is strict; generators may decorate nested objects
	// with keys the renderer does not know.
	doc := strings.Replace(validStructureJSON(),
		`"id": "t1"`, `"confidence": 0.93, "id": "t1"`, 1)
	doc = strings.Replace(doc,
		`"x": 10`, `"hover_color": "#ff00ff", "x": 10`, 1)

	s, err := ParseStructure([]byte(doc))
	require.NoError(t, err)
	require.Len(t, s.Elements, 1)
	assert.Equal(t, ElementText, s.Elements[0].Type)
}

func TestValidateCanvasBounds(t *testing.T) {
	s, err := ParseStructure([]byte(validStructureJSON()))
	require.NoError(t, err)

	s.Canvas.Width = 0
	assert.ErrorIs(t, Validate(s), ErrStructureInvalid)

	s.Canvas.Width = MaxCanvasSize + 1
	assert.ErrorIs(t, Validate(s), ErrStructureInvalid)

	s.Canvas.Width = MaxCanvasSize
	assert.NoError(t, Validate(s))
}

func TestValidateDuplicateIDs(t *testing.T) {
	s, err := ParseStructure([]byte(validStructureJSON()))
	require.NoError(t, err)

	dup := s.Elements[0]
	s.Elements = append(s.Elements, dup)
	assert.ErrorIs(t, Validate(s), ErrStructureInvalid)
}

func TestValidateElementGeometry(t *testing.T) {
	s, err := ParseStructure([]byte(validStructureJSON()))
	require.NoError(t, err)

	s.Elements[0].Position.Width = 0
	assert.ErrorIs(t, Validate(s), ErrStructureInvalid)

	s.Elements[0].Position.Width = 10
	s.Elements[0].Position.X = -1
	assert.ErrorIs(t, Validate(s), ErrStructureInvalid)
}

func TestValidateEmptyElementsAllowed(t *testing.T) {
	s, err := ParseStructure([]byte(validStructureJSON()))
	require.NoError(t, err)

	s.Elements = nil
	assert.NoError(t, Validate(s))
}

func TestEffectiveStylingDefaults(t *testing.T) {
	el := Element{ID: "x", Type: ElementText}

	s := el.EffectiveStyling()
	assert.Equal(t, 24, s.FontSize)
	assert.Equal(t, WeightNormal, s.FontWeight)
	assert.Equal(t, AlignLeft, s.TextAlign)
	assert.Equal(t, "#000000", s.Color)
	assert.Equal(t, "transparent", s.BackgroundColor)
	require.NotNil(t, s.Opacity)
	assert.Equal(t, 1.0, *s.Opacity)
}

func TestEffectiveStylingClamps(t *testing.T) {
	huge := 9.0
	el := Element{
		ID:   "x",
		Type: ElementText,
		Styling: &Styling{
			FontSize:   1000,
			LineHeight: 0.1,
			Opacity:    &huge,
		},
	}

	s := el.EffectiveStyling()
	assert.Equal(t, MaxFontSize, s.FontSize)
	assert.Equal(t, MinLineHeight, s.LineHeight)
	assert.Equal(t, 1.0, *s.Opacity)

	// The element itself is untouched.
	assert.Equal(t, 1000, el.Styling.FontSize)
}

func TestWarningsFlagRotationAndShortGradients(t *testing.T) {
	s, err := ParseStructure([]byte(validStructureJSON()))
	require.NoError(t, err)

	s.Elements[0].Position.Rotation = 45
	s.Canvas.Background = Background{Type: BackgroundGradient, Value: "#FFFFFF", GradientColors: []string{"#000000"}}

	warnings := Warnings(s)
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "fewer than 2 colors")
	assert.Contains(t, warnings[1], "rotation")
}

func TestExampleJSONParses(t *testing.T) {
	s, err := ParseStructure([]byte(GetExampleJSON()))
	require.NoError(t, err)
	assert.NotEmpty(t, s.Elements)
}
