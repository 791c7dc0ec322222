// Package adspec defines the declarative ad-structure model consumed by the
// renderer, plus JSON parsing, defaulting, and boundary validation.
package adspec

// ── Enumerations ──

// ElementType identifies the renderer an element dispatches to.
type ElementType string

const (
	ElementText       ElementType = "text"
	ElementImage      ElementType = "image"
	ElementButton     ElementType = "button"
	ElementLogo       ElementType = "logo"
	ElementBackground ElementType = "background_element"
)

// BackgroundType selects the canvas fill strategy.
type BackgroundType string

const (
	BackgroundSolid    BackgroundType = "solid_color"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundImage    BackgroundType = "image"
)

// GradientDirection is the axis a gradient runs along.
type GradientDirection string

const (
	GradientVertical   GradientDirection = "vertical"
	GradientHorizontal GradientDirection = "horizontal"
	GradientDiagonal   GradientDirection = "diagonal"
	GradientRadial     GradientDirection = "radial"
)

// TextAlign controls horizontal line placement within an element box.
type TextAlign string

const (
	AlignLeft    TextAlign = "left"
	AlignCenter  TextAlign = "center"
	AlignRight   TextAlign = "right"
	AlignJustify TextAlign = "justify"
)

// FontWeight is the requested weight of a font face.
type FontWeight string

const (
	WeightNormal    FontWeight = "normal"
	WeightBold      FontWeight = "bold"
	WeightLight     FontWeight = "light"
	WeightExtraBold FontWeight = "extra_bold"
)

// ── Core structures ──

// Position is an element's placement in canvas pixels. Rotation is accepted
// by the schema but the renderer does not apply it.
type Position struct {
	X        int     `json:"x"`
	Y        int     `json:"y"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	Rotation float64 `json:"rotation,omitempty"`
}

// Padding is per-side inner spacing.
type Padding struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Shadow describes a drop shadow for text or boxes.
type Shadow struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Blur  int    `json:"blur"`
	Color string `json:"color"`
}

// Styling holds the optional visual properties of an element. All fields are
// pointers-free; zero values are replaced by ApplyDefaults.
type Styling struct {
	FontFamily      string     `json:"font_family,omitempty"`
	FontSize        int        `json:"font_size,omitempty"`
	FontWeight      FontWeight `json:"font_weight,omitempty"`
	LineHeight      float64    `json:"line_height,omitempty"`
	LetterSpacing   float64    `json:"letter_spacing,omitempty"`
	TextAlign       TextAlign  `json:"text_align,omitempty"`
	Color           string     `json:"color,omitempty"`
	BackgroundColor string     `json:"background_color,omitempty"`
	BorderRadius    int        `json:"border_radius,omitempty"`
	Padding         Padding    `json:"padding,omitempty"`
	Shadow          *Shadow    `json:"shadow,omitempty"`
	Opacity         *float64   `json:"opacity,omitempty"`
}

// Background is a tagged variant over solid color, gradient, and image fills.
// Value carries the hex color or the image path depending on Type.
type Background struct {
	Type              BackgroundType    `json:"type"`
	Value             string            `json:"value"`
	GradientDirection GradientDirection `json:"gradient_direction,omitempty"`
	GradientColors    []string          `json:"gradient_colors,omitempty"`
}

// Canvas defines output dimensions and the background fill.
type Canvas struct {
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Background Background `json:"background"`
}

// Element is one renderable item. Content is text for text/button elements
// and a shape tag ("circle", "rectangle") for background elements.
type Element struct {
	ID            string      `json:"id"`
	Type          ElementType `json:"type"`
	Content       string      `json:"content,omitempty"`
	Position      Position    `json:"position"`
	Styling       *Styling    `json:"styling,omitempty"`
	ZIndex        int         `json:"z_index"`
	DesignPurpose string      `json:"design_purpose,omitempty"`
}

// DesignStrategy carries the narrative analysis attached to a structure.
// The renderer never reads it.
type DesignStrategy struct {
	PrimaryEmotion    string   `json:"primary_emotion"`
	VisualFlow        string   `json:"visual_flow"`
	KeySuccessFactors []string `json:"key_success_factors,omitempty"`
	BrandSignals      string   `json:"brand_signals"`
	AdaptationNotes   string   `json:"adaptation_notes"`
}

// AdStructure is the complete declarative description of one ad.
type AdStructure struct {
	Canvas         Canvas         `json:"canvas"`
	Elements       []Element      `json:"elements"`
	DesignStrategy DesignStrategy `json:"design_strategy"`
}

// MaxCanvasSize bounds canvas dimensions to prevent unbounded allocations.
const MaxCanvasSize = 2048

// Styling bounds applied during defaulting and validation.
const (
	MinFontSize   = 8
	MaxFontSize   = 200
	MinLineHeight = 0.5
	MaxLineHeight = 3.0
)

// DefaultStyling returns the styling applied when an element carries none.
func DefaultStyling() *Styling {
	opacity := 1.0
	return &Styling{
		FontFamily:      "Arial, Helvetica, sans-serif",
		FontSize:        24,
		FontWeight:      WeightNormal,
		LineHeight:      1.2,
		TextAlign:       AlignLeft,
		Color:           "#000000",
		BackgroundColor: "transparent",
		Opacity:         &opacity,
	}
}

// EffectiveStyling returns the element's styling with defaults filled in.
// The element itself is not mutated.
func (e *Element) EffectiveStyling() Styling {
	base := *DefaultStyling()
	if e.Styling == nil {
		return base
	}

	s := *e.Styling
	if s.FontFamily == "" {
		s.FontFamily = base.FontFamily
	}
	if s.FontSize == 0 {
		s.FontSize = base.FontSize
	}
	if s.FontSize < MinFontSize {
		s.FontSize = MinFontSize
	}
	if s.FontSize > MaxFontSize {
		s.FontSize = MaxFontSize
	}
	if s.FontWeight == "" {
		s.FontWeight = base.FontWeight
	}
	if s.LineHeight == 0 {
		s.LineHeight = base.LineHeight
	}
	if s.LineHeight < MinLineHeight {
		s.LineHeight = MinLineHeight
	}
	if s.LineHeight > MaxLineHeight {
		s.LineHeight = MaxLineHeight
	}
	if s.TextAlign == "" {
		s.TextAlign = base.TextAlign
	}
	if s.Color == "" {
		s.Color = base.Color
	}
	if s.BackgroundColor == "" {
		s.BackgroundColor = base.BackgroundColor
	}
	if s.BorderRadius < 0 {
		s.BorderRadius = 0
	}
	if s.Opacity == nil {
		s.Opacity = base.Opacity
	} else {
		o := clampOpacity(*s.Opacity)
		s.Opacity = &o
	}
	return s
}

func clampOpacity(o float64) float64 {
	if o < 0 {
		return 0
	}
	if o > 1 {
		return 1
	}
	return o
}
