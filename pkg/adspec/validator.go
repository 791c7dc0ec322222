// validator.go — Boundary validation for parsed ad structures.
package adspec

import (
	"errors"
	"fmt"
)

// ErrStructureInvalid reports a structure rejected at the boundary.
var ErrStructureInvalid = errors.New("structure invalid")

// Validate checks the structural rules the renderer relies on. It returns a hard
// error for anything the render path cannot recover from; renderable
// oddities (malformed colors, missing assets) degrade at render time instead.
func Validate(s *AdStructure) error {
	if s.Canvas.Width < 1 || s.Canvas.Width > MaxCanvasSize {
		return fmt.Errorf("%w: canvas width %d outside 1..%d", ErrStructureInvalid, s.Canvas.Width, MaxCanvasSize)
	}
	if s.Canvas.Height < 1 || s.Canvas.Height > MaxCanvasSize {
		return fmt.Errorf("%w: canvas height %d outside 1..%d", ErrStructureInvalid, s.Canvas.Height, MaxCanvasSize)
	}

	switch s.Canvas.Background.Type {
	case BackgroundSolid, BackgroundGradient, BackgroundImage:
	default:
		return fmt.Errorf("%w: unknown background type %q", ErrStructureInvalid, s.Canvas.Background.Type)
	}

	seen := make(map[string]struct{}, len(s.Elements))
	for i := range s.Elements {
		e := &s.Elements[i]

		if e.ID == "" {
			return fmt.Errorf("%w: element %d has no id", ErrStructureInvalid, i)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("%w: duplicate element id %q", ErrStructureInvalid, e.ID)
		}
		seen[e.ID] = struct{}{}

		switch e.Type {
		case ElementText, ElementImage, ElementButton, ElementLogo, ElementBackground:
		default:
			return fmt.Errorf("%w: element %q has unknown type %q", ErrStructureInvalid, e.ID, e.Type)
		}

		if e.Position.X < 0 || e.Position.Y < 0 {
			return fmt.Errorf("%w: element %q has negative position", ErrStructureInvalid, e.ID)
		}
		if e.Position.Width <= 0 || e.Position.Height <= 0 {
			return fmt.Errorf("%w: element %q has non-positive size", ErrStructureInvalid, e.ID)
		}
	}

	return nil
}

// Warnings returns non-fatal observations about a structure: conditions the
// renderer will degrade around rather than reject.
func Warnings(s *AdStructure) []string {
	var warnings []string

	if s.Canvas.Background.Type == BackgroundGradient && len(s.Canvas.Background.GradientColors) < 2 {
		warnings = append(warnings, "gradient background has fewer than 2 colors — will fall back to solid fill")
	}

	for i := range s.Elements {
		e := &s.Elements[i]
		if e.Position.Rotation != 0 {
			warnings = append(warnings, fmt.Sprintf("element %q requests rotation %.1f° — rotation is not applied by the renderer", e.ID, e.Position.Rotation))
		}
		if e.Content == "" && (e.Type == ElementText || e.Type == ElementButton) {
			warnings = append(warnings, fmt.Sprintf("element %q has empty content", e.ID))
		}
	}

	return warnings
}
