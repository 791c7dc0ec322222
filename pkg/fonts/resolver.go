// Package fonts maps (family, size, weight) requests to loadable font faces
// with deterministic fallback. Resolution never fails: when no matching file
// exists on disk an embedded Go font of the nearest weight is used.
package fonts

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/admimic/admimic/pkg/adspec"
)

// systemFontDirs are searched after the configured directory, in order.
var systemFontDirs = []string{
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"/System/Library/Fonts",
	"C:/Windows/Fonts",
}

// weightSuffixes maps a requested weight to the filename suffixes tried, in
// order. Unlisted weights (extra_bold) fall through to the bare family name.
var weightSuffixes = map[adspec.FontWeight][]string{
	adspec.WeightBold:   {"-Bold", "Bold", "b"},
	adspec.WeightLight:  {"-Light", "Light", "l"},
	adspec.WeightNormal: {"", "-Regular", "Regular"},
}

var fontExtensions = []string{".ttf", ".otf", ".TTF", ".OTF"}

type faceKey struct {
	family string
	size   int
	weight adspec.FontWeight
}

// Resolver resolves and caches font faces. Safe for concurrent use: the
// cache is guarded by a read-mostly lock and loaded faces are reused
// read-only across renders.
type Resolver struct {
	fontsDir string
	dpi      float64

	mu     sync.RWMutex
	faces  map[faceKey]font.Face
	parsed map[string]*opentype.Font
}

// NewResolver creates a resolver that searches fontsDir before the platform
// font directories. An empty fontsDir skips the configured-directory step.
func NewResolver(fontsDir string) *Resolver {
	return &Resolver{
		fontsDir: fontsDir,
		dpi:      72,
		faces:    make(map[faceKey]font.Face),
		parsed:   make(map[string]*opentype.Font),
	}
}

// Resolve returns a usable face for the request. The cache key is the exact
// (family, size, weight) tuple; equivalent weights are not normalized.
func (r *Resolver) Resolve(family string, size int, weight adspec.FontWeight) font.Face {
	key := faceKey{family: family, size: size, weight: weight}

	r.mu.RLock()
	face, ok := r.faces[key]
	r.mu.RUnlock()
	if ok {
		return face
	}

	face = r.loadFace(family, size, weight)

	r.mu.Lock()
	// Another goroutine may have raced us here; keep the first entry so all
	// callers share one face.
	if existing, ok := r.faces[key]; ok {
		face = existing
	} else {
		r.faces[key] = face
	}
	r.mu.Unlock()

	return face
}

func (r *Resolver) loadFace(family string, size int, weight adspec.FontWeight) font.Face {
	for _, path := range r.candidatePaths(family, weight) {
		parsed, err := r.parseFile(path)
		if err != nil {
			continue
		}
		if face := newFace(parsed, size, r.dpi); face != nil {
			return face
		}
	}

	// Embedded fallback, guaranteed to parse.
	if face := newFace(r.embeddedFont(weight), size, r.dpi); face != nil {
		return face
	}
	// opentype.NewFace on the embedded fonts only fails for absurd sizes;
	// retry at the default size rather than returning nil.
	return newFace(r.embeddedFont(weight), 24, r.dpi)
}

// candidatePaths returns the deterministic search order for a request:
// configured directory then system directories, bare then capitalized family,
// each weight suffix, each extension. Only existing files are returned.
func (r *Resolver) candidatePaths(family string, weight adspec.FontWeight) []string {
	base := cleanFamily(family)
	if base == "" {
		return nil
	}

	names := []string{base}
	if upper := capitalize(base); upper != base {
		names = append(names, upper)
	}

	suffixes, ok := weightSuffixes[weight]
	if !ok {
		suffixes = []string{""}
	}

	dirs := make([]string, 0, 1+len(systemFontDirs))
	if r.fontsDir != "" {
		dirs = append(dirs, r.fontsDir)
	}
	dirs = append(dirs, systemFontDirs...)

	var paths []string
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		for _, name := range names {
			for _, suffix := range suffixes {
				for _, ext := range fontExtensions {
					p := filepath.Join(dir, name+suffix+ext)
					if _, err := os.Stat(p); err == nil {
						paths = append(paths, p)
					}
				}
			}
		}
	}
	return paths
}

func (r *Resolver) parseFile(path string) (*opentype.Font, error) {
	r.mu.RLock()
	parsed, ok := r.parsed[path]
	r.mu.RUnlock()
	if ok {
		return parsed, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err = opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.parsed[path] = parsed
	r.mu.Unlock()
	return parsed, nil
}

func (r *Resolver) embeddedFont(weight adspec.FontWeight) *opentype.Font {
	var key string
	var data []byte
	switch weight {
	case adspec.WeightBold, adspec.WeightExtraBold:
		key, data = "embedded:bold", gobold.TTF
	case adspec.WeightLight:
		// The embedded Go family has no light cut; medium is the nearest.
		key, data = "embedded:light", gomedium.TTF
	default:
		key, data = "embedded:regular", goregular.TTF
	}

	r.mu.RLock()
	parsed, ok := r.parsed[key]
	r.mu.RUnlock()
	if ok {
		return parsed
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		// The embedded gofont data is known-good; this cannot happen.
		panic("fonts: embedded font failed to parse: " + err.Error())
	}

	r.mu.Lock()
	r.parsed[key] = parsed
	r.mu.Unlock()
	return parsed
}

func newFace(f *opentype.Font, size int, dpi float64) font.Face {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	return face
}

// cleanFamily reduces a CSS-style family list ("Arial, Helvetica, sans-serif")
// to its first name, lowercased.
func cleanFamily(family string) string {
	family = strings.ReplaceAll(family, ",", " ")
	fields := strings.Fields(family)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
