package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/admimic/admimic/pkg/adspec"
)

func TestResolveNeverFails(t *testing.T) {
	r := NewResolver("")

	face := r.Resolve("NoSuchFamily", 24, adspec.WeightNormal)
	if face == nil {
		t.Fatal("Resolve returned nil face for unknown family")
	}

	face = r.Resolve("", 40, adspec.WeightExtraBold)
	if face == nil {
		t.Fatal("Resolve returned nil face for empty family")
	}
}

func TestResolveEmbeddedFallbackPerWeight(t *testing.T) {
	r := NewResolver("")

	for _, w := range []adspec.FontWeight{
		adspec.WeightLight,
		adspec.WeightNormal,
		adspec.WeightBold,
		adspec.WeightExtraBold,
	} {
		if face := r.Resolve("NoSuchFamily", 24, w); face == nil {
			t.Errorf("Resolve returned nil face for embedded %s fallback", w)
		}
	}

	light := r.Resolve("NoSuchFamily", 24, adspec.WeightLight)
	normal := r.Resolve("NoSuchFamily", 24, adspec.WeightNormal)
	if light == normal {
		t.Error("light weight should fall back to a distinct embedded font")
	}
}

func TestResolveCachesExactTuple(t *testing.T) {
	r := NewResolver("")

	a := r.Resolve("Arial", 24, adspec.WeightNormal)
	b := r.Resolve("Arial", 24, adspec.WeightNormal)
	if a != b {
		t.Error("same (family, size, weight) should return the cached face")
	}

	c := r.Resolve("Arial", 25, adspec.WeightNormal)
	if a == c {
		t.Error("different size must not share a cache entry")
	}
}

func TestResolveFindsConfiguredDirFont(t *testing.T) {
	dir := t.TempDir()
	// Install the embedded regular font under a family name on disk.
	path := filepath.Join(dir, "testfamily.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(dir)
	paths := r.candidatePaths("TestFamily, sans-serif", adspec.WeightNormal)
	if len(paths) == 0 {
		t.Fatal("expected candidate path for installed font")
	}
	if paths[0] != path {
		t.Errorf("first candidate = %q, want %q", paths[0], path)
	}

	if face := r.Resolve("TestFamily", 18, adspec.WeightNormal); face == nil {
		t.Error("Resolve returned nil for an installed font")
	}
}

func TestCandidatePathsWeightSuffixes(t *testing.T) {
	dir := t.TempDir()
	bold := filepath.Join(dir, "brand-Bold.ttf")
	if err := os.WriteFile(bold, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(dir)

	if paths := r.candidatePaths("Brand", adspec.WeightBold); len(paths) == 0 || paths[0] != bold {
		t.Errorf("bold lookup = %v, want [%q]", paths, bold)
	}
	// Normal weight must not pick up the bold file.
	if paths := r.candidatePaths("Brand", adspec.WeightNormal); len(paths) != 0 {
		t.Errorf("normal lookup should find nothing, got %v", paths)
	}
}

func TestCleanFamily(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Arial, Helvetica, sans-serif", "arial"},
		{"Times New Roman", "times"},
		{"  ", ""},
		{"ROBOTO", "roboto"},
	}
	for _, tt := range tests {
		if got := cleanFamily(tt.in); got != tt.want {
			t.Errorf("cleanFamily(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveConcurrent(t *testing.T) {
	r := NewResolver("")
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 20; j++ {
				r.Resolve("Arial", 12+n, adspec.WeightBold)
				r.Resolve("Arial", 12+n, adspec.WeightNormal)
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
