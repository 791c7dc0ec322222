// admimic — Render declarative ad structures into raster images and derive
// brand-asset variants.
//
// Usage:
//
//	admimic -o <file> --structure <json> [--logo <img>] [--product <img>]
//	admimic assets --logo <img> | --product <img> [--out <dir>]
//	admimic palette --image <img> [--colors 5]
//	admimic init
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/admimic/admimic/pkg/adspec"
	"github.com/admimic/admimic/pkg/assets"
	"github.com/admimic/admimic/pkg/config"
	"github.com/admimic/admimic/pkg/fonts"
	"github.com/admimic/admimic/pkg/render"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "assets":
		if err := runAssets(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "palette":
		if err := runPalette(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "init":
		if err := runInit(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "help", "-h", "--help":
		printUsage()
	default:
		// Default: render mode (all flags on root).
		if err := runRender(os.Args[1:]); err != nil {
			fatal(err)
		}
	}
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("admimic", flag.ExitOnError)

	var (
		output        string
		structurePath string
		logoPath      string
		productPath   string
	)

	fs.StringVar(&output, "o", "", "Output PNG path")
	fs.StringVar(&output, "output", "", "Output PNG path")
	fs.StringVar(&structurePath, "structure", "", "Path to ad structure JSON")
	fs.StringVar(&logoPath, "logo", "", "Logo source image (optional)")
	fs.StringVar(&productPath, "product", "", "Product source image (optional)")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	if output == "" {
		printUsage()
		return fmt.Errorf("output file is required (-o)")
	}
	if structurePath == "" {
		printUsage()
		return fmt.Errorf("--structure is required")
	}

	cfg := config.Load()
	log := newLogger(cfg.AppEnv)

	structure, err := adspec.ParseStructureFile(structurePath)
	if err != nil {
		return err
	}
	for _, w := range adspec.Warnings(structure) {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	// Derive asset variants for any provided source images.
	pipeline := assets.NewPipeline(cfg.MaxCanvas, log)
	sessionDir := filepath.Join(cfg.AssetsDir, uuid.NewString())

	var logoVariants, productVariants assets.VariantMap
	if logoPath != "" {
		if err := assets.ValidateImage(logoPath, 10); err != nil {
			return fmt.Errorf("logo: %w", err)
		}
		logoVariants, err = pipeline.ProcessLogo(logoPath, filepath.Join(sessionDir, "logo"))
		if err != nil {
			return err
		}
	}
	if productPath != "" {
		if err := assets.ValidateImage(productPath, 10); err != nil {
			return fmt.Errorf("product: %w", err)
		}
		productVariants, err = pipeline.ProcessProduct(productPath, filepath.Join(sessionDir, "product"))
		if err != nil {
			return err
		}
	}

	compositor := render.NewCompositor(fonts.NewResolver(cfg.FontsDir), log)

	fmt.Printf("Rendering: %s\n", output)
	report, err := compositor.RenderToFile(structure, logoVariants, productVariants, output)
	if err != nil {
		return err
	}
	for _, s := range report.Skipped {
		fmt.Fprintf(os.Stderr, "Warning: element %q skipped: %v\n", s.ID, s.Err)
	}

	fmt.Printf("Done: %s\n", output)
	return nil
}

func runAssets(args []string) error {
	fs := flag.NewFlagSet("assets", flag.ExitOnError)

	var logoPath, productPath, outDir string
	fs.StringVar(&logoPath, "logo", "", "Logo source image")
	fs.StringVar(&productPath, "product", "", "Product source image")
	fs.StringVar(&outDir, "out", "", "Output directory (default: session dir under assets dir)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if logoPath == "" && productPath == "" {
		return fmt.Errorf("--logo or --product is required")
	}

	cfg := config.Load()
	log := newLogger(cfg.AppEnv)
	pipeline := assets.NewPipeline(cfg.MaxCanvas, log)

	if outDir == "" {
		outDir = filepath.Join(cfg.AssetsDir, uuid.NewString())
	}

	if logoPath != "" {
		if err := assets.ValidateImage(logoPath, 10); err != nil {
			return fmt.Errorf("logo: %w", err)
		}
		variants, err := pipeline.ProcessLogo(logoPath, filepath.Join(outDir, "logo"))
		if err != nil {
			return err
		}
		printVariants("logo", variants)

		for _, hex := range assets.ExtractPaletteFile(logoPath, 5) {
			fmt.Printf("  brand color: %s\n", hex)
		}
	}

	if productPath != "" {
		if err := assets.ValidateImage(productPath, 10); err != nil {
			return fmt.Errorf("product: %w", err)
		}
		variants, err := pipeline.ProcessProduct(productPath, filepath.Join(outDir, "product"))
		if err != nil {
			return err
		}
		printVariants("product", variants)
	}

	return nil
}

func runPalette(args []string) error {
	fs := flag.NewFlagSet("palette", flag.ExitOnError)

	var imagePath string
	var count int
	fs.StringVar(&imagePath, "image", "", "Image to extract colors from")
	fs.IntVar(&count, "colors", 5, "Number of colors")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if imagePath == "" {
		return fmt.Errorf("--image is required")
	}

	for _, hex := range assets.ExtractPaletteFile(imagePath, count) {
		fmt.Println(hex)
	}
	return nil
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)

	var out string
	fs.StringVar(&out, "structure", "structure.json", "Output path for sample structure")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.WriteFile(out, []byte(adspec.GetExampleJSON()), 0644); err != nil {
		return fmt.Errorf("write structure: %w", err)
	}

	fmt.Printf("Created: %s\n", out)
	fmt.Println("Run: admimic -o output.png --structure structure.json")
	return nil
}

func printVariants(kind string, variants assets.VariantMap) {
	fmt.Printf("%s variants:\n", kind)
	for name, path := range variants {
		fmt.Printf("  %-14s %s\n", name, path)
	}
}

// newLogger builds the CLI logger: debug-level console output in
// development, JSON info-level otherwise.
func newLogger(appEnv string) zerolog.Logger {
	level := zerolog.InfoLevel
	if appEnv == "development" {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	if appEnv == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	return logger
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`admimic — declarative ad rendering and brand-asset processing

USAGE:
    admimic -o <file> --structure <json> [options]
    admimic assets --logo <img> | --product <img> [--out <dir>]
    admimic palette --image <img> [--colors 5]
    admimic init [--structure <path>]

RENDER MODE:
    --structure <path>     Ad structure JSON
    -o, --output <path>    Output PNG file
    --logo <path>          Logo source image; variants are derived first
    --product <path>       Product source image; variants are derived first

ASSETS:
    admimic assets --logo logo.png              Derive logo variants + brand colors
    admimic assets --product shot.jpg           Derive product variants

PALETTE:
    admimic palette --image logo.png --colors 5

EXAMPLES:
    admimic init
    admimic -o ad.png --structure structure.json
    admimic -o ad.png --structure structure.json --logo logo.png --product shot.jpg

ENVIRONMENT:
    APP_ENV                development enables debug logging (default: development)
    ADMIMIC_FONTS_DIR      font search directory (default: ./fonts)
    ADMIMIC_ASSETS_DIR     derived-asset base directory (default: ./assets)
    ADMIMIC_MAX_CANVAS     processed-image size cap (default: 2048)
`)
}
