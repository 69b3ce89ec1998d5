// Command tauri-icon-generator converts one source image into the resized
// PNG, ICO, and ICNS assets a Tauri application expects, laid out under a
// single output directory.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shekilrahman/tauri-icon-generator/icongen"
)

func main() {
	var outputDir string
	var quality int

	flag.StringVar(&outputDir, "o", "./tauri-icons", "output directory")
	flag.IntVar(&quality, "q", icongen.DefaultQuality, "PNG quality (0-100)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: tauri-icon-generator [-o OUTDIR] [-q QUALITY] INPUT_IMAGE")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if quality < 0 || quality > 100 {
		fmt.Fprintf(os.Stderr, "Error: quality %d out of range 0-100\n", quality)
		os.Exit(2)
	}

	input := flag.Arg(0)
	if info, err := os.Stat(input); err != nil || info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: input file %q does not exist\n", input)
		os.Exit(1)
	}

	gen := icongen.Generator{
		Out:     outputDir,
		Quality: quality,
		Report:  render,
	}
	if err := gen.Generate(input); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nIcon generation completed successfully to %s\n", outputDir)
}

// render prints one progress line per event, the plain-text view of the
// generator's event stream.
func render(e icongen.Event) {
	switch e.Kind {
	case icongen.FileWritten:
		fmt.Printf("Generated: %s\n", e.Path)
	case icongen.StageDone:
		fmt.Printf("Completed stage: %s\n", e.Stage)
	case icongen.Warn:
		fmt.Fprintf(os.Stderr, "Warning: %s\n", e.Message)
	}
}
