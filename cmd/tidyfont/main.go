package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func main() {
	outFile := flag.String("o", "", "Output file, .bin or .png (default: input.bin)")
	widths := flag.Bool("widths", false, "Print measured glyph widths as Go source")
	columns := flag.Int("cols", 16, "Glyphs per row in PNG output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tidyfont [options] sheet.png|sheet.bmp|font.bin|short|tall\n\nConverts 8x8 font sheets for TidyText.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tidyfont fonts/sheet.png\n")
		fmt.Fprintf(os.Stderr, "  tidyfont -o tall.png tall\n")
		fmt.Fprintf(os.Stderr, "  tidyfont -widths fonts/sheet.bin\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	if *columns <= 0 {
		fmt.Fprintf(os.Stderr, "error: -cols must be positive\n")
		os.Exit(1)
	}

	inputPath := flag.Arg(0)
	conv := NewConverter()
	conv.columns = *columns

	ts, err := conv.Open(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *widths {
		fmt.Print(conv.WidthsSource(ts))
		if *outFile == "" {
			return
		}
	}

	outputPath := *outFile
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, ".png")
		outputPath = strings.TrimSuffix(outputPath, ".bmp") + ".bin"
	}
	if err := conv.Write(outputPath, ts); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outputPath, err)
		os.Exit(1)
	}
	fmt.Printf("Output: %s (%d glyphs)\n", outputPath, ts.GlyphCount())
}
