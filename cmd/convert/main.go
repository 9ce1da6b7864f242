package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chess-rules/chessmg"
	"chess-rules/dataset"
)

func main() {
	input := flag.String("in", "", "Input file (text book, or binary with -decode)")
	output := flag.String("out", "", "Output file")
	variant := flag.String("variant", "chess", "Rule variant of the positions in a text book")
	decode := flag.Bool("decode", false, "Convert a binary dataset back to text")
	maxRows := flag.Int("max", 0, "Maximum rows to convert (0 = all)")

	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Println("Usage: convert -in <input.book> -out <output.bin>")
		fmt.Println("       convert -decode -in <input.bin> -out <output.book>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	v, ok := chessmg.ParseVariant(*variant)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown variant %q\n", *variant)
		os.Exit(2)
	}

	outDir := filepath.Dir(*output)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	var stats dataset.Stats
	var err error
	if *decode {
		stats, err = dataset.ConvertToText(*input, *output, *maxRows)
	} else {
		stats, err = dataset.ConvertToBinary(*input, *output, v, *maxRows)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conversion failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d rows, skipped %d\n", stats.Written, stats.Skipped)
	if stats.LastErr != nil {
		fmt.Printf("last skipped: %v\n", stats.LastErr)
	}
}
