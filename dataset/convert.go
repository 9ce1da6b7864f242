package dataset

import (
	"fmt"
	"os"

	"chess-rules/chessmg"
)

// Stats summarizes a conversion.
type Stats struct {
	Written int
	Skipped int
	LastErr error // last malformed input line, if any
}

// ConvertToBinary reads a FEN/EPD text file and writes a binary sample
// file. Malformed lines are skipped and counted.
func ConvertToBinary(textPath, binPath string, v chessmg.Variant, maxRows int) (Stats, error) {
	var st Stats
	in, err := os.Open(textPath)
	if err != nil {
		return st, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	sc := NewScanner(in, v)
	var samples []Sample
	for sc.Scan() {
		samples = append(samples, sc.Sample())
		if maxRows > 0 && len(samples) >= maxRows {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("read %s: %w", textPath, err)
	}
	st.Skipped, st.LastErr = sc.Skipped()

	out, err := os.Create(binPath)
	if err != nil {
		return st, fmt.Errorf("create file: %w", err)
	}
	if err := WriteBinary(out, samples); err != nil {
		out.Close()
		return st, err
	}
	if err := out.Close(); err != nil {
		return st, fmt.Errorf("close %s: %w", binPath, err)
	}
	st.Written = len(samples)
	return st, nil
}

// ConvertToText decodes a binary sample file back to one FEN per line.
func ConvertToText(binPath, textPath string, maxRows int) (Stats, error) {
	var st Stats
	in, err := os.Open(binPath)
	if err != nil {
		return st, fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	samples, err := ReadBinary(in, maxRows)
	if err != nil {
		return st, err
	}
	out, err := os.Create(textPath)
	if err != nil {
		return st, fmt.Errorf("create file: %w", err)
	}
	if err := WriteText(out, samples); err != nil {
		out.Close()
		return st, err
	}
	if err := out.Close(); err != nil {
		return st, fmt.Errorf("close %s: %w", textPath, err)
	}
	st.Written = len(samples)
	return st, nil
}
