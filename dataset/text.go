package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"chess-rules/chessmg"
)

// NoResult marks a sample without a game result label.
const NoResult = -1

// Sample is one position with an optional result from White's point of
// view (1, 0.5 or 0).
type Sample struct {
	Position *chessmg.Position
	Result   float32
}

// ParseLine reads "FEN", "EPD" or "FEN [result]" text. Everything after a
// ';' is treated as a comment.
func ParseLine(line string, v chessmg.Variant) (Sample, error) {
	s := Sample{Result: NoResult}
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	if i := strings.LastIndexByte(line, '['); i >= 0 && strings.HasSuffix(strings.TrimSpace(line), "]") {
		// a trailing [..] is a result unless it is a crazyhouse pocket
		fen, label := strings.TrimSpace(line[:i]), strings.TrimSuffix(strings.TrimSpace(line[i+1:]), "]")
		if r, err := strconv.ParseFloat(label, 32); err == nil && strings.Contains(fen, " ") {
			line = fen
			s.Result = float32(r)
			if r != 0 && r != 0.5 && r != 1 {
				return s, fmt.Errorf("result %q out of range", label)
			}
		}
	}
	pos, err := chessmg.ParseFEN(strings.TrimSpace(line), v)
	if err != nil {
		return s, err
	}
	s.Position = pos
	return s, nil
}

// FormatLine is the inverse of ParseLine.
func FormatLine(s Sample) string {
	if s.Result < 0 {
		return s.Position.FEN()
	}
	return fmt.Sprintf("%s [%.1f]", s.Position.FEN(), s.Result)
}

// Scanner reads samples line by line, skipping blank lines and lines
// starting with '#'. Malformed lines are counted and skipped.
type Scanner struct {
	sc      *bufio.Scanner
	variant chessmg.Variant
	sample  Sample
	line    int
	skipped int
	lastErr error
}

func NewScanner(r io.Reader, v chessmg.Variant) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	return &Scanner{sc: sc, variant: v}
}

func (s *Scanner) Scan() bool {
	for s.sc.Scan() {
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		sample, err := ParseLine(text, s.variant)
		if err != nil {
			s.skipped++
			s.lastErr = fmt.Errorf("line %d: %w", s.line, err)
			continue
		}
		s.sample = sample
		return true
	}
	return false
}

func (s *Scanner) Sample() Sample { return s.sample }

// Skipped returns how many malformed lines were dropped, and the last
// such error.
func (s *Scanner) Skipped() (int, error) { return s.skipped, s.lastErr }

// Err returns the first I/O error.
func (s *Scanner) Err() error { return s.sc.Err() }

// WriteText writes one line per sample.
func WriteText(w io.Writer, samples []Sample) error {
	bw := bufio.NewWriter(w)
	for _, s := range samples {
		if _, err := bw.WriteString(FormatLine(s) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
