package dataset

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"chess-rules/chessmg"
)

// File layout: an 8-byte little-endian sample count followed by fixed-size
// records, each a packed position plus a float32 result label.
const (
	HeaderSize = 8
	RecordSize = chessmg.PackedPositionSize + 4
)

// EncodeSample packs a sample into a record.
func EncodeSample(s Sample) [RecordSize]byte {
	var rec [RecordSize]byte
	pos := chessmg.EncodePosition(s.Position)
	copy(rec[:], pos[:])
	binary.LittleEndian.PutUint32(rec[chessmg.PackedPositionSize:], math.Float32bits(s.Result))
	return rec
}

// DecodeSample unpacks a record produced by EncodeSample.
func DecodeSample(rec []byte) (Sample, error) {
	if len(rec) != RecordSize {
		return Sample{}, &chessmg.DecodeError{Reason: "wrong record length"}
	}
	pos, err := chessmg.DecodePosition(rec[:chessmg.PackedPositionSize])
	if err != nil {
		return Sample{}, err
	}
	r := math.Float32frombits(binary.LittleEndian.Uint32(rec[chessmg.PackedPositionSize:]))
	if r != NoResult && r != 0 && r != 0.5 && r != 1 {
		return Sample{}, &chessmg.DecodeError{Offset: chessmg.PackedPositionSize, Reason: "bad result label"}
	}
	return Sample{Position: pos, Result: r}, nil
}

// WriteBinary writes the header and all samples.
func WriteBinary(w io.Writer, samples []Sample) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, uint64(len(samples))); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, s := range samples {
		rec := EncodeSample(s)
		if _, err := bw.Write(rec[:]); err != nil {
			return fmt.Errorf("write sample %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// ReadBinary reads up to maxRows samples (0 = all).
func ReadBinary(r io.Reader, maxRows int) ([]Sample, error) {
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if maxRows > 0 && uint64(maxRows) < count {
		count = uint64(maxRows)
	}
	samples := make([]Sample, 0, min(count, 1<<16))
	var rec [RecordSize]byte
	for i := uint64(0); i < count; i++ {
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			return nil, fmt.Errorf("read sample %d: %w", i, err)
		}
		s, err := DecodeSample(rec[:])
		if err != nil {
			return nil, fmt.Errorf("decode sample %d: %w", i, err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// ReadBatch reads count samples starting at offset from a binary file.
// A short final batch is not an error.
func ReadBatch(path string, offset, count int) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	seekPos := int64(HeaderSize + offset*RecordSize)
	if _, err := f.Seek(seekPos, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to offset %d: %w", offset, err)
	}
	br := bufio.NewReader(f)
	samples := make([]Sample, 0, count)
	var rec [RecordSize]byte
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(br, rec[:]); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read sample %d: %w", offset+i, err)
		}
		s, err := DecodeSample(rec[:])
		if err != nil {
			return nil, fmt.Errorf("decode sample %d: %w", offset+i, err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// Count returns the number of samples recorded in a binary file header.
func Count(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var count uint64
	if err := binary.Read(f, binary.LittleEndian, &count); err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	return int(count), nil
}
