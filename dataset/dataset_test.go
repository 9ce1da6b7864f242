package dataset_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chess-rules/chessmg"
	"chess-rules/dataset"
)

const book = `# sample book
rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1 [0.5]
r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1 [1.0]

8/8/8/8/8/8/8/K6k w - - ; bare kings
not a fen
4k3/8/8/8/8/8/8/4K3 w - - 0 1 [0.7]
`

func TestScannerSkipsMalformed(t *testing.T) {
	sc := dataset.NewScanner(strings.NewReader(book), chessmg.Standard)
	var got []dataset.Sample
	for sc.Scan() {
		got = append(got, sc.Sample())
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("samples: got %d want 3", len(got))
	}
	if got[0].Result != 0.5 || got[1].Result != 1 || got[2].Result != dataset.NoResult {
		t.Fatalf("results: got %v %v %v", got[0].Result, got[1].Result, got[2].Result)
	}
	if got[2].Position.FEN() != "8/8/8/8/8/8/8/K6k w - - 0 1" {
		t.Fatalf("epd line: got %s", got[2].Position.FEN())
	}
	skipped, last := sc.Skipped()
	if skipped != 2 || last == nil || !strings.Contains(last.Error(), "line 7") {
		t.Fatalf("skipped: got %d, %v", skipped, last)
	}
}

func TestParseLineCrazyhousePocket(t *testing.T) {
	s, err := dataset.ParseLine("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[Nn] w KQkq - 0 1", chessmg.Crazyhouse)
	if err != nil {
		t.Fatal(err)
	}
	if s.Result != dataset.NoResult || s.Position.Pocket(chessmg.White)[chessmg.Knight] != 1 {
		t.Fatalf("pocket line misread: %s", dataset.FormatLine(s))
	}
	s, err = dataset.ParseLine("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[Nn] w KQkq - 0 1 [0.0]", chessmg.Crazyhouse)
	if err != nil {
		t.Fatal(err)
	}
	if s.Result != 0 {
		t.Fatalf("result: got %v want 0", s.Result)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	sc := dataset.NewScanner(strings.NewReader(book), chessmg.Standard)
	var samples []dataset.Sample
	for sc.Scan() {
		samples = append(samples, sc.Sample())
	}

	var buf bytes.Buffer
	if err := dataset.WriteBinary(&buf, samples); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.Len(), dataset.HeaderSize+len(samples)*dataset.RecordSize; got != want {
		t.Fatalf("file size: got %d want %d", got, want)
	}
	back, err := dataset.ReadBinary(bytes.NewReader(buf.Bytes()), 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := range samples {
		if back[i].Position.FEN() != samples[i].Position.FEN() || back[i].Result != samples[i].Result {
			t.Fatalf("sample %d: got %s want %s", i, dataset.FormatLine(back[i]), dataset.FormatLine(samples[i]))
		}
	}

	limited, err := dataset.ReadBinary(bytes.NewReader(buf.Bytes()), 2)
	if err != nil || len(limited) != 2 {
		t.Fatalf("maxRows: got %d, %v", len(limited), err)
	}

	data := buf.Bytes()
	data[dataset.HeaderSize] = 9 // version byte of the first record
	if _, err := dataset.ReadBinary(bytes.NewReader(data), 0); !errors.Is(err, chessmg.ErrDecode) {
		t.Fatalf("corrupt record: got %v", err)
	}
	if _, err := dataset.ReadBinary(bytes.NewReader(data[:dataset.HeaderSize+10]), 0); err == nil {
		t.Fatalf("truncated file should fail")
	}
}

func TestConvertFiles(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "book.epd")
	binPath := filepath.Join(dir, "book.bin")
	backPath := filepath.Join(dir, "back.epd")
	if err := os.WriteFile(textPath, []byte(book), 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := dataset.ConvertToBinary(textPath, binPath, chessmg.Standard, 0)
	if err != nil {
		t.Fatal(err)
	}
	if st.Written != 3 || st.Skipped != 2 {
		t.Fatalf("stats: %+v", st)
	}
	n, err := dataset.Count(binPath)
	if err != nil || n != 3 {
		t.Fatalf("count: got %d, %v", n, err)
	}
	batch, err := dataset.ReadBatch(binPath, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 2 || batch[0].Result != 1 {
		t.Fatalf("batch: got %d samples", len(batch))
	}

	if _, err := dataset.ConvertToText(binPath, backPath, 0); err != nil {
		t.Fatal(err)
	}
	text, err := os.ReadFile(backPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1 [0.5]\n" +
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1 [1.0]\n" +
		"8/8/8/8/8/8/8/K6k w - - 0 1\n"
	if string(text) != want {
		t.Fatalf("text round trip:\n%s", text)
	}

	st, err = dataset.ConvertToBinary(textPath, binPath, chessmg.Standard, 1)
	if err != nil || st.Written != 1 {
		t.Fatalf("maxRows conversion: %+v, %v", st, err)
	}
}
