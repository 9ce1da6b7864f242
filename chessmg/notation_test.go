package chessmg_test

import (
	"errors"
	"testing"

	"chess-rules/chessmg"
)

func TestSANDisambiguation(t *testing.T) {
	cases := []struct {
		fen  string
		want []string
	}{
		{"4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", []string{"Nbd2", "Nfd2"}},
		{"4k3/8/8/8/8/1N6/8/1N2K3 w - - 0 1", []string{"N1d2", "N3d2"}},
		{"4k3/8/8/8/8/Q7/8/Q1Q1K3 w - - 0 1", []string{"Qa1b2", "Q3b2", "Qcb2"}},
	}
	for _, tc := range cases {
		pos := mustParse(t, tc.fen, chessmg.Standard)
		for _, san := range tc.want {
			m, err := pos.ParseSAN(san)
			if err != nil {
				t.Fatalf("%s: parse %q: %v", tc.fen, san, err)
			}
			if got := pos.SAN(m); got != san {
				t.Fatalf("%s: got %q want %q", tc.fen, got, san)
			}
		}
	}
}

func TestSANAmbiguousAndInvalid(t *testing.T) {
	pos := mustParse(t, "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1", chessmg.Standard)
	cases := []string{"Nd2", "", "Zd2", "Nd9", "Kd8", "e4", "O-O", "Q@e4"}
	for _, san := range cases {
		_, err := pos.ParseSAN(san)
		var se *chessmg.SanError
		if !errors.As(err, &se) || !errors.Is(err, chessmg.ErrInvalidSan) {
			t.Fatalf("%q: expected SanError, got %v", san, err)
		}
	}
	_, err := pos.ParseSAN("Nd2")
	if se := err.(*chessmg.SanError); se.Reason != "ambiguous" {
		t.Fatalf("Nd2: got reason %q want ambiguous", se.Reason)
	}
}

func TestSANPawnForms(t *testing.T) {
	pos := mustParse(t, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", chessmg.Standard)
	push, err := pos.ParseSAN("e5")
	if err != nil {
		t.Fatal(err)
	}
	if push.IsCapture() {
		t.Fatalf("e5 parsed as capture")
	}
	if _, err := pos.ParseSAN("d5"); err == nil {
		t.Fatalf("d5 must not match the capture exd5")
	}
	cap, err := pos.ParseSAN("exd5")
	if err != nil {
		t.Fatal(err)
	}
	if got := pos.SAN(cap); got != "exd5" {
		t.Fatalf("SAN: got %q want exd5", got)
	}

	promo := mustParse(t, "3r3k/4P3/8/8/8/8/8/K7 w - - 0 1", chessmg.Standard)
	for _, text := range []string{"exd8=N", "exd8N", "ed8=N"} {
		m, err := promo.ParseSAN(text)
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		if m.Promotion() != chessmg.Knight || !m.IsCapture() {
			t.Fatalf("%q: parsed %s", text, m)
		}
	}
	m, _ := promo.ParseSAN("e8=Q")
	if got := promo.SAN(m); got != "e8=Q+" {
		t.Fatalf("SAN: got %q want e8=Q+", got)
	}
}

func TestCastlingNotation(t *testing.T) {
	const fen = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	std := mustParse(t, fen, chessmg.Standard)
	short, err := std.ParseSAN("O-O")
	if err != nil {
		t.Fatal(err)
	}
	if !short.IsCastle() || short.To() != chessmg.H1 {
		t.Fatalf("O-O parsed as %s", short)
	}
	if got := std.UCI(short); got != "e1g1" {
		t.Fatalf("standard UCI: got %q want e1g1", got)
	}
	for _, text := range []string{"e1g1", "e1h1", "0-0"} {
		m, err := std.ParseMove(text)
		if err != nil || m != short {
			t.Fatalf("%q: got %s, %v", text, m, err)
		}
	}
	long, err := std.ParseUCI("e1c1")
	if err != nil {
		t.Fatal(err)
	}
	if got := std.SAN(long); got != "O-O-O" {
		t.Fatalf("SAN: got %q want O-O-O", got)
	}

	c960 := mustParse(t, fen, chessmg.Chess960)
	m, err := c960.ParseSAN("O-O")
	if err != nil {
		t.Fatal(err)
	}
	if got := c960.UCI(m); got != "e1h1" {
		t.Fatalf("chess960 UCI: got %q want e1h1", got)
	}
	if _, err := c960.ParseUCI("e1g1"); err == nil {
		t.Fatalf("e1g1 is a plain king step in chess960 mode")
	}

	after, err := std.Play(short)
	if err != nil {
		t.Fatal(err)
	}
	b := after.Board()
	if b.PieceAt(chessmg.G1) != chessmg.WhiteKing || b.PieceAt(chessmg.F1) != chessmg.WhiteRook {
		t.Fatalf("after O-O: %s", after.FEN())
	}
	if got := after.FEN(); got != "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1" {
		t.Fatalf("fen after O-O: got %q", got)
	}
}

func TestUCIErrors(t *testing.T) {
	pos := chessmg.NewPosition(chessmg.Standard)
	for _, text := range []string{"0000", "e2", "e2e5", "z2e4", "e7e8x", "e2e4qq", "N@e4"} {
		_, err := pos.ParseUCI(text)
		if !errors.Is(err, chessmg.ErrInvalidUci) {
			t.Fatalf("%q: expected UciError, got %v", text, err)
		}
	}
	m, err := pos.ParseUCI("g1f3")
	if err != nil {
		t.Fatal(err)
	}
	if got := pos.UCI(m); got != "g1f3" {
		t.Fatalf("UCI: got %q want g1f3", got)
	}
	if got := m.String(); got != "g1f3" {
		t.Fatalf("String: got %q want g1f3", got)
	}
	if got := chessmg.NewPut(chessmg.Knight, chessmg.E4).String(); got != "N@e4" {
		t.Fatalf("drop String: got %q want N@e4", got)
	}
	if got := chessmg.NoMove.String(); got != "0000" {
		t.Fatalf("null move: got %q", got)
	}
}

func TestIllegalMoveKeepsPosition(t *testing.T) {
	pos := chessmg.NewPosition(chessmg.Standard)
	before := pos.FEN()
	hash := pos.Hash()
	bad := chessmg.NewNormal(chessmg.Queen, chessmg.D1, chessmg.D5, chessmg.NoRole, chessmg.NoRole)
	next, err := pos.Play(bad)
	if next != nil || !errors.Is(err, chessmg.ErrIllegalMove) {
		t.Fatalf("expected illegal move error, got %v", err)
	}
	var ie *chessmg.IllegalMoveError
	if !errors.As(err, &ie) || ie.Move != bad {
		t.Fatalf("error does not carry the move: %v", err)
	}
	if pos.FEN() != before || pos.Hash() != hash {
		t.Fatalf("position changed after illegal move")
	}
}
