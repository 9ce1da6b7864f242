package chessmg_test

import (
	"testing"

	"chess-rules/chessmg"
)

func TestShiftsDoNotWrap(t *testing.T) {
	if got := chessmg.FileH.East(); got != 0 {
		t.Fatalf("FileH.East: got %#x want 0", uint64(got))
	}
	if got := chessmg.FileA.West(); got != 0 {
		t.Fatalf("FileA.West: got %#x want 0", uint64(got))
	}
	if got := chessmg.Rank8.North(); got != 0 {
		t.Fatalf("Rank8.North: got %#x want 0", uint64(got))
	}
	if got := chessmg.H4.Bitboard().NorthEast(); got != 0 {
		t.Fatalf("h4 NE: got %v", got.Squares())
	}
	if got := chessmg.E4.Bitboard().Forward(chessmg.Black); got != chessmg.E3.Bitboard() {
		t.Fatalf("black forward from e4: got %v", got.Squares())
	}
}

func TestSquaresAscending(t *testing.T) {
	bb := chessmg.H8.Bitboard() | chessmg.A1.Bitboard() | chessmg.D4.Bitboard()
	got := bb.Squares()
	want := []chessmg.Square{chessmg.A1, chessmg.D4, chessmg.H8}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
	if bb.Count() != 3 || !bb.MoreThanOne() || bb.Single() != chessmg.NoSquare {
		t.Fatalf("count helpers disagree")
	}
	if bb.First() != chessmg.A1 || bb.Last() != chessmg.H8 {
		t.Fatalf("first/last: got %s/%s", bb.First(), bb.Last())
	}
	var empty chessmg.Bitboard
	if empty.First() != chessmg.NoSquare || empty.Single() != chessmg.NoSquare {
		t.Fatalf("empty bitboard should report NoSquare")
	}
}

func TestFlipsAndRotations(t *testing.T) {
	a1 := chessmg.A1.Bitboard()
	cases := []struct {
		name string
		got  chessmg.Bitboard
		want chessmg.Square
	}{
		{"vertical", a1.FlipVertical(), chessmg.A8},
		{"horizontal", a1.FlipHorizontal(), chessmg.H1},
		{"diagonal", chessmg.A2.Bitboard().FlipDiagonal(), chessmg.B1},
		{"anti-diagonal", a1.FlipAntiDiagonal(), chessmg.H8},
		{"rotate180", a1.Rotate180(), chessmg.H8},
	}
	for _, tc := range cases {
		if tc.got != tc.want.Bitboard() {
			t.Fatalf("%s: got %v want %s", tc.name, tc.got.Squares(), tc.want)
		}
	}
	bb := chessmg.Bitboard(0x0123456789ABCDEF)
	if bb.Rotate90().Rotate90() != bb.Rotate180() {
		t.Fatalf("two quarter turns differ from a half turn")
	}
	if bb.Rotate90().Rotate270() != bb {
		t.Fatalf("rotate90 and rotate270 do not cancel")
	}
	if bb.FlipDiagonal().FlipDiagonal() != bb {
		t.Fatalf("diagonal flip is not an involution")
	}
}

func TestSquareParsing(t *testing.T) {
	for sq := chessmg.A1; sq <= chessmg.H8; sq++ {
		got, ok := chessmg.ParseSquare(sq.String())
		if !ok || got != sq {
			t.Fatalf("%s: got %s", sq, got)
		}
	}
	for _, s := range []string{"", "i1", "a0", "a9", "e44"} {
		if _, ok := chessmg.ParseSquare(s); ok {
			t.Fatalf("%q should not parse", s)
		}
	}
	if got := chessmg.E2.Relative(chessmg.Black); got != chessmg.E7 {
		t.Fatalf("relative: got %s want e7", got)
	}
	if chessmg.NoSquare.String() != "-" {
		t.Fatalf("NoSquare string: got %q", chessmg.NoSquare.String())
	}
}

func TestBoardFromBitboards(t *testing.T) {
	start := chessmg.NewBoard()
	var roles [6]chessmg.Bitboard
	for i, r := range chessmg.Roles {
		roles[i] = start.ByRole(r)
	}
	b, err := chessmg.BoardFromBitboards(roles, start.ByColor(chessmg.White), start.ByColor(chessmg.Black))
	if err != nil {
		t.Fatal(err)
	}
	if b != start {
		t.Fatalf("rebuilt board differs:\n%s", b.String())
	}
	roles[0] |= chessmg.E4.Bitboard()
	if _, err := chessmg.BoardFromBitboards(roles, start.ByColor(chessmg.White), start.ByColor(chessmg.Black)); err == nil {
		t.Fatalf("expected mismatch error")
	}
}
