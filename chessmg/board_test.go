package chessmg_test

import (
	"testing"

	"chess-rules/chessmg"
)

func TestNewBoardMailbox(t *testing.T) {
	b := chessmg.NewBoard()
	for sq, want := range map[chessmg.Square]chessmg.Piece{
		chessmg.A1: chessmg.WhiteRook,
		chessmg.E1: chessmg.WhiteKing,
		chessmg.D8: chessmg.BlackQueen,
		chessmg.A8: chessmg.BlackRook,
		chessmg.E4: chessmg.NoPiece,
	} {
		if got := b.PieceAt(sq); got != want {
			t.Errorf("%s: got %v want %v", sq, got, want)
		}
	}
	if !b.Validate() {
		t.Fatalf("start board failed validation")
	}
	if got := b.Occupied().Count(); got != 32 {
		t.Fatalf("occupied: got %d want 32", got)
	}
}

func TestAttacksToSliders(t *testing.T) {
	var b chessmg.Board
	b.SetPiece(chessmg.E1, chessmg.WhiteKing)
	b.SetPiece(chessmg.E8, chessmg.BlackRook)
	if b.AttacksTo(chessmg.E1, chessmg.Black, b.Occupied()) == 0 {
		t.Fatalf("expected e1 attacked by rook on the file")
	}
	b.SetPiece(chessmg.E3, chessmg.WhitePawn)
	if b.AttacksTo(chessmg.E1, chessmg.Black, b.Occupied()) != 0 {
		t.Fatalf("did not expect e1 attacked after blocker added")
	}
	// x-ray through the blocker when it is removed from the occupancy
	if b.AttacksTo(chessmg.E1, chessmg.Black, b.Occupied().Without(chessmg.E3)) == 0 {
		t.Fatalf("expected e1 attacked with e3 treated as empty")
	}

	b.SetPiece(chessmg.B4, chessmg.BlackBishop)
	if got := b.AttacksTo(chessmg.E1, chessmg.Black, b.Occupied()); got != chessmg.B4.Bitboard() {
		t.Fatalf("expected bishop attack only, got\n%s", got)
	}
	b.SetPiece(chessmg.D2, chessmg.WhitePawn)
	if b.AttacksTo(chessmg.E1, chessmg.Black, b.Occupied()) != 0 {
		t.Fatalf("did not expect e1 attacked after diagonal blocker")
	}
}

func TestAttacksToLeapers(t *testing.T) {
	var b chessmg.Board
	b.SetPiece(chessmg.E1, chessmg.WhiteKing)
	b.SetPiece(chessmg.E4, chessmg.WhitePawn)
	b.SetPiece(chessmg.D5, chessmg.BlackPawn)
	if b.AttacksTo(chessmg.E4, chessmg.Black, b.Occupied()) != chessmg.D5.Bitboard() {
		t.Fatalf("expected e4 attacked by black pawn from d5")
	}
	if b.AttacksTo(chessmg.D5, chessmg.White, b.Occupied()) != chessmg.E4.Bitboard() {
		t.Fatalf("expected d5 attacked by white pawn from e4")
	}
	b.SetPiece(chessmg.F3, chessmg.BlackKnight)
	b.SetPiece(chessmg.D2, chessmg.BlackKing)
	want := chessmg.F3.Bitboard() | chessmg.D2.Bitboard()
	if got := b.AttacksTo(chessmg.E1, chessmg.Black, b.Occupied()); got != want {
		t.Fatalf("e1 attackers: got\n%s\nwant\n%s", got, want)
	}
	if got := b.AttacksFrom(chessmg.F3); got != chessmg.KnightAttacks(chessmg.F3) {
		t.Fatalf("AttacksFrom knight mismatch")
	}
	if b.AttacksFrom(chessmg.H8) != 0 {
		t.Fatalf("empty square should attack nothing")
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	mate := mustParse(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chessmg.Standard)
	if mate.IsCheck() {
		t.Fatalf("queen on f7 should not check h8")
	}
	if !mate.IsStalemate() {
		t.Fatalf("expected stalemate")
	}

	pos := mustParse(t, "6k1/8/6K1/8/8/8/8/7Q w - - 0 1", chessmg.Standard)
	after := mustPlay(t, pos, "Qh7+")
	if after.IsCheckmate() {
		t.Fatalf("Qh7+ is not mate, Kf8 escapes")
	}
	after = mustPlay(t, pos, "Qb7")
	if !after.HasLegalMoves() {
		t.Fatalf("black should have moves after Qb7")
	}
	mated := mustPlay(t, mustParse(t, "6k1/8/6K1/8/8/8/8/Q7 w - - 0 1", chessmg.Standard), "Qa8#")
	if !mated.IsCheckmate() || mated.Checkers() != chessmg.A8.Bitboard() {
		t.Fatalf("expected mate by the a8 queen: %s", mated.FEN())
	}
}
