package chessmg

import (
	"math/rand"
	"testing"
)

func TestSliderLookupsMatchRayWalk(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for sq := A1; sq <= H8; sq++ {
		for i := 0; i < 200; i++ {
			occ := Bitboard(rnd.Uint64() & rnd.Uint64())
			if got, want := RookAttacks(sq, occ), slidingAttacks(sq, occ, &rookDeltas); got != want {
				t.Fatalf("rook %s occ %#x: got %#x want %#x", sq, uint64(occ), uint64(got), uint64(want))
			}
			if got, want := BishopAttacks(sq, occ), slidingAttacks(sq, occ, &bishopDeltas); got != want {
				t.Fatalf("bishop %s occ %#x: got %#x want %#x", sq, uint64(occ), uint64(got), uint64(want))
			}
		}
	}
}

func TestLeaperTables(t *testing.T) {
	if got := KnightAttacks(A1); got != B3.Bitboard()|C2.Bitboard() {
		t.Fatalf("knight a1: got %v", got.Squares())
	}
	if got := KingAttacks(H8).Count(); got != 3 {
		t.Fatalf("king h8 count: got %d want 3", got)
	}
	if got := PawnAttacks(White, A2); got != B3.Bitboard() {
		t.Fatalf("white pawn a2: got %v", got.Squares())
	}
	if got := PawnAttacks(Black, H7); got != G6.Bitboard() {
		t.Fatalf("black pawn h7: got %v", got.Squares())
	}
}

func TestBetweenAndLine(t *testing.T) {
	if got := Between(A1, D4); got != B2.Bitboard()|C3.Bitboard() {
		t.Fatalf("between a1 d4: got %v", got.Squares())
	}
	if Between(A1, B3) != 0 || Line(A1, B3) != 0 {
		t.Fatalf("a1 and b3 are not aligned")
	}
	if got := Line(E1, E4); got != FileE {
		t.Fatalf("line e1 e4: got %v", got.Squares())
	}
	if !Aligned(A1, C3, H8) || Aligned(A1, C3, H7) {
		t.Fatalf("aligned long diagonal mismatch")
	}
}

func TestIncrementalHashMatchesRecompute(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for v := Standard; v < variantCount; v++ {
		p := NewPosition(v)
		for ply := 0; ply < 80; ply++ {
			if p.hash != p.ComputeHash() {
				t.Fatalf("%s ply %d: incremental hash %#x, recomputed %#x (%s)", v, ply, p.hash, p.ComputeHash(), p.FEN())
			}
			moves := p.LegalMoves()
			if len(moves) == 0 {
				break
			}
			next := *p
			next.playUnchecked(moves[rnd.Intn(len(moves))])
			p = &next
		}
	}
}
