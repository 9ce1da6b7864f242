package bench

import (
	"testing"

	eng "github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-rules/chessmg"
)

const (
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos6     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
)

func mustParse(b *testing.B, fen string, v chessmg.Variant) *chessmg.Position {
	pos, err := chessmg.ParseFEN(fen, v)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	return pos
}

func benchLegalMoves(b *testing.B, fen string, v chessmg.Variant) {
	pos := mustParse(b, fen, v)
	buf := make([]chessmg.Move, 0, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = pos.LegalMovesInto(buf[:0])
	}
}

func BenchmarkLegalMoves_Initial(b *testing.B) {
	benchLegalMoves(b, chessmg.Standard.StartFEN(), chessmg.Standard)
}

func BenchmarkLegalMoves_Kiwipete(b *testing.B) {
	benchLegalMoves(b, kiwipete, chessmg.Standard)
}

func BenchmarkLegalMoves_Pos6(b *testing.B) {
	benchLegalMoves(b, pos6, chessmg.Standard)
}

func BenchmarkLegalMoves_Atomic(b *testing.B) {
	benchLegalMoves(b, kiwipete, chessmg.Atomic)
}

func BenchmarkLegalMoves_CrazyhouseDrops(b *testing.B) {
	benchLegalMoves(b, "r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R[NBn] w KQkq - 0 5", chessmg.Crazyhouse)
}

// Same positions through GooseEngineMG, for comparison.
func benchGooseMoves(b *testing.B, fen string) {
	board, err := eng.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	buf := make([]eng.Move, 0, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = board.GenerateMovesInto(buf)
		buf = buf[:0]
	}
}

func BenchmarkGooseGenerateMoves_Initial(b *testing.B) {
	benchGooseMoves(b, eng.FENStartPos)
}

func BenchmarkGooseGenerateMoves_Kiwipete(b *testing.B) {
	benchGooseMoves(b, kiwipete)
}

func BenchmarkPlay_AllMoves_Initial(b *testing.B) {
	pos := chessmg.NewPosition(chessmg.Standard)
	moves := pos.LegalMoves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			if _, err := pos.Play(m); err != nil {
				b.Fatalf("illegal move in cached list: %v", m)
			}
		}
	}
}
