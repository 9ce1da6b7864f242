package chessmg_test

import (
	"testing"

	"chess-rules/chessmg"
)

type perftCase struct {
	name    string
	variant chessmg.Variant
	fen     string
	counts  []uint64
}

var perftCases = []perftCase{
	{"start", chessmg.Standard, chessmg.Standard.StartFEN(), []uint64{20, 400, 8902}},
	{"kiwipete", chessmg.Standard, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039, 97862}},
	{"pos3", chessmg.Standard, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812}},
	{"pos4", chessmg.Standard, "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}},
	{"pos5", chessmg.Standard, "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486, 62379}},
	{"pos6", chessmg.Standard, "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10", []uint64{46, 2079}},
	{"en passant", chessmg.Standard, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", []uint64{5, 19}},
	{"promotion", chessmg.Standard, "1n5k/P7/8/8/8/8/8/7K w - - 0 1", []uint64{11}},
	{"chess960", chessmg.Chess960, "bqnb1rkr/pp3ppp/3ppn2/2p5/5P2/P2P4/NPP1P1PP/BQ1BNRKR w HFhf - 2 9", []uint64{21, 528, 12189}},
	{"antichess start", chessmg.Antichess, chessmg.Antichess.StartFEN(), []uint64{20, 400, 8067}},
	{"atomic start", chessmg.Atomic, chessmg.Atomic.StartFEN(), []uint64{20, 400, 8902}},
	{"horde start", chessmg.Horde, chessmg.Horde.StartFEN(), []uint64{8, 128, 1274}},
	{"racing kings start", chessmg.RacingKings, chessmg.RacingKings.StartFEN(), []uint64{21, 421}},
	{"three-check start", chessmg.ThreeCheck, chessmg.ThreeCheck.StartFEN(), []uint64{20, 400, 8902}},
	{"king of the hill start", chessmg.KingOfTheHill, chessmg.KingOfTheHill.StartFEN(), []uint64{20, 400, 8902}},
	{"crazyhouse start", chessmg.Crazyhouse, chessmg.Crazyhouse.StartFEN(), []uint64{20, 400, 8902}},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := chessmg.ParseFEN(tc.fen, tc.variant)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.fen, err)
			}
			for i, want := range tc.counts {
				depth := i + 1
				if got := chessmg.Perft(pos, depth); got != want {
					t.Fatalf("%s depth%d: got %d want %d", tc.name, depth, got, want)
				}
			}
		})
	}
}

func TestPerftDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	start := chessmg.NewPosition(chessmg.Standard)
	if got := chessmg.Perft(start, 4); got != 197281 {
		t.Fatalf("start depth4: got %d want %d", got, 197281)
	}
	if got := chessmg.Perft(start, 5); got != 4865609 {
		t.Fatalf("start depth5: got %d want %d", got, 4865609)
	}
	kp, err := chessmg.ParseFEN(perftCases[1].fen, chessmg.Standard)
	if err != nil {
		t.Fatal(err)
	}
	if got := chessmg.Perft(kp, 4); got != 4085603 {
		t.Fatalf("kiwipete depth4: got %d want %d", got, 4085603)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	pos, err := chessmg.ParseFEN(perftCases[1].fen, chessmg.Standard)
	if err != nil {
		t.Fatal(err)
	}
	div := chessmg.PerftDivide(pos, 2)
	if len(div) != 48 {
		t.Fatalf("divide root moves: got %d want %d", len(div), 48)
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 2039 {
		t.Fatalf("divide sum: got %d want %d", sum, 2039)
	}
	if got := chessmg.Perft(pos, 0); got != 1 {
		t.Fatalf("depth0: got %d want 1", got)
	}
}
