package chessmg_test

import (
	"math/rand"
	"testing"

	"chess-rules/chessmg"
)

// randomPlayout walks a seeded random game and calls check before every move.
func randomPlayout(t *testing.T, start *chessmg.Position, seed int64, plies int, check func(pos *chessmg.Position, moves []chessmg.Move)) {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	pos := start
	for ply := 0; ply < plies; ply++ {
		moves := pos.LegalMoves()
		check(pos, moves)
		if len(moves) == 0 {
			return
		}
		next, err := pos.Play(moves[rnd.Intn(len(moves))])
		if err != nil {
			t.Fatalf("ply %d: %v", ply, err)
		}
		pos = next
	}
}

func playoutStarts(t *testing.T) []*chessmg.Position {
	starts := make([]*chessmg.Position, 0, len(chessmg.Variants)+2)
	for _, v := range chessmg.Variants {
		starts = append(starts, chessmg.NewPosition(v))
	}
	c960, err := chessmg.Chess960Position(7)
	if err != nil {
		t.Fatal(err)
	}
	starts = append(starts, c960)
	starts = append(starts, mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", chessmg.Standard))
	return starts
}

func TestPlayoutInvariants(t *testing.T) {
	games := 6
	if testing.Short() {
		games = 2
	}
	for _, start := range playoutStarts(t) {
		for g := 0; g < games; g++ {
			randomPlayout(t, start, int64(g+1), 120, func(pos *chessmg.Position, moves []chessmg.Move) {
				fen := pos.FEN()
				if pos.Hash() != pos.ComputeHash() {
					t.Fatalf("%s: hash drift", fen)
				}
				b := pos.Board()
				if !b.Validate() {
					t.Fatalf("%s: inconsistent board", fen)
				}

				back, err := chessmg.ParseFEN(fen, pos.Variant())
				if err != nil {
					t.Fatalf("%s: re-parse: %v", fen, err)
				}
				if !back.Equal(pos) || back.Hash() != pos.Hash() || back.FEN() != fen {
					t.Fatalf("%s: FEN round trip got %s", fen, back.FEN())
				}

				packed := chessmg.EncodePosition(pos)
				unpacked, err := chessmg.DecodePosition(packed[:])
				if err != nil {
					t.Fatalf("%s: decode: %v", fen, err)
				}
				if unpacked.FEN() != fen || unpacked.Hash() != pos.Hash() {
					t.Fatalf("%s: packed round trip got %s", fen, unpacked.FEN())
				}

				for _, m := range moves {
					san := pos.SAN(m)
					got, err := pos.ParseSAN(san)
					if err != nil || got != m {
						t.Fatalf("%s: SAN %q of %s parsed to %s, %v", fen, san, m, got, err)
					}
					uci := pos.UCI(m)
					got, err = pos.ParseUCI(uci)
					if err != nil || got != m {
						t.Fatalf("%s: UCI %q of %s parsed to %s, %v", fen, uci, m, got, err)
					}
					buf := chessmg.EncodeMove(m)
					if dm, err := chessmg.DecodeMove(buf[:]); err != nil || dm != m {
						t.Fatalf("%s: packed move %s: %v", fen, m, err)
					}
				}
			})
		}
	}
}

func TestPlayoutOutcomeConsistent(t *testing.T) {
	for _, start := range playoutStarts(t) {
		randomPlayout(t, start, 99, 400, func(pos *chessmg.Position, moves []chessmg.Move) {
			out, term := pos.Outcome()
			if len(moves) == 0 && out == chessmg.NoOutcome {
				t.Fatalf("%s: no legal moves but no outcome", pos.FEN())
			}
			if term == chessmg.Checkmate && !pos.IsCheck() {
				t.Fatalf("%s: checkmate without check", pos.FEN())
			}
			if pos.IsGameOver() != (out != chessmg.NoOutcome) {
				t.Fatalf("%s: IsGameOver disagrees with Outcome", pos.FEN())
			}
		})
	}
}

func TestMirrorPreservesMoveCount(t *testing.T) {
	for _, start := range playoutStarts(t) {
		v := start.Variant()
		if v == chessmg.Horde || v == chessmg.RacingKings {
			// asymmetric armies
			continue
		}
		randomPlayout(t, start, 5, 60, func(pos *chessmg.Position, moves []chessmg.Move) {
			mirrored, err := chessmg.FromSetup(pos.Setup().Mirror(), v, pos.CastlingMode())
			if err != nil {
				t.Fatalf("%s: mirror: %v", pos.FEN(), err)
			}
			if got := len(mirrored.LegalMoves()); got != len(moves) {
				t.Fatalf("%s: mirrored has %d moves want %d", pos.FEN(), got, len(moves))
			}
		})
	}
}
