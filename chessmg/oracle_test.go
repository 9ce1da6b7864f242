package chessmg_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"chess-rules/chessmg"
)

// Standard move generation is cross-checked against dragontoothmg.

func oracleMoves(b *dragontoothmg.Board) []string {
	moves := b.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, strings.ToLower(m.String()))
	}
	slices.Sort(out)
	return out
}

func ourMoves(pos *chessmg.Position) []string {
	moves := pos.LegalMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, pos.UCI(m))
	}
	slices.Sort(out)
	return out
}

func TestLegalMovesMatchOracle(t *testing.T) {
	for _, tc := range perftCases {
		if tc.variant != chessmg.Standard {
			continue
		}
		pos := mustParse(t, tc.fen, chessmg.Standard)
		ref := dragontoothmg.ParseFen(pos.FEN())
		compareTree(t, pos, &ref, 2)
	}
}

func compareTree(t *testing.T, pos *chessmg.Position, ref *dragontoothmg.Board, depth int) {
	t.Helper()
	got, want := ourMoves(pos), oracleMoves(ref)
	if !slices.Equal(got, want) {
		t.Fatalf("%s:\n got %v\nwant %v", pos.FEN(), got, want)
	}
	if depth == 1 {
		return
	}
	for _, m := range ref.GenerateLegalMoves() {
		next, err := pos.ParseUCI(strings.ToLower(m.String()))
		if err != nil {
			t.Fatalf("%s: %v", pos.FEN(), err)
		}
		after, err := pos.Play(next)
		if err != nil {
			t.Fatal(err)
		}
		undo := ref.Apply(m)
		compareTree(t, after, ref, depth-1)
		undo()
	}
}

func TestRandomGamesMatchOracle(t *testing.T) {
	games := 40
	if testing.Short() {
		games = 5
	}
	rnd := rand.New(rand.NewSource(2024))
	for g := 0; g < games; g++ {
		pos := chessmg.NewPosition(chessmg.Standard)
		ref := dragontoothmg.ParseFen(pos.FEN())
		for ply := 0; ply < 200; ply++ {
			got, want := ourMoves(pos), oracleMoves(&ref)
			if !slices.Equal(got, want) {
				t.Fatalf("game %d ply %d %s:\n got %v\nwant %v", g, ply, pos.FEN(), got, want)
			}
			if len(got) == 0 || pos.Halfmoves() >= 100 {
				break
			}
			text := got[rnd.Intn(len(got))]
			m, err := pos.ParseUCI(text)
			if err != nil {
				t.Fatal(err)
			}
			if pos, err = pos.Play(m); err != nil {
				t.Fatal(err)
			}
			applied := false
			for _, rm := range ref.GenerateLegalMoves() {
				if strings.ToLower(rm.String()) == text {
					ref.Apply(rm)
					applied = true
					break
				}
			}
			if !applied {
				t.Fatalf("oracle has no move %s", text)
			}
		}
	}
}
