package game

import (
	"fmt"
	"strings"

	"chess-rules/chessmg"
)

// Reason explains how a game ended. The first values mirror
// chessmg.Termination; the rest are game-level rules that need history.
type Reason uint8

const (
	Ongoing Reason = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	VariantEnd
	FivefoldRepetition
	SeventyFiveMoves
)

func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case VariantEnd:
		return "variant end"
	case FivefoldRepetition:
		return "fivefold repetition"
	case SeventyFiveMoves:
		return "seventy-five-move rule"
	}
	return "ongoing"
}

// Game is a move sequence from a start position. positions[i] is the
// position before moves[i]; the last entry is the current position.
type Game struct {
	positions []*chessmg.Position
	moves     []chessmg.Move
	sans      []string
}

// New starts a game from the variant's initial position.
func New(v chessmg.Variant) *Game {
	return FromPosition(chessmg.NewPosition(v))
}

// FromFEN starts a game from a FEN.
func FromFEN(fen string, v chessmg.Variant) (*Game, error) {
	pos, err := chessmg.ParseFEN(fen, v)
	if err != nil {
		return nil, err
	}
	return FromPosition(pos), nil
}

func FromPosition(pos *chessmg.Position) *Game {
	return &Game{positions: []*chessmg.Position{pos}}
}

func (g *Game) Start() *chessmg.Position    { return g.positions[0] }
func (g *Game) Position() *chessmg.Position { return g.positions[len(g.positions)-1] }
func (g *Game) Variant() chessmg.Variant    { return g.positions[0].Variant() }

// Plies returns the number of moves played.
func (g *Game) Plies() int { return len(g.moves) }

func (g *Game) Moves() []chessmg.Move {
	return append([]chessmg.Move(nil), g.moves...)
}

// SANs returns the moves in SAN, as they were written when played.
func (g *Game) SANs() []string {
	return append([]string(nil), g.sans...)
}

// Push parses a move in UCI or SAN and plays it.
func (g *Game) Push(text string) (chessmg.Move, error) {
	m, err := g.Position().ParseMove(text)
	if err != nil {
		return chessmg.NoMove, err
	}
	return m, g.PlayMove(m)
}

// PlayMove plays a legal move. The game is unchanged on error.
func (g *Game) PlayMove(m chessmg.Move) error {
	cur := g.Position()
	if over, reason := g.Outcome(); over != chessmg.NoOutcome {
		return fmt.Errorf("%w: game is over (%s)", chessmg.ErrIllegalMove, reason)
	}
	next, err := cur.Play(m)
	if err != nil {
		return err
	}
	g.sans = append(g.sans, cur.SAN(m))
	g.moves = append(g.moves, m)
	g.positions = append(g.positions, next)
	return nil
}

// Undo takes back the last move.
func (g *Game) Undo() (chessmg.Move, bool) {
	n := len(g.moves)
	if n == 0 {
		return chessmg.NoMove, false
	}
	m := g.moves[n-1]
	g.moves = g.moves[:n-1]
	g.sans = g.sans[:n-1]
	g.positions = g.positions[:n]
	return m, true
}

// Repetitions counts how often the current position has occurred,
// itself included. Only positions since the last capture or pawn move
// can repeat.
func (g *Game) Repetitions() int {
	cur := g.Position()
	count := 1
	last := len(g.positions) - 1
	stop := last - cur.Halfmoves()
	if stop < 0 {
		stop = 0
	}
	for i := last - 2; i >= stop; i -= 2 {
		p := g.positions[i]
		if p.Hash() == cur.Hash() && p.Equal(cur) {
			count++
		}
	}
	return count
}

func (g *Game) CanClaimThreefold() bool { return g.Repetitions() >= 3 }

func (g *Game) CanClaimFiftyMoves() bool { return g.Position().Halfmoves() >= 100 }

// CanClaimDraw reports whether the side to move may claim a draw.
func (g *Game) CanClaimDraw() bool {
	return g.CanClaimThreefold() || g.CanClaimFiftyMoves()
}

// Outcome combines the position's own result with the automatic
// repetition and move-count draws.
func (g *Game) Outcome() (chessmg.Outcome, Reason) {
	pos := g.Position()
	out, term := pos.Outcome()
	if out != chessmg.NoOutcome {
		return out, Reason(term)
	}
	if g.Repetitions() >= 5 {
		return chessmg.Draw, FivefoldRepetition
	}
	if pos.Halfmoves() >= 150 {
		return chessmg.Draw, SeventyFiveMoves
	}
	return chessmg.NoOutcome, Ongoing
}

// Movetext renders the moves with move numbers and the result token,
// e.g. "1. e4 e5 2. Nf3 *".
func (g *Game) Movetext() string {
	var sb strings.Builder
	for i, san := range g.sans {
		pos := g.positions[i]
		switch {
		case pos.Turn() == chessmg.White:
			fmt.Fprintf(&sb, "%d. ", pos.Fullmoves())
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", pos.Fullmoves())
		}
		sb.WriteString(san)
		sb.WriteByte(' ')
	}
	out, _ := g.Outcome()
	sb.WriteString(out.String())
	return sb.String()
}

// PGN renders the game with the tags needed to replay it: Variant for
// anything but standard chess, FEN and SetUp for non-initial starts.
func (g *Game) PGN(tags map[string]string) string {
	var sb strings.Builder
	start := g.Start()
	out, _ := g.Outcome()
	for _, key := range []string{"Event", "Site", "Date", "Round", "White", "Black"} {
		val, ok := tags[key]
		if !ok {
			val = "?"
		}
		fmt.Fprintf(&sb, "[%s %q]\n", key, val)
	}
	fmt.Fprintf(&sb, "[Result %q]\n", out.String())
	if v := g.Variant(); v != chessmg.Standard {
		fmt.Fprintf(&sb, "[Variant %q]\n", v.PGNName())
	}
	if fen := start.FEN(); fen != g.Variant().StartFEN() {
		fmt.Fprintf(&sb, "[FEN %q]\n[SetUp \"1\"]\n", fen)
	}
	sb.WriteByte('\n')
	sb.WriteString(g.Movetext())
	sb.WriteByte('\n')
	return sb.String()
}
