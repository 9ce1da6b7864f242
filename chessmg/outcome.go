package chessmg

// Outcome is the result of a finished game.
type Outcome uint8

const (
	NoOutcome Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

// Win returns the outcome in which c wins.
func Win(c Color) Outcome {
	if c == White {
		return WhiteWins
	}
	return BlackWins
}

// Winner returns the winning side of a decisive outcome.
func (o Outcome) Winner() (Color, bool) {
	switch o {
	case WhiteWins:
		return White, true
	case BlackWins:
		return Black, true
	}
	return White, false
}

func (o Outcome) IsDecisive() bool { return o == WhiteWins || o == BlackWins }

// String returns the PGN result token.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// Termination explains why a game ended.
type Termination uint8

const (
	NoTermination Termination = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	VariantEnd
)

func (t Termination) String() string {
	switch t {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case VariantEnd:
		return "variant end"
	}
	return "none"
}

// Outcome reports how the game stands. Variant terminations take
// precedence, then positions without legal moves, then insufficient material.
func (p *Position) Outcome() (Outcome, Termination) {
	rules := p.variant.rules()
	if o, over := rules.end(p); over {
		return o, VariantEnd
	}
	if !p.HasLegalMoves() {
		return rules.noMoves(p)
	}
	if p.IsInsufficientMaterial() {
		return Draw, InsufficientMaterial
	}
	return NoOutcome, NoTermination
}

// IsGameOver reports whether Outcome would return a result.
func (p *Position) IsGameOver() bool {
	o, _ := p.Outcome()
	return o != NoOutcome
}

// IsCheckmate reports whether the side to move is in check without moves.
func (p *Position) IsCheckmate() bool {
	_, t := p.Outcome()
	return t == Checkmate
}

// IsStalemate reports whether the side to move has no moves and is not in check.
func (p *Position) IsStalemate() bool {
	_, t := p.Outcome()
	return t == Stalemate
}

// IsVariantEnd reports whether a variant-specific rule ended the game.
func (p *Position) IsVariantEnd() bool {
	_, over := p.variant.rules().end(p)
	return over
}

// HasInsufficientMaterial reports whether c can no longer win.
func (p *Position) HasInsufficientMaterial(c Color) bool {
	return p.variant.rules().insufficient(p, c)
}

// IsInsufficientMaterial reports whether neither side can win.
func (p *Position) IsInsufficientMaterial() bool {
	return p.HasInsufficientMaterial(White) && p.HasInsufficientMaterial(Black)
}

func noVariantEnd(*Position) (Outcome, bool) { return NoOutcome, false }

func neverInsufficient(*Position, Color) bool { return false }

func mateOrStalemate(p *Position) (Outcome, Termination) {
	if p.IsCheck() {
		return Win(p.turn.Other()), Checkmate
	}
	return Draw, Stalemate
}

func standardInsufficient(p *Position, c Color) bool {
	b := &p.board
	ours := b.colors[c]
	if ours&(b.roles[Pawn]|b.RooksAndQueens()) != 0 {
		return false
	}
	if ours&b.roles[Knight] != 0 {
		// a lone knight mates only with help from enemy pieces other than a queen
		return ours.Count() <= 2 && b.colors[c.Other()]&^b.roles[King]&^b.roles[Queen] == 0
	}
	if ours&b.roles[Bishop] != 0 {
		sameColor := b.roles[Bishop]&DarkSquares == 0 || b.roles[Bishop]&LightSquares == 0
		return sameColor && b.roles[Pawn] == 0 && b.roles[Knight] == 0
	}
	return true
}
