package chessmg

// LegalMoves returns every legal move for the side to move. The list is
// empty once the game has ended by a variant rule.
func (p *Position) LegalMoves() []Move { return p.LegalMovesInto(make([]Move, 0, 64)) }

// LegalMovesInto appends legal moves into dst[:0], reusing its storage.
func (p *Position) LegalMovesInto(dst []Move) []Move {
	dst = dst[:0]
	rules := p.variant.rules()
	if _, over := rules.end(p); over {
		return dst
	}
	return rules.legal(p, dst)
}

// HasLegalMoves reports whether the side to move has any legal move.
func (p *Position) HasLegalMoves() bool {
	var buf [256]Move
	return len(p.LegalMovesInto(buf[:0])) > 0
}

// IsLegal reports whether m is in the legal move set.
func (p *Position) IsLegal(m Move) bool {
	var buf [256]Move
	for _, lm := range p.LegalMovesInto(buf[:0]) {
		if lm == m {
			return true
		}
	}
	return false
}

// genLegal generates legal moves for variants with a royal king. A side
// without a king (the horde) has every pseudo-legal move available.
func genLegal(p *Position, moves []Move) []Move {
	us, them := p.turn, p.turn.Other()
	king := p.board.KingOf(us)
	if king == NoSquare {
		moves = genNonKing(p, ^p.board.colors[us], moves)
		return genEnPassant(p, moves)
	}

	start := len(moves)
	checkers := p.board.AttacksTo(king, them, p.board.occupied)
	if checkers == 0 {
		target := ^p.board.colors[us]
		moves = genNonKing(p, target, moves)
		moves = genSafeKing(p, king, target, moves)
		moves = genCastling(p, king, moves)
		moves = genEnPassant(p, moves)
	} else {
		moves = genEvasions(p, king, checkers, moves)
	}

	blockers := p.board.sliderBlockers(king, them) & p.board.colors[us]
	if blockers != 0 || p.epSquare != NoSquare {
		out := moves[:start]
		for _, m := range moves[start:] {
			if p.isSafe(king, m, blockers) {
				out = append(out, m)
			}
		}
		moves = out
	}
	return moves
}

// isSafe checks a pseudo-legal move against pins and en passant discoveries.
// King moves and castles are already verified when generated.
func (p *Position) isSafe(king Square, m Move, blockers Bitboard) bool {
	switch m.Kind() {
	case KindNormal:
		return !blockers.Has(m.From()) || Aligned(m.From(), m.To(), king)
	case KindEnPassant:
		captured := SquareAt(m.To().File(), m.From().Rank())
		occ := p.board.occupied.Without(m.From()).Without(captured).With(m.To())
		them := p.board.colors[p.turn.Other()]
		return RookAttacks(king, occ)&them&p.board.RooksAndQueens() == 0 &&
			BishopAttacks(king, occ)&them&p.board.BishopsAndQueens() == 0
	}
	return true
}

func genEvasions(p *Position, king Square, checkers Bitboard, moves []Move) []Move {
	moves = genSafeKing(p, king, ^p.board.colors[p.turn], moves)
	checker := checkers.Single()
	if checker == NoSquare {
		// double check, only the king can move
		return moves
	}
	target := Between(king, checker).With(checker)
	moves = genNonKing(p, target, moves)
	if ep := p.epSquare; ep != NoSquare {
		if ep-forward(p.turn) == checker || target.Has(ep) {
			moves = genEnPassant(p, moves)
		}
	}
	return moves
}

// genNonKing appends pawn and piece moves landing on target.
func genNonKing(p *Position, target Bitboard, moves []Move) []Move {
	moves = genPawnMoves(p, target, moves)
	ours := p.board.colors[p.turn]
	occ := p.board.occupied
	for from := p.board.roles[Knight] & ours; from != 0; {
		sq := from.PopFirst()
		moves = appendNormal(p, Knight, sq, KnightAttacks(sq)&target, moves)
	}
	for from := p.board.roles[Bishop] & ours; from != 0; {
		sq := from.PopFirst()
		moves = appendNormal(p, Bishop, sq, BishopAttacks(sq, occ)&target, moves)
	}
	for from := p.board.roles[Rook] & ours; from != 0; {
		sq := from.PopFirst()
		moves = appendNormal(p, Rook, sq, RookAttacks(sq, occ)&target, moves)
	}
	for from := p.board.roles[Queen] & ours; from != 0; {
		sq := from.PopFirst()
		moves = appendNormal(p, Queen, sq, QueenAttacks(sq, occ)&target, moves)
	}
	return moves
}

func appendNormal(p *Position, role Role, from Square, targets Bitboard, moves []Move) []Move {
	for targets != 0 {
		to := targets.PopFirst()
		moves = append(moves, NewNormal(role, from, to, p.board.RoleAt(to), NoRole))
	}
	return moves
}

// genSafeKing appends king steps to target squares not attacked once the
// king has left its square.
func genSafeKing(p *Position, king Square, target Bitboard, moves []Move) []Move {
	them := p.turn.Other()
	occ := p.board.occupied.Without(king)
	for to := KingAttacks(king) & target; to != 0; {
		sq := to.PopFirst()
		if p.board.AttacksTo(sq, them, occ) == 0 {
			moves = append(moves, NewNormal(King, king, sq, p.board.RoleAt(sq), NoRole))
		}
	}
	return moves
}

func genPawnMoves(p *Position, target Bitboard, moves []Move) []Move {
	us := p.turn
	pawns := p.board.Pieces(us, Pawn)
	theirs := p.board.colors[us.Other()]
	occ := p.board.occupied

	for from := pawns; from != 0; {
		sq := from.PopFirst()
		for caps := PawnAttacks(us, sq) & theirs & target; caps != 0; {
			to := caps.PopFirst()
			moves = appendPawn(p, sq, to, p.board.RoleAt(to), moves)
		}
	}

	single := pawns.Forward(us) &^ occ
	doubleFrom := relativeRank(us, 2)
	if p.variant == Horde && us == White {
		doubleFrom |= Rank2
	}
	double := (single & doubleFrom).Forward(us) &^ occ
	single &= target
	double &= target

	step := forward(us)
	for single != 0 {
		to := single.PopFirst()
		moves = appendPawn(p, to-step, to, NoRole, moves)
	}
	for double != 0 {
		to := double.PopFirst()
		moves = append(moves, NewNormal(Pawn, to-2*step, to, NoRole, NoRole))
	}
	return moves
}

func appendPawn(p *Position, from, to Square, capture Role, moves []Move) []Move {
	if !Backranks.Has(to) {
		return append(moves, NewNormal(Pawn, from, to, capture, NoRole))
	}
	moves = append(moves,
		NewNormal(Pawn, from, to, capture, Queen),
		NewNormal(Pawn, from, to, capture, Rook),
		NewNormal(Pawn, from, to, capture, Bishop),
		NewNormal(Pawn, from, to, capture, Knight))
	if p.variant == Antichess {
		moves = append(moves, NewNormal(Pawn, from, to, capture, King))
	}
	return moves
}

func genEnPassant(p *Position, moves []Move) []Move {
	ep := p.epSquare
	if ep == NoSquare {
		return moves
	}
	for from := PawnAttacks(p.turn.Other(), ep) & p.board.Pieces(p.turn, Pawn); from != 0; {
		moves = append(moves, NewEnPassant(from.PopFirst(), ep))
	}
	return moves
}

// genCastling appends castles whose paths are empty and whose king squares
// are not attacked. The caller guarantees the king is not in check.
func genCastling(p *Position, king Square, moves []Move) []Move {
	us, them := p.turn, p.turn.Other()
	for side := KingSide; side <= QueenSide; side++ {
		rook := p.castles.rook[us][side]
		if rook == NoSquare || p.castles.path[us][side]&p.board.occupied != 0 {
			continue
		}
		kingTo := side.KingTo(us)
		occ := p.board.occupied.Without(king)
		safe := true
		for path := Between(king, kingTo).With(kingTo); path != 0; {
			if p.board.AttacksTo(path.PopFirst(), them, occ) != 0 {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		// the rook leaving may uncover the destination
		after := occ.Without(rook).With(kingTo).With(side.RookTo(us))
		if p.board.AttacksTo(kingTo, them, after) != 0 {
			continue
		}
		moves = append(moves, NewCastle(king, rook))
	}
	return moves
}
