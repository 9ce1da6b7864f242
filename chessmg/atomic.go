package chessmg

// Atomic: every capture explodes the capturing piece together with all
// non-pawn pieces next to the capture square.

func atomicLegal(p *Position, moves []Move) []Move {
	start := len(moves)
	us := p.turn
	king := p.board.KingOf(us)

	moves = genNonKing(p, ^p.board.colors[us], moves)
	moves = genEnPassant(p, moves)
	if king != NoSquare {
		// kings never capture
		moves = appendNormal(p, King, king, KingAttacks(king)&^p.board.occupied, moves)
		if !p.IsCheck() {
			moves = genAtomicCastling(p, king, moves)
		}
	}

	out := moves[:start]
	for _, m := range moves[start:] {
		next := *p
		next.playUnchecked(m)
		if atomicKingSafe(&next, us) {
			out = append(out, m)
		}
	}
	return out
}

// atomicKingSafe reports whether c's king survived and is not attacked,
// or the enemy king has been blown up.
func atomicKingSafe(p *Position, c Color) bool {
	king := p.board.KingOf(c)
	if king == NoSquare {
		return false
	}
	if p.board.Pieces(c.Other(), King) == 0 {
		return true
	}
	return !atomicAttacked(p, king, c.Other(), p.board.occupied)
}

// atomicAttacked applies the atomic rule that kings touching each other
// cannot attack.
func atomicAttacked(p *Position, sq Square, attacker Color, occ Bitboard) bool {
	if KingAttacks(sq)&p.board.Pieces(attacker, King) != 0 {
		return false
	}
	return p.board.AttacksTo(sq, attacker, occ) != 0
}

func genAtomicCastling(p *Position, king Square, moves []Move) []Move {
	us, them := p.turn, p.turn.Other()
	for side := KingSide; side <= QueenSide; side++ {
		rook := p.castles.rook[us][side]
		if rook == NoSquare || p.castles.path[us][side]&p.board.occupied != 0 {
			continue
		}
		kingTo := side.KingTo(us)
		occ := p.board.occupied.Without(king)
		safe := true
		for path := Between(king, kingTo); path != 0; {
			if atomicAttacked(p, path.PopFirst(), them, occ) {
				safe = false
				break
			}
		}
		if safe {
			// the final square is verified by the legality filter
			moves = append(moves, NewCastle(king, rook))
		}
	}
	return moves
}

func atomicEnd(p *Position) (Outcome, bool) {
	for _, c := range [2]Color{White, Black} {
		if p.board.Pieces(c, King) == 0 {
			return Win(c.Other()), true
		}
	}
	return NoOutcome, false
}

func atomicInsufficient(p *Position, c Color) bool {
	b := &p.board
	kings := b.roles[King]
	if b.colors[c.Other()]&kings == 0 {
		// the game is already decided
		return false
	}
	if b.colors[c]&^kings == 0 {
		return true
	}
	if b.colors[c.Other()]&^kings != 0 {
		// enemy pieces may explode next to their own king, unless only
		// bishops remain that can never meet
		if b.occupied == kings|b.roles[Bishop] {
			bishops := b.roles[Bishop]
			if bishops&b.colors[White]&DarkSquares == 0 {
				return bishops&b.colors[Black]&LightSquares == 0
			}
			if bishops&b.colors[White]&LightSquares == 0 {
				return bishops&b.colors[Black]&DarkSquares == 0
			}
		}
		return false
	}
	if b.roles[Queen]|b.roles[Pawn] != 0 {
		return false
	}
	if (b.roles[Knight] | b.roles[Bishop] | b.roles[Rook]).Count() == 1 {
		return true
	}
	if b.occupied == kings|b.roles[Knight] {
		return b.roles[Knight].Count() <= 2
	}
	return false
}

func validateAtomic(p *Position) PositionErrorKinds {
	kinds := p.validateKingCount(White, 0, 1) | p.validateKingCount(Black, 0, 1)
	us, them := p.turn, p.turn.Other()
	if p.board.Pieces(them, King) == 0 {
		// the side that just moved cannot have exploded its own king
		kinds |= PositionMissingKing
	}
	kinds |= p.validateBackrankPawns()
	kinds |= p.validateMaterial(White, 16, 8) | p.validateMaterial(Black, 16, 8)
	if kinds == 0 && p.board.Pieces(us, King) != 0 {
		if k := p.board.KingOf(them); atomicAttacked(p, k, us, p.board.occupied) {
			kinds |= PositionOppositeCheck
		}
	}
	return kinds
}
