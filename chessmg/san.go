package chessmg

import "strings"

// SAN formats a legal move in standard algebraic notation with a check or
// checkmate suffix.
func (p *Position) SAN(m Move) string {
	san := p.sanWithoutSuffix(m)
	next := *p
	next.playUnchecked(m)
	if next.IsCheck() {
		if next.HasLegalMoves() {
			return san + "+"
		}
		return san + "#"
	}
	return san
}

func (p *Position) sanWithoutSuffix(m Move) string {
	switch m.Kind() {
	case KindCastle:
		return m.CastlingSide().String()
	case KindPut:
		if m.Role() == Pawn {
			return "@" + m.To().String()
		}
		return string(m.Role().UpperChar()) + "@" + m.To().String()
	}

	var sb strings.Builder
	from, to := m.From(), m.To()
	if m.Role() == Pawn {
		if m.IsCapture() {
			sb.WriteByte(from.FileChar())
			sb.WriteByte('x')
		}
		sb.WriteString(to.String())
		if promo := m.Promotion(); promo != NoRole {
			sb.WriteByte('=')
			sb.WriteByte(promo.UpperChar())
		}
		return sb.String()
	}

	sb.WriteByte(m.Role().UpperChar())
	// Disambiguate against other same-role moves to the same square:
	// file first, then rank, then both.
	var others Bitboard
	if m.Role() != King || p.variant == Antichess {
		for _, lm := range p.LegalMoves() {
			if lm != m && lm.Kind() == KindNormal && lm.Role() == m.Role() && lm.To() == to && lm.Promotion() == m.Promotion() {
				others = others.With(lm.From())
			}
		}
	}
	if others != 0 {
		switch {
		case others&FileBB(from.File()) == 0:
			sb.WriteByte(from.FileChar())
		case others&RankBB(from.Rank()) == 0:
			sb.WriteByte(from.RankChar())
		default:
			sb.WriteString(from.String())
		}
	}
	if m.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(to.String())
	return sb.String()
}

// sanPattern is the parsed shape of a SAN token.
type sanPattern struct {
	castle    bool
	side      CastlingSide
	put       bool
	role      Role
	fromFile  int // -1 if unspecified
	fromRank  int // -1 if unspecified
	capture   bool
	to        Square
	promotion Role
}

// ParseSAN parses SAN text against the position. It accepts optional
// check and annotation suffixes and fails unless exactly one legal move
// matches.
func (p *Position) ParseSAN(san string) (Move, error) {
	pat, reason := parseSANPattern(san)
	if reason != "" {
		return NoMove, &SanError{San: san, Reason: reason}
	}
	var found Move
	matches := 0
	for _, m := range p.LegalMoves() {
		if pat.matches(m) {
			found = m
			matches++
		}
	}
	switch {
	case matches == 0:
		return NoMove, &SanError{San: san, Reason: "no matching legal move"}
	case matches > 1:
		return NoMove, &SanError{San: san, Reason: "ambiguous"}
	}
	return found, nil
}

func parseSANPattern(san string) (sanPattern, string) {
	pat := sanPattern{fromFile: -1, fromRank: -1, to: NoSquare}
	s := strings.TrimRight(san, "+#!?")
	if s == "" {
		return pat, "empty"
	}
	switch s {
	case "O-O", "0-0":
		pat.castle, pat.side = true, KingSide
		return pat, ""
	case "O-O-O", "0-0-0":
		pat.castle, pat.side = true, QueenSide
		return pat, ""
	}

	if i := strings.IndexByte(s, '@'); i >= 0 {
		pat.put = true
		pat.role = Pawn
		switch i {
		case 0:
		case 1:
			r, ok := RoleFromChar(s[0])
			if !ok || s[0] < 'A' || s[0] > 'Z' || r == King {
				return pat, "bad drop role"
			}
			pat.role = r
		default:
			return pat, "bad drop"
		}
		sq, ok := ParseSquare(s[i+1:])
		if !ok {
			return pat, "bad drop square"
		}
		pat.to = sq
		return pat, ""
	}

	// promotion suffix: "=Q" or a bare trailing piece letter
	if n := len(s); n >= 2 && s[n-2] == '=' {
		r, ok := RoleFromChar(s[n-1])
		if !ok || r == Pawn {
			return pat, "bad promotion"
		}
		pat.promotion = r
		s = s[:n-2]
	} else if n >= 3 && s[n-1] >= 'A' && s[n-1] <= 'Z' && s[n-2] >= '1' && s[n-2] <= '8' {
		r, ok := RoleFromChar(s[n-1])
		if !ok || r == Pawn {
			return pat, "bad promotion"
		}
		pat.promotion = r
		s = s[:n-1]
	}

	pat.role = Pawn
	if len(s) > 0 && s[0] >= 'A' && s[0] <= 'Z' {
		r, ok := RoleFromChar(s[0])
		if !ok || r == Pawn {
			return pat, "bad piece"
		}
		pat.role = r
		s = s[1:]
	}
	if len(s) < 2 {
		return pat, "missing destination"
	}
	sq, ok := ParseSquare(s[len(s)-2:])
	if !ok {
		return pat, "bad destination"
	}
	pat.to = sq
	s = s[:len(s)-2]
	if strings.HasSuffix(s, "x") {
		pat.capture = true
		s = s[:len(s)-1]
	}
	switch len(s) {
	case 0:
	case 1:
		switch ch := s[0]; {
		case ch >= 'a' && ch <= 'h':
			pat.fromFile = int(ch - 'a')
		case ch >= '1' && ch <= '8':
			pat.fromRank = int(ch - '1')
		default:
			return pat, "bad disambiguation"
		}
	case 2:
		from, ok := ParseSquare(s)
		if !ok {
			return pat, "bad disambiguation"
		}
		pat.fromFile, pat.fromRank = from.File(), from.Rank()
	default:
		return pat, "malformed"
	}
	if pat.promotion != NoRole && pat.role != Pawn {
		return pat, "only pawns promote"
	}
	return pat, ""
}

func (pat *sanPattern) matches(m Move) bool {
	if pat.castle {
		return m.Kind() == KindCastle && m.CastlingSide() == pat.side
	}
	if pat.put {
		return m.Kind() == KindPut && m.Role() == pat.role && m.To() == pat.to
	}
	if m.Kind() == KindCastle || m.Kind() == KindPut {
		return false
	}
	if m.Role() != pat.role || m.To() != pat.to || m.Promotion() != pat.promotion {
		return false
	}
	if pat.capture && !m.IsCapture() {
		return false
	}
	if pat.fromFile >= 0 && m.From().File() != pat.fromFile {
		return false
	}
	if pat.fromFile < 0 && pat.role == Pawn && m.From().File() != m.To().File() {
		// a pawn capture always names its file
		return false
	}
	if pat.fromRank >= 0 && m.From().Rank() != pat.fromRank {
		return false
	}
	return true
}
