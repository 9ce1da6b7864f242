package chessmg

import (
	"strconv"
	"strings"
)

// ParseFEN parses a FEN (or X-FEN/Shredder-FEN, with crazyhouse pockets and
// three-check counters) and validates it for the variant.
func ParseFEN(fen string, v Variant) (*Position, error) {
	s, err := ParseFENSetup(fen)
	if err != nil {
		return nil, err
	}
	return FromSetup(s, v, CastlingStandard)
}

// ParseFENSetup parses a FEN into an unvalidated Setup. Only the board
// field is required; missing fields default to "w - - 0 1".
func ParseFENSetup(fen string) (Setup, error) {
	fields := strings.Fields(fen)
	s := Setup{EpSquare: NoSquare, Fullmoves: 1, RemainingChecks: [2]uint8{3, 3}}
	if len(fields) == 0 {
		return s, &FenError{Field: "board", Token: fen}
	}
	if err := parseBoardField(&s, fields[0]); err != nil {
		return s, err
	}
	fields = fields[1:]
	next := func() (string, bool) {
		if len(fields) == 0 {
			return "", false
		}
		tok := fields[0]
		fields = fields[1:]
		return tok, true
	}

	if tok, ok := next(); ok {
		switch tok {
		case "w":
			s.Turn = White
		case "b":
			s.Turn = Black
		default:
			return s, &FenError{Field: "turn", Token: tok}
		}
	}
	if tok, ok := next(); ok {
		rights, err := parseCastling(&s.Board, tok)
		if err != nil {
			return s, err
		}
		s.CastlingRights = rights
	}
	if tok, ok := next(); ok && tok != "-" {
		sq, valid := ParseSquare(tok)
		if !valid {
			return s, &FenError{Field: "ep", Token: tok}
		}
		s.EpSquare = sq
	}

	tok, ok := next()
	if ok && strings.Contains(tok, "+") && !strings.HasPrefix(tok, "+") {
		checks, valid := parseChecks(tok)
		if !valid {
			return s, &FenError{Field: "checks", Token: tok}
		}
		s.HasChecks = true
		s.RemainingChecks = checks
		tok, ok = next()
	}
	if ok {
		n, err := strconv.ParseUint(tok, 10, 31)
		if err != nil {
			return s, &FenError{Field: "halfmoves", Token: tok}
		}
		s.Halfmoves = int(n)
		tok, ok = next()
	}
	if ok {
		n, err := strconv.ParseUint(tok, 10, 31)
		if err != nil {
			return s, &FenError{Field: "fullmoves", Token: tok}
		}
		s.Fullmoves = int(n)
		if s.Fullmoves == 0 {
			s.Fullmoves = 1
		}
		tok, ok = next()
	}
	if ok && strings.HasPrefix(tok, "+") {
		// checks already given, as in "+1+0"
		given, valid := parseChecks(tok[1:])
		if !valid {
			return s, &FenError{Field: "checks", Token: tok}
		}
		s.HasChecks = true
		s.RemainingChecks = [2]uint8{3 - given[White], 3 - given[Black]}
		tok, ok = next()
	}
	if ok {
		return s, &FenError{Field: "trailing", Token: tok}
	}
	return s, nil
}

// parseChecks reads "W+B" with both counts in 0..3.
func parseChecks(tok string) ([2]uint8, bool) {
	var out [2]uint8
	if len(tok) != 3 || tok[1] != '+' {
		return out, false
	}
	for i, ch := range [2]byte{tok[0], tok[2]} {
		if ch < '0' || ch > '3' {
			return out, false
		}
		out[i] = ch - '0'
	}
	return out, true
}

func parseBoardField(s *Setup, field string) error {
	placement := field
	pocket := ""
	hasPocket := false
	if i := strings.IndexByte(field, '['); i >= 0 {
		if !strings.HasSuffix(field, "]") {
			return &FenError{Field: "pockets", Token: field}
		}
		placement, pocket, hasPocket = field[:i], field[i+1:len(field)-1], true
	}
	ranks := strings.Split(placement, "/")
	if len(ranks) == 9 && !hasPocket {
		pocket, hasPocket = ranks[8], true
		ranks = ranks[:8]
	}
	if len(ranks) != 8 {
		return &FenError{Field: "board", Token: field}
	}
	for i, rankText := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankText); j++ {
			ch := rankText[j]
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			case ch == '~':
				// marks the preceding piece as promoted
				if file == 0 || j == 0 || rankText[j-1] < 'A' {
					return &FenError{Field: "board", Token: field}
				}
				s.Promoted = s.Promoted.With(SquareAt(file-1, rank))
			default:
				pc, ok := PieceFromChar(ch)
				if !ok || file > 7 {
					return &FenError{Field: "board", Token: field}
				}
				s.Board.addPiece(SquareAt(file, rank), pc)
				file++
			}
			if file > 8 {
				return &FenError{Field: "board", Token: field}
			}
		}
		if file != 8 {
			return &FenError{Field: "board", Token: field}
		}
	}
	if hasPocket {
		s.HasPockets = true
		for i := 0; i < len(pocket); i++ {
			ch := pocket[i]
			if ch == '-' {
				continue
			}
			pc, ok := PieceFromChar(ch)
			if !ok || s.Pockets[pc.Color()][pc.Role()] >= maxPocket {
				return &FenError{Field: "pockets", Token: pocket}
			}
			s.Pockets[pc.Color()][pc.Role()]++
		}
	}
	return nil
}

// parseCastling resolves KQkq (outermost rook) and file letters (X-FEN,
// Shredder-FEN) to rook squares.
func parseCastling(b *Board, tok string) (Bitboard, error) {
	var rights Bitboard
	if tok == "-" {
		return 0, nil
	}
	for i := 0; i < len(tok); i++ {
		ch := tok[i]
		c := White
		lower := ch
		if ch >= 'a' && ch <= 'z' {
			c = Black
		} else {
			lower = ch - 'A' + 'a'
		}
		rank := 0
		if c == Black {
			rank = 7
		}
		rooks := b.Pieces(c, Rook) & backrank(c)
		king := b.Pieces(c, King) & backrank(c)
		var sq Square
		switch {
		case lower == 'k':
			sq = outermostRook(rooks, king, rank, KingSide)
		case lower == 'q':
			sq = outermostRook(rooks, king, rank, QueenSide)
		case lower >= 'a' && lower <= 'h':
			sq = SquareAt(int(lower-'a'), rank)
		default:
			return 0, &FenError{Field: "castling", Token: tok}
		}
		if sq == NoSquare {
			return 0, &FenError{Field: "castling", Token: tok}
		}
		rights = rights.With(sq)
	}
	return rights, nil
}

func outermostRook(rooks, king Bitboard, rank int, side CastlingSide) Square {
	kingFile := -1
	if k := king.First(); k != NoSquare {
		kingFile = k.File()
	}
	if side == KingSide {
		for f := 7; f > kingFile; f-- {
			if sq := SquareAt(f, rank); rooks.Has(sq) {
				return sq
			}
		}
		return NoSquare
	}
	if kingFile < 0 {
		kingFile = 8
	}
	for f := 0; f < kingFile; f++ {
		if sq := SquareAt(f, rank); rooks.Has(sq) {
			return sq
		}
	}
	return NoSquare
}

// BoardFEN returns the piece placement field.
func (b *Board) BoardFEN() string { return boardFEN(b, 0) }

func boardFEN(b *Board, promoted Bitboard) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := SquareAt(file, rank)
			pc := b.pieces[sq]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Char())
			if promoted.Has(sq) {
				sb.WriteByte('~')
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

func pocketFEN(pockets [2]Pocket) string {
	var sb strings.Builder
	for c := White; c <= Black; c++ {
		for r := Queen; r >= Pawn; r-- {
			for i := 0; i < int(pockets[c][r]); i++ {
				sb.WriteByte(NewPiece(c, r).Char())
			}
		}
	}
	return sb.String()
}

// castlingFEN writes KQkq where the rook is the outermost on its side and
// the rook's file letter otherwise.
func castlingFEN(b *Board, rights Bitboard) string {
	var sb strings.Builder
	for c := White; c <= Black; c++ {
		rank := 0
		if c == Black {
			rank = 7
		}
		own := rights & backrank(c)
		rooks := b.Pieces(c, Rook) & backrank(c)
		king := b.Pieces(c, King) & backrank(c)
		for f := 7; f >= 0; f-- {
			sq := SquareAt(f, rank)
			if !own.Has(sq) {
				continue
			}
			var ch byte
			switch sq {
			case outermostRook(rooks, king, rank, KingSide):
				ch = 'K'
			case outermostRook(rooks, king, rank, QueenSide):
				ch = 'Q'
			default:
				ch = 'A' + byte(f)
			}
			if c == Black {
				ch += 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// FEN formats the setup. Pockets and check counters are written when present.
func (s *Setup) FEN() string {
	var sb strings.Builder
	if s.HasPockets {
		sb.WriteString(boardFEN(&s.Board, s.Promoted))
		sb.WriteByte('[')
		sb.WriteString(pocketFEN(s.Pockets))
		sb.WriteByte(']')
	} else {
		sb.WriteString(boardFEN(&s.Board, 0))
	}
	sb.WriteByte(' ')
	sb.WriteByte(s.Turn.Char())
	sb.WriteByte(' ')
	sb.WriteString(castlingFEN(&s.Board, s.CastlingRights))
	sb.WriteByte(' ')
	sb.WriteString(s.EpSquare.String())
	if s.HasChecks {
		sb.WriteByte(' ')
		sb.WriteByte('0' + s.RemainingChecks[White])
		sb.WriteByte('+')
		sb.WriteByte('0' + s.RemainingChecks[Black])
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.Halfmoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.Fullmoves))
	return sb.String()
}

// FEN returns the position in FEN (X-FEN for unusual castling rights).
func (p *Position) FEN() string {
	s := p.Setup()
	return s.FEN()
}

// EPD returns the first four FEN fields (plus variant extensions),
// without move counters.
func (p *Position) EPD() string {
	fen := p.FEN()
	fields := strings.Fields(fen)
	return strings.Join(fields[:len(fields)-2], " ")
}
