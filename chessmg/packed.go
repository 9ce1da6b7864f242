package chessmg

import (
	"encoding/binary"
	"math"
)

// Packed position layout, version 1, little-endian, 80 bytes:
//
//	0      version (1)
//	1      variant
//	2      flags: bit 0 black to move, bit 1 chess960 castling mode
//	3      en passant square, 0xFF for none
//	4-11   occupied bitboard
//	12-43  piece codes, one nibble per occupied square in ascending order,
//	       low nibble first; unused nibbles are zero
//	44-51  castling rook squares
//	52-59  promoted bitboard (crazyhouse)
//	60-63  halfmove clock
//	64-67  fullmove number
//	68-69  remaining checks White, Black (three-check, else zero)
//	70-74  White pocket P N B R Q (crazyhouse, else zero)
//	75-79  Black pocket P N B R Q
const (
	PackedVersion      = 1
	PackedPositionSize = 80
	PackedMoveSize     = 4
)

const (
	flagBlackToMove = 1 << 0
	flagChess960    = 1 << 1
	noEpByte        = 0xFF
)

// EncodePosition packs p into a fixed-size record.
func EncodePosition(p *Position) [PackedPositionSize]byte {
	var buf [PackedPositionSize]byte
	buf[0] = PackedVersion
	buf[1] = byte(p.variant)
	if p.turn == Black {
		buf[2] |= flagBlackToMove
	}
	if p.mode == CastlingChess960 {
		buf[2] |= flagChess960
	}
	buf[3] = noEpByte
	if p.epSquare != NoSquare {
		buf[3] = byte(p.epSquare)
	}
	binary.LittleEndian.PutUint64(buf[4:], uint64(p.board.occupied))
	i := 0
	for occ := p.board.occupied; occ != 0; i++ {
		code := byte(p.board.pieces[occ.PopFirst()])
		if i%2 == 0 {
			buf[12+i/2] |= code
		} else {
			buf[12+i/2] |= code << 4
		}
	}
	binary.LittleEndian.PutUint64(buf[44:], uint64(p.castles.mask))
	binary.LittleEndian.PutUint64(buf[52:], uint64(p.promoted))
	binary.LittleEndian.PutUint32(buf[60:], uint32(p.halfmoves))
	binary.LittleEndian.PutUint32(buf[64:], uint32(p.fullmoves))
	if p.variant.HasChecks() {
		buf[68], buf[69] = p.checks[White], p.checks[Black]
	}
	if p.variant.HasPockets() {
		for c := White; c <= Black; c++ {
			for r := Pawn; r <= Queen; r++ {
				buf[70+5*int(c)+int(r-Pawn)] = p.pockets[c][r]
			}
		}
	}
	return buf
}

// DecodePosition unpacks a record produced by EncodePosition. Arbitrary
// input yields either a valid position or a *DecodeError.
func DecodePosition(data []byte) (*Position, error) {
	if len(data) != PackedPositionSize {
		return nil, &DecodeError{Offset: 0, Reason: "wrong length"}
	}
	if data[0] != PackedVersion {
		return nil, &DecodeError{Offset: 0, Reason: "unsupported version"}
	}
	v := Variant(data[1])
	if !v.Valid() {
		return nil, &DecodeError{Offset: 1, Reason: "unknown variant"}
	}
	flags := data[2]
	if flags&^(flagBlackToMove|flagChess960) != 0 {
		return nil, &DecodeError{Offset: 2, Reason: "unknown flags"}
	}

	s := Setup{EpSquare: NoSquare}
	if flags&flagBlackToMove != 0 {
		s.Turn = Black
	}
	mode := CastlingStandard
	if flags&flagChess960 != 0 {
		mode = CastlingChess960
	}
	switch ep := data[3]; {
	case ep == noEpByte:
	case ep < 64:
		s.EpSquare = Square(ep)
	default:
		return nil, &DecodeError{Offset: 3, Reason: "bad en passant square"}
	}

	occ := Bitboard(binary.LittleEndian.Uint64(data[4:]))
	i := 0
	for rest := occ; rest != 0; i++ {
		sq := rest.PopFirst()
		code := data[12+i/2]
		if i%2 == 1 {
			code >>= 4
		}
		pc := Piece(code & 0xF)
		if !pc.Valid() {
			return nil, &DecodeError{Offset: 12 + i/2, Reason: "bad piece code"}
		}
		s.Board.addPiece(sq, pc)
	}
	for ; i < 64; i++ {
		code := data[12+i/2]
		if i%2 == 1 {
			code >>= 4
		}
		if code&0xF != 0 {
			return nil, &DecodeError{Offset: 12 + i/2, Reason: "nonzero padding"}
		}
	}

	s.CastlingRights = Bitboard(binary.LittleEndian.Uint64(data[44:]))
	s.Promoted = Bitboard(binary.LittleEndian.Uint64(data[52:]))
	halfmoves := binary.LittleEndian.Uint32(data[60:])
	fullmoves := binary.LittleEndian.Uint32(data[64:])
	if halfmoves > math.MaxInt32 {
		return nil, &DecodeError{Offset: 60, Reason: "halfmove clock out of range"}
	}
	if fullmoves == 0 || fullmoves > math.MaxInt32 {
		return nil, &DecodeError{Offset: 64, Reason: "fullmove number out of range"}
	}
	s.Halfmoves, s.Fullmoves = int(halfmoves), int(fullmoves)

	if v.HasChecks() {
		s.HasChecks = true
		s.RemainingChecks = [2]uint8{data[68], data[69]}
	} else if data[68] != 0 || data[69] != 0 {
		return nil, &DecodeError{Offset: 68, Reason: "checks outside three-check"}
	}
	if v.HasPockets() {
		s.HasPockets = true
		for c := White; c <= Black; c++ {
			for r := Pawn; r <= Queen; r++ {
				n := data[70+5*int(c)+int(r-Pawn)]
				if n > maxPocket {
					return nil, &DecodeError{Offset: 70 + 5*int(c) + int(r-Pawn), Reason: "pocket count out of range"}
				}
				s.Pockets[c][r] = n
			}
		}
		if s.Promoted&^occ != 0 {
			return nil, &DecodeError{Offset: 52, Reason: "promoted squares not occupied"}
		}
	} else {
		if s.Promoted != 0 {
			return nil, &DecodeError{Offset: 52, Reason: "promoted squares outside crazyhouse"}
		}
		for j := 70; j < PackedPositionSize; j++ {
			if data[j] != 0 {
				return nil, &DecodeError{Offset: j, Reason: "pockets outside crazyhouse"}
			}
		}
	}

	p, err := FromSetup(s, v, mode)
	if err != nil {
		return nil, &DecodeError{Offset: 0, Reason: "invalid position", Err: err}
	}
	if p.mode != mode {
		return nil, &DecodeError{Offset: 2, Reason: "castling mode does not match rights"}
	}
	return p, nil
}

// EncodeMove packs a move into 4 little-endian bytes.
func EncodeMove(m Move) [PackedMoveSize]byte {
	var buf [PackedMoveSize]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(m))
	return buf
}

// DecodeMove unpacks a move and checks that its fields are well-formed.
// Legality still has to be confirmed against a position.
func DecodeMove(data []byte) (Move, error) {
	if len(data) != PackedMoveSize {
		return NoMove, &DecodeError{Offset: 0, Reason: "wrong length"}
	}
	raw := binary.LittleEndian.Uint32(data)
	if raw>>moveUsedBits != 0 {
		return NoMove, &DecodeError{Offset: 2, Reason: "unused bits set"}
	}
	m := Move(raw)
	role, capture, promo := m.Role(), m.Capture(), m.Promotion()
	bad := false
	switch m.Kind() {
	case KindNormal:
		bad = role == NoRole || role > King || capture > King || m.From() == m.To() ||
			(promo != NoRole && (role != Pawn || promo == Pawn || promo > King))
	case KindEnPassant:
		bad = role != Pawn || capture != Pawn || promo != NoRole || m.From() == m.To()
	case KindCastle:
		bad = role != King || capture != NoRole || promo != NoRole || m.From() == m.To()
	case KindPut:
		bad = role == NoRole || role >= King || capture != NoRole || promo != NoRole || m.From() != 0
	}
	if bad {
		return NoMove, &DecodeError{Offset: 0, Reason: "malformed move"}
	}
	return m, nil
}
