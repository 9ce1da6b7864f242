package chessmg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFen      = errors.New("invalid FEN")
	ErrInvalidPosition = errors.New("invalid position")
	ErrIllegalMove     = errors.New("illegal move")
	ErrInvalidSan      = errors.New("invalid SAN")
	ErrInvalidUci      = errors.New("invalid UCI")
	ErrDecode          = errors.New("invalid packed encoding")

	ErrRolesOverlap        = errors.New("board: role bitboards overlap")
	ErrColorsOverlap       = errors.New("board: color bitboards overlap")
	ErrRolesColorsMismatch = errors.New("board: role and color bitboards cover different squares")
)

// FenError reports the FEN field that failed to parse.
type FenError struct {
	Field string // board, pockets, turn, castling, ep, checks, halfmoves, fullmoves, trailing
	Token string
}

func (e *FenError) Error() string {
	return fmt.Sprintf("invalid FEN: bad %s field %q", e.Field, e.Token)
}

func (e *FenError) Unwrap() error { return ErrInvalidFen }

// PositionErrorKinds is a set of reasons a setup was rejected.
type PositionErrorKinds uint16

const (
	PositionEmptyBoard PositionErrorKinds = 1 << iota
	PositionMissingKing
	PositionTooManyKings
	PositionPawnsOnBackrank
	PositionInvalidCastlingRights
	PositionInvalidEpSquare
	PositionOppositeCheck
	PositionImpossibleCheck
	PositionTooMuchMaterial
	PositionVariant
)

var positionErrorNames = [...]string{
	"empty board",
	"missing king",
	"too many kings",
	"pawns on backrank",
	"invalid castling rights",
	"invalid en passant square",
	"opposite side in check",
	"impossible check",
	"too much material",
	"variant rules violated",
}

func (k PositionErrorKinds) String() string {
	var parts []string
	for i, name := range positionErrorNames {
		if k&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

// PositionError is returned when a setup does not describe a legal position.
type PositionError struct {
	Kinds PositionErrorKinds
}

func (e *PositionError) Error() string { return "invalid position: " + e.Kinds.String() }

func (e *PositionError) Unwrap() error { return ErrInvalidPosition }

// IllegalMoveError is returned by Play for moves outside the legal set.
type IllegalMoveError struct {
	Move Move
	FEN  string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %s in %s", e.Move, e.FEN)
}

func (e *IllegalMoveError) Unwrap() error { return ErrIllegalMove }

// SanError is returned when SAN text does not match exactly one legal move.
type SanError struct {
	San    string
	Reason string
}

func (e *SanError) Error() string { return fmt.Sprintf("invalid SAN %q: %s", e.San, e.Reason) }

func (e *SanError) Unwrap() error { return ErrInvalidSan }

// UciError is returned when coordinate notation cannot be parsed or is illegal.
type UciError struct {
	Uci    string
	Reason string
}

func (e *UciError) Error() string { return fmt.Sprintf("invalid UCI %q: %s", e.Uci, e.Reason) }

func (e *UciError) Unwrap() error { return ErrInvalidUci }

// DecodeError reports malformed packed input at a byte offset.
type DecodeError struct {
	Offset int
	Reason string
	Err    error // underlying validation error, if any
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode: offset %d: %s: %v", e.Offset, e.Reason, e.Err)
	}
	return fmt.Sprintf("decode: offset %d: %s", e.Offset, e.Reason)
}

func (e *DecodeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrDecode, e.Err}
	}
	return []error{ErrDecode}
}
