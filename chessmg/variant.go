package chessmg

import "strings"

// Variant selects the rule set a Position follows.
type Variant uint8

const (
	Standard Variant = iota
	Chess960
	Antichess
	Atomic
	KingOfTheHill
	ThreeCheck
	Crazyhouse
	RacingKings
	Horde

	variantCount
)

// Variants lists every supported variant.
var Variants = [...]Variant{Standard, Chess960, Antichess, Atomic, KingOfTheHill, ThreeCheck, Crazyhouse, RacingKings, Horde}

// variantRules is the per-variant policy table consulted by Position.
type variantRules struct {
	name     string // lichess key
	uciName  string // UCI_Variant option value
	pgnName  string // PGN Variant tag
	startFEN string

	// legal appends the legal moves of a position whose game is not over.
	legal func(p *Position, dst []Move) []Move
	// end reports a static variant termination (no move generation needed).
	end func(p *Position) (Outcome, bool)
	// noMoves resolves a position without legal moves.
	noMoves func(p *Position) (Outcome, Termination)
	// insufficient reports whether color can no longer win.
	insufficient func(p *Position, c Color) bool
	// validate adds variant-specific validation failures.
	validate func(p *Position) PositionErrorKinds

	pockets bool
	checks  bool
}

var variantTable [variantCount]variantRules

func init() {
	variantTable = [variantCount]variantRules{
		Standard: {
			name: "standard", uciName: "chess", pgnName: "Standard",
			startFEN:     standardFEN,
			legal:        genLegal,
			end:          noVariantEnd,
			noMoves:      mateOrStalemate,
			insufficient: standardInsufficient,
			validate:     validateStandard,
		},
		Chess960: {
			name: "chess960", uciName: "chess", pgnName: "Chess960",
			startFEN:     standardFEN,
			legal:        genLegal,
			end:          noVariantEnd,
			noMoves:      mateOrStalemate,
			insufficient: standardInsufficient,
			validate:     validateStandard,
		},
		Antichess: {
			name: "antichess", uciName: "antichess", pgnName: "Antichess",
			startFEN:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1",
			legal:        antichessLegal,
			end:          antichessEnd,
			noMoves:      antichessNoMoves,
			insufficient: antichessInsufficient,
			validate:     validateAntichess,
		},
		Atomic: {
			name: "atomic", uciName: "atomic", pgnName: "Atomic",
			startFEN:     standardFEN,
			legal:        atomicLegal,
			end:          atomicEnd,
			noMoves:      mateOrStalemate,
			insufficient: atomicInsufficient,
			validate:     validateAtomic,
		},
		KingOfTheHill: {
			name: "kingOfTheHill", uciName: "kingofthehill", pgnName: "King of the Hill",
			startFEN:     standardFEN,
			legal:        genLegal,
			end:          kingOfTheHillEnd,
			noMoves:      mateOrStalemate,
			insufficient: neverInsufficient,
			validate:     validateStandard,
		},
		ThreeCheck: {
			name: "threeCheck", uciName: "3check", pgnName: "Three-check",
			startFEN:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 3+3 0 1",
			legal:        genLegal,
			end:          threeCheckEnd,
			noMoves:      mateOrStalemate,
			insufficient: threeCheckInsufficient,
			validate:     validateThreeCheck,
			checks:       true,
		},
		Crazyhouse: {
			name: "crazyhouse", uciName: "crazyhouse", pgnName: "Crazyhouse",
			startFEN:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[] w KQkq - 0 1",
			legal:        crazyhouseLegal,
			end:          noVariantEnd,
			noMoves:      mateOrStalemate,
			insufficient: crazyhouseInsufficient,
			validate:     validateCrazyhouse,
			pockets:      true,
		},
		RacingKings: {
			name: "racingKings", uciName: "racingkings", pgnName: "Racing Kings",
			startFEN:     "8/8/8/8/8/8/krbnNBRK/qrbnNBRQ w - - 0 1",
			legal:        racingKingsLegal,
			end:          racingKingsEnd,
			noMoves:      mateOrStalemate,
			insufficient: neverInsufficient,
			validate:     validateRacingKings,
		},
		Horde: {
			name: "horde", uciName: "horde", pgnName: "Horde",
			startFEN:     "rnbqkbnr/pppppppp/8/1PP2PP1/PPPPPPPP/PPPPPPPP/PPPPPPPP/PPPPPPPP w kq - 0 1",
			legal:        genLegal,
			end:          hordeEnd,
			noMoves:      mateOrStalemate,
			insufficient: neverInsufficient,
			validate:     validateHorde,
		},
	}
}

const standardFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func (v Variant) rules() *variantRules { return &variantTable[v] }

// Valid reports whether v names a supported variant.
func (v Variant) Valid() bool { return v < variantCount }

func (v Variant) String() string {
	if !v.Valid() {
		return "unknown"
	}
	return variantTable[v].name
}

// UCIName returns the UCI_Variant option value.
func (v Variant) UCIName() string { return variantTable[v].uciName }

// PGNName returns the value of the PGN Variant tag.
func (v Variant) PGNName() string { return variantTable[v].pgnName }

// StartFEN returns the variant's usual starting position.
func (v Variant) StartFEN() string { return variantTable[v].startFEN }

// HasPockets reports whether positions carry drop pockets.
func (v Variant) HasPockets() bool { return variantTable[v].pockets }

// HasChecks reports whether positions carry remaining-check counters.
func (v Variant) HasChecks() bool { return variantTable[v].checks }

// ParseVariant accepts lichess keys, UCI names and common spellings.
func ParseVariant(s string) (Variant, bool) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	switch key {
	case "standard", "chess", "fromposition":
		return Standard, true
	case "chess960", "960", "fischerandom", "fischerrandom":
		return Chess960, true
	case "antichess", "giveaway", "suicide":
		return Antichess, true
	case "atomic":
		return Atomic, true
	case "kingofthehill", "koth":
		return KingOfTheHill, true
	case "threecheck", "3check":
		return ThreeCheck, true
	case "crazyhouse", "zh":
		return Crazyhouse, true
	case "racingkings":
		return RacingKings, true
	case "horde":
		return Horde, true
	}
	return Standard, false
}
