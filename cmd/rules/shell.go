package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"chess-rules/chessmg"
	"chess-rules/game"
)

var errNoGame = errors.New("no current game (use new)")

// shell is a line-oriented front end over a game.Manager. Every command
// writes its answer, or a single "error: ..." line, to out.
type shell struct {
	games   *game.Manager
	current string
	variant chessmg.Variant
	out     io.Writer
}

func newShell(out io.Writer) *shell {
	return &shell{games: game.NewManager(), variant: chessmg.Standard, out: out}
}

func (s *shell) loop(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		cmd := strings.ToLower(tokens[0])
		if cmd == "quit" {
			return
		}
		if err := s.exec(cmd, tokens[1:]); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}

func (s *shell) exec(cmd string, args []string) error {
	switch cmd {
	case "new":
		v := s.variant
		if len(args) > 0 {
			var ok bool
			if v, ok = chessmg.ParseVariant(args[0]); !ok {
				return fmt.Errorf("unknown variant %q", args[0])
			}
		}
		s.current = s.games.NewGame(v)
		fmt.Fprintf(s.out, "game %s\n", s.current)
	case "switch":
		if len(args) != 1 {
			return errors.New("usage: switch <id>")
		}
		if _, err := s.games.Position(args[0]); err != nil {
			return err
		}
		s.current = args[0]
	case "games":
		for _, id := range s.games.List() {
			mark := " "
			if id == s.current {
				mark = "*"
			}
			fmt.Fprintf(s.out, "%s %s\n", mark, id)
		}
	case "variant":
		if len(args) == 0 {
			fmt.Fprintln(s.out, s.variant)
			return nil
		}
		v, ok := chessmg.ParseVariant(strings.Join(args, " "))
		if !ok {
			return fmt.Errorf("unknown variant %q", strings.Join(args, " "))
		}
		s.variant = v
	case "position":
		return s.position(args)
	case "move":
		return s.move(args)
	case "undo":
		return s.games.Do(s.current, func(g *game.Game) error {
			if _, ok := g.Undo(); !ok {
				return errors.New("nothing to undo")
			}
			return nil
		})
	case "legal":
		pos, err := s.position0()
		if err != nil {
			return err
		}
		moves := pos.LegalMoves()
		list := make([]string, 0, len(moves))
		for _, m := range moves {
			list = append(list, pos.UCI(m))
		}
		slices.Sort(list)
		fmt.Fprintln(s.out, strings.Join(list, " "))
	case "fen":
		pos, err := s.position0()
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, pos.FEN())
	case "pgn":
		return s.games.Do(s.current, func(g *game.Game) error {
			fmt.Fprint(s.out, g.PGN(nil))
			return nil
		})
	case "outcome":
		return s.games.Do(s.current, func(g *game.Game) error {
			out, reason := g.Outcome()
			fmt.Fprintf(s.out, "%s %s\n", out, reason)
			if out == chessmg.NoOutcome && g.CanClaimDraw() {
				fmt.Fprintln(s.out, "draw claimable")
			}
			return nil
		})
	case "perft":
		if len(args) != 1 {
			return errors.New("usage: perft <depth>")
		}
		depth, err := strconv.Atoi(args[0])
		if err != nil || depth < 0 {
			return fmt.Errorf("bad depth %q", args[0])
		}
		pos, err := s.position0()
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, chessmg.Perft(pos, depth))
	case "encode":
		pos, err := s.position0()
		if err != nil {
			return err
		}
		data := chessmg.EncodePosition(pos)
		fmt.Fprintln(s.out, hex.EncodeToString(data[:]))
	case "decode":
		if len(args) != 1 {
			return errors.New("usage: decode <hex>")
		}
		data, err := hex.DecodeString(args[0])
		if err != nil {
			return err
		}
		pos, err := chessmg.DecodePosition(data)
		if err != nil {
			return err
		}
		s.replace(game.FromPosition(pos))
		fmt.Fprintln(s.out, pos.FEN())
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (s *shell) position0() (*chessmg.Position, error) {
	if s.current == "" {
		return nil, errNoGame
	}
	return s.games.Position(s.current)
}

// replace swaps the current game for g.
func (s *shell) replace(g *game.Game) {
	if s.current != "" {
		_ = s.games.Delete(s.current)
	}
	s.current = s.games.Add(g)
}

// position handles "position startpos|fen <fen> [moves ...]".
func (s *shell) position(args []string) error {
	if len(args) == 0 {
		return errors.New("malformed position command")
	}
	var g *game.Game
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		g = game.New(s.variant)
	case "fen":
		i := slices.Index(rest, "moves")
		if i < 0 {
			i = len(rest)
		}
		if i == 0 {
			return errors.New("missing fen")
		}
		var err error
		if g, err = game.FromFEN(strings.Join(rest[:i], " "), s.variant); err != nil {
			return err
		}
		rest = rest[i:]
	default:
		return errors.New("invalid position subcommand")
	}
	if len(rest) > 0 {
		if rest[0] != "moves" {
			return fmt.Errorf("unexpected %q", rest[0])
		}
		for _, text := range rest[1:] {
			if _, err := g.Push(text); err != nil {
				return err
			}
		}
	}
	s.replace(g)
	return nil
}

func (s *shell) move(args []string) error {
	if s.current == "" {
		return errNoGame
	}
	if len(args) == 0 {
		return errors.New("usage: move <san|uci>...")
	}
	return s.games.Do(s.current, func(g *game.Game) error {
		for _, text := range args {
			if _, err := g.Push(text); err != nil {
				return err
			}
			sans := g.SANs()
			fmt.Fprintln(s.out, sans[len(sans)-1])
		}
		return nil
	})
}
