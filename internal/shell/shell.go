// Package shell is the interactive terminal front end. It translates typed
// coordinates to engine coordinates and prints boards and outcomes.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"battleship/internal/app"
	"battleship/internal/codec"
	"battleship/internal/game"
	"battleship/internal/match"
)

type Options struct {
	// AutoPlace places the human fleet at random instead of prompting.
	AutoPlace bool
	// Reveal prints the computer's ships after setup.
	Reveal bool
}

type Shell struct {
	s    *app.Session
	in   *bufio.Scanner
	out  io.Writer
	opts Options
}

func New(s *app.Session, in io.Reader, out io.Writer, opts Options) *Shell {
	return &Shell{s: s, in: bufio.NewScanner(in), out: out, opts: opts}
}

func (sh *Shell) printf(format string, args ...any) { fmt.Fprintf(sh.out, format, args...) }

func (sh *Shell) readLine(prompt string) (string, error) {
	sh.printf("%s", prompt)
	if !sh.in.Scan() {
		if err := sh.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(sh.in.Text()), nil
}

// Run plays one full match and returns the winner.
func (sh *Shell) Run() (match.Side, error) {
	sh.printf("BATTLESHIP\n\nPLAYER SETUP:\n")
	if err := sh.setup(); err != nil {
		return 0, err
	}
	sh.printf("\nCOMPUTER SETUP...DONE\n")
	if sh.opts.Reveal {
		sh.printf("\nCOMPUTER GRID (REVEALED):")
		Render(sh.out, sh.s.Player(match.Computer).Home, codec.ShipsView)
	}
	for _, side := range []match.Side{match.Human, match.Computer} {
		if c, ok := sh.s.Commitment(side); ok {
			sh.printf("%s board commitment: %s\n", side, c.RootHex)
		}
	}
	return sh.play()
}

func (sh *Shell) setup() error {
	if sh.opts.AutoPlace {
		if err := sh.s.AutoPlace(match.Human); err != nil {
			return err
		}
	}
	human := sh.s.Player(match.Human)
	Render(sh.out, human.Home, codec.ShipsView)
	for {
		ship, ok := sh.s.Match().NextShip(match.Human)
		if !ok {
			break
		}
		sh.printf("\nShip #%d: %s, length %d\n", ship.ID+1, ship.Name, ship.Length)
		line, err := sh.readLine("Type in location and direction (e.g. A1 H): ")
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			sh.printf("Invalid location!\n")
			continue
		}
		c, err := ParseCoord(fields[0])
		if err != nil {
			sh.printf("Invalid location!\n")
			continue
		}
		d, err := ParseDirection(fields[1])
		if err != nil {
			sh.printf("Invalid direction!\n")
			continue
		}
		if _, err := sh.s.Place(c, d); err != nil {
			switch {
			case errors.Is(err, game.ErrOutOfBounds):
				sh.printf("SHIP DOES NOT FIT\n")
			case errors.Is(err, game.ErrOverlap):
				sh.printf("THERE IS ALREADY A SHIP AT THAT LOCATION\n")
			default:
				return err
			}
			continue
		}
		Render(sh.out, human.Home, codec.ShipsView)
		sh.printf("You have %d remaining ships to place.\n", human.Fleet.RemainingCount())
	}
	return sh.s.AutoPlace(match.Computer)
}

func (sh *Shell) play() (match.Side, error) {
	human := sh.s.Player(match.Human)
	for {
		sh.printf("\nUSER MAKE GUESS:\nViewing My Guesses:")
		Render(sh.out, human.Tracking, codec.StatusView)

		res, err := sh.humanTurn()
		if err != nil {
			return 0, err
		}
		sh.report("USER", res)
		if res.Winner != nil {
			sh.printf("HIT!...COMPUTER LOSES\n")
			return *res.Winner, nil
		}

		sh.printf("\nCOMPUTER IS MAKING GUESS...\n")
		res, err = sh.s.ComputerTurn()
		if err != nil {
			return 0, err
		}
		sh.report("COMP", res)
		sh.printf("\nYOUR BOARD:")
		Render(sh.out, human.Home, codec.CombinedView)
		if res.Winner != nil {
			sh.printf("COMP HIT!...USER LOSES\n")
			return *res.Winner, nil
		}
	}
}

func (sh *Shell) humanTurn() (match.TurnResult, error) {
	for {
		line, err := sh.readLine("Type in location (e.g. B7): ")
		if err != nil {
			return match.TurnResult{}, err
		}
		c, err := ParseCoord(line)
		if err != nil {
			sh.printf("Invalid location!\n")
			continue
		}
		res, err := sh.s.Fire(c)
		if errors.Is(err, game.ErrAlreadyGuessed) {
			sh.printf("You already guessed %s!\n", Label(c))
			continue
		}
		return res, err
	}
}

func (sh *Shell) report(who string, res match.TurnResult) {
	word := "MISS"
	if res.Result == game.Hit {
		word = "HIT"
	}
	sh.printf("** %s %s AT %s **\n", who, word, Label(res.Coord))
	if res.Sunk != nil {
		sh.printf("** %s SUNK THE %s **\n", who, strings.ToUpper(res.Sunk.Name))
	}
}
