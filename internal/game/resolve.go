package game

import "fmt"

// Resolve fires at c: the defender's home board takes the guess and the
// attacker's tracking board records the same result. A coordinate already
// on the tracking board is rejected with ErrAlreadyGuessed and nothing
// changes.
func Resolve(tracking, home *Board, c Coord) (GuessStatus, error) {
	if !c.InBounds() {
		return Unguessed, fmt.Errorf("guess %v: %w", c, ErrOffBoard)
	}
	if tracking.AlreadyGuessed(c) {
		return Unguessed, fmt.Errorf("guess %v: %w", c, ErrAlreadyGuessed)
	}
	res, err := home.ApplyGuess(c)
	if err != nil {
		// the pair is only ever written here, so this is a broken caller.
		panic(fmt.Sprintf("game: home board out of sync with tracking board: %v", err))
	}
	if err := tracking.Record(c, res); err != nil {
		panic(fmt.Sprintf("game: %v", err))
	}
	return res, nil
}

// Outcome of a resolved guess.
type Outcome struct {
	Coord    Coord       `json:"coord"`
	Result   GuessStatus `json:"result"`
	Sunk     *Ship       `json:"-"` // set when this hit completed a ship
	Defeated bool        `json:"defeated"`
}

// Fire resolves p's guess at c against defender and reports sunk ships and
// defeat.
func (p *Player) Fire(defender *Player, c Coord) (Outcome, error) {
	res, err := Resolve(p.Tracking, defender.Home, c)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{Coord: c, Result: res, Defeated: defender.Home.IsDefeated()}
	if res == Hit {
		id := defender.Home.Cell(c).Ship
		if defender.Home.Sunk(id) {
			out.Sunk, _ = defender.Fleet.Ship(id)
		}
	}
	return out, nil
}
