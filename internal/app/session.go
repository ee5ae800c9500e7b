package app

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"battleship/internal/codec"
	"battleship/internal/game"
	"battleship/internal/match"
	"battleship/internal/opponent"
	"battleship/internal/zk"
)

// AuditMode selects how each defender's answer is checked against its
// committed board.
type AuditMode string

const (
	AuditOff    AuditMode = "off"
	AuditMerkle AuditMode = "merkle"
	AuditZK     AuditMode = "zk"
)

func ParseAuditMode(s string) (AuditMode, error) {
	switch m := AuditMode(s); m {
	case AuditOff, AuditMerkle, AuditZK:
		return m, nil
	}
	return "", fmt.Errorf("unknown audit mode %q (want off, merkle or zk)", s)
}

type Options struct {
	HumanName string
	Seed      uint64 // 0 seeds the computer from the process
	Audit     AuditMode
	KeysDir   string
	Logger    zerolog.Logger
}

// Session is one match as driven by a shell: placement, turns, and the
// fair-play audit of every answer.
type Session struct {
	match  *match.Match
	audit  AuditMode
	prover *zk.Prover
	log    zerolog.Logger

	secrets [2]*codec.Secret
	commits [2]codec.Commitment
	failed  error
}

func NewSession(o Options) (*Session, error) {
	var strat *opponent.Random
	if o.Seed != 0 {
		strat = opponent.NewSeeded(o.Seed)
	} else {
		strat = opponent.NewRandom(nil)
	}
	audit := o.Audit
	if audit == "" {
		audit = AuditMerkle
	}
	if _, err := ParseAuditMode(string(audit)); err != nil {
		return nil, err
	}

	m, err := match.New(match.Config{HumanName: o.HumanName}, strat, match.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}
	s := &Session{
		match: m,
		audit: audit,
		log:   o.Logger.With().Str("match", m.ID.String()).Logger(),
	}
	if audit == AuditZK {
		start := time.Now()
		p, err := zk.NewProver(o.KeysDir)
		if err != nil {
			return nil, fmt.Errorf("load shot keys: %w", err)
		}
		s.prover = p
		s.log.Info().Dur("took", time.Since(start)).Str("keys", o.KeysDir).Msg("shot circuit ready")
	}
	return s, nil
}

func (s *Session) Match() *match.Match { return s.match }

func (s *Session) Player(side match.Side) *game.Player { return s.match.Player(side) }

// Commitment published by side once setup is complete.
func (s *Session) Commitment(side match.Side) (codec.Commitment, bool) {
	return s.commits[side], s.secrets[side] != nil
}

// Place positions the human's next ship.
func (s *Session) Place(anchor game.Coord, d game.Direction) (*game.Ship, error) {
	ship, err := s.match.Place(match.Human, anchor, d)
	if err != nil {
		return ship, err
	}
	return ship, s.afterSetup()
}

// AutoPlace places the remaining ships of side at random.
func (s *Session) AutoPlace(side match.Side) error {
	if err := s.match.AutoPlace(side); err != nil {
		return err
	}
	return s.afterSetup()
}

func (s *Session) afterSetup() error {
	if s.match.Phase() == match.Setup || s.secrets[match.Human] != nil {
		return nil
	}
	for _, side := range []match.Side{match.Human, match.Computer} {
		res, err := Commit(s.match.Player(side).Home)
		if err != nil {
			return fmt.Errorf("commit %s board: %w", side, err)
		}
		s.secrets[side] = &res.Secret
		s.commits[side] = res.Commitment
		s.log.Info().Stringer("side", side).Str("root", res.Commitment.RootHex).Msg("board committed")
	}
	return nil
}

// Fire resolves the human's shot at c.
func (s *Session) Fire(c game.Coord) (match.TurnResult, error) {
	if s.failed != nil {
		return match.TurnResult{}, s.failed
	}
	res, err := s.match.Fire(c)
	if err != nil {
		return res, err
	}
	return res, s.check(res)
}

// ComputerTurn lets the computer fire.
func (s *Session) ComputerTurn() (match.TurnResult, error) {
	if s.failed != nil {
		return match.TurnResult{}, s.failed
	}
	res, err := s.match.ComputerTurn()
	if err != nil {
		return res, err
	}
	return res, s.check(res)
}

// check audits the defender's answer for a resolved shot. A failure sticks:
// the session refuses further turns.
func (s *Session) check(res match.TurnResult) error {
	if s.audit == AuditOff {
		return nil
	}
	defender := res.Attacker.Other()
	sec := s.secrets[defender]
	if sec == nil {
		return nil
	}
	commit := s.commits[defender]

	var err error
	switch s.audit {
	case AuditMerkle:
		var o *codec.Opening
		if o, err = Open(*sec, res.Coord); err == nil {
			err = VerifyOpening(commit, res.Coord, o, res.Result)
		}
	case AuditZK:
		var shot *ShootResult
		if shot, err = Shoot(s.prover, *sec, res.Coord); err == nil {
			err = VerifyShot(s.prover, commit, res.Coord, shot.Payload, res.Result)
		}
	}
	if err != nil {
		s.failed = err
		s.log.Error().Err(err).Stringer("defender", defender).
			Int("row", res.Coord.Row).Int("col", res.Coord.Col).Msg("audit failed")
		return err
	}
	s.log.Debug().Stringer("defender", defender).Str("mode", string(s.audit)).Msg("answer audited")
	return nil
}
