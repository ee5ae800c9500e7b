package app

import (
	"errors"
	"fmt"

	"battleship/internal/codec"
	"battleship/internal/game"
	"battleship/internal/merkle"
	"battleship/internal/zk"
)

var ErrAuditFailed = errors.New("fair-play audit failed")

type CommitResult struct {
	Commitment codec.Commitment
	Secret     codec.Secret
}

// Commit hashes the occupancy of a fully placed home board into a salted
// Merkle root.
func Commit(b *game.Board) (*CommitResult, error) {
	bits := b.Flatten()
	t, err := merkle.BuildBoardTree(bits)
	if err != nil {
		return nil, err
	}

	// this is to make root unique for same boards
	salt, err := merkle.NewSalt()
	if err != nil {
		return nil, err
	}
	root := merkle.Salted(salt, t.Root())

	return &CommitResult{
		Commitment: codec.Commitment{RootHex: codec.Hex(root)},
		Secret: codec.Secret{
			Bits:    bits,
			Tree:    t,
			SaltHex: codec.Hex(salt),
		},
	}, nil
}

// Open reveals cell c of a committed board.
func Open(sec codec.Secret, c game.Coord) (*codec.Opening, error) {
	if !c.InBounds() {
		return nil, fmt.Errorf("row/col out of range")
	}
	salt, err := sec.Salt()
	if err != nil {
		return nil, err
	}
	idx := c.Index()
	path, dir, err := sec.Tree.Path(idx)
	if err != nil {
		return nil, err
	}
	if len(path) != merkle.Depth || len(dir) != merkle.Depth {
		return nil, fmt.Errorf("bad path length")
	}
	return &codec.Opening{Index: idx, Bit: sec.Bits[idx], Path: path, Dir: dir, Salt: salt}, nil
}

// VerifyOpening checks that o opens cell c of commit to the reported result.
func VerifyOpening(commit codec.Commitment, c game.Coord, o *codec.Opening, res game.GuessStatus) error {
	root, err := commit.Root()
	if err != nil {
		return err
	}
	if o.Index != c.Index() {
		return fmt.Errorf("%w: opening is for cell %d, shot was %d", ErrAuditFailed, o.Index, c.Index())
	}
	if o.Salt == nil {
		return fmt.Errorf("%w: opening missing salt", ErrAuditFailed)
	}
	if len(o.Path) != merkle.Depth {
		return fmt.Errorf("%w: bad path length", ErrAuditFailed)
	}
	tree, idx, ok := merkle.RootFromPath(o.Bit, o.Path, o.Dir)
	if !ok || idx != o.Index || merkle.Salted(o.Salt, tree).Cmp(root) != 0 {
		return fmt.Errorf("%w: opening does not match commitment", ErrAuditFailed)
	}
	return checkBit(o.Bit, res)
}

func checkBit(bit uint8, res game.GuessStatus) error {
	want := uint8(0)
	if res == game.Hit {
		want = 1
	}
	if bit != want {
		return fmt.Errorf("%w: committed bit %d, reported %s", ErrAuditFailed, bit, res)
	}
	return nil
}

type ShootResult struct {
	Payload codec.ShotProofPayload
	Bit     uint8
}

// Shoot proves the defender's answer for cell c in zero knowledge.
func Shoot(p *zk.Prover, sec codec.Secret, c game.Coord) (*ShootResult, error) {
	o, err := Open(sec, c)
	if err != nil {
		return nil, err
	}
	root, err := sec.SaltedRoot()
	if err != nil {
		return nil, err
	}
	proof, pub, err := p.Prove(zk.ShotWitness{
		Bit:   o.Bit,
		Index: o.Index,
		Path:  o.Path,
		Dir:   o.Dir,
		Salt:  o.Salt,
		Root:  root,
	})
	if err != nil {
		return nil, err
	}
	return &ShootResult{
		Payload: codec.ShotProofPayload{Proof: proof, Public: pub},
		Bit:     o.Bit,
	}, nil
}

// VerifyShot checks a shot proof for cell c against commit and the reported
// result.
func VerifyShot(p *zk.Prover, commit codec.Commitment, c game.Coord, payload codec.ShotProofPayload, res game.GuessStatus) error {
	root, err := commit.Root()
	if err != nil {
		return err
	}
	if payload.Public.Index != c.Index() {
		return fmt.Errorf("%w: proof is for cell %d, shot was %d", ErrAuditFailed, payload.Public.Index, c.Index())
	}
	if err := p.Verify(payload.Proof, payload.Public, root); err != nil {
		return fmt.Errorf("%w: %v", ErrAuditFailed, err)
	}
	return checkBit(payload.Public.Hit, res)
}
