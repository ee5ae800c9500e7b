package codec

import (
	"fmt"
	"math/big"
	"strings"

	"battleship/internal/merkle"
	"battleship/internal/zk"
)

// Secret is what a defender keeps private after committing its home board.
type Secret struct {
	Bits    []uint8      `json:"bits"`
	Tree    *merkle.Tree `json:"tree"`
	SaltHex string       `json:"salt_hex"`
}

// Commitment is the public half: the salted root.
type Commitment struct {
	RootHex string `json:"root_hex"`
}

// Opening reveals one cell and its Merkle path, for plain (non-zk) audits.
type Opening struct {
	Index int        `json:"index"`
	Bit   uint8      `json:"bit"`
	Path  []*big.Int `json:"path"`
	Dir   []uint8    `json:"dir"`
	Salt  *big.Int   `json:"salt"`
}

type ShotProofPayload struct {
	Proof  []byte        `json:"proof"`
	Public zk.ShotPublic `json:"public"` // root, hit and cell index
}

func Hex(x *big.Int) string { return fmt.Sprintf("0x%x", x) }

// ParseHex parses a 0x-prefixed hex field element.
func ParseHex(s string) (*big.Int, error) {
	if len(s) < 3 || !strings.HasPrefix(strings.ToLower(s), "0x") {
		return nil, fmt.Errorf("invalid hex %q", s)
	}
	n, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return nil, fmt.Errorf("cannot parse hex %q", s)
	}
	return n, nil
}

func (s Secret) Salt() (*big.Int, error) {
	if s.SaltHex == "" {
		return nil, fmt.Errorf("missing salt in secret")
	}
	return ParseHex(s.SaltHex)
}

// SaltedRoot recomputes the public root.
func (s Secret) SaltedRoot() (*big.Int, error) {
	salt, err := s.Salt()
	if err != nil {
		return nil, err
	}
	if s.Tree == nil {
		return nil, fmt.Errorf("missing tree in secret")
	}
	return merkle.Salted(salt, s.Tree.Root()), nil
}

func (c Commitment) Root() (*big.Int, error) { return ParseHex(c.RootHex) }
