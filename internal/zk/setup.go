package zk

import (
	"bytes"
	"errors"
	"math/big"
	"os"
	"path/filepath"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

const (
	vkFile = "shot.vk"
	pkFile = "shot.pk"
)

type ShotPublic struct {
	Root  *big.Int `json:"root"`
	Hit   uint8    `json:"hit"`
	Index int      `json:"index"`
}

// ShotWitness is the defender's private opening of one cell.
type ShotWitness struct {
	Bit   uint8
	Index int
	Path  []*big.Int
	Dir   []uint8
	Salt  *big.Int
	Root  *big.Int // salted root
}

// Prover holds the compiled shot circuit and its Groth16 keys.
type Prover struct {
	cs constraint.ConstraintSystem
	pk groth16.ProvingKey
	vk groth16.VerifyingKey
}

func compile() (constraint.ConstraintSystem, error) {
	var circuit ShotCircuit
	return frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &circuit)
}

// NewProver compiles the circuit and loads keys from dir, generating and
// writing them when missing or unreadable. An empty dir keeps keys in memory.
func NewProver(dir string) (*Prover, error) {
	cs, err := compile()
	if err != nil {
		return nil, err
	}
	if dir != "" {
		if vk, pk, err := readKeys(filepath.Join(dir, vkFile), filepath.Join(dir, pkFile)); err == nil {
			return &Prover{cs: cs, pk: pk, vk: vk}, nil
		}
	}
	pk, vk, err := groth16.Setup(cs)
	if err != nil {
		return nil, err
	}
	if dir != "" {
		if err := writeKeys(dir, vk, pk); err != nil {
			return nil, err
		}
	}
	return &Prover{cs: cs, pk: pk, vk: vk}, nil
}

// EnsureShotKeys makes sure proving/verifying keys exist in dir.
func EnsureShotKeys(dir string) error {
	_, err := NewProver(dir)
	return err
}

// Prove one shot.
func (p *Prover) Prove(w ShotWitness) ([]byte, ShotPublic, error) {
	if len(w.Path) != MerkleDepth || len(w.Dir) != MerkleDepth {
		return nil, ShotPublic{}, errors.New("bad path length")
	}
	if w.Salt == nil || w.Root == nil {
		return nil, ShotPublic{}, errors.New("missing salt or root")
	}

	var assign ShotCircuit
	assign.Bit = w.Bit
	assign.Salt = w.Salt
	for i := 0; i < MerkleDepth; i++ {
		assign.Path[i] = w.Path[i]
		assign.Dir[i] = w.Dir[i]
	}
	assign.Root = w.Root
	assign.Hit = w.Bit
	assign.Index = w.Index

	fullWit, err := frontend.NewWitness(&assign, ecc.BN254.ScalarField())
	if err != nil {
		return nil, ShotPublic{}, err
	}
	proof, err := groth16.Prove(p.cs, p.pk, fullWit)
	if err != nil {
		return nil, ShotPublic{}, err
	}

	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, ShotPublic{}, err
	}
	pub := ShotPublic{Root: new(big.Int).Set(w.Root), Hit: w.Bit, Index: w.Index}
	return buf.Bytes(), pub, nil
}

// Verify a shot proof against the root the verifier trusts. Returns nil when
// valid.
func (p *Prover) Verify(proofBin []byte, pub ShotPublic, root *big.Int) error {
	if pub.Root == nil {
		return errors.New("proof payload missing public root")
	}
	if pub.Root.Cmp(root) != 0 {
		return errors.New("root mismatch: proof root != committed root")
	}
	if pub.Hit > 1 {
		return errors.New("invalid hit public output")
	}

	var pubAssign ShotCircuit
	pubAssign.Root = root
	pubAssign.Hit = pub.Hit
	pubAssign.Index = pub.Index

	pubWit, err := frontend.NewWitness(&pubAssign, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return err
	}
	pr := groth16.NewProof(ecc.BN254)
	if _, err := pr.ReadFrom(bytes.NewReader(proofBin)); err != nil {
		return err
	}
	return groth16.Verify(pr, p.vk, pubWit)
}

// --- key IO helpers using io.WriterTo / io.ReaderFrom ---

func writeKeys(dir string, vk groth16.VerifyingKey, pk groth16.ProvingKey) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeVK(filepath.Join(dir, vkFile), vk); err != nil {
		return err
	}
	return writePK(filepath.Join(dir, pkFile), pk)
}

func writeVK(path string, vk groth16.VerifyingKey) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = vk.WriteTo(f)
	return err
}

func writePK(path string, pk groth16.ProvingKey) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = pk.WriteTo(f)
	return err
}

func readVK(path string) (groth16.VerifyingKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	vk := groth16.NewVerifyingKey(ecc.BN254)
	_, err = vk.ReadFrom(f)
	return vk, err
}

func readPK(path string) (groth16.ProvingKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pk := groth16.NewProvingKey(ecc.BN254)
	_, err = pk.ReadFrom(f)
	return pk, err
}

func readKeys(vkPath, pkPath string) (groth16.VerifyingKey, groth16.ProvingKey, error) {
	vk, err := readVK(vkPath)
	if err != nil {
		return nil, nil, err
	}
	pk, err := readPK(pkPath)
	if err != nil {
		return nil, nil, err
	}
	return vk, pk, nil
}
