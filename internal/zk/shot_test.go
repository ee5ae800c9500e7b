package zk

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"battleship/internal/merkle"
)

func boardWitness(t *testing.T, idx int) (ShotWitness, []uint8) {
	t.Helper()
	bits := make([]uint8, 100)
	for _, i := range []int{3, 4, 5, 40, 50, 60} {
		bits[i] = 1
	}
	tree, err := merkle.BuildBoardTree(bits)
	require.NoError(t, err)
	path, dir, err := tree.Path(idx)
	require.NoError(t, err)
	salt := big.NewInt(123456789)
	return ShotWitness{
		Bit:   bits[idx],
		Index: idx,
		Path:  path,
		Dir:   dir,
		Salt:  salt,
		Root:  merkle.Salted(salt, tree.Root()),
	}, bits
}

func assignment(w ShotWitness) *ShotCircuit {
	var a ShotCircuit
	a.Bit = w.Bit
	a.Salt = w.Salt
	for i := 0; i < MerkleDepth; i++ {
		a.Path[i] = w.Path[i]
		a.Dir[i] = w.Dir[i]
	}
	a.Root = w.Root
	a.Hit = w.Bit
	a.Index = w.Index
	return &a
}

func TestShotCircuitSolves(t *testing.T) {
	assert := test.NewAssert(t)
	bn254 := test.WithCurves(ecc.BN254)

	w, _ := boardWitness(t, 40)
	assert.SolvingSucceeded(&ShotCircuit{}, assignment(w), bn254)

	lie := assignment(w)
	lie.Bit, lie.Hit = 0, 0
	assert.SolvingFailed(&ShotCircuit{}, lie, bn254)

	wrongCell := assignment(w)
	wrongCell.Index = 41
	assert.SolvingFailed(&ShotCircuit{}, wrongCell, bn254)
}

func TestProveAndVerify(t *testing.T) {
	if testing.Short() {
		t.Skip("groth16 setup is slow")
	}
	p, err := NewProver(t.TempDir())
	require.NoError(t, err)

	w, bits := boardWitness(t, 5)
	proof, pub, err := p.Prove(w)
	require.NoError(t, err)
	require.Equal(t, bits[5], pub.Hit)
	require.Equal(t, 5, pub.Index)
	require.NoError(t, p.Verify(proof, pub, w.Root))

	forged := pub
	forged.Hit = 1 - pub.Hit
	require.Error(t, p.Verify(proof, forged, w.Root))

	moved := pub
	moved.Index = 6
	require.Error(t, p.Verify(proof, moved, w.Root))

	require.Error(t, p.Verify(proof, pub, big.NewInt(1)))
}

func TestNewProverReusesKeys(t *testing.T) {
	if testing.Short() {
		t.Skip("groth16 setup is slow")
	}
	dir := t.TempDir()
	require.NoError(t, EnsureShotKeys(dir))

	first, err := NewProver(dir)
	require.NoError(t, err)
	w, _ := boardWitness(t, 60)
	proof, pub, err := first.Prove(w)
	require.NoError(t, err)

	// a second prover loaded from disk verifies proofs from the first
	second, err := NewProver(dir)
	require.NoError(t, err)
	require.NoError(t, second.Verify(proof, pub, w.Root))
}
