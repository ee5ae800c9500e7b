package merkle

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func sampleBits() []uint8 {
	bits := make([]uint8, 100)
	for _, i := range []int{0, 1, 10, 11, 12, 55, 99} {
		bits[i] = 1
	}
	return bits
}

func TestBuildBoardTree(t *testing.T) {
	tree, err := BuildBoardTree(sampleBits())
	require.NoError(t, err)
	require.Equal(t, Depth, tree.Depth)
	require.Len(t, tree.Levels[0], Leaves)
	require.Len(t, tree.Levels[Depth], 1)

	again, err := BuildBoardTree(sampleBits())
	require.NoError(t, err)
	require.Equal(t, 0, tree.Root().Cmp(again.Root()))

	other := sampleBits()
	other[42] = 1
	changed, err := BuildBoardTree(other)
	require.NoError(t, err)
	require.NotEqual(t, 0, tree.Root().Cmp(changed.Root()))
}

func TestBuildFixedTreeRejects(t *testing.T) {
	_, err := BuildFixedTree(nil, 100, HashLeafMiMC(0), HashNodeMiMC)
	require.Error(t, err)
	_, err = BuildFixedTree(make([]uint8, 129), 128, HashLeafMiMC(0), HashNodeMiMC)
	require.Error(t, err)
}

func TestPathVerifies(t *testing.T) {
	bits := sampleBits()
	tree, err := BuildBoardTree(bits)
	require.NoError(t, err)
	root := tree.Root()

	for _, idx := range []int{0, 1, 12, 42, 99} {
		path, dir, err := tree.Path(idx)
		require.NoError(t, err)
		require.Len(t, path, Depth)
		require.True(t, VerifyPath(bits[idx], idx, path, dir, root), "idx %d", idx)
		// lying about the bit fails
		require.False(t, VerifyPath(1-bits[idx], idx, path, dir, root), "idx %d", idx)
		// replaying the opening for another cell fails
		require.False(t, VerifyPath(bits[idx], idx+1, path, dir, root), "idx %d", idx)
	}

	_, _, err = tree.Path(Leaves)
	require.Error(t, err)
}

func TestSaltInField(t *testing.T) {
	for i := 0; i < 20; i++ {
		s, err := NewSalt()
		require.NoError(t, err)
		require.Equal(t, -1, s.Cmp(fr.Modulus()))
	}
	root := big.NewInt(7)
	require.NotEqual(t, 0, Salted(big.NewInt(1), root).Cmp(Salted(big.NewInt(2), root)))
}
