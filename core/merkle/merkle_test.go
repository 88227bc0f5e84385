package merkle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veilnetwork/veil/core/crypto"
	"github.com/veilnetwork/veil/core/felt"
	"github.com/veilnetwork/veil/core/merkle"
)

// buildTree returns the root of a depth-3 tree over 8 leaves plus the
// sibling path of the given leaf, computed the slow way.
func buildTree(t *testing.T, leaves [8]felt.Felt, leafIndex uint64) (*felt.Felt, []felt.Felt) {
	t.Helper()

	level := make([]*felt.Felt, 8)
	for i := range leaves {
		level[i] = &leaves[i]
	}

	path := make([]felt.Felt, 0, 3)
	index := leafIndex
	for len(level) > 1 {
		path = append(path, *level[index^1])
		next := make([]*felt.Felt, len(level)/2)
		for i := range next {
			next[i] = crypto.Pedersen(level[2*i], level[2*i+1])
		}
		level = next
		index >>= 1
	}
	return level[0], path
}

func TestRootFromSiblingPath(t *testing.T) {
	var leaves [8]felt.Felt
	for i := range leaves {
		leaves[i] = felt.FromUint64(uint64(i) + 100)
	}

	for _, leafIndex := range []uint64{0, 3, 7} {
		root, path := buildTree(t, leaves, leafIndex)
		got := merkle.RootFromSiblingPath(&leaves[leafIndex], leafIndex, path)
		assert.True(t, root.Equal(got), "leaf %d", leafIndex)
	}
}

func TestVerifyMembership(t *testing.T) {
	var leaves [8]felt.Felt
	for i := range leaves {
		leaves[i] = felt.FromUint64(uint64(i) * 11)
	}
	root, path := buildTree(t, leaves, 5)

	witness := merkle.MembershipWitness{LeafIndex: 5, SiblingPath: path}
	require.NoError(t, merkle.VerifyMembership(root, &leaves[5], &witness, 3))

	t.Run("wrong leaf", func(t *testing.T) {
		wrong := felt.FromUint64(0xffff)
		err := merkle.VerifyMembership(root, &wrong, &witness, 3)
		assert.ErrorIs(t, err, merkle.ErrRootMismatch)
	})

	t.Run("wrong height", func(t *testing.T) {
		err := merkle.VerifyMembership(root, &leaves[5], &witness, 4)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, merkle.ErrRootMismatch)
	})

	t.Run("tampered path", func(t *testing.T) {
		tampered := merkle.MembershipWitness{LeafIndex: 5, SiblingPath: append([]felt.Felt{}, path...)}
		tampered.SiblingPath[1] = felt.FromUint64(1)
		err := merkle.VerifyMembership(root, &leaves[5], &tampered, 3)
		assert.ErrorIs(t, err, merkle.ErrRootMismatch)
	})
}

func TestEmptyMembershipWitness(t *testing.T) {
	w := merkle.EmptyMembershipWitness(merkle.FunctionTreeHeight)
	assert.True(t, w.IsEmpty())
	assert.Len(t, w.SiblingPath, merkle.FunctionTreeHeight)

	w.SiblingPath[2] = felt.FromUint64(9)
	assert.False(t, w.IsEmpty())
}
