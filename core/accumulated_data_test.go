package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veilnetwork/veil/core"
	"github.com/veilnetwork/veil/core/felt"
)

func TestBuilderResumesFromPrevious(t *testing.T) {
	var prev core.CombinedAccumulatedData
	prev.NewCommitments[0] = effect(1, 1)
	prev.NewNullifiers[0] = core.SideEffectLinkedToNoteHash{Value: felt.FromUint64(2), Counter: 2}

	b := core.BuilderFrom(&prev)
	require.NoError(t, b.PushNewCommitment(effect(3, 3)))

	end := b.Build()
	assert.Equal(t, prev.NewCommitments[0], end.NewCommitments[0])
	assert.Equal(t, effect(3, 3), end.NewCommitments[1])

	// the input snapshot is untouched
	assert.True(t, prev.NewCommitments[1].IsEmpty())
}

func TestBuilderCapacity(t *testing.T) {
	var prev core.CombinedAccumulatedData
	b := core.BuilderFrom(&prev)

	for i := 0; i < core.MaxNewCommitmentsPerTx; i++ {
		require.NoError(t, b.PushNewCommitment(effect(uint64(i)+1, uint32(i))))
	}
	assert.Error(t, b.PushNewCommitment(effect(999, 999)))
}

func TestPopPrivateCall(t *testing.T) {
	var prev core.CombinedAccumulatedData
	prev.PrivateCallStack[0] = core.CallRequest{Hash: felt.FromUint64(10)}
	prev.PrivateCallStack[1] = core.CallRequest{Hash: felt.FromUint64(20)}

	b := core.BuilderFrom(&prev)

	top, err := b.PopPrivateCall()
	require.NoError(t, err)
	assert.Equal(t, felt.FromUint64(20), top.Hash)

	top, err = b.PopPrivateCall()
	require.NoError(t, err)
	assert.Equal(t, felt.FromUint64(10), top.Hash)

	_, err = b.PopPrivateCall()
	assert.Error(t, err)
}

func TestNewContractDataHash(t *testing.T) {
	empty := core.EmptyNewContractData()
	assert.True(t, empty.Hash().IsZero())

	data := core.NewContractData{
		ContractAddress:       felt.FromUint64(1),
		PortalContractAddress: felt.FromUint64(2),
		ContractClassID:       felt.FromUint64(3),
	}
	assert.False(t, data.Hash().IsZero())
}
