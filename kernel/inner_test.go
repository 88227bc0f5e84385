package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veilnetwork/veil/core"
	"github.com/veilnetwork/veil/core/crypto"
	"github.com/veilnetwork/veil/kernel"
)

// previousKernel hand-crafts the output of an earlier iteration: a non-zero
// tx nullifier plus whatever call requests remain pending.
func previousKernel(chain *testChain, pending ...core.CallRequest) kernel.PreviousKernelData {
	prev := kernel.PreviousKernelData{Proof: core.Proof{0x02}}
	prev.PublicInputs.IsPrivate = true
	prev.PublicInputs.Constants = core.CombinedConstantData{Historical: chain.header}
	prev.PublicInputs.End.NewNullifiers[0] = core.SideEffectLinkedToNoteHash{Value: f(9000)}
	for i, req := range pending {
		prev.PublicInputs.End.PrivateCallStack[i] = req
	}
	return prev
}

func requestFor(call *kernel.PrivateCallData, caller *testContract) core.CallRequest {
	return core.CallRequest{
		Hash:                   *call.CallStackItem.Hash(),
		CallerContractAddress:  caller.address,
		StartSideEffectCounter: 5,
		EndSideEffectCounter:   9,
	}
}

func TestInnerAccumulatesNestedCall(t *testing.T) {
	entry := newTestContract(100)
	nested := newTestContract(200)
	chain := newTestChain(nil, entry, nested)

	nestedCall := nested.callData(chain, 1, func(call *kernel.PrivateCallData) {
		call.CallStackItem.PublicInputs.CallContext.MsgSender = entry.address
		call.CallStackItem.PublicInputs.NewCommitments[0] = core.SideEffect{Value: f(601), Counter: 7}
		call.CallStackItem.PublicInputs.NewNullifiers[0] = core.SideEffectLinkedToNoteHash{Value: f(602), Counter: 8}
	})

	prev := previousKernel(chain, requestFor(&nestedCall, entry))
	out, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
	require.NoError(t, err)

	assert.True(t, out.IsPrivate)
	assert.Zero(t, core.ArrayLength(out.End.PrivateCallStack[:]), "pending call must be consumed")

	// previous accumulator carried over
	assert.True(t, out.End.NewNullifiers[0].Value.Equal(&prev.PublicInputs.End.NewNullifiers[0].Value))

	siloedCommitment := crypto.SiloCommitment(&nested.address, fp(601))
	assert.True(t, out.End.NewCommitments[0].Value.Equal(siloedCommitment))
	siloedNullifier := crypto.SiloNullifier(&nested.address, fp(602))
	assert.True(t, out.End.NewNullifiers[1].Value.Equal(siloedNullifier))

	// folding is a pure function of its inputs
	again, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestInnerPreviousKernelChecks(t *testing.T) {
	entry := newTestContract(100)
	nested := newTestContract(200)
	chain := newTestChain(nil, entry, nested)
	nestedCall := nested.callData(chain, 1, func(call *kernel.PrivateCallData) {
		call.CallStackItem.PublicInputs.CallContext.MsgSender = entry.address
	})

	t.Run("previous not private", func(t *testing.T) {
		prev := previousKernel(chain, requestFor(&nestedCall, entry))
		prev.PublicInputs.IsPrivate = false

		_, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
		require.ErrorIs(t, err, kernel.ErrPreviousNotPrivate)
	})

	t.Run("zero first nullifier", func(t *testing.T) {
		prev := previousKernel(chain, requestFor(&nestedCall, entry))
		prev.PublicInputs.End.NewNullifiers[0] = core.EmptySideEffectLinked()

		_, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
		require.ErrorIs(t, err, kernel.ErrZeroFirstNullifier)
		assert.EqualError(t, err, "The 0th nullifier in the accumulated nullifier array is zero")
	})

	t.Run("empty call stack", func(t *testing.T) {
		prev := previousKernel(chain)

		_, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
		require.ErrorIs(t, err, kernel.ErrCallStackHashMismatch)
	})

	t.Run("request hash mismatch", func(t *testing.T) {
		req := requestFor(&nestedCall, entry)
		req.Hash = f(12345)
		prev := previousKernel(chain, req)

		_, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
		require.ErrorIs(t, err, kernel.ErrCallStackHashMismatch)
	})
}

func TestInnerHistoricalHeaderChecks(t *testing.T) {
	entry := newTestContract(100)
	nested := newTestContract(200)
	chain := newTestChain(nil, entry, nested)

	t.Run("contract tree root mismatch", func(t *testing.T) {
		nestedCall := nested.callData(chain, 1, func(call *kernel.PrivateCallData) {
			call.CallStackItem.PublicInputs.CallContext.MsgSender = entry.address
			call.CallStackItem.PublicInputs.Historical.ContractTreeRoot = f(12345)
		})
		prev := previousKernel(chain, requestFor(&nestedCall, entry))

		_, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
		require.ErrorIs(t, err, kernel.ErrContractTreeRootMismatch)
		assert.EqualError(t, err, "purported_contract_tree_root does not match previous_kernel_contract_tree_root")
	})

	t.Run("note hash tree root mismatch", func(t *testing.T) {
		nestedCall := nested.callData(chain, 1, func(call *kernel.PrivateCallData) {
			call.CallStackItem.PublicInputs.CallContext.MsgSender = entry.address
			call.CallStackItem.PublicInputs.Historical.NoteHashTreeRoot = f(12345)
		})
		prev := previousKernel(chain, requestFor(&nestedCall, entry))

		_, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
		require.ErrorIs(t, err, kernel.ErrHistoricalHeaderMismatch)
	})
}

func TestInnerCallValidity(t *testing.T) {
	entry := newTestContract(100)
	nested := newTestContract(200)
	chain := newTestChain(nil, entry, nested)

	t.Run("delegate call with empty caller context", func(t *testing.T) {
		nestedCall := nested.callData(chain, 1, func(call *kernel.PrivateCallData) {
			ctx := &call.CallStackItem.PublicInputs.CallContext
			ctx.IsDelegateCall = true
			ctx.MsgSender = f(9001)
			ctx.StorageContractAddress = entry.address
		})
		prev := previousKernel(chain, requestFor(&nestedCall, entry))

		_, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
		require.ErrorIs(t, err, kernel.ErrEmptyCallerContextForDelegate)
		assert.EqualError(t, err, "caller context cannot be empty for delegate calls")
	})

	t.Run("delegate call runs in the caller's storage", func(t *testing.T) {
		nestedCall := nested.callData(chain, 1, func(call *kernel.PrivateCallData) {
			ctx := &call.CallStackItem.PublicInputs.CallContext
			ctx.IsDelegateCall = true
			ctx.MsgSender = f(9001)
			ctx.StorageContractAddress = entry.address
			call.CallStackItem.PublicInputs.NewCommitments[0] = core.SideEffect{Value: f(601), Counter: 7}
		})
		req := requestFor(&nestedCall, entry)
		req.CallerContext = core.CallerContext{
			MsgSender:              f(9001),
			StorageContractAddress: entry.address,
		}
		prev := previousKernel(chain, req)

		out, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
		require.NoError(t, err)

		siloed := crypto.SiloCommitment(&entry.address, fp(601))
		assert.True(t, out.End.NewCommitments[0].Value.Equal(siloed),
			"delegate call outputs must be siloed by the caller's storage contract")
	})

	t.Run("internal call from outside", func(t *testing.T) {
		nestedCall := nested.callData(chain, 1, func(call *kernel.PrivateCallData) {
			call.CallStackItem.FunctionData.IsInternal = true
			call.CallStackItem.PublicInputs.CallContext.MsgSender = entry.address
		})
		prev := previousKernel(chain, requestFor(&nestedCall, entry))

		_, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
		require.ErrorIs(t, err, kernel.ErrInternalSender)
	})

	t.Run("tampered public keys hash shifts the derived address", func(t *testing.T) {
		nestedCall := nested.callData(chain, 1, func(call *kernel.PrivateCallData) {
			call.CallStackItem.PublicInputs.CallContext.MsgSender = entry.address
		})
		req := requestFor(&nestedCall, entry)
		nestedCall.ContractClass.PublicKeysHash = f(12345)
		prev := previousKernel(chain, req)

		_, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
		require.ErrorIs(t, err, kernel.ErrContractAddressMismatch)
	})

	t.Run("regular call with wrong msg sender", func(t *testing.T) {
		nestedCall := nested.callData(chain, 1, func(call *kernel.PrivateCallData) {
			call.CallStackItem.PublicInputs.CallContext.MsgSender = f(12345)
		})
		prev := previousKernel(chain, requestFor(&nestedCall, entry))

		_, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
		require.ErrorIs(t, err, kernel.ErrRegularMsgSender)
	})
}

func TestInnerStaticCallPolicy(t *testing.T) {
	entry := newTestContract(100)
	nested := newTestContract(200)
	chain := newTestChain(nil, entry, nested)

	t.Run("commitments rejected", func(t *testing.T) {
		nestedCall := nested.callData(chain, 1, func(call *kernel.PrivateCallData) {
			call.CallStackItem.PublicInputs.CallContext.MsgSender = entry.address
			call.CallStackItem.PublicInputs.CallContext.IsStaticCall = true
			call.CallStackItem.PublicInputs.NewCommitments[0] = core.SideEffect{Value: f(601), Counter: 7}
		})
		prev := previousKernel(chain, requestFor(&nestedCall, entry))

		_, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
		require.ErrorIs(t, err, kernel.ErrStaticCommitments)
		assert.EqualError(t, err, "new_commitments must be empty for static calls")
	})

	t.Run("nullifiers rejected", func(t *testing.T) {
		nestedCall := nested.callData(chain, 1, func(call *kernel.PrivateCallData) {
			call.CallStackItem.PublicInputs.CallContext.MsgSender = entry.address
			call.CallStackItem.PublicInputs.CallContext.IsStaticCall = true
			call.CallStackItem.PublicInputs.NewNullifiers[0] = core.SideEffectLinkedToNoteHash{Value: f(602), Counter: 8}
		})
		prev := previousKernel(chain, requestFor(&nestedCall, entry))

		_, err := kernel.RunInner(&kernel.InnerInputs{PreviousKernel: prev, PrivateCall: nestedCall}, fakeVerifier{})
		require.ErrorIs(t, err, kernel.ErrStaticNullifiers)
		assert.EqualError(t, err, "new_nullifiers must be empty for static calls")
	})
}
