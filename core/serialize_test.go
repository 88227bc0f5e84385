package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veilnetwork/veil/core"
	"github.com/veilnetwork/veil/core/felt"
)

func TestFieldsBytesRoundTrip(t *testing.T) {
	fields := []felt.Felt{
		felt.FromUint64(1),
		felt.MustFromString("0xabcdef0123456789"),
		felt.Zero,
	}

	buf := core.FieldsToBytes(fields)
	require.Len(t, buf, 3*felt.Bytes)

	back, err := core.FieldsFromBytes(buf)
	require.NoError(t, err)
	require.Len(t, back, 3)
	for i := range fields {
		assert.True(t, fields[i].Equal(&back[i]))
	}

	_, err = core.FieldsFromBytes(buf[:felt.Bytes+1])
	assert.Error(t, err)
}

func TestFieldReaderShortRead(t *testing.T) {
	r := core.NewFieldReader([]felt.Felt{felt.FromUint64(1)})
	r.ReadField()
	require.NoError(t, r.Err())
	r.ReadField()
	assert.ErrorIs(t, r.Err(), core.ErrShortFieldVector)
}

func TestFieldReaderReadBool(t *testing.T) {
	r := core.NewFieldReader([]felt.Felt{felt.Zero, felt.FromUint64(1), felt.FromUint64(7)})
	assert.False(t, r.ReadBool())
	assert.True(t, r.ReadBool())
	assert.True(t, r.ReadBool())
	require.NoError(t, r.Err())
}

func sampleCallContext() core.CallContext {
	return core.CallContext{
		MsgSender:              felt.FromUint64(0x100),
		StorageContractAddress: felt.FromUint64(0x200),
		PortalContractAddress:  felt.FromUint64(0x300),
		FunctionSelector:       felt.FromUint64(0x400),
		IsDelegateCall:         false,
		IsStaticCall:           true,
		StartSideEffectCounter: 5,
	}
}

func TestCallContextRoundTrip(t *testing.T) {
	cc := sampleCallContext()
	ser := cc.Serialize()
	require.Len(t, ser, core.CallContextLength)

	back := core.DeserializeCallContext(core.NewFieldReader(ser))
	assert.Equal(t, cc, back)
}

func TestCallContextHashBindsFlags(t *testing.T) {
	cc := sampleCallContext()
	h1 := cc.Hash()

	cc.IsDelegateCall = true
	h2 := cc.Hash()
	assert.False(t, h1.Equal(h2))
}

func TestCallRequestRoundTrip(t *testing.T) {
	req := core.CallRequest{
		Hash:                  felt.FromUint64(0xdead),
		CallerContractAddress: felt.FromUint64(0xbeef),
		CallerContext: core.CallerContext{
			MsgSender:              felt.FromUint64(1),
			StorageContractAddress: felt.FromUint64(2),
		},
		StartSideEffectCounter: 3,
		EndSideEffectCounter:   9,
	}

	ser := req.Serialize()
	require.Len(t, ser, core.CallRequestLength)
	back := core.DeserializeCallRequest(core.NewFieldReader(ser))
	assert.Equal(t, req, back)
}

func TestTxRequestRoundTripAndHash(t *testing.T) {
	tx := core.TxRequest{
		Origin: felt.FromUint64(0xabc),
		FunctionData: core.FunctionData{
			Selector:  felt.FromUint64(0x111),
			IsPrivate: true,
		},
		ArgsHash: felt.FromUint64(0x222),
		TxContext: core.TxContext{
			ChainID: felt.FromUint64(1),
			Version: felt.FromUint64(1),
		},
	}

	ser := tx.Serialize()
	require.Len(t, ser, core.TxRequestLength)
	back := core.DeserializeTxRequest(core.NewFieldReader(ser))
	assert.Equal(t, tx, back)

	h := tx.Hash()
	tx.ArgsHash = felt.FromUint64(0x223)
	assert.False(t, h.Equal(tx.Hash()), "args hash must be bound by the request hash")
}

func TestPrivateCircuitPublicInputsRoundTrip(t *testing.T) {
	var p core.PrivateCircuitPublicInputs
	p.CallContext = sampleCallContext()
	p.ArgsHash = felt.FromUint64(11)
	p.NewCommitments[0] = core.SideEffect{Value: felt.FromUint64(21), Counter: 1}
	p.NewNullifiers[0] = core.SideEffectLinkedToNoteHash{
		Value: felt.FromUint64(31), NoteHash: felt.FromUint64(21), Counter: 2,
	}
	p.PrivateCallStackHashes[0] = felt.FromUint64(41)
	p.EncryptedLogsHash = felt.FromUint64(51)
	p.Historical.NoteHashTreeRoot = felt.FromUint64(61)
	p.ChainID = felt.FromUint64(1)

	ser := p.Serialize()
	require.Len(t, ser, core.PrivateCircuitPublicInputsLength)

	r := core.NewFieldReader(ser)
	back := core.DeserializePrivateCircuitPublicInputs(r)
	require.NoError(t, r.Err())
	assert.Equal(t, p, back)

	// byte-buffer round trip over the same vector
	fields, err := core.FieldsFromBytes(core.FieldsToBytes(ser))
	require.NoError(t, err)
	back2 := core.DeserializePrivateCircuitPublicInputs(core.NewFieldReader(fields))
	assert.Equal(t, p, back2)
}

func TestCombinedAccumulatedDataRoundTrip(t *testing.T) {
	var a core.CombinedAccumulatedData
	a.NewCommitments[0] = core.SideEffect{Value: felt.FromUint64(5), Counter: 1}
	a.NewNullifiers[0] = core.SideEffectLinkedToNoteHash{Value: felt.FromUint64(6), Counter: 2}
	a.PrivateCallStack[0] = core.CallRequest{Hash: felt.FromUint64(7)}
	a.EncryptedLogsHash = felt.FromUint64(8)
	a.NewContracts[0] = core.NewContractData{
		ContractAddress: felt.FromUint64(9),
		ContractClassID: felt.FromUint64(10),
	}

	r := core.NewFieldReader(a.Serialize())
	back := core.DeserializeCombinedAccumulatedData(r)
	require.NoError(t, r.Err())
	assert.Equal(t, a, back)
}
