package core

import (
	"errors"

	"github.com/veilnetwork/veil/core/felt"
)

// CombinedAccumulatedData is the transaction-wide running accumulator.
// Append-only across Init and Inner iterations; Ordering prunes and
// finalizes it. Owned by value by the kernel chain of one transaction.
type CombinedAccumulatedData struct {
	ReadRequests                   [MaxReadRequestsPerTx]SideEffect
	NullifierKeyValidationRequests [MaxNullifierKeyValidationRequestsPerTx]NullifierKeyValidationRequestContext
	NewCommitments                 [MaxNewCommitmentsPerTx]SideEffect
	NewNullifiers                  [MaxNewNullifiersPerTx]SideEffectLinkedToNoteHash
	PrivateCallStack               [MaxPrivateCallStackDepthPerTx]CallRequest
	PublicCallStack                [MaxPublicCallStackDepthPerTx]CallRequest
	NewL2ToL1Msgs                  [MaxNewL2ToL1MsgsPerTx]felt.Felt
	EncryptedLogsHash              felt.Felt
	UnencryptedLogsHash            felt.Felt
	EncryptedLogPreimagesLength    felt.Felt
	UnencryptedLogPreimagesLength  felt.Felt
	NewContracts                   [MaxNewContractsPerTx]NewContractData
	PublicDataReads                [MaxPublicDataReadsPerTx]PublicDataRead
	PublicDataUpdateRequests       [MaxPublicDataUpdateRequestsPerTx]PublicDataUpdateRequest
}

func EmptyCombinedAccumulatedData() CombinedAccumulatedData {
	return CombinedAccumulatedData{}
}

func (a *CombinedAccumulatedData) Serialize() []felt.Felt {
	var out []felt.Felt
	for i := range a.ReadRequests {
		out = append(out, a.ReadRequests[i].Serialize()...)
	}
	for i := range a.NullifierKeyValidationRequests {
		out = append(out, a.NullifierKeyValidationRequests[i].Serialize()...)
	}
	for i := range a.NewCommitments {
		out = append(out, a.NewCommitments[i].Serialize()...)
	}
	for i := range a.NewNullifiers {
		out = append(out, a.NewNullifiers[i].Serialize()...)
	}
	for i := range a.PrivateCallStack {
		out = append(out, a.PrivateCallStack[i].Serialize()...)
	}
	for i := range a.PublicCallStack {
		out = append(out, a.PublicCallStack[i].Serialize()...)
	}
	out = append(out, a.NewL2ToL1Msgs[:]...)
	out = append(out, a.EncryptedLogsHash, a.UnencryptedLogsHash,
		a.EncryptedLogPreimagesLength, a.UnencryptedLogPreimagesLength)
	for i := range a.NewContracts {
		out = append(out, a.NewContracts[i].Serialize()...)
	}
	for i := range a.PublicDataReads {
		out = append(out, a.PublicDataReads[i].Serialize()...)
	}
	for i := range a.PublicDataUpdateRequests {
		out = append(out, a.PublicDataUpdateRequests[i].Serialize()...)
	}
	return out
}

func DeserializeCombinedAccumulatedData(r *FieldReader) CombinedAccumulatedData {
	var a CombinedAccumulatedData
	for i := range a.ReadRequests {
		a.ReadRequests[i] = DeserializeSideEffect(r)
	}
	for i := range a.NullifierKeyValidationRequests {
		a.NullifierKeyValidationRequests[i] = DeserializeNullifierKeyValidationRequestContext(r)
	}
	for i := range a.NewCommitments {
		a.NewCommitments[i] = DeserializeSideEffect(r)
	}
	for i := range a.NewNullifiers {
		a.NewNullifiers[i] = DeserializeSideEffectLinked(r)
	}
	for i := range a.PrivateCallStack {
		a.PrivateCallStack[i] = DeserializeCallRequest(r)
	}
	for i := range a.PublicCallStack {
		a.PublicCallStack[i] = DeserializeCallRequest(r)
	}
	copy(a.NewL2ToL1Msgs[:], r.ReadFields(MaxNewL2ToL1MsgsPerTx))
	a.EncryptedLogsHash = r.ReadField()
	a.UnencryptedLogsHash = r.ReadField()
	a.EncryptedLogPreimagesLength = r.ReadField()
	a.UnencryptedLogPreimagesLength = r.ReadField()
	for i := range a.NewContracts {
		a.NewContracts[i] = DeserializeNewContractData(r)
	}
	for i := range a.PublicDataReads {
		a.PublicDataReads[i] = DeserializePublicDataRead(r)
	}
	for i := range a.PublicDataUpdateRequests {
		a.PublicDataUpdateRequests[i] = DeserializePublicDataUpdateRequest(r)
	}
	return a
}

// FinalAccumulatedData is the pruned accumulator handed to the rollup
// kernels: read requests and key validation requests are gone for good,
// commitments are unique and counter-ordered, transient pairs squashed.
type FinalAccumulatedData struct {
	NewCommitments                [MaxNewCommitmentsPerTx]SideEffect
	NewNullifiers                 [MaxNewNullifiersPerTx]SideEffectLinkedToNoteHash
	PrivateCallStack              [MaxPrivateCallStackDepthPerTx]CallRequest
	PublicCallStack               [MaxPublicCallStackDepthPerTx]CallRequest
	NewL2ToL1Msgs                 [MaxNewL2ToL1MsgsPerTx]felt.Felt
	EncryptedLogsHash             felt.Felt
	UnencryptedLogsHash           felt.Felt
	EncryptedLogPreimagesLength   felt.Felt
	UnencryptedLogPreimagesLength felt.Felt
	NewContracts                  [MaxNewContractsPerTx]NewContractData
	PublicDataReads               [MaxPublicDataReadsPerTx]PublicDataRead
	PublicDataUpdateRequests      [MaxPublicDataUpdateRequestsPerTx]PublicDataUpdateRequest
}

func (a *FinalAccumulatedData) Serialize() []felt.Felt {
	var out []felt.Felt
	for i := range a.NewCommitments {
		out = append(out, a.NewCommitments[i].Serialize()...)
	}
	for i := range a.NewNullifiers {
		out = append(out, a.NewNullifiers[i].Serialize()...)
	}
	for i := range a.PrivateCallStack {
		out = append(out, a.PrivateCallStack[i].Serialize()...)
	}
	for i := range a.PublicCallStack {
		out = append(out, a.PublicCallStack[i].Serialize()...)
	}
	out = append(out, a.NewL2ToL1Msgs[:]...)
	out = append(out, a.EncryptedLogsHash, a.UnencryptedLogsHash,
		a.EncryptedLogPreimagesLength, a.UnencryptedLogPreimagesLength)
	for i := range a.NewContracts {
		out = append(out, a.NewContracts[i].Serialize()...)
	}
	for i := range a.PublicDataReads {
		out = append(out, a.PublicDataReads[i].Serialize()...)
	}
	for i := range a.PublicDataUpdateRequests {
		out = append(out, a.PublicDataUpdateRequests[i].Serialize()...)
	}
	return out
}

var errTooMany = errors.New("accumulated data capacity exceeded")

// AccumulatedDataBuilder is the mutable working copy a single kernel stage
// folds into. Stages never share a builder; each one starts from the
// previous stage's immutable snapshot and builds a fresh output.
type AccumulatedDataBuilder struct {
	data CombinedAccumulatedData
}

// BuilderFrom resumes accumulation from a previous kernel's output.
func BuilderFrom(prev *CombinedAccumulatedData) AccumulatedDataBuilder {
	return AccumulatedDataBuilder{data: *prev}
}

func (b *AccumulatedDataBuilder) Build() CombinedAccumulatedData {
	return b.data
}

// End exposes the accumulator being built, for invariant checks that need
// to look at what has been folded so far.
func (b *AccumulatedDataBuilder) End() *CombinedAccumulatedData {
	return &b.data
}

func (b *AccumulatedDataBuilder) PushReadRequest(r SideEffect) error {
	if err := PushArray(b.data.ReadRequests[:], r); err != nil {
		return errors.Join(errTooMany, err)
	}
	return nil
}

func (b *AccumulatedDataBuilder) PushNullifierKeyValidationRequest(r NullifierKeyValidationRequestContext) error {
	if err := PushArray(b.data.NullifierKeyValidationRequests[:], r); err != nil {
		return errors.Join(errTooMany, err)
	}
	return nil
}

func (b *AccumulatedDataBuilder) PushNewCommitment(c SideEffect) error {
	if err := PushArray(b.data.NewCommitments[:], c); err != nil {
		return errors.Join(errTooMany, err)
	}
	return nil
}

func (b *AccumulatedDataBuilder) PushNewNullifier(n SideEffectLinkedToNoteHash) error {
	if err := PushArray(b.data.NewNullifiers[:], n); err != nil {
		return errors.Join(errTooMany, err)
	}
	return nil
}

func (b *AccumulatedDataBuilder) PushPrivateCallRequest(c CallRequest) error {
	if err := PushArray(b.data.PrivateCallStack[:], c); err != nil {
		return errors.Join(errTooMany, err)
	}
	return nil
}

func (b *AccumulatedDataBuilder) PushPublicCallRequest(c CallRequest) error {
	if err := PushArray(b.data.PublicCallStack[:], c); err != nil {
		return errors.Join(errTooMany, err)
	}
	return nil
}

func (b *AccumulatedDataBuilder) PushNewL2ToL1Msg(m felt.Felt) error {
	if err := PushFeltArray(b.data.NewL2ToL1Msgs[:], m); err != nil {
		return errors.Join(errTooMany, err)
	}
	return nil
}

func (b *AccumulatedDataBuilder) PushNewContract(c NewContractData) error {
	if err := PushArray(b.data.NewContracts[:], c); err != nil {
		return errors.Join(errTooMany, err)
	}
	return nil
}

// PopPrivateCall removes and returns the top (last non-empty) entry of the
// private call stack.
func (b *AccumulatedDataBuilder) PopPrivateCall() (CallRequest, error) {
	top := ArrayLength(b.data.PrivateCallStack[:])
	if top == 0 {
		return CallRequest{}, errors.New("private call stack is empty")
	}
	req := b.data.PrivateCallStack[top-1]
	b.data.PrivateCallStack[top-1] = EmptyCallRequest()
	return req, nil
}
