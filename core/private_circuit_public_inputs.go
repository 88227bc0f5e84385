package core

import (
	"github.com/veilnetwork/veil/core/crypto"
	"github.com/veilnetwork/veil/core/felt"
)

// PrivateCircuitPublicInputs is the complete output of one private function
// execution: the atomic unit the kernel folds per iteration. Produced once
// per call, consumed once.
type PrivateCircuitPublicInputs struct {
	CallContext                    CallContext
	ArgsHash                       felt.Felt
	ReturnValues                   [ReturnValuesLength]felt.Felt
	ReadRequests                   [MaxReadRequestsPerCall]SideEffect
	NullifierKeyValidationRequests [MaxNullifierKeyValidationRequestsPerCall]NullifierKeyValidationRequest
	NewCommitments                 [MaxNewCommitmentsPerCall]SideEffect
	NewNullifiers                  [MaxNewNullifiersPerCall]SideEffectLinkedToNoteHash
	PrivateCallStackHashes         [MaxPrivateCallStackDepthPerCall]felt.Felt
	PublicCallStackHashes          [MaxPublicCallStackDepthPerCall]felt.Felt
	NewL2ToL1Msgs                  [MaxNewL2ToL1MsgsPerCall]felt.Felt
	EncryptedLogsHash              felt.Felt
	UnencryptedLogsHash            felt.Felt
	EncryptedLogPreimagesLength    felt.Felt
	UnencryptedLogPreimagesLength  felt.Felt
	Historical                     Header
	ContractDeploymentData         ContractDeploymentData
	ChainID                        felt.Felt
	Version                        felt.Felt
}

func EmptyPrivateCircuitPublicInputs() PrivateCircuitPublicInputs {
	return PrivateCircuitPublicInputs{}
}

func (p *PrivateCircuitPublicInputs) Serialize() []felt.Felt {
	out := make([]felt.Felt, 0, PrivateCircuitPublicInputsLength)
	out = append(out, p.CallContext.Serialize()...)
	out = append(out, p.ArgsHash)
	out = append(out, p.ReturnValues[:]...)
	for i := range p.ReadRequests {
		out = append(out, p.ReadRequests[i].Serialize()...)
	}
	for i := range p.NullifierKeyValidationRequests {
		out = append(out, p.NullifierKeyValidationRequests[i].Serialize()...)
	}
	for i := range p.NewCommitments {
		out = append(out, p.NewCommitments[i].Serialize()...)
	}
	for i := range p.NewNullifiers {
		out = append(out, p.NewNullifiers[i].Serialize()...)
	}
	out = append(out, p.PrivateCallStackHashes[:]...)
	out = append(out, p.PublicCallStackHashes[:]...)
	out = append(out, p.NewL2ToL1Msgs[:]...)
	out = append(out, p.EncryptedLogsHash, p.UnencryptedLogsHash,
		p.EncryptedLogPreimagesLength, p.UnencryptedLogPreimagesLength)
	out = append(out, p.Historical.Serialize()...)
	out = append(out, p.ContractDeploymentData.Serialize()...)
	out = append(out, p.ChainID, p.Version)
	return out
}

func DeserializePrivateCircuitPublicInputs(r *FieldReader) PrivateCircuitPublicInputs {
	var p PrivateCircuitPublicInputs
	p.CallContext = DeserializeCallContext(r)
	p.ArgsHash = r.ReadField()
	copy(p.ReturnValues[:], r.ReadFields(ReturnValuesLength))
	for i := range p.ReadRequests {
		p.ReadRequests[i] = DeserializeSideEffect(r)
	}
	for i := range p.NullifierKeyValidationRequests {
		p.NullifierKeyValidationRequests[i] = DeserializeNullifierKeyValidationRequest(r)
	}
	for i := range p.NewCommitments {
		p.NewCommitments[i] = DeserializeSideEffect(r)
	}
	for i := range p.NewNullifiers {
		p.NewNullifiers[i] = DeserializeSideEffectLinked(r)
	}
	copy(p.PrivateCallStackHashes[:], r.ReadFields(MaxPrivateCallStackDepthPerCall))
	copy(p.PublicCallStackHashes[:], r.ReadFields(MaxPublicCallStackDepthPerCall))
	copy(p.NewL2ToL1Msgs[:], r.ReadFields(MaxNewL2ToL1MsgsPerCall))
	p.EncryptedLogsHash = r.ReadField()
	p.UnencryptedLogsHash = r.ReadField()
	p.EncryptedLogPreimagesLength = r.ReadField()
	p.UnencryptedLogPreimagesLength = r.ReadField()
	p.Historical = DeserializeHeader(r)
	p.ContractDeploymentData = DeserializeContractDeploymentData(r)
	p.ChainID = r.ReadField()
	p.Version = r.ReadField()
	return p
}

func (p *PrivateCircuitPublicInputs) Hash() *felt.Felt {
	return crypto.PedersenArray(feltPtrs(p.Serialize())...)
}

// PrivateCallStackItem is what a call request's hash commits to.
type PrivateCallStackItem struct {
	ContractAddress felt.Felt
	FunctionData    FunctionData
	PublicInputs    PrivateCircuitPublicInputs
}

func (c *PrivateCallStackItem) Hash() *felt.Felt {
	return crypto.HashWithIndex(crypto.GeneratorCallStackItem,
		&c.ContractAddress, c.FunctionData.Hash(), c.PublicInputs.Hash())
}
