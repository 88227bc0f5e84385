package kernel

import (
	"github.com/veilnetwork/veil/core"
	"github.com/veilnetwork/veil/core/felt"
	"github.com/veilnetwork/veil/core/merkle"
)

// ContractClassPreimage lets the kernel re-derive the class id, and from it
// the contract address, of the contract being called. Spoofing any field
// moves the derived address away from the claimed one.
type ContractClassPreimage struct {
	ArtifactHash             felt.Felt
	PublicBytecodeCommitment felt.Felt
	PublicKeysHash           felt.Felt
}

// ReadRequestMembershipWitness locates the note behind a read request in
// the historical note hash tree. Transient witnesses refer to notes created
// earlier in this same transaction; they carry no valid tree path and are
// settled by the ordering stage instead.
type ReadRequestMembershipWitness struct {
	merkle.MembershipWitness
	IsTransient bool
}

func EmptyReadRequestMembershipWitness() ReadRequestMembershipWitness {
	return ReadRequestMembershipWitness{
		MembershipWitness: merkle.EmptyMembershipWitness(merkle.NoteHashTreeHeight),
	}
}

// PrivateCallData bundles one private call with everything the kernel needs
// to validate it: the call stack item, the preimages of the call requests
// whose hashes appear in its public inputs, its proof, and the witnesses
// anchoring its contract and reads in historical state.
type PrivateCallData struct {
	CallStackItem core.PrivateCallStackItem

	PrivateCallStack [core.MaxPrivateCallStackDepthPerCall]core.CallRequest
	PublicCallStack  [core.MaxPublicCallStackDepthPerCall]core.CallRequest

	Proof  core.Proof
	VKHash felt.Felt

	FunctionLeafMembershipWitness merkle.MembershipWitness
	ContractLeafMembershipWitness merkle.MembershipWitness
	ReadRequestMembershipWitnesses [core.MaxReadRequestsPerCall]ReadRequestMembershipWitness

	ContractClass      ContractClassPreimage
	Salt               felt.Felt
	InitializationHash felt.Felt
	PortalContractAddress felt.Felt
}

// PreviousKernelData is one finished kernel iteration fed into the next.
type PreviousKernelData struct {
	PublicInputs core.KernelCircuitPublicInputs
	Proof        core.Proof
	VKHash       felt.Felt
}

// InitInputs bootstraps the chain from a signed transaction request and the
// entrypoint call it authorizes.
type InitInputs struct {
	TxRequest   core.TxRequest
	PrivateCall PrivateCallData
}

// InnerInputs folds one more private call into a running accumulator.
type InnerInputs struct {
	PreviousKernel PreviousKernelData
	PrivateCall    PrivateCallData
}

// OrderingInputs finalizes the accumulator once the private call stack has
// drained. Hints are untrusted prover input, verified in-circuit.
type OrderingInputs struct {
	PreviousKernel PreviousKernelData
	Hints          OrderingHints
}
