package crypto

import "github.com/veilnetwork/veil/core/felt"

// GeneratorIndex domain-separates every hash in the protocol. Each semantic
// purpose gets exactly one index; two purposes must never share one, or
// proofs become ambiguous across protocols.
type GeneratorIndex uint64

const (
	GeneratorCommitmentNonce GeneratorIndex = iota + 1
	GeneratorUniqueCommitment
	GeneratorSiloedCommitment
	GeneratorSiloedNullifier
	GeneratorContractAddress
	GeneratorPartialAddress
	GeneratorContractClassID
	GeneratorContractLeaf
	GeneratorFunctionLeaf
	GeneratorFunctionData
	GeneratorFunctionArgs
	GeneratorCallContext
	GeneratorCallStackItem
	GeneratorTxRequest
	GeneratorTxContext
	GeneratorSignaturePayload
	GeneratorL2ToL1Msg
	GeneratorLogHash
	GeneratorNullifierSecret
	GeneratorBlockHeader
	GeneratorGlobalVariables
	GeneratorDeploymentData
)

func (g GeneratorIndex) felt() felt.Felt {
	return felt.FromUint64(uint64(g))
}

// HashWithIndex hashes elems under the given domain separator.
func HashWithIndex(index GeneratorIndex, elems ...*felt.Felt) *felt.Felt {
	sep := index.felt()
	all := make([]*felt.Felt, 0, len(elems)+1)
	all = append(all, &sep)
	all = append(all, elems...)
	return PedersenArray(all...)
}
