package crypto

import "github.com/veilnetwork/veil/core/felt"

// SiloCommitment domain-separates an inner commitment by the contract whose
// storage it belongs to.
func SiloCommitment(contractAddress, innerCommitment *felt.Felt) *felt.Felt {
	return HashWithIndex(GeneratorSiloedCommitment, contractAddress, innerCommitment)
}

// SiloNullifier domain-separates an inner nullifier by its emitting contract.
func SiloNullifier(contractAddress, innerNullifier *felt.Felt) *felt.Felt {
	return HashWithIndex(GeneratorSiloedNullifier, contractAddress, innerNullifier)
}

// ComputeCommitmentNonce derives the per-transaction nonce for the
// commitment at the given index of the final commitment array. The first
// nullifier is the canonical transaction id, so nonces never repeat across
// transactions.
func ComputeCommitmentNonce(firstNullifier *felt.Felt, commitmentIndex uint32) *felt.Felt {
	index := felt.FromUint64(uint64(commitmentIndex))
	return HashWithIndex(GeneratorCommitmentNonce, firstNullifier, &index)
}

// ComputeUniqueCommitment applies a nonce to a siloed commitment, making it
// globally unique even when two transactions produce identical notes.
func ComputeUniqueCommitment(nonce, siloedCommitment *felt.Felt) *felt.Felt {
	return HashWithIndex(GeneratorUniqueCommitment, nonce, siloedCommitment)
}

// AccumulateLogsHash chains one call's logs hash onto the running
// transaction-wide hash. Lengths are tracked separately by the caller, which
// keeps the accumulation length preserving.
func AccumulateLogsHash(prev, cur *felt.Felt) *felt.Felt {
	return HashWithIndex(GeneratorLogHash, prev, cur)
}

// SiloNullifierSecret derives the app-scoped nullifier secret key from a
// master secret key. A contract only ever sees the siloed secret.
func SiloNullifierSecret(masterSecretKey, contractAddress *felt.Felt) *felt.Felt {
	return HashWithIndex(GeneratorNullifierSecret, masterSecretKey, contractAddress)
}

// ComputeContractClassID commits to a contract class: its artifact hash, the
// root of its private function tree and the hash of its public bytecode.
func ComputeContractClassID(artifactHash, privateFunctionsRoot, publicBytecodeCommitment *felt.Felt) *felt.Felt {
	return HashWithIndex(GeneratorContractClassID, artifactHash, privateFunctionsRoot, publicBytecodeCommitment)
}

// ComputeContractAddress derives a contract address from its class id and
// instance data, including the hash of the instance's public keys. Everyone
// can recompute it, so a call claiming a different address is caught by the
// kernel.
func ComputeContractAddress(publicKeysHash, contractClassID, salt, initializationHash, portalAddress *felt.Felt) *felt.Felt {
	partial := HashWithIndex(GeneratorPartialAddress, salt, initializationHash, portalAddress)
	return HashWithIndex(GeneratorContractAddress, publicKeysHash, contractClassID, partial)
}

// ComputeFunctionLeaf commits to one function of a contract class inside the
// class's function tree.
func ComputeFunctionLeaf(selector, vkHash *felt.Felt, isInternal bool) *felt.Felt {
	internal := felt.Zero
	if isInternal {
		internal = felt.FromUint64(1)
	}
	return HashWithIndex(GeneratorFunctionLeaf, selector, &internal, vkHash)
}

// ComputeL2ToL1MsgHash hashes an outgoing message with its sender and portal
// recipient context.
func ComputeL2ToL1MsgHash(contractAddress, portalAddress, chainID, version, content *felt.Felt) *felt.Felt {
	return HashWithIndex(GeneratorL2ToL1Msg, contractAddress, portalAddress, chainID, version, content)
}
