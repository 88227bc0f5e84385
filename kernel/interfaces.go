package kernel

import (
	"context"

	"github.com/veilnetwork/veil/core"
	"github.com/veilnetwork/veil/core/felt"
	"github.com/veilnetwork/veil/core/merkle"
)

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks github.com/veilnetwork/veil/kernel ProofVerifier,ProofGenerator,WitnessProvider,HeaderProvider

// ProofVerifier is the opaque proof-system capability. A false result is
// fatal to the transaction.
type ProofVerifier interface {
	VerifyPreviousKernelState(agg core.AggregationObject, proof core.Proof) (core.AggregationObject, bool)
}

// TreeID names the protocol trees a witness can be requested for.
type TreeID uint8

const (
	NoteHashTree TreeID = iota
	NullifierTree
	ContractTree
	L1ToL2MessageTree
	ArchiveTree
)

// WitnessProvider is the oracle-backed membership witness source. The
// kernel never trusts how a witness was obtained; it only verifies the
// returned path against a historical root.
type WitnessProvider interface {
	GetMembershipWitness(ctx context.Context, tree TreeID, blockNumber uint64, leaf *felt.Felt) (merkle.MembershipWitness, error)
}

// HeaderProvider supplies historical block headers by number.
type HeaderProvider interface {
	HeaderByNumber(ctx context.Context, number uint64) (*core.Header, error)
}
