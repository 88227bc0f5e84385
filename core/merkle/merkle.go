// Package merkle verifies membership witnesses against historical tree
// roots. The kernel never builds or mutates trees; it only recomputes roots
// from (leaf, index, sibling path) triples supplied by the host.
package merkle

import (
	"errors"
	"fmt"

	"github.com/veilnetwork/veil/core/crypto"
	"github.com/veilnetwork/veil/core/felt"
)

// Protocol tree heights. Fixed per deployment; a witness with the wrong
// path length is rejected before any hashing.
const (
	NoteHashTreeHeight     = 32
	ContractTreeHeight     = 16
	FunctionTreeHeight     = 5
	ArchiveTreeHeight      = 16
	L1ToL2MessageTreeHeight = 16
)

var ErrRootMismatch = errors.New("root mismatch")

// MembershipWitness locates a leaf in a binary tree of fixed height.
type MembershipWitness struct {
	LeafIndex   uint64
	SiblingPath []felt.Felt
}

// EmptyMembershipWitness returns the all-zero witness for the given height.
func EmptyMembershipWitness(height int) MembershipWitness {
	return MembershipWitness{SiblingPath: make([]felt.Felt, height)}
}

func (w *MembershipWitness) IsEmpty() bool {
	if w.LeafIndex != 0 {
		return false
	}
	for i := range w.SiblingPath {
		if !w.SiblingPath[i].IsZero() {
			return false
		}
	}
	return true
}

// RootFromSiblingPath recomputes the tree root implied by the witness.
func RootFromSiblingPath(leaf *felt.Felt, leafIndex uint64, siblingPath []felt.Felt) *felt.Felt {
	node := new(felt.Felt).Set(leaf)
	index := leafIndex
	for i := range siblingPath {
		if index&1 == 0 {
			node = crypto.Pedersen(node, &siblingPath[i])
		} else {
			node = crypto.Pedersen(&siblingPath[i], node)
		}
		index >>= 1
	}
	return node
}

// VerifyMembership checks the witness proves leaf is in the tree with the
// expected root.
func VerifyMembership(expectedRoot, leaf *felt.Felt, witness *MembershipWitness, height int) error {
	if len(witness.SiblingPath) != height {
		return fmt.Errorf("sibling path has length %d, want %d", len(witness.SiblingPath), height)
	}
	root := RootFromSiblingPath(leaf, witness.LeafIndex, witness.SiblingPath)
	if !root.Equal(expectedRoot) {
		return ErrRootMismatch
	}
	return nil
}
