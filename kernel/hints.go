package kernel

import (
	"fmt"
	"sort"

	"github.com/veilnetwork/veil/core"
	"github.com/veilnetwork/veil/core/felt"
)

// OrderingHints is untrusted prover input to the ordering stage: sort
// permutations and match indices that are cheap to verify in-circuit but
// expensive to compute there. The circuit validates every hint; a wrong
// hint fails the proof, it never corrupts the output.
type OrderingHints struct {
	SortedNewCommitments        [core.MaxNewCommitmentsPerTx]core.SideEffect
	SortedNewCommitmentsIndexes [core.MaxNewCommitmentsPerTx]uint32

	SortedNewNullifiers        [core.MaxNewNullifiersPerTx]core.SideEffectLinkedToNoteHash
	SortedNewNullifiersIndexes [core.MaxNewNullifiersPerTx]uint32

	// index of the commitment each transient read resolves to, into the
	// unsorted accumulated commitment array
	ReadCommitmentHints [core.MaxReadRequestsPerTx]uint32

	// index of the commitment each transient nullifier destroys, into the
	// sorted commitment array
	NullifierCommitmentHints [core.MaxNewNullifiersPerTx]uint32

	// master secret keys answering the accumulated key validation requests
	MasterNullifierSecretKeys [core.MaxNullifierKeyValidationRequestsPerTx]felt.Felt
}

// BuildOrderingHints computes hints host-side from an accumulator snapshot.
// The output is advisory only; RunOrdering re-verifies all of it.
func BuildOrderingHints(end *core.CombinedAccumulatedData,
	masterSecretKeys []felt.Felt,
) (OrderingHints, error) {
	var hints OrderingHints

	sortSideEffects(end.NewCommitments[:], hints.SortedNewCommitments[:],
		hints.SortedNewCommitmentsIndexes[:],
		func(s core.SideEffect) bool { return s.IsEmpty() },
		func(s core.SideEffect) uint32 { return s.Counter })
	sortSideEffects(end.NewNullifiers[:], hints.SortedNewNullifiers[:],
		hints.SortedNewNullifiersIndexes[:],
		func(s core.SideEffectLinkedToNoteHash) bool { return s.IsEmpty() },
		func(s core.SideEffectLinkedToNoteHash) uint32 { return s.Counter })

	for i := range end.ReadRequests {
		rr := &end.ReadRequests[i]
		if rr.IsEmpty() {
			continue
		}
		hint, found := findCommitment(end.NewCommitments[:], &rr.Value, rr.Counter)
		if !found {
			return hints, fmt.Errorf("no in-transaction commitment found for read request %d", i)
		}
		hints.ReadCommitmentHints[i] = hint
	}

	for i := range hints.SortedNewNullifiers {
		n := &hints.SortedNewNullifiers[i]
		if n.IsEmpty() || n.NoteHash.IsZero() {
			continue
		}
		hint, found := findCommitment(hints.SortedNewCommitments[:], &n.NoteHash, n.Counter)
		if !found {
			return hints, fmt.Errorf("no in-transaction commitment found for nullifier %d", i)
		}
		hints.NullifierCommitmentHints[i] = hint
	}

	if got := len(masterSecretKeys); got > len(hints.MasterNullifierSecretKeys) {
		return hints, fmt.Errorf("%d master secret keys supplied, at most %d requests per tx",
			got, len(hints.MasterNullifierSecretKeys))
	}
	copy(hints.MasterNullifierSecretKeys[:], masterSecretKeys)

	return hints, nil
}

// sortSideEffects stable-sorts the non-empty prefix by counter into sorted
// and records, for every original slot, where its entry landed.
func sortSideEffects[T any](original, sorted []T, indexes []uint32,
	isEmpty func(T) bool, counter func(T) uint32,
) {
	var positions []int
	for i := range original {
		if !isEmpty(original[i]) {
			positions = append(positions, i)
		}
	}
	sort.SliceStable(positions, func(a, b int) bool {
		return counter(original[positions[a]]) < counter(original[positions[b]])
	})
	for j, origPos := range positions {
		sorted[j] = original[origPos]
		indexes[origPos] = uint32(j)
	}
}

func findCommitment(commitments []core.SideEffect, value *felt.Felt, beforeCounter uint32) (uint32, bool) {
	for i := range commitments {
		c := &commitments[i]
		if c.IsEmpty() {
			continue
		}
		if c.Value.Equal(value) && c.Counter < beforeCounter {
			return uint32(i), true
		}
	}
	return 0, false
}
