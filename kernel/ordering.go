package kernel

import (
	"fmt"

	"github.com/veilnetwork/veil/core"
	"github.com/veilnetwork/veil/core/crypto"
	"github.com/veilnetwork/veil/core/felt"
)

// RunOrdering is the final kernel pass. With the private call stack empty
// it settles everything that could not be settled while calls were still
// being folded: key validation requests, transient reads, the global
// counter order, transient commitment/nullifier pairs, and commitment
// uniqueness. Its output is immutable and goes to the rollup kernels.
func RunOrdering(in *OrderingInputs) (core.KernelCircuitPublicInputsFinal, error) {
	var out core.KernelCircuitPublicInputsFinal

	prev := &in.PreviousKernel.PublicInputs
	hints := &in.Hints

	if !prev.IsPrivate {
		return out, ErrPreviousNotPrivate
	}
	if err := requireNonZeroFirstNullifier(&prev.End); err != nil {
		return out, err
	}
	if core.ArrayLength(prev.End.PrivateCallStack[:]) != 0 {
		return out, ErrCallStackNotEmpty
	}

	end := prev.End

	if err := validateNullifierKeys(&end, hints); err != nil {
		return out, err
	}
	if err := matchReadsToCommitments(&end, hints); err != nil {
		return out, err
	}

	if err := assertSortedCounters(end.NewCommitments[:], hints.SortedNewCommitments[:],
		hints.SortedNewCommitmentsIndexes[:],
		func(s core.SideEffect) bool { return s.IsEmpty() },
		func(s core.SideEffect) uint32 { return s.Counter }); err != nil {
		return out, err
	}
	if err := assertSortedCounters(end.NewNullifiers[:], hints.SortedNewNullifiers[:],
		hints.SortedNewNullifiersIndexes[:],
		func(s core.SideEffectLinkedToNoteHash) bool { return s.IsEmpty() },
		func(s core.SideEffectLinkedToNoteHash) uint32 { return s.Counter }); err != nil {
		return out, err
	}

	commitments := hints.SortedNewCommitments
	nullifiers := hints.SortedNewNullifiers

	if err := squashTransient(&commitments, &nullifiers, hints); err != nil {
		return out, err
	}

	compact(commitments[:], func(s core.SideEffect) bool { return s.IsEmpty() },
		core.EmptySideEffect())
	compact(nullifiers[:], func(s core.SideEffectLinkedToNoteHash) bool { return s.IsEmpty() },
		core.EmptySideEffectLinked())

	applyCommitmentNonces(&commitments, &nullifiers[0].Value)

	final := core.FinalAccumulatedData{
		NewCommitments:                commitments,
		NewNullifiers:                 nullifiers,
		PrivateCallStack:              prev.End.PrivateCallStack,
		PublicCallStack:               prev.End.PublicCallStack,
		NewL2ToL1Msgs:                 prev.End.NewL2ToL1Msgs,
		EncryptedLogsHash:             prev.End.EncryptedLogsHash,
		UnencryptedLogsHash:           prev.End.UnencryptedLogsHash,
		EncryptedLogPreimagesLength:   prev.End.EncryptedLogPreimagesLength,
		UnencryptedLogPreimagesLength: prev.End.UnencryptedLogPreimagesLength,
		NewContracts:                  prev.End.NewContracts,
		PublicDataReads:               prev.End.PublicDataReads,
		PublicDataUpdateRequests:      prev.End.PublicDataUpdateRequests,
	}

	out = core.KernelCircuitPublicInputsFinal{
		AggregationObject: prev.AggregationObject,
		End:               final,
		Constants:         prev.Constants,
	}
	return out, nil
}

// validateNullifierKeys proves control of every master nullifier key whose
// app-siloed secret a contract relied on, then clears the requests: they
// are a proof-time construct and never persist.
func validateNullifierKeys(end *core.CombinedAccumulatedData, hints *OrderingHints) error {
	for i := range end.NullifierKeyValidationRequests {
		req := &end.NullifierKeyValidationRequests[i]
		if req.IsEmpty() {
			continue
		}
		secret := &hints.MasterNullifierSecretKeys[i]

		x, y := crypto.DerivePublicKey(secret)
		if !x.Equal(&req.MasterPublicKeyX) || !y.Equal(&req.MasterPublicKeyY) {
			return fmt.Errorf("%w: request %d", ErrMasterPublicKeyMismatch, i)
		}

		siloed := crypto.SiloNullifierSecret(secret, &req.ContractAddress)
		if !siloed.Equal(&req.AppNullifierSecretKey) {
			return fmt.Errorf("%w: request %d", ErrAppSecretKeyMismatch, i)
		}

		end.NullifierKeyValidationRequests[i] = core.NullifierKeyValidationRequestContext{}
	}
	return nil
}

// matchReadsToCommitments resolves every remaining (transient) read request
// against the commitment the hint points at, then clears the requests.
func matchReadsToCommitments(end *core.CombinedAccumulatedData, hints *OrderingHints) error {
	for i := range end.ReadRequests {
		rr := &end.ReadRequests[i]
		if rr.IsEmpty() {
			continue
		}
		hint := hints.ReadCommitmentHints[i]
		if int(hint) >= len(end.NewCommitments) {
			return fmt.Errorf("%w: read request %d hint out of range", ErrHintedCommitmentRead, i)
		}
		commitment := &end.NewCommitments[hint]
		if !commitment.Value.Equal(&rr.Value) {
			return fmt.Errorf("%w: read request %d", ErrHintedCommitmentRead, i)
		}
		// a note cannot be read before it exists
		if rr.Counter <= commitment.Counter {
			return fmt.Errorf("%w: read request %d", ErrReadRequestCounter, i)
		}
		end.ReadRequests[i] = core.EmptySideEffect()
	}
	return nil
}

// assertSortedCounters verifies a claimed sort permutation instead of
// trusting it: the sorted array must hold exactly the original entries (via
// the index map), non-empty entries must be strictly counter-ascending and
// empties must trail.
func assertSortedCounters[T comparable](original, sorted []T, indexes []uint32,
	isEmpty func(T) bool, counter func(T) uint32,
) error {
	originalCount := 0
	for i := range original {
		if isEmpty(original[i]) {
			continue
		}
		originalCount++
		idx := indexes[i]
		if int(idx) >= len(sorted) || sorted[idx] != original[i] {
			return fmt.Errorf("%w: entry %d not found at its claimed position", ErrNotSorted, i)
		}
	}

	sortedCount := 0
	inTail := false
	var prevCounter uint32
	for i := range sorted {
		if isEmpty(sorted[i]) {
			inTail = true
			continue
		}
		if inTail {
			return fmt.Errorf("%w: empty entries must trail", ErrNotSorted)
		}
		if sortedCount > 0 && counter(sorted[i]) <= prevCounter {
			return ErrNotSorted
		}
		prevCounter = counter(sorted[i])
		sortedCount++
	}

	if sortedCount != originalCount {
		return fmt.Errorf("%w: entry counts differ", ErrNotSorted)
	}
	return nil
}

// squashTransient removes commitment/nullifier pairs created and destroyed
// within this transaction. Nullifiers with a zero note hash are persistent
// and pass through.
func squashTransient(commitments *[core.MaxNewCommitmentsPerTx]core.SideEffect,
	nullifiers *[core.MaxNewNullifiersPerTx]core.SideEffectLinkedToNoteHash,
	hints *OrderingHints,
) error {
	for i := range nullifiers {
		n := &nullifiers[i]
		if n.IsEmpty() || n.NoteHash.IsZero() {
			continue
		}
		hint := hints.NullifierCommitmentHints[i]
		if int(hint) >= len(commitments) {
			return fmt.Errorf("%w: nullifier %d hint out of range", ErrHintedCommitmentSquash, i)
		}
		commitment := &commitments[hint]
		if !commitment.Value.Equal(&n.NoteHash) {
			return fmt.Errorf("%w: nullifier %d", ErrHintedCommitmentSquash, i)
		}
		// a note cannot be destroyed before it exists
		if n.Counter <= commitment.Counter {
			return fmt.Errorf("%w: nullifier %d", ErrNullifierCounter, i)
		}
		*commitment = core.EmptySideEffect()
		*n = core.EmptySideEffectLinked()
	}
	return nil
}

// compact pushes all empty slots to the end, preserving the relative order
// of survivors.
func compact[T any](arr []T, isEmpty func(T) bool, empty T) {
	out := 0
	for i := range arr {
		if !isEmpty(arr[i]) {
			arr[out] = arr[i]
			out++
		}
	}
	for ; out < len(arr); out++ {
		arr[out] = empty
	}
}

// applyCommitmentNonces makes every surviving commitment globally unique by
// folding in a nonce derived from the tx id and the commitment's index in
// the final array.
func applyCommitmentNonces(commitments *[core.MaxNewCommitmentsPerTx]core.SideEffect,
	firstNullifier *felt.Felt,
) {
	for i := range commitments {
		c := &commitments[i]
		if c.IsEmpty() {
			continue
		}
		nonce := crypto.ComputeCommitmentNonce(firstNullifier, uint32(i))
		c.Value = *crypto.ComputeUniqueCommitment(nonce, &c.Value)
	}
}
