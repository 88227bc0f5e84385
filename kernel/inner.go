package kernel

import (
	"fmt"

	"github.com/veilnetwork/veil/core"
)

// RunInner folds one nested private call into an existing accumulator. It
// pops the top pending private call request and checks the call being
// processed is exactly the one that was requested, then accumulates its
// side effects. Iterated until the private call stack drains.
func RunInner(in *InnerInputs, verifier ProofVerifier) (core.KernelCircuitPublicInputs, error) {
	var out core.KernelCircuitPublicInputs

	prev := &in.PreviousKernel.PublicInputs
	if !prev.IsPrivate {
		return out, ErrPreviousNotPrivate
	}
	if err := requireNonZeroFirstNullifier(&prev.End); err != nil {
		return out, err
	}

	item := &in.PrivateCall.CallStackItem
	pi := &item.PublicInputs

	if err := validatePrivateCall(&in.PrivateCall); err != nil {
		return out, err
	}
	if err := validateArrays(pi); err != nil {
		return out, err
	}

	// the call executed against the same historical state the transaction
	// was pinned to by Init
	if !pi.Historical.ContractTreeRoot.Equal(&prev.Constants.Historical.ContractTreeRoot) {
		return out, ErrContractTreeRootMismatch
	}
	if !pi.Historical.Equal(&prev.Constants.Historical) {
		return out, ErrHistoricalHeaderMismatch
	}

	builder := initializeEndValues(&in.PreviousKernel)

	request, err := builder.PopPrivateCall()
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrCallStackHashMismatch, err)
	}
	if err := validateCallAgainstRequest(&in.PrivateCall, &request); err != nil {
		return out, err
	}

	if err := validateReadRequests(&prev.Constants.Historical.NoteHashTreeRoot, pi,
		&in.PrivateCall.ReadRequestMembershipWitnesses); err != nil {
		return out, err
	}
	if err := updateEndValues(&in.PrivateCall, &builder); err != nil {
		return out, err
	}
	if err := contractLogic(&in.PrivateCall, &builder, &prev.Constants); err != nil {
		return out, err
	}

	agg, ok := verifier.VerifyPreviousKernelState(prev.AggregationObject, in.PreviousKernel.Proof)
	if !ok {
		return out, fmt.Errorf("%w: previous kernel proof", ErrProofVerification)
	}
	agg, ok = verifier.VerifyPreviousKernelState(agg, in.PrivateCall.Proof)
	if !ok {
		return out, fmt.Errorf("%w: private call proof", ErrProofVerification)
	}

	out = core.KernelCircuitPublicInputs{
		AggregationObject: agg,
		End:               builder.Build(),
		Constants:         prev.Constants,
		IsPrivate:         true,
	}
	return out, nil
}
