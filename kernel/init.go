package kernel

import (
	"fmt"

	"github.com/veilnetwork/veil/core"
)

// RunInit bootstraps the kernel chain: it binds the entrypoint call to the
// signed transaction request, seeds the accumulator with the request hash
// as the 0th nullifier, and folds in the entrypoint's side effects.
func RunInit(in *InitInputs, verifier ProofVerifier) (core.KernelCircuitPublicInputs, error) {
	var out core.KernelCircuitPublicInputs

	item := &in.PrivateCall.CallStackItem
	pi := &item.PublicInputs
	callCtx := &pi.CallContext

	if err := validatePrivateCall(&in.PrivateCall); err != nil {
		return out, err
	}
	if item.FunctionData.IsInternal {
		return out, ErrEntrypointInternal
	}
	if callCtx.IsDelegateCall {
		return out, ErrEntrypointDelegate
	}
	if callCtx.IsStaticCall {
		return out, ErrEntrypointStatic
	}
	if !callCtx.StorageContractAddress.Equal(&item.ContractAddress) {
		return out, ErrEntrypointStorage
	}

	// the signed request and the executed call must agree exactly
	if !in.TxRequest.Origin.Equal(&item.ContractAddress) {
		return out, ErrTxOriginMismatch
	}
	if !in.TxRequest.FunctionData.Selector.Equal(&item.FunctionData.Selector) {
		return out, ErrTxSelectorMismatch
	}
	if !in.TxRequest.ArgsHash.Equal(&pi.ArgsHash) {
		return out, ErrTxArgsMismatch
	}

	if err := validateArrays(pi); err != nil {
		return out, err
	}

	constants := core.CombinedConstantData{
		Historical: pi.Historical,
		TxContext:  in.TxRequest.TxContext,
	}

	if err := validateReadRequests(&constants.Historical.NoteHashTreeRoot, pi,
		&in.PrivateCall.ReadRequestMembershipWitnesses); err != nil {
		return out, err
	}

	var builder core.AccumulatedDataBuilder

	// the request hash is the canonical tx id and must come first
	txHash := in.TxRequest.Hash()
	if err := builder.PushNewNullifier(core.SideEffectLinkedToNoteHash{Value: *txHash}); err != nil {
		return out, err
	}

	if err := updateEndValues(&in.PrivateCall, &builder); err != nil {
		return out, err
	}
	if err := contractLogic(&in.PrivateCall, &builder, &constants); err != nil {
		return out, err
	}

	agg, ok := verifier.VerifyPreviousKernelState(core.AggregationObject{}, in.PrivateCall.Proof)
	if !ok {
		return out, fmt.Errorf("%w: entrypoint call proof", ErrProofVerification)
	}

	out = core.KernelCircuitPublicInputs{
		AggregationObject: agg,
		End:               builder.Build(),
		Constants:         constants,
		IsPrivate:         true,
	}
	return out, nil
}
