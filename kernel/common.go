package kernel

import (
	"fmt"

	"github.com/veilnetwork/veil/core"
	"github.com/veilnetwork/veil/core/crypto"
	"github.com/veilnetwork/veil/core/felt"
	"github.com/veilnetwork/veil/core/merkle"
)

// Shared validation/accumulation logic used by all three kernel stages.
// Everything in this file is pure over its inputs: a helper either returns
// nil or the first violated invariant.

// validatePrivateCall rejects calls the private kernel must never process.
func validatePrivateCall(call *PrivateCallData) error {
	if !call.CallStackItem.FunctionData.IsPrivate {
		return ErrNotPrivateCall
	}
	return nil
}

// validateArrays checks the packing invariant on every bounded array of the
// call's public inputs.
func validateArrays(pi *core.PrivateCircuitPublicInputs) error {
	if err := core.ValidateFeltArray(pi.ReturnValues[:]); err != nil {
		return fmt.Errorf("return values: %w", err)
	}
	if err := core.ValidateArray(pi.ReadRequests[:]); err != nil {
		return fmt.Errorf("read requests: %w", err)
	}
	if err := core.ValidateArray(pi.NullifierKeyValidationRequests[:]); err != nil {
		return fmt.Errorf("nullifier key validation requests: %w", err)
	}
	if err := core.ValidateArray(pi.NewCommitments[:]); err != nil {
		return fmt.Errorf("new commitments: %w", err)
	}
	if err := core.ValidateArray(pi.NewNullifiers[:]); err != nil {
		return fmt.Errorf("new nullifiers: %w", err)
	}
	if err := core.ValidateFeltArray(pi.PrivateCallStackHashes[:]); err != nil {
		return fmt.Errorf("private call stack: %w", err)
	}
	if err := core.ValidateFeltArray(pi.PublicCallStackHashes[:]); err != nil {
		return fmt.Errorf("public call stack: %w", err)
	}
	if err := core.ValidateFeltArray(pi.NewL2ToL1Msgs[:]); err != nil {
		return fmt.Errorf("l2 to l1 messages: %w", err)
	}
	return nil
}

// validateReadRequests verifies every settled read against the historical
// note hash tree root. Transient reads have no tree presence yet; they are
// matched against in-transaction commitments by the ordering stage.
func validateReadRequests(noteHashTreeRoot *felt.Felt, pi *core.PrivateCircuitPublicInputs,
	witnesses *[core.MaxReadRequestsPerCall]ReadRequestMembershipWitness,
) error {
	for i := range pi.ReadRequests {
		rr := &pi.ReadRequests[i]
		if rr.IsEmpty() || witnesses[i].IsTransient {
			continue
		}
		leaf := crypto.SiloCommitment(&pi.CallContext.StorageContractAddress, &rr.Value)
		root := merkle.RootFromSiblingPath(leaf, witnesses[i].LeafIndex, witnesses[i].SiblingPath)
		if !root.Equal(noteHashTreeRoot) {
			return fmt.Errorf("%w: read request %d", ErrNoteHashTreeRootMismatch, i)
		}
	}
	return nil
}

// validateCallRequests checks that the call request preimages supplied with
// a call line up with the stack hashes its circuit emitted, and that every
// request names the current call as its caller.
func validateCallRequests(stackHashes []felt.Felt, requests []core.CallRequest,
	contractAddress *felt.Felt, callCtx *core.CallContext,
) error {
	if len(stackHashes) != len(requests) {
		return ErrTooManyCallRequests
	}
	for i := range stackHashes {
		hash := &stackHashes[i]
		req := &requests[i]
		if hash.IsZero() {
			if !req.IsEmpty() {
				return ErrTooManyCallRequests
			}
			continue
		}
		if !req.Hash.Equal(hash) {
			return fmt.Errorf("%w: index %d", ErrCallRequestHashMismatch, i)
		}
		if !req.CallerContractAddress.Equal(contractAddress) {
			return fmt.Errorf("%w: index %d", ErrInvalidCaller, i)
		}
		if !req.CallerContext.IsEmpty() {
			if !req.CallerContext.MsgSender.Equal(&callCtx.MsgSender) ||
				!req.CallerContext.StorageContractAddress.Equal(&callCtx.StorageContractAddress) {
				return fmt.Errorf("%w: index %d", ErrCallerContextMismatch, i)
			}
		}
		if req.StartSideEffectCounter >= req.EndSideEffectCounter {
			return fmt.Errorf("%w: index %d", ErrCallRequestCounters, i)
		}
	}
	return nil
}

// validateCallAgainstRequest is the call-validity state machine: the stack
// item being processed must be exactly the one its caller requested, and
// its caller identity must be legitimate for the call flavor.
func validateCallAgainstRequest(call *PrivateCallData, request *core.CallRequest) error {
	item := &call.CallStackItem
	callCtx := &item.PublicInputs.CallContext

	if !item.Hash().Equal(&request.Hash) {
		return ErrCallStackHashMismatch
	}

	if item.FunctionData.IsInternal &&
		!callCtx.MsgSender.Equal(&callCtx.StorageContractAddress) {
		return ErrInternalSender
	}

	if callCtx.IsDelegateCall {
		callerCtx := &request.CallerContext
		if callerCtx.IsEmpty() {
			return ErrEmptyCallerContextForDelegate
		}
		if !callCtx.MsgSender.Equal(&callerCtx.MsgSender) {
			return ErrDelegateMsgSender
		}
		if !callCtx.StorageContractAddress.Equal(&callerCtx.StorageContractAddress) {
			return ErrDelegateStorageAddress
		}
		if item.ContractAddress.Equal(&callCtx.StorageContractAddress) {
			return ErrDelegateSelfStorage
		}
	} else {
		if !callCtx.MsgSender.Equal(&request.CallerContractAddress) {
			return ErrRegularMsgSender
		}
		if !callCtx.StorageContractAddress.Equal(&item.ContractAddress) {
			return ErrRegularStorageAddress
		}
	}
	return nil
}

// initializeEndValues seeds a fresh accumulator from the previous kernel's
// output. A pure resume: no call-specific folding happens here.
func initializeEndValues(previous *PreviousKernelData) core.AccumulatedDataBuilder {
	return core.BuilderFrom(&previous.PublicInputs.End)
}

// updateEndValues folds one private call's side effects into the builder:
// static-call policy, siloing, call request pushes, message hashing and log
// chaining.
func updateEndValues(call *PrivateCallData, b *core.AccumulatedDataBuilder) error {
	pi := &call.CallStackItem.PublicInputs
	storage := &pi.CallContext.StorageContractAddress

	if pi.CallContext.IsStaticCall {
		if core.ArrayLength(pi.NewCommitments[:]) != 0 {
			return ErrStaticCommitments
		}
		if core.ArrayLength(pi.NewNullifiers[:]) != 0 {
			return ErrStaticNullifiers
		}
	}

	// transient reads travel with the accumulator until ordering settles them
	for i := range pi.ReadRequests {
		rr := &pi.ReadRequests[i]
		if rr.IsEmpty() || !call.ReadRequestMembershipWitnesses[i].IsTransient {
			continue
		}
		siloed := core.SideEffect{
			Value:   *crypto.SiloCommitment(storage, &rr.Value),
			Counter: rr.Counter,
		}
		if err := b.PushReadRequest(siloed); err != nil {
			return err
		}
	}

	for i := range pi.NullifierKeyValidationRequests {
		req := &pi.NullifierKeyValidationRequests[i]
		if req.IsEmpty() {
			continue
		}
		if err := b.PushNullifierKeyValidationRequest(req.InContext(storage)); err != nil {
			return err
		}
	}

	for i := range pi.NewCommitments {
		c := &pi.NewCommitments[i]
		if c.IsEmpty() {
			continue
		}
		siloed := core.SideEffect{
			Value:   *crypto.SiloCommitment(storage, &c.Value),
			Counter: c.Counter,
		}
		if err := b.PushNewCommitment(siloed); err != nil {
			return err
		}
	}

	for i := range pi.NewNullifiers {
		n := &pi.NewNullifiers[i]
		if n.IsEmpty() {
			continue
		}
		siloed := core.SideEffectLinkedToNoteHash{
			Value:   *crypto.SiloNullifier(storage, &n.Value),
			Counter: n.Counter,
		}
		if !n.NoteHash.IsZero() {
			siloed.NoteHash = *crypto.SiloCommitment(storage, &n.NoteHash)
		}
		if err := b.PushNewNullifier(siloed); err != nil {
			return err
		}
	}

	contractAddress := &call.CallStackItem.ContractAddress
	if err := validateCallRequests(pi.PrivateCallStackHashes[:], call.PrivateCallStack[:],
		contractAddress, &pi.CallContext); err != nil {
		return err
	}
	if err := validateCallRequests(pi.PublicCallStackHashes[:], call.PublicCallStack[:],
		contractAddress, &pi.CallContext); err != nil {
		return err
	}
	for i := range call.PrivateCallStack {
		if call.PrivateCallStack[i].IsEmpty() {
			continue
		}
		if err := b.PushPrivateCallRequest(call.PrivateCallStack[i]); err != nil {
			return err
		}
	}
	for i := range call.PublicCallStack {
		if call.PublicCallStack[i].IsEmpty() {
			continue
		}
		if err := b.PushPublicCallRequest(call.PublicCallStack[i]); err != nil {
			return err
		}
	}

	for i := range pi.NewL2ToL1Msgs {
		content := &pi.NewL2ToL1Msgs[i]
		if content.IsZero() {
			continue
		}
		msg := crypto.ComputeL2ToL1MsgHash(storage, &pi.CallContext.PortalContractAddress,
			&pi.ChainID, &pi.Version, content)
		if err := b.PushNewL2ToL1Msg(*msg); err != nil {
			return err
		}
	}

	end := b.End()
	if !pi.EncryptedLogsHash.IsZero() {
		end.EncryptedLogsHash = *crypto.AccumulateLogsHash(&end.EncryptedLogsHash, &pi.EncryptedLogsHash)
		end.EncryptedLogPreimagesLength.Add(&end.EncryptedLogPreimagesLength, &pi.EncryptedLogPreimagesLength)
	}
	if !pi.UnencryptedLogsHash.IsZero() {
		end.UnencryptedLogsHash = *crypto.AccumulateLogsHash(&end.UnencryptedLogsHash, &pi.UnencryptedLogsHash)
		end.UnencryptedLogPreimagesLength.Add(&end.UnencryptedLogPreimagesLength, &pi.UnencryptedLogPreimagesLength)
	}

	return nil
}

// contractLogic proves the call runs under the address it claims. For a
// deployment it derives the new address from the tx's deployment data and
// records the new contract; for everything else it re-derives the address
// from the class preimage and checks the contract leaf sits in the
// historical contract tree.
func contractLogic(call *PrivateCallData, b *core.AccumulatedDataBuilder,
	constants *core.CombinedConstantData,
) error {
	item := &call.CallStackItem
	pi := &item.PublicInputs
	storage := &pi.CallContext.StorageContractAddress

	if pi.CallContext.IsContractDeployment {
		deployment := &constants.TxContext.ContractDeploymentData

		computedInitHash := crypto.HashWithIndex(crypto.GeneratorFunctionArgs,
			&item.FunctionData.Selector, &pi.ArgsHash)
		if !computedInitHash.Equal(&deployment.InitializationHash) {
			return ErrInitializationHashMismatch
		}

		address := crypto.ComputeContractAddress(
			&deployment.PublicKeysHash,
			&deployment.ContractClassID,
			&deployment.ContractAddressSalt,
			&deployment.InitializationHash,
			&deployment.PortalContractAddress,
		)
		if !address.Equal(storage) {
			return ErrContractAddressMismatch
		}

		return b.PushNewContract(core.NewContractData{
			ContractAddress:       *address,
			PortalContractAddress: deployment.PortalContractAddress,
			ContractClassID:       deployment.ContractClassID,
		})
	}

	// derive the function tree root from the function leaf's own witness;
	// a bad witness shifts the root and with it the derived address
	functionLeaf := crypto.ComputeFunctionLeaf(&item.FunctionData.Selector, &call.VKHash,
		item.FunctionData.IsInternal)
	if len(call.FunctionLeafMembershipWitness.SiblingPath) != merkle.FunctionTreeHeight {
		return ErrFunctionLeafMismatch
	}
	functionTreeRoot := merkle.RootFromSiblingPath(functionLeaf,
		call.FunctionLeafMembershipWitness.LeafIndex,
		call.FunctionLeafMembershipWitness.SiblingPath)

	classID := crypto.ComputeContractClassID(&call.ContractClass.ArtifactHash,
		functionTreeRoot, &call.ContractClass.PublicBytecodeCommitment)
	address := crypto.ComputeContractAddress(&call.ContractClass.PublicKeysHash,
		classID, &call.Salt, &call.InitializationHash, &call.PortalContractAddress)
	if !address.Equal(&item.ContractAddress) {
		return ErrContractAddressMismatch
	}

	contractLeaf := core.NewContractData{
		ContractAddress:       *address,
		PortalContractAddress: call.PortalContractAddress,
		ContractClassID:       *classID,
	}
	if err := merkle.VerifyMembership(&constants.Historical.ContractTreeRoot,
		contractLeaf.Hash(), &call.ContractLeafMembershipWitness,
		merkle.ContractTreeHeight); err != nil {
		return ErrContractLeafMismatch
	}

	return nil
}

// requireNonZeroFirstNullifier enforces the canonical transaction id
// invariant on an accumulated nullifier array.
func requireNonZeroFirstNullifier(end *core.CombinedAccumulatedData) error {
	if end.NewNullifiers[0].Value.IsZero() {
		return ErrZeroFirstNullifier
	}
	return nil
}
