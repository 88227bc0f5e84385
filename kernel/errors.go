package kernel

import "errors"

// Every violated invariant inside a kernel stage is a named, hard failure:
// the candidate transaction is rejected outright and there is no retry path
// short of rebuilding the transaction at the wallet.
var (
	// shape/format
	ErrTooManyCallRequests = errors.New("call requests do not fit the call stack")

	// linkage
	ErrCallStackHashMismatch   = errors.New("call stack hash does not match call request hash")
	ErrCallRequestHashMismatch = errors.New("call request hash does not match call stack item hash")
	ErrInvalidCaller           = errors.New("caller of a call request must be the current contract")
	ErrCallerContextMismatch   = errors.New("caller context does not match the caller's call context")
	ErrCallRequestCounters     = errors.New("call request counters must be strictly increasing")

	// call-validity state machine
	ErrEmptyCallerContextForDelegate = errors.New("caller context cannot be empty for delegate calls")
	ErrDelegateMsgSender             = errors.New("msg_sender must match the caller context for delegate calls")
	ErrDelegateStorageAddress        = errors.New("storage contract address must match the caller context for delegate calls")
	ErrDelegateSelfStorage           = errors.New("contract address cannot equal storage contract address for delegate calls")
	ErrInternalSender                = errors.New("msg_sender must be the contract itself for internal calls")
	ErrRegularMsgSender              = errors.New("msg_sender must be the caller contract address for regular calls")
	ErrRegularStorageAddress         = errors.New("storage contract address must be the contract's own address for regular calls")

	// temporal/ordering
	ErrNotSorted             = errors.New("Not sorted")
	ErrReadRequestCounter    = errors.New("Read request counter must be greater than commitment counter")
	ErrNullifierCounter      = errors.New("Nullifier counter must be greater than commitment counter")
	ErrHintedCommitmentRead  = errors.New("Hinted commitment does not match read request")
	ErrHintedCommitmentSquash = errors.New("Hinted commitment does not match nullified note hash")

	// identity/derivation
	ErrContractAddressMismatch    = errors.New("computed contract address does not match expected one")
	ErrInitializationHashMismatch = errors.New("initialization hash does not match computed one")
	ErrMasterPublicKeyMismatch    = errors.New("master nullifier public key does not match the supplied secret key")
	ErrAppSecretKeyMismatch       = errors.New("app nullifier secret key does not match the derived siloed key")

	// policy
	ErrStaticCommitments = errors.New("new_commitments must be empty for static calls")
	ErrStaticNullifiers  = errors.New("new_nullifiers must be empty for static calls")
	ErrNotPrivateCall    = errors.New("private kernel circuit can only execute a private function")
	ErrPreviousNotPrivate = errors.New("previous kernel must be private")
	ErrEntrypointInternal = errors.New("users cannot invoke internal functions directly")
	ErrEntrypointDelegate = errors.New("entrypoint cannot be a delegate call")
	ErrEntrypointStatic   = errors.New("entrypoint cannot be a static call")
	ErrEntrypointStorage  = errors.New("storage contract address must equal contract address at the entrypoint")

	// tx-request binding
	ErrTxOriginMismatch   = errors.New("origin of the tx_request does not match the contract address of the call_stack_item")
	ErrTxSelectorMismatch = errors.New("function selector of the tx_request does not match the call_stack_item")
	ErrTxArgsMismatch     = errors.New("noir function args passed to tx_request must match args in the call_stack_item")

	// root mismatches
	ErrNoteHashTreeRootMismatch = errors.New("note hash tree root mismatch")
	ErrContractTreeRootMismatch = errors.New("purported_contract_tree_root does not match previous_kernel_contract_tree_root")
	ErrHistoricalHeaderMismatch = errors.New("historical header does not match the previous kernel's")
	ErrFunctionLeafMismatch     = errors.New("function leaf membership check failed")
	ErrContractLeafMismatch     = errors.New("contract leaf is not a member of the historical contract tree")
	ErrArchiveMembership        = errors.New("header is not a member of the archive")

	// transaction invariant
	ErrZeroFirstNullifier = errors.New("The 0th nullifier in the accumulated nullifier array is zero")

	// ordering stage
	ErrCallStackNotEmpty = errors.New("private call stack must be empty before ordering")

	// proof system collaborator
	ErrProofVerification = errors.New("proof verification failed")
)
