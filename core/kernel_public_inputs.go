package core

import "github.com/veilnetwork/veil/core/felt"

// Proof is an opaque proof blob. The kernel never inspects it; it only
// hands it to the proof-verification collaborator.
type Proof []byte

// AggregationObject is the opaque recursive-verification accumulator
// threaded across kernel iterations. Its contents belong to the proof
// system; the kernel treats it as a value to carry and update.
type AggregationObject struct {
	Elements []felt.Felt
}

// CombinedConstantData is fixed for the whole transaction: pinned by Init,
// checked unchanged by every later stage.
type CombinedConstantData struct {
	Historical Header
	TxContext  TxContext
}

// KernelCircuitPublicInputs is the output of the Init and Inner stages.
type KernelCircuitPublicInputs struct {
	AggregationObject AggregationObject
	End               CombinedAccumulatedData
	Constants         CombinedConstantData
	IsPrivate         bool
}

// KernelCircuitPublicInputsFinal is Ordering's immutable output, consumed
// by the public/rollup kernels.
type KernelCircuitPublicInputsFinal struct {
	AggregationObject AggregationObject
	End               FinalAccumulatedData
	Constants         CombinedConstantData
}
