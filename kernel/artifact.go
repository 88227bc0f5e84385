package kernel

import (
	"reflect"
	"sync"

	"github.com/veilnetwork/veil/core"
	"github.com/veilnetwork/veil/encoder"
)

var once sync.Once

// RegisterKernelTypes tags the kernel artifact types with the encoder so
// self-describing blobs survive schema drift. Safe to call more than once.
func RegisterKernelTypes() {
	once.Do(func() {
		types := []reflect.Type{
			reflect.TypeOf(core.KernelCircuitPublicInputs{}),
			reflect.TypeOf(core.KernelCircuitPublicInputsFinal{}),
			reflect.TypeOf(core.CombinedAccumulatedData{}),
			reflect.TypeOf(core.FinalAccumulatedData{}),
			reflect.TypeOf(core.Header{}),
			reflect.TypeOf(core.TxRequest{}),
			reflect.TypeOf(OrderingHints{}),
		}

		for _, t := range types {
			if err := encoder.RegisterType(t); err != nil {
				panic(err)
			}
		}
	})
}

// FinalArtifact is what the prover hands to the rollup: the ordering
// kernel's public inputs together with its proof.
type FinalArtifact struct {
	PublicInputs core.KernelCircuitPublicInputsFinal
	Proof        core.Proof
}

func MarshalFinalArtifact(artifact *FinalArtifact) ([]byte, error) {
	RegisterKernelTypes()
	return encoder.Marshal(artifact)
}

func UnmarshalFinalArtifact(data []byte) (*FinalArtifact, error) {
	RegisterKernelTypes()
	artifact := new(FinalArtifact)
	if err := encoder.Unmarshal(data, artifact); err != nil {
		return nil, err
	}
	return artifact, nil
}

// MarshalOrderingHints snapshots hints between the last inner iteration and
// the ordering run, for provers that stage the two across processes.
func MarshalOrderingHints(hints *OrderingHints) ([]byte, error) {
	RegisterKernelTypes()
	return encoder.Marshal(hints)
}

func UnmarshalOrderingHints(data []byte) (*OrderingHints, error) {
	RegisterKernelTypes()
	hints := new(OrderingHints)
	if err := encoder.Unmarshal(data, hints); err != nil {
		return nil, err
	}
	return hints, nil
}
