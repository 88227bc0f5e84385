package kernel

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"github.com/veilnetwork/veil/core"
	"github.com/veilnetwork/veil/core/felt"
	"github.com/veilnetwork/veil/core/merkle"
	"github.com/veilnetwork/veil/utils"
)

// ProofGenerator is the "prove" half of the opaque proof-system
// capability: it turns a finished kernel stage's public inputs into the
// proof the next stage consumes.
type ProofGenerator interface {
	GenerateKernelProof(ctx context.Context, publicInputs *core.KernelCircuitPublicInputs) (core.Proof, error)
}

// TxExecution is one transaction's worth of private-call outputs, in the
// order the kernel must fold them: the entrypoint first, then each nested
// call as it is popped off the private call stack.
type TxExecution struct {
	TxRequest   core.TxRequest
	Entrypoint  PrivateCallData
	NestedCalls []PrivateCallData

	// wallet-held secrets answering the transaction's key validation requests
	MasterNullifierSecretKeys []felt.Felt

	// block the transaction's historical header must be anchored to
	AnchorBlockNumber uint64
}

// Prover drives the Init -> Inner* -> Ordering chain for one transaction.
// It lives host-side: the stages themselves stay pure, the Prover owns the
// collaborator calls and the logging around them.
type Prover struct {
	verifier  ProofVerifier
	generator ProofGenerator
	witnesses WitnessProvider
	headers   HeaderProvider
	log       utils.Logger
}

func NewProver(verifier ProofVerifier, generator ProofGenerator,
	witnesses WitnessProvider, headers HeaderProvider, log utils.Logger,
) *Prover {
	return &Prover{
		verifier:  verifier,
		generator: generator,
		witnesses: witnesses,
		headers:   headers,
		log:       log,
	}
}

// ProveTx runs the full kernel chain over one transaction and returns the
// final public inputs ready for the rollup.
func (p *Prover) ProveTx(ctx context.Context, tx *TxExecution) (core.KernelCircuitPublicInputsFinal, error) {
	var final core.KernelCircuitPublicInputsFinal

	if err := p.verifyHeaderAnchoring(ctx, tx); err != nil {
		return final, err
	}

	initInputs := InitInputs{TxRequest: tx.TxRequest, PrivateCall: tx.Entrypoint}
	publicInputs, err := RunInit(&initInputs, p.verifier)
	if err != nil {
		return final, errors.Wrap(err, "init kernel")
	}
	p.log.Debugw("kernel init complete",
		"commitments", core.ArrayLength(publicInputs.End.NewCommitments[:]),
		"nullifiers", core.ArrayLength(publicInputs.End.NewNullifiers[:]),
		"pendingCalls", core.ArrayLength(publicInputs.End.PrivateCallStack[:]))

	for i := range tx.NestedCalls {
		proof, err := p.generator.GenerateKernelProof(ctx, &publicInputs)
		if err != nil {
			return final, errors.Wrapf(err, "proving kernel iteration %d", i)
		}

		innerInputs := InnerInputs{
			PreviousKernel: PreviousKernelData{PublicInputs: publicInputs, Proof: proof},
			PrivateCall:    tx.NestedCalls[i],
		}
		publicInputs, err = RunInner(&innerInputs, p.verifier)
		if err != nil {
			return final, errors.Wrapf(err, "inner kernel, call %d", i)
		}
		p.log.Debugw("kernel inner complete", "call", i,
			"pendingCalls", core.ArrayLength(publicInputs.End.PrivateCallStack[:]))
	}

	hints, err := BuildOrderingHints(&publicInputs.End, tx.MasterNullifierSecretKeys)
	if err != nil {
		return final, errors.Wrap(err, "building ordering hints")
	}

	proof, err := p.generator.GenerateKernelProof(ctx, &publicInputs)
	if err != nil {
		return final, errors.Wrap(err, "proving last inner kernel")
	}

	orderingInputs := OrderingInputs{
		PreviousKernel: PreviousKernelData{PublicInputs: publicInputs, Proof: proof},
		Hints:          hints,
	}
	final, err = RunOrdering(&orderingInputs)
	if err != nil {
		return final, errors.Wrap(err, "ordering kernel")
	}

	p.log.Infow("transaction kernel chain complete",
		"commitments", core.ArrayLength(final.End.NewCommitments[:]),
		"nullifiers", core.ArrayLength(final.End.NewNullifiers[:]))
	return final, nil
}

// verifyHeaderAnchoring checks the transaction's historical header is a
// member of the archive at the anchor block whenever the transaction was
// built against an older block.
func (p *Prover) verifyHeaderAnchoring(ctx context.Context, tx *TxExecution) error {
	historical := &tx.Entrypoint.CallStackItem.PublicInputs.Historical
	historicalBlock := historical.GlobalVariables.BlockNumber.Uint64()
	if historicalBlock >= tx.AnchorBlockNumber {
		return nil
	}

	anchor, err := p.headers.HeaderByNumber(ctx, tx.AnchorBlockNumber)
	if err != nil {
		return errors.Wrapf(err, "fetching anchor header %d", tx.AnchorBlockNumber)
	}

	leaf := historical.Hash()
	witness, err := p.witnesses.GetMembershipWitness(ctx, ArchiveTree, tx.AnchorBlockNumber, leaf)
	if err != nil {
		return errors.Wrapf(err, "fetching archive witness for block %d", historicalBlock)
	}

	if err := merkle.VerifyMembership(&anchor.ArchiveRoot, leaf, &witness, merkle.ArchiveTreeHeight); err != nil {
		return ErrArchiveMembership
	}
	return nil
}

// ProverPool proves independent transactions concurrently. Parallelism
// exists only across transactions; a single kernel chain is strictly
// sequential.
type ProverPool struct {
	prover  *Prover
	workers int
}

func NewProverPool(prover *Prover, workers int) *ProverPool {
	return &ProverPool{prover: prover, workers: workers}
}

func (pp *ProverPool) ProveAll(ctx context.Context, txs []*TxExecution) ([]core.KernelCircuitPublicInputsFinal, error) {
	results := make([]core.KernelCircuitPublicInputsFinal, len(txs))

	workers := pool.New().WithErrors().WithMaxGoroutines(pp.workers)
	for i := range txs {
		workers.Go(func() error {
			final, err := pp.prover.ProveTx(ctx, txs[i])
			if err != nil {
				return errors.Wrapf(err, "transaction %d", i)
			}
			results[i] = final
			return nil
		})
	}
	if err := workers.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
