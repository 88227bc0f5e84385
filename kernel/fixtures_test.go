package kernel_test

import (
	"github.com/veilnetwork/veil/core"
	"github.com/veilnetwork/veil/core/crypto"
	"github.com/veilnetwork/veil/core/felt"
	"github.com/veilnetwork/veil/core/merkle"
	"github.com/veilnetwork/veil/kernel"
)

func f(v uint64) felt.Felt {
	return felt.FromUint64(v)
}

func fp(v uint64) *felt.Felt {
	x := felt.FromUint64(v)
	return &x
}

type fakeVerifier struct {
	fail bool
}

func (v fakeVerifier) VerifyPreviousKernelState(agg core.AggregationObject, _ core.Proof) (core.AggregationObject, bool) {
	if v.fail {
		return core.AggregationObject{}, false
	}
	return agg, true
}

// buildTree fills a fixed-height binary pedersen tree with the given leaves
// packed from index 0, and returns the root plus a witness factory.
func buildTree(height int, leaves []felt.Felt) (felt.Felt, func(uint64) merkle.MembershipWitness) {
	zero := make([]felt.Felt, height+1)
	for i := 1; i <= height; i++ {
		zero[i] = *crypto.Pedersen(&zero[i-1], &zero[i-1])
	}

	levels := make([][]felt.Felt, height+1)
	levels[0] = leaves
	for l := 0; l < height; l++ {
		cur := levels[l]
		next := make([]felt.Felt, (len(cur)+1)/2)
		for i := range next {
			left := cur[2*i]
			right := zero[l]
			if 2*i+1 < len(cur) {
				right = cur[2*i+1]
			}
			next[i] = *crypto.Pedersen(&left, &right)
		}
		levels[l+1] = next
	}

	root := zero[height]
	if len(levels[height]) > 0 {
		root = levels[height][0]
	}

	witness := func(index uint64) merkle.MembershipWitness {
		path := make([]felt.Felt, height)
		idx := index
		for l := 0; l < height; l++ {
			sib := idx ^ 1
			if int(sib) < len(levels[l]) {
				path[l] = levels[l][sib]
			} else {
				path[l] = zero[l]
			}
			idx >>= 1
		}
		return merkle.MembershipWitness{LeafIndex: index, SiblingPath: path}
	}
	return root, witness
}

// testContract is a contract whose address genuinely derives from its class
// preimage, so the kernel's contract logic accepts it.
type testContract struct {
	selector felt.Felt
	vkHash   felt.Felt

	class    kernel.ContractClassPreimage
	salt     felt.Felt
	initHash felt.Felt
	portal   felt.Felt

	classID felt.Felt
	address felt.Felt

	functionWitness merkle.MembershipWitness
	leaf            core.NewContractData
}

func newTestContract(seed uint64) *testContract {
	c := &testContract{
		selector: f(seed),
		vkHash:   f(seed + 1),
		class: kernel.ContractClassPreimage{
			ArtifactHash:             f(seed + 2),
			PublicBytecodeCommitment: f(seed + 3),
			PublicKeysHash:           f(seed + 4),
		},
		salt:     f(seed + 5),
		initHash: f(seed + 6),
		portal:   f(seed + 7),
	}

	functionLeaf := crypto.ComputeFunctionLeaf(&c.selector, &c.vkHash, false)
	functionRoot, functionWitness := buildTree(merkle.FunctionTreeHeight, []felt.Felt{*functionLeaf})
	c.functionWitness = functionWitness(0)

	c.classID = *crypto.ComputeContractClassID(&c.class.ArtifactHash, &functionRoot,
		&c.class.PublicBytecodeCommitment)
	c.address = *crypto.ComputeContractAddress(&c.class.PublicKeysHash, &c.classID,
		&c.salt, &c.initHash, &c.portal)
	c.leaf = core.NewContractData{
		ContractAddress:       c.address,
		PortalContractAddress: c.portal,
		ContractClassID:       c.classID,
	}
	return c
}

// testChain anchors a set of deployed contracts (and optionally settled
// notes) in a historical header.
type testChain struct {
	header          core.Header
	contractWitness func(uint64) merkle.MembershipWitness
	noteWitness     func(uint64) merkle.MembershipWitness
}

func newTestChain(noteLeaves []felt.Felt, contracts ...*testContract) *testChain {
	contractLeaves := make([]felt.Felt, len(contracts))
	for i, c := range contracts {
		contractLeaves[i] = *c.leaf.Hash()
	}
	contractRoot, contractWitness := buildTree(merkle.ContractTreeHeight, contractLeaves)
	noteRoot, noteWitness := buildTree(merkle.NoteHashTreeHeight, noteLeaves)

	return &testChain{
		header: core.Header{
			ArchiveRoot:           f(8001),
			NoteHashTreeRoot:      noteRoot,
			NullifierTreeRoot:     f(8003),
			ContractTreeRoot:      contractRoot,
			L1ToL2MessageTreeRoot: f(8005),
			PublicDataTreeRoot:    f(8006),
			GlobalVariables: core.GlobalVariables{
				ChainID:     f(1),
				Version:     f(1),
				BlockNumber: f(10),
				Timestamp:   f(99),
			},
		},
		contractWitness: contractWitness,
		noteWitness:     noteWitness,
	}
}

// callData builds a valid non-deployment private call for the contract,
// anchored at treeIndex in the chain's contract tree. mutate runs before the
// call stack item hash is ever taken, so tests can reshape the call freely.
func (c *testContract) callData(chain *testChain, treeIndex uint64,
	mutate func(*kernel.PrivateCallData),
) kernel.PrivateCallData {
	call := kernel.PrivateCallData{
		CallStackItem: core.PrivateCallStackItem{
			ContractAddress: c.address,
			FunctionData:    core.FunctionData{Selector: c.selector, IsPrivate: true},
		},
		Proof:  core.Proof{0x01},
		VKHash: c.vkHash,

		FunctionLeafMembershipWitness: c.functionWitness,
		ContractLeafMembershipWitness: chain.contractWitness(treeIndex),

		ContractClass:         c.class,
		Salt:                  c.salt,
		InitializationHash:    c.initHash,
		PortalContractAddress: c.portal,
	}
	call.CallStackItem.PublicInputs = core.PrivateCircuitPublicInputs{
		CallContext: core.CallContext{
			StorageContractAddress: c.address,
			PortalContractAddress:  c.portal,
			FunctionSelector:       c.selector,
		},
		Historical: chain.header,
		ChainID:    f(1),
		Version:    f(1),
	}
	if mutate != nil {
		mutate(&call)
	}
	return call
}

// deploymentTx is a complete constructor transaction: a signed-request
// fixture plus the constructor call whose deployed address derives from the
// request's deployment data.
type deploymentTx struct {
	tx         core.TxRequest
	call       kernel.PrivateCallData
	address    felt.Felt
	deployment core.ContractDeploymentData

	noteValue   felt.Felt
	noteWitness merkle.MembershipWitness
}

func newDeploymentTx() *deploymentTx {
	selector := f(7001)
	argsHash := f(7002)
	initHash := *crypto.HashWithIndex(crypto.GeneratorFunctionArgs, &selector, &argsHash)

	deployment := core.ContractDeploymentData{
		PublicKeysHash:        f(7006),
		ContractClassID:       f(7003),
		InitializationHash:    initHash,
		ContractAddressSalt:   f(7004),
		PortalContractAddress: f(7005),
	}
	address := *crypto.ComputeContractAddress(&deployment.PublicKeysHash,
		&deployment.ContractClassID, &deployment.ContractAddressSalt,
		&deployment.InitializationHash, &deployment.PortalContractAddress)

	// one settled note so read request paths can be exercised
	noteValue := f(510)
	noteLeaf := crypto.SiloCommitment(&address, &noteValue)
	noteRoot, noteWitness := buildTree(merkle.NoteHashTreeHeight, []felt.Felt{*noteLeaf})

	header := core.Header{
		ArchiveRoot:           f(8001),
		NoteHashTreeRoot:      noteRoot,
		NullifierTreeRoot:     f(8003),
		ContractTreeRoot:      f(8004),
		L1ToL2MessageTreeRoot: f(8005),
		PublicDataTreeRoot:    f(8006),
		GlobalVariables: core.GlobalVariables{
			ChainID:     f(1),
			Version:     f(1),
			BlockNumber: f(10),
			Timestamp:   f(99),
		},
	}

	functionData := core.FunctionData{Selector: selector, IsPrivate: true, IsConstructor: true}

	call := kernel.PrivateCallData{
		CallStackItem: core.PrivateCallStackItem{
			ContractAddress: address,
			FunctionData:    functionData,
		},
		Proof: core.Proof{0x01},
	}
	call.CallStackItem.PublicInputs = core.PrivateCircuitPublicInputs{
		CallContext: core.CallContext{
			MsgSender:              f(9001),
			StorageContractAddress: address,
			PortalContractAddress:  deployment.PortalContractAddress,
			FunctionSelector:       selector,
			IsContractDeployment:   true,
		},
		ArgsHash:               argsHash,
		Historical:             header,
		ContractDeploymentData: deployment,
		ChainID:                f(1),
		Version:                f(1),
	}
	call.CallStackItem.PublicInputs.NewCommitments[0] = core.SideEffect{Value: f(301), Counter: 2}
	call.CallStackItem.PublicInputs.NewNullifiers[0] = core.SideEffectLinkedToNoteHash{Value: f(401), Counter: 3}

	return &deploymentTx{
		tx: core.TxRequest{
			Origin:       address,
			FunctionData: functionData,
			ArgsHash:     argsHash,
			TxContext: core.TxContext{
				ChainID:                f(1),
				Version:                f(1),
				IsContractDeploymentTx: true,
				ContractDeploymentData: deployment,
			},
		},
		call:        call,
		address:     address,
		deployment:  deployment,
		noteValue:   noteValue,
		noteWitness: noteWitness(0),
	}
}
