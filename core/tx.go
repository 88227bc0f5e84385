package core

import (
	"github.com/veilnetwork/veil/core/crypto"
	"github.com/veilnetwork/veil/core/felt"
)

// TxContext fixes the chain a transaction commits to, plus its deployment
// payload when it deploys a contract.
type TxContext struct {
	ChainID                felt.Felt
	Version                felt.Felt
	IsContractDeploymentTx bool
	ContractDeploymentData ContractDeploymentData
}

func EmptyTxContext() TxContext {
	return TxContext{}
}

func (t *TxContext) Serialize() []felt.Felt {
	out := []felt.Felt{t.ChainID, t.Version, boolToFelt(t.IsContractDeploymentTx)}
	return append(out, t.ContractDeploymentData.Serialize()...)
}

func DeserializeTxContext(r *FieldReader) TxContext {
	return TxContext{
		ChainID:                r.ReadField(),
		Version:                r.ReadField(),
		IsContractDeploymentTx: r.ReadBool(),
		ContractDeploymentData: DeserializeContractDeploymentData(r),
	}
}

func (t *TxContext) Hash() *felt.Felt {
	return crypto.HashWithIndex(crypto.GeneratorTxContext, feltPtrs(t.Serialize())...)
}

// TxRequest is the user-signed intent: which function to call on which
// contract, with which arguments, on which chain. Its hash doubles as the
// transaction's 0th nullifier and therefore as the canonical tx id.
type TxRequest struct {
	Origin       felt.Felt
	FunctionData FunctionData
	ArgsHash     felt.Felt
	TxContext    TxContext
}

func (t *TxRequest) Serialize() []felt.Felt {
	out := []felt.Felt{t.Origin}
	out = append(out, t.FunctionData.Serialize()...)
	out = append(out, t.ArgsHash)
	return append(out, t.TxContext.Serialize()...)
}

func DeserializeTxRequest(r *FieldReader) TxRequest {
	t := TxRequest{Origin: r.ReadField()}
	t.FunctionData = DeserializeFunctionData(r)
	t.ArgsHash = r.ReadField()
	t.TxContext = DeserializeTxContext(r)
	return t
}

func (t *TxRequest) Hash() *felt.Felt {
	return crypto.HashWithIndex(crypto.GeneratorTxRequest,
		&t.Origin, t.FunctionData.Hash(), &t.ArgsHash, t.TxContext.Hash())
}
