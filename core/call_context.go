package core

import (
	"github.com/veilnetwork/veil/core/crypto"
	"github.com/veilnetwork/veil/core/felt"
)

// CallContext describes who is calling what, and under which call flavor.
// Immutable once constructed for a call.
type CallContext struct {
	MsgSender              felt.Felt
	StorageContractAddress felt.Felt
	PortalContractAddress  felt.Felt
	FunctionSelector       felt.Felt
	IsDelegateCall         bool
	IsStaticCall           bool
	IsContractDeployment   bool
	StartSideEffectCounter uint32
}

func EmptyCallContext() CallContext {
	return CallContext{}
}

func (c *CallContext) IsEmpty() bool {
	return c.MsgSender.IsZero() &&
		c.StorageContractAddress.IsZero() &&
		c.PortalContractAddress.IsZero() &&
		c.FunctionSelector.IsZero() &&
		!c.IsDelegateCall && !c.IsStaticCall && !c.IsContractDeployment &&
		c.StartSideEffectCounter == 0
}

func (c *CallContext) Serialize() []felt.Felt {
	return []felt.Felt{
		c.MsgSender,
		c.StorageContractAddress,
		c.PortalContractAddress,
		c.FunctionSelector,
		boolToFelt(c.IsDelegateCall),
		boolToFelt(c.IsStaticCall),
		boolToFelt(c.IsContractDeployment),
		uint32ToFelt(c.StartSideEffectCounter),
	}
}

func DeserializeCallContext(r *FieldReader) CallContext {
	return CallContext{
		MsgSender:              r.ReadField(),
		StorageContractAddress: r.ReadField(),
		PortalContractAddress:  r.ReadField(),
		FunctionSelector:       r.ReadField(),
		IsDelegateCall:         r.ReadBool(),
		IsStaticCall:           r.ReadBool(),
		IsContractDeployment:   r.ReadBool(),
		StartSideEffectCounter: r.ReadUint32(),
	}
}

func (c *CallContext) Hash() *felt.Felt {
	return crypto.HashWithIndex(crypto.GeneratorCallContext, feltPtrs(c.Serialize())...)
}
