package core

import "github.com/veilnetwork/veil/core/felt"

// CallerContext re-derives caller identity for delegate calls. Empty for
// regular calls.
type CallerContext struct {
	MsgSender              felt.Felt
	StorageContractAddress felt.Felt
}

func EmptyCallerContext() CallerContext {
	return CallerContext{}
}

func (c *CallerContext) IsEmpty() bool {
	return c.MsgSender.IsZero() && c.StorageContractAddress.IsZero()
}

func (c *CallerContext) Serialize() []felt.Felt {
	return []felt.Felt{c.MsgSender, c.StorageContractAddress}
}

func DeserializeCallerContext(r *FieldReader) CallerContext {
	return CallerContext{
		MsgSender:              r.ReadField(),
		StorageContractAddress: r.ReadField(),
	}
}

// CallRequest is one pending nested call. Hash commits to the full call
// stack item being requested; a later kernel iteration pops the request and
// checks the item it processes hashes to exactly this value.
type CallRequest struct {
	Hash                   felt.Felt
	CallerContractAddress  felt.Felt
	CallerContext          CallerContext
	StartSideEffectCounter uint32
	EndSideEffectCounter   uint32
}

func EmptyCallRequest() CallRequest {
	return CallRequest{}
}

func (c CallRequest) IsEmpty() bool {
	return c.Hash.IsZero()
}

func (c CallRequest) Serialize() []felt.Felt {
	out := []felt.Felt{c.Hash, c.CallerContractAddress}
	out = append(out, c.CallerContext.Serialize()...)
	out = append(out, uint32ToFelt(c.StartSideEffectCounter), uint32ToFelt(c.EndSideEffectCounter))
	return out
}

func DeserializeCallRequest(r *FieldReader) CallRequest {
	c := CallRequest{
		Hash:                  r.ReadField(),
		CallerContractAddress: r.ReadField(),
		CallerContext:         DeserializeCallerContext(r),
	}
	c.StartSideEffectCounter = r.ReadUint32()
	c.EndSideEffectCounter = r.ReadUint32()
	return c
}
