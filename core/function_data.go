package core

import (
	"github.com/veilnetwork/veil/core/crypto"
	"github.com/veilnetwork/veil/core/felt"
)

// FunctionData identifies one function of a contract class.
type FunctionData struct {
	Selector      felt.Felt
	IsInternal    bool
	IsPrivate     bool
	IsConstructor bool
}

func EmptyFunctionData() FunctionData {
	return FunctionData{}
}

func (f *FunctionData) IsEmpty() bool {
	return f.Selector.IsZero() && !f.IsInternal && !f.IsPrivate && !f.IsConstructor
}

func (f *FunctionData) Serialize() []felt.Felt {
	return []felt.Felt{
		f.Selector,
		boolToFelt(f.IsInternal),
		boolToFelt(f.IsPrivate),
		boolToFelt(f.IsConstructor),
	}
}

func DeserializeFunctionData(r *FieldReader) FunctionData {
	return FunctionData{
		Selector:      r.ReadField(),
		IsInternal:    r.ReadBool(),
		IsPrivate:     r.ReadBool(),
		IsConstructor: r.ReadBool(),
	}
}

func (f *FunctionData) Hash() *felt.Felt {
	return crypto.HashWithIndex(crypto.GeneratorFunctionData, feltPtrs(f.Serialize())...)
}
