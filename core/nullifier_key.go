package core

import "github.com/veilnetwork/veil/core/felt"

// NullifierKeyValidationRequest asks the kernel to prove that whoever built
// this transaction controls the master nullifier key behind the claimed
// app-siloed secret, without the contract ever seeing the master key.
type NullifierKeyValidationRequest struct {
	MasterPublicKeyX      felt.Felt
	MasterPublicKeyY      felt.Felt
	AppNullifierSecretKey felt.Felt
}

func EmptyNullifierKeyValidationRequest() NullifierKeyValidationRequest {
	return NullifierKeyValidationRequest{}
}

func (n NullifierKeyValidationRequest) IsEmpty() bool {
	return n.MasterPublicKeyX.IsZero() && n.MasterPublicKeyY.IsZero() && n.AppNullifierSecretKey.IsZero()
}

func (n NullifierKeyValidationRequest) Serialize() []felt.Felt {
	return []felt.Felt{n.MasterPublicKeyX, n.MasterPublicKeyY, n.AppNullifierSecretKey}
}

func DeserializeNullifierKeyValidationRequest(r *FieldReader) NullifierKeyValidationRequest {
	return NullifierKeyValidationRequest{
		MasterPublicKeyX:      r.ReadField(),
		MasterPublicKeyY:      r.ReadField(),
		AppNullifierSecretKey: r.ReadField(),
	}
}

// NullifierKeyValidationRequestContext carries the request through the
// accumulator together with the contract it was siloed for.
type NullifierKeyValidationRequestContext struct {
	MasterPublicKeyX      felt.Felt
	MasterPublicKeyY      felt.Felt
	AppNullifierSecretKey felt.Felt
	ContractAddress       felt.Felt
}

func (n NullifierKeyValidationRequestContext) IsEmpty() bool {
	return n.MasterPublicKeyX.IsZero() && n.MasterPublicKeyY.IsZero() &&
		n.AppNullifierSecretKey.IsZero() && n.ContractAddress.IsZero()
}

func (n NullifierKeyValidationRequestContext) Serialize() []felt.Felt {
	return []felt.Felt{n.MasterPublicKeyX, n.MasterPublicKeyY, n.AppNullifierSecretKey, n.ContractAddress}
}

func DeserializeNullifierKeyValidationRequestContext(r *FieldReader) NullifierKeyValidationRequestContext {
	return NullifierKeyValidationRequestContext{
		MasterPublicKeyX:      r.ReadField(),
		MasterPublicKeyY:      r.ReadField(),
		AppNullifierSecretKey: r.ReadField(),
		ContractAddress:       r.ReadField(),
	}
}

// InContext attaches the requesting contract to a per-call request.
func (n NullifierKeyValidationRequest) InContext(contractAddress *felt.Felt) NullifierKeyValidationRequestContext {
	return NullifierKeyValidationRequestContext{
		MasterPublicKeyX:      n.MasterPublicKeyX,
		MasterPublicKeyY:      n.MasterPublicKeyY,
		AppNullifierSecretKey: n.AppNullifierSecretKey,
		ContractAddress:       *contractAddress,
	}
}
