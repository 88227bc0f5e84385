package core

import (
	"github.com/veilnetwork/veil/core/crypto"
	"github.com/veilnetwork/veil/core/felt"
)

// ContractDeploymentData is carried in the transaction context when the
// transaction deploys a contract: everything needed to re-derive the new
// address inside the kernel.
type ContractDeploymentData struct {
	PublicKeysHash        felt.Felt
	ContractClassID       felt.Felt
	InitializationHash    felt.Felt
	ContractAddressSalt   felt.Felt
	PortalContractAddress felt.Felt
}

func EmptyContractDeploymentData() ContractDeploymentData {
	return ContractDeploymentData{}
}

func (c *ContractDeploymentData) IsEmpty() bool {
	return c.PublicKeysHash.IsZero() && c.ContractClassID.IsZero() &&
		c.InitializationHash.IsZero() && c.ContractAddressSalt.IsZero() &&
		c.PortalContractAddress.IsZero()
}

func (c *ContractDeploymentData) Serialize() []felt.Felt {
	return []felt.Felt{
		c.PublicKeysHash,
		c.ContractClassID,
		c.InitializationHash,
		c.ContractAddressSalt,
		c.PortalContractAddress,
	}
}

func DeserializeContractDeploymentData(r *FieldReader) ContractDeploymentData {
	return ContractDeploymentData{
		PublicKeysHash:        r.ReadField(),
		ContractClassID:       r.ReadField(),
		InitializationHash:    r.ReadField(),
		ContractAddressSalt:   r.ReadField(),
		PortalContractAddress: r.ReadField(),
	}
}

func (c *ContractDeploymentData) Hash() *felt.Felt {
	return crypto.HashWithIndex(crypto.GeneratorDeploymentData, feltPtrs(c.Serialize())...)
}

// NewContractData records one contract deployed by this transaction.
// Emitted exactly once, by the constructor call.
type NewContractData struct {
	ContractAddress       felt.Felt
	PortalContractAddress felt.Felt
	ContractClassID       felt.Felt
}

func EmptyNewContractData() NewContractData {
	return NewContractData{}
}

func (n NewContractData) IsEmpty() bool {
	return n.ContractAddress.IsZero() && n.PortalContractAddress.IsZero() && n.ContractClassID.IsZero()
}

func (n NewContractData) Serialize() []felt.Felt {
	return []felt.Felt{n.ContractAddress, n.PortalContractAddress, n.ContractClassID}
}

func DeserializeNewContractData(r *FieldReader) NewContractData {
	return NewContractData{
		ContractAddress:       r.ReadField(),
		PortalContractAddress: r.ReadField(),
		ContractClassID:       r.ReadField(),
	}
}

// Hash returns the contract-tree leaf for this record; the empty record
// hashes to the zero leaf.
func (n NewContractData) Hash() *felt.Felt {
	if n.IsEmpty() {
		return new(felt.Felt)
	}
	return crypto.HashWithIndex(crypto.GeneratorContractLeaf,
		&n.ContractAddress, &n.PortalContractAddress, &n.ContractClassID)
}
