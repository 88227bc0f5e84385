package core

import "github.com/veilnetwork/veil/core/felt"

// PublicDataRead and PublicDataUpdateRequest are placeholders the private
// kernel carries through untouched; they are populated by the public kernel
// downstream.

type PublicDataRead struct {
	LeafSlot felt.Felt
	Value    felt.Felt
}

func (p PublicDataRead) IsEmpty() bool {
	return p.LeafSlot.IsZero() && p.Value.IsZero()
}

func (p PublicDataRead) Serialize() []felt.Felt {
	return []felt.Felt{p.LeafSlot, p.Value}
}

func DeserializePublicDataRead(r *FieldReader) PublicDataRead {
	return PublicDataRead{LeafSlot: r.ReadField(), Value: r.ReadField()}
}

type PublicDataUpdateRequest struct {
	LeafSlot felt.Felt
	OldValue felt.Felt
	NewValue felt.Felt
}

func (p PublicDataUpdateRequest) IsEmpty() bool {
	return p.LeafSlot.IsZero() && p.OldValue.IsZero() && p.NewValue.IsZero()
}

func (p PublicDataUpdateRequest) Serialize() []felt.Felt {
	return []felt.Felt{p.LeafSlot, p.OldValue, p.NewValue}
}

func DeserializePublicDataUpdateRequest(r *FieldReader) PublicDataUpdateRequest {
	return PublicDataUpdateRequest{
		LeafSlot: r.ReadField(),
		OldValue: r.ReadField(),
		NewValue: r.ReadField(),
	}
}
