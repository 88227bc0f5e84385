package core

import (
	"github.com/veilnetwork/veil/core/crypto"
	"github.com/veilnetwork/veil/core/felt"
)

// GlobalVariables are the chain-level values fixed for the block a
// transaction executes against.
type GlobalVariables struct {
	ChainID     felt.Felt
	Version     felt.Felt
	BlockNumber felt.Felt
	Timestamp   felt.Felt
}

func (g *GlobalVariables) Serialize() []felt.Felt {
	return []felt.Felt{g.ChainID, g.Version, g.BlockNumber, g.Timestamp}
}

func DeserializeGlobalVariables(r *FieldReader) GlobalVariables {
	return GlobalVariables{
		ChainID:     r.ReadField(),
		Version:     r.ReadField(),
		BlockNumber: r.ReadField(),
		Timestamp:   r.ReadField(),
	}
}

// Header is the historical block header a transaction's state reads are
// anchored to. The kernel treats it as trusted constants once Init has
// pinned it; every membership witness must verify against these roots.
type Header struct {
	ArchiveRoot           felt.Felt
	NoteHashTreeRoot      felt.Felt
	NullifierTreeRoot     felt.Felt
	ContractTreeRoot      felt.Felt
	L1ToL2MessageTreeRoot felt.Felt
	PublicDataTreeRoot    felt.Felt
	GlobalVariables       GlobalVariables
}

func EmptyHeader() Header {
	return Header{}
}

func (h *Header) IsEmpty() bool {
	return h.ArchiveRoot.IsZero() && h.NoteHashTreeRoot.IsZero() &&
		h.NullifierTreeRoot.IsZero() && h.ContractTreeRoot.IsZero() &&
		h.L1ToL2MessageTreeRoot.IsZero() && h.PublicDataTreeRoot.IsZero()
}

func (h *Header) Serialize() []felt.Felt {
	out := []felt.Felt{
		h.ArchiveRoot,
		h.NoteHashTreeRoot,
		h.NullifierTreeRoot,
		h.ContractTreeRoot,
		h.L1ToL2MessageTreeRoot,
		h.PublicDataTreeRoot,
	}
	return append(out, h.GlobalVariables.Serialize()...)
}

func DeserializeHeader(r *FieldReader) Header {
	return Header{
		ArchiveRoot:           r.ReadField(),
		NoteHashTreeRoot:      r.ReadField(),
		NullifierTreeRoot:     r.ReadField(),
		ContractTreeRoot:      r.ReadField(),
		L1ToL2MessageTreeRoot: r.ReadField(),
		PublicDataTreeRoot:    r.ReadField(),
		GlobalVariables:       DeserializeGlobalVariables(r),
	}
}

// Hash is the archive-tree leaf for this header.
func (h *Header) Hash() *felt.Felt {
	return crypto.HashWithIndex(crypto.GeneratorBlockHeader, feltPtrs(h.Serialize())...)
}

func (h *Header) Equal(other *Header) bool {
	return h.ArchiveRoot.Equal(&other.ArchiveRoot) &&
		h.NoteHashTreeRoot.Equal(&other.NoteHashTreeRoot) &&
		h.NullifierTreeRoot.Equal(&other.NullifierTreeRoot) &&
		h.ContractTreeRoot.Equal(&other.ContractTreeRoot) &&
		h.L1ToL2MessageTreeRoot.Equal(&other.L1ToL2MessageTreeRoot) &&
		h.PublicDataTreeRoot.Equal(&other.PublicDataTreeRoot)
}
