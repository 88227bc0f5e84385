package core

import "github.com/veilnetwork/veil/core/felt"

// SideEffect is a single emitted note hash or read request, tagged with the
// transaction-wide counter that fixes its position in the global effect
// order. A zero value is the array padding sentinel; legitimate note hashes
// are never zero, which is asserted at creation time.
type SideEffect struct {
	Value   felt.Felt
	Counter uint32
}

func EmptySideEffect() SideEffect {
	return SideEffect{}
}

func (s SideEffect) IsEmpty() bool {
	return s.Value.IsZero()
}

func (s SideEffect) Serialize() []felt.Felt {
	return []felt.Felt{s.Value, uint32ToFelt(s.Counter)}
}

func DeserializeSideEffect(r *FieldReader) SideEffect {
	return SideEffect{
		Value:   r.ReadField(),
		Counter: r.ReadUint32(),
	}
}

// SideEffectLinkedToNoteHash is a nullifier. NoteHash back-references the
// commitment destroyed by this nullifier when that commitment was created
// within the same transaction; zero means the nullified note lives in the
// tree already (a persistent nullifier).
type SideEffectLinkedToNoteHash struct {
	Value    felt.Felt
	NoteHash felt.Felt
	Counter  uint32
}

func EmptySideEffectLinked() SideEffectLinkedToNoteHash {
	return SideEffectLinkedToNoteHash{}
}

func (s SideEffectLinkedToNoteHash) IsEmpty() bool {
	return s.Value.IsZero()
}

func (s SideEffectLinkedToNoteHash) Serialize() []felt.Felt {
	return []felt.Felt{s.Value, s.NoteHash, uint32ToFelt(s.Counter)}
}

func DeserializeSideEffectLinked(r *FieldReader) SideEffectLinkedToNoteHash {
	return SideEffectLinkedToNoteHash{
		Value:    r.ReadField(),
		NoteHash: r.ReadField(),
		Counter:  r.ReadUint32(),
	}
}
