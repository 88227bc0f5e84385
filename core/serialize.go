package core

import (
	"errors"
	"fmt"

	"github.com/veilnetwork/veil/core/felt"
)

// Every data-model type has two stable encodings: a fixed-width field
// vector (the in-circuit representation, hashed and consumed by downstream
// circuits) and the byte buffer obtained by concatenating each field's
// canonical 32-byte form. Both must stay bit-for-bit stable across versions.

// FieldsToBytes concatenates the canonical 32-byte encoding of each field.
func FieldsToBytes(fields []felt.Felt) []byte {
	buf := make([]byte, 0, len(fields)*felt.Bytes)
	for i := range fields {
		b := fields[i].Bytes()
		buf = append(buf, b[:]...)
	}
	return buf
}

// FieldsFromBytes is the inverse of FieldsToBytes.
func FieldsFromBytes(buf []byte) ([]felt.Felt, error) {
	if len(buf)%felt.Bytes != 0 {
		return nil, fmt.Errorf("buffer length %d is not a multiple of %d", len(buf), felt.Bytes)
	}
	fields := make([]felt.Felt, len(buf)/felt.Bytes)
	for i := range fields {
		fields[i].SetBytes(buf[i*felt.Bytes : (i+1)*felt.Bytes])
	}
	return fields, nil
}

var ErrShortFieldVector = errors.New("field vector too short")

// FieldReader consumes a field vector front to back during deserialization.
type FieldReader struct {
	fields []felt.Felt
	pos    int
	err    error
}

func NewFieldReader(fields []felt.Felt) *FieldReader {
	return &FieldReader{fields: fields}
}

// Err reports the first under-read, if any. Checked once after a full
// deserialization rather than per field.
func (r *FieldReader) Err() error {
	return r.err
}

func (r *FieldReader) Remaining() int {
	return len(r.fields) - r.pos
}

func (r *FieldReader) ReadField() felt.Felt {
	if r.pos >= len(r.fields) {
		r.err = ErrShortFieldVector
		return felt.Zero
	}
	f := r.fields[r.pos]
	r.pos++
	return f
}

func (r *FieldReader) ReadFields(n int) []felt.Felt {
	out := make([]felt.Felt, n)
	for i := range out {
		out[i] = r.ReadField()
	}
	return out
}

func (r *FieldReader) ReadBool() bool {
	f := r.ReadField()
	return !f.IsZero()
}

func (r *FieldReader) ReadUint32() uint32 {
	f := r.ReadField()
	return uint32(f.Uint64())
}

func boolToFelt(b bool) felt.Felt {
	if b {
		return felt.FromUint64(1)
	}
	return felt.Zero
}

func uint32ToFelt(v uint32) felt.Felt {
	return felt.FromUint64(uint64(v))
}

// feltPtrs adapts a value slice to the pointer-based crypto API.
func feltPtrs(fields []felt.Felt) []*felt.Felt {
	out := make([]*felt.Felt, len(fields))
	for i := range fields {
		out[i] = &fields[i]
	}
	return out
}
