package felt

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// Felt wraps the stark field element so the rest of the codebase never
// imports gnark-crypto directly.
type Felt struct {
	val fp.Element
}

const (
	Limbs = fp.Limbs // number of 64 bits words needed to represent a Element
	Bits  = fp.Bits  // number of bits needed to represent a Element
	Bytes = fp.Bytes // number of bytes needed to represent a Element

	Base10 = 10
)

// zero felt constant
var Zero = Felt{}

func New(element *fp.Element) *Felt {
	return &Felt{val: *element}
}

func FromUint64(v uint64) Felt {
	var f Felt
	f.val.SetUint64(v)
	return f
}

func FromString(s string) (Felt, error) {
	var f Felt
	if _, err := f.val.SetString(s); err != nil {
		return Felt{}, err
	}
	return f, nil
}

// MustFromString is for tests and compile-time constants only.
func MustFromString(s string) Felt {
	f, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Impl returns the underlying field element type
func (z *Felt) Impl() *fp.Element {
	return &z.val
}

func (z *Felt) Set(x *Felt) *Felt {
	z.val.Set(&x.val)
	return z
}

// SetBytes interprets e as the bytes of a big-endian unsigned integer,
// reduced mod p.
func (z *Felt) SetBytes(e []byte) *Felt {
	z.val.SetBytes(e)
	return z
}

func (z *Felt) SetUint64(v uint64) *Felt {
	z.val.SetUint64(v)
	return z
}

func (z *Felt) SetString(number string) (*Felt, error) {
	_, err := z.val.SetString(number)
	return z, err
}

func (z *Felt) SetRandom() (*Felt, error) {
	_, err := z.val.SetRandom()
	return z, err
}

func (z *Felt) String() string {
	return z.val.String()
}

func (z *Felt) Text(base int) string {
	return z.val.Text(base)
}

func (z *Felt) Equal(x *Felt) bool {
	return z.val.Equal(&x.val)
}

// Marshal returns the canonical 32-byte big-endian encoding.
func (z *Felt) Marshal() []byte {
	return z.val.Marshal()
}

func (z *Felt) Bytes() [32]byte {
	return z.val.Bytes()
}

func (z *Felt) Unmarshal(e []byte) {
	z.val.SetBytes(e)
}

func (z *Felt) IsZero() bool {
	return z.val.IsZero()
}

func (z *Felt) IsOne() bool {
	return z.val.IsOne()
}

func (z *Felt) Add(x, y *Felt) *Felt {
	z.val.Add(&x.val, &y.val)
	return z
}

func (z *Felt) Cmp(x *Felt) int {
	return z.val.Cmp(&x.val)
}

func (z *Felt) BigInt(res *big.Int) *big.Int {
	return z.val.BigInt(res)
}

func (z *Felt) IsUint64() bool {
	return z.val.IsUint64()
}

func (z *Felt) Uint64() uint64 {
	return z.val.Uint64()
}

// UnmarshalJSON accepts numbers and strings as input.
// See Element.SetString for valid prefixes (0x, 0b, ...).
func (z *Felt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > fp.Bits*3 {
		return errors.New("value too large (max = Element.Bits * 3)")
	}

	// we accept numbers and strings, remove leading and trailing quotes if any
	if len(s) > 0 && s[0] == '"' {
		s = s[1:]
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}

	vv := new(big.Int)
	if _, ok := vv.SetString(s, 0); !ok {
		if _, ok := vv.SetString(s, 16); !ok {
			return errors.New("can't parse into a big.Int: " + s)
		}
	}

	z.val.SetBigInt(vv)
	return nil
}

// MarshalJSON forwards the call to underlying field element implementation
func (z *Felt) MarshalJSON() ([]byte, error) {
	return z.val.MarshalJSON()
}

// MarshalCBOR encodes the felt as its canonical 32-byte string so that
// types holding felts can cross the cbor encoder despite the unexported
// field.
func (z Felt) MarshalCBOR() ([]byte, error) {
	b := z.val.Bytes()
	// major type 2 (byte string), length 32
	return append([]byte{0x58, 32}, b[:]...), nil
}

func (z *Felt) UnmarshalCBOR(data []byte) error {
	if len(data) != 34 || data[0] != 0x58 || data[1] != 32 {
		return errors.New("invalid cbor encoding of a felt")
	}
	z.val.SetBytes(data[2:])
	return nil
}
