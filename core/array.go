package core

import (
	"errors"
	"fmt"

	"github.com/veilnetwork/veil/core/felt"
)

// ErrInvalidArray is returned for any bounded array whose non-empty entries
// are not packed at the front with a zero-padded tail.
var ErrInvalidArray = errors.New("invalid array")

// Emptiable is implemented by every bounded-array element type. The zero
// value is the padding sentinel.
type Emptiable interface {
	IsEmpty() bool
}

// ValidateArray checks the packing invariant: non-empty entries contiguous
// from index 0, every entry after the first empty one also empty.
func ValidateArray[T Emptiable](arr []T) error {
	inTail := false
	for i := range arr {
		if arr[i].IsEmpty() {
			inTail = true
		} else if inTail {
			return ErrInvalidArray
		}
	}
	return nil
}

// ArrayLength returns the number of leading non-empty entries. Only
// meaningful on arrays that satisfy ValidateArray.
func ArrayLength[T Emptiable](arr []T) int {
	for i := range arr {
		if arr[i].IsEmpty() {
			return i
		}
	}
	return len(arr)
}

// PushArray appends item at the first empty slot, failing when the array is
// at capacity. Capacity bounds are protocol constants; overflowing one means
// the transaction is too complex to prove and there is no graceful path.
func PushArray[T Emptiable](arr []T, item T) error {
	for i := range arr {
		if arr[i].IsEmpty() {
			arr[i] = item
			return nil
		}
	}
	return fmt.Errorf("array capacity %d exceeded", len(arr))
}

// Felt arrays use zero as their padding sentinel directly.

func ValidateFeltArray(arr []felt.Felt) error {
	inTail := false
	for i := range arr {
		if arr[i].IsZero() {
			inTail = true
		} else if inTail {
			return ErrInvalidArray
		}
	}
	return nil
}

func FeltArrayLength(arr []felt.Felt) int {
	for i := range arr {
		if arr[i].IsZero() {
			return i
		}
	}
	return len(arr)
}

func PushFeltArray(arr []felt.Felt, item felt.Felt) error {
	for i := range arr {
		if arr[i].IsZero() {
			arr[i] = item
			return nil
		}
	}
	return fmt.Errorf("array capacity %d exceeded", len(arr))
}
