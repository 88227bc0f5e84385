package crypto

import (
	"math/big"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	"github.com/veilnetwork/veil/core/felt"
)

// DerivePublicKey returns the affine coordinates of secretKey*G on the stark
// curve. Used to check that a prover supplying a master nullifier secret key
// actually controls the claimed master public key.
func DerivePublicKey(secretKey *felt.Felt) (x, y felt.Felt) {
	var scalar big.Int
	secretKey.BigInt(&scalar)

	var pub starkcurve.G1Affine
	pub.ScalarMultiplicationBase(&scalar)

	return *felt.New(&pub.X), *felt.New(&pub.Y)
}
