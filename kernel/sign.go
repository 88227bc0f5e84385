package kernel

import (
	"github.com/consensys/gnark-crypto/ecc/stark-curve/ecdsa"
	"github.com/veilnetwork/veil/core"
	"github.com/veilnetwork/veil/core/crypto"
)

// SignTxRequest signs the domain-separated payload of a transaction
// request. The signed request's hash becomes the transaction's 0th
// nullifier, so the signature binds user intent to the whole proof chain.
func SignTxRequest(privKey *ecdsa.PrivateKey, req *core.TxRequest) ([]byte, error) {
	payload := crypto.HashWithIndex(crypto.GeneratorSignaturePayload, req.Hash())
	payloadBytes := payload.Bytes()
	return privKey.Sign(payloadBytes[:], nil)
}

// VerifyTxRequestSignature checks a signature produced by SignTxRequest.
func VerifyTxRequestSignature(pubKey *ecdsa.PublicKey, req *core.TxRequest, sig []byte) (bool, error) {
	payload := crypto.HashWithIndex(crypto.GeneratorSignaturePayload, req.Hash())
	payloadBytes := payload.Bytes()
	return pubKey.Verify(sig, payloadBytes[:], nil)
}
