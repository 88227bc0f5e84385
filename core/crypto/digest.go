package crypto

import "github.com/veilnetwork/veil/core/felt"

type Digest interface {
	Update(...*felt.Felt) Digest
	Finish() *felt.Felt
}
