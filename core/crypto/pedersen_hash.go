package crypto

import (
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
	pedersenhash "github.com/consensys/gnark-crypto/ecc/stark-curve/pedersen-hash"
	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/veilnetwork/veil/core/felt"
)

type lruKey struct {
	x felt.Felt
	y felt.Felt
}

var lruPedersen, _ = lru.New(1000000)

var pedersenCache = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "veil_pedersen_cache",
	Help: "pedersen pair cache hits/misses",
}, []string{"hit"})

// Pedersen hashes a pair of field elements.
func Pedersen(a, b *felt.Felt) *felt.Felt {
	key := lruKey{x: *a, y: *b}

	if res, ok := lruPedersen.Get(key); ok {
		pedersenCache.WithLabelValues("true").Inc()
		return res.(*felt.Felt)
	}

	hash := pedersenhash.Pedersen(a.Impl(), b.Impl())
	result := felt.New(&hash)
	lruPedersen.Add(key, result)
	pedersenCache.WithLabelValues("false").Inc()
	return result
}

// PedersenArray hashes a variable-length array of field elements. The
// element count is folded into the digest so arrays of differing lengths
// never collide.
func PedersenArray(elems ...*felt.Felt) *felt.Felt {
	var digest PedersenDigest
	return digest.Update(elems...).Finish()
}

var _ Digest = (*PedersenDigest)(nil)

type PedersenDigest struct {
	digest fp.Element
	count  uint64
}

func (d *PedersenDigest) Update(elems ...*felt.Felt) Digest {
	for idx := range elems {
		d.digest = pedersenhash.Pedersen(&d.digest, elems[idx].Impl())
	}
	d.count += uint64(len(elems))
	return d
}

func (d *PedersenDigest) Finish() *felt.Felt {
	d.digest = pedersenhash.Pedersen(&d.digest, new(fp.Element).SetUint64(d.count))
	return felt.New(&d.digest)
}
