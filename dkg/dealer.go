// Package dkg implements the verifiable-secret-sharing / distributed-key-
// generation usage protocol of component H: a Dealer samples a symmetric
// bivariate polynomial and hands out rows, a Node verifies the rows it
// receives against the dealer's commitment and accumulates its share of
// the joint secret once enough peers confirm consistency.
//
// This mirrors the shape of drand's dkg.Handler (see drand/dkg/dkg.go in
// the reference corpus) without its networking or state-machine timeout
// handling: the core library is pure compute, so callers drive message
// exchange and call into Dealer/Node as each message arrives.
package dkg

import (
	"io"

	"github.com/vihu/go-tc/bivar"
	"github.com/vihu/go-tc/curve"
	"github.com/vihu/go-tc/poly"
)

// scalarOf converts a caller-visible node number (1..=n) directly to its
// field scalar, the bivariate's second coordinate.
func scalarOf(node int64) curve.Scalar { return curve.NewScalarFromInt64(node) }

// Dealer samples a random symmetric bivariate polynomial of degree t and
// publishes its commitment, then hands out one row per node.
type Dealer struct {
	poly       *bivar.BivarPoly
	commitment *bivar.BivarCommitment
}

// NewDealer samples f_D <- BivarPoly::random(t).
func NewDealer(t int, rng io.Reader) (*Dealer, error) {
	f, err := bivar.Random(t, rng)
	if err != nil {
		return nil, err
	}
	return &Dealer{poly: f, commitment: f.Commitment()}, nil
}

// Commitment returns C_D = f_D.commitment(), published to every node.
func (d *Dealer) Commitment() *bivar.BivarCommitment {
	return d.commitment
}

// Row returns r_{D,m}(y) = f_D.row(m), sent privately to node m.
func (d *Dealer) Row(node int64) *poly.Poly {
	return d.poly.Row(scalarOf(node))
}

// Zeroize overwrites the dealer's bivariate polynomial.
func (d *Dealer) Zeroize() {
	d.poly.Zeroize()
}
