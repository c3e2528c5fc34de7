package dkg

import (
	"github.com/vihu/go-tc/bivar"
	"github.com/vihu/go-tc/common"
	"github.com/vihu/go-tc/curve"
	"github.com/vihu/go-tc/internal/log"
	"github.com/vihu/go-tc/key"
	"github.com/vihu/go-tc/poly"
	"github.com/vihu/go-tc/zeroize"
)

// DealerID identifies one of the f+1 dealers participating in a DKG run.
type DealerID int

// dealerState tracks one node's view of a single dealer's contribution:
// the commitment it published, the row this node privately received, and
// which peers have confirmed that row against the commitment.
type dealerState struct {
	commitment *bivar.BivarCommitment
	row        *poly.Poly
	confirmed  map[int64]struct{}
	accepted   bool
}

// Node is a single participant in the DKG. It is indexed 1..=n, and the
// node number is used directly as a bivariate coordinate.
type Node struct {
	index            int64
	n                int64
	confirmThreshold int // 2f+1
	dealers          map[DealerID]*dealerState
	secretShare      curve.Scalar
	haveShare        bool
	log              log.Logger
}

// NewNode constructs a node with the given 1-based index among n peers.
// confirmThreshold is the number of peer confirmations (2f+1) required to
// accept a dealer. Logs at Debug on accepted dealers and at Warn on
// verification failures, using the package default logger.
func NewNode(index, n int64, confirmThreshold int) *Node {
	return &Node{
		index:            index,
		n:                n,
		confirmThreshold: confirmThreshold,
		dealers:          make(map[DealerID]*dealerState),
		secretShare:      curve.ZeroScalar(),
		log:              log.DefaultLogger().With("node", index),
	}
}

func (nd *Node) state(id DealerID) *dealerState {
	st, ok := nd.dealers[id]
	if !ok {
		st = &dealerState{confirmed: make(map[int64]struct{})}
		nd.dealers[id] = st
	}
	return st
}

// ReceiveCommitment records dealer id's published commitment C_D.
func (nd *Node) ReceiveCommitment(id DealerID, commitment *bivar.BivarCommitment) {
	nd.state(id).commitment = commitment
}

// ReceiveRow accepts the private row r_{D,m}(y) sent by dealer id and
// checks it against the dealer's commitment: r_{D,m}.commitment() ==
// C_D.row(m). A mismatch is the dealer misbehaving, surfaced as an error
// rather than silently ignored.
func (nd *Node) ReceiveRow(id DealerID, row *poly.Poly) error {
	st := nd.state(id)
	if st.commitment == nil {
		return common.ErrEmptyInput
	}
	want := st.commitment.Row(scalarOf(nd.index))
	got := row.Commitment()
	if got.Degree() != want.Degree() {
		nd.log.Warn("dealer", id, "reason", "row degree mismatch")
		return common.ErrInterpolationInvalid
	}
	for i, p := range got.Points() {
		if !p.Equal(want.Points()[i]) {
			nd.log.Warn("dealer", id, "reason", "row commitment mismatch")
			return common.ErrInterpolationInvalid
		}
	}
	st.row = row
	return nil
}

// SendTo computes the scalar r_{D,m}(s) this node sends to peer s, after
// it has received and verified dealer id's row.
func (nd *Node) SendTo(id DealerID, peer int64) (curve.Scalar, error) {
	st, ok := nd.dealers[id]
	if !ok || st.row == nil {
		return curve.Scalar{}, common.ErrEmptyInput
	}
	return st.row.Evaluate(scalarOf(peer)), nil
}

// ReceiveShare is node nd (acting as peer s) receiving scalar v from node
// m for dealer id. It checks v*g1 == C_D.evaluate(m, s) and, if the check
// passes, records m as confirming this dealer. Once confirmThreshold
// distinct peers have confirmed, the dealer becomes accepted and this
// node's row(0) for that dealer is folded into its running secret share.
func (nd *Node) ReceiveShare(id DealerID, from int64, v curve.Scalar) error {
	st := nd.state(id)
	if st.commitment == nil {
		return common.ErrEmptyInput
	}
	want := st.commitment.Evaluate(scalarOf(from), scalarOf(nd.index))
	got := curve.G1Generator().Mul(v)
	if !got.Equal(want) {
		nd.log.Warn("dealer", id, "from", from, "reason", "point-group mismatch")
		return common.ErrInterpolationInvalid
	}
	st.confirmed[from] = struct{}{}
	if !st.accepted && len(st.confirmed) >= nd.confirmThreshold {
		nd.acceptDealer(id, st)
	}
	return nil
}

func (nd *Node) acceptDealer(id DealerID, st *dealerState) {
	st.accepted = true
	if st.row == nil {
		return
	}
	contribution := st.row.Evaluate(curve.ZeroScalar())
	nd.secretShare = nd.secretShare.Add(contribution)
	contribution.Zeroize()
	nd.haveShare = true
	nd.log.Debug("dealer", id, "reason", "accepted")
}

// AcceptedDealers returns the set of dealers this node has accepted.
func (nd *Node) AcceptedDealers() []DealerID {
	out := make([]DealerID, 0, len(nd.dealers))
	for id, st := range nd.dealers {
		if st.accepted {
			out = append(out, id)
		}
	}
	return out
}

// SecretKeyShare returns the node's accumulated share, the sum of row(0)
// across every accepted dealer, wrapped as a key.SecretKey.
func (nd *Node) SecretKeyShare() key.SecretKey {
	return key.SecretKeyFromScalar(nd.secretShare)
}

// Zeroize overwrites this node's accumulated secret share.
func (nd *Node) Zeroize() {
	zeroize.Scalar(&nd.secretShare)
}

// MasterPublicKey sums C_D.row(0).C0 across the given commitments, the
// joint public key produced once all dealers have published.
func MasterPublicKey(commitments []*bivar.BivarCommitment) curve.G1 {
	sum := curve.IdentityG1()
	for _, c := range commitments {
		sum = sum.Add(c.Row(curve.ZeroScalar()).PublicKey())
	}
	return sum
}
