package model

import (
	"github.com/bobonovski/guidedlda/matrix"
)

// SeedFloor is the smallest mass a topic keeps after seed biasing. It keeps
// every topic reachable even at seed confidence 1.
const SeedFloor = 1e-12

// sampler runs collapsed Gibbs sweeps over a state, biasing seeded terms
// toward their seed topics.
type sampler struct {
	st    *state
	alpha float64
	eta   float64
	vEta  float64 // V * eta

	seedOf []int32 // seed topic per term, -1 when unseeded
	conf   float64
	draws  *drawSource
	dist   []float64
}

func newSampler(st *state, alpha, eta float64, seedOf []int32,
	conf float64, draws *drawSource) *sampler {
	return &sampler{
		st:     st,
		alpha:  alpha,
		eta:    eta,
		vEta:   eta * float64(st.vocab),
		seedOf: seedOf,
		conf:   conf,
		draws:  draws,
		dist:   make([]float64, st.topicNum),
	}
}

// sweep resamples every token once, in token order.
func (s *sampler) sweep() {
	st := s.st
	for i := range st.ws {
		w, d, z := st.ws[i], st.ds[i], st.zs[i]

		// retract, resample with the remaining counts, commit
		st.removeToken(d, w, z)
		z = s.sampleTopic(d, w)
		st.zs[i] = z
		st.addToken(d, w, z)
	}
}

func (s *sampler) sampleTopic(d, w uint32) uint32 {
	total := conditional(s.dist, s.st.ndz.RowView(d), s.st.nzw, s.st.nz,
		w, s.alpha, s.eta, s.vEta)
	if seed := s.seedOf[w]; seed >= 0 && s.conf > 0 {
		total = applySeedBias(s.dist, int(seed), s.conf, total)
	}
	return searchCumulative(s.dist, total, s.draws.Next())
}

// conditional fills dist with the unnormalized collapsed conditional of
// term w over topics,
//
//	p(k) = (ndz[k] + alpha) * (nzw[k, w] + eta) / (nz[k] + V*eta)
//
// and returns its sum.
func conditional(dist []float64, ndz []uint32, nzw *matrix.Uint32Matrix,
	nz []uint32, w uint32, alpha, eta, vEta float64) float64 {
	total := 0.0
	for k := range dist {
		p := (float64(ndz[k]) + alpha) *
			(float64(nzw.Get(uint32(k), w)) + eta) /
			(float64(nz[k]) + vEta)
		dist[k] = p
		total += p
	}
	return total
}

// applySeedBias moves a conf share of the probability mass onto the seed
// topic: q'(k) = (1-conf) q(k) + conf [k == seed], with q = dist/total. Each
// topic keeps at least SeedFloor. It returns the new sum of dist.
func applySeedBias(dist []float64, seed int, conf, total float64) float64 {
	sum := 0.0
	for k := range dist {
		q := (1 - conf) * dist[k] / total
		if k == seed {
			q += conf
		}
		if q < SeedFloor {
			q = SeedFloor
		}
		dist[k] = q
		sum += q
	}
	return sum
}

// searchCumulative returns the first topic whose cumulative mass reaches
// u*total. Rounding can leave the last bucket short of the target, in which
// case the last topic is chosen.
func searchCumulative(dist []float64, total, u float64) uint32 {
	target := u * total
	cumsum := 0.0
	for k, p := range dist {
		cumsum += p
		if cumsum >= target {
			return uint32(k)
		}
	}
	return uint32(len(dist) - 1)
}
