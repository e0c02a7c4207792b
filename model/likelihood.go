package model

import "math"

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}

// logLikelihood is the joint log-likelihood of words and topic assignments,
// the sum of the Dirichlet-multinomial marginals of the topic-word and the
// document-topic counts. Cells with zero counts contribute nothing and are
// skipped.
func (s *state) logLikelihood(alpha, eta float64) float64 {
	topicNum := int(s.topicNum)
	vocab := int(s.vocab)
	vEta := eta * float64(vocab)
	kAlpha := alpha * float64(topicNum)
	lgammaEta := lgamma(eta)
	lgammaAlpha := lgamma(alpha)

	// log p(w|z)
	ll := float64(topicNum) * lgamma(vEta)
	for k := 0; k < topicNum; k += 1 {
		ll -= lgamma(vEta + float64(s.nz[k]))
		for _, c := range s.nzw.RowView(uint32(k)) {
			if c > 0 {
				ll += lgamma(eta+float64(c)) - lgammaEta
			}
		}
	}

	// log p(z)
	lgammaKAlpha := lgamma(kAlpha)
	for d := uint32(0); d < s.docNum; d += 1 {
		ll += lgammaKAlpha - lgamma(kAlpha+float64(s.nd[d]))
		for _, c := range s.ndz.RowView(d) {
			if c > 0 {
				ll += lgamma(alpha+float64(c)) - lgammaAlpha
			}
		}
	}
	return ll
}
