package domain

// Belief tracks a hypothesis with epistemic state: the prior confidence it
// started with, the strength of the last observed evidence, and the posterior
// derived from the two. The posterior is never set directly; it is recomputed
// by the belief service on every evidence update.
type Belief struct {
	Hypothesis string  `json:"hypothesis"`
	Prior      float64 `json:"prior"`
	Likelihood float64 `json:"likelihood"`
	Posterior  float64 `json:"posterior"`
}

// KeyedBelief pairs a belief with its store key for listings.
type KeyedBelief struct {
	Key string `json:"key"`
	Belief
}
