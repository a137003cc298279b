package service

import (
	"errors"

	"github.com/foresight-labs/foresight/internal/domain"
	"go.uber.org/zap"
)

// ErrDegenerateEvidence is returned when the Bayes normalization denominator
// evaluates to zero (prior and likelihood sit at opposite extremes), leaving
// the posterior undefined. The belief is left unchanged in that case.
var ErrDegenerateEvidence = errors.New("degenerate evidence: normalization denominator is zero")

const initialLikelihood = 1.0

type BeliefService struct {
	store  domain.BeliefStore
	logger *zap.Logger
}

func NewBeliefService(store domain.BeliefStore, logger *zap.Logger) *BeliefService {
	return &BeliefService{store: store, logger: logger}
}

// Add creates or wholly replaces the belief at key. The likelihood starts at 1
// and the posterior starts equal to the prior. The prior is stored as given:
// out-of-range values are not rejected, they propagate arithmetically.
func (s *BeliefService) Add(key, hypothesis string, prior float64) domain.Belief {
	b := domain.Belief{
		Hypothesis: hypothesis,
		Prior:      prior,
		Likelihood: initialLikelihood,
		Posterior:  prior,
	}
	s.store.Put(key, b)

	s.logger.Debug("belief added",
		zap.String("key", key),
		zap.Float64("prior", prior))

	return b
}

// Update applies new evidence to the belief at key and recomputes the
// posterior by Bayes normalization:
//
//	posterior = p*l / (p*l + (1-p)*(1-l))
//
// An unknown key is a silent no-op (found is false, err is nil). The prior is
// never touched: repeated updates re-apply evidence to the original prior
// rather than chaining posteriors.
func (s *BeliefService) Update(key string, likelihood float64) (b domain.Belief, found bool, err error) {
	b, found = s.store.Get(key)
	if !found {
		s.logger.Debug("evidence for unknown belief ignored", zap.String("key", key))
		return domain.Belief{}, false, nil
	}

	denom := b.Prior*likelihood + (1-b.Prior)*(1-likelihood)
	if denom == 0 {
		return domain.Belief{}, true, ErrDegenerateEvidence
	}

	b.Likelihood = likelihood
	b.Posterior = b.Prior * likelihood / denom
	s.store.Put(key, b)

	s.logger.Debug("belief updated",
		zap.String("key", key),
		zap.Float64("likelihood", likelihood),
		zap.Float64("posterior", b.Posterior))

	return b, true, nil
}

func (s *BeliefService) Get(key string) (domain.Belief, bool) {
	return s.store.Get(key)
}

// List returns all beliefs in insertion order.
func (s *BeliefService) List() []domain.KeyedBelief {
	return s.store.List()
}
