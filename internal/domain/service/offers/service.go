package offers

import (
	"time"

	"github.com/patrickmn/go-cache"

	"miles_watch/internal/domain/entity"
)

const (
	freshOfferTTL     = 24 * time.Hour
	freshCacheCleanup = time.Hour
)

// Service is the offer engine: extraction, ranking, fresh-offer tagging and
// report rendering. The seen-cache is the only state that survives a cycle;
// offers themselves are created fresh per cycle and discarded after
// reporting.
type Service struct {
	normalizer Normalizer
	formatter  Formatter
	seen       *cache.Cache
}

func NewService(normalizer Normalizer, formatter Formatter) *Service {
	return &Service{
		normalizer: normalizer,
		formatter:  formatter,
		seen:       cache.New(freshOfferTTL, freshCacheCleanup),
	}
}

// Extract maps one raw payload to its valid offers.
func (s *Service) Extract(payload RawPayload, cell Cell) []entity.Offer {
	return s.normalizer.Extract(payload, cell)
}

// Compose finishes a cycle report: ranks the accumulated offers, tags the
// ones not seen in recent cycles and renders the notification text.
func (s *Service) Compose(report entity.Report) entity.Report {
	report.Ranking = Rank(report.Offers)
	report.FreshKeys = s.markFresh(report.Offers)
	report.Text = s.formatter.Format(&report)

	return report
}

func (s *Service) markFresh(offers []entity.Offer) map[string]bool {
	fresh := make(map[string]bool)

	for _, offer := range offers {
		key := offer.Key()

		if _, found := s.seen.Get(key); !found {
			fresh[key] = true
		}

		s.seen.SetDefault(key, struct{}{})
	}

	return fresh
}
