// Package watchlist provides the static global watchlist of sovereign
// entities consumed by the scoring engine. The table is fixed-size and
// read-only; every accessor returns copies so callers cannot mutate the
// underlying rows.
package watchlist

import (
	"fmt"

	"github.com/apexintel/apex/internal/domain"
)

// Provider serves the sovereign watchlist. It is injected into every
// consumer - there is no package-level accessor - so tests can substitute
// small custom tables.
type Provider struct {
	rows []domain.Sovereign
}

// NewProvider creates a provider backed by the default 25-sovereign
// global watchlist.
func NewProvider() *Provider {
	return &Provider{rows: defaultWatchlist()}
}

// NewProviderWithData creates a provider backed by a custom table.
// Used by tests and simulations that need a controlled population.
func NewProviderWithData(rows []domain.Sovereign) *Provider {
	copied := make([]domain.Sovereign, len(rows))
	copy(copied, rows)
	return &Provider{rows: copied}
}

// All returns every sovereign in watchlist order.
func (p *Provider) All() []domain.Sovereign {
	out := make([]domain.Sovereign, len(p.rows))
	copy(out, p.rows)
	return out
}

// Len returns the number of sovereigns in the watchlist.
func (p *Provider) Len() int {
	return len(p.rows)
}

// ByCode retrieves a sovereign by its ISO code. Returns
// domain.ErrSovereignNotFound when the code is absent.
func (p *Provider) ByCode(code string) (domain.Sovereign, error) {
	for _, s := range p.rows {
		if s.Code == code {
			return s, nil
		}
	}
	return domain.Sovereign{}, fmt.Errorf("code %s: %w", code, domain.ErrSovereignNotFound)
}

// ByCategory returns all sovereigns in the given category.
func (p *Provider) ByCategory(category domain.Category) []domain.Sovereign {
	var out []domain.Sovereign
	for _, s := range p.rows {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

// Codes returns all sovereign codes in watchlist order.
func (p *Provider) Codes() []string {
	out := make([]string, 0, len(p.rows))
	for _, s := range p.rows {
		out = append(out, s.Code)
	}
	return out
}

// Freshness returns the formatted vintage of the dataset.
func (p *Provider) Freshness() string {
	return dataLastUpdated.Format("2006-01-02 15:04 UTC")
}
