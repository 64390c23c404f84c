package usecase

import (
	"context"
	"fmt"

	"WebHub/internal/domain/models"
	domsvc "WebHub/internal/domain/service"
)

// DefaultRegion is the region hint for symbol search and the fallback when the
// best match carries none.
const DefaultRegion = "US"

// SymbolResolver maps free text to a ticker and market region.
type SymbolResolver struct {
	search domsvc.SymbolSearcher
	region string
}

func NewSymbolResolver(search domsvc.SymbolSearcher, region string) *SymbolResolver {
	if region == "" {
		region = DefaultRegion
	}
	return &SymbolResolver{search: search, region: region}
}

// Resolve returns the first search candidate. First match wins; there is no ranking.
// An empty result (or empty query) is models.ErrSymbolNotFound; search failures are
// returned wrapped so callers can tell them apart.
func (r *SymbolResolver) Resolve(ctx context.Context, query string) (models.ResolvedSymbol, error) {
	if query == "" {
		return models.ResolvedSymbol{}, models.ErrSymbolNotFound
	}

	matches, err := r.search.SearchSymbols(ctx, query, r.region)
	if err != nil {
		return models.ResolvedSymbol{}, fmt.Errorf("resolve %q: %w", query, err)
	}
	if len(matches) == 0 {
		return models.ResolvedSymbol{}, models.ErrSymbolNotFound
	}

	best := matches[0]
	if best.Region == "" {
		best.Region = DefaultRegion
	}
	return best, nil
}
