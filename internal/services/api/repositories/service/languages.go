package service

import (
	"context"
	"math"
	"sort"

	"gitstats/internal/core/palette"
	"gitstats/internal/services/api/repositories/domain"

	"github.com/samber/lo"
)

// Languages computes the byte-weighted language breakdown for a repo
func (s *Svc) Languages(ctx context.Context, bearer, owner, repo string) ([]domain.LanguageStats, error) {
	langs, err := s.forge.Languages(ctx, bearer, owner, repo)
	if err != nil {
		return nil, loadErr(err, "languages")
	}

	total := lo.Sum(lo.Values(langs))
	if total == 0 {
		return []domain.LanguageStats{}, nil
	}

	entries := lo.Entries(langs)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Key < entries[j].Key
	})

	out := make([]domain.LanguageStats, 0, len(entries))
	for _, e := range entries {
		out = append(out, domain.LanguageStats{
			Language: e.Key,
			Bytes:    e.Value,
			Percent:  math.Round(float64(e.Value)*1000.0/float64(total)) / 10.0,
			Color:    palette.Color(e.Key),
		})
	}
	return out, nil
}
