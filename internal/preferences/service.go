// Package preferences keeps the small amount of state a reader carries
// between sessions: bookmarks, recent searches, a rating and the last
// facet and sort key used. Values are stored as strings in the preference
// repository; lists are JSON encoded.
package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"newsdesk/internal/domain"
	"newsdesk/internal/repository"
)

type Service struct {
	repo repository.PreferenceRepository
}

func NewService(repo repository.PreferenceRepository) *Service {
	return &Service{repo: repo}
}

// get a raw value, "" when unset
func (s *Service) get(ctx context.Context, key string) (string, error) {
	pref, err := s.repo.Get(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return pref.Value, nil
}

func (s *Service) getList(ctx context.Context, key string) ([]string, error) {
	raw, err := s.get(ctx, key)
	if err != nil || raw == "" {
		return []string{}, err
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return list, nil
}

func (s *Service) setList(ctx context.Context, key string, list []string) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.repo.Set(ctx, key, string(data))
}

func (s *Service) Bookmarks(ctx context.Context) ([]string, error) {
	return s.getList(ctx, domain.PrefBookmarks)
}

func (s *Service) IsBookmarked(ctx context.Context, id string) (bool, error) {
	list, err := s.Bookmarks(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(list, id), nil
}

// ToggleBookmark adds or removes id and reports whether it is now
// bookmarked.
func (s *Service) ToggleBookmark(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, &domain.ValidationError{Field: "id", Message: "bookmark id cannot be empty"}
	}

	list, err := s.Bookmarks(ctx)
	if err != nil {
		return false, err
	}

	if i := slices.Index(list, id); i >= 0 {
		list = slices.Delete(list, i, i+1)
		return false, s.setList(ctx, domain.PrefBookmarks, list)
	}

	list = append(list, id)
	return true, s.setList(ctx, domain.PrefBookmarks, list)
}

// RecentSearches are most recent first.
func (s *Service) RecentSearches(ctx context.Context) ([]string, error) {
	return s.getList(ctx, domain.PrefRecentSearches)
}

func (s *Service) RecordSearch(ctx context.Context, query string) error {
	list, err := s.RecentSearches(ctx)
	if err != nil {
		return err
	}
	return s.setList(ctx, domain.PrefRecentSearches, domain.PushRecentSearch(list, query))
}

func (s *Service) ClearSearches(ctx context.Context) error {
	return s.repo.Delete(ctx, domain.PrefRecentSearches)
}

// Rating returns 0 when the reader has not rated.
func (s *Service) Rating(ctx context.Context) (int, error) {
	raw, err := s.get(ctx, domain.PrefRating)
	if err != nil || raw == "" {
		return 0, err
	}
	r, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to decode rating: %w", err)
	}
	return r, nil
}

func (s *Service) SetRating(ctx context.Context, rating int) error {
	if err := domain.ValidateRating(rating); err != nil {
		return err
	}
	return s.repo.Set(ctx, domain.PrefRating, strconv.Itoa(rating))
}

// LastView returns the facet and sort key saved by SaveView, or the
// defaults.
func (s *Service) LastView(ctx context.Context) (domain.Facet, domain.SortKey, error) {
	facet, err := s.get(ctx, domain.PrefLastFacet)
	if err != nil {
		return domain.FacetAll, domain.DefaultSortKey, err
	}
	sortKey, err := s.get(ctx, domain.PrefLastSort)
	if err != nil {
		return domain.FacetAll, domain.DefaultSortKey, err
	}

	key := domain.SortKey(sortKey)
	if !key.IsValid() {
		key = domain.DefaultSortKey
	}
	return domain.NormalizeFacet(facet), key, nil
}

func (s *Service) SaveView(ctx context.Context, facet domain.Facet, key domain.SortKey) error {
	if err := s.repo.Set(ctx, domain.PrefLastFacet, string(facet)); err != nil {
		return err
	}
	return s.repo.Set(ctx, domain.PrefLastSort, string(key))
}
