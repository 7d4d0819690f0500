package domain

import (
	"time"
)

// StoreStats summarizes the item store.
type StoreStats struct {
	TotalItems int          `json:"total_items" yaml:"total_items"`
	ByKind     map[Kind]int `json:"by_kind" yaml:"by_kind"`
	Featured   int          `json:"featured" yaml:"featured"`

	PublishedLastDay  int `json:"published_last_day" yaml:"published_last_day"`
	PublishedLastWeek int `json:"published_last_week" yaml:"published_last_week"`

	TotalPopularity int64 `json:"total_popularity" yaml:"total_popularity"`

	Oldest *time.Time `json:"oldest,omitempty" yaml:"oldest,omitempty"`
	Newest *time.Time `json:"newest,omitempty" yaml:"newest,omitempty"`

	TopCategories []CategoryCount `json:"top_categories,omitempty" yaml:"top_categories,omitempty"`

	CalculatedAt time.Time `json:"calculated_at" yaml:"calculated_at"`
}

type CategoryCount struct {
	Category   string `db:"category" json:"category" yaml:"category"`
	Count      int    `db:"count" json:"count" yaml:"count"`
	Popularity int64  `db:"popularity" json:"popularity" yaml:"popularity"`
}

// KindShare is the percentage of items of kind.
func (s *StoreStats) KindShare(kind Kind) float64 {
	if s.TotalItems == 0 {
		return 0.0
	}
	return float64(s.ByKind[kind]) / float64(s.TotalItems) * 100.0
}

// AveragePopularity is views per item.
func (s *StoreStats) AveragePopularity() float64 {
	if s.TotalItems == 0 {
		return 0.0
	}
	return float64(s.TotalPopularity) / float64(s.TotalItems)
}

func (s *StoreStats) HasItems() bool {
	return s.TotalItems > 0
}

func NewStoreStats(now time.Time) *StoreStats {
	byKind := make(map[Kind]int, len(Kinds()))
	for _, k := range Kinds() {
		byKind[k] = 0
	}
	return &StoreStats{
		ByKind:        byKind,
		TopCategories: make([]CategoryCount, 0),
		CalculatedAt:  now,
	}
}
