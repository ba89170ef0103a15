// Package ledger implements the transaction query engine: a pure
// filter/sort/paginate transformation over a snapshot of store records.
package ledger

import (
	"sort"

	"finflow/internal/models"
)

// Pagination defaults and bounds. The limit cap is a deliberate hardening:
// without it a single request could pull the entire ledger.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Filter holds optional exact-match criteria, combined with logical AND.
// An empty field matches everything.
type Filter struct {
	Status   string
	Type     string
	Category string
}

// Matches reports whether the record satisfies every non-empty criterion.
func (f Filter) Matches(t models.Transaction) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	return true
}

// PageRequest selects a 1-based page of a fixed size. Non-positive values
// are coerced to the defaults rather than rejected.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Page is one shaped result page plus the pre-pagination totals.
type Page struct {
	Records    []models.Transaction
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

// Query filters, sorts and paginates the given records. It never mutates its
// input and has no side effects.
//
// Ordering is date descending with insertion sequence descending as the
// tie-break, so equal-timestamp records always come back in a deterministic
// order. TotalPages is at least 1 even for an empty result, and a page past
// the end yields an empty page, not an error.
func Query(records []models.Transaction, f Filter, p PageRequest) Page {
	p = p.normalize()

	filtered := make([]models.Transaction, 0, len(records))
	for _, t := range records {
		if f.Matches(t) {
			filtered = append(filtered, t)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if !filtered[i].Date.Equal(filtered[j].Date) {
			return filtered[i].Date.After(filtered[j].Date)
		}
		return filtered[i].Seq > filtered[j].Seq
	})

	total := len(filtered)
	totalPages := (total + p.Limit - 1) / p.Limit
	if totalPages < 1 {
		totalPages = 1
	}

	start := (p.Page - 1) * p.Limit
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}

	return Page{
		Records:    filtered[start:end],
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
}
