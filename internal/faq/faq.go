// Package faq implements the query engine behind the FAQ page: category
// counts, keyword matching, filtering, grouping and the landing previews.
//
// Every function here is pure. Inputs are never mutated and every input
// produces a defined result.
package faq

import (
	"cmp"
	"slices"
	"strings"
)

// Bucket is one of the fixed top-level FAQ categories.
type Bucket string

// Known buckets.
const (
	BucketOverview  Bucket = "対応概要"
	BucketMigration Bucket = "移行計画"
	BucketAccounts  Bucket = "科目・マスタ"
	BucketReports   Bucket = "帳票・出力"
	BucketPricing   Bucket = "費用・契約"
)

// All is the category filter value that selects every record.
const All Bucket = "すべて"

// Buckets lists the known buckets in display order.
var Buckets = []Bucket{
	BucketOverview,
	BucketMigration,
	BucketAccounts,
	BucketReports,
	BucketPricing,
}

// IsBucket reports whether category is one of the five known buckets.
func IsBucket(category string) bool {
	return slices.Contains(Buckets, Bucket(category))
}

// ParseCategory maps a raw category filter to a Bucket. The empty string,
// "all" and All select every record.
func ParseCategory(raw string) (Bucket, bool) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "", strings.EqualFold(raw, "all"), raw == string(All):
		return All, true
	case IsBucket(raw):
		return Bucket(raw), true
	}
	return "", false
}

// Record is a single question/answer entry.
type Record struct {
	ID        int      `json:"id"`
	Category  string   `json:"category"`
	Question  string   `json:"question"`
	Answer    string   `json:"answer"`
	Tags      []string `json:"tags"`
	UpdatedAt string   `json:"updated_at"`
}

// Query is the per-interaction filter.
type Query struct {
	Category Bucket `json:"category"`
	Keyword  string `json:"keyword"`
}

// category returns the effective filter; the zero value means All.
func (q Query) category() Bucket {
	if q.Category == "" {
		return All
	}
	return q.Category
}

// CountByCategory counts records per known bucket. All five buckets are
// present in the result, records with unknown categories are ignored.
func CountByCategory(records []Record) map[Bucket]int {
	counts := make(map[Bucket]int, len(Buckets))
	for _, b := range Buckets {
		counts[b] = 0
	}
	for _, r := range records {
		if _, ok := counts[Bucket(r.Category)]; ok {
			counts[Bucket(r.Category)]++
		}
	}
	return counts
}

// Haystack returns the lower-cased searchable text of a record.
func Haystack(r Record) string {
	parts := make([]string, 0, len(r.Tags)+3)
	parts = append(parts, r.Question, r.Answer)
	parts = append(parts, r.Tags...)
	parts = append(parts, r.Category)
	return strings.ToLower(strings.Join(parts, " "))
}

// Matches reports whether keyword is empty or a substring of the record's
// haystack. Matching is case-insensitive.
func Matches(r Record, keyword string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return true
	}
	return strings.Contains(Haystack(r), kw)
}

// Filter keeps the records that pass both the category filter and the
// keyword match, in input order.
func Filter(records []Record, q Query) []Record {
	cat := q.category()
	kw := strings.ToLower(strings.TrimSpace(q.Keyword))

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if cat != All && Bucket(r.Category) != cat {
			continue
		}
		if kw != "" && !strings.Contains(Haystack(r), kw) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// GroupByBucket splits records into the five buckets, preserving order.
// Records with unknown categories are dropped.
func GroupByBucket(records []Record) map[Bucket][]Record {
	groups := make(map[Bucket][]Record, len(Buckets))
	for _, b := range Buckets {
		groups[b] = []Record{}
	}
	for _, r := range records {
		b := Bucket(r.Category)
		if g, ok := groups[b]; ok {
			groups[b] = append(g, r)
		}
	}
	return groups
}

// TopByBucket returns at most n records of bucket b in input order.
func TopByBucket(records []Record, b Bucket, n int) []Record {
	out := []Record{}
	if n <= 0 {
		return out
	}
	for _, r := range records {
		if Bucket(r.Category) != b {
			continue
		}
		out = append(out, r)
		if len(out) == n {
			break
		}
	}
	return out
}

// MostRecent returns the first n records ordered by descending ID.
//
// IDs stand in for recency; updated_at is not parsed. This assumes IDs are
// assigned in the order records are added.
func MostRecent(records []Record, n int) []Record {
	if n <= 0 {
		return []Record{}
	}
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return cmp.Compare(b.ID, a.ID)
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	if sorted == nil {
		return []Record{}
	}
	return sorted
}
