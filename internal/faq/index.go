package faq

import (
	"slices"
	"strings"
	"sync/atomic"
)

// Index is an immutable view over a fixed record list. It is safe for
// concurrent use.
type Index struct {
	records []Record
	counts  map[Bucket]int
	byID    map[int]int
}

// Result is the output of a keyword/category search.
type Result struct {
	Query   Query
	Items   []Record
	Groups  map[Bucket][]Record
	Matched int
	Total   int
}

// BucketPreview is the landing preview for one bucket.
type BucketPreview struct {
	Bucket Bucket
	Count  int
	Items  []Record
}

// Landing is the default view: counts, recent records and per-bucket previews.
type Landing struct {
	Counts   map[Bucket]int
	Recent   []Record
	Previews []BucketPreview
	Total    int
}

// NewIndex builds an index over a copy of records.
func NewIndex(records []Record) *Index {
	rs := slices.Clone(records)
	if rs == nil {
		rs = []Record{}
	}
	byID := make(map[int]int, len(rs))
	for i, r := range rs {
		// first record wins when ids collide
		if _, ok := byID[r.ID]; !ok {
			byID[r.ID] = i
		}
	}
	return &Index{
		records: rs,
		counts:  CountByCategory(rs),
		byID:    byID,
	}
}

// Records returns a copy of the indexed records in input order.
func (x *Index) Records() []Record {
	return slices.Clone(x.records)
}

// Len returns the number of indexed records, including unknown categories.
func (x *Index) Len() int {
	return len(x.records)
}

// Counts returns the per-bucket counts.
func (x *Index) Counts() map[Bucket]int {
	out := make(map[Bucket]int, len(x.counts))
	for k, v := range x.counts {
		out[k] = v
	}
	return out
}

// Get returns the record with the given id.
func (x *Index) Get(id int) (Record, bool) {
	i, ok := x.byID[id]
	if !ok {
		return Record{}, false
	}
	return x.records[i], true
}

// IsLanding reports whether q selects the landing view.
func IsLanding(q Query) bool {
	return q.category() == All && strings.TrimSpace(q.Keyword) == ""
}

// Search filters and groups the indexed records.
func (x *Index) Search(q Query) Result {
	q.Category = q.category()
	items := Filter(x.records, q)
	return Result{
		Query:   q,
		Items:   items,
		Groups:  GroupByBucket(items),
		Matched: len(items),
		Total:   len(x.records),
	}
}

// TopByBucket returns at most n records of bucket b.
func (x *Index) TopByBucket(b Bucket, n int) []Record {
	return TopByBucket(x.records, b, n)
}

// MostRecent returns the n records with the highest ids.
func (x *Index) MostRecent(n int) []Record {
	return MostRecent(x.records, n)
}

// Landing builds the landing view. Buckets without records get no preview.
func (x *Index) Landing(previewN, recentN int) Landing {
	l := Landing{
		Counts: x.Counts(),
		Recent: x.MostRecent(recentN),
		Total:  len(x.records),
	}
	for _, b := range Buckets {
		items := x.TopByBucket(b, previewN)
		if len(items) == 0 {
			continue
		}
		l.Previews = append(l.Previews, BucketPreview{
			Bucket: b,
			Count:  x.counts[b],
			Items:  items,
		})
	}
	return l
}

// Store holds the current Index and lets a reloader swap it atomically.
type Store struct {
	current atomic.Pointer[Index]
}

// NewStore returns a store serving idx.
func NewStore(idx *Index) *Store {
	s := &Store{}
	s.Swap(idx)
	return s
}

// Index returns the current index. It never returns nil.
func (s *Store) Index() *Index {
	if idx := s.current.Load(); idx != nil {
		return idx
	}
	return NewIndex(nil)
}

// Swap replaces the current index.
func (s *Store) Swap(idx *Index) {
	if idx == nil {
		idx = NewIndex(nil)
	}
	s.current.Store(idx)
}
