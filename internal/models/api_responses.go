package models

import "faqsite/internal/faq"

// BucketGroup lists the ids of the matched records in one bucket.
type BucketGroup struct {
	Category string `json:"category"`
	IDs      []int  `json:"ids"`
}

// SearchResponse contains the result of a filtered query.
type SearchResponse struct {
	Category string        `json:"category"`
	Keyword  string        `json:"keyword"`
	Matched  int           `json:"matched"`
	Total    int           `json:"total"`
	Items    []faq.Record  `json:"items"`
	Groups   []BucketGroup `json:"groups"`
}

// BucketCount is the number of records in one bucket.
type BucketCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CountsResponse lists every bucket with its count, in display order.
type CountsResponse struct {
	Buckets []BucketCount `json:"buckets"`
	Total   int           `json:"total"`
}

// NewCountsResponse orders counts by the bucket display order.
func NewCountsResponse(counts map[faq.Bucket]int, total int) CountsResponse {
	resp := CountsResponse{
		Buckets: make([]BucketCount, 0, len(faq.Buckets)),
		Total:   total,
	}
	for _, b := range faq.Buckets {
		resp.Buckets = append(resp.Buckets, BucketCount{Category: string(b), Count: counts[b]})
	}
	return resp
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}
