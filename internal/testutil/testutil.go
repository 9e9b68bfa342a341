// Package testutil provides test utilities and helpers.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"faqsite/internal/faq"
)

// Records returns a small FAQ list covering every bucket but one, plus a
// record with an unknown category.
func Records() []faq.Record {
	return []faq.Record{
		{ID: 1, Category: "対応概要", Question: "対応範囲 を教えてください", Answer: "**三点**に対応します。", Tags: []string{"対応範囲"}, UpdatedAt: "2024-03-01"},
		{ID: 2, Category: "移行計画", Question: "いつ 移行?", Answer: "4月です", UpdatedAt: "2024-03-05"},
		{ID: 4, Category: "帳票・出力", Question: "予算書 は出力できますか?", Answer: "PDF と Excel で出力できます。", Tags: []string{"予算書"}, UpdatedAt: "2024-03-12"},
		{ID: 5, Category: "費用・契約", Question: "料金 はいくらですか?", Answer: "月額です", Tags: []string{"料金"}, UpdatedAt: "2024-03-15"},
		{ID: 6, Category: "不明", Question: "分類されていない質問", Answer: "その他"},
	}
}

// WriteFAQFile writes data to faq.json in a fresh temp dir, sets its
// modification time and returns the path.
func WriteFAQFile(t *testing.T, data string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faq.json")
	RewriteFAQFile(t, path, data, mod)
	return path
}

// RewriteFAQFile replaces the content and modification time of path.
func RewriteFAQFile(t *testing.T, path, data string, mod time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write FAQ file: %v", err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatalf("failed to set FAQ file time: %v", err)
	}
}
