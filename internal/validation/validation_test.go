package validation

import (
	"strings"
	"testing"

	"faqsite/internal/faq"
)

func TestNormalizeKeyword(t *testing.T) {
	long := strings.Repeat("予", MaxKeywordLength+10)

	tests := []struct {
		name    string
		keyword string
		want    string
	}{
		{"empty", "", ""},
		{"spaces only", "   ", ""},
		{"trims", "  料金  ", "料金"},
		{"keeps inner spaces", "暫定版 予算書", "暫定版 予算書"},
		{"keeps case", "Budget", "Budget"},
		{"truncates by rune", long, strings.Repeat("予", MaxKeywordLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKeyword(tt.keyword); got != tt.want {
				t.Errorf("NormalizeKeyword(%q) = %q, want %q", tt.keyword, got, tt.want)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  faq.Bucket
		valid bool
	}{
		{"empty", "", faq.All, true},
		{"all", "all", faq.All, true},
		{"japanese all", "すべて", faq.All, true},
		{"bucket", "科目・マスタ", faq.BucketAccounts, true},
		{"unknown", "不明", "", false},
		{"partial", "科目", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, valid := ValidateCategory(tt.raw)
			if valid != tt.valid || got != tt.want {
				t.Errorf("ValidateCategory(%q) = (%q, %v), want (%q, %v)", tt.raw, got, valid, tt.want, tt.valid)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"empty uses default", "", 5},
		{"garbage uses default", "five", 5},
		{"explicit", "3", 3},
		{"zero", "0", 0},
		{"negative clamps to zero", "-2", 0},
		{"above max clamps", "1000", 100},
		{"padded", " 7 ", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLimit(tt.raw, 5, 100); got != tt.want {
				t.Errorf("ParseLimit(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw   string
		want  int
		valid bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, valid := ParseID(tt.raw)
		if got != tt.want || valid != tt.valid {
			t.Errorf("ParseID(%q) = (%d, %v), want (%d, %v)", tt.raw, got, valid, tt.want, tt.valid)
		}
	}
}
