package format

import (
	"testing"
	"time"

	"github.com/flttx/medi-manage-platform-sub000/config"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		region string
		want   string
	}{
		{"cn grouping", 12000, "cn", "¥12,000"},
		{"us grouping", 12000, "us", "$12,000"},
		{"small amount", 500, "cn", "¥500"},
		{"unknown region falls back to cn", 3500, "fr", "¥3,500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount, tt.region); got != tt.want {
				t.Errorf("Currency(%d, %q) = %q, want %q", tt.amount, tt.region, got, tt.want)
			}
		})
	}
}

func TestRelativeDay(t *testing.T) {
	now := time.Date(2026, 2, 4, 10, 30, 0, 0, time.UTC)
	tests := []struct {
		name   string
		t      time.Time
		region string
		want   string
	}{
		{"today cn", now, "cn", "今天"},
		{"today us late evening", time.Date(2026, 2, 4, 23, 59, 0, 0, time.UTC), "us", "Today"},
		{"tomorrow cn", now.AddDate(0, 0, 1), "cn", "明天"},
		{"tomorrow us", now.AddDate(0, 0, 1), "us", "Tomorrow"},
		{"next week cn", now.AddDate(0, 0, 7), "cn", "2026.02.11"},
		{"next week us", now.AddDate(0, 0, 7), "us", "Feb 11, 2026"},
		{"yesterday falls back", now.AddDate(0, 0, -1), "cn", "2026.02.03"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeDay(tt.t, now, tt.region); got != tt.want {
				t.Errorf("RelativeDay = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegion(t *testing.T) {
	if got := Region(nil); got != "cn" {
		t.Errorf("Region(nil) = %q, want cn", got)
	}
	cfg := &config.Config{}
	if got := Region(cfg); got != "cn" {
		t.Errorf("Region(empty) = %q, want cn", got)
	}
	cfg.Region.Code = "us"
	if got := Region(cfg); got != "us" {
		t.Errorf("Region = %q, want us", got)
	}
}
