// Package format renders money and dates the way each regional console
// displays them. Amounts are whole currency units held as int64.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/flttx/medi-manage-platform-sub000/config"
)

var printers = map[string]*message.Printer{
	"cn": message.NewPrinter(language.SimplifiedChinese),
	"us": message.NewPrinter(language.AmericanEnglish),
}

func printer(region string) *message.Printer {
	if p, ok := printers[region]; ok {
		return p
	}
	return printers["cn"]
}

// Currency renders an amount with the region's symbol and digit grouping,
// no decimals. Region codes follow config.RegionConfig.
func Currency(amount int64, region string) string {
	symbol := "¥"
	if region == "us" {
		symbol = "$"
	}
	return symbol + printer(region).Sprintf("%d", amount)
}

// Date renders a calendar date in the console's dotted form.
func Date(t time.Time, region string) string {
	if region == "us" {
		return t.Format("Jan 2, 2006")
	}
	return t.Format("2006.01.02")
}

// RelativeDay renders today/tomorrow shorthand for the schedule board and
// falls back to Date for anything further out.
func RelativeDay(t, now time.Time, region string) string {
	day := func(x time.Time) time.Time {
		return time.Date(x.Year(), x.Month(), x.Day(), 0, 0, 0, 0, x.Location())
	}
	switch day(t).Sub(day(now)) {
	case 0:
		if region == "us" {
			return "Today"
		}
		return "今天"
	case 24 * time.Hour:
		if region == "us" {
			return "Tomorrow"
		}
		return "明天"
	default:
		return Date(t, region)
	}
}

// Region returns the configured region code with the package default
// applied, so callers can pass config straight through.
func Region(cfg *config.Config) string {
	if cfg == nil || cfg.Region.Code == "" {
		return "cn"
	}
	return cfg.Region.Code
}
