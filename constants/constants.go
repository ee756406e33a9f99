package constants

import "time"

const (
	// RetryInterval define retry interval of the download helper
	RetryInterval = time.Second * 10
	// DatePattern define date pattern used across charts and exports
	DatePattern = "2006-01-02"
	// DefaultRange define default history window
	DefaultRange = "max"
	// UserAgent define user agent sent to the data provider
	UserAgent = "Mozilla/5.0"
	// YahooReferer define referer sent to the data provider
	YahooReferer = "https://finance.yahoo.com/"
	// HTMLContentType define dashboard artifact content type
	HTMLContentType = "text/html; charset=utf-8"
)

// Ranges define valid history windows accepted by the data provider
var Ranges = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

// ValidRange report whether window is a recognized history window
func ValidRange(window string) bool {
	for _, r := range Ranges {
		if r == window {
			return true
		}
	}

	return false
}
