package history

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the site daily history pages are fetched from.
const DefaultBaseURL = "https://www.wunderground.com"

// DayURL returns the daily history page URL for an airport and day.
// Example: https://www.wunderground.com/history/airport/EFHK/2015/03/14/DailyHistory.html
func DayURL(baseURL, airport string, day time.Time) string {
	return fmt.Sprintf("%s/history/airport/%s/%s/DailyHistory.html",
		strings.TrimRight(baseURL, "/"),
		url.PathEscape(airport),
		day.Format("2006/01/02"),
	)
}

// host returns the host part of a URL, or the URL itself when it cannot be
// parsed.
func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
