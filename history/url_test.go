package history_test

import (
	"testing"
	"time"

	"github.com/fwojciec/wxhist/history"
	"github.com/stretchr/testify/assert"
)

func TestDayURL(t *testing.T) {
	t.Parallel()

	t.Run("builds zero padded daily history path", func(t *testing.T) {
		t.Parallel()

		day := time.Date(2015, time.March, 4, 0, 0, 0, 0, time.UTC)

		got := history.DayURL(history.DefaultBaseURL, "EFHK", day)

		assert.Equal(t, "https://www.wunderground.com/history/airport/EFHK/2015/03/04/DailyHistory.html", got)
	})

	t.Run("tolerates trailing slash on base URL", func(t *testing.T) {
		t.Parallel()

		day := time.Date(2015, time.December, 31, 0, 0, 0, 0, time.UTC)

		got := history.DayURL("http://127.0.0.1:8080/", "KJFK", day)

		assert.Equal(t, "http://127.0.0.1:8080/history/airport/KJFK/2015/12/31/DailyHistory.html", got)
	})
}
