package crashes

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f1champsseason/pkg/apps"
	"f1champsseason/pkg/crashstats"
	"f1champsseason/pkg/menus"
)

type fakeFetcher struct {
	rows []crashstats.Row
	err  error
}

func (f fakeFetcher) Fetch(ctx context.Context) ([]crashstats.Row, error) {
	return f.rows, f.err
}

func TestCrashStats(t *testing.T) {
	tests := []struct {
		name    string
		fetcher fakeFetcher
		want    string
	}{
		{"table", fakeFetcher{rows: []crashstats.Row{{Label: "2021", Count: "37", Percentage: "8.5%"}}}, "8.5%"},
		{"no table", fakeFetcher{err: errors.Wrap(crashstats.ErrNoTable, "parsing")}, "No crash data table found on the page."},
		{"fetch failure", fakeFetcher{err: errors.New("connection refused")}, "Failed to scrape the F1 crash data website."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, handler := NewCrashesApp(tt.fetcher).AcceptChoice(menus.CrashStatistics)
			require.True(t, ok)
			var out bytes.Buffer
			require.NoError(t, handler(context.Background(), apps.NewPrompter(strings.NewReader(""), &out)))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}
