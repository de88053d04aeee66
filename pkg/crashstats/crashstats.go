package crashstats

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

var ErrNoTable = errors.New("no crash data table found on the page")

// Row is one line of the DNF table, kept as displayed on the page.
type Row struct {
	Label      string `json:"label"`
	Count      string `json:"count"`
	Percentage string `json:"percentage"`
}

type Fetcher struct {
	url    string
	client *http.Client
}

func NewFetcher(url string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (f *Fetcher) Fetch(ctx context.Context) ([]Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", f.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetching %s: unexpected status %s", f.url, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "parsing page")
	}
	return ParseTable(doc)
}

// ParseTable reads the first table of the document, skipping its header row.
// Rows with fewer than three cells are ignored.
func ParseTable(doc *goquery.Document) ([]Row, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	rows := []Row{}
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := tr.Find("td")
		if cells.Length() < 3 {
			return
		}
		rows = append(rows, Row{
			Label:      strings.TrimSpace(cells.Eq(0).Text()),
			Count:      strings.TrimSpace(cells.Eq(1).Text()),
			Percentage: strings.TrimSpace(cells.Eq(2).Text()),
		})
	})
	return rows, nil
}
