package scraper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"bobcathub/internal/ingest"
)

// Client fetches the campus club directory's paginated organization listing.
type Client struct {
	HTTP     *http.Client
	BaseURL  string
	PageSize int
}

func NewClient(baseURL string) *Client {
	return &Client{
		HTTP:     &http.Client{Timeout: 20 * time.Second},
		BaseURL:  strings.TrimRight(baseURL, "/"),
		PageSize: 50,
	}
}

type listingPage struct {
	Organizations []struct {
		Name        string `json:"name"`
		Category    string `json:"category"`
		MeetingTime string `json:"meeting_time"`
		Location    string `json:"location"`
		MemberCount string `json:"member_count"`
	} `json:"organizations"`
	HasMore bool `json:"has_more"`
}

// FetchPage returns one page of club records and whether more pages follow.
func (c *Client) FetchPage(ctx context.Context, page int) ([]ingest.ClubRecord, bool, error) {
	url := fmt.Sprintf("%s?page=%d&per_page=%d", c.BaseURL, page, c.PageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("page %d: unexpected status %d", page, resp.StatusCode)
	}

	var body listingPage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, false, err
	}

	records := make([]ingest.ClubRecord, 0, len(body.Organizations))
	for _, org := range body.Organizations {
		name := strings.TrimSpace(org.Name)
		if name == "" {
			continue
		}
		records = append(records, ingest.ClubRecord{
			Name:        name,
			Category:    strings.TrimSpace(org.Category),
			MeetingTime: strings.TrimSpace(org.MeetingTime),
			Location:    strings.TrimSpace(org.Location),
			MemberCount: strings.TrimSpace(org.MemberCount),
			Description: fmt.Sprintf("A %s organization at UC Merced.", strings.TrimSpace(org.Category)),
		})
	}
	return records, body.HasMore, nil
}

// ScrapeAll walks the listing until the directory reports no more pages, a
// page comes back empty, or the context is cancelled. Whatever was gathered
// before a stop or a page failure is returned so the caller can persist
// partial results.
func (c *Client) ScrapeAll(ctx context.Context) ([]ingest.ClubRecord, error) {
	var all []ingest.ClubRecord
	for page := 1; ; page++ {
		records, hasMore, err := c.FetchPage(ctx, page)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Printf("scrape interrupted on page %d, saving %d clubs collected so far", page, len(all))
				return all, nil
			}
			log.Printf("scrape page %d: %v", page, err)
			return all, err
		}
		if len(records) == 0 {
			log.Printf("page %d empty, ending", page)
			return all, nil
		}
		all = append(all, records...)
		log.Printf("scraped page %d (%d clubs total)", page, len(all))
		if !hasMore {
			return all, nil
		}
	}
}
