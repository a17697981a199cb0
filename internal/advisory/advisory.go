// Package advisory provides the outbreak advisory source consulted by the
// hourly alert sweep.
package advisory

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Advisory is a health advisory for an area.
type Advisory struct {
	Area    string `json:"area"`
	Message string `json:"message"`
}

// Source fetches the current advisory for an area. Failures are caught
// per-user in the sweep; the next scheduled run is the retry mechanism.
type Source interface {
	Fetch(ctx context.Context, area string) (Advisory, error)
}

// HTTPSource pulls advisories from a government data endpoint.
type HTTPSource struct {
	client  *resty.Client
	baseURL string
}

// NewHTTPSource constructs a source against baseURL. The endpoint is
// expected to answer GET {baseURL}?area=<area> with an Advisory JSON body.
func NewHTTPSource(baseURL string) *HTTPSource {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(0)
	return &HTTPSource{client: client, baseURL: baseURL}
}

// Fetch requests the advisory for area.
func (s *HTTPSource) Fetch(ctx context.Context, area string) (Advisory, error) {
	var adv Advisory
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("area", area).
		SetResult(&adv).
		Get(s.baseURL)
	if err != nil {
		return Advisory{}, fmt.Errorf("fetch advisory for %q: %w", area, err)
	}
	if resp.IsError() {
		return Advisory{}, fmt.Errorf("fetch advisory for %q: status %s", area, resp.Status())
	}
	if adv.Area == "" {
		adv.Area = area
	}
	return adv, nil
}

// StaticSource rotates through a fixed set of advisories by hour. It is
// used when no outbreak-data endpoint is configured.
type StaticSource struct {
	now func() time.Time
}

// NewStaticSource constructs the rotating fallback source.
func NewStaticSource() *StaticSource {
	return &StaticSource{now: time.Now}
}

var staticAdvisories = []string{
	"Increase mosquito control measures due to rising vector cases.",
	"Boil water before drinking to prevent water-borne illnesses.",
	"Flu-like symptoms reported; consider masks in crowded places.",
}

// Fetch returns the advisory for the current hour.
func (s *StaticSource) Fetch(_ context.Context, area string) (Advisory, error) {
	idx := int(s.now().Unix()/3600) % len(staticAdvisories)
	return Advisory{Area: area, Message: staticAdvisories[idx]}, nil
}
