package remoteok

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"joblabel-engine/internal/collect/types"
	"joblabel-engine/internal/collect/util"
	"joblabel-engine/internal/domain"
)

const defaultBaseURL = "https://remoteok.com/api"

type Config struct {
	BaseURL string // overridable for tests
}

type Fetcher struct {
	cfg      Config
	hc       *http.Client
	throttle *util.Throttle
}

func New(cfg Config, throttle *util.Throttle) *Fetcher {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Fetcher{
		cfg:      cfg,
		hc:       &http.Client{Timeout: 20 * time.Second},
		throttle: throttle,
	}
}

func (f *Fetcher) Name() string { return "remoteok" }

type remoteokJob struct {
	ID          json.RawMessage `json:"id"` // string in recent payloads, number in old ones
	Company     string          `json:"company"`
	Position    string          `json:"position"`
	Description string          `json:"description"` // html
	Legal       string          `json:"legal"`       // set on the notice element only
}

func idString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// Fetch pulls the remoteok listing, the fallback lane. The API's first
// array element is a legal notice, not a job; it carries no position
// and gets skipped like any other non-posting element.
func (f *Fetcher) Fetch(ctx context.Context) (types.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.BaseURL, nil)
	if err != nil {
		return types.Result{}, fmt.Errorf("remoteok request: %w", err)
	}
	req.Header.Set("User-Agent", "JobLabel/1.0 (+local)")
	req.Header.Set("Accept", "application/json")

	if f.throttle != nil {
		if err := f.throttle.Wait(ctx, f.cfg.BaseURL); err != nil {
			return types.Result{}, err
		}
	}

	res, err := f.hc.Do(req)
	if err != nil {
		return types.Result{}, fmt.Errorf("remoteok get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return types.Result{}, fmt.Errorf("remoteok status %d", res.StatusCode)
	}

	var body []remoteokJob
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return types.Result{}, fmt.Errorf("remoteok decode: %w", err)
	}

	var out []domain.RawRecord
	for _, j := range body {
		if j.Legal != "" || strings.TrimSpace(j.Position) == "" {
			continue
		}
		id := uuid.NewString()
		if s := idString(j.ID); s != "" && s != "0" {
			id = "remoteok:" + s
		}
		out = append(out, domain.RawRecord{
			ID:          id,
			Title:       strings.TrimSpace(j.Position),
			Description: j.Description,
			Company:     strings.TrimSpace(j.Company),
			Source:      domain.SourceFallback,
		})
	}

	return types.Result{Source: f.Name(), Records: out}, nil
}
