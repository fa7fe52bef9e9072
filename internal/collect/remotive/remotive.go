package remotive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"joblabel-engine/internal/collect/types"
	"joblabel-engine/internal/collect/util"
	"joblabel-engine/internal/domain"
)

const defaultBaseURL = "https://remotive.com/api/remote-jobs"

type Config struct {
	Search  string
	Token   string // optional bearer token for keyed deployments
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

func (f *Fetcher) Name() string { return "remotive" }

type remotiveJob struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Description string `json:"description"` // html
}

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

// Fetch pulls the remote-jobs listing. This is the primary lane; its
// records win over fallback records whenever it returns anything.
func (f *Fetcher) Fetch(ctx context.Context) (types.Result, error) {
	apiURL := f.cfg.BaseURL
	if f.cfg.Search != "" {
		apiURL += "?search=" + url.QueryEscape(f.cfg.Search)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return types.Result{}, fmt.Errorf("remotive request: %w", err)
	}
	req.Header.Set("User-Agent", "JobLabel/1.0 (+local)")
	req.Header.Set("Accept", "application/json")
	if f.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+f.cfg.Token)
	}

	if f.throttle != nil {
		if err := f.throttle.Wait(ctx, apiURL); err != nil {
			return types.Result{}, err
		}
	}

	res, err := f.hc.Do(req)
	if err != nil {
		return types.Result{}, fmt.Errorf("remotive get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return types.Result{}, fmt.Errorf("remotive status %d", res.StatusCode)
	}

	var body remotiveResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return types.Result{}, fmt.Errorf("remotive decode: %w", err)
	}

	out := make([]domain.RawRecord, 0, len(body.Jobs))
	for _, j := range body.Jobs {
		id := uuid.NewString()
		if j.ID > 0 {
			id = fmt.Sprintf("remotive:%d", j.ID)
		}
		out = append(out, domain.RawRecord{
			ID:          id,
			Title:       strings.TrimSpace(j.Title),
			Description: j.Description,
			Company:     strings.TrimSpace(j.CompanyName),
			Source:      domain.SourcePrimary,
		})
	}

	return types.Result{Source: f.Name(), Records: out}, nil
}
