package remotive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joblabel-engine/internal/domain"
)

const samplePayload = `{
  "job-count": 2,
  "jobs": [
    {"id": 101, "title": "Senior Go Engineer", "company_name": "Acme", "description": "<p>Go services</p>"},
    {"id": 0, "title": "Mystery Role", "company_name": "NoID Inc", "description": "text"}
  ]
}`

func TestFetchMapsRecords(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	f := New(Config{Search: "go engineer", Token: "tok123", BaseURL: srv.URL}, nil)
	res, err := f.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "remotive", res.Source)
	assert.Equal(t, "/?search=go+engineer", gotPath)
	assert.Equal(t, "Bearer tok123", gotAuth)

	require.Len(t, res.Records, 2)
	assert.Equal(t, "remotive:101", res.Records[0].ID)
	assert.Equal(t, "Senior Go Engineer", res.Records[0].Title)
	assert.Equal(t, "Acme", res.Records[0].Company)
	assert.Equal(t, domain.SourcePrimary, res.Records[0].Source)

	// missing upstream id still yields a unique record id
	assert.NotEmpty(t, res.Records[1].ID)
	assert.NotEqual(t, res.Records[0].ID, res.Records[1].ID)
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := New(Config{BaseURL: srv.URL}, nil)
	_, err := f.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestFetchBadBaseURL(t *testing.T) {
	f := New(Config{BaseURL: "http://bad\nhost"}, nil)
	_, err := f.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request")
}

func TestFetchBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	f := New(Config{BaseURL: srv.URL}, nil)
	_, err := f.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}
