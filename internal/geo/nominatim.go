package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/core/domain"
)

const (
	// DefaultNominatimURL is the public OpenStreetMap search endpoint.
	DefaultNominatimURL = "https://nominatim.openstreetmap.org/search"

	// DefaultUserAgent identifies the service as the Nominatim usage policy requires.
	DefaultUserAgent = "SwiftCargo-Tracker/1.0"

	// DefaultTimeout bounds a single provider call.
	DefaultTimeout = 5 * time.Second

	// MaxResultLimit caps the number of candidates requested per query.
	MaxResultLimit = 5

	// maxBodyBytes guards against oversized provider responses.
	maxBodyBytes = 1 << 20

	httpMaxIdleConns    = 4
	httpIdleConnTimeout = 30 * time.Second
)

// Candidate is a single geocoding match returned by a Provider.
type Candidate struct {
	Coordinate  domain.Coordinate
	DisplayName string
	PlaceType   string
	Importance  float64
}

// Provider looks up free-text queries against an external geocoding source.
// An empty slice with a nil error means "no match".
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]Candidate, error)
}

// NominatimConfig captures the settings of a NominatimClient.
type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	Email     string // optional contact address forwarded as the "email" parameter
	Timeout   time.Duration
}

// NominatimClient implements Provider against the OpenStreetMap Nominatim API.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	email      string
	timeout    time.Duration
	httpClient *http.Client
}

// NewNominatimClient creates a Provider backed by Nominatim. Zero-valued
// fields fall back to the package defaults.
func NewNominatimClient(cfg NominatimConfig) *NominatimClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultNominatimURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	transport := &http.Transport{
		MaxIdleConns:        httpMaxIdleConns,
		MaxIdleConnsPerHost: httpMaxIdleConns,
		IdleConnTimeout:     httpIdleConnTimeout,
	}
	return &NominatimClient{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		email:     cfg.Email,
		timeout:   cfg.Timeout,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}
}

// Search queries Nominatim for up to limit candidates. Limits outside
// [1, MaxResultLimit] are clamped to MaxResultLimit.
func (c *NominatimClient) Search(ctx context.Context, query string, limit int) ([]Candidate, error) {
	if limit <= 0 || limit > MaxResultLimit {
		limit = MaxResultLimit
	}

	params := url.Values{}
	params.Set("format", "jsonv2")
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("addressdetails", "1")
	if c.email != "" {
		params.Set("email", c.email)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("nominatim: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim: http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("nominatim: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("nominatim: status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.Unmarshal(body, &places); err != nil {
		return nil, fmt.Errorf("nominatim: unmarshal response: %w", err)
	}

	out := make([]Candidate, 0, len(places))
	for _, p := range places {
		cand, ok := p.candidate()
		if !ok {
			continue
		}
		out = append(out, cand)
	}
	return out, nil
}

// --- JSON types for the Nominatim search API ---

type nominatimPlace struct {
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	DisplayName string  `json:"display_name"`
	Type        string  `json:"type"`
	AddressType string  `json:"addresstype"`
	Importance  float64 `json:"importance"`
}

func (p nominatimPlace) candidate() (Candidate, bool) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return Candidate{}, false
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return Candidate{}, false
	}
	placeType := p.AddressType
	if placeType == "" {
		placeType = p.Type
	}
	return Candidate{
		Coordinate:  domain.Coordinate{Lat: lat, Lng: lng},
		DisplayName: p.DisplayName,
		PlaceType:   placeType,
		Importance:  p.Importance,
	}, true
}
