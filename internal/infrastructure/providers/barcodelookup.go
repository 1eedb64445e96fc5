package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/shelfscan/backend/internal/domain"
)

// DefaultBarcodeLookupBaseURL is the production Barcode Lookup API root.
const DefaultBarcodeLookupBaseURL = "https://api.barcodelookup.com/v3"

// BarcodeLookup queries the paid Barcode Lookup catalog. It is the first
// provider in the chain because its catalog is the broadest.
type BarcodeLookup struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewBarcodeLookup creates a client. An empty apiKey disables the provider.
func NewBarcodeLookup(apiKey, baseURL string) *BarcodeLookup {
	// Paid plans allow roughly 500 requests/minute; stay under that.
	limiter := rate.NewLimiter(rate.Limit(8), 16)

	return &BarcodeLookup{
		httpClient:  newHTTPClient(),
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// Name identifies the provider in logs, metrics, and ProductInfo.Source.
func (p *BarcodeLookup) Name() string {
	return domain.SourceBarcodeLookup
}

type barcodeLookupProduct struct {
	BarcodeNumber string   `json:"barcode_number"`
	Title         string   `json:"title"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Images        []string `json:"images"`
}

type barcodeLookupResponse struct {
	Products []barcodeLookupProduct `json:"products"`
}

// Lookup resolves one candidate within remaining.
func (p *BarcodeLookup) Lookup(ctx context.Context, candidate string, remaining time.Duration) domain.ProviderOutcome {
	if p.apiKey == "" {
		return domain.NotFound()
	}
	if remaining <= 0 {
		return domain.Errored()
	}

	ctx, cancel := context.WithTimeout(ctx, remaining)
	defer cancel()

	if err := p.rateLimiter.Wait(ctx); err != nil {
		log.Printf("[barcodelookup] rate limiter wait aborted: %v", err)
		return domain.Errored()
	}

	params := url.Values{}
	params.Add("barcode", candidate)
	params.Add("key", p.apiKey)
	reqURL := fmt.Sprintf("%s/products?%s", p.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Printf("[barcodelookup] build request: %v", err)
		return domain.Errored()
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("[barcodelookup] request for %s failed: %v", candidate, err)
		return domain.Errored()
	}
	defer resp.Body.Close()

	if isNotFoundStatus(resp.StatusCode) {
		return domain.NotFound()
	}
	if !isSuccessStatus(resp.StatusCode) {
		log.Printf("[barcodelookup] unexpected status %d for %s", resp.StatusCode, candidate)
		return domain.Errored()
	}

	var body barcodeLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("[barcodelookup] decode response for %s: %v", candidate, err)
		return domain.Errored()
	}

	if len(body.Products) == 0 {
		return domain.NotFound()
	}

	product := body.Products[0]
	name := strings.TrimSpace(product.Title)
	if name == "" {
		return domain.NotFound()
	}

	info := &domain.ProductInfo{
		Name:              name,
		Brand:             strings.TrimSpace(product.Brand),
		Category:          strings.TrimSpace(product.Category),
		Source:            domain.SourceBarcodeLookup,
		NormalizedBarcode: candidate,
	}
	if len(product.Images) > 0 {
		info.ImageURL = product.Images[0]
	}

	return domain.Found(info)
}
