package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/shelfscan/backend/internal/domain"
)

// DefaultOpenFoodFactsBaseURL is the public Open Food Facts API root.
const DefaultOpenFoodFactsBaseURL = "https://world.openfoodfacts.org"

// OpenFoodFacts queries the free Open Food Facts catalog. The API requires
// a descriptive User-Agent; without one configured the provider is disabled.
type OpenFoodFacts struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
}

// NewOpenFoodFacts creates a client. An empty userAgent disables the provider.
func NewOpenFoodFacts(userAgent, baseURL string) *OpenFoodFacts {
	return &OpenFoodFacts{
		httpClient: newHTTPClient(),
		userAgent:  userAgent,
		baseURL:    baseURL,
	}
}

// Name identifies the provider in logs, metrics, and ProductInfo.Source.
func (p *OpenFoodFacts) Name() string {
	return domain.SourceOpenFoodFacts
}

type openFoodFactsProduct struct {
	ProductName string `json:"product_name"`
	Brands      string `json:"brands"`
	ImageURL    string `json:"image_url"`
	Categories  string `json:"categories"`
}

type openFoodFactsResponse struct {
	Status  int                  `json:"status"`
	Product openFoodFactsProduct `json:"product"`
}

// Lookup resolves one candidate within remaining.
func (p *OpenFoodFacts) Lookup(ctx context.Context, candidate string, remaining time.Duration) domain.ProviderOutcome {
	if p.userAgent == "" {
		return domain.NotFound()
	}
	if remaining <= 0 {
		return domain.Errored()
	}

	ctx, cancel := context.WithTimeout(ctx, remaining)
	defer cancel()

	reqURL := fmt.Sprintf("%s/api/v2/product/%s.json", p.baseURL, candidate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Printf("[openfoodfacts] build request: %v", err)
		return domain.Errored()
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("[openfoodfacts] request for %s failed: %v", candidate, err)
		return domain.Errored()
	}
	defer resp.Body.Close()

	if isNotFoundStatus(resp.StatusCode) {
		return domain.NotFound()
	}
	if !isSuccessStatus(resp.StatusCode) {
		log.Printf("[openfoodfacts] unexpected status %d for %s", resp.StatusCode, candidate)
		return domain.Errored()
	}

	var body openFoodFactsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("[openfoodfacts] decode response for %s: %v", candidate, err)
		return domain.Errored()
	}

	// status 0 means the barcode is not in the catalog
	if body.Status != 1 {
		return domain.NotFound()
	}

	name := strings.TrimSpace(body.Product.ProductName)
	if name == "" {
		return domain.NotFound()
	}

	return domain.Found(&domain.ProductInfo{
		Name:              name,
		Brand:             firstListEntry(body.Product.Brands),
		ImageURL:          body.Product.ImageURL,
		Category:          firstListEntry(body.Product.Categories),
		Source:            domain.SourceOpenFoodFacts,
		NormalizedBarcode: candidate,
	})
}

// firstListEntry extracts the first value from Open Food Facts'
// comma-separated list fields (e.g. "Nutella,Ferrero").
func firstListEntry(list string) string {
	if idx := strings.Index(list, ","); idx >= 0 {
		list = list[:idx]
	}
	return strings.TrimSpace(list)
}
