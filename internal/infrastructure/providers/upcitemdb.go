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

	"github.com/shelfscan/backend/internal/domain"
)

// DefaultUPCItemDBBaseURL is the UPCitemdb API root.
const DefaultUPCItemDBBaseURL = "https://api.upcitemdb.com"

// DefaultUPCItemDBKeyType is the key type header UPCitemdb expects for
// paid plans.
const DefaultUPCItemDBKeyType = "3scale"

// UPCItemDB queries the UPCitemdb catalog. Without a user key it falls back
// to the keyless trial endpoint; with one it uses the paid endpoint and
// sends the user_key/key_type headers.
type UPCItemDB struct {
	httpClient *http.Client
	userKey    string
	keyType    string
	baseURL    string
}

// NewUPCItemDB creates a client. userKey may be empty (trial endpoint).
func NewUPCItemDB(userKey, keyType, baseURL string) *UPCItemDB {
	if keyType == "" {
		keyType = DefaultUPCItemDBKeyType
	}
	return &UPCItemDB{
		httpClient: newHTTPClient(),
		userKey:    userKey,
		keyType:    keyType,
		baseURL:    baseURL,
	}
}

// Name identifies the provider in logs, metrics, and ProductInfo.Source.
func (p *UPCItemDB) Name() string {
	return domain.SourceUPCItemDB
}

type upcItemDBItem struct {
	Title    string   `json:"title"`
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	Images   []string `json:"images"`
}

type upcItemDBResponse struct {
	Code  string          `json:"code"`
	Items []upcItemDBItem `json:"items"`
}

// Lookup resolves one candidate within remaining.
func (p *UPCItemDB) Lookup(ctx context.Context, candidate string, remaining time.Duration) domain.ProviderOutcome {
	if remaining <= 0 {
		return domain.Errored()
	}

	ctx, cancel := context.WithTimeout(ctx, remaining)
	defer cancel()

	endpoint := "/prod/trial/lookup"
	if p.userKey != "" {
		endpoint = "/prod/v1/lookup"
	}

	params := url.Values{}
	params.Add("upc", candidate)
	reqURL := fmt.Sprintf("%s%s?%s", p.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Printf("[upcitemdb] build request: %v", err)
		return domain.Errored()
	}
	if p.userKey != "" {
		req.Header.Set("user_key", p.userKey)
		req.Header.Set("key_type", p.keyType)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("[upcitemdb] request for %s failed: %v", candidate, err)
		return domain.Errored()
	}
	defer resp.Body.Close()

	if isNotFoundStatus(resp.StatusCode) {
		return domain.NotFound()
	}
	if !isSuccessStatus(resp.StatusCode) {
		log.Printf("[upcitemdb] unexpected status %d for %s", resp.StatusCode, candidate)
		return domain.Errored()
	}

	var body upcItemDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("[upcitemdb] decode response for %s: %v", candidate, err)
		return domain.Errored()
	}

	if len(body.Items) == 0 {
		return domain.NotFound()
	}

	item := body.Items[0]
	name := strings.TrimSpace(item.Title)
	if name == "" {
		return domain.NotFound()
	}

	info := &domain.ProductInfo{
		Name:              name,
		Brand:             strings.TrimSpace(item.Brand),
		Category:          strings.TrimSpace(item.Category),
		Source:            domain.SourceUPCItemDB,
		NormalizedBarcode: candidate,
	}
	if len(item.Images) > 0 {
		info.ImageURL = item.Images[0]
	}

	return domain.Found(info)
}
