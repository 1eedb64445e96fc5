package domain

// ProductInfo represents resolved product metadata for a scanned barcode
type ProductInfo struct {
	Name              string `json:"name"`
	Brand             string `json:"brand,omitempty"`
	ImageURL          string `json:"imageUrl,omitempty"`
	Category          string `json:"category,omitempty"`
	Source            string `json:"source,omitempty"`            // e.g., "barcodelookup"
	NormalizedBarcode string `json:"normalizedBarcode,omitempty"` // candidate that produced the hit
}

// Provider source identifiers
const (
	SourceBarcodeLookup = "barcodelookup"
	SourceOpenFoodFacts = "openfoodfacts"
	SourceUPCItemDB     = "upcitemdb"
)
