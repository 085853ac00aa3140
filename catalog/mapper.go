// Package catalog turns upstream product records into the storefront
// view model and keeps the public snapshot fresh.
package catalog

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// PlaceholderImage is served when the upstream record has no image.
const PlaceholderImage = "https://placehold.co/600x400?text=No+Image"

// Mapper converts upstream product records into models.Product. Every
// optional field has a defined fallback; only the identifier and name
// are mandatory.
type Mapper struct {
	// AssetBaseURL prefixes relative image paths from the upstream API.
	AssetBaseURL string
	// DefaultYear is used when the record carries no release date.
	DefaultYear int
	// Clock stamps image URLs for cache busting. Defaults to time.Now.
	Clock func() time.Time
}

func NewMapper(assetBaseURL string, defaultYear int) *Mapper {
	return &Mapper{
		AssetBaseURL: strings.TrimRight(assetBaseURL, "/"),
		DefaultYear:  defaultYear,
		Clock:        time.Now,
	}
}

// MapProduct builds the storefront product for one upstream record.
// It fails only when the mandatory identifier or name is missing.
func (m *Mapper) MapProduct(p models.UpstreamProduct) (models.Product, error) {
	if p.ProductID == "" || p.ProductName == "" {
		return models.Product{}, fmt.Errorf("catalog: product record missing id or name (id=%q)", p.ProductID)
	}

	price := 0.0
	if p.Price != nil && *p.Price > 0 {
		price = *p.Price
	}

	stock := 0
	if p.Quantity != nil && *p.Quantity > 0 {
		stock = *p.Quantity
	}

	brand := "Unknown"
	if p.Brand != nil && *p.Brand != "" {
		brand = *p.Brand
	}

	specs := map[string]string{}
	description := "No description available"
	if p.Specification != nil && *p.Specification != "" {
		specs["Details"] = *p.Specification
		description = *p.Specification
	}

	warranty := "12 months"
	if p.WarrantyPeriod != nil && *p.WarrantyPeriod > 0 {
		warranty = fmt.Sprintf("%d months", *p.WarrantyPeriod)
	}

	year := m.DefaultYear
	if p.ReleaseDate != nil && *p.ReleaseDate != "" {
		if y, ok := parseReleaseYear(*p.ReleaseDate); ok {
			year = y
		}
	}

	status := models.StatusActive
	if p.Status != nil {
		status = NormalizeStatusToFE(*p.Status)
	}

	image := PlaceholderImage
	if p.ImageBaseURL != nil && *p.ImageBaseURL != "" {
		clock := m.Clock
		if clock == nil {
			clock = time.Now
		}
		image = fmt.Sprintf("%s%s?v=%d", m.AssetBaseURL, *p.ImageBaseURL, clock().UnixMilli())
	}

	return models.Product{
		ID:             p.ProductID,
		Name:           p.ProductName,
		Brand:          brand,
		Model:          p.ProductID,
		Price:          price,
		OriginalPrice:  price * 1.1,
		Rating:         4.5,
		Reviews:        10,
		Image:          image,
		Images:         []string{},
		Category:       InferCategory(p.ProductID, p.ProductName),
		Status:         status,
		Stock:          stock,
		Specifications: specs,
		Warranty:       warranty,
		ReleaseYear:    year,
		Description:    description,
	}, nil
}

// MapProducts maps a whole listing, dropping records that fail the
// mandatory-field check instead of failing the batch.
func (m *Mapper) MapProducts(records []models.UpstreamProduct) []models.Product {
	out := make([]models.Product, 0, len(records))
	for _, rec := range records {
		p, err := m.MapProduct(rec)
		if err != nil {
			log.Printf("[catalog] skipping record: %v", err)
			continue
		}
		out = append(out, p)
	}
	return out
}

// InferCategory classifies a product into the fixed category set.
// Identifier prefixes win over name keywords; within each group the
// checks run in declaration order and the first match wins. Anything
// unrecognized is an accessory.
func InferCategory(productID, productName string) string {
	id := strings.ToUpper(productID)
	switch {
	case strings.HasPrefix(id, "PH_"):
		return models.CategorySmartphones
	case strings.HasPrefix(id, "LP_"):
		return models.CategoryLaptops
	case strings.HasPrefix(id, "TV_"):
		return models.CategoryTVs
	}

	name := strings.ToLower(productName)
	keywordTable := []struct {
		category string
		keywords []string
	}{
		{models.CategorySmartphones, []string{"phone", "iphone", "galaxy"}},
		{models.CategoryLaptops, []string{"laptop", "macbook"}},
		{models.CategoryTVs, []string{"tv", "smart"}},
		{models.CategoryWatches, []string{"watch", "đồng hồ"}},
		{models.CategoryCameras, []string{"camera", "máy ảnh"}},
	}
	for _, row := range keywordTable {
		for _, kw := range row.keywords {
			if strings.Contains(name, kw) {
				return row.category
			}
		}
	}
	return models.CategoryAccessories
}

// NormalizeStatusToFE folds the upstream's free-text status into the
// two storefront values. Unknown and missing both mean Active.
func NormalizeStatusToFE(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "inactive", "deactivated", "disabled":
		return models.StatusInactive
	default:
		return models.StatusActive
	}
}

// NormalizeStatusToAPI maps a storefront status to the upstream's
// vocabulary. The naming is asymmetric on purpose: the upstream calls
// the inactive state "Deactivated".
func NormalizeStatusToAPI(status string) string {
	if status == models.StatusInactive {
		return "Deactivated"
	}
	return "Active"
}

func parseReleaseYear(raw string) (int, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Year(), true
		}
	}
	return 0, false
}
