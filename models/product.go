package models

// Product categories are a fixed, client-owned taxonomy. The upstream
// catalog does not carry a category column; the mapper derives one from
// the product id / name and anything unrecognized lands in Accessories.
const (
	CategorySmartphones = "Smartphones"
	CategoryLaptops     = "Laptops"
	CategoryTVs         = "TVs"
	CategoryWatches     = "Watches"
	CategoryCameras     = "Cameras"
	CategoryAccessories = "Accessories"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Product is the storefront view model. It is a snapshot shape: cart
// entries embed a copy of it, not a live reference into the catalog.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Brand          string            `json:"brand"`
	Model          string            `json:"model"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"originalPrice"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Image          string            `json:"image"`
	Images         []string          `json:"images"`
	Category       string            `json:"category"`
	Status         string            `json:"status"`
	Stock          int               `json:"stock"`
	Specifications map[string]string `json:"specifications"`
	Warranty       string            `json:"warranty"`
	ReleaseYear    int               `json:"releaseYear"`
	Description    string            `json:"description"`
}

// UpstreamProduct is the commerce API's product record. Every field
// except the identifier and name is optional on the wire; the mapper
// supplies a defined fallback for each.
type UpstreamProduct struct {
	ProductID      string   `json:"productId"`
	ProductName    string   `json:"productName"`
	Brand          *string  `json:"brand,omitempty"`
	Price          *float64 `json:"price,omitempty"`
	Color          *string  `json:"color,omitempty"`
	Quantity       *int     `json:"quantity,omitempty"`
	Specification  *string  `json:"specification,omitempty"`
	WarrantyPeriod *int     `json:"warrantyPeriod,omitempty"`
	ReleaseDate    *string  `json:"releaseDate,omitempty"`
	Status         *string  `json:"status,omitempty"`
	ImageBaseURL   *string  `json:"imageBaseUrl,omitempty"`
}

// StaffProductForm carries the multipart fields of the staff add/update
// screens. The image file rides alongside in the request body.
type StaffProductForm struct {
	ProductID     string  `form:"productId"`
	ProductName   string  `form:"productName" binding:"required"`
	Brand         string  `form:"brand"`
	Price         float64 `form:"price"`
	Quantity      int     `form:"quantity"`
	Category      string  `form:"category"`
	Specification string  `form:"specification"`
}

type UpdateProductStatusRequest struct {
	Status  string `json:"status" binding:"required,oneof=Active Inactive"`
	Confirm bool   `json:"confirm"`
}
