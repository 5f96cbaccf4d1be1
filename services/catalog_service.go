package services

// The catalog is static marketing data. It lives in code, not the database,
// and changes only with a deploy.

// CatalogCategory is one entry of the category overview
type CatalogCategory struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ProductCount int    `json:"productCount"`
}

// CatalogProduct is one product inside a category
type CatalogProduct struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Specifications map[string]string `json:"specifications"`
}

// CategoryDetail is the payload of a single category page
type CategoryDetail struct {
	Title    string           `json:"title"`
	Products []CatalogProduct `json:"products"`
}

// InterfaceCatalogService defines the product catalog service
type InterfaceCatalogService interface {
	Categories() []CatalogCategory
	CategoryByID(id string) (*CategoryDetail, bool)
	CompanyInfo() map[string]interface{}
	SampleRequestInfo() map[string]interface{}
}

// CatalogService serves the static product catalog and company info
type CatalogService struct{}

// NewCatalogService creates a new catalog service
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

var catalogCategories = []CatalogCategory{
	{ID: "plywood", Title: "Plywood", Description: "Premium, marine, and structural plywood", ProductCount: 3},
	{ID: "melamine", Title: "Prefinished Melamine", Description: "Various colors with custom options", ProductCount: 2},
	{ID: "melamine-plywood", Title: "Prefinished Melamine Plywood", Description: "High-quality melamine-faced plywood", ProductCount: 2},
	{ID: "veneer", Title: "Wood Veneer", Description: "Different thicknesses and wood types", ProductCount: 4},
	{ID: "logs", Title: "Raw Wood Logs", Description: "Sustainably sourced raw logs", ProductCount: 1},
}

var catalogDetails = map[string]CategoryDetail{
	"plywood": {
		Title: "Plywood",
		Products: []CatalogProduct{
			{
				ID:          "premium-plywood",
				Title:       "Premium Plywood",
				Description: "High-grade plywood for furniture and construction",
				Specifications: map[string]string{
					"Thickness":  "1mm - 30mm",
					"Sizes":      "Standard and custom",
					"Wood Types": "Okoume, Acajou, Ayous, Sapele",
				},
			},
			{
				ID:          "marine-plywood",
				Title:       "Marine Plywood",
				Description: "Water-resistant plywood for marine applications",
				Specifications: map[string]string{
					"Thickness":        "6mm - 25mm",
					"Water Resistance": "High",
					"Applications":     "Boats, outdoor furniture",
				},
			},
			{
				ID:          "structural-plywood",
				Title:       "Structural Plywood",
				Description: "Strong plywood for construction use",
				Specifications: map[string]string{
					"Thickness":    "9mm - 30mm",
					"Strength":     "High load-bearing capacity",
					"Applications": "Construction, flooring",
				},
			},
		},
	},
	"melamine": {
		Title: "Prefinished Melamine",
		Products: []CatalogProduct{
			{
				ID:          "white-melamine",
				Title:       "White Melamine",
				Description: "Classic white finish",
				Specifications: map[string]string{
					"Finish":        "Smooth matte",
					"Custom Colors": "Available",
				},
			},
			{
				ID:          "wood-grain-melamine",
				Title:       "Wood Grain Melamine",
				Description: "Natural wood appearance",
				Specifications: map[string]string{
					"Patterns": "Multiple wood grains",
					"Texture":  "Embossed",
				},
			},
		},
	},
	"melamine-plywood": {
		Title: "Prefinished Melamine Plywood",
		Products: []CatalogProduct{
			{
				ID:          "white-melamine-plywood",
				Title:       "White Melamine Plywood",
				Description: "Melamine-faced plywood ready for cabinetry",
				Specifications: map[string]string{
					"Thickness": "9mm - 25mm",
					"Faces":     "Single or double sided",
				},
			},
			{
				ID:          "colored-melamine-plywood",
				Title:       "Colored Melamine Plywood",
				Description: "Melamine-faced plywood in custom colors",
				Specifications: map[string]string{
					"Thickness":     "9mm - 25mm",
					"Custom Colors": "Available on request",
				},
			},
		},
	},
	"veneer": {
		Title: "Wood Veneer",
		Products: []CatalogProduct{
			{
				ID:          "okoume-veneer",
				Title:       "Okoume Veneer",
				Description: "Light, uniform veneer for faces and backs",
				Specifications: map[string]string{
					"Thickness": "0.3mm - 3mm",
					"Grades":    "Face and back grades",
				},
			},
			{
				ID:          "sapele-veneer",
				Title:       "Sapele Veneer",
				Description: "Rich mahogany-toned decorative veneer",
				Specifications: map[string]string{
					"Thickness": "0.3mm - 3mm",
					"Figure":    "Ribbon stripe",
				},
			},
			{
				ID:          "acajou-veneer",
				Title:       "Acajou Veneer",
				Description: "African mahogany veneer for fine furniture",
				Specifications: map[string]string{
					"Thickness": "0.3mm - 3mm",
				},
			},
			{
				ID:          "ayous-veneer",
				Title:       "Ayous Veneer",
				Description: "Pale, even-grained utility veneer",
				Specifications: map[string]string{
					"Thickness": "0.3mm - 3mm",
				},
			},
		},
	},
	"logs": {
		Title: "Raw Wood Logs",
		Products: []CatalogProduct{
			{
				ID:          "raw-logs",
				Title:       "Raw Wood Logs",
				Description: "Sustainably sourced logs from Cameroon forests",
				Specifications: map[string]string{
					"Species":  "Okoume, Acajou, Ayous, Sapele",
					"Sourcing": "Certified sustainable harvest",
				},
			},
		},
	},
}

// Categories returns the category overview
func (s *CatalogService) Categories() []CatalogCategory {
	return catalogCategories
}

// CategoryByID returns the products of one category
func (s *CatalogService) CategoryByID(id string) (*CategoryDetail, bool) {
	detail, ok := catalogDetails[id]
	if !ok {
		return nil, false
	}
	return &detail, true
}

// CompanyInfo returns the static company profile
func (s *CatalogService) CompanyInfo() map[string]interface{} {
	return map[string]interface{}{
		"name":         "Tropical Wood, a division of Roilux",
		"location":     "Cameroon",
		"established":  "2010",
		"capacity":     "50+ containers per month",
		"certifications": []string{
			"FSC Certified",
			"ISO 9001:2015",
			"PEFC Certified",
		},
		"contact": map[string]string{
			"email":   "info@tropicalwood.com",
			"phone":   "+237 XXX XXX XXX",
			"address": "Industrial Zone, Douala, Cameroon",
		},
	}
}

// SampleRequestInfo returns the sample request process description
func (s *CatalogService) SampleRequestInfo() map[string]interface{} {
	return map[string]interface{}{
		"message": "Sample request endpoint",
		"process": []string{
			"Fill out the sample request form",
			"Specify products and quantities",
			"Provide shipping information",
			"Receive confirmation within 24 hours",
			"Samples shipped within 3-5 business days",
		},
	}
}
