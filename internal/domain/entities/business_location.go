package entities

// BusinessLocation is a pick-up point for printed packages.
type BusinessLocation struct {
	Name    string            `json:"name" yaml:"name" dynamodbav:"name"`
	Address string            `json:"address" yaml:"address" dynamodbav:"address"`
	Phone   string            `json:"phone,omitempty" yaml:"phone" dynamodbav:"phone,omitempty"`
	Email   string            `json:"email,omitempty" yaml:"email" dynamodbav:"email,omitempty"`
	Hours   map[string]string `json:"hours" yaml:"hours" dynamodbav:"hours"`
}

// Catalog groups everything a client needs to render the order page.
type Catalog struct {
	StudioName                    string             `json:"studioName"`
	StudioDescription             string             `json:"studioDescription"`
	StripePublicKey               string             `json:"stripePublicKey"`
	PerAdditionalPhotoPriceInCent int64              `json:"perAdditionalPhotoPriceInCent"`
	DefaultSpecCodes              []string           `json:"defaultSpecCodes"`
	ProductPackages               []ProductPackage   `json:"productPackages"`
	BusinessLocations             []BusinessLocation `json:"businessLocations"`
}

// Package returns the catalog entry with the given id.
func (c Catalog) Package(id string) (ProductPackage, bool) {
	for _, p := range c.ProductPackages {
		if p.ID == id {
			return p, true
		}
	}
	return ProductPackage{}, false
}
