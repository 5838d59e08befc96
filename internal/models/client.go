package models

// BusinessType is the legal structure of a client's business.
type BusinessType string

const (
	BusinessSoleProprietor BusinessType = "sole-proprietor"
	BusinessPartnership    BusinessType = "partnership"
	BusinessLLP            BusinessType = "llp"
	BusinessPrivateLimited BusinessType = "private-limited"
	BusinessPublicLimited  BusinessType = "public-limited"
)

// Label returns the display name for a business type. Unrecognized values
// pass through unchanged.
func (bt BusinessType) Label() string {
	switch bt {
	case BusinessSoleProprietor:
		return "Sole Proprietor"
	case BusinessPartnership:
		return "Partnership"
	case BusinessLLP:
		return "LLP"
	case BusinessPrivateLimited:
		return "Private Limited"
	case BusinessPublicLimited:
		return "Public Limited"
	}
	return string(bt)
}

// Client is a business the practice does accounting work for. The ID is
// assigned by the store and never changes; GSTIN and PAN are statutory
// registration numbers and may be absent for unregistered clients.
type Client struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	BusinessType BusinessType `json:"businessType"`
	GSTIN        string       `json:"gstin,omitempty"`
	PAN          string       `json:"pan,omitempty"`
	Email        string       `json:"email,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Address      string       `json:"address,omitempty"`
}
