package models

import "strings"

// Size is a size option identifier, e.g. "M"
type Size string

// Standard size identifiers in catalog order
const (
	SizeXS Size = "XS"
	SizeS  Size = "S"
	SizeM  Size = "M"
	SizeL  Size = "L"
	SizeXL Size = "XL"
)

// StandardSizes returns the standard apparel sizes in display order
func StandardSizes() []Size {
	return []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL}
}

// NormalizeSize trims whitespace and upper-cases a user-supplied size
func NormalizeSize(s string) Size {
	return Size(strings.ToUpper(strings.TrimSpace(s)))
}

// ContainsSize reports whether sizes contains s
func ContainsSize(sizes []Size, s Size) bool {
	for _, v := range sizes {
		if v == s {
			return true
		}
	}
	return false
}

// Price is an amount in whole currency units
type Price struct {
	Amount int64  `json:"amount"`
	Symbol string `json:"symbol"`
}

// Product is the static record shown on the detail screen
type Product struct {
	SKU         string `json:"sku"`
	Title       string `json:"title"`
	Description string `json:"description"`
	InfoTitle   string `json:"info_title"`
	InfoText    string `json:"info_text"`
	Sizes       []Size `json:"sizes"`
	Price       Price  `json:"price"`
}

// PurchaseIntent is handed to the cart when the purchase action is confirmed
type PurchaseIntent struct {
	Product string `json:"product"`
	Size    Size   `json:"size"`
	Price   int64  `json:"price"`
}

// Config holds persisted user preferences
type Config struct {
	Lang    string `json:"lang,omitempty"`
	NoMouse bool   `json:"no_mouse,omitempty"`
}
