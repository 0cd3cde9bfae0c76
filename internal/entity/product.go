package entity

// ProductCategory is the closed set of menu categories.
type ProductCategory string

const (
	CategoryLanche         ProductCategory = "lanche"
	CategorySobremesa      ProductCategory = "sobremesa"
	CategoryBebida         ProductCategory = "bebida"
	CategoryAcompanhamento ProductCategory = "acompanhamento"
)

type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	ImageURL     string          `json:"imageUrl"`
	Category     ProductCategory `json:"category"`
	Availability bool            `json:"availability"`
}

// Category is a menu category as listed by the menu service.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
