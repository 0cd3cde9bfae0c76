package repository

import (
	"context"
	"database/sql"
	"strings"

	"storefront-service/internal/entity"
)

// CatalogRepository reads the locally seeded menu snapshot used as the
// configured fallback when the menu service is unreachable.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db}
}

// fallbackCategories mirrors the category list of the menu service.
var fallbackCategories = []entity.Category{
	{ID: "lanche", Name: "Lanches", Icon: "🍔"},
	{ID: "bebida", Name: "Bebidas", Icon: "🥤"},
	{ID: "acompanhamento", Name: "Acompanhamentos", Icon: "🍟"},
	{ID: "sobremesa", Name: "Sobremesas", Icon: "🍰"},
}

func (r *CatalogRepository) Categories(ctx context.Context) ([]entity.Category, error) {
	categories := make([]entity.Category, len(fallbackCategories))
	copy(categories, fallbackCategories)
	return categories, nil
}

func (r *CatalogRepository) Products(ctx context.Context, categoryID, search string) ([]entity.Product, error) {
	query := `SELECT id, name, description, price, image_url, category, availability FROM products`
	var conditions []string
	var args []interface{}

	if categoryID != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, categoryID)
	}
	if s := strings.TrimSpace(search); s != "" {
		conditions = append(conditions, "(name LIKE ? OR description LIKE ?)")
		pattern := "%" + s + "%"
		args = append(args, pattern, pattern)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		product := entity.Product{}
		err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.ImageURL, &product.Category, &product.Availability)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}
