package migrations

import (
	"database/sql"
	"time"
)

// AutoMigrateCatalog creates the fallback catalog table if it does not exist.
func AutoMigrateCatalog(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price DOUBLE NOT NULL,
			image_url VARCHAR(512) NOT NULL,
			category VARCHAR(32) NOT NULL,
			availability BOOLEAN NOT NULL DEFAULT TRUE
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		// Retry creating the table
		for i := 0; i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
			if err == nil {
				break
			}
		}
	}
	return err
}

type seedProduct struct {
	id          string
	name        string
	description string
	price       float64
	imageURL    string
	category    string
}

// seedProducts is the sample menu used when the menu service has never
// been reachable from this deployment.
var seedProducts = []seedProduct{
	{"1", "Big FastTech", "Hambúrguer duplo com queijo, alface, tomate, cebola e molho especial", 18.90, "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=400&h=300&fit=crop", "lanche"},
	{"2", "Chicken Deluxe", "Peito de frango grelhado, queijo, alface, tomate e maionese", 16.50, "https://images.unsplash.com/photo-1606755962773-d324e9aaff46?w=400&h=300&fit=crop", "lanche"},
	{"3", "Fish Burger", "Filé de peixe empanado, queijo, alface e molho tártaro", 15.90, "https://images.unsplash.com/photo-1571091718767-18b5b1457add?w=400&h=300&fit=crop", "lanche"},
	{"4", "Veggie Burger", "Hambúrguer vegetal, queijo vegano, alface, tomate e molho especial", 17.50, "https://images.unsplash.com/photo-1520072959219-c595dc870360?w=400&h=300&fit=crop", "lanche"},
	{"5", "Coca-Cola 350ml", "Refrigerante Coca-Cola gelado", 4.50, "https://images.unsplash.com/photo-1554866585-cd94860890b7?w=400&h=300&fit=crop", "bebida"},
	{"6", "Suco Natural Laranja", "Suco de laranja 100% natural", 6.90, "https://images.unsplash.com/photo-1613478223719-2ab802602423?w=400&h=300&fit=crop", "bebida"},
	{"7", "Água Mineral", "Água mineral sem gás 500ml", 2.50, "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400&h=300&fit=crop", "bebida"},
	{"8", "Milkshake Chocolate", "Milkshake cremoso sabor chocolate com chantilly", 8.90, "https://images.unsplash.com/photo-1572490122747-3968b75cc699?w=400&h=300&fit=crop", "bebida"},
	{"9", "Batata Frita Grande", "Batatas fritas crocantes e temperadas", 7.90, "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?w=400&h=300&fit=crop", "acompanhamento"},
	{"10", "Onion Rings", "Anéis de cebola empanados e fritos", 6.50, "https://images.unsplash.com/photo-1639024471283-03518883512d?w=400&h=300&fit=crop", "acompanhamento"},
	{"11", "Nuggets (8 unidades)", "Nuggets de frango crocantes com molho à escolha", 9.90, "https://images.unsplash.com/photo-1562967914-608f82629710?w=400&h=300&fit=crop", "acompanhamento"},
	{"12", "Torta de Chocolate", "Fatia de torta de chocolate com calda e chantilly", 8.50, "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=400&h=300&fit=crop", "sobremesa"},
	{"13", "Sorvete 2 Bolas", "Sorvete de baunilha e chocolate com cobertura", 6.90, "https://images.unsplash.com/photo-1551024506-0bccd828d307?w=400&h=300&fit=crop", "sobremesa"},
	{"14", "Cookies & Cream", "Sobremesa gelada com biscoito e creme", 7.50, "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=400&h=300&fit=crop", "sobremesa"},
}

// SeedCatalog inserts the sample menu, leaving already-present rows
// untouched.
func SeedCatalog(db *sql.DB) error {
	query := `
		INSERT IGNORE INTO products (id, name, description, price, image_url, category, availability)
		VALUES (?, ?, ?, ?, ?, ?, TRUE)`
	for _, p := range seedProducts {
		if _, err := db.Exec(query, p.id, p.name, p.description, p.price, p.imageURL, p.category); err != nil {
			return err
		}
	}
	return nil
}
