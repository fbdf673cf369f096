package repositories

import (
	"context"
	"time"

	"local-market/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, business_id, name, COALESCE(description,''), price,
	COALESCE(image,''), COALESCE(category,''), in_stock, created_at, updated_at`

func (r *ProductRepository) scan(row interface{ Scan(...interface{}) error }) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.BusinessID, &p.Name, &p.Description, &p.Price,
		&p.Image, &p.Category, &p.InStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindByBusiness(ctx context.Context, businessID int) ([]models.Product, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+productColumns+" FROM products WHERE business_id = $1 ORDER BY created_at DESC",
		businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	return r.scan(r.db.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id))
}

func (r *ProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	now := time.Now()
	return r.scan(r.db.QueryRow(ctx,
		`INSERT INTO products (business_id, name, description, price, image, category, in_stock, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		 RETURNING `+productColumns,
		req.BusinessID, req.Name, req.Description, req.Price, req.Image, req.Category, inStock, now))
}

func (r *ProductRepository) Update(ctx context.Context, id int, req *models.UpdateProductRequest) (*models.Product, error) {
	return r.scan(r.db.QueryRow(ctx,
		`UPDATE products SET
		 name = COALESCE($1, name),
		 description = COALESCE($2, description),
		 price = COALESCE($3, price),
		 image = COALESCE($4, image),
		 category = COALESCE($5, category),
		 in_stock = COALESCE($6, in_stock),
		 updated_at = $7
		 WHERE id = $8
		 RETURNING `+productColumns,
		req.Name, req.Description, req.Price, req.Image, req.Category, req.InStock,
		time.Now(), id))
}

func (r *ProductRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
