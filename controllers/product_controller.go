package controllers

import (
	"context"
	"errors"
	"strconv"

	"local-market/models"
	"local-market/repositories"
	"local-market/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController() *ProductController {
	repo := repositories.NewProductRepository(models.DB)
	return &ProductController{service: services.NewProductService(repo)}
}

// GetProducts godoc
// @Summary List products for a business
// @Tags Products
// @Produce json
// @Param business_id query int true "Business ID"
// @Success 200 {array} models.Product
// @Router /api/products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	businessID, err := strconv.Atoi(c.Query("business_id"))
	if err != nil || businessID <= 0 {
		c.JSON(400, gin.H{"error": "business_id is required"})
		return
	}

	products, err := ctrl.service.ListByBusiness(context.Background(), businessID)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(200, products)
}

// GetProductByID godoc
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid product ID"})
		return
	}

	product, err := ctrl.service.GetByID(context.Background(), id)
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(404, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(200, product)
}

// CreateProduct godoc
// @Summary Add a product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Router /api/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, err := ctrl.service.Create(context.Background(), &req)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(201, product)
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateProductRequest true "Updates"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid product ID"})
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, err := ctrl.service.Update(context.Background(), id, &req)
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(404, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(200, product)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"error": "Invalid product ID"})
		return
	}

	err = ctrl.service.Delete(context.Background(), id)
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(404, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to delete product"})
		return
	}

	c.JSON(200, gin.H{"message": "Product deleted"})
}
