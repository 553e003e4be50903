package products

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockroom/inventory-api/app/api"
	"github.com/stockroom/inventory-api/models"
)

type ProductResponse struct {
	ProductID    uint      `json:"product_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	CategoryID   uint      `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ProductProvider interface {
	GetAllProducts() ([]models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id uint, update models.ProductUpdate) error
	DeleteProduct(id uint) error
}

type ProductHandler struct {
	repo ProductProvider
}

func NewProductHandler(r ProductProvider) *ProductHandler {
	return &ProductHandler{repo: r}
}

func (h *ProductHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.repo.GetAllProducts()
	if err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	products := make([]ProductResponse, len(res))
	for i, p := range res {
		products[i] = toResponse(&p)
	}

	api.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name        string           `json:"name"`
		Description string           `json:"description"`
		CategoryID  *uint            `json:"category_id"`
		Price       *decimal.Decimal `json:"price"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == "" || input.Description == "" || input.CategoryID == nil || input.Price == nil {
		api.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if input.Price.IsNegative() {
		api.Error(w, http.StatusBadRequest, "Price must not be negative")
		return
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  *input.CategoryID,
		Price:       *input.Price,
	}

	if err := h.repo.CreateProduct(product); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			api.Error(w, http.StatusBadRequest, "Category does not exist")
			return
		}
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	// The category name is resolved at read time, so the created record
	// echoes only what was stored.
	api.JSON(w, http.StatusCreated, struct {
		ProductID   uint      `json:"product_id"`
		Name        string    `json:"name"`
		Description string    `json:"description"`
		CategoryID  uint      `json:"category_id"`
		Price       float64   `json:"price"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}{
		ProductID:   product.ProductID,
		Name:        product.Name,
		Description: product.Description,
		CategoryID:  product.CategoryID,
		Price:       product.Price.InexactFloat64(),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	})
}

func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input struct {
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		CategoryID  *uint            `json:"category_id"`
		Price       *decimal.Decimal `json:"price"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	// Every field is optional, but a field that is present must be valid on
	// its own. Omitted fields keep their stored values (merged server-side).
	if input.Name != nil && *input.Name == "" {
		api.Error(w, http.StatusBadRequest, "Name must not be empty")
		return
	}
	if input.Description != nil && *input.Description == "" {
		api.Error(w, http.StatusBadRequest, "Description must not be empty")
		return
	}
	if input.CategoryID != nil && *input.CategoryID == 0 {
		api.Error(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	if input.Price != nil && input.Price.IsNegative() {
		api.Error(w, http.StatusBadRequest, "Price must not be negative")
		return
	}

	update := models.ProductUpdate{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Price:       input.Price,
	}

	if err := h.repo.UpdateProduct(id, update); err != nil {
		switch {
		case errors.Is(err, models.ErrProductNotFound):
			api.Error(w, http.StatusNotFound, "Product not found")
		case errors.Is(err, models.ErrCategoryNotFound):
			api.Error(w, http.StatusBadRequest, "Category does not exist")
		default:
			api.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	api.Message(w, http.StatusOK, "Product updated")
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.repo.DeleteProduct(id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	api.Message(w, http.StatusOK, "Product deleted")
}

func toResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ProductID:    p.ProductID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: p.Category.Name,
		Price:        p.Price.InexactFloat64(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		api.Error(w, http.StatusBadRequest, "Invalid product id")
		return 0, false
	}
	return uint(id), true
}
