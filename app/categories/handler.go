package categories

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/stockroom/inventory-api/app/api"
	"github.com/stockroom/inventory-api/models"
)

type CategoryResponse struct {
	CategoryID uint      `json:"category_id"`
	Name       string    `json:"name"`
	Products   int64     `json:"products"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CategoryProvider interface {
	GetAllCategories() ([]models.CategoryWithCount, error)
	CreateCategory(category *models.Category) error
	UpdateCategory(id uint, name string) error
	DeleteCategory(id uint) error
}

type CategoryHandler struct {
	repo CategoryProvider
}

func NewCategoryHandler(r CategoryProvider) *CategoryHandler {
	return &CategoryHandler{repo: r}
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories()
	if err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			CategoryID: c.CategoryID,
			Name:       c.Name,
			Products:   c.Products,
			CreatedAt:  c.CreatedAt,
			UpdatedAt:  c.UpdatedAt,
		}
	}

	api.JSON(w, http.StatusOK, response)
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == "" {
		api.Error(w, http.StatusBadRequest, "Name is required")
		return
	}

	category := &models.Category{
		Name: input.Name,
	}

	if err := h.repo.CreateCategory(category); err != nil {
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	// A fresh category has no products yet; no need to re-query the count.
	api.JSON(w, http.StatusCreated, CategoryResponse{
		CategoryID: category.CategoryID,
		Name:       category.Name,
		Products:   0,
		CreatedAt:  category.CreatedAt,
		UpdatedAt:  category.UpdatedAt,
	})
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == "" {
		api.Error(w, http.StatusBadRequest, "Name is required")
		return
	}

	if err := h.repo.UpdateCategory(id, input.Name); err != nil {
		switch {
		case errors.Is(err, models.ErrCategoryNotFound):
			api.Error(w, http.StatusNotFound, "Category not found")
		default:
			api.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	api.Message(w, http.StatusOK, "Category updated")
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.repo.DeleteCategory(id); err != nil {
		switch {
		case errors.Is(err, models.ErrCategoryNotFound):
			api.Error(w, http.StatusNotFound, "Category not found")
		case errors.Is(err, models.ErrCategoryInUse):
			api.Error(w, http.StatusConflict, "Category is in use by existing products")
		default:
			api.Error(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	api.Message(w, http.StatusOK, "Category deleted")
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		api.Error(w, http.StatusBadRequest, "Invalid category id")
		return 0, false
	}
	return uint(id), true
}
