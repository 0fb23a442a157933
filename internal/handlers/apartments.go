package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"apartment-portal/internal/database"
	"apartment-portal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ApartmentHandler handles apartment-related requests
type ApartmentHandler struct {
	db *database.GormDB
}

// NewApartmentHandler creates a new apartment handler
func NewApartmentHandler(db *database.GormDB) *ApartmentHandler {
	return &ApartmentHandler{db: db}
}

// CreateApartmentRequest is the body of POST /apartments. Numeric fields are
// pointers so that zero values pass the required check.
type CreateApartmentRequest struct {
	UnitNumber  string   `json:"unitNumber" binding:"required,max=50"`
	Name        string   `json:"name" binding:"required,max=255"`
	Project     string   `json:"project" binding:"required,max=255"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Bedrooms    *int     `json:"bedrooms" binding:"required,gte=0"`
	Bathrooms   *int     `json:"bathrooms" binding:"required,gte=0"`
	Area        *float64 `json:"area" binding:"required,gte=0"`
	Images      []string `json:"images" binding:"omitempty,dive,url"`
}

// SearchApartmentsRequest binds the query parameters of GET /apartments.
// Page and limit are pointers like the other optional numerics: validator's
// omitempty skips the min check for a plain int zero, so ?page=0 would slip
// through, while a non-nil pointer to 0 is "present" and min=1 fires.
type SearchApartmentsRequest struct {
	Search    string   `form:"search"`
	Project   string   `form:"project"`
	MinPrice  *float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice  *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	Bedrooms  *int     `form:"bedrooms" binding:"omitempty,gte=0"`
	Bathrooms *int     `form:"bathrooms" binding:"omitempty,gte=0"`
	Page      *int     `form:"page" binding:"omitempty,min=1"`
	Limit     *int     `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Create handles POST /apartments
func (h *ApartmentHandler) Create(c *gin.Context) {
	var req CreateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	apartment := models.Apartment{
		UnitNumber:  req.UnitNumber,
		Name:        req.Name,
		Project:     req.Project,
		Description: req.Description,
		Price:       *req.Price,
		Bedrooms:    *req.Bedrooms,
		Bathrooms:   *req.Bathrooms,
		Area:        *req.Area,
		Images:      models.URLList(req.Images),
	}

	if err := h.db.CreateApartment(&apartment); err != nil {
		var dup *database.DuplicateUnitError
		if errors.As(err, &dup) {
			respondError(c, http.StatusConflict, dup.Error())
			return
		}
		log.Printf("Failed to create apartment: %v", err)
		respondError(c, http.StatusInternalServerError, "failed to create apartment")
		return
	}

	c.JSON(http.StatusCreated, apartment)
}

// List handles GET /apartments (search + paginate)
func (h *ApartmentHandler) List(c *gin.Context) {
	var req SearchApartmentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	filters := database.ApartmentFilters{
		Search:    req.Search,
		Project:   req.Project,
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		Bedrooms:  req.Bedrooms,
		Bathrooms: req.Bathrooms,
	}
	if req.Page != nil {
		filters.Page = *req.Page
	}
	if req.Limit != nil {
		filters.Limit = *req.Limit
	}

	start := time.Now()
	result, err := h.db.SearchApartments(filters)
	if err != nil {
		log.Printf("Failed to search apartments: %v", err)
		respondError(c, http.StatusInternalServerError, "failed to search apartments")
		return
	}

	// Log search API performance for monitoring
	log.Printf("[Search API] duration_ms=%d total=%d page=%d limit=%d",
		time.Since(start).Milliseconds(), result.Meta.Total, result.Meta.Page, result.Meta.Limit)

	c.JSON(http.StatusOK, result)
}

// GetProjects handles GET /apartments/projects
func (h *ApartmentHandler) GetProjects(c *gin.Context) {
	projects, err := h.db.GetDistinctProjects()
	if err != nil {
		log.Printf("Failed to list projects: %v", err)
		respondError(c, http.StatusInternalServerError, "failed to list projects")
		return
	}
	if projects == nil {
		projects = []string{}
	}
	c.JSON(http.StatusOK, projects)
}

// GetByID handles GET /apartments/:id
func (h *ApartmentHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondError(c, http.StatusBadRequest, "id must be a valid UUID")
		return
	}

	apartment, err := h.db.GetApartmentByID(id)
	if errors.Is(err, database.ErrApartmentNotFound) {
		respondError(c, http.StatusNotFound, "Apartment with ID "+id+" not found")
		return
	}
	if err != nil {
		log.Printf("Failed to get apartment %s: %v", id, err)
		respondError(c, http.StatusInternalServerError, "failed to get apartment")
		return
	}

	c.JSON(http.StatusOK, apartment)
}

// respondError writes the error body shape the web client expects:
// a message plus the HTTP status text and code.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"statusCode": status,
		"message":    message,
		"error":      http.StatusText(status),
	})
}
