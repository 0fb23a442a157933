package database

import (
	"strings"

	"apartment-portal/internal/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// ApartmentFilters holds the search parameters for the listing endpoint.
// Nil/empty fields contribute no predicate.
type ApartmentFilters struct {
	Search    string
	Project   string
	MinPrice  *float64
	MaxPrice  *float64
	Bedrooms  *int
	Bathrooms *int
	Page      int
	Limit     int
}

// apply adds the filter predicates to a query. All present predicates are
// combined with AND; the free-text predicate is an OR group over name,
// unit number and project.
//
// Matching is case-insensitive via LOWER(...) LIKE so the same SQL works on
// both PostgreSQL and SQLite. The raw term is not escaped: literal % and _
// in user input act as wildcards, mirroring the behavior of the original
// ILIKE-based search.
func (f ApartmentFilters) apply(q *gorm.DB) *gorm.DB {
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(unit_number) LIKE ? OR LOWER(project) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if f.Project != "" {
		// Pattern match against the full value: case-insensitive equality
		// unless the caller passes partial text with wildcards.
		q = q.Where("LOWER(project) LIKE ?", strings.ToLower(f.Project))
	}

	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	if f.Bedrooms != nil {
		q = q.Where("bedrooms = ?", *f.Bedrooms)
	}
	if f.Bathrooms != nil {
		q = q.Where("bathrooms = ?", *f.Bathrooms)
	}

	return q
}

// SearchApartments runs the count query and the page-fetch query against the
// same predicate set concurrently, then derives page metadata.
func (gdb *GormDB) SearchApartments(f ApartmentFilters) (*models.PaginatedApartments, error) {
	page := f.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := f.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	offset := (page - 1) * limit

	var (
		total      int64
		apartments []models.Apartment
	)

	// The two queries are independent; each goroutine builds its own
	// statement so no gorm.DB chain is shared across goroutines.
	var g errgroup.Group
	g.Go(func() error {
		return f.apply(gdb.db.Model(&models.Apartment{})).Count(&total).Error
	})
	g.Go(func() error {
		return f.apply(gdb.db.Model(&models.Apartment{})).
			Order("created_at ASC").
			Limit(limit).
			Offset(offset).
			Find(&apartments).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	if apartments == nil {
		apartments = []models.Apartment{}
	}

	return &models.PaginatedApartments{
		Data: apartments,
		Meta: models.PageMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}, nil
}
