package database

import (
	"errors"
	"fmt"

	"apartment-portal/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrApartmentNotFound is returned when a lookup matches no record.
	ErrApartmentNotFound = errors.New("apartment not found")
)

// DuplicateUnitError is returned when an insert violates the unit number
// uniqueness constraint. It names the offending unit number.
type DuplicateUnitError struct {
	UnitNumber string
}

func (e *DuplicateUnitError) Error() string {
	return fmt.Sprintf("apartment with unit number %s already exists", e.UnitNumber)
}

// CreateApartment inserts a new apartment. The ID and timestamps are
// assigned server-side. A duplicate unit number yields *DuplicateUnitError.
func (gdb *GormDB) CreateApartment(a *models.Apartment) error {
	err := gdb.db.Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateUnitError{UnitNumber: a.UnitNumber}
	}
	return err
}

// GetApartmentByID retrieves an apartment by ID
func (gdb *GormDB) GetApartmentByID(id string) (*models.Apartment, error) {
	var apartment models.Apartment
	err := gdb.db.Where("id = ?", id).First(&apartment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApartmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &apartment, nil
}

// GetDistinctProjects returns the distinct project names represented among
// apartments, sorted ascending.
func (gdb *GormDB) GetDistinctProjects() ([]string, error) {
	var projects []string
	err := gdb.db.Model(&models.Apartment{}).
		Distinct("project").
		Order("project ASC").
		Pluck("project", &projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// CountApartments returns the total number of apartments.
func (gdb *GormDB) CountApartments() (int64, error) {
	var count int64
	err := gdb.db.Model(&models.Apartment{}).Count(&count).Error
	return count, err
}
