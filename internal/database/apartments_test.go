package database

import (
	"errors"
	"testing"
	"time"

	"apartment-portal/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateApartment(t *testing.T) {
	gdb := openTestDB(t)

	a := models.Apartment{
		UnitNumber:  "A-101",
		Name:        "Garden Apartment",
		Project:     "O West",
		Description: "Ground floor with garden",
		Price:       4500000,
		Bedrooms:    3,
		Bathrooms:   2,
		Area:        180,
		Images:      models.URLList{"https://example.com/a.jpg"},
	}
	require.NoError(t, gdb.CreateApartment(&a))

	assert.NotEmpty(t, a.ID)
	_, err := uuid.Parse(a.ID)
	assert.NoError(t, err, "generated id must be a UUID")
	assert.False(t, a.CreatedAt.IsZero())
	assert.False(t, a.UpdatedAt.IsZero())

	got, err := gdb.GetApartmentByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A-101", got.UnitNumber)
	assert.Equal(t, models.URLList{"https://example.com/a.jpg"}, got.Images)
}

func TestCreateApartment_EmptyImages(t *testing.T) {
	gdb := openTestDB(t)

	a := models.Apartment{
		UnitNumber:  "B-202",
		Name:        "Studio",
		Project:     "Villette",
		Description: "Compact studio",
		Price:       1850000,
		Bedrooms:    1,
		Bathrooms:   1,
		Area:        65,
	}
	require.NoError(t, gdb.CreateApartment(&a))

	got, err := gdb.GetApartmentByID(a.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Images)
	assert.Empty(t, got.Images)
}

func TestCreateApartment_DuplicateUnitNumber(t *testing.T) {
	gdb := openTestDB(t)

	first := mustCreate(t, gdb, models.Apartment{
		UnitNumber: "A-101", Name: "First", Project: "O West",
		Price: 1000000, Bedrooms: 2, Bathrooms: 1, Area: 100,
	}, fixtureBase)

	second := models.Apartment{
		UnitNumber: "A-101", Name: "Second", Project: "New Giza",
		Description: "dup", Price: 2000000, Bedrooms: 3, Bathrooms: 2, Area: 150,
	}
	err := gdb.CreateApartment(&second)
	require.Error(t, err)

	var dup *DuplicateUnitError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "A-101", dup.UnitNumber)
	assert.Contains(t, err.Error(), "A-101")

	// The first record must remain unmodified and retrievable.
	got, err := gdb.GetApartmentByID(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Name)
	assert.Equal(t, "O West", got.Project)
}

func TestGetApartmentByID_NotFound(t *testing.T) {
	gdb := openTestDB(t)

	_, err := gdb.GetApartmentByID(uuid.NewString())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrApartmentNotFound)
}

func TestGetDistinctProjects(t *testing.T) {
	gdb := openTestDB(t)

	now := fixtureBase
	mustCreate(t, gdb, models.Apartment{UnitNumber: "A-1", Name: "a", Project: "Villette", Price: 1, Bedrooms: 1, Bathrooms: 1, Area: 1}, now)
	mustCreate(t, gdb, models.Apartment{UnitNumber: "A-2", Name: "b", Project: "O West", Price: 1, Bedrooms: 1, Bathrooms: 1, Area: 1}, now.Add(time.Second))
	mustCreate(t, gdb, models.Apartment{UnitNumber: "A-3", Name: "c", Project: "O West", Price: 1, Bedrooms: 1, Bathrooms: 1, Area: 1}, now.Add(2*time.Second))
	mustCreate(t, gdb, models.Apartment{UnitNumber: "A-4", Name: "d", Project: "Il Bosco", Price: 1, Bedrooms: 1, Bathrooms: 1, Area: 1}, now.Add(3*time.Second))

	projects, err := gdb.GetDistinctProjects()
	require.NoError(t, err)
	assert.Equal(t, []string{"Il Bosco", "O West", "Villette"}, projects)
}

func TestGetDistinctProjects_Empty(t *testing.T) {
	gdb := openTestDB(t)

	projects, err := gdb.GetDistinctProjects()
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestSeedApartments(t *testing.T) {
	gdb := openTestDB(t)

	require.NoError(t, gdb.SeedApartments())

	count, err := gdb.CountApartments()
	require.NoError(t, err)
	assert.Equal(t, int64(25), count)

	// Seeding again must not duplicate data.
	require.NoError(t, gdb.SeedApartments())
	count, err = gdb.CountApartments()
	require.NoError(t, err)
	assert.Equal(t, int64(25), count)
}

func TestSeedApartments_DuplicateErrorSurfaced(t *testing.T) {
	gdb := openTestDB(t)

	require.NoError(t, gdb.SeedApartments())

	a := models.Apartment{
		UnitNumber: "A-101", Name: "Clash", Project: "O West",
		Description: "same unit number as seed data",
		Price:       1, Bedrooms: 1, Bathrooms: 1, Area: 1,
	}
	err := gdb.CreateApartment(&a)
	var dup *DuplicateUnitError
	assert.True(t, errors.As(err, &dup))
}
