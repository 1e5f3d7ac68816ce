package repositories

import (
	"errors"
	"fmt"
	"time"

	"recurrence-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRecurrenceNotFound = errors.New("recurrence not found")
)

type recurrenceRepository struct {
	db *gorm.DB
}

// NewRecurrenceRepository creates a new recurrence repository
func NewRecurrenceRepository(db *gorm.DB) RecurrenceRepositoryInterface {
	return &recurrenceRepository{
		db: db,
	}
}

// Create creates a new recurrence
func (r *recurrenceRepository) Create(recurrence *models.Recurrence) error {
	if err := r.db.Create(recurrence).Error; err != nil {
		return fmt.Errorf("failed to create recurrence: %w", err)
	}
	return nil
}

// GetByID retrieves a recurrence by ID
func (r *recurrenceRepository) GetByID(id uuid.UUID) (*models.Recurrence, error) {
	var recurrence models.Recurrence
	if err := r.db.Where("id = ?", id).First(&recurrence).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecurrenceNotFound
		}
		return nil, fmt.Errorf("failed to get recurrence: %w", err)
	}
	return &recurrence, nil
}

// GetAll retrieves recurrences ordered by basis date.
// ActiveOn keeps recurrences that have not ended before that date.
func (r *recurrenceRepository) GetAll(filters models.RecurrenceFilters) ([]models.Recurrence, error) {
	var recurrences []models.Recurrence

	query := r.db.Model(&models.Recurrence{})

	if filters.Account != "" {
		query = query.Where("account = ?", filters.Account)
	}
	if filters.Origin != "" {
		query = query.Where("origin = ?", filters.Origin)
	}
	if filters.ActiveOn != nil {
		query = query.Where("(end_date IS NULL OR end_date >= ?)", models.DateOf(*filters.ActiveOn))
	}

	if err := query.Order("basis_date ASC").Order("created_at ASC").Find(&recurrences).Error; err != nil {
		return nil, fmt.Errorf("failed to get recurrences: %w", err)
	}

	return recurrences, nil
}

// Update saves every field of the recurrence
func (r *recurrenceRepository) Update(recurrence *models.Recurrence) error {
	result := r.db.Model(recurrence).Select("*").Omit("created_at").Updates(recurrence)
	if result.Error != nil {
		return fmt.Errorf("failed to update recurrence: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecurrenceNotFound
	}
	return nil
}

// UpdateLastMaterialized moves the catch-up marker of a recurrence
func (r *recurrenceRepository) UpdateLastMaterialized(id uuid.UUID, date time.Time) error {
	result := r.db.Model(&models.Recurrence{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"last_materialized_date": models.DateOf(date),
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update last materialized date: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecurrenceNotFound
	}
	return nil
}

// Delete removes a recurrence
func (r *recurrenceRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Recurrence{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete recurrence: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecurrenceNotFound
	}
	return nil
}
