package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/lapizzeria/orders-api/models"
)

// FieldService manages the operator-defined dynamic fields offered on the
// order entry form.
type FieldService struct {
	db *gorm.DB
}

// NewFieldService creates a FieldService on the given database handle.
func NewFieldService(db *gorm.DB) *FieldService {
	return &FieldService{db: db}
}

// CreateField creates a new field config, active by default.
func (s *FieldService) CreateField(name string) (*models.FieldConfig, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("field name is required")
	}

	field := models.FieldConfig{Name: name, Active: true}
	if err := s.db.Create(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

// getField loads a field config or reports it missing.
func (s *FieldService) getField(id uint) (*models.FieldConfig, error) {
	var field models.FieldConfig
	if err := s.db.First(&field, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "field", ID: id}
		}
		return nil, err
	}
	return &field, nil
}

// ToggleField flips the active flag of a field config.
func (s *FieldService) ToggleField(id uint) (*models.FieldConfig, error) {
	field, err := s.getField(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(field).Update("active", !field.Active).Error; err != nil {
		return nil, err
	}
	return field, nil
}

// AddOption adds a selectable option to an existing field config.
func (s *FieldService) AddOption(fieldID uint, name string) (*models.FieldOption, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("option name is required")
	}

	if _, err := s.getField(fieldID); err != nil {
		return nil, err
	}

	option := models.FieldOption{FieldConfigID: fieldID, Name: name}
	if err := s.db.Create(&option).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

// ActiveFields returns the active field configs with their options, in the
// order they were created, for form construction.
func (s *FieldService) ActiveFields() ([]models.FieldConfig, error) {
	var fields []models.FieldConfig
	err := s.db.
		Where("active = ?", true).
		Preload("Options").
		Order("id asc").
		Find(&fields).Error
	return fields, err
}

// AllFields returns every field config with its options, for the admin
// listing.
func (s *FieldService) AllFields() ([]models.FieldConfig, error) {
	var fields []models.FieldConfig
	err := s.db.
		Preload("Options").
		Order("id asc").
		Find(&fields).Error
	return fields, err
}

// DeleteField removes a field config and all of its options in one
// transaction. The schema carries an ON DELETE CASCADE constraint as well,
// but the explicit delete keeps the no-orphan invariant on engines that
// skip foreign key enforcement.
func (s *FieldService) DeleteField(id uint) error {
	if _, err := s.getField(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("field_config_id = ?", id).Delete(&models.FieldOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.FieldConfig{}, id).Error
	})
}
