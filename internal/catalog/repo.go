package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DustyWalks/walksandlawns-app2025/pkg/db/models"
)

// Repository exposes catalog persistence for service types and add-ons.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListServiceTypes returns the full catalog ordered by name.
func (r *Repository) ListServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	var serviceTypes []models.ServiceType
	if err := r.db.WithContext(ctx).Order("name asc").Find(&serviceTypes).Error; err != nil {
		return nil, err
	}
	return serviceTypes, nil
}

// GetServiceType loads one service type; (nil, nil) on miss.
func (r *Repository) GetServiceType(ctx context.Context, id uuid.UUID) (*models.ServiceType, error) {
	var serviceType models.ServiceType
	err := r.db.WithContext(ctx).First(&serviceType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &serviceType, nil
}

// FindServiceTypeByName looks up a service type by exact name; (nil, nil) on miss.
func (r *Repository) FindServiceTypeByName(ctx context.Context, name string) (*models.ServiceType, error) {
	var serviceType models.ServiceType
	err := r.db.WithContext(ctx).First(&serviceType, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &serviceType, nil
}

// CreateServiceType inserts a catalog service.
func (r *Repository) CreateServiceType(ctx context.Context, dto CreateServiceTypeDTO) (*models.ServiceType, error) {
	serviceType := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(serviceType).Error; err != nil {
		return nil, err
	}
	return serviceType, nil
}

// ListAddOns returns all purchasable add-ons ordered by name.
func (r *Repository) ListAddOns(ctx context.Context) ([]models.AddOn, error) {
	var addOns []models.AddOn
	if err := r.db.WithContext(ctx).Order("name asc").Find(&addOns).Error; err != nil {
		return nil, err
	}
	return addOns, nil
}

// GetAddOn loads one add-on; (nil, nil) on miss.
func (r *Repository) GetAddOn(ctx context.Context, id uuid.UUID) (*models.AddOn, error) {
	var addOn models.AddOn
	err := r.db.WithContext(ctx).First(&addOn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &addOn, nil
}

// FindAddOnByName looks up an add-on by exact name; (nil, nil) on miss.
func (r *Repository) FindAddOnByName(ctx context.Context, name string) (*models.AddOn, error) {
	var addOn models.AddOn
	err := r.db.WithContext(ctx).First(&addOn, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &addOn, nil
}

// CreateAddOn inserts an add-on. The exclusive-pricing invariant is checked
// by the model hook before the row is written.
func (r *Repository) CreateAddOn(ctx context.Context, dto CreateAddOnDTO) (*models.AddOn, error) {
	addOn := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(addOn).Error; err != nil {
		return nil, err
	}
	return addOn, nil
}

// UpdateAddOn applies a partial update and returns the refreshed row;
// (nil, nil) when the add-on does not exist. The merged result must still
// satisfy the exclusive-pricing invariant.
func (r *Repository) UpdateAddOn(ctx context.Context, id uuid.UUID, dto UpdateAddOnDTO) (*models.AddOn, error) {
	addOn, err := r.GetAddOn(ctx, id)
	if err != nil || addOn == nil {
		return nil, err
	}

	if dto.Name != nil {
		addOn.Name = *dto.Name
	}
	if dto.Description != nil {
		addOn.Description = dto.Description
	}
	if dto.PriceMonthly != nil {
		addOn.PriceMonthly = decimalToNull(dto.PriceMonthly)
		addOn.PriceOneTime.Valid = false
	}
	if dto.PriceOneTime != nil {
		addOn.PriceOneTime = decimalToNull(dto.PriceOneTime)
		addOn.PriceMonthly.Valid = false
	}
	if dto.IsRecurring != nil {
		addOn.IsRecurring = *dto.IsRecurring
	}

	if err := addOn.Validate(); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&models.AddOn{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":           addOn.Name,
			"description":    addOn.Description,
			"price_monthly":  addOn.PriceMonthly,
			"price_one_time": addOn.PriceOneTime,
			"is_recurring":   addOn.IsRecurring,
		}).Error; err != nil {
		return nil, err
	}
	return r.GetAddOn(ctx, id)
}

// DeleteAddOn removes the add-on row. Catalog entries are hard deleted;
// purchase history lives in user_add_ons and is unaffected.
func (r *Repository) DeleteAddOn(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AddOn{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
