package lookup

import (
	"gorm.io/gorm"
)

type LookupServiceAPI interface {
	GetAllCorElements() ([]CorElement, error)
	GetCorElementByNumber(number int) (*CorElement, error)
	GetFieldTypes() []FieldTypeInfo
	GetFrequencies() []FrequencyInfo
	SeedCorElements() error
}

type LookupService struct {
	DB *gorm.DB
}

func NewLookupService(db *gorm.DB) *LookupService {
	return &LookupService{DB: db}
}

func (ls *LookupService) GetAllCorElements() ([]CorElement, error) {
	var elements []CorElement
	result := ls.DB.Order("number ASC").Find(&elements)
	if result.Error != nil {
		return nil, result.Error
	}
	return elements, nil
}

func (ls *LookupService) GetCorElementByNumber(number int) (*CorElement, error) {
	var element CorElement
	result := ls.DB.
		Where("number = ?", number).
		First(&element)

	if result.Error != nil {
		return nil, result.Error
	}
	return &element, nil
}

// SeedCorElements inserts the standard audit elements, skipping numbers that
// already exist. Safe to run on every boot.
func (ls *LookupService) SeedCorElements() error {
	for _, el := range corElementSeeds() {
		var count int64
		if err := ls.DB.Model(&CorElement{}).Where("number = ?", el.Number).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := ls.DB.Create(&el).Error; err != nil {
			return err
		}
	}
	return nil
}
