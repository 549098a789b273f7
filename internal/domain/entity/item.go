package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is an item category master record. Subcategories are owned by the
// category and kept in position order.
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User          User          `gorm:"foreignKey:UserID" json:"-"`
	SubCategories []SubCategory `gorm:"foreignKey:CategoryID" json:"subCategories,omitempty"`
	Items         []Item        `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// SubCategory belongs to exactly one category.
type SubCategory struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID uuid.UUID      `gorm:"type:uuid;not null;index" json:"categoryId"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Position   int            `gorm:"default:0" json:"position"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
	Items    []Item   `gorm:"foreignKey:SubCategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new subcategory
func (sc *SubCategory) BeforeCreate(tx *gorm.DB) error {
	if sc.ID == uuid.Nil {
		sc.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SubCategory model
func (SubCategory) TableName() string {
	return "sub_categories"
}

// Item is a goods master record. Category and subcategory references are
// returned as nested objects.
type Item struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	CategoryID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"categoryId"`
	SubCategoryID *uuid.UUID `gorm:"type:uuid;index" json:"subCategoryId,omitempty"`

	ItemName        string  `gorm:"size:255;not null" json:"itemName"`
	SizeInch        string  `gorm:"size:50" json:"sizeInch"`
	SizeMM          string  `gorm:"size:50" json:"sizeMM"`
	ItemKg          float64 `gorm:"type:decimal(10,3);default:0" json:"itemKg"`
	WeightPerPL     float64 `gorm:"type:decimal(10,3);default:0" json:"weightPerPL"`
	WeightUnit      string  `gorm:"size:10;default:'Kg'" json:"weightUnit"`
	TotalPL         float64 `gorm:"type:decimal(10,2);default:0" json:"totalPL"`
	DozenWeight     float64 `gorm:"type:decimal(10,3);default:0" json:"dozenWeight"`
	LowStockWarning int     `gorm:"default:0" json:"lowStockWarning"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User        User         `gorm:"foreignKey:UserID" json:"-"`
	Category    *Category    `gorm:"foreignKey:CategoryID" json:"itemCategory,omitempty"`
	SubCategory *SubCategory `gorm:"foreignKey:SubCategoryID" json:"itemSubCategory,omitempty"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
