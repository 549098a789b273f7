package request

// CreatePartyRequest represents the create party request body
type CreatePartyRequest struct {
	PartyName string  `json:"partyName" binding:"required"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	GstNumber *string `json:"gstNumber"`
	PartyType string  `json:"partyType"`
}

// UpdatePartyRequest represents the update party request body
type UpdatePartyRequest struct {
	PartyName string  `json:"partyName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	GstNumber *string `json:"gstNumber"`
	PartyType string  `json:"partyType"`
}

// CreateCategoryRequest represents the create category request body
type CreateCategoryRequest struct {
	Name          string   `json:"name" binding:"required"`
	SubCategories []string `json:"subCategories"`
}

// UpdateCategoryRequest represents the update category request body
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateSubCategoryRequest represents the create subcategory request body
type CreateSubCategoryRequest struct {
	CategoryID string `json:"categoryId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Position   int    `json:"position"`
}

// UpdateSubCategoryRequest represents the update subcategory request body
type UpdateSubCategoryRequest struct {
	Name     string `json:"name"`
	Position *int   `json:"position"`
}

// CreateItemRequest represents the create item request body
type CreateItemRequest struct {
	CategoryID      string  `json:"categoryId" binding:"required"`
	SubCategoryID   *string `json:"subCategoryId"`
	ItemName        string  `json:"itemName" binding:"required"`
	SizeInch        string  `json:"sizeInch"`
	SizeMM          string  `json:"sizeMM"`
	ItemKg          float64 `json:"itemKg"`
	WeightPerPL     float64 `json:"weightPerPL"`
	WeightUnit      string  `json:"weightUnit"`
	TotalPL         float64 `json:"totalPL"`
	DozenWeight     float64 `json:"dozenWeight"`
	LowStockWarning int     `json:"lowStockWarning"`
}

// UpdateItemRequest represents the update item request body
type UpdateItemRequest struct {
	CategoryID      *string  `json:"categoryId"`
	SubCategoryID   *string  `json:"subCategoryId"`
	ItemName        string   `json:"itemName"`
	SizeInch        *string  `json:"sizeInch"`
	SizeMM          *string  `json:"sizeMM"`
	ItemKg          *float64 `json:"itemKg"`
	WeightPerPL     *float64 `json:"weightPerPL"`
	WeightUnit      *string  `json:"weightUnit"`
	TotalPL         *float64 `json:"totalPL"`
	DozenWeight     *float64 `json:"dozenWeight"`
	LowStockWarning *int     `json:"lowStockWarning"`
}
