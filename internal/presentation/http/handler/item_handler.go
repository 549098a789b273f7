package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eximdesk/eximdesk-api/internal/application/service"
	"github.com/eximdesk/eximdesk-api/internal/domain/repository"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/dto/request"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/dto/response"
	"github.com/eximdesk/eximdesk-api/pkg/pagination"
	"github.com/eximdesk/eximdesk-api/pkg/utils"
)

// ItemHandler handles item master data HTTP requests
type ItemHandler struct {
	itemService *service.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List handles listing items
func (h *ItemHandler) List(c *gin.Context) {
	params := pagination.DefaultParams()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	filter := &repository.ItemFilterParams{
		Pagination: params,
		Search:     c.Query("search"),
	}
	if cid := c.Query("categoryId"); cid != "" {
		categoryID, err := utils.ParseUUID(cid)
		if err != nil {
			response.BadRequest(c, "Invalid category ID")
			return
		}
		filter.CategoryID = &categoryID
	}

	result, err := h.itemService.ListItems(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Items retrieved successfully", result)
}

// Get handles fetching a single item
func (h *ItemHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Create handles creating an item
func (h *ItemHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	categoryID, err := utils.ParseUUID(req.CategoryID)
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var subCategoryID *uuid.UUID
	if req.SubCategoryID != nil && *req.SubCategoryID != "" {
		id, err := utils.ParseUUID(*req.SubCategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid subcategory ID")
			return
		}
		subCategoryID = &id
	}

	item, err := h.itemService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		UserID:          *userID,
		CategoryID:      categoryID,
		SubCategoryID:   subCategoryID,
		ItemName:        req.ItemName,
		SizeInch:        req.SizeInch,
		SizeMM:          req.SizeMM,
		ItemKg:          req.ItemKg,
		WeightPerPL:     req.WeightPerPL,
		WeightUnit:      req.WeightUnit,
		TotalPL:         req.TotalPL,
		DozenWeight:     req.DozenWeight,
		LowStockWarning: req.LowStockWarning,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// Update handles updating an item
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateItemInput{
		ID:              id,
		ItemName:        req.ItemName,
		SizeInch:        req.SizeInch,
		SizeMM:          req.SizeMM,
		ItemKg:          req.ItemKg,
		WeightPerPL:     req.WeightPerPL,
		WeightUnit:      req.WeightUnit,
		TotalPL:         req.TotalPL,
		DozenWeight:     req.DozenWeight,
		LowStockWarning: req.LowStockWarning,
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		categoryID, err := utils.ParseUUID(*req.CategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category ID")
			return
		}
		input.CategoryID = &categoryID
	}
	if req.SubCategoryID != nil && *req.SubCategoryID != "" {
		subCategoryID, err := utils.ParseUUID(*req.SubCategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid subcategory ID")
			return
		}
		input.SubCategoryID = &subCategoryID
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// Delete handles deleting an item
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item deleted successfully", nil)
}
