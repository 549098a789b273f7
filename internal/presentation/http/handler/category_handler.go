package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/eximdesk/eximdesk-api/internal/application/service"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/dto/request"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/dto/response"
	"github.com/eximdesk/eximdesk-api/pkg/utils"
)

// CategoryHandler handles category and subcategory HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles listing categories with their subcategories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// Get handles fetching a single category
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category retrieved successfully", category)
}

// Create handles creating a category
func (h *CategoryHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), &service.CreateCategoryInput{
		UserID:        *userID,
		Name:          req.Name,
		SubCategories: req.SubCategories,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// Update handles updating a category
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req request.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), &service.UpdateCategoryInput{
		ID:   id,
		Name: req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// Delete handles deleting a category and its subcategories
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category deleted successfully", nil)
}

// CreateSubCategory handles adding a subcategory to a category
func (h *CategoryHandler) CreateSubCategory(c *gin.Context) {
	var req request.CreateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	categoryID, err := utils.ParseUUID(req.CategoryID)
	if err != nil {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	sub, err := h.categoryService.CreateSubCategory(c.Request.Context(), &service.CreateSubCategoryInput{
		CategoryID: categoryID,
		Name:       req.Name,
		Position:   req.Position,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Subcategory created successfully", sub)
}

// UpdateSubCategory handles updating a subcategory
func (h *CategoryHandler) UpdateSubCategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid subcategory ID")
		return
	}

	var req request.UpdateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sub, err := h.categoryService.UpdateSubCategory(c.Request.Context(), &service.UpdateSubCategoryInput{
		ID:       id,
		Name:     req.Name,
		Position: req.Position,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subcategory updated successfully", sub)
}

// DeleteSubCategory handles deleting a subcategory
func (h *CategoryHandler) DeleteSubCategory(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid subcategory ID")
		return
	}

	if err := h.categoryService.DeleteSubCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Subcategory deleted successfully", nil)
}
