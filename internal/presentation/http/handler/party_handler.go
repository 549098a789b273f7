package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/eximdesk/eximdesk-api/internal/application/service"
	"github.com/eximdesk/eximdesk-api/internal/domain/enum"
	"github.com/eximdesk/eximdesk-api/internal/domain/repository"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/dto/request"
	"github.com/eximdesk/eximdesk-api/internal/presentation/http/dto/response"
	"github.com/eximdesk/eximdesk-api/pkg/pagination"
	"github.com/eximdesk/eximdesk-api/pkg/utils"
)

// PartyHandler handles party master data HTTP requests
type PartyHandler struct {
	partyService *service.PartyService
}

// NewPartyHandler creates a new party handler
func NewPartyHandler(partyService *service.PartyService) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

// List handles listing parties
// @Summary List Parties
// @Tags parties
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /parties [get]
func (h *PartyHandler) List(c *gin.Context) {
	params := pagination.DefaultParams()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	filter := &repository.PartyFilterParams{
		Pagination: params,
		Search:     c.Query("search"),
	}
	if t := c.Query("type"); t != "" {
		partyType := enum.PartyType(t)
		if !partyType.IsValid() {
			response.BadRequest(c, "Invalid party type")
			return
		}
		filter.Type = &partyType
	}

	result, err := h.partyService.ListParties(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Parties retrieved successfully", result)
}

// Get handles fetching a single party
func (h *PartyHandler) Get(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid party ID")
		return
	}

	party, err := h.partyService.GetParty(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Party retrieved successfully", party)
}

// Create handles creating a party
func (h *PartyHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), &service.CreatePartyInput{
		UserID:    *userID,
		PartyName: req.PartyName,
		Email:     req.Email,
		Phone:     req.Phone,
		GstNumber: req.GstNumber,
		PartyType: enum.PartyType(req.PartyType),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Party created successfully", party)
}

// Update handles updating a party
func (h *PartyHandler) Update(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid party ID")
		return
	}

	var req request.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), &service.UpdatePartyInput{
		ID:        id,
		PartyName: req.PartyName,
		Email:     req.Email,
		Phone:     req.Phone,
		GstNumber: req.GstNumber,
		PartyType: enum.PartyType(req.PartyType),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Party updated successfully", party)
}

// Delete handles deleting a party
func (h *PartyHandler) Delete(c *gin.Context) {
	id, err := utils.ParseUUID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid party ID")
		return
	}

	if err := h.partyService.DeleteParty(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Party deleted successfully", nil)
}
