package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/eximdesk/eximdesk-api/internal/domain/entity"
	"github.com/eximdesk/eximdesk-api/internal/domain/enum"
	"github.com/eximdesk/eximdesk-api/internal/domain/repository"
	"github.com/eximdesk/eximdesk-api/pkg/apperror"
	"github.com/eximdesk/eximdesk-api/pkg/pagination"
)

// PartyService handles party master data operations
type PartyService struct {
	partyRepo repository.PartyRepository
}

// NewPartyService creates a new party service
func NewPartyService(partyRepo repository.PartyRepository) *PartyService {
	return &PartyService{partyRepo: partyRepo}
}

// CreatePartyInput represents the create party input
type CreatePartyInput struct {
	UserID    uuid.UUID
	PartyName string
	Email     *string
	Phone     *string
	GstNumber *string
	PartyType enum.PartyType
}

// CreateParty creates a new party
func (s *PartyService) CreateParty(ctx context.Context, input *CreatePartyInput) (*entity.Party, error) {
	if input.PartyType != "" && !input.PartyType.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid party type")
	}

	party := &entity.Party{
		UserID:    input.UserID,
		PartyName: input.PartyName,
		Email:     input.Email,
		Phone:     input.Phone,
		GstNumber: input.GstNumber,
		PartyType: input.PartyType,
	}

	if err := s.partyRepo.Create(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// GetParty retrieves a party by ID
func (s *PartyService) GetParty(ctx context.Context, id uuid.UUID) (*entity.Party, error) {
	party, err := s.partyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, apperror.NewNotFoundError("Party")
	}
	return party, nil
}

// ListParties lists parties with optional search and type filter
func (s *PartyService) ListParties(ctx context.Context, params *repository.PartyFilterParams) (*pagination.Result[entity.Party], error) {
	parties, total, err := s.partyRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(params.Pagination.Page, params.Pagination.Size, total)
	return pagination.NewResult(parties, pag), nil
}

// UpdatePartyInput represents the update party input
type UpdatePartyInput struct {
	ID        uuid.UUID
	PartyName string
	Email     *string
	Phone     *string
	GstNumber *string
	PartyType enum.PartyType
}

// UpdateParty updates a party
func (s *PartyService) UpdateParty(ctx context.Context, input *UpdatePartyInput) (*entity.Party, error) {
	party, err := s.partyRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, apperror.NewNotFoundError("Party")
	}

	if input.PartyName != "" {
		party.PartyName = input.PartyName
	}
	if input.Email != nil {
		party.Email = input.Email
	}
	if input.Phone != nil {
		party.Phone = input.Phone
	}
	if input.GstNumber != nil {
		party.GstNumber = input.GstNumber
	}
	if input.PartyType != "" {
		if !input.PartyType.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid party type")
		}
		party.PartyType = input.PartyType
	}

	if err := s.partyRepo.Update(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// DeleteParty deletes a party
func (s *PartyService) DeleteParty(ctx context.Context, id uuid.UUID) error {
	party, err := s.partyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if party == nil {
		return apperror.NewNotFoundError("Party")
	}

	return s.partyRepo.Delete(ctx, id)
}
