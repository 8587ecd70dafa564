package usecase

import (
	"context"
	"fmt"

	"cinema-control/internal/data/entity"
	"cinema-control/internal/data/repository"
	"cinema-control/internal/dto/response"

	"go.uber.org/zap"
)

type TicketService interface {
	// FindAllForUser lists the calling user's tickets, lowest seat first.
	FindAllForUser(ctx context.Context) ([]response.TicketResponse, error)
}

type ticketService struct {
	repo   *repository.Repository
	tenant TenantProvider
	log    *zap.Logger
}

func NewTicketService(repo *repository.Repository, tenant TenantProvider, log *zap.Logger) TicketService {
	return &ticketService{
		repo:   repo,
		tenant: tenant,
		log:    log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) FindAllForUser(ctx context.Context) ([]response.TicketResponse, error) {
	userID, ok := s.tenant.CurrentUserID(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: missing user identity", entity.ErrValidation)
	}

	tickets, err := s.repo.Ticket.FindAllForUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list tickets", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, entity.ErrInternal
	}

	responses := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = response.TicketToResponse(ticket)
	}
	return responses, nil
}
