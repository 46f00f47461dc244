package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
	coreport "github.com/southernMD/railway-reservation/internal/domain/port/core"
	"github.com/southernMD/railway-reservation/internal/infrastructure/adapter/model"
)

// TicketRepository implements ticket persistence using GORM
type TicketRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTicketRepository creates a new TicketRepository instance
func NewTicketRepository(db *gorm.DB, logger coreport.Logger) *TicketRepository {
	return &TicketRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create persists a new ticket and assigns its ID
func (r *TicketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	m := &model.Ticket{
		TicketNo:       ticket.TicketNo,
		SeatLockID:     ticket.SeatLockID,
		WaitingOrderID: ticket.WaitingOrderID,
		CreatedAt:      ticket.CreatedAt,
		UpdatedAt:      ticket.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		r.logger.Error("Failed to insert ticket", map[string]any{
			"ticket_no": ticket.TicketNo,
			"error":     err.Error(),
		})
		return wrapStoreError(r.errorClassifier, err)
	}
	ticket.ID = m.ID
	return nil
}
