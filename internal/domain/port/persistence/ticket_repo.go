package persistence

import (
	"context"

	"github.com/southernMD/railway-reservation/internal/domain/entity"
)

// TicketRepository records tickets issued for fulfilled waiting orders
type TicketRepository interface {
	// Create persists a new ticket and assigns its ID
	Create(ctx context.Context, ticket *entity.Ticket) error
}
