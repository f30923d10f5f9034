package db

import (
	"context"

	"github.com/lumendata/govcat/pkg/domain"
)

type ProductInterface interface {
	// Create a product, tags included, in a single transaction.
	//
	// returns:
	//     - string: id of the new product
	//     - error: domain.ErrInvalid on bad input
	Create(ctx context.Context, spec domain.ProductSpec) (string, error)

	// Update applies a partial delta to a product's own row. When
	// delta.Tags is set, the tag list is replaced inside the same
	// transaction as the row update.
	//
	// returns:
	//     - error: domain.ErrMissing when no product has the id,
	//       domain.ErrInvalid on bad input
	Update(ctx context.Context, id string, delta domain.ProductDelta) error

	// Delete removes a product and, through the schema's cascade, all
	// of its children. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id string) error

	// Get loads the full product aggregate.
	//
	// Port contract names are resolved here: nil when a port's
	// contractId points at no existing contract, the port row itself
	// still comes back.
	//
	// returns:
	//     - domain.Product
	//     - error: domain.ErrMissing when no product has the id
	Get(ctx context.Context, id string) (domain.Product, error)

	// List returns one page of summaries, newest update first,
	// and the total number of products.
	List(ctx context.Context, page int, pageSize int) ([]domain.ProductSummary, int, error)

	// Members returns every team member of every product, joined
	// with the owning product's name and domain.
	Members(ctx context.Context) ([]domain.DomainMember, error)

	// Domains counts products per domain value.
	Domains(ctx context.Context) ([]domain.DomainCount, error)

	AddInputPort(ctx context.Context, productId string, spec domain.InputPortSpec) (string, error)
	DeleteInputPort(ctx context.Context, portId string) error

	AddOutputPort(ctx context.Context, productId string, spec domain.OutputPortSpec) (string, error)
	DeleteOutputPort(ctx context.Context, portId string) error

	AddManagementPort(ctx context.Context, productId string, spec domain.ManagementPortSpec) (string, error)
	DeleteManagementPort(ctx context.Context, portId string) error

	AddTeamMember(ctx context.Context, productId string, spec domain.TeamMemberSpec) (string, error)
	DeleteTeamMember(ctx context.Context, memberId string) error

	AddSupportChannel(ctx context.Context, productId string, spec domain.SupportChannelSpec) (string, error)
	DeleteSupportChannel(ctx context.Context, channelId string) error
}
