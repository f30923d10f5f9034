package db

import (
	"context"

	"github.com/lumendata/govcat/pkg/domain"
)

type ContractInterface interface {
	// Create a contract, tags included, in a single transaction.
	//
	// args:
	//     - ctx: context
	//     - spec: validated input; kind/apiVersion are defaulted in place
	//
	// returns:
	//     - string: id of the new contract
	//     - error: domain.ErrInvalid on bad input
	Create(ctx context.Context, spec domain.ContractSpec) (string, error)

	// Update applies a partial delta to a contract's own row.
	//
	// Fields left nil in the delta keep their stored value. When
	// delta.Tags is set, the tag list is replaced inside the same
	// transaction as the row update.
	//
	// returns:
	//     - error: domain.ErrMissing when no contract has the id,
	//       domain.ErrInvalid on bad input
	Update(ctx context.Context, id string, delta domain.ContractDelta) error

	// Delete removes a contract and, through the schema's cascade,
	// all of its children. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id string) error

	// Get loads the full contract aggregate.
	//
	// The linked product reference is resolved here: nil when the
	// contract's dataProduct field matches no product name or id.
	//
	// returns:
	//     - domain.Contract
	//     - error: domain.ErrMissing when no contract has the id
	Get(ctx context.Context, id string) (domain.Contract, error)

	// List returns one page of summaries, newest update first,
	// and the total number of contracts.
	List(ctx context.Context, page int, pageSize int) ([]domain.ContractSummary, int, error)

	// Members returns every team member of every contract, joined
	// with the owning contract's name and domain.
	Members(ctx context.Context) ([]domain.DomainMember, error)

	// Domains counts contracts per domain value.
	Domains(ctx context.Context) ([]domain.DomainCount, error)

	AddSchemaObject(ctx context.Context, contractId string, spec domain.SchemaObjectSpec) (string, error)
	UpdateSchemaObject(ctx context.Context, objectId string, delta domain.SchemaObjectDelta) error
	DeleteSchemaObject(ctx context.Context, objectId string) error

	AddSchemaProperty(ctx context.Context, objectId string, spec domain.SchemaPropertySpec) (string, error)
	UpdateSchemaProperty(ctx context.Context, propertyId string, delta domain.SchemaPropertyDelta) error
	DeleteSchemaProperty(ctx context.Context, propertyId string) error

	AddQualityRule(ctx context.Context, objectId string, spec domain.QualityRuleSpec) (string, error)
	UpdateQualityRule(ctx context.Context, ruleId string, delta domain.QualityRuleDelta) error
	DeleteQualityRule(ctx context.Context, ruleId string) error

	AddTeamMember(ctx context.Context, contractId string, spec domain.TeamMemberSpec) (string, error)
	DeleteTeamMember(ctx context.Context, memberId string) error

	AddRole(ctx context.Context, contractId string, spec domain.RoleSpec) (string, error)
	DeleteRole(ctx context.Context, roleId string) error

	AddServer(ctx context.Context, contractId string, spec domain.ServerSpec) (string, error)
	DeleteServer(ctx context.Context, serverId string) error

	AddSlaProperty(ctx context.Context, contractId string, spec domain.SlaPropertySpec) (string, error)
	DeleteSlaProperty(ctx context.Context, slaId string) error

	AddSupportChannel(ctx context.Context, contractId string, spec domain.SupportChannelSpec) (string, error)
	DeleteSupportChannel(ctx context.Context, channelId string) error
}
