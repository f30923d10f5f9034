package mocks

import (
	"context"
	"errors"

	"github.com/lumendata/govcat/pkg/domain"
	kdbcontract "github.com/lumendata/govcat/pkg/domain/contract/db"
	dbmock "github.com/lumendata/govcat/pkg/domain/internal/db/mock"
)

type ContractInterface struct {
	Impl struct {
		Create  func(context.Context, domain.ContractSpec) (string, error)
		Update  func(context.Context, string, domain.ContractDelta) error
		Delete  func(context.Context, string) error
		Get     func(context.Context, string) (domain.Contract, error)
		List    func(context.Context, int, int) ([]domain.ContractSummary, int, error)
		Members func(context.Context) ([]domain.DomainMember, error)
		Domains func(context.Context) ([]domain.DomainCount, error)

		AddSchemaObject    func(context.Context, string, domain.SchemaObjectSpec) (string, error)
		UpdateSchemaObject func(context.Context, string, domain.SchemaObjectDelta) error
		DeleteSchemaObject func(context.Context, string) error

		AddSchemaProperty    func(context.Context, string, domain.SchemaPropertySpec) (string, error)
		UpdateSchemaProperty func(context.Context, string, domain.SchemaPropertyDelta) error
		DeleteSchemaProperty func(context.Context, string) error

		AddQualityRule    func(context.Context, string, domain.QualityRuleSpec) (string, error)
		UpdateQualityRule func(context.Context, string, domain.QualityRuleDelta) error
		DeleteQualityRule func(context.Context, string) error

		AddTeamMember    func(context.Context, string, domain.TeamMemberSpec) (string, error)
		DeleteTeamMember func(context.Context, string) error

		AddRole    func(context.Context, string, domain.RoleSpec) (string, error)
		DeleteRole func(context.Context, string) error

		AddServer    func(context.Context, string, domain.ServerSpec) (string, error)
		DeleteServer func(context.Context, string) error

		AddSlaProperty    func(context.Context, string, domain.SlaPropertySpec) (string, error)
		DeleteSlaProperty func(context.Context, string) error

		AddSupportChannel    func(context.Context, string, domain.SupportChannelSpec) (string, error)
		DeleteSupportChannel func(context.Context, string) error
	}
	Calls struct {
		Create dbmock.CallLog[domain.ContractSpec]
		Update dbmock.CallLog[struct {
			Id    string
			Delta domain.ContractDelta
		}]
		Delete  dbmock.CallLog[string]
		Get     dbmock.CallLog[string]
		List    dbmock.CallLog[struct{ Page, PageSize int }]
		Members dbmock.CallLog[struct{}]
		Domains dbmock.CallLog[struct{}]

		AddSchemaObject dbmock.CallLog[struct {
			ContractId string
			Spec       domain.SchemaObjectSpec
		}]
		UpdateSchemaObject dbmock.CallLog[struct {
			ObjectId string
			Delta    domain.SchemaObjectDelta
		}]
		DeleteSchemaObject dbmock.CallLog[string]

		AddSchemaProperty dbmock.CallLog[struct {
			ObjectId string
			Spec     domain.SchemaPropertySpec
		}]
		UpdateSchemaProperty dbmock.CallLog[struct {
			PropertyId string
			Delta      domain.SchemaPropertyDelta
		}]
		DeleteSchemaProperty dbmock.CallLog[string]

		AddQualityRule dbmock.CallLog[struct {
			ObjectId string
			Spec     domain.QualityRuleSpec
		}]
		UpdateQualityRule dbmock.CallLog[struct {
			RuleId string
			Delta  domain.QualityRuleDelta
		}]
		DeleteQualityRule dbmock.CallLog[string]

		AddTeamMember dbmock.CallLog[struct {
			ContractId string
			Spec       domain.TeamMemberSpec
		}]
		DeleteTeamMember dbmock.CallLog[string]

		AddRole dbmock.CallLog[struct {
			ContractId string
			Spec       domain.RoleSpec
		}]
		DeleteRole dbmock.CallLog[string]

		AddServer dbmock.CallLog[struct {
			ContractId string
			Spec       domain.ServerSpec
		}]
		DeleteServer dbmock.CallLog[string]

		AddSlaProperty dbmock.CallLog[struct {
			ContractId string
			Spec       domain.SlaPropertySpec
		}]
		DeleteSlaProperty dbmock.CallLog[string]

		AddSupportChannel dbmock.CallLog[struct {
			ContractId string
			Spec       domain.SupportChannelSpec
		}]
		DeleteSupportChannel dbmock.CallLog[string]
	}
}

func NewContractInterface() *ContractInterface {
	return &ContractInterface{}
}

var _ kdbcontract.ContractInterface = &ContractInterface{}

func (m *ContractInterface) Create(ctx context.Context, spec domain.ContractSpec) (string, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) Update(ctx context.Context, id string, delta domain.ContractDelta) error {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id    string
		Delta domain.ContractDelta
	}{Id: id, Delta: delta})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, delta)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) Delete(ctx context.Context, id string) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) Get(ctx context.Context, id string) (domain.Contract, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) List(ctx context.Context, page int, pageSize int) ([]domain.ContractSummary, int, error) {
	m.Calls.List = append(m.Calls.List, struct{ Page, PageSize int }{Page: page, PageSize: pageSize})
	if m.Impl.List != nil {
		return m.Impl.List(ctx, page, pageSize)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) Members(ctx context.Context) ([]domain.DomainMember, error) {
	m.Calls.Members = append(m.Calls.Members, struct{}{})
	if m.Impl.Members != nil {
		return m.Impl.Members(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) Domains(ctx context.Context) ([]domain.DomainCount, error) {
	m.Calls.Domains = append(m.Calls.Domains, struct{}{})
	if m.Impl.Domains != nil {
		return m.Impl.Domains(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) AddSchemaObject(ctx context.Context, contractId string, spec domain.SchemaObjectSpec) (string, error) {
	m.Calls.AddSchemaObject = append(m.Calls.AddSchemaObject, struct {
		ContractId string
		Spec       domain.SchemaObjectSpec
	}{ContractId: contractId, Spec: spec})
	if m.Impl.AddSchemaObject != nil {
		return m.Impl.AddSchemaObject(ctx, contractId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) UpdateSchemaObject(ctx context.Context, objectId string, delta domain.SchemaObjectDelta) error {
	m.Calls.UpdateSchemaObject = append(m.Calls.UpdateSchemaObject, struct {
		ObjectId string
		Delta    domain.SchemaObjectDelta
	}{ObjectId: objectId, Delta: delta})
	if m.Impl.UpdateSchemaObject != nil {
		return m.Impl.UpdateSchemaObject(ctx, objectId, delta)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) DeleteSchemaObject(ctx context.Context, objectId string) error {
	m.Calls.DeleteSchemaObject = append(m.Calls.DeleteSchemaObject, objectId)
	if m.Impl.DeleteSchemaObject != nil {
		return m.Impl.DeleteSchemaObject(ctx, objectId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) AddSchemaProperty(ctx context.Context, objectId string, spec domain.SchemaPropertySpec) (string, error) {
	m.Calls.AddSchemaProperty = append(m.Calls.AddSchemaProperty, struct {
		ObjectId string
		Spec     domain.SchemaPropertySpec
	}{ObjectId: objectId, Spec: spec})
	if m.Impl.AddSchemaProperty != nil {
		return m.Impl.AddSchemaProperty(ctx, objectId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) UpdateSchemaProperty(ctx context.Context, propertyId string, delta domain.SchemaPropertyDelta) error {
	m.Calls.UpdateSchemaProperty = append(m.Calls.UpdateSchemaProperty, struct {
		PropertyId string
		Delta      domain.SchemaPropertyDelta
	}{PropertyId: propertyId, Delta: delta})
	if m.Impl.UpdateSchemaProperty != nil {
		return m.Impl.UpdateSchemaProperty(ctx, propertyId, delta)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) DeleteSchemaProperty(ctx context.Context, propertyId string) error {
	m.Calls.DeleteSchemaProperty = append(m.Calls.DeleteSchemaProperty, propertyId)
	if m.Impl.DeleteSchemaProperty != nil {
		return m.Impl.DeleteSchemaProperty(ctx, propertyId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) AddQualityRule(ctx context.Context, objectId string, spec domain.QualityRuleSpec) (string, error) {
	m.Calls.AddQualityRule = append(m.Calls.AddQualityRule, struct {
		ObjectId string
		Spec     domain.QualityRuleSpec
	}{ObjectId: objectId, Spec: spec})
	if m.Impl.AddQualityRule != nil {
		return m.Impl.AddQualityRule(ctx, objectId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) UpdateQualityRule(ctx context.Context, ruleId string, delta domain.QualityRuleDelta) error {
	m.Calls.UpdateQualityRule = append(m.Calls.UpdateQualityRule, struct {
		RuleId string
		Delta  domain.QualityRuleDelta
	}{RuleId: ruleId, Delta: delta})
	if m.Impl.UpdateQualityRule != nil {
		return m.Impl.UpdateQualityRule(ctx, ruleId, delta)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) DeleteQualityRule(ctx context.Context, ruleId string) error {
	m.Calls.DeleteQualityRule = append(m.Calls.DeleteQualityRule, ruleId)
	if m.Impl.DeleteQualityRule != nil {
		return m.Impl.DeleteQualityRule(ctx, ruleId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) AddTeamMember(ctx context.Context, contractId string, spec domain.TeamMemberSpec) (string, error) {
	m.Calls.AddTeamMember = append(m.Calls.AddTeamMember, struct {
		ContractId string
		Spec       domain.TeamMemberSpec
	}{ContractId: contractId, Spec: spec})
	if m.Impl.AddTeamMember != nil {
		return m.Impl.AddTeamMember(ctx, contractId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) DeleteTeamMember(ctx context.Context, memberId string) error {
	m.Calls.DeleteTeamMember = append(m.Calls.DeleteTeamMember, memberId)
	if m.Impl.DeleteTeamMember != nil {
		return m.Impl.DeleteTeamMember(ctx, memberId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) AddRole(ctx context.Context, contractId string, spec domain.RoleSpec) (string, error) {
	m.Calls.AddRole = append(m.Calls.AddRole, struct {
		ContractId string
		Spec       domain.RoleSpec
	}{ContractId: contractId, Spec: spec})
	if m.Impl.AddRole != nil {
		return m.Impl.AddRole(ctx, contractId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) DeleteRole(ctx context.Context, roleId string) error {
	m.Calls.DeleteRole = append(m.Calls.DeleteRole, roleId)
	if m.Impl.DeleteRole != nil {
		return m.Impl.DeleteRole(ctx, roleId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) AddServer(ctx context.Context, contractId string, spec domain.ServerSpec) (string, error) {
	m.Calls.AddServer = append(m.Calls.AddServer, struct {
		ContractId string
		Spec       domain.ServerSpec
	}{ContractId: contractId, Spec: spec})
	if m.Impl.AddServer != nil {
		return m.Impl.AddServer(ctx, contractId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) DeleteServer(ctx context.Context, serverId string) error {
	m.Calls.DeleteServer = append(m.Calls.DeleteServer, serverId)
	if m.Impl.DeleteServer != nil {
		return m.Impl.DeleteServer(ctx, serverId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) AddSlaProperty(ctx context.Context, contractId string, spec domain.SlaPropertySpec) (string, error) {
	m.Calls.AddSlaProperty = append(m.Calls.AddSlaProperty, struct {
		ContractId string
		Spec       domain.SlaPropertySpec
	}{ContractId: contractId, Spec: spec})
	if m.Impl.AddSlaProperty != nil {
		return m.Impl.AddSlaProperty(ctx, contractId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) DeleteSlaProperty(ctx context.Context, slaId string) error {
	m.Calls.DeleteSlaProperty = append(m.Calls.DeleteSlaProperty, slaId)
	if m.Impl.DeleteSlaProperty != nil {
		return m.Impl.DeleteSlaProperty(ctx, slaId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) AddSupportChannel(ctx context.Context, contractId string, spec domain.SupportChannelSpec) (string, error) {
	m.Calls.AddSupportChannel = append(m.Calls.AddSupportChannel, struct {
		ContractId string
		Spec       domain.SupportChannelSpec
	}{ContractId: contractId, Spec: spec})
	if m.Impl.AddSupportChannel != nil {
		return m.Impl.AddSupportChannel(ctx, contractId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ContractInterface) DeleteSupportChannel(ctx context.Context, channelId string) error {
	m.Calls.DeleteSupportChannel = append(m.Calls.DeleteSupportChannel, channelId)
	if m.Impl.DeleteSupportChannel != nil {
		return m.Impl.DeleteSupportChannel(ctx, channelId)
	}
	panic(errors.New("it should not be called"))
}
