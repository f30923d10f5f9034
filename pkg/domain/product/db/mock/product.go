package mocks

import (
	"context"
	"errors"

	"github.com/lumendata/govcat/pkg/domain"
	dbmock "github.com/lumendata/govcat/pkg/domain/internal/db/mock"
	kdbproduct "github.com/lumendata/govcat/pkg/domain/product/db"
)

type ProductInterface struct {
	Impl struct {
		Create  func(context.Context, domain.ProductSpec) (string, error)
		Update  func(context.Context, string, domain.ProductDelta) error
		Delete  func(context.Context, string) error
		Get     func(context.Context, string) (domain.Product, error)
		List    func(context.Context, int, int) ([]domain.ProductSummary, int, error)
		Members func(context.Context) ([]domain.DomainMember, error)
		Domains func(context.Context) ([]domain.DomainCount, error)

		AddInputPort    func(context.Context, string, domain.InputPortSpec) (string, error)
		DeleteInputPort func(context.Context, string) error

		AddOutputPort    func(context.Context, string, domain.OutputPortSpec) (string, error)
		DeleteOutputPort func(context.Context, string) error

		AddManagementPort    func(context.Context, string, domain.ManagementPortSpec) (string, error)
		DeleteManagementPort func(context.Context, string) error

		AddTeamMember    func(context.Context, string, domain.TeamMemberSpec) (string, error)
		DeleteTeamMember func(context.Context, string) error

		AddSupportChannel    func(context.Context, string, domain.SupportChannelSpec) (string, error)
		DeleteSupportChannel func(context.Context, string) error
	}
	Calls struct {
		Create dbmock.CallLog[domain.ProductSpec]
		Update dbmock.CallLog[struct {
			Id    string
			Delta domain.ProductDelta
		}]
		Delete  dbmock.CallLog[string]
		Get     dbmock.CallLog[string]
		List    dbmock.CallLog[struct{ Page, PageSize int }]
		Members dbmock.CallLog[struct{}]
		Domains dbmock.CallLog[struct{}]

		AddInputPort dbmock.CallLog[struct {
			ProductId string
			Spec      domain.InputPortSpec
		}]
		DeleteInputPort dbmock.CallLog[string]

		AddOutputPort dbmock.CallLog[struct {
			ProductId string
			Spec      domain.OutputPortSpec
		}]
		DeleteOutputPort dbmock.CallLog[string]

		AddManagementPort dbmock.CallLog[struct {
			ProductId string
			Spec      domain.ManagementPortSpec
		}]
		DeleteManagementPort dbmock.CallLog[string]

		AddTeamMember dbmock.CallLog[struct {
			ProductId string
			Spec      domain.TeamMemberSpec
		}]
		DeleteTeamMember dbmock.CallLog[string]

		AddSupportChannel dbmock.CallLog[struct {
			ProductId string
			Spec      domain.SupportChannelSpec
		}]
		DeleteSupportChannel dbmock.CallLog[string]
	}
}

func NewProductInterface() *ProductInterface {
	return &ProductInterface{}
}

var _ kdbproduct.ProductInterface = &ProductInterface{}

func (m *ProductInterface) Create(ctx context.Context, spec domain.ProductSpec) (string, error) {
	m.Calls.Create = append(m.Calls.Create, spec)
	if m.Impl.Create != nil {
		return m.Impl.Create(ctx, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) Update(ctx context.Context, id string, delta domain.ProductDelta) error {
	m.Calls.Update = append(m.Calls.Update, struct {
		Id    string
		Delta domain.ProductDelta
	}{Id: id, Delta: delta})
	if m.Impl.Update != nil {
		return m.Impl.Update(ctx, id, delta)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) Delete(ctx context.Context, id string) error {
	m.Calls.Delete = append(m.Calls.Delete, id)
	if m.Impl.Delete != nil {
		return m.Impl.Delete(ctx, id)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) Get(ctx context.Context, id string) (domain.Product, error) {
	m.Calls.Get = append(m.Calls.Get, id)
	if m.Impl.Get != nil {
		return m.Impl.Get(ctx, id)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) List(ctx context.Context, page int, pageSize int) ([]domain.ProductSummary, int, error) {
	m.Calls.List = append(m.Calls.List, struct{ Page, PageSize int }{Page: page, PageSize: pageSize})
	if m.Impl.List != nil {
		return m.Impl.List(ctx, page, pageSize)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) Members(ctx context.Context) ([]domain.DomainMember, error) {
	m.Calls.Members = append(m.Calls.Members, struct{}{})
	if m.Impl.Members != nil {
		return m.Impl.Members(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) Domains(ctx context.Context) ([]domain.DomainCount, error) {
	m.Calls.Domains = append(m.Calls.Domains, struct{}{})
	if m.Impl.Domains != nil {
		return m.Impl.Domains(ctx)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) AddInputPort(ctx context.Context, productId string, spec domain.InputPortSpec) (string, error) {
	m.Calls.AddInputPort = append(m.Calls.AddInputPort, struct {
		ProductId string
		Spec      domain.InputPortSpec
	}{ProductId: productId, Spec: spec})
	if m.Impl.AddInputPort != nil {
		return m.Impl.AddInputPort(ctx, productId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) DeleteInputPort(ctx context.Context, portId string) error {
	m.Calls.DeleteInputPort = append(m.Calls.DeleteInputPort, portId)
	if m.Impl.DeleteInputPort != nil {
		return m.Impl.DeleteInputPort(ctx, portId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) AddOutputPort(ctx context.Context, productId string, spec domain.OutputPortSpec) (string, error) {
	m.Calls.AddOutputPort = append(m.Calls.AddOutputPort, struct {
		ProductId string
		Spec      domain.OutputPortSpec
	}{ProductId: productId, Spec: spec})
	if m.Impl.AddOutputPort != nil {
		return m.Impl.AddOutputPort(ctx, productId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) DeleteOutputPort(ctx context.Context, portId string) error {
	m.Calls.DeleteOutputPort = append(m.Calls.DeleteOutputPort, portId)
	if m.Impl.DeleteOutputPort != nil {
		return m.Impl.DeleteOutputPort(ctx, portId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) AddManagementPort(ctx context.Context, productId string, spec domain.ManagementPortSpec) (string, error) {
	m.Calls.AddManagementPort = append(m.Calls.AddManagementPort, struct {
		ProductId string
		Spec      domain.ManagementPortSpec
	}{ProductId: productId, Spec: spec})
	if m.Impl.AddManagementPort != nil {
		return m.Impl.AddManagementPort(ctx, productId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) DeleteManagementPort(ctx context.Context, portId string) error {
	m.Calls.DeleteManagementPort = append(m.Calls.DeleteManagementPort, portId)
	if m.Impl.DeleteManagementPort != nil {
		return m.Impl.DeleteManagementPort(ctx, portId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) AddTeamMember(ctx context.Context, productId string, spec domain.TeamMemberSpec) (string, error) {
	m.Calls.AddTeamMember = append(m.Calls.AddTeamMember, struct {
		ProductId string
		Spec      domain.TeamMemberSpec
	}{ProductId: productId, Spec: spec})
	if m.Impl.AddTeamMember != nil {
		return m.Impl.AddTeamMember(ctx, productId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) DeleteTeamMember(ctx context.Context, memberId string) error {
	m.Calls.DeleteTeamMember = append(m.Calls.DeleteTeamMember, memberId)
	if m.Impl.DeleteTeamMember != nil {
		return m.Impl.DeleteTeamMember(ctx, memberId)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) AddSupportChannel(ctx context.Context, productId string, spec domain.SupportChannelSpec) (string, error) {
	m.Calls.AddSupportChannel = append(m.Calls.AddSupportChannel, struct {
		ProductId string
		Spec      domain.SupportChannelSpec
	}{ProductId: productId, Spec: spec})
	if m.Impl.AddSupportChannel != nil {
		return m.Impl.AddSupportChannel(ctx, productId, spec)
	}
	panic(errors.New("it should not be called"))
}

func (m *ProductInterface) DeleteSupportChannel(ctx context.Context, channelId string) error {
	m.Calls.DeleteSupportChannel = append(m.Calls.DeleteSupportChannel, channelId)
	if m.Impl.DeleteSupportChannel != nil {
		return m.Impl.DeleteSupportChannel(ctx, channelId)
	}
	panic(errors.New("it should not be called"))
}
