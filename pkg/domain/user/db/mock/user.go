package mocks

import (
	"context"
	"errors"

	"github.com/lumendata/govcat/pkg/domain"
	dbmock "github.com/lumendata/govcat/pkg/domain/internal/db/mock"
	kdbuser "github.com/lumendata/govcat/pkg/domain/user/db"
)

type UserInterface struct {
	Impl struct {
		Upsert func(context.Context, domain.Identity) error
		List   func(context.Context) ([]domain.User, error)
	}
	Calls struct {
		Upsert dbmock.CallLog[domain.Identity]
		List   dbmock.CallLog[struct{}]
	}
}

func NewUserInterface() *UserInterface {
	return &UserInterface{}
}

var _ kdbuser.UserInterface = &UserInterface{}

func (m *UserInterface) Upsert(ctx context.Context, identity domain.Identity) error {
	m.Calls.Upsert = append(m.Calls.Upsert, identity)
	if m.Impl.Upsert != nil {
		return m.Impl.Upsert(ctx, identity)
	}
	panic(errors.New("it should not be called"))
}

func (m *UserInterface) List(ctx context.Context) ([]domain.User, error) {
	m.Calls.List = append(m.Calls.List, struct{}{})
	if m.Impl.List != nil {
		return m.Impl.List(ctx)
	}
	panic(errors.New("it should not be called"))
}
