package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	httptestutil "github.com/lumendata/govcat/internal/testutils/http"
	apiteams "github.com/lumendata/govcat/pkg/api/types/teams"
	"github.com/lumendata/govcat/pkg/domain"
	contractmock "github.com/lumendata/govcat/pkg/domain/contract/db/mock"
	productmock "github.com/lumendata/govcat/pkg/domain/product/db/mock"
	"github.com/lumendata/govcat/pkg/domain/teams"
	"github.com/lumendata/govcat/pkg/utils/pointer"

	"github.com/lumendata/govcat/cmd/govcatd/handlers"
)

func TestListTeamsHandler(t *testing.T) {

	t.Run("it responds with the aggregated teams", func(t *testing.T) {
		mckContract := contractmock.NewContractInterface()
		mckContract.Impl.Domains = func(ctx context.Context) ([]domain.DomainCount, error) {
			return []domain.DomainCount{
				{Domain: pointer.Ref("sales"), Count: 2},
			}, nil
		}
		mckContract.Impl.Members = func(ctx context.Context) ([]domain.DomainMember, error) {
			return []domain.DomainMember{
				{
					ParentId: "contract-1", ParentKind: domain.ParentContract,
					Domain:   pointer.Ref("sales"),
					Username: "alice@example.com", Name: pointer.Ref("Alice"),
					Role: pointer.Ref("owner"),
				},
			}, nil
		}
		mckProduct := productmock.NewProductInterface()
		mckProduct.Impl.Domains = func(ctx context.Context) ([]domain.DomainCount, error) {
			return []domain.DomainCount{
				{Domain: nil, Count: 1},
			}, nil
		}
		mckProduct.Impl.Members = func(ctx context.Context) ([]domain.DomainMember, error) {
			return nil, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/teams/")

		testee := handlers.ListTeamsHandler(teams.New(mckContract, mckProduct))
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		actual := []apiteams.DomainTeam{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}

		if len(actual) != 2 {
			t.Fatalf("expected 2 teams, got %d: %+v", len(actual), actual)
		}
		if actual[0].Domain != teams.UnassignedDomain || actual[0].ProductCount != 1 {
			t.Errorf("unexpected first team: %+v", actual[0])
		}
		if actual[0].Members == nil || len(actual[0].Members) != 0 {
			t.Errorf("memberless team should carry an empty member list: %+v", actual[0].Members)
		}
		if actual[1].Domain != "sales" || actual[1].ContractCount != 2 || actual[1].MemberCount != 1 {
			t.Errorf("unexpected second team: %+v", actual[1])
		}
		if len(actual[1].Members) != 1 || actual[1].Members[0].Username != "alice@example.com" {
			t.Errorf("unexpected members: %+v", actual[1].Members)
		}
	})

	t.Run("it responds with 500 when a repository fails", func(t *testing.T) {
		mckContract := contractmock.NewContractInterface()
		mckContract.Impl.Domains = func(ctx context.Context) ([]domain.DomainCount, error) {
			return nil, errors.New("fake error")
		}
		mckProduct := productmock.NewProductInterface()

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/teams/")

		err := handlers.ListTeamsHandler(teams.New(mckContract, mckProduct))(c)
		assertHTTPError(t, err, http.StatusInternalServerError)
	})
}

func TestListTeamMembersHandler(t *testing.T) {

	t.Run("it responds with the flat membership list, contract members first", func(t *testing.T) {
		mckContract := contractmock.NewContractInterface()
		mckContract.Impl.Members = func(ctx context.Context) ([]domain.DomainMember, error) {
			return []domain.DomainMember{
				{
					ParentId: "contract-1", ParentKind: domain.ParentContract,
					Username: "alice@example.com", Role: pointer.Ref("owner"),
				},
			}, nil
		}
		mckProduct := productmock.NewProductInterface()
		mckProduct.Impl.Members = func(ctx context.Context) ([]domain.DomainMember, error) {
			return []domain.DomainMember{
				{
					ParentId: "product-1", ParentKind: domain.ParentProduct,
					Username: "bob@example.com",
				},
			}, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/teams/members/")

		testee := handlers.ListTeamMembersHandler(teams.New(mckContract, mckProduct))
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		actual := []apiteams.DomainMember{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if len(actual) != 2 {
			t.Fatalf("expected 2 members, got %d", len(actual))
		}
		if actual[0].ParentId != "contract-1" || actual[1].ParentId != "product-1" {
			t.Errorf("members are not ordered contracts first: %+v", actual)
		}
	})
}
