package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	httptestutil "github.com/lumendata/govcat/internal/testutils/http"
	apistats "github.com/lumendata/govcat/pkg/api/types/stats"
	"github.com/lumendata/govcat/pkg/domain"
	contractmock "github.com/lumendata/govcat/pkg/domain/contract/db/mock"
	productmock "github.com/lumendata/govcat/pkg/domain/product/db/mock"
	"github.com/lumendata/govcat/pkg/utils/pointer"

	"github.com/lumendata/govcat/cmd/govcatd/handlers"
)

func TestGetStatsHandler(t *testing.T) {

	t.Run("it responds with counts and the most recently updated entries", func(t *testing.T) {
		mckContract := contractmock.NewContractInterface()
		mckContract.Impl.List = func(ctx context.Context, page int, pageSize int) ([]domain.ContractSummary, int, error) {
			return []domain.ContractSummary{
				{Id: "contract-1", Name: pointer.Ref("orders"), Version: "1.0.0", Status: domain.StatusActive},
			}, 12, nil
		}
		mckProduct := productmock.NewProductInterface()
		mckProduct.Impl.List = func(ctx context.Context, page int, pageSize int) ([]domain.ProductSummary, int, error) {
			return []domain.ProductSummary{
				{Id: "product-1", Name: pointer.Ref("order-facts"), Status: domain.StatusActive},
			}, 3, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/stats/")

		testee := handlers.GetStatsHandler(mckContract, mckProduct)
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if call := mckContract.Calls.List[0]; call.Page != 1 || call.PageSize != 5 {
			t.Errorf("contract List is called with (%d, %d), expected (1, 5)", call.Page, call.PageSize)
		}
		if call := mckProduct.Calls.List[0]; call.Page != 1 || call.PageSize != 5 {
			t.Errorf("product List is called with (%d, %d), expected (1, 5)", call.Page, call.PageSize)
		}

		actual := apistats.Stats{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.ContractCount != 12 || actual.ProductCount != 3 {
			t.Errorf("unexpected counts: %+v", actual)
		}
		if len(actual.RecentContracts) != 1 || actual.RecentContracts[0].Id != "contract-1" {
			t.Errorf("unexpected recent contracts: %+v", actual.RecentContracts)
		}
		if len(actual.RecentProducts) != 1 || actual.RecentProducts[0].Id != "product-1" {
			t.Errorf("unexpected recent products: %+v", actual.RecentProducts)
		}
	})

	t.Run("it responds with empty lists when the catalog is empty", func(t *testing.T) {
		mckContract := contractmock.NewContractInterface()
		mckContract.Impl.List = func(ctx context.Context, page int, pageSize int) ([]domain.ContractSummary, int, error) {
			return nil, 0, nil
		}
		mckProduct := productmock.NewProductInterface()
		mckProduct.Impl.List = func(ctx context.Context, page int, pageSize int) ([]domain.ProductSummary, int, error) {
			return nil, 0, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/stats/")

		if err := handlers.GetStatsHandler(mckContract, mckProduct)(c); err != nil {
			t.Fatal(err)
		}

		body := map[string]json.RawMessage{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if string(body["recentContracts"]) != "[]" || string(body["recentProducts"]) != "[]" {
			t.Errorf("recent lists should be empty arrays, not null: %s", respRec.Body.String())
		}
	})

	t.Run("it responds with 500 when a repository fails", func(t *testing.T) {
		mckContract := contractmock.NewContractInterface()
		mckContract.Impl.List = func(ctx context.Context, page int, pageSize int) ([]domain.ContractSummary, int, error) {
			return nil, 0, errors.New("fake error")
		}
		mckProduct := productmock.NewProductInterface()

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/stats/")

		err := handlers.GetStatsHandler(mckContract, mckProduct)(c)
		assertHTTPError(t, err, http.StatusInternalServerError)
	})
}
