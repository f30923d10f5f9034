package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	httptestutil "github.com/lumendata/govcat/internal/testutils/http"
	apicontracts "github.com/lumendata/govcat/pkg/api/types/contracts"
	"github.com/lumendata/govcat/pkg/domain"
	contractmock "github.com/lumendata/govcat/pkg/domain/contract/db/mock"
	productmock "github.com/lumendata/govcat/pkg/domain/product/db/mock"
	"github.com/lumendata/govcat/pkg/search"
	"github.com/lumendata/govcat/pkg/utils/pointer"

	"github.com/lumendata/govcat/cmd/govcatd/handlers"
)

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		t.Fatalf("error is not echo.HTTPError. actual = %#v", err)
	}
	if echoErr.Code != code {
		t.Errorf("unmatch error code:%d, expected:%d", echoErr.Code, code)
	}
}

func TestListContractsHandler(t *testing.T) {

	summaries := []domain.ContractSummary{
		{
			Id: "contract-1", Name: pointer.Ref("orders"), Version: "1.0.0",
			Status: domain.StatusActive, Domain: pointer.Ref("sales"),
			CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			Id: "contract-2", Name: pointer.Ref("shipments"), Version: "0.2.0",
			Status:    domain.StatusDraft,
			CreatedAt: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	t.Run("it responds with the page the repository returns", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.List = func(ctx context.Context, page int, pageSize int) ([]domain.ContractSummary, int, error) {
			return summaries, 42, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/contracts/?page=2&pageSize=5")

		testee := handlers.ListContractsHandler(mck)
		if err := testee(c); err != nil {
			t.Fatal(err)
		}

		if mck.Calls.List.Times() != 1 {
			t.Fatalf("List is called %d times, expected once", mck.Calls.List.Times())
		}
		if actual := mck.Calls.List[0]; actual.Page != 2 || actual.PageSize != 5 {
			t.Errorf("List is called with (%d, %d), expected (2, 5)", actual.Page, actual.PageSize)
		}

		actual := apicontracts.Page{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		expected := apicontracts.ComposePage(summaries, 42, 2, 5)
		if !reflect.DeepEqual(actual, expected) {
			t.Errorf("page does not match. (actual, expected) = \n(%+v, \n%+v)", actual, expected)
		}
	})

	t.Run("it defaults page to 1 and pageSize to 20", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.List = func(ctx context.Context, page int, pageSize int) ([]domain.ContractSummary, int, error) {
			return nil, 0, nil
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/contracts/")

		if err := handlers.ListContractsHandler(mck)(c); err != nil {
			t.Fatal(err)
		}

		if actual := mck.Calls.List[0]; actual.Page != 1 || actual.PageSize != 20 {
			t.Errorf("List is called with (%d, %d), expected (1, 20)", actual.Page, actual.PageSize)
		}
	})

	t.Run("it caps pageSize", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.List = func(ctx context.Context, page int, pageSize int) ([]domain.ContractSummary, int, error) {
			return nil, 0, nil
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/contracts/?pageSize=1000")

		if err := handlers.ListContractsHandler(mck)(c); err != nil {
			t.Fatal(err)
		}

		if actual := mck.Calls.List[0]; actual.PageSize != 100 {
			t.Errorf("List is called with pageSize %d, expected 100", actual.PageSize)
		}
	})

	for _, query := range []string{"?page=0", "?page=x", "?pageSize=-1"} {
		t.Run(fmt.Sprintf("it rejects paging query %s with 400", query), func(t *testing.T) {
			mck := contractmock.NewContractInterface()

			e := echo.New()
			c, _ := httptestutil.Get(e, "/api/contracts/"+query)

			err := handlers.ListContractsHandler(mck)(c)
			assertHTTPError(t, err, http.StatusBadRequest)
		})
	}

	t.Run("it responds with 500 when the repository fails", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.List = func(ctx context.Context, page int, pageSize int) ([]domain.ContractSummary, int, error) {
			return nil, 0, errors.New("fake error")
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/contracts/")

		err := handlers.ListContractsHandler(mck)(c)
		assertHTTPError(t, err, http.StatusInternalServerError)
	})
}

func TestSearchContractsHandler(t *testing.T) {

	t.Run("an empty query responds with the search scope as-is", func(t *testing.T) {
		summaries := []domain.ContractSummary{
			{Id: "contract-1", Name: pointer.Ref("orders"), Version: "1.0.0", Status: domain.StatusActive},
			{Id: "contract-2", Name: pointer.Ref("shipments"), Version: "0.2.0", Status: domain.StatusDraft},
		}
		mckContract := contractmock.NewContractInterface()
		mckContract.Impl.List = func(ctx context.Context, page int, pageSize int) ([]domain.ContractSummary, int, error) {
			return summaries, len(summaries), nil
		}
		mckProduct := productmock.NewProductInterface()

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/contracts/search/?q=")

		searcher := search.New(mckContract, mckProduct)
		if err := handlers.SearchContractsHandler(searcher)(c); err != nil {
			t.Fatal(err)
		}

		actual := []apicontracts.Summary{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if len(actual) != 2 || actual[0].Id != "contract-1" || actual[1].Id != "contract-2" {
			t.Errorf("unexpected search result: %+v", actual)
		}
	})

	t.Run("a query keeps matching contracts only", func(t *testing.T) {
		summaries := []domain.ContractSummary{
			{Id: "contract-1", Name: pointer.Ref("orders"), Version: "1.0.0", Status: domain.StatusActive},
			{Id: "contract-2", Name: pointer.Ref("shipments"), Version: "0.2.0", Status: domain.StatusDraft},
		}
		mckContract := contractmock.NewContractInterface()
		mckContract.Impl.List = func(ctx context.Context, page int, pageSize int) ([]domain.ContractSummary, int, error) {
			return summaries, len(summaries), nil
		}
		mckProduct := productmock.NewProductInterface()

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/contracts/search/?q=orders")

		searcher := search.New(mckContract, mckProduct)
		if err := handlers.SearchContractsHandler(searcher)(c); err != nil {
			t.Fatal(err)
		}

		actual := []apicontracts.Summary{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if len(actual) != 1 || actual[0].Id != "contract-1" {
			t.Errorf("unexpected search result: %+v", actual)
		}
	})
}

func TestCreateContractHandler(t *testing.T) {

	payload := apicontracts.CreateRequest{
		Version: "1.0.0",
		Status:  "draft",
		Name:    pointer.Ref("orders"),
		Domain:  pointer.Ref("sales"),
		Tags:    []string{"pii"},
	}

	t.Run("it creates a contract and stamps createdBy from the resolved identity", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.Create = func(ctx context.Context, spec domain.ContractSpec) (string, error) {
			return "contract-new", nil
		}

		body, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/contracts/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.Set("govcat/identity", domain.Identity{
			Email: "alice@example.com", Source: domain.SourceCloudflare,
		})

		if err := handlers.CreateContractHandler(mck)(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusCreated {
			t.Errorf("status code is %d, expected %d", respRec.Code, http.StatusCreated)
		}

		created := handlers.Created{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &created); err != nil {
			t.Fatal(err)
		}
		if created.Id != "contract-new" {
			t.Errorf("created id is %q, expected contract-new", created.Id)
		}

		if mck.Calls.Create.Times() != 1 {
			t.Fatalf("Create is called %d times, expected once", mck.Calls.Create.Times())
		}
		spec := mck.Calls.Create[0]
		if spec.CreatedBy == nil || *spec.CreatedBy != "alice@example.com" {
			t.Errorf("createdBy is not stamped from the identity: %+v", spec.CreatedBy)
		}
		if spec.Version != "1.0.0" || spec.Status != domain.StatusDraft {
			t.Errorf("unexpected spec: %+v", spec)
		}
	})

	t.Run("it rejects non-json content with 400", func(t *testing.T) {
		mck := contractmock.NewContractInterface()

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/contracts/", bytes.NewReader([]byte("version: 1.0.0")),
			httptestutil.ContentType("text/yaml"),
		)

		err := handlers.CreateContractHandler(mck)(c)
		assertHTTPError(t, err, http.StatusBadRequest)

		if mck.Calls.Create.Times() != 0 {
			t.Errorf("Create should not be called")
		}
	})

	t.Run("it responds with 400 when the repository rejects the input", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.Create = func(ctx context.Context, spec domain.ContractSpec) (string, error) {
			return "", fmt.Errorf("%w: status is required", domain.ErrInvalid)
		}

		body, err := json.Marshal(apicontracts.CreateRequest{Version: "1.0.0"})
		if err != nil {
			t.Fatal(err)
		}

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/contracts/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)

		err = handlers.CreateContractHandler(mck)(c)
		assertHTTPError(t, err, http.StatusBadRequest)
	})

	t.Run("it responds with 500 when the repository fails", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.Create = func(ctx context.Context, spec domain.ContractSpec) (string, error) {
			return "", errors.New("fake error")
		}

		body, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/contracts/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)

		err = handlers.CreateContractHandler(mck)(c)
		assertHTTPError(t, err, http.StatusInternalServerError)
	})
}

func TestGetContractHandler(t *testing.T) {

	t.Run("it responds with the full aggregate", func(t *testing.T) {
		contract := domain.Contract{
			ContractBody: domain.ContractBody{
				Id: "contract-1", Kind: domain.KindDataContract,
				ApiVersion: domain.DefaultContractApiVersion,
				Version:    "1.0.0", Status: domain.StatusActive,
				Name:        pointer.Ref("orders"),
				Domain:      pointer.Ref("sales"),
				DataProduct: pointer.Ref("order-facts"),
				CreatedAt:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
				UpdatedAt:   time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
				CreatedBy:   pointer.Ref("alice@example.com"),
			},
			Tags: []string{"pii"},
			SchemaObjects: []domain.SchemaObject{
				{Id: "object-1", Name: "orders"},
			},
			LinkedProduct: &domain.ProductRef{
				Id: "product-1", Name: pointer.Ref("order-facts"),
			},
		}
		mck := contractmock.NewContractInterface()
		mck.Impl.Get = func(ctx context.Context, id string) (domain.Contract, error) {
			if id != "contract-1" {
				t.Errorf("Get is called with %q, expected contract-1", id)
			}
			return contract, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/contracts/contract-1/")
		c.SetPath("/api/contracts/:contractId/")
		c.SetParamNames("contractId")
		c.SetParamValues("contract-1")

		if err := handlers.GetContractHandler(mck, "contractId")(c); err != nil {
			t.Fatal(err)
		}

		actual := apicontracts.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		expected := apicontracts.ComposeDetail(contract)
		if !reflect.DeepEqual(actual, expected) {
			t.Errorf("detail does not match. (actual, expected) = \n(%+v, \n%+v)", actual, expected)
		}
	})

	t.Run("it responds with 404 when the contract does not exist", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.Get = func(ctx context.Context, id string) (domain.Contract, error) {
			return domain.Contract{}, fmt.Errorf("%w: contract %s", domain.ErrMissing, id)
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/contracts/contract-na/")
		c.SetPath("/api/contracts/:contractId/")
		c.SetParamNames("contractId")
		c.SetParamValues("contract-na")

		err := handlers.GetContractHandler(mck, "contractId")(c)
		assertHTTPError(t, err, http.StatusNotFound)
	})
}

func TestUpdateContractHandler(t *testing.T) {

	t.Run("it applies the delta and responds with the refreshed aggregate", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.Update = func(ctx context.Context, id string, delta domain.ContractDelta) error {
			return nil
		}
		mck.Impl.Get = func(ctx context.Context, id string) (domain.Contract, error) {
			return domain.Contract{
				ContractBody: domain.ContractBody{
					Id: "contract-1", Version: "1.1.0", Status: domain.StatusActive,
				},
			}, nil
		}

		body, err := json.Marshal(apicontracts.UpdateRequest{
			Version: pointer.Ref("1.1.0"),
			Status:  pointer.Ref("active"),
			Tags:    pointer.Ref([]string{"pii", "gdpr"}),
		})
		if err != nil {
			t.Fatal(err)
		}

		e := echo.New()
		c, respRec := httptestutil.Put(
			e, "/api/contracts/contract-1/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/contracts/:contractId/")
		c.SetParamNames("contractId")
		c.SetParamValues("contract-1")

		if err := handlers.UpdateContractHandler(mck, "contractId")(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusOK {
			t.Errorf("status code is %d, expected %d", respRec.Code, http.StatusOK)
		}

		if mck.Calls.Update.Times() != 1 {
			t.Fatalf("Update is called %d times, expected once", mck.Calls.Update.Times())
		}
		updated := mck.Calls.Update[0]
		if updated.Id != "contract-1" {
			t.Errorf("Update is called with id %q, expected contract-1", updated.Id)
		}
		if updated.Delta.Version == nil || *updated.Delta.Version != "1.1.0" {
			t.Errorf("unexpected delta: %+v", updated.Delta)
		}
		if updated.Delta.Tags == nil || len(*updated.Delta.Tags) != 2 {
			t.Errorf("tags replacement is not passed: %+v", updated.Delta.Tags)
		}

		actual := apicontracts.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.Version != "1.1.0" {
			t.Errorf("refreshed aggregate is not in the response: %+v", actual)
		}
	})

	t.Run("it responds with 404 when the contract does not exist", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.Update = func(ctx context.Context, id string, delta domain.ContractDelta) error {
			return fmt.Errorf("%w: contract %s", domain.ErrMissing, id)
		}

		body := []byte(`{"version": "2.0.0"}`)

		e := echo.New()
		c, _ := httptestutil.Put(
			e, "/api/contracts/contract-na/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/contracts/:contractId/")
		c.SetParamNames("contractId")
		c.SetParamValues("contract-na")

		err := handlers.UpdateContractHandler(mck, "contractId")(c)
		assertHTTPError(t, err, http.StatusNotFound)
	})
}

func TestDeleteContractHandler(t *testing.T) {

	t.Run("it deletes the contract and responds with 204", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.Delete = func(ctx context.Context, id string) error {
			return nil
		}

		e := echo.New()
		c, respRec := httptestutil.Delete(e, "/api/contracts/contract-1/")
		c.SetPath("/api/contracts/:contractId/")
		c.SetParamNames("contractId")
		c.SetParamValues("contract-1")

		if err := handlers.DeleteContractHandler(mck, "contractId")(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusNoContent {
			t.Errorf("status code is %d, expected %d", respRec.Code, http.StatusNoContent)
		}
		if mck.Calls.Delete.Times() != 1 || mck.Calls.Delete[0] != "contract-1" {
			t.Errorf("Delete is not called with contract-1: %+v", mck.Calls.Delete)
		}
	})

	t.Run("it responds with 500 when the repository fails", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.Delete = func(ctx context.Context, id string) error {
			return errors.New("fake error")
		}

		e := echo.New()
		c, _ := httptestutil.Delete(e, "/api/contracts/contract-1/")
		c.SetPath("/api/contracts/:contractId/")
		c.SetParamNames("contractId")
		c.SetParamValues("contract-1")

		err := handlers.DeleteContractHandler(mck, "contractId")(c)
		assertHTTPError(t, err, http.StatusInternalServerError)
	})
}

func TestAddContractSchemaObjectHandler(t *testing.T) {

	t.Run("it attaches a schema object and responds with the new id", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.AddSchemaObject = func(ctx context.Context, contractId string, spec domain.SchemaObjectSpec) (string, error) {
			return "object-new", nil
		}

		body := []byte(`{"name": "orders", "physicalName": "tbl_orders"}`)

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/contracts/contract-1/schema/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/contracts/:contractId/schema/")
		c.SetParamNames("contractId")
		c.SetParamValues("contract-1")

		if err := handlers.AddContractSchemaObjectHandler(mck, "contractId")(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusCreated {
			t.Errorf("status code is %d, expected %d", respRec.Code, http.StatusCreated)
		}

		created := handlers.Created{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &created); err != nil {
			t.Fatal(err)
		}
		if created.Id != "object-new" {
			t.Errorf("created id is %q, expected object-new", created.Id)
		}

		if mck.Calls.AddSchemaObject.Times() != 1 {
			t.Fatalf("AddSchemaObject is called %d times, expected once", mck.Calls.AddSchemaObject.Times())
		}
		call := mck.Calls.AddSchemaObject[0]
		if call.ContractId != "contract-1" || call.Spec.Name != "orders" {
			t.Errorf("unexpected AddSchemaObject call: %+v", call)
		}
	})

	t.Run("it responds with 404 when the contract does not exist", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.AddSchemaObject = func(ctx context.Context, contractId string, spec domain.SchemaObjectSpec) (string, error) {
			return "", fmt.Errorf("%w: contract %s", domain.ErrMissing, contractId)
		}

		body := []byte(`{"name": "orders"}`)

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/contracts/contract-na/schema/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/contracts/:contractId/schema/")
		c.SetParamNames("contractId")
		c.SetParamValues("contract-na")

		err := handlers.AddContractSchemaObjectHandler(mck, "contractId")(c)
		assertHTTPError(t, err, http.StatusNotFound)
	})
}

func TestUpdateContractSchemaPropertyHandler(t *testing.T) {

	t.Run("it patches the property and responds with 204", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.UpdateSchemaProperty = func(ctx context.Context, propertyId string, delta domain.SchemaPropertyDelta) error {
			return nil
		}

		body := []byte(`{"businessName": "order id", "required": true}`)

		e := echo.New()
		c, respRec := httptestutil.Put(
			e, "/api/contracts/contract-1/schema/object-1/properties/property-1/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/contracts/:contractId/schema/:objectId/properties/:propertyId/")
		c.SetParamNames("contractId", "objectId", "propertyId")
		c.SetParamValues("contract-1", "object-1", "property-1")

		if err := handlers.UpdateContractSchemaPropertyHandler(mck, "propertyId")(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusNoContent {
			t.Errorf("status code is %d, expected %d", respRec.Code, http.StatusNoContent)
		}

		call := mck.Calls.UpdateSchemaProperty[0]
		if call.PropertyId != "property-1" {
			t.Errorf("UpdateSchemaProperty is called with %q, expected property-1", call.PropertyId)
		}
		if call.Delta.Required == nil || !*call.Delta.Required {
			t.Errorf("unexpected delta: %+v", call.Delta)
		}
	})
}

func TestDeleteContractRoleHandler(t *testing.T) {

	t.Run("it removes the role and responds with 204", func(t *testing.T) {
		mck := contractmock.NewContractInterface()
		mck.Impl.DeleteRole = func(ctx context.Context, roleId string) error {
			return nil
		}

		e := echo.New()
		c, respRec := httptestutil.Delete(e, "/api/contracts/contract-1/roles/role-1/")
		c.SetPath("/api/contracts/:contractId/roles/:roleId/")
		c.SetParamNames("contractId", "roleId")
		c.SetParamValues("contract-1", "role-1")

		if err := handlers.DeleteContractRoleHandler(mck, "roleId")(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusNoContent {
			t.Errorf("status code is %d, expected %d", respRec.Code, http.StatusNoContent)
		}
		if mck.Calls.DeleteRole.Times() != 1 || mck.Calls.DeleteRole[0] != "role-1" {
			t.Errorf("DeleteRole is not called with role-1: %+v", mck.Calls.DeleteRole)
		}
	})
}
