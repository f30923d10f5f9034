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
	apiproducts "github.com/lumendata/govcat/pkg/api/types/products"
	"github.com/lumendata/govcat/pkg/domain"
	productmock "github.com/lumendata/govcat/pkg/domain/product/db/mock"
	"github.com/lumendata/govcat/pkg/utils/pointer"

	"github.com/lumendata/govcat/cmd/govcatd/handlers"
)

func TestListProductsHandler(t *testing.T) {

	summaries := []domain.ProductSummary{
		{
			Id: "product-1", Name: pointer.Ref("order-facts"), Version: pointer.Ref("2.0.0"),
			Status: domain.StatusActive, Domain: pointer.Ref("sales"),
			CreatedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
		},
	}

	t.Run("it responds with the page the repository returns", func(t *testing.T) {
		mck := productmock.NewProductInterface()
		mck.Impl.List = func(ctx context.Context, page int, pageSize int) ([]domain.ProductSummary, int, error) {
			return summaries, 7, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/products/?page=1&pageSize=10")

		if err := handlers.ListProductsHandler(mck)(c); err != nil {
			t.Fatal(err)
		}

		if actual := mck.Calls.List[0]; actual.Page != 1 || actual.PageSize != 10 {
			t.Errorf("List is called with (%d, %d), expected (1, 10)", actual.Page, actual.PageSize)
		}

		actual := apiproducts.Page{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		expected := apiproducts.ComposePage(summaries, 7, 1, 10)
		if !reflect.DeepEqual(actual, expected) {
			t.Errorf("page does not match. (actual, expected) = \n(%+v, \n%+v)", actual, expected)
		}
	})

	t.Run("it responds with 500 when the repository fails", func(t *testing.T) {
		mck := productmock.NewProductInterface()
		mck.Impl.List = func(ctx context.Context, page int, pageSize int) ([]domain.ProductSummary, int, error) {
			return nil, 0, errors.New("fake error")
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/products/")

		err := handlers.ListProductsHandler(mck)(c)
		assertHTTPError(t, err, http.StatusInternalServerError)
	})
}

func TestCreateProductHandler(t *testing.T) {

	t.Run("it creates a product and stamps createdBy from the resolved identity", func(t *testing.T) {
		mck := productmock.NewProductInterface()
		mck.Impl.Create = func(ctx context.Context, spec domain.ProductSpec) (string, error) {
			return "product-new", nil
		}

		body, err := json.Marshal(apiproducts.CreateRequest{
			Status: "draft",
			Name:   pointer.Ref("order-facts"),
			Domain: pointer.Ref("sales"),
		})
		if err != nil {
			t.Fatal(err)
		}

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/products/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.Set("govcat/identity", domain.Identity{
			Email: "bob@example.com", Source: domain.SourceCloudflare,
		})

		if err := handlers.CreateProductHandler(mck)(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusCreated {
			t.Errorf("status code is %d, expected %d", respRec.Code, http.StatusCreated)
		}

		created := handlers.Created{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &created); err != nil {
			t.Fatal(err)
		}
		if created.Id != "product-new" {
			t.Errorf("created id is %q, expected product-new", created.Id)
		}

		spec := mck.Calls.Create[0]
		if spec.CreatedBy == nil || *spec.CreatedBy != "bob@example.com" {
			t.Errorf("createdBy is not stamped from the identity: %+v", spec.CreatedBy)
		}
	})

	t.Run("it responds with 400 when the repository rejects the input", func(t *testing.T) {
		mck := productmock.NewProductInterface()
		mck.Impl.Create = func(ctx context.Context, spec domain.ProductSpec) (string, error) {
			return "", fmt.Errorf("%w: unknown status", domain.ErrInvalid)
		}

		body := []byte(`{"status": "bogus"}`)

		e := echo.New()
		c, _ := httptestutil.Post(
			e, "/api/products/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)

		err := handlers.CreateProductHandler(mck)(c)
		assertHTTPError(t, err, http.StatusBadRequest)
	})
}

func TestGetProductHandler(t *testing.T) {

	t.Run("it responds with the full aggregate", func(t *testing.T) {
		product := domain.Product{
			ProductBody: domain.ProductBody{
				Id: "product-1", Kind: domain.KindDataProduct,
				ApiVersion: domain.DefaultProductApiVersion,
				Status:     domain.StatusActive,
				Name:       pointer.Ref("order-facts"),
				Domain:     pointer.Ref("sales"),
				CreatedAt:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
				UpdatedAt:  time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC),
			},
			Tags: []string{"gold"},
			OutputPorts: []domain.OutputPort{
				{
					Id: "port-1", Name: "orders",
					ContractId:   pointer.Ref("contract-1"),
					ContractName: pointer.Ref("orders contract"),
				},
			},
		}
		mck := productmock.NewProductInterface()
		mck.Impl.Get = func(ctx context.Context, id string) (domain.Product, error) {
			return product, nil
		}

		e := echo.New()
		c, respRec := httptestutil.Get(e, "/api/products/product-1/")
		c.SetPath("/api/products/:productId/")
		c.SetParamNames("productId")
		c.SetParamValues("product-1")

		if err := handlers.GetProductHandler(mck, "productId")(c); err != nil {
			t.Fatal(err)
		}

		actual := apiproducts.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		expected := apiproducts.ComposeDetail(product)
		if !reflect.DeepEqual(actual, expected) {
			t.Errorf("detail does not match. (actual, expected) = \n(%+v, \n%+v)", actual, expected)
		}
	})

	t.Run("it responds with 404 when the product does not exist", func(t *testing.T) {
		mck := productmock.NewProductInterface()
		mck.Impl.Get = func(ctx context.Context, id string) (domain.Product, error) {
			return domain.Product{}, fmt.Errorf("%w: product %s", domain.ErrMissing, id)
		}

		e := echo.New()
		c, _ := httptestutil.Get(e, "/api/products/product-na/")
		c.SetPath("/api/products/:productId/")
		c.SetParamNames("productId")
		c.SetParamValues("product-na")

		err := handlers.GetProductHandler(mck, "productId")(c)
		assertHTTPError(t, err, http.StatusNotFound)
	})
}

func TestUpdateProductHandler(t *testing.T) {

	t.Run("it applies the delta and responds with the refreshed aggregate", func(t *testing.T) {
		mck := productmock.NewProductInterface()
		mck.Impl.Update = func(ctx context.Context, id string, delta domain.ProductDelta) error {
			return nil
		}
		mck.Impl.Get = func(ctx context.Context, id string) (domain.Product, error) {
			return domain.Product{
				ProductBody: domain.ProductBody{
					Id: "product-1", Status: domain.StatusRetired,
				},
			}, nil
		}

		body := []byte(`{"status": "retired"}`)

		e := echo.New()
		c, respRec := httptestutil.Put(
			e, "/api/products/product-1/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/products/:productId/")
		c.SetParamNames("productId")
		c.SetParamValues("product-1")

		if err := handlers.UpdateProductHandler(mck, "productId")(c); err != nil {
			t.Fatal(err)
		}

		updated := mck.Calls.Update[0]
		if updated.Id != "product-1" {
			t.Errorf("Update is called with id %q, expected product-1", updated.Id)
		}
		if updated.Delta.Status == nil || *updated.Delta.Status != domain.StatusRetired {
			t.Errorf("unexpected delta: %+v", updated.Delta)
		}

		actual := apiproducts.Detail{}
		if err := json.Unmarshal(respRec.Body.Bytes(), &actual); err != nil {
			t.Fatal(err)
		}
		if actual.Status != "retired" {
			t.Errorf("refreshed aggregate is not in the response: %+v", actual)
		}
	})
}

func TestAddProductOutputPortHandler(t *testing.T) {

	t.Run("it attaches an output port and responds with the new id", func(t *testing.T) {
		mck := productmock.NewProductInterface()
		mck.Impl.AddOutputPort = func(ctx context.Context, productId string, spec domain.OutputPortSpec) (string, error) {
			return "port-new", nil
		}

		body := []byte(`{"name": "orders", "contractId": "contract-1", "type": "tables"}`)

		e := echo.New()
		c, respRec := httptestutil.Post(
			e, "/api/products/product-1/output-ports/", bytes.NewReader(body),
			httptestutil.ContentType("application/json"),
		)
		c.SetPath("/api/products/:productId/output-ports/")
		c.SetParamNames("productId")
		c.SetParamValues("product-1")

		if err := handlers.AddProductOutputPortHandler(mck, "productId")(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusCreated {
			t.Errorf("status code is %d, expected %d", respRec.Code, http.StatusCreated)
		}

		call := mck.Calls.AddOutputPort[0]
		if call.ProductId != "product-1" || call.Spec.Name != "orders" {
			t.Errorf("unexpected AddOutputPort call: %+v", call)
		}
		if call.Spec.ContractId == nil || *call.Spec.ContractId != "contract-1" {
			t.Errorf("contract reference is not passed: %+v", call.Spec)
		}
	})
}

func TestDeleteProductInputPortHandler(t *testing.T) {

	t.Run("it removes the port and responds with 204", func(t *testing.T) {
		mck := productmock.NewProductInterface()
		mck.Impl.DeleteInputPort = func(ctx context.Context, portId string) error {
			return nil
		}

		e := echo.New()
		c, respRec := httptestutil.Delete(e, "/api/products/product-1/input-ports/port-1/")
		c.SetPath("/api/products/:productId/input-ports/:portId/")
		c.SetParamNames("productId", "portId")
		c.SetParamValues("product-1", "port-1")

		if err := handlers.DeleteProductInputPortHandler(mck, "portId")(c); err != nil {
			t.Fatal(err)
		}

		if respRec.Code != http.StatusNoContent {
			t.Errorf("status code is %d, expected %d", respRec.Code, http.StatusNoContent)
		}
		if mck.Calls.DeleteInputPort.Times() != 1 || mck.Calls.DeleteInputPort[0] != "port-1" {
			t.Errorf("DeleteInputPort is not called with port-1: %+v", mck.Calls.DeleteInputPort)
		}
	})
}
