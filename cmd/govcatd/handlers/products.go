package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lumendata/govcat/pkg/api/types/channels"
	"github.com/lumendata/govcat/pkg/api/types/members"
	apiproducts "github.com/lumendata/govcat/pkg/api/types/products"
	"github.com/lumendata/govcat/pkg/auth"
	kdbproduct "github.com/lumendata/govcat/pkg/domain/product/db"
	"github.com/lumendata/govcat/pkg/search"
	"github.com/lumendata/govcat/pkg/utils/slices"
)

func ListProductsHandler(dbProducts kdbproduct.ProductInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, pageSize, err := paging(c)
		if err != nil {
			return err
		}

		items, total, err := dbProducts.List(c.Request().Context(), page, pageSize)
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusOK, apiproducts.ComposePage(items, total, page, pageSize))
	}
}

func SearchProductsHandler(searcher search.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		found, err := searcher.Products(c.Request().Context(), c.QueryParam("q"))
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusOK, slices.Map(found, apiproducts.ComposeSummary))
	}
}

func CreateProductHandler(dbProducts kdbproduct.ProductInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := decode[apiproducts.CreateRequest](c)
		if err != nil {
			return err
		}

		var createdBy *string
		if identity, ok := auth.From(c); ok {
			createdBy = &identity.Email
		}

		id, err := dbProducts.Create(c.Request().Context(), req.ToSpec(createdBy))
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusCreated, Created{Id: id})
	}
}

func GetProductHandler(dbProducts kdbproduct.ProductInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		product, err := dbProducts.Get(c.Request().Context(), c.Param(paramKey))
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusOK, apiproducts.ComposeDetail(product))
	}
}

// UpdateProductHandler applies a partial update and responds with the
// refreshed aggregate.
func UpdateProductHandler(dbProducts kdbproduct.ProductInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := decode[apiproducts.UpdateRequest](c)
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		id := c.Param(paramKey)
		if err := dbProducts.Update(ctx, id, req.ToDelta()); err != nil {
			return errorFor(err)
		}

		product, err := dbProducts.Get(ctx, id)
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusOK, apiproducts.ComposeDetail(product))
	}
}

func DeleteProductHandler(dbProducts kdbproduct.ProductInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := dbProducts.Delete(c.Request().Context(), c.Param(paramKey)); err != nil {
			return errorFor(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func AddProductInputPortHandler(dbProducts kdbproduct.ProductInterface, paramKey string) echo.HandlerFunc {
	return addChildHandler(paramKey, apiproducts.InputPortRequest.ToSpec, dbProducts.AddInputPort)
}

func DeleteProductInputPortHandler(dbProducts kdbproduct.ProductInterface, paramKey string) echo.HandlerFunc {
	return deleteChildHandler(paramKey, dbProducts.DeleteInputPort)
}

func AddProductOutputPortHandler(dbProducts kdbproduct.ProductInterface, paramKey string) echo.HandlerFunc {
	return addChildHandler(paramKey, apiproducts.OutputPortRequest.ToSpec, dbProducts.AddOutputPort)
}

func DeleteProductOutputPortHandler(dbProducts kdbproduct.ProductInterface, paramKey string) echo.HandlerFunc {
	return deleteChildHandler(paramKey, dbProducts.DeleteOutputPort)
}

func AddProductManagementPortHandler(dbProducts kdbproduct.ProductInterface, paramKey string) echo.HandlerFunc {
	return addChildHandler(paramKey, apiproducts.ManagementPortRequest.ToSpec, dbProducts.AddManagementPort)
}

func DeleteProductManagementPortHandler(dbProducts kdbproduct.ProductInterface, paramKey string) echo.HandlerFunc {
	return deleteChildHandler(paramKey, dbProducts.DeleteManagementPort)
}

func AddProductTeamMemberHandler(dbProducts kdbproduct.ProductInterface, paramKey string) echo.HandlerFunc {
	return addChildHandler(paramKey, members.Request.ToSpec, dbProducts.AddTeamMember)
}

func DeleteProductTeamMemberHandler(dbProducts kdbproduct.ProductInterface, paramKey string) echo.HandlerFunc {
	return deleteChildHandler(paramKey, dbProducts.DeleteTeamMember)
}

func AddProductSupportChannelHandler(dbProducts kdbproduct.ProductInterface, paramKey string) echo.HandlerFunc {
	return addChildHandler(paramKey, channels.Request.ToSpec, dbProducts.AddSupportChannel)
}

func DeleteProductSupportChannelHandler(dbProducts kdbproduct.ProductInterface, paramKey string) echo.HandlerFunc {
	return deleteChildHandler(paramKey, dbProducts.DeleteSupportChannel)
}
