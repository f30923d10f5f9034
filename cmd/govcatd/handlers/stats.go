package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	apicontracts "github.com/lumendata/govcat/pkg/api/types/contracts"
	apiproducts "github.com/lumendata/govcat/pkg/api/types/products"
	apistats "github.com/lumendata/govcat/pkg/api/types/stats"
	kdbcontract "github.com/lumendata/govcat/pkg/domain/contract/db"
	kdbproduct "github.com/lumendata/govcat/pkg/domain/product/db"
	"github.com/lumendata/govcat/pkg/utils/slices"
)

// recentLimit is how many recently updated entries the dashboard shows
// per kind.
const recentLimit = 5

func GetStatsHandler(dbContracts kdbcontract.ContractInterface, dbProducts kdbproduct.ProductInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		recentContracts, contractTotal, err := dbContracts.List(ctx, 1, recentLimit)
		if err != nil {
			return errorFor(err)
		}
		recentProducts, productTotal, err := dbProducts.List(ctx, 1, recentLimit)
		if err != nil {
			return errorFor(err)
		}

		stats := apistats.Stats{
			ContractCount:   contractTotal,
			ProductCount:    productTotal,
			RecentContracts: slices.Map(recentContracts, apicontracts.ComposeSummary),
			RecentProducts:  slices.Map(recentProducts, apiproducts.ComposeSummary),
		}
		if stats.RecentContracts == nil {
			stats.RecentContracts = []apicontracts.Summary{}
		}
		if stats.RecentProducts == nil {
			stats.RecentProducts = []apiproducts.Summary{}
		}
		return c.JSON(http.StatusOK, stats)
	}
}
