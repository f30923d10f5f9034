package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/lumendata/govcat/pkg/api/types/channels"
	apicontracts "github.com/lumendata/govcat/pkg/api/types/contracts"
	apierr "github.com/lumendata/govcat/pkg/api/types/errors"
	"github.com/lumendata/govcat/pkg/api/types/members"
	"github.com/lumendata/govcat/pkg/auth"
	kdbcontract "github.com/lumendata/govcat/pkg/domain/contract/db"
	"github.com/lumendata/govcat/pkg/search"
	"github.com/lumendata/govcat/pkg/utils/slices"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func paging(c echo.Context) (page int, pageSize int, err error) {
	page, pageSize = 1, defaultPageSize

	if raw := c.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil || page < 1 {
			return 0, 0, apierr.BadRequest("page should be a positive integer", err)
		}
	}
	if raw := c.QueryParam("pageSize"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			return 0, 0, apierr.BadRequest("pageSize should be a positive integer", err)
		}
		if maxPageSize < pageSize {
			pageSize = maxPageSize
		}
	}
	return page, pageSize, nil
}

func ListContractsHandler(dbContracts kdbcontract.ContractInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, pageSize, err := paging(c)
		if err != nil {
			return err
		}

		items, total, err := dbContracts.List(c.Request().Context(), page, pageSize)
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusOK, apicontracts.ComposePage(items, total, page, pageSize))
	}
}

func SearchContractsHandler(searcher search.Interface) echo.HandlerFunc {
	return func(c echo.Context) error {
		found, err := searcher.Contracts(c.Request().Context(), c.QueryParam("q"))
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusOK, slices.Map(found, apicontracts.ComposeSummary))
	}
}

func CreateContractHandler(dbContracts kdbcontract.ContractInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := decode[apicontracts.CreateRequest](c)
		if err != nil {
			return err
		}

		var createdBy *string
		if identity, ok := auth.From(c); ok {
			createdBy = &identity.Email
		}

		id, err := dbContracts.Create(c.Request().Context(), req.ToSpec(createdBy))
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusCreated, Created{Id: id})
	}
}

func GetContractHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		contract, err := dbContracts.Get(c.Request().Context(), c.Param(paramKey))
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusOK, apicontracts.ComposeDetail(contract))
	}
}

// UpdateContractHandler applies a partial update and responds with the
// refreshed aggregate.
func UpdateContractHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		req, err := decode[apicontracts.UpdateRequest](c)
		if err != nil {
			return err
		}

		ctx := c.Request().Context()
		id := c.Param(paramKey)
		if err := dbContracts.Update(ctx, id, req.ToDelta()); err != nil {
			return errorFor(err)
		}

		contract, err := dbContracts.Get(ctx, id)
		if err != nil {
			return errorFor(err)
		}
		return c.JSON(http.StatusOK, apicontracts.ComposeDetail(contract))
	}
}

func DeleteContractHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := dbContracts.Delete(c.Request().Context(), c.Param(paramKey)); err != nil {
			return errorFor(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func AddContractSchemaObjectHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return addChildHandler(paramKey, apicontracts.SchemaObjectRequest.ToSpec, dbContracts.AddSchemaObject)
}

func UpdateContractSchemaObjectHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return updateChildHandler(paramKey, apicontracts.SchemaObjectPatch.ToDelta, dbContracts.UpdateSchemaObject)
}

func DeleteContractSchemaObjectHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return deleteChildHandler(paramKey, dbContracts.DeleteSchemaObject)
}

func AddContractSchemaPropertyHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return addChildHandler(paramKey, apicontracts.SchemaPropertyRequest.ToSpec, dbContracts.AddSchemaProperty)
}

func UpdateContractSchemaPropertyHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return updateChildHandler(paramKey, apicontracts.SchemaPropertyPatch.ToDelta, dbContracts.UpdateSchemaProperty)
}

func DeleteContractSchemaPropertyHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return deleteChildHandler(paramKey, dbContracts.DeleteSchemaProperty)
}

func AddContractQualityRuleHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return addChildHandler(paramKey, apicontracts.QualityRuleRequest.ToSpec, dbContracts.AddQualityRule)
}

func UpdateContractQualityRuleHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return updateChildHandler(paramKey, apicontracts.QualityRulePatch.ToDelta, dbContracts.UpdateQualityRule)
}

func DeleteContractQualityRuleHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return deleteChildHandler(paramKey, dbContracts.DeleteQualityRule)
}

func AddContractRoleHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return addChildHandler(paramKey, apicontracts.RoleRequest.ToSpec, dbContracts.AddRole)
}

func DeleteContractRoleHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return deleteChildHandler(paramKey, dbContracts.DeleteRole)
}

func AddContractServerHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return addChildHandler(paramKey, apicontracts.ServerRequest.ToSpec, dbContracts.AddServer)
}

func DeleteContractServerHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return deleteChildHandler(paramKey, dbContracts.DeleteServer)
}

func AddContractSlaPropertyHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return addChildHandler(paramKey, apicontracts.SlaPropertyRequest.ToSpec, dbContracts.AddSlaProperty)
}

func DeleteContractSlaPropertyHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return deleteChildHandler(paramKey, dbContracts.DeleteSlaProperty)
}

func AddContractTeamMemberHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return addChildHandler(paramKey, members.Request.ToSpec, dbContracts.AddTeamMember)
}

func DeleteContractTeamMemberHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return deleteChildHandler(paramKey, dbContracts.DeleteTeamMember)
}

func AddContractSupportChannelHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return addChildHandler(paramKey, channels.Request.ToSpec, dbContracts.AddSupportChannel)
}

func DeleteContractSupportChannelHandler(dbContracts kdbcontract.ContractInterface, paramKey string) echo.HandlerFunc {
	return deleteChildHandler(paramKey, dbContracts.DeleteSupportChannel)
}
