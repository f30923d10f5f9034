package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	kpool "github.com/lumendata/govcat/pkg/conn/db/postgres/pool"
	"github.com/lumendata/govcat/pkg/conn/db/postgres/scanner"
	"github.com/lumendata/govcat/pkg/domain"
	kpgerr "github.com/lumendata/govcat/pkg/domain/errors/dberrors/postgres"
	kpgintr "github.com/lumendata/govcat/pkg/domain/internal/db/postgres"
	"github.com/lumendata/govcat/pkg/utils/slices"
)

type contractPG struct { // implements db.ContractInterface
	pool kpool.Pool
}

func New(pool kpool.Pool) *contractPG {
	return &contractPG{pool: pool}
}

type contractRow struct {
	Id         string
	Kind       string
	ApiVersion string
	Version    string
	Status     string

	Name        *string
	Domain      *string
	DataProduct *string
	Tenant      *string

	DescriptionPurpose     *string
	DescriptionLimitations *string
	DescriptionUsage       *string

	PriceAmount   *int64
	PriceCurrency *string
	PriceUnit     *string

	SlaDefaultElement *string

	ContractCreatedTs *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	CreatedBy         *string
}

func (r contractRow) Body() domain.ContractBody {
	return domain.ContractBody{
		Id:         r.Id,
		Kind:       r.Kind,
		ApiVersion: r.ApiVersion,
		Version:    r.Version,
		Status:     domain.Status(r.Status),

		Name:        r.Name,
		Domain:      r.Domain,
		DataProduct: r.DataProduct,
		Tenant:      r.Tenant,

		DescriptionPurpose:     r.DescriptionPurpose,
		DescriptionLimitations: r.DescriptionLimitations,
		DescriptionUsage:       r.DescriptionUsage,

		PriceAmount:   r.PriceAmount,
		PriceCurrency: r.PriceCurrency,
		PriceUnit:     r.PriceUnit,

		SlaDefaultElement: r.SlaDefaultElement,

		ContractCreatedTs: r.ContractCreatedTs,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		CreatedBy:         r.CreatedBy,
	}
}

const contractColumns = `
	"id", "kind", "api_version", "version", "status",
	"name", "domain", "data_product", "tenant",
	"description_purpose", "description_limitations", "description_usage",
	"price_amount", "price_currency", "price_unit",
	"sla_default_element",
	"contract_created_ts", "created_at", "updated_at", "created_by"
`

func (c *contractPG) Create(ctx context.Context, spec domain.ContractSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	id := uuid.NewString()
	if _, err := tx.Exec(
		ctx,
		`
		insert into "data_contracts" (
			"id", "kind", "api_version", "version", "status",
			"name", "domain", "data_product", "tenant",
			"description_purpose", "description_limitations", "description_usage",
			"price_amount", "price_currency", "price_unit",
			"sla_default_element", "contract_created_ts", "created_by"
		) values (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12,
			$13, $14, $15,
			$16, coalesce($17, now()), $18
		)
		`,
		id, spec.Kind, spec.ApiVersion, spec.Version, spec.Status.String(),
		spec.Name, spec.Domain, spec.DataProduct, spec.Tenant,
		spec.DescriptionPurpose, spec.DescriptionLimitations, spec.DescriptionUsage,
		spec.PriceAmount, spec.PriceCurrency, spec.PriceUnit,
		spec.SlaDefaultElement, spec.ContractCreatedTs, spec.CreatedBy,
	); err != nil {
		return "", err
	}

	if err := kpgintr.InsertTags(
		ctx, tx, "contract_tags", "contract_id", id, spec.Tags,
	); err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return id, nil
}

func (c *contractPG) Update(ctx context.Context, id string, delta domain.ContractDelta) error {
	if err := delta.Validate(); err != nil {
		return err
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	set := kpgintr.NewSetClause()
	set.Add("version", delta.Version)
	if delta.Status != nil {
		set.Add("status", delta.Status.String())
	}
	set.Add("name", delta.Name)
	set.Add("domain", delta.Domain)
	set.Add("data_product", delta.DataProduct)
	set.Add("tenant", delta.Tenant)
	set.Add("description_purpose", delta.DescriptionPurpose)
	set.Add("description_limitations", delta.DescriptionLimitations)
	set.Add("description_usage", delta.DescriptionUsage)
	set.Add("price_amount", delta.PriceAmount)
	set.Add("price_currency", delta.PriceCurrency)
	set.Add("price_unit", delta.PriceUnit)
	set.Add("sla_default_element", delta.SlaDefaultElement)
	set.Add("contract_created_ts", delta.ContractCreatedTs)
	set.AddRaw(`"updated_at" = now()`)

	tag, err := tx.Exec(
		ctx,
		fmt.Sprintf(
			`update "data_contracts" set %s where "id" = %s`,
			set.Expr(), set.Next(),
		),
		append(set.Args(), id)...,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{Table: "data_contracts", Identity: id}
	}

	if delta.Tags != nil {
		if err := kpgintr.ReplaceTags(
			ctx, tx, "contract_tags", "contract_id", id, *delta.Tags,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (c *contractPG) Delete(ctx context.Context, id string) error {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// children go with the row, by the schema's cascade rules.
	_, err = conn.Exec(ctx, `delete from "data_contracts" where "id" = $1`, id)
	return err
}

func (c *contractPG) Get(ctx context.Context, id string) (domain.Contract, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return domain.Contract{}, err
	}
	defer conn.Release()

	rows, err := scanner.New[contractRow]().QueryAll(
		ctx, conn,
		`select `+contractColumns+` from "data_contracts" where "id" = $1`,
		id,
	)
	if err != nil {
		return domain.Contract{}, err
	}
	if len(rows) == 0 {
		return domain.Contract{}, kpgerr.Missing{Table: "data_contracts", Identity: id}
	}

	contract := domain.Contract{ContractBody: rows[0].Body()}

	if contract.Tags, err = kpgintr.GetTags(
		ctx, conn, "contract_tags", "contract_id", id,
	); err != nil {
		return domain.Contract{}, err
	}

	if contract.SchemaObjects, err = getSchemaObjects(ctx, conn, id); err != nil {
		return domain.Contract{}, err
	}
	if contract.TeamMembers, err = kpgintr.GetTeamMembers(
		ctx, conn, "contract_team_members", "contract_id", id,
	); err != nil {
		return domain.Contract{}, err
	}
	if contract.Roles, err = getRoles(ctx, conn, id); err != nil {
		return domain.Contract{}, err
	}
	if contract.Servers, err = getServers(ctx, conn, id); err != nil {
		return domain.Contract{}, err
	}
	if contract.SlaProperties, err = getSlaProperties(ctx, conn, id); err != nil {
		return domain.Contract{}, err
	}
	if contract.SupportChannels, err = kpgintr.GetSupportChannels(
		ctx, conn, "contract_support_channels", "contract_id", id,
	); err != nil {
		return domain.Contract{}, err
	}

	if contract.LinkedProduct, err = resolveProduct(ctx, conn, contract.DataProduct); err != nil {
		return domain.Contract{}, err
	}

	return contract, nil
}

// resolveProduct looks the free-text dataProduct field up against the
// product catalog, by name or by id. No match is not an error.
func resolveProduct(ctx context.Context, conn kpool.Queryer, dataProduct *string) (*domain.ProductRef, error) {
	if dataProduct == nil || *dataProduct == "" {
		return nil, nil
	}

	type refRow struct {
		Id      string
		Name    *string
		Version *string
	}
	found, err := scanner.New[refRow]().QueryAll(
		ctx, conn,
		`
		select "id", "name", "version" from "data_products"
		where "id" = $1 or "name" = $1
		order by ("id" = $1) desc, "created_at"
		limit 1
		`,
		*dataProduct,
	)
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return &domain.ProductRef{
		Id: found[0].Id, Name: found[0].Name, Version: found[0].Version,
	}, nil
}

func (c *contractPG) List(ctx context.Context, page int, pageSize int) ([]domain.ContractSummary, int, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer conn.Release()

	var total int
	if err := conn.QueryRow(
		ctx, `select count(*) from "data_contracts"`,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}

	type summaryRow struct {
		Id                 string
		Name               *string
		Version            string
		Status             string
		Domain             *string
		DataProduct        *string
		DescriptionPurpose *string
		CreatedAt          time.Time
		UpdatedAt          time.Time
	}
	rows, err := scanner.New[summaryRow]().QueryAll(
		ctx, conn,
		`
		select
			"id", "name", "version", "status", "domain", "data_product",
			"description_purpose", "created_at", "updated_at"
		from "data_contracts"
		order by "updated_at" desc, "id"
		limit $1 offset $2
		`,
		pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, 0, err
	}

	return slices.Map(rows, func(r summaryRow) domain.ContractSummary {
		return domain.ContractSummary{
			Id:                 r.Id,
			Name:               r.Name,
			Version:            r.Version,
			Status:             domain.Status(r.Status),
			Domain:             r.Domain,
			DataProduct:        r.DataProduct,
			DescriptionPurpose: r.DescriptionPurpose,
			CreatedAt:          r.CreatedAt,
			UpdatedAt:          r.UpdatedAt,
		}
	}), total, nil
}

func (c *contractPG) Members(ctx context.Context) ([]domain.DomainMember, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	type memberRow struct {
		ParentId   string `sql:"contract_id"`
		ParentName *string
		Domain     *string
		Username   string
		Name       *string
		Role       *string
	}
	rows, err := scanner.New[memberRow]().QueryAll(
		ctx, conn,
		`
		select
			m."contract_id", c."name" as "parent_name", c."domain",
			m."username", m."name", m."role"
		from "contract_team_members" as m
		inner join "data_contracts" as c on c."id" = m."contract_id"
		`,
	)
	if err != nil {
		return nil, err
	}

	return slices.Map(rows, func(r memberRow) domain.DomainMember {
		return domain.DomainMember{
			ParentId:   r.ParentId,
			ParentKind: domain.ParentContract,
			ParentName: r.ParentName,
			Domain:     r.Domain,
			Username:   r.Username,
			Name:       r.Name,
			Role:       r.Role,
		}
	}), nil
}

func (c *contractPG) Domains(ctx context.Context) ([]domain.DomainCount, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return kpgintr.DomainCounts(ctx, conn, "data_contracts")
}
