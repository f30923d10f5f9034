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

type productPG struct { // implements db.ProductInterface
	pool kpool.Pool
}

func New(pool kpool.Pool) *productPG {
	return &productPG{pool: pool}
}

type productRow struct {
	Id         string
	Kind       string
	ApiVersion string
	Status     string

	Name    *string
	Version *string
	Domain  *string
	Tenant  *string

	DescriptionPurpose     *string
	DescriptionLimitations *string
	DescriptionUsage       *string

	ProductCreatedTs *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CreatedBy        *string
}

func (r productRow) Body() domain.ProductBody {
	return domain.ProductBody{
		Id:         r.Id,
		Kind:       r.Kind,
		ApiVersion: r.ApiVersion,
		Status:     domain.Status(r.Status),

		Name:    r.Name,
		Version: r.Version,
		Domain:  r.Domain,
		Tenant:  r.Tenant,

		DescriptionPurpose:     r.DescriptionPurpose,
		DescriptionLimitations: r.DescriptionLimitations,
		DescriptionUsage:       r.DescriptionUsage,

		ProductCreatedTs: r.ProductCreatedTs,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		CreatedBy:        r.CreatedBy,
	}
}

const productColumns = `
	"id", "kind", "api_version", "status",
	"name", "version", "domain", "tenant",
	"description_purpose", "description_limitations", "description_usage",
	"product_created_ts", "created_at", "updated_at", "created_by"
`

func (p *productPG) Create(ctx context.Context, spec domain.ProductSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(ctx)

	id := uuid.NewString()
	if _, err := tx.Exec(
		ctx,
		`
		insert into "data_products" (
			"id", "kind", "api_version", "status",
			"name", "version", "domain", "tenant",
			"description_purpose", "description_limitations", "description_usage",
			"product_created_ts", "created_by"
		) values (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11,
			coalesce($12, now()), $13
		)
		`,
		id, spec.Kind, spec.ApiVersion, spec.Status.String(),
		spec.Name, spec.Version, spec.Domain, spec.Tenant,
		spec.DescriptionPurpose, spec.DescriptionLimitations, spec.DescriptionUsage,
		spec.ProductCreatedTs, spec.CreatedBy,
	); err != nil {
		return "", err
	}

	if err := kpgintr.InsertTags(
		ctx, tx, "product_tags", "product_id", id, spec.Tags,
	); err != nil {
		return "", err
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return id, nil
}

func (p *productPG) Update(ctx context.Context, id string, delta domain.ProductDelta) error {
	if err := delta.Validate(); err != nil {
		return err
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	set := kpgintr.NewSetClause()
	if delta.Status != nil {
		set.Add("status", delta.Status.String())
	}
	set.Add("name", delta.Name)
	set.Add("version", delta.Version)
	set.Add("domain", delta.Domain)
	set.Add("tenant", delta.Tenant)
	set.Add("description_purpose", delta.DescriptionPurpose)
	set.Add("description_limitations", delta.DescriptionLimitations)
	set.Add("description_usage", delta.DescriptionUsage)
	set.Add("product_created_ts", delta.ProductCreatedTs)
	set.AddRaw(`"updated_at" = now()`)

	tag, err := tx.Exec(
		ctx,
		fmt.Sprintf(
			`update "data_products" set %s where "id" = %s`,
			set.Expr(), set.Next(),
		),
		append(set.Args(), id)...,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{Table: "data_products", Identity: id}
	}

	if delta.Tags != nil {
		if err := kpgintr.ReplaceTags(
			ctx, tx, "product_tags", "product_id", id, *delta.Tags,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (p *productPG) Delete(ctx context.Context, id string) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// children go with the row, by the schema's cascade rules.
	_, err = conn.Exec(ctx, `delete from "data_products" where "id" = $1`, id)
	return err
}

func (p *productPG) Get(ctx context.Context, id string) (domain.Product, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	defer conn.Release()

	rows, err := scanner.New[productRow]().QueryAll(
		ctx, conn,
		`select `+productColumns+` from "data_products" where "id" = $1`,
		id,
	)
	if err != nil {
		return domain.Product{}, err
	}
	if len(rows) == 0 {
		return domain.Product{}, kpgerr.Missing{Table: "data_products", Identity: id}
	}

	product := domain.Product{ProductBody: rows[0].Body()}

	if product.Tags, err = kpgintr.GetTags(
		ctx, conn, "product_tags", "product_id", id,
	); err != nil {
		return domain.Product{}, err
	}

	if product.InputPorts, err = getInputPorts(ctx, conn, id); err != nil {
		return domain.Product{}, err
	}
	if product.OutputPorts, err = getOutputPorts(ctx, conn, id); err != nil {
		return domain.Product{}, err
	}
	if product.ManagementPorts, err = getManagementPorts(ctx, conn, id); err != nil {
		return domain.Product{}, err
	}
	if product.TeamMembers, err = kpgintr.GetTeamMembers(
		ctx, conn, "product_team_members", "product_id", id,
	); err != nil {
		return domain.Product{}, err
	}
	if product.SupportChannels, err = kpgintr.GetSupportChannels(
		ctx, conn, "product_support_channels", "product_id", id,
	); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (p *productPG) List(ctx context.Context, page int, pageSize int) ([]domain.ProductSummary, int, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer conn.Release()

	var total int
	if err := conn.QueryRow(
		ctx, `select count(*) from "data_products"`,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}

	type summaryRow struct {
		Id                 string
		Name               *string
		Version            *string
		Status             string
		Domain             *string
		DescriptionPurpose *string
		CreatedAt          time.Time
		UpdatedAt          time.Time
	}
	rows, err := scanner.New[summaryRow]().QueryAll(
		ctx, conn,
		`
		select
			"id", "name", "version", "status", "domain",
			"description_purpose", "created_at", "updated_at"
		from "data_products"
		order by "updated_at" desc, "id"
		limit $1 offset $2
		`,
		pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, 0, err
	}

	return slices.Map(rows, func(r summaryRow) domain.ProductSummary {
		return domain.ProductSummary{
			Id:                 r.Id,
			Name:               r.Name,
			Version:            r.Version,
			Status:             domain.Status(r.Status),
			Domain:             r.Domain,
			DescriptionPurpose: r.DescriptionPurpose,
			CreatedAt:          r.CreatedAt,
			UpdatedAt:          r.UpdatedAt,
		}
	}), total, nil
}

func (p *productPG) Members(ctx context.Context) ([]domain.DomainMember, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	type memberRow struct {
		ParentId   string `sql:"product_id"`
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
			m."product_id", p."name" as "parent_name", p."domain",
			m."username", m."name", m."role"
		from "product_team_members" as m
		inner join "data_products" as p on p."id" = m."product_id"
		`,
	)
	if err != nil {
		return nil, err
	}

	return slices.Map(rows, func(r memberRow) domain.DomainMember {
		return domain.DomainMember{
			ParentId:   r.ParentId,
			ParentKind: domain.ParentProduct,
			ParentName: r.ParentName,
			Domain:     r.Domain,
			Username:   r.Username,
			Name:       r.Name,
			Role:       r.Role,
		}
	}), nil
}

func (p *productPG) Domains(ctx context.Context) ([]domain.DomainCount, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return kpgintr.DomainCounts(ctx, conn, "data_products")
}
