package postgres

import (
	"context"

	"github.com/google/uuid"
	kpool "github.com/lumendata/govcat/pkg/conn/db/postgres/pool"
	"github.com/lumendata/govcat/pkg/conn/db/postgres/scanner"
	"github.com/lumendata/govcat/pkg/domain"
	kpgintr "github.com/lumendata/govcat/pkg/domain/internal/db/postgres"
	"github.com/lumendata/govcat/pkg/utils/jsoncol"
	"github.com/lumendata/govcat/pkg/utils/slices"
)

// ---- input ports ----

type inputPortRow struct {
	Id        string
	ProductId string
	Name      string
	Version   *string

	// ContractName comes from a left join: nil when contract_id points
	// at nothing, while the port row itself survives.
	ContractId   *string
	ContractName *string

	Description *string
	OrderIndex  int
}

func getInputPorts(ctx context.Context, conn kpool.Queryer, productId string) ([]domain.InputPort, error) {
	rows, err := scanner.New[inputPortRow]().QueryAll(
		ctx, conn,
		`
		select
			p."id", p."product_id", p."name", p."version",
			p."contract_id", c."name" as "contract_name",
			p."description", p."order_index"
		from "product_input_ports" as p
		left join "data_contracts" as c on c."id" = p."contract_id"
		where p."product_id" = $1
		order by p."order_index", p."name"
		`,
		productId,
	)
	if err != nil {
		return nil, err
	}
	return slices.Map(rows, func(r inputPortRow) domain.InputPort {
		return domain.InputPort{
			Id:           r.Id,
			ProductId:    r.ProductId,
			Name:         r.Name,
			Version:      r.Version,
			ContractId:   r.ContractId,
			ContractName: r.ContractName,
			Description:  r.Description,
			OrderIndex:   r.OrderIndex,
		}
	}), nil
}

func (p *productPG) AddInputPort(ctx context.Context, productId string, spec domain.InputPortSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	id := uuid.NewString()
	if _, err := conn.Exec(
		ctx,
		`
		insert into "product_input_ports" (
			"id", "product_id", "name", "version",
			"contract_id", "description", "order_index"
		) values ($1, $2, $3, $4, $5, $6, $7)
		`,
		id, productId, spec.Name, spec.Version,
		spec.ContractId, spec.Description, spec.OrderIndex,
	); err != nil {
		return "", kpgintr.WrapMissingParent(err, "data_products", productId)
	}
	return id, nil
}

func (p *productPG) DeleteInputPort(ctx context.Context, portId string) error {
	return p.deleteChild(ctx, "product_input_ports", portId)
}

// ---- output ports ----

type outputPortRow struct {
	Id        string
	ProductId string
	Name      string
	Version   *string

	ContractId   *string
	ContractName *string

	Type        *string
	Description *string
	Sbom        *string
	OrderIndex  int
}

func (r outputPortRow) Model() (domain.OutputPort, error) {
	sbom, err := jsoncol.DecodeSlice[domain.SbomEntry](r.Sbom)
	if err != nil {
		return domain.OutputPort{}, err
	}

	port := domain.OutputPort{
		Id:           r.Id,
		ProductId:    r.ProductId,
		Name:         r.Name,
		Version:      r.Version,
		ContractId:   r.ContractId,
		ContractName: r.ContractName,
		Description:  r.Description,
		Sbom:         sbom,
		OrderIndex:   r.OrderIndex,
	}
	if r.Type != nil {
		t := domain.OutputPortType(*r.Type)
		port.Type = &t
	}
	return port, nil
}

func getOutputPorts(ctx context.Context, conn kpool.Queryer, productId string) ([]domain.OutputPort, error) {
	rows, err := scanner.New[outputPortRow]().QueryAll(
		ctx, conn,
		`
		select
			p."id", p."product_id", p."name", p."version",
			p."contract_id", c."name" as "contract_name",
			p."type", p."description", p."sbom", p."order_index"
		from "product_output_ports" as p
		left join "data_contracts" as c on c."id" = p."contract_id"
		where p."product_id" = $1
		order by p."order_index", p."name"
		`,
		productId,
	)
	if err != nil {
		return nil, err
	}

	ports := make([]domain.OutputPort, 0, len(rows))
	for _, r := range rows {
		port, err := r.Model()
		if err != nil {
			return nil, err
		}
		ports = append(ports, port)
	}
	return ports, nil
}

func (p *productPG) AddOutputPort(ctx context.Context, productId string, spec domain.OutputPortSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	sbom, err := jsoncol.EncodeSlice(kpgintr.EmptyAsNil(spec.Sbom))
	if err != nil {
		return "", err
	}

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	id := uuid.NewString()
	if _, err := conn.Exec(
		ctx,
		`
		insert into "product_output_ports" (
			"id", "product_id", "name", "version",
			"contract_id", "type", "description", "sbom", "order_index"
		) values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
		id, productId, spec.Name, spec.Version,
		spec.ContractId, kpgintr.StringOf(spec.Type), spec.Description, sbom, spec.OrderIndex,
	); err != nil {
		return "", kpgintr.WrapMissingParent(err, "data_products", productId)
	}
	return id, nil
}

func (p *productPG) DeleteOutputPort(ctx context.Context, portId string) error {
	return p.deleteChild(ctx, "product_output_ports", portId)
}

// ---- management ports ----

type managementPortRow struct {
	Id          string
	ProductId   string
	Name        string
	Content     string
	Type        string
	Url         *string
	Channel     *string
	Description *string
}

func getManagementPorts(ctx context.Context, conn kpool.Queryer, productId string) ([]domain.ManagementPort, error) {
	rows, err := scanner.New[managementPortRow]().QueryAll(
		ctx, conn,
		`
		select
			"id", "product_id", "name", "content", "type",
			"url", "channel", "description"
		from "product_management_ports"
		where "product_id" = $1
		order by "name"
		`,
		productId,
	)
	if err != nil {
		return nil, err
	}
	return slices.Map(rows, func(r managementPortRow) domain.ManagementPort {
		return domain.ManagementPort{
			Id:          r.Id,
			ProductId:   r.ProductId,
			Name:        r.Name,
			Content:     domain.ManagementPortContent(r.Content),
			Type:        domain.ManagementPortType(r.Type),
			URL:         r.Url,
			Channel:     r.Channel,
			Description: r.Description,
		}
	}), nil
}

func (p *productPG) AddManagementPort(ctx context.Context, productId string, spec domain.ManagementPortSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	id := uuid.NewString()
	if _, err := conn.Exec(
		ctx,
		`
		insert into "product_management_ports" (
			"id", "product_id", "name", "content", "type",
			"url", "channel", "description"
		) values ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
		id, productId, spec.Name, string(spec.Content), string(spec.Type),
		spec.URL, spec.Channel, spec.Description,
	); err != nil {
		return "", kpgintr.WrapMissingParent(err, "data_products", productId)
	}
	return id, nil
}

func (p *productPG) DeleteManagementPort(ctx context.Context, portId string) error {
	return p.deleteChild(ctx, "product_management_ports", portId)
}

// ---- team members and support channels ----

func (p *productPG) AddTeamMember(ctx context.Context, productId string, spec domain.TeamMemberSpec) (string, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	return kpgintr.AddTeamMember(
		ctx, conn,
		"product_team_members", "product_id", "data_products", productId,
		spec,
	)
}

func (p *productPG) DeleteTeamMember(ctx context.Context, memberId string) error {
	return p.deleteChild(ctx, "product_team_members", memberId)
}

func (p *productPG) AddSupportChannel(ctx context.Context, productId string, spec domain.SupportChannelSpec) (string, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	return kpgintr.AddSupportChannel(
		ctx, conn,
		"product_support_channels", "product_id", "data_products", productId,
		spec,
	)
}

func (p *productPG) DeleteSupportChannel(ctx context.Context, channelId string) error {
	return p.deleteChild(ctx, "product_support_channels", channelId)
}

func (p *productPG) deleteChild(ctx context.Context, table string, id string) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return kpgintr.DeleteChild(ctx, conn, table, id)
}
