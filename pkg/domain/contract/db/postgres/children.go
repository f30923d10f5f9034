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

// ---- schema objects ----

type schemaObjectRow struct {
	Id                         string
	ContractId                 string
	Name                       string
	LogicalType                string
	PhysicalType               *string
	PhysicalName               *string
	BusinessName               *string
	Description                *string
	DataGranularityDescription *string
	OrderIndex                 int
}

func getSchemaObjects(ctx context.Context, conn kpool.Queryer, contractId string) ([]domain.SchemaObject, error) {
	rows, err := scanner.New[schemaObjectRow]().QueryAll(
		ctx, conn,
		`
		select
			"id", "contract_id", "name", "logical_type",
			"physical_type", "physical_name", "business_name",
			"description", "data_granularity_description", "order_index"
		from "contract_schema_objects"
		where "contract_id" = $1
		order by "order_index", "name"
		`,
		contractId,
	)
	if err != nil {
		return nil, err
	}

	objects := slices.Map(rows, func(r schemaObjectRow) domain.SchemaObject {
		return domain.SchemaObject{
			Id:                         r.Id,
			ContractId:                 r.ContractId,
			Name:                       r.Name,
			LogicalType:                r.LogicalType,
			PhysicalType:               r.PhysicalType,
			PhysicalName:               r.PhysicalName,
			BusinessName:               r.BusinessName,
			Description:                r.Description,
			DataGranularityDescription: r.DataGranularityDescription,
			OrderIndex:                 r.OrderIndex,
		}
	})
	if len(objects) == 0 {
		return objects, nil
	}

	properties, err := getSchemaProperties(ctx, conn, contractId)
	if err != nil {
		return nil, err
	}
	rules, err := getQualityRules(ctx, conn, contractId)
	if err != nil {
		return nil, err
	}

	for i := range objects {
		objects[i].Properties = properties[objects[i].Id]
		objects[i].QualityRules = rules[objects[i].Id]
	}
	return objects, nil
}

func (c *contractPG) AddSchemaObject(ctx context.Context, contractId string, spec domain.SchemaObjectSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	id := uuid.NewString()
	if _, err := conn.Exec(
		ctx,
		`
		insert into "contract_schema_objects" (
			"id", "contract_id", "name",
			"physical_type", "physical_name", "business_name",
			"description", "data_granularity_description", "order_index"
		) values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
		id, contractId, spec.Name,
		spec.PhysicalType, spec.PhysicalName, spec.BusinessName,
		spec.Description, spec.DataGranularityDescription, spec.OrderIndex,
	); err != nil {
		return "", kpgintr.WrapMissingParent(err, "data_contracts", contractId)
	}
	return id, nil
}

func (c *contractPG) UpdateSchemaObject(ctx context.Context, objectId string, delta domain.SchemaObjectDelta) error {
	if err := delta.Validate(); err != nil {
		return err
	}

	set := kpgintr.NewSetClause()
	set.Add("name", delta.Name)
	set.Add("physical_type", delta.PhysicalType)
	set.Add("physical_name", delta.PhysicalName)
	set.Add("business_name", delta.BusinessName)
	set.Add("description", delta.Description)
	set.Add("data_granularity_description", delta.DataGranularityDescription)
	set.Add("order_index", delta.OrderIndex)

	return c.updateChild(ctx, "contract_schema_objects", objectId, set)
}

func (c *contractPG) DeleteSchemaObject(ctx context.Context, objectId string) error {
	return c.deleteChild(ctx, "contract_schema_objects", objectId)
}

// ---- schema properties ----

type schemaPropertyRow struct {
	Id               string
	SchemaObjectId   string
	ParentPropertyId *string

	Name         string
	LogicalType  *string
	PhysicalType *string
	PhysicalName *string
	BusinessName *string
	Description  *string

	Required             bool
	Unique               bool
	PrimaryKey           bool
	PrimaryKeyPosition   int
	Partitioned          bool
	PartitionKeyPosition int

	Classification      *string
	EncryptedName       *string
	CriticalDataElement bool

	TransformSourceObjects *string
	TransformLogic         *string
	TransformDescription   *string

	Examples           *string
	LogicalTypeOptions *string

	OrderIndex int
}

func (r schemaPropertyRow) Model() (domain.SchemaProperty, error) {
	transform, err := jsoncol.DecodeSlice[string](r.TransformSourceObjects)
	if err != nil {
		return domain.SchemaProperty{}, err
	}
	examples, err := jsoncol.DecodeSlice[any](r.Examples)
	if err != nil {
		return domain.SchemaProperty{}, err
	}
	options, err := jsoncol.DecodeMap[any](r.LogicalTypeOptions)
	if err != nil {
		return domain.SchemaProperty{}, err
	}

	p := domain.SchemaProperty{
		Id:               r.Id,
		SchemaObjectId:   r.SchemaObjectId,
		ParentPropertyId: r.ParentPropertyId,

		Name:         r.Name,
		PhysicalType: r.PhysicalType,
		PhysicalName: r.PhysicalName,
		BusinessName: r.BusinessName,
		Description:  r.Description,

		Required:             r.Required,
		Unique:               r.Unique,
		PrimaryKey:           r.PrimaryKey,
		PrimaryKeyPosition:   r.PrimaryKeyPosition,
		Partitioned:          r.Partitioned,
		PartitionKeyPosition: r.PartitionKeyPosition,

		EncryptedName:       r.EncryptedName,
		CriticalDataElement: r.CriticalDataElement,

		TransformSourceObjects: transform,
		TransformLogic:         r.TransformLogic,
		TransformDescription:   r.TransformDescription,

		Examples:           examples,
		LogicalTypeOptions: options,

		OrderIndex: r.OrderIndex,
	}
	if r.LogicalType != nil {
		lt := domain.LogicalType(*r.LogicalType)
		p.LogicalType = &lt
	}
	if r.Classification != nil {
		cl := domain.Classification(*r.Classification)
		p.Classification = &cl
	}
	return p, nil
}

const schemaPropertyColumns = `
	"id", "schema_object_id", "parent_property_id",
	"name", "logical_type", "physical_type", "physical_name",
	"business_name", "description",
	"required", "unique", "primary_key", "primary_key_position",
	"partitioned", "partition_key_position",
	"classification", "encrypted_name", "critical_data_element",
	"transform_source_objects", "transform_logic", "transform_description",
	"examples", "logical_type_options", "order_index"
`

func getSchemaProperties(ctx context.Context, conn kpool.Queryer, contractId string) (map[string][]domain.SchemaProperty, error) {
	rows, err := scanner.New[schemaPropertyRow]().QueryAll(
		ctx, conn,
		`
		select `+schemaPropertyColumns+`
		from "contract_schema_properties"
		where "schema_object_id" in (
			select "id" from "contract_schema_objects" where "contract_id" = $1
		)
		order by "order_index", "name"
		`,
		contractId,
	)
	if err != nil {
		return nil, err
	}

	properties := map[string][]domain.SchemaProperty{}
	for _, r := range rows {
		p, err := r.Model()
		if err != nil {
			return nil, err
		}
		properties[r.SchemaObjectId] = append(properties[r.SchemaObjectId], p)
	}
	return properties, nil
}

func (c *contractPG) AddSchemaProperty(ctx context.Context, objectId string, spec domain.SchemaPropertySpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	transform, err := jsoncol.EncodeSlice(kpgintr.EmptyAsNil(spec.TransformSourceObjects))
	if err != nil {
		return "", err
	}
	examples, err := jsoncol.EncodeSlice(kpgintr.EmptyAsNil(spec.Examples))
	if err != nil {
		return "", err
	}
	options, err := jsoncol.EncodeMap(kpgintr.EmptyMapAsNil(spec.LogicalTypeOptions))
	if err != nil {
		return "", err
	}

	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	id := uuid.NewString()
	if _, err := conn.Exec(
		ctx,
		`
		insert into "contract_schema_properties" (
			"id", "schema_object_id", "parent_property_id",
			"name", "logical_type", "physical_type", "physical_name",
			"business_name", "description",
			"required", "unique", "primary_key", "primary_key_position",
			"partitioned", "partition_key_position",
			"classification", "encrypted_name", "critical_data_element",
			"transform_source_objects", "transform_logic", "transform_description",
			"examples", "logical_type_options", "order_index"
		) values (
			$1, $2, $3,
			$4, $5, $6, $7,
			$8, $9,
			$10, $11, $12, $13,
			$14, $15,
			$16, $17, $18,
			$19, $20, $21,
			$22, $23, $24
		)
		`,
		id, objectId, spec.ParentPropertyId,
		spec.Name, kpgintr.StringOf(spec.LogicalType), spec.PhysicalType, spec.PhysicalName,
		spec.BusinessName, spec.Description,
		spec.Required, spec.Unique, spec.PrimaryKey, spec.PrimaryKeyPosition,
		spec.Partitioned, spec.PartitionKeyPosition,
		kpgintr.StringOf(spec.Classification), spec.EncryptedName, spec.CriticalDataElement,
		transform, spec.TransformLogic, spec.TransformDescription,
		examples, options, spec.OrderIndex,
	); err != nil {
		return "", kpgintr.WrapMissingParent(err, "contract_schema_objects", objectId)
	}
	return id, nil
}

func (c *contractPG) UpdateSchemaProperty(ctx context.Context, propertyId string, delta domain.SchemaPropertyDelta) error {
	if err := delta.Validate(); err != nil {
		return err
	}

	set := kpgintr.NewSetClause()
	set.Add("name", delta.Name)
	if delta.LogicalType != nil {
		set.Add("logical_type", string(*delta.LogicalType))
	}
	set.Add("physical_type", delta.PhysicalType)
	set.Add("physical_name", delta.PhysicalName)
	set.Add("business_name", delta.BusinessName)
	set.Add("description", delta.Description)
	set.Add("required", delta.Required)
	set.Add("unique", delta.Unique)
	set.Add("primary_key", delta.PrimaryKey)
	set.Add("primary_key_position", delta.PrimaryKeyPosition)
	set.Add("partitioned", delta.Partitioned)
	set.Add("partition_key_position", delta.PartitionKeyPosition)
	if delta.Classification != nil {
		set.Add("classification", string(*delta.Classification))
	}
	set.Add("encrypted_name", delta.EncryptedName)
	set.Add("critical_data_element", delta.CriticalDataElement)
	if delta.TransformSourceObjects != nil {
		col, err := jsoncol.EncodeSlice(kpgintr.EmptyAsNil(*delta.TransformSourceObjects))
		if err != nil {
			return err
		}
		set.AddNullable("transform_source_objects", col)
	}
	set.Add("transform_logic", delta.TransformLogic)
	set.Add("transform_description", delta.TransformDescription)
	if delta.Examples != nil {
		col, err := jsoncol.EncodeSlice(kpgintr.EmptyAsNil(*delta.Examples))
		if err != nil {
			return err
		}
		set.AddNullable("examples", col)
	}
	if delta.LogicalTypeOptions != nil {
		col, err := jsoncol.EncodeMap(kpgintr.EmptyMapAsNil(*delta.LogicalTypeOptions))
		if err != nil {
			return err
		}
		set.AddNullable("logical_type_options", col)
	}
	set.Add("order_index", delta.OrderIndex)

	return c.updateChild(ctx, "contract_schema_properties", propertyId, set)
}

func (c *contractPG) DeleteSchemaProperty(ctx context.Context, propertyId string) error {
	return c.deleteChild(ctx, "contract_schema_properties", propertyId)
}

// ---- quality rules ----

type qualityRuleRow struct {
	Id               string
	SchemaObjectId   string
	SchemaPropertyId *string

	Type        string
	Name        *string
	Description *string

	Rule      *string
	Operators *string

	Query *string

	Engine         *string
	Implementation *string

	Dimension      *string
	Severity       *string
	BusinessImpact *string
	Unit           *string
	ValidValues    *string

	Scheduler *string
	Schedule  *string
}

func (r qualityRuleRow) Model() (domain.QualityRule, error) {
	operators, err := jsoncol.DecodeMap[any](r.Operators)
	if err != nil {
		return domain.QualityRule{}, err
	}
	validValues, err := jsoncol.DecodeSlice[any](r.ValidValues)
	if err != nil {
		return domain.QualityRule{}, err
	}

	rule := domain.QualityRule{
		Id:               r.Id,
		SchemaObjectId:   r.SchemaObjectId,
		SchemaPropertyId: r.SchemaPropertyId,

		Type:        domain.QualityType(r.Type),
		Name:        r.Name,
		Description: r.Description,

		Rule:      r.Rule,
		Operators: operators,

		Query: r.Query,

		Engine:         r.Engine,
		Implementation: r.Implementation,

		Severity:       r.Severity,
		BusinessImpact: r.BusinessImpact,
		Unit:           r.Unit,
		ValidValues:    validValues,

		Scheduler: r.Scheduler,
		Schedule:  r.Schedule,
	}
	if r.Dimension != nil {
		d := domain.QualityDimension(*r.Dimension)
		rule.Dimension = &d
	}
	return rule, nil
}

const qualityRuleColumns = `
	"id", "schema_object_id", "schema_property_id",
	"type", "name", "description",
	"rule", "operators", "query", "engine", "implementation",
	"dimension", "severity", "business_impact", "unit", "valid_values",
	"scheduler", "schedule"
`

func getQualityRules(ctx context.Context, conn kpool.Queryer, contractId string) (map[string][]domain.QualityRule, error) {
	rows, err := scanner.New[qualityRuleRow]().QueryAll(
		ctx, conn,
		`
		select `+qualityRuleColumns+`
		from "contract_quality_rules"
		where "schema_object_id" in (
			select "id" from "contract_schema_objects" where "contract_id" = $1
		)
		`,
		contractId,
	)
	if err != nil {
		return nil, err
	}

	rules := map[string][]domain.QualityRule{}
	for _, r := range rows {
		rule, err := r.Model()
		if err != nil {
			return nil, err
		}
		rules[r.SchemaObjectId] = append(rules[r.SchemaObjectId], rule)
	}
	return rules, nil
}

func (c *contractPG) AddQualityRule(ctx context.Context, objectId string, spec domain.QualityRuleSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	operators, err := jsoncol.EncodeMap(kpgintr.EmptyMapAsNil(spec.Operators))
	if err != nil {
		return "", err
	}
	validValues, err := jsoncol.EncodeSlice(kpgintr.EmptyAsNil(spec.ValidValues))
	if err != nil {
		return "", err
	}

	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	id := uuid.NewString()
	if _, err := conn.Exec(
		ctx,
		`
		insert into "contract_quality_rules" (
			"id", "schema_object_id", "schema_property_id",
			"type", "name", "description",
			"rule", "operators", "query", "engine", "implementation",
			"dimension", "severity", "business_impact", "unit", "valid_values",
			"scheduler", "schedule"
		) values (
			$1, $2, $3,
			$4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16,
			$17, $18
		)
		`,
		id, objectId, spec.SchemaPropertyId,
		string(spec.Type), spec.Name, spec.Description,
		spec.Rule, operators, spec.Query, spec.Engine, spec.Implementation,
		kpgintr.StringOf(spec.Dimension), spec.Severity, spec.BusinessImpact, spec.Unit, validValues,
		spec.Scheduler, spec.Schedule,
	); err != nil {
		return "", kpgintr.WrapMissingParent(err, "contract_schema_objects", objectId)
	}
	return id, nil
}

func (c *contractPG) UpdateQualityRule(ctx context.Context, ruleId string, delta domain.QualityRuleDelta) error {
	if err := delta.Validate(); err != nil {
		return err
	}

	set := kpgintr.NewSetClause()
	if delta.Type != nil {
		set.Add("type", string(*delta.Type))
	}
	set.Add("name", delta.Name)
	set.Add("description", delta.Description)
	set.Add("rule", delta.Rule)
	if delta.Operators != nil {
		col, err := jsoncol.EncodeMap(kpgintr.EmptyMapAsNil(*delta.Operators))
		if err != nil {
			return err
		}
		set.AddNullable("operators", col)
	}
	set.Add("query", delta.Query)
	set.Add("engine", delta.Engine)
	set.Add("implementation", delta.Implementation)
	if delta.Dimension != nil {
		set.Add("dimension", string(*delta.Dimension))
	}
	set.Add("severity", delta.Severity)
	set.Add("business_impact", delta.BusinessImpact)
	set.Add("unit", delta.Unit)
	if delta.ValidValues != nil {
		col, err := jsoncol.EncodeSlice(kpgintr.EmptyAsNil(*delta.ValidValues))
		if err != nil {
			return err
		}
		set.AddNullable("valid_values", col)
	}
	set.Add("scheduler", delta.Scheduler)
	set.Add("schedule", delta.Schedule)

	return c.updateChild(ctx, "contract_quality_rules", ruleId, set)
}

func (c *contractPG) DeleteQualityRule(ctx context.Context, ruleId string) error {
	return c.deleteChild(ctx, "contract_quality_rules", ruleId)
}

// ---- team members ----

func (c *contractPG) AddTeamMember(ctx context.Context, contractId string, spec domain.TeamMemberSpec) (string, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	return kpgintr.AddTeamMember(
		ctx, conn,
		"contract_team_members", "contract_id", "data_contracts", contractId,
		spec,
	)
}

func (c *contractPG) DeleteTeamMember(ctx context.Context, memberId string) error {
	return c.deleteChild(ctx, "contract_team_members", memberId)
}

// ---- roles ----

type roleRow struct {
	Id                   string
	ContractId           string
	Role                 string
	Description          *string
	Access               *string
	FirstLevelApprovers  *string
	SecondLevelApprovers *string
}

func getRoles(ctx context.Context, conn kpool.Queryer, contractId string) ([]domain.Role, error) {
	rows, err := scanner.New[roleRow]().QueryAll(
		ctx, conn,
		`
		select
			"id", "contract_id", "role", "description", "access",
			"first_level_approvers", "second_level_approvers"
		from "contract_roles"
		where "contract_id" = $1
		order by "role"
		`,
		contractId,
	)
	if err != nil {
		return nil, err
	}
	return slices.Map(rows, func(r roleRow) domain.Role {
		return domain.Role{
			Id:                   r.Id,
			ContractId:           r.ContractId,
			Role:                 r.Role,
			Description:          r.Description,
			Access:               r.Access,
			FirstLevelApprovers:  r.FirstLevelApprovers,
			SecondLevelApprovers: r.SecondLevelApprovers,
		}
	}), nil
}

func (c *contractPG) AddRole(ctx context.Context, contractId string, spec domain.RoleSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	id := uuid.NewString()
	if _, err := conn.Exec(
		ctx,
		`
		insert into "contract_roles" (
			"id", "contract_id", "role", "description", "access",
			"first_level_approvers", "second_level_approvers"
		) values ($1, $2, $3, $4, $5, $6, $7)
		`,
		id, contractId, spec.Role, spec.Description, spec.Access,
		spec.FirstLevelApprovers, spec.SecondLevelApprovers,
	); err != nil {
		return "", kpgintr.WrapMissingParent(err, "data_contracts", contractId)
	}
	return id, nil
}

func (c *contractPG) DeleteRole(ctx context.Context, roleId string) error {
	return c.deleteChild(ctx, "contract_roles", roleId)
}

// ---- servers ----

type serverRow struct {
	Id           string
	ContractId   string
	Server       string
	Type         string
	Description  *string
	Environment  *string
	ServerConfig *string
}

func getServers(ctx context.Context, conn kpool.Queryer, contractId string) ([]domain.Server, error) {
	rows, err := scanner.New[serverRow]().QueryAll(
		ctx, conn,
		`
		select
			"id", "contract_id", "server", "type",
			"description", "environment", "server_config"
		from "contract_servers"
		where "contract_id" = $1
		order by "server"
		`,
		contractId,
	)
	if err != nil {
		return nil, err
	}

	servers := make([]domain.Server, 0, len(rows))
	for _, r := range rows {
		config, err := jsoncol.DecodeMap[any](r.ServerConfig)
		if err != nil {
			return nil, err
		}
		servers = append(servers, domain.Server{
			Id:          r.Id,
			ContractId:  r.ContractId,
			Server:      r.Server,
			Type:        domain.ServerType(r.Type),
			Description: r.Description,
			Environment: r.Environment,
			Config:      config,
		})
	}
	return servers, nil
}

func (c *contractPG) AddServer(ctx context.Context, contractId string, spec domain.ServerSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	config, err := jsoncol.EncodeMap(kpgintr.EmptyMapAsNil(spec.Config))
	if err != nil {
		return "", err
	}

	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	id := uuid.NewString()
	if _, err := conn.Exec(
		ctx,
		`
		insert into "contract_servers" (
			"id", "contract_id", "server", "type",
			"description", "environment", "server_config"
		) values ($1, $2, $3, $4, $5, $6, $7)
		`,
		id, contractId, spec.Server, string(spec.Type),
		spec.Description, spec.Environment, config,
	); err != nil {
		return "", kpgintr.WrapMissingParent(err, "data_contracts", contractId)
	}
	return id, nil
}

func (c *contractPG) DeleteServer(ctx context.Context, serverId string) error {
	return c.deleteChild(ctx, "contract_servers", serverId)
}

// ---- sla properties ----

type slaPropertyRow struct {
	Id         string
	ContractId string
	Property   string
	Value      string
	ValueExt   *string
	Unit       *string
	Element    *string
	Driver     *string
}

func getSlaProperties(ctx context.Context, conn kpool.Queryer, contractId string) ([]domain.SlaProperty, error) {
	rows, err := scanner.New[slaPropertyRow]().QueryAll(
		ctx, conn,
		`
		select
			"id", "contract_id", "property", "value",
			"value_ext", "unit", "element", "driver"
		from "contract_sla_properties"
		where "contract_id" = $1
		order by "property"
		`,
		contractId,
	)
	if err != nil {
		return nil, err
	}
	return slices.Map(rows, func(r slaPropertyRow) domain.SlaProperty {
		p := domain.SlaProperty{
			Id:         r.Id,
			ContractId: r.ContractId,
			Property:   domain.SlaPropertyName(r.Property),
			Value:      r.Value,
			ValueExt:   r.ValueExt,
			Unit:       r.Unit,
			Element:    r.Element,
		}
		if r.Driver != nil {
			d := domain.SlaDriver(*r.Driver)
			p.Driver = &d
		}
		return p
	}), nil
}

func (c *contractPG) AddSlaProperty(ctx context.Context, contractId string, spec domain.SlaPropertySpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	id := uuid.NewString()
	if _, err := conn.Exec(
		ctx,
		`
		insert into "contract_sla_properties" (
			"id", "contract_id", "property", "value",
			"value_ext", "unit", "element", "driver"
		) values ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
		id, contractId, string(spec.Property), spec.Value,
		spec.ValueExt, spec.Unit, spec.Element, kpgintr.StringOf(spec.Driver),
	); err != nil {
		return "", kpgintr.WrapMissingParent(err, "data_contracts", contractId)
	}
	return id, nil
}

func (c *contractPG) DeleteSlaProperty(ctx context.Context, slaId string) error {
	return c.deleteChild(ctx, "contract_sla_properties", slaId)
}

// ---- support channels ----

func (c *contractPG) AddSupportChannel(ctx context.Context, contractId string, spec domain.SupportChannelSpec) (string, error) {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return "", err
	}
	defer conn.Release()

	return kpgintr.AddSupportChannel(
		ctx, conn,
		"contract_support_channels", "contract_id", "data_contracts", contractId,
		spec,
	)
}

func (c *contractPG) DeleteSupportChannel(ctx context.Context, channelId string) error {
	return c.deleteChild(ctx, "contract_support_channels", channelId)
}

// ---- shared plumbing ----

func (c *contractPG) updateChild(ctx context.Context, table string, id string, set *kpgintr.SetClause) error {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return kpgintr.UpdateChild(ctx, conn, table, id, set)
}

func (c *contractPG) deleteChild(ctx context.Context, table string, id string) error {
	conn, err := c.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return kpgintr.DeleteChild(ctx, conn, table, id)
}
