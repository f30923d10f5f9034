package contracts

import (
	"github.com/lumendata/govcat/pkg/api/types/internal/enums"
	"github.com/lumendata/govcat/pkg/domain"
	"github.com/lumendata/govcat/pkg/utils/slices"
)

type SchemaObject struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	LogicalType string `json:"logicalType"`

	PhysicalType               *string `json:"physicalType,omitempty"`
	PhysicalName               *string `json:"physicalName,omitempty"`
	BusinessName               *string `json:"businessName,omitempty"`
	Description                *string `json:"description,omitempty"`
	DataGranularityDescription *string `json:"dataGranularityDescription,omitempty"`

	OrderIndex int `json:"orderIndex"`

	Properties   []SchemaProperty `json:"properties"`
	QualityRules []QualityRule    `json:"quality"`
}

func ComposeSchemaObject(o domain.SchemaObject) SchemaObject {
	return SchemaObject{
		Id:          o.Id,
		Name:        o.Name,
		LogicalType: o.LogicalType,

		PhysicalType:               o.PhysicalType,
		PhysicalName:               o.PhysicalName,
		BusinessName:               o.BusinessName,
		Description:                o.Description,
		DataGranularityDescription: o.DataGranularityDescription,

		OrderIndex: o.OrderIndex,

		Properties:   slices.Map(o.Properties, ComposeSchemaProperty),
		QualityRules: slices.Map(o.QualityRules, ComposeQualityRule),
	}
}

type SchemaObjectRequest struct {
	Name                       string  `json:"name"`
	PhysicalType               *string `json:"physicalType,omitempty"`
	PhysicalName               *string `json:"physicalName,omitempty"`
	BusinessName               *string `json:"businessName,omitempty"`
	Description                *string `json:"description,omitempty"`
	DataGranularityDescription *string `json:"dataGranularityDescription,omitempty"`
	OrderIndex                 int     `json:"orderIndex,omitempty"`
}

func (r SchemaObjectRequest) ToSpec() domain.SchemaObjectSpec {
	return domain.SchemaObjectSpec{
		Name:                       r.Name,
		PhysicalType:               r.PhysicalType,
		PhysicalName:               r.PhysicalName,
		BusinessName:               r.BusinessName,
		Description:                r.Description,
		DataGranularityDescription: r.DataGranularityDescription,
		OrderIndex:                 r.OrderIndex,
	}
}

type SchemaObjectPatch struct {
	Name                       *string `json:"name,omitempty"`
	PhysicalType               *string `json:"physicalType,omitempty"`
	PhysicalName               *string `json:"physicalName,omitempty"`
	BusinessName               *string `json:"businessName,omitempty"`
	Description                *string `json:"description,omitempty"`
	DataGranularityDescription *string `json:"dataGranularityDescription,omitempty"`
	OrderIndex                 *int    `json:"orderIndex,omitempty"`
}

func (r SchemaObjectPatch) ToDelta() domain.SchemaObjectDelta {
	return domain.SchemaObjectDelta{
		Name:                       r.Name,
		PhysicalType:               r.PhysicalType,
		PhysicalName:               r.PhysicalName,
		BusinessName:               r.BusinessName,
		Description:                r.Description,
		DataGranularityDescription: r.DataGranularityDescription,
		OrderIndex:                 r.OrderIndex,
	}
}

type SchemaProperty struct {
	Id               string  `json:"id"`
	ParentPropertyId *string `json:"parentPropertyId,omitempty"`

	Name         string  `json:"name"`
	LogicalType  *string `json:"logicalType,omitempty"`
	PhysicalType *string `json:"physicalType,omitempty"`
	PhysicalName *string `json:"physicalName,omitempty"`
	BusinessName *string `json:"businessName,omitempty"`
	Description  *string `json:"description,omitempty"`

	Required             bool `json:"required"`
	Unique               bool `json:"unique"`
	PrimaryKey           bool `json:"primaryKey"`
	PrimaryKeyPosition   int  `json:"primaryKeyPosition"`
	Partitioned          bool `json:"partitioned"`
	PartitionKeyPosition int  `json:"partitionKeyPosition"`

	Classification      *string `json:"classification,omitempty"`
	EncryptedName       *string `json:"encryptedName,omitempty"`
	CriticalDataElement bool    `json:"criticalDataElement"`

	TransformSourceObjects []string `json:"transformSourceObjects,omitempty"`
	TransformLogic         *string  `json:"transformLogic,omitempty"`
	TransformDescription   *string  `json:"transformDescription,omitempty"`

	Examples           []any          `json:"examples,omitempty"`
	LogicalTypeOptions map[string]any `json:"logicalTypeOptions,omitempty"`

	OrderIndex int `json:"orderIndex"`
}

func ComposeSchemaProperty(p domain.SchemaProperty) SchemaProperty {
	return SchemaProperty{
		Id:               p.Id,
		ParentPropertyId: p.ParentPropertyId,

		Name:         p.Name,
		LogicalType:  enums.StrOf(p.LogicalType),
		PhysicalType: p.PhysicalType,
		PhysicalName: p.PhysicalName,
		BusinessName: p.BusinessName,
		Description:  p.Description,

		Required:             p.Required,
		Unique:               p.Unique,
		PrimaryKey:           p.PrimaryKey,
		PrimaryKeyPosition:   p.PrimaryKeyPosition,
		Partitioned:          p.Partitioned,
		PartitionKeyPosition: p.PartitionKeyPosition,

		Classification:      enums.StrOf(p.Classification),
		EncryptedName:       p.EncryptedName,
		CriticalDataElement: p.CriticalDataElement,

		TransformSourceObjects: p.TransformSourceObjects,
		TransformLogic:         p.TransformLogic,
		TransformDescription:   p.TransformDescription,

		Examples:           p.Examples,
		LogicalTypeOptions: p.LogicalTypeOptions,

		OrderIndex: p.OrderIndex,
	}
}

type SchemaPropertyRequest struct {
	ParentPropertyId *string `json:"parentPropertyId,omitempty"`

	Name         string  `json:"name"`
	LogicalType  *string `json:"logicalType,omitempty"`
	PhysicalType *string `json:"physicalType,omitempty"`
	PhysicalName *string `json:"physicalName,omitempty"`
	BusinessName *string `json:"businessName,omitempty"`
	Description  *string `json:"description,omitempty"`

	Required             bool `json:"required,omitempty"`
	Unique               bool `json:"unique,omitempty"`
	PrimaryKey           bool `json:"primaryKey,omitempty"`
	PrimaryKeyPosition   *int `json:"primaryKeyPosition,omitempty"`
	Partitioned          bool `json:"partitioned,omitempty"`
	PartitionKeyPosition *int `json:"partitionKeyPosition,omitempty"`

	Classification      *string `json:"classification,omitempty"`
	EncryptedName       *string `json:"encryptedName,omitempty"`
	CriticalDataElement bool    `json:"criticalDataElement,omitempty"`

	TransformSourceObjects []string `json:"transformSourceObjects,omitempty"`
	TransformLogic         *string  `json:"transformLogic,omitempty"`
	TransformDescription   *string  `json:"transformDescription,omitempty"`

	Examples           []any          `json:"examples,omitempty"`
	LogicalTypeOptions map[string]any `json:"logicalTypeOptions,omitempty"`

	OrderIndex int `json:"orderIndex,omitempty"`
}

// ToSpec converts the request. Omitted key positions default to -1,
// meaning "not part of the key".
func (r SchemaPropertyRequest) ToSpec() domain.SchemaPropertySpec {
	return domain.SchemaPropertySpec{
		ParentPropertyId: r.ParentPropertyId,

		Name:         r.Name,
		LogicalType:  enums.Of[domain.LogicalType](r.LogicalType),
		PhysicalType: r.PhysicalType,
		PhysicalName: r.PhysicalName,
		BusinessName: r.BusinessName,
		Description:  r.Description,

		Required:             r.Required,
		Unique:               r.Unique,
		PrimaryKey:           r.PrimaryKey,
		PrimaryKeyPosition:   positionOrDefault(r.PrimaryKeyPosition),
		Partitioned:          r.Partitioned,
		PartitionKeyPosition: positionOrDefault(r.PartitionKeyPosition),

		Classification:      enums.Of[domain.Classification](r.Classification),
		EncryptedName:       r.EncryptedName,
		CriticalDataElement: r.CriticalDataElement,

		TransformSourceObjects: r.TransformSourceObjects,
		TransformLogic:         r.TransformLogic,
		TransformDescription:   r.TransformDescription,

		Examples:           r.Examples,
		LogicalTypeOptions: r.LogicalTypeOptions,

		OrderIndex: r.OrderIndex,
	}
}

func positionOrDefault(p *int) int {
	if p == nil {
		return -1
	}
	return *p
}

type SchemaPropertyPatch struct {
	Name         *string `json:"name,omitempty"`
	LogicalType  *string `json:"logicalType,omitempty"`
	PhysicalType *string `json:"physicalType,omitempty"`
	PhysicalName *string `json:"physicalName,omitempty"`
	BusinessName *string `json:"businessName,omitempty"`
	Description  *string `json:"description,omitempty"`

	Required             *bool `json:"required,omitempty"`
	Unique               *bool `json:"unique,omitempty"`
	PrimaryKey           *bool `json:"primaryKey,omitempty"`
	PrimaryKeyPosition   *int  `json:"primaryKeyPosition,omitempty"`
	Partitioned          *bool `json:"partitioned,omitempty"`
	PartitionKeyPosition *int  `json:"partitionKeyPosition,omitempty"`

	Classification      *string `json:"classification,omitempty"`
	EncryptedName       *string `json:"encryptedName,omitempty"`
	CriticalDataElement *bool   `json:"criticalDataElement,omitempty"`

	TransformSourceObjects *[]string `json:"transformSourceObjects,omitempty"`
	TransformLogic         *string   `json:"transformLogic,omitempty"`
	TransformDescription   *string   `json:"transformDescription,omitempty"`

	Examples           *[]any          `json:"examples,omitempty"`
	LogicalTypeOptions *map[string]any `json:"logicalTypeOptions,omitempty"`

	OrderIndex *int `json:"orderIndex,omitempty"`
}

func (r SchemaPropertyPatch) ToDelta() domain.SchemaPropertyDelta {
	return domain.SchemaPropertyDelta{
		Name:         r.Name,
		LogicalType:  enums.Of[domain.LogicalType](r.LogicalType),
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

		Classification:      enums.Of[domain.Classification](r.Classification),
		EncryptedName:       r.EncryptedName,
		CriticalDataElement: r.CriticalDataElement,

		TransformSourceObjects: r.TransformSourceObjects,
		TransformLogic:         r.TransformLogic,
		TransformDescription:   r.TransformDescription,

		Examples:           r.Examples,
		LogicalTypeOptions: r.LogicalTypeOptions,

		OrderIndex: r.OrderIndex,
	}
}

type QualityRule struct {
	Id               string  `json:"id"`
	SchemaPropertyId *string `json:"schemaPropertyId,omitempty"`

	Type        string  `json:"type"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`

	Rule      *string        `json:"rule,omitempty"`
	Operators map[string]any `json:"operators,omitempty"`

	Query *string `json:"query,omitempty"`

	Engine         *string `json:"engine,omitempty"`
	Implementation *string `json:"implementation,omitempty"`

	Dimension      *string `json:"dimension,omitempty"`
	Severity       *string `json:"severity,omitempty"`
	BusinessImpact *string `json:"businessImpact,omitempty"`
	Unit           *string `json:"unit,omitempty"`
	ValidValues    []any   `json:"validValues,omitempty"`

	Scheduler *string `json:"scheduler,omitempty"`
	Schedule  *string `json:"schedule,omitempty"`
}

func ComposeQualityRule(q domain.QualityRule) QualityRule {
	return QualityRule{
		Id:               q.Id,
		SchemaPropertyId: q.SchemaPropertyId,

		Type:        string(q.Type),
		Name:        q.Name,
		Description: q.Description,

		Rule:      q.Rule,
		Operators: q.Operators,

		Query: q.Query,

		Engine:         q.Engine,
		Implementation: q.Implementation,

		Dimension:      enums.StrOf(q.Dimension),
		Severity:       q.Severity,
		BusinessImpact: q.BusinessImpact,
		Unit:           q.Unit,
		ValidValues:    q.ValidValues,

		Scheduler: q.Scheduler,
		Schedule:  q.Schedule,
	}
}

type QualityRuleRequest struct {
	SchemaPropertyId *string `json:"schemaPropertyId,omitempty"`

	Type        string  `json:"type,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`

	Rule      *string        `json:"rule,omitempty"`
	Operators map[string]any `json:"operators,omitempty"`

	Query *string `json:"query,omitempty"`

	Engine         *string `json:"engine,omitempty"`
	Implementation *string `json:"implementation,omitempty"`

	Dimension      *string `json:"dimension,omitempty"`
	Severity       *string `json:"severity,omitempty"`
	BusinessImpact *string `json:"businessImpact,omitempty"`
	Unit           *string `json:"unit,omitempty"`
	ValidValues    []any   `json:"validValues,omitempty"`

	Scheduler *string `json:"scheduler,omitempty"`
	Schedule  *string `json:"schedule,omitempty"`
}

func (r QualityRuleRequest) ToSpec() domain.QualityRuleSpec {
	return domain.QualityRuleSpec{
		SchemaPropertyId: r.SchemaPropertyId,

		Type:        domain.QualityType(r.Type),
		Name:        r.Name,
		Description: r.Description,

		Rule:      r.Rule,
		Operators: r.Operators,

		Query: r.Query,

		Engine:         r.Engine,
		Implementation: r.Implementation,

		Dimension:      enums.Of[domain.QualityDimension](r.Dimension),
		Severity:       r.Severity,
		BusinessImpact: r.BusinessImpact,
		Unit:           r.Unit,
		ValidValues:    r.ValidValues,

		Scheduler: r.Scheduler,
		Schedule:  r.Schedule,
	}
}

type QualityRulePatch struct {
	Type        *string `json:"type,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`

	Rule      *string         `json:"rule,omitempty"`
	Operators *map[string]any `json:"operators,omitempty"`

	Query *string `json:"query,omitempty"`

	Engine         *string `json:"engine,omitempty"`
	Implementation *string `json:"implementation,omitempty"`

	Dimension      *string `json:"dimension,omitempty"`
	Severity       *string `json:"severity,omitempty"`
	BusinessImpact *string `json:"businessImpact,omitempty"`
	Unit           *string `json:"unit,omitempty"`
	ValidValues    *[]any  `json:"validValues,omitempty"`

	Scheduler *string `json:"scheduler,omitempty"`
	Schedule  *string `json:"schedule,omitempty"`
}

func (r QualityRulePatch) ToDelta() domain.QualityRuleDelta {
	return domain.QualityRuleDelta{
		Type:        enums.Of[domain.QualityType](r.Type),
		Name:        r.Name,
		Description: r.Description,

		Rule:      r.Rule,
		Operators: r.Operators,

		Query: r.Query,

		Engine:         r.Engine,
		Implementation: r.Implementation,

		Dimension:      enums.Of[domain.QualityDimension](r.Dimension),
		Severity:       r.Severity,
		BusinessImpact: r.BusinessImpact,
		Unit:           r.Unit,
		ValidValues:    r.ValidValues,

		Scheduler: r.Scheduler,
		Schedule:  r.Schedule,
	}
}
