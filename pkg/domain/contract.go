package domain

import (
	"fmt"
	"time"
)

const (
	KindDataContract          = "DataContract"
	DefaultContractApiVersion = "v3.0.2"
)

// ContractBody is the flat data_contracts row.
type ContractBody struct {
	Id         string
	Kind       string
	ApiVersion string

	// Version is the contract's own semantic version, distinct from
	// ApiVersion (the standard's version).
	Version string
	Status  Status

	Name   *string
	Domain *string

	// DataProduct is a soft reference: free text holding a product's
	// name or id. Resolution happens at read time, see LinkedProduct.
	DataProduct *string
	Tenant      *string

	DescriptionPurpose     *string
	DescriptionLimitations *string
	DescriptionUsage       *string

	PriceAmount   *int64 // minor units
	PriceCurrency *string
	PriceUnit     *string

	SlaDefaultElement *string

	// ContractCreatedTs is the contract's own birth date as declared
	// by its owners, independent of when the row was inserted.
	ContractCreatedTs *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy *string
}

// ProductRef is the resolved target of a contract's DataProduct field.
type ProductRef struct {
	Id      string
	Name    *string
	Version *string
}

// Contract is a ContractBody with every child loaded.
type Contract struct {
	ContractBody

	Tags            []string
	SchemaObjects   []SchemaObject
	TeamMembers     []TeamMember
	Roles           []Role
	Servers         []Server
	SlaProperties   []SlaProperty
	SupportChannels []SupportChannel

	// LinkedProduct is nil when DataProduct matches no product's
	// name or id. That is not an error.
	LinkedProduct *ProductRef
}

// ContractSummary is the listing/search row shape.
type ContractSummary struct {
	Id          string
	Name        *string
	Version     string
	Status      Status
	Domain      *string
	DataProduct *string

	DescriptionPurpose *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContractSpec is the input to create a contract.
type ContractSpec struct {
	Kind       string // defaulted to KindDataContract
	ApiVersion string // defaulted to DefaultContractApiVersion
	Version    string
	Status     Status

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

	Tags []string

	CreatedBy *string
}

// Validate checks required fields and enum membership, and fills kind
// and apiVersion defaults in place.
func (s *ContractSpec) Validate() error {
	if s.Kind == "" {
		s.Kind = KindDataContract
	}
	if s.Kind != KindDataContract {
		return fmt.Errorf("%w: kind must be %q", ErrInvalid, KindDataContract)
	}
	if s.ApiVersion == "" {
		s.ApiVersion = DefaultContractApiVersion
	}
	if s.Version == "" {
		return fmt.Errorf("%w: contract version is required", ErrInvalid)
	}
	if _, err := AsStatus(s.Status.String()); err != nil {
		return err
	}
	return nil
}

// ContractDelta is a partial update against a ContractBody.
//
// nil fields are left unchanged. Tags replaces the whole tag list when
// non-nil: an empty non-nil slice clears all tags.
type ContractDelta struct {
	Version *string
	Status  *Status

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

	Tags *[]string
}

func (d ContractDelta) Validate() error {
	if d.Version != nil && *d.Version == "" {
		return fmt.Errorf("%w: contract version can not be emptied", ErrInvalid)
	}
	if d.Status != nil {
		if _, err := AsStatus(d.Status.String()); err != nil {
			return err
		}
	}
	return nil
}

// SchemaObject is a table/view/topic-like structure declared by a contract.
type SchemaObject struct {
	Id          string
	ContractId  string
	Name        string
	LogicalType string // always "object"

	PhysicalType               *string
	PhysicalName               *string
	BusinessName               *string
	Description                *string
	DataGranularityDescription *string

	OrderIndex int

	Properties   []SchemaProperty
	QualityRules []QualityRule
}

type SchemaObjectSpec struct {
	Name                       string
	PhysicalType               *string
	PhysicalName               *string
	BusinessName               *string
	Description                *string
	DataGranularityDescription *string
	OrderIndex                 int
}

func (s SchemaObjectSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: schema object name is required", ErrInvalid)
	}
	return nil
}

// SchemaObjectDelta is a partial update against a SchemaObject.
type SchemaObjectDelta struct {
	Name                       *string
	PhysicalType               *string
	PhysicalName               *string
	BusinessName               *string
	Description                *string
	DataGranularityDescription *string
	OrderIndex                 *int
}

func (d SchemaObjectDelta) Validate() error {
	if d.Name != nil && *d.Name == "" {
		return fmt.Errorf("%w: schema object name can not be emptied", ErrInvalid)
	}
	return nil
}

// LogicalType of a schema property.
type LogicalType string

const (
	LogicalString  LogicalType = "string"
	LogicalDate    LogicalType = "date"
	LogicalNumber  LogicalType = "number"
	LogicalInteger LogicalType = "integer"
	LogicalObject  LogicalType = "object"
	LogicalArray   LogicalType = "array"
	LogicalBoolean LogicalType = "boolean"
)

func AsLogicalType(s string) (LogicalType, error) {
	switch LogicalType(s) {
	case LogicalString, LogicalDate, LogicalNumber, LogicalInteger,
		LogicalObject, LogicalArray, LogicalBoolean:
		return LogicalType(s), nil
	default:
		return LogicalType(s), fmt.Errorf("%w: unknown logical type: %s", ErrInvalid, s)
	}
}

// Classification level of a schema property.
type Classification string

const (
	ClassPublic       Classification = "public"
	ClassRestricted   Classification = "restricted"
	ClassConfidential Classification = "confidential"
)

func AsClassification(s string) (Classification, error) {
	switch Classification(s) {
	case ClassPublic, ClassRestricted, ClassConfidential:
		return Classification(s), nil
	default:
		return Classification(s), fmt.Errorf("%w: unknown classification: %s", ErrInvalid, s)
	}
}

// SchemaProperty is a field of a SchemaObject.
//
// ParentPropertyId supports nesting for object/array typed properties.
type SchemaProperty struct {
	Id               string
	SchemaObjectId   string
	ParentPropertyId *string

	Name         string
	LogicalType  *LogicalType
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

	Classification      *Classification
	EncryptedName       *string
	CriticalDataElement bool

	TransformSourceObjects []string
	TransformLogic         *string
	TransformDescription   *string

	Examples           []any
	LogicalTypeOptions map[string]any

	OrderIndex int
}

type SchemaPropertySpec struct {
	ParentPropertyId *string

	Name         string
	LogicalType  *LogicalType
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

	Classification      *Classification
	EncryptedName       *string
	CriticalDataElement bool

	TransformSourceObjects []string
	TransformLogic         *string
	TransformDescription   *string

	Examples           []any
	LogicalTypeOptions map[string]any

	OrderIndex int
}

func (s SchemaPropertySpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: schema property name is required", ErrInvalid)
	}
	if s.LogicalType != nil {
		if _, err := AsLogicalType(string(*s.LogicalType)); err != nil {
			return err
		}
	}
	if s.Classification != nil {
		if _, err := AsClassification(string(*s.Classification)); err != nil {
			return err
		}
	}
	return nil
}

// SchemaPropertyDelta is a partial update against a SchemaProperty.
//
// nil fields are left unchanged. The collection fields replace the whole
// stored value when non-nil: an empty non-nil collection clears it.
type SchemaPropertyDelta struct {
	Name         *string
	LogicalType  *LogicalType
	PhysicalType *string
	PhysicalName *string
	BusinessName *string
	Description  *string

	Required             *bool
	Unique               *bool
	PrimaryKey           *bool
	PrimaryKeyPosition   *int
	Partitioned          *bool
	PartitionKeyPosition *int

	Classification      *Classification
	EncryptedName       *string
	CriticalDataElement *bool

	TransformSourceObjects *[]string
	TransformLogic         *string
	TransformDescription   *string

	Examples           *[]any
	LogicalTypeOptions *map[string]any

	OrderIndex *int
}

func (d SchemaPropertyDelta) Validate() error {
	if d.Name != nil && *d.Name == "" {
		return fmt.Errorf("%w: schema property name can not be emptied", ErrInvalid)
	}
	if d.LogicalType != nil {
		if _, err := AsLogicalType(string(*d.LogicalType)); err != nil {
			return err
		}
	}
	if d.Classification != nil {
		if _, err := AsClassification(string(*d.Classification)); err != nil {
			return err
		}
	}
	return nil
}

// QualityType discriminates a quality rule's shape.
type QualityType string

const (
	QualityText    QualityType = "text"
	QualityLibrary QualityType = "library"
	QualitySql     QualityType = "sql"
	QualityCustom  QualityType = "custom"
)

func AsQualityType(s string) (QualityType, error) {
	switch QualityType(s) {
	case QualityText, QualityLibrary, QualitySql, QualityCustom:
		return QualityType(s), nil
	default:
		return QualityType(s), fmt.Errorf("%w: unknown quality type: %s", ErrInvalid, s)
	}
}

// QualityDimension of a data-quality check.
type QualityDimension string

const (
	DimAccuracy     QualityDimension = "accuracy"
	DimCompleteness QualityDimension = "completeness"
	DimConformity   QualityDimension = "conformity"
	DimConsistency  QualityDimension = "consistency"
	DimCoverage     QualityDimension = "coverage"
	DimTimeliness   QualityDimension = "timeliness"
	DimUniqueness   QualityDimension = "uniqueness"
)

func AsQualityDimension(s string) (QualityDimension, error) {
	switch QualityDimension(s) {
	case DimAccuracy, DimCompleteness, DimConformity, DimConsistency,
		DimCoverage, DimTimeliness, DimUniqueness:
		return QualityDimension(s), nil
	default:
		return QualityDimension(s), fmt.Errorf("%w: unknown quality dimension: %s", ErrInvalid, s)
	}
}

// QualityRule is a data-quality check attached to a schema object,
// optionally scoped down to one property.
//
// The rule is polymorphic over Type: library rules carry Rule (a name
// from a fixed set) and Operators; sql rules carry Query; custom rules
// carry Engine and Implementation; text rules carry only Description.
type QualityRule struct {
	Id               string
	SchemaObjectId   string
	SchemaPropertyId *string

	Type        QualityType
	Name        *string
	Description *string

	Rule      *string
	Operators map[string]any

	Query *string

	Engine         *string
	Implementation *string

	Dimension      *QualityDimension
	Severity       *string
	BusinessImpact *string
	Unit           *string
	ValidValues    []any

	Scheduler *string
	Schedule  *string
}

type QualityRuleSpec struct {
	SchemaPropertyId *string

	Type        QualityType // defaulted to QualityLibrary
	Name        *string
	Description *string

	Rule      *string
	Operators map[string]any

	Query *string

	Engine         *string
	Implementation *string

	Dimension      *QualityDimension
	Severity       *string
	BusinessImpact *string
	Unit           *string
	ValidValues    []any

	Scheduler *string
	Schedule  *string
}

func (s *QualityRuleSpec) Validate() error {
	if s.Type == "" {
		s.Type = QualityLibrary
	}
	if _, err := AsQualityType(string(s.Type)); err != nil {
		return err
	}
	if s.Dimension != nil {
		if _, err := AsQualityDimension(string(*s.Dimension)); err != nil {
			return err
		}
	}
	return nil
}

// QualityRuleDelta is a partial update against a QualityRule.
//
// nil fields are left unchanged; non-nil collections replace the stored
// value, empty ones clear it.
type QualityRuleDelta struct {
	Type        *QualityType
	Name        *string
	Description *string

	Rule      *string
	Operators *map[string]any

	Query *string

	Engine         *string
	Implementation *string

	Dimension      *QualityDimension
	Severity       *string
	BusinessImpact *string
	Unit           *string
	ValidValues    *[]any

	Scheduler *string
	Schedule  *string
}

func (d QualityRuleDelta) Validate() error {
	if d.Type != nil {
		if _, err := AsQualityType(string(*d.Type)); err != nil {
			return err
		}
	}
	if d.Dimension != nil {
		if _, err := AsQualityDimension(string(*d.Dimension)); err != nil {
			return err
		}
	}
	return nil
}

// Role declared on a contract.
type Role struct {
	Id                   string
	ContractId           string
	Role                 string
	Description          *string
	Access               *string
	FirstLevelApprovers  *string
	SecondLevelApprovers *string
}

type RoleSpec struct {
	Role                 string
	Description          *string
	Access               *string
	FirstLevelApprovers  *string
	SecondLevelApprovers *string
}

func (s RoleSpec) Validate() error {
	if s.Role == "" {
		return fmt.Errorf("%w: role name is required", ErrInvalid)
	}
	return nil
}

// ServerType is the technology behind a contract server entry.
type ServerType string

// the ODCS server type list.
var serverTypes = map[ServerType]struct{}{
	"api": {}, "athena": {}, "azure": {}, "bigquery": {}, "clickhouse": {},
	"databricks": {}, "denodo": {}, "dremio": {}, "duckdb": {}, "glue": {},
	"cloudsql": {}, "db2": {}, "informix": {}, "kafka": {}, "kinesis": {},
	"local": {}, "mysql": {}, "oracle": {}, "postgresql": {}, "postgres": {},
	"presto": {}, "pubsub": {}, "redshift": {}, "s3": {}, "sftp": {},
	"snowflake": {}, "sqlserver": {}, "synapse": {}, "trino": {},
	"vertica": {}, "custom": {},
}

func AsServerType(s string) (ServerType, error) {
	if _, ok := serverTypes[ServerType(s)]; ok {
		return ServerType(s), nil
	}
	return ServerType(s), fmt.Errorf("%w: unknown server type: %s", ErrInvalid, s)
}

// Server describes where a contract's data physically lives.
type Server struct {
	Id          string
	ContractId  string
	Server      string
	Type        ServerType
	Description *string
	Environment *string

	// Config is type-specific; its shape depends on Type.
	Config map[string]any
}

type ServerSpec struct {
	Server      string
	Type        ServerType
	Description *string
	Environment *string
	Config      map[string]any
}

func (s ServerSpec) Validate() error {
	if s.Server == "" {
		return fmt.Errorf("%w: server identifier is required", ErrInvalid)
	}
	if _, err := AsServerType(string(s.Type)); err != nil {
		return err
	}
	return nil
}

// SlaPropertyName enumerates the SLA dimensions a contract can promise.
type SlaPropertyName string

const (
	SlaLatency      SlaPropertyName = "latency"
	SlaFrequency    SlaPropertyName = "frequency"
	SlaRetention    SlaPropertyName = "retention"
	SlaAvailability SlaPropertyName = "availability"
	SlaFreshness    SlaPropertyName = "freshness"
)

func AsSlaPropertyName(s string) (SlaPropertyName, error) {
	switch SlaPropertyName(s) {
	case SlaLatency, SlaFrequency, SlaRetention, SlaAvailability, SlaFreshness:
		return SlaPropertyName(s), nil
	default:
		return SlaPropertyName(s), fmt.Errorf("%w: unknown sla property: %s", ErrInvalid, s)
	}
}

// SlaDriver is why an SLA property matters.
type SlaDriver string

const (
	DriverRegulatory  SlaDriver = "regulatory"
	DriverAnalytics   SlaDriver = "analytics"
	DriverOperational SlaDriver = "operational"
)

func AsSlaDriver(s string) (SlaDriver, error) {
	switch SlaDriver(s) {
	case DriverRegulatory, DriverAnalytics, DriverOperational:
		return SlaDriver(s), nil
	default:
		return SlaDriver(s), fmt.Errorf("%w: unknown sla driver: %s", ErrInvalid, s)
	}
}

// SlaProperty is one promised service level on a contract.
type SlaProperty struct {
	Id         string
	ContractId string
	Property   SlaPropertyName
	Value      string
	ValueExt   *string
	Unit       *string
	Element    *string
	Driver     *SlaDriver
}

type SlaPropertySpec struct {
	Property SlaPropertyName
	Value    string
	ValueExt *string
	Unit     *string
	Element  *string
	Driver   *SlaDriver
}

func (s SlaPropertySpec) Validate() error {
	if _, err := AsSlaPropertyName(string(s.Property)); err != nil {
		return err
	}
	if s.Value == "" {
		return fmt.Errorf("%w: sla value is required", ErrInvalid)
	}
	if s.Driver != nil {
		if _, err := AsSlaDriver(string(*s.Driver)); err != nil {
			return err
		}
	}
	return nil
}
