package domain

import (
	"fmt"
	"time"
)

const (
	KindDataProduct          = "DataProduct"
	DefaultProductApiVersion = "v1.0.0"
)

// ProductBody is the flat data_products row.
type ProductBody struct {
	Id         string
	Kind       string
	ApiVersion string
	Status     Status

	Name    *string
	Version *string
	Domain  *string
	Tenant  *string

	DescriptionPurpose     *string
	DescriptionLimitations *string
	DescriptionUsage       *string

	// ProductCreatedTs is the product's own birth date as declared by
	// its owners, independent of when the row was inserted.
	ProductCreatedTs *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy *string
}

// Product is a ProductBody with every child loaded.
type Product struct {
	ProductBody

	Tags            []string
	InputPorts      []InputPort
	OutputPorts     []OutputPort
	ManagementPorts []ManagementPort
	TeamMembers     []TeamMember
	SupportChannels []SupportChannel
}

// ProductSummary is the listing/search row shape.
type ProductSummary struct {
	Id      string
	Name    *string
	Version *string
	Status  Status
	Domain  *string

	DescriptionPurpose *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductSpec is the input to create a product.
type ProductSpec struct {
	Kind       string // defaulted to KindDataProduct
	ApiVersion string // defaulted to DefaultProductApiVersion
	Status     Status

	Name    *string
	Version *string
	Domain  *string
	Tenant  *string

	DescriptionPurpose     *string
	DescriptionLimitations *string
	DescriptionUsage       *string

	ProductCreatedTs *time.Time

	Tags []string

	CreatedBy *string
}

// Validate checks required fields and enum membership, and fills kind
// and apiVersion defaults in place.
func (s *ProductSpec) Validate() error {
	if s.Kind == "" {
		s.Kind = KindDataProduct
	}
	if s.Kind != KindDataProduct {
		return fmt.Errorf("%w: kind must be %q", ErrInvalid, KindDataProduct)
	}
	if s.ApiVersion == "" {
		s.ApiVersion = DefaultProductApiVersion
	}
	if _, err := AsStatus(s.Status.String()); err != nil {
		return err
	}
	return nil
}

// ProductDelta is a partial update against a ProductBody.
//
// nil fields are left unchanged. Tags replaces the whole tag list when
// non-nil: an empty non-nil slice clears all tags.
type ProductDelta struct {
	Status *Status

	Name    *string
	Version *string
	Domain  *string
	Tenant  *string

	DescriptionPurpose     *string
	DescriptionLimitations *string
	DescriptionUsage       *string

	ProductCreatedTs *time.Time

	Tags *[]string
}

func (d ProductDelta) Validate() error {
	if d.Status != nil {
		if _, err := AsStatus(d.Status.String()); err != nil {
			return err
		}
	}
	return nil
}

// ContractRef is the resolved target of a port's ContractId.
type ContractRef struct {
	Id   string
	Name *string
}

// InputPort is an upstream dependency of a product.
type InputPort struct {
	Id        string
	ProductId string
	Name      string
	Version   *string

	// ContractId may point at a deleted contract; ContractName is nil
	// in that case while ContractId is kept as written.
	ContractId   *string
	ContractName *string

	Description *string
	OrderIndex  int
}

type InputPortSpec struct {
	Name        string
	Version     *string
	ContractId  *string
	Description *string
	OrderIndex  int
}

func (s InputPortSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: input port name is required", ErrInvalid)
	}
	return nil
}

// OutputPortType is the delivery shape of an output port.
type OutputPortType string

const (
	OutputTables OutputPortType = "tables"
	OutputApi    OutputPortType = "api"
	OutputFile   OutputPortType = "file"
	OutputStream OutputPortType = "stream"
)

func AsOutputPortType(s string) (OutputPortType, error) {
	switch OutputPortType(s) {
	case OutputTables, OutputApi, OutputFile, OutputStream:
		return OutputPortType(s), nil
	default:
		return OutputPortType(s), fmt.Errorf("%w: unknown output port type: %s", ErrInvalid, s)
	}
}

// SbomEntry is one software bill-of-materials pointer on an output port.
type SbomEntry struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// OutputPort is something a product serves to consumers.
type OutputPort struct {
	Id        string
	ProductId string
	Name      string
	Version   *string

	ContractId   *string
	ContractName *string

	Type        *OutputPortType
	Description *string
	Sbom        []SbomEntry
	OrderIndex  int
}

type OutputPortSpec struct {
	Name        string
	Version     *string
	ContractId  *string
	Type        *OutputPortType
	Description *string
	Sbom        []SbomEntry
	OrderIndex  int
}

func (s OutputPortSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: output port name is required", ErrInvalid)
	}
	if s.Type != nil {
		if _, err := AsOutputPortType(string(*s.Type)); err != nil {
			return err
		}
	}
	return nil
}

// ManagementPortContent is what a management port exposes.
type ManagementPortContent string

const (
	ContentDiscoverability ManagementPortContent = "discoverability"
	ContentObservability   ManagementPortContent = "observability"
	ContentControl         ManagementPortContent = "control"
)

func AsManagementPortContent(s string) (ManagementPortContent, error) {
	switch ManagementPortContent(s) {
	case ContentDiscoverability, ContentObservability, ContentControl:
		return ManagementPortContent(s), nil
	default:
		return ManagementPortContent(s), fmt.Errorf("%w: unknown management port content: %s", ErrInvalid, s)
	}
}

// ManagementPortType is how a management port is reached.
type ManagementPortType string

const (
	ManagementRest  ManagementPortType = "rest"
	ManagementTopic ManagementPortType = "topic"
)

func AsManagementPortType(s string) (ManagementPortType, error) {
	switch ManagementPortType(s) {
	case ManagementRest, ManagementTopic:
		return ManagementPortType(s), nil
	default:
		return ManagementPortType(s), fmt.Errorf("%w: unknown management port type: %s", ErrInvalid, s)
	}
}

// ManagementPort is an operational endpoint of a product.
type ManagementPort struct {
	Id        string
	ProductId string
	Name      string
	Content   ManagementPortContent
	Type      ManagementPortType

	URL         *string
	Channel     *string
	Description *string
}

type ManagementPortSpec struct {
	Name    string
	Content ManagementPortContent
	Type    ManagementPortType // defaulted to ManagementRest

	URL         *string
	Channel     *string
	Description *string
}

func (s *ManagementPortSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: management port name is required", ErrInvalid)
	}
	if _, err := AsManagementPortContent(string(s.Content)); err != nil {
		return err
	}
	if s.Type == "" {
		s.Type = ManagementRest
	}
	if _, err := AsManagementPortType(string(s.Type)); err != nil {
		return err
	}
	if s.URL != nil {
		if err := validateURL(*s.URL); err != nil {
			return err
		}
	}
	return nil
}
