// Package contracts holds the wire types of the data-contract API.
//
// Shapes follow ODCS v3.0.2 field naming (camelCase). Compose*
// functions map domain values onto the wire; Request types convert the
// other way, into domain specs and deltas.
package contracts

import (
	"time"

	"github.com/lumendata/govcat/pkg/api/types/channels"
	"github.com/lumendata/govcat/pkg/api/types/internal/enums"
	"github.com/lumendata/govcat/pkg/api/types/members"
	"github.com/lumendata/govcat/pkg/domain"
	"github.com/lumendata/govcat/pkg/utils/slices"
)

type Summary struct {
	Id                 string    `json:"id"`
	Name               *string   `json:"name"`
	Version            string    `json:"version"`
	Status             string    `json:"status"`
	Domain             *string   `json:"domain,omitempty"`
	DataProduct        *string   `json:"dataProduct,omitempty"`
	DescriptionPurpose *string   `json:"descriptionPurpose,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func ComposeSummary(s domain.ContractSummary) Summary {
	return Summary{
		Id:                 s.Id,
		Name:               s.Name,
		Version:            s.Version,
		Status:             s.Status.String(),
		Domain:             s.Domain,
		DataProduct:        s.DataProduct,
		DescriptionPurpose: s.DescriptionPurpose,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// Page is one page of a contract listing.
type Page struct {
	Items    []Summary `json:"items"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}

func ComposePage(items []domain.ContractSummary, total int, page int, pageSize int) Page {
	return Page{
		Items:    slices.Map(items, ComposeSummary),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

// ProductRef points at the product a contract's dataProduct field
// resolved to.
type ProductRef struct {
	Id      string  `json:"id"`
	Name    *string `json:"name"`
	Version *string `json:"version,omitempty"`
}

type Detail struct {
	Id         string `json:"id"`
	Kind       string `json:"kind"`
	ApiVersion string `json:"apiVersion"`
	Version    string `json:"version"`
	Status     string `json:"status"`

	Name        *string `json:"name"`
	Domain      *string `json:"domain,omitempty"`
	DataProduct *string `json:"dataProduct,omitempty"`
	Tenant      *string `json:"tenant,omitempty"`

	DescriptionPurpose     *string `json:"descriptionPurpose,omitempty"`
	DescriptionLimitations *string `json:"descriptionLimitations,omitempty"`
	DescriptionUsage       *string `json:"descriptionUsage,omitempty"`

	PriceAmount   *int64  `json:"priceAmount,omitempty"`
	PriceCurrency *string `json:"priceCurrency,omitempty"`
	PriceUnit     *string `json:"priceUnit,omitempty"`

	SlaDefaultElement *string `json:"slaDefaultElement,omitempty"`

	ContractCreatedTs *time.Time `json:"contractCreatedTs,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy *string   `json:"createdBy,omitempty"`

	Tags            []string                  `json:"tags"`
	SchemaObjects   []SchemaObject            `json:"schema"`
	TeamMembers     []members.TeamMember      `json:"team"`
	Roles           []Role                    `json:"roles"`
	Servers         []Server                  `json:"servers"`
	SlaProperties   []SlaProperty             `json:"slaProperties"`
	SupportChannels []channels.SupportChannel `json:"support"`

	LinkedProduct *ProductRef `json:"linkedProduct,omitempty"`
}

func ComposeDetail(c domain.Contract) Detail {
	var linked *ProductRef
	if c.LinkedProduct != nil {
		linked = &ProductRef{
			Id:      c.LinkedProduct.Id,
			Name:    c.LinkedProduct.Name,
			Version: c.LinkedProduct.Version,
		}
	}

	return Detail{
		Id:         c.Id,
		Kind:       c.Kind,
		ApiVersion: c.ApiVersion,
		Version:    c.Version,
		Status:     c.Status.String(),

		Name:        c.Name,
		Domain:      c.Domain,
		DataProduct: c.DataProduct,
		Tenant:      c.Tenant,

		DescriptionPurpose:     c.DescriptionPurpose,
		DescriptionLimitations: c.DescriptionLimitations,
		DescriptionUsage:       c.DescriptionUsage,

		PriceAmount:   c.PriceAmount,
		PriceCurrency: c.PriceCurrency,
		PriceUnit:     c.PriceUnit,

		SlaDefaultElement: c.SlaDefaultElement,
		ContractCreatedTs: c.ContractCreatedTs,

		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		CreatedBy: c.CreatedBy,

		Tags:            c.Tags,
		SchemaObjects:   slices.Map(c.SchemaObjects, ComposeSchemaObject),
		TeamMembers:     slices.Map(c.TeamMembers, members.Compose),
		Roles:           slices.Map(c.Roles, ComposeRole),
		Servers:         slices.Map(c.Servers, ComposeServer),
		SlaProperties:   slices.Map(c.SlaProperties, ComposeSlaProperty),
		SupportChannels: slices.Map(c.SupportChannels, channels.Compose),

		LinkedProduct: linked,
	}
}

type CreateRequest struct {
	Kind       string  `json:"kind,omitempty"`
	ApiVersion string  `json:"apiVersion,omitempty"`
	Version    string  `json:"version"`
	Status     string  `json:"status"`
	Name       *string `json:"name,omitempty"`
	Domain     *string `json:"domain,omitempty"`

	DataProduct *string `json:"dataProduct,omitempty"`
	Tenant      *string `json:"tenant,omitempty"`

	DescriptionPurpose     *string `json:"descriptionPurpose,omitempty"`
	DescriptionLimitations *string `json:"descriptionLimitations,omitempty"`
	DescriptionUsage       *string `json:"descriptionUsage,omitempty"`

	PriceAmount   *int64  `json:"priceAmount,omitempty"`
	PriceCurrency *string `json:"priceCurrency,omitempty"`
	PriceUnit     *string `json:"priceUnit,omitempty"`

	SlaDefaultElement *string `json:"slaDefaultElement,omitempty"`

	ContractCreatedTs *time.Time `json:"contractCreatedTs,omitempty"`

	Tags []string `json:"tags,omitempty"`
}

// ToSpec converts the request. CreatedBy is stamped from the resolved
// identity, never taken from the payload.
func (r CreateRequest) ToSpec(createdBy *string) domain.ContractSpec {
	return domain.ContractSpec{
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

		Tags: r.Tags,

		CreatedBy: createdBy,
	}
}

type UpdateRequest struct {
	Version *string `json:"version,omitempty"`
	Status  *string `json:"status,omitempty"`

	Name        *string `json:"name,omitempty"`
	Domain      *string `json:"domain,omitempty"`
	DataProduct *string `json:"dataProduct,omitempty"`
	Tenant      *string `json:"tenant,omitempty"`

	DescriptionPurpose     *string `json:"descriptionPurpose,omitempty"`
	DescriptionLimitations *string `json:"descriptionLimitations,omitempty"`
	DescriptionUsage       *string `json:"descriptionUsage,omitempty"`

	PriceAmount   *int64  `json:"priceAmount,omitempty"`
	PriceCurrency *string `json:"priceCurrency,omitempty"`
	PriceUnit     *string `json:"priceUnit,omitempty"`

	SlaDefaultElement *string `json:"slaDefaultElement,omitempty"`

	ContractCreatedTs *time.Time `json:"contractCreatedTs,omitempty"`

	Tags *[]string `json:"tags,omitempty"`
}

func (r UpdateRequest) ToDelta() domain.ContractDelta {
	return domain.ContractDelta{
		Version: r.Version,
		Status:  enums.Of[domain.Status](r.Status),

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

		Tags: r.Tags,
	}
}
