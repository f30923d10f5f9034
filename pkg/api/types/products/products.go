// Package products holds the wire types of the data-product API.
//
// Shapes follow ODPS v1.0.0 field naming (camelCase).
package products

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
	Version            *string   `json:"version,omitempty"`
	Status             string    `json:"status"`
	Domain             *string   `json:"domain,omitempty"`
	DescriptionPurpose *string   `json:"descriptionPurpose,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func ComposeSummary(s domain.ProductSummary) Summary {
	return Summary{
		Id:                 s.Id,
		Name:               s.Name,
		Version:            s.Version,
		Status:             s.Status.String(),
		Domain:             s.Domain,
		DescriptionPurpose: s.DescriptionPurpose,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

type Page struct {
	Items    []Summary `json:"items"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"pageSize"`
}

func ComposePage(items []domain.ProductSummary, total int, page int, pageSize int) Page {
	return Page{
		Items:    slices.Map(items, ComposeSummary),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

type Detail struct {
	Id         string `json:"id"`
	Kind       string `json:"kind"`
	ApiVersion string `json:"apiVersion"`
	Status     string `json:"status"`

	Name    *string `json:"name"`
	Version *string `json:"version,omitempty"`
	Domain  *string `json:"domain,omitempty"`
	Tenant  *string `json:"tenant,omitempty"`

	DescriptionPurpose     *string `json:"descriptionPurpose,omitempty"`
	DescriptionLimitations *string `json:"descriptionLimitations,omitempty"`
	DescriptionUsage       *string `json:"descriptionUsage,omitempty"`

	ProductCreatedTs *time.Time `json:"productCreatedTs,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy *string   `json:"createdBy,omitempty"`

	Tags            []string                  `json:"tags"`
	InputPorts      []InputPort               `json:"inputPorts"`
	OutputPorts     []OutputPort              `json:"outputPorts"`
	ManagementPorts []ManagementPort          `json:"managementPorts"`
	TeamMembers     []members.TeamMember      `json:"team"`
	SupportChannels []channels.SupportChannel `json:"support"`
}

func ComposeDetail(p domain.Product) Detail {
	return Detail{
		Id:         p.Id,
		Kind:       p.Kind,
		ApiVersion: p.ApiVersion,
		Status:     p.Status.String(),

		Name:    p.Name,
		Version: p.Version,
		Domain:  p.Domain,
		Tenant:  p.Tenant,

		DescriptionPurpose:     p.DescriptionPurpose,
		DescriptionLimitations: p.DescriptionLimitations,
		DescriptionUsage:       p.DescriptionUsage,

		ProductCreatedTs: p.ProductCreatedTs,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		CreatedBy: p.CreatedBy,

		Tags:            p.Tags,
		InputPorts:      slices.Map(p.InputPorts, ComposeInputPort),
		OutputPorts:     slices.Map(p.OutputPorts, ComposeOutputPort),
		ManagementPorts: slices.Map(p.ManagementPorts, ComposeManagementPort),
		TeamMembers:     slices.Map(p.TeamMembers, members.Compose),
		SupportChannels: slices.Map(p.SupportChannels, channels.Compose),
	}
}

type CreateRequest struct {
	Kind       string `json:"kind,omitempty"`
	ApiVersion string `json:"apiVersion,omitempty"`
	Status     string `json:"status"`

	Name    *string `json:"name,omitempty"`
	Version *string `json:"version,omitempty"`
	Domain  *string `json:"domain,omitempty"`
	Tenant  *string `json:"tenant,omitempty"`

	DescriptionPurpose     *string `json:"descriptionPurpose,omitempty"`
	DescriptionLimitations *string `json:"descriptionLimitations,omitempty"`
	DescriptionUsage       *string `json:"descriptionUsage,omitempty"`

	ProductCreatedTs *time.Time `json:"productCreatedTs,omitempty"`

	Tags []string `json:"tags,omitempty"`
}

// ToSpec converts the request. CreatedBy is stamped from the resolved
// identity, never taken from the payload.
func (r CreateRequest) ToSpec(createdBy *string) domain.ProductSpec {
	return domain.ProductSpec{
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

		Tags: r.Tags,

		CreatedBy: createdBy,
	}
}

type UpdateRequest struct {
	Status *string `json:"status,omitempty"`

	Name    *string `json:"name,omitempty"`
	Version *string `json:"version,omitempty"`
	Domain  *string `json:"domain,omitempty"`
	Tenant  *string `json:"tenant,omitempty"`

	DescriptionPurpose     *string `json:"descriptionPurpose,omitempty"`
	DescriptionLimitations *string `json:"descriptionLimitations,omitempty"`
	DescriptionUsage       *string `json:"descriptionUsage,omitempty"`

	ProductCreatedTs *time.Time `json:"productCreatedTs,omitempty"`

	Tags *[]string `json:"tags,omitempty"`
}

func (r UpdateRequest) ToDelta() domain.ProductDelta {
	return domain.ProductDelta{
		Status: enums.Of[domain.Status](r.Status),

		Name:    r.Name,
		Version: r.Version,
		Domain:  r.Domain,
		Tenant:  r.Tenant,

		DescriptionPurpose:     r.DescriptionPurpose,
		DescriptionLimitations: r.DescriptionLimitations,
		DescriptionUsage:       r.DescriptionUsage,

		ProductCreatedTs: r.ProductCreatedTs,

		Tags: r.Tags,
	}
}
