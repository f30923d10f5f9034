package products

import (
	"github.com/lumendata/govcat/pkg/api/types/internal/enums"
	"github.com/lumendata/govcat/pkg/domain"
)

type InputPort struct {
	Id      string  `json:"id"`
	Name    string  `json:"name"`
	Version *string `json:"version,omitempty"`

	ContractId *string `json:"contractId,omitempty"`

	// ContractName is resolved at read time; nil when ContractId points
	// at a contract that no longer exists.
	ContractName *string `json:"contractName,omitempty"`

	Description *string `json:"description,omitempty"`
	OrderIndex  int     `json:"orderIndex"`
}

func ComposeInputPort(p domain.InputPort) InputPort {
	return InputPort{
		Id:           p.Id,
		Name:         p.Name,
		Version:      p.Version,
		ContractId:   p.ContractId,
		ContractName: p.ContractName,
		Description:  p.Description,
		OrderIndex:   p.OrderIndex,
	}
}

type InputPortRequest struct {
	Name        string  `json:"name"`
	Version     *string `json:"version,omitempty"`
	ContractId  *string `json:"contractId,omitempty"`
	Description *string `json:"description,omitempty"`
	OrderIndex  int     `json:"orderIndex,omitempty"`
}

func (r InputPortRequest) ToSpec() domain.InputPortSpec {
	return domain.InputPortSpec{
		Name:        r.Name,
		Version:     r.Version,
		ContractId:  r.ContractId,
		Description: r.Description,
		OrderIndex:  r.OrderIndex,
	}
}

type OutputPort struct {
	Id      string  `json:"id"`
	Name    string  `json:"name"`
	Version *string `json:"version,omitempty"`

	ContractId   *string `json:"contractId,omitempty"`
	ContractName *string `json:"contractName,omitempty"`

	Type        *string            `json:"type,omitempty"`
	Description *string            `json:"description,omitempty"`
	Sbom        []domain.SbomEntry `json:"sbom,omitempty"`
	OrderIndex  int                `json:"orderIndex"`
}

func ComposeOutputPort(p domain.OutputPort) OutputPort {
	return OutputPort{
		Id:           p.Id,
		Name:         p.Name,
		Version:      p.Version,
		ContractId:   p.ContractId,
		ContractName: p.ContractName,
		Type:         enums.StrOf(p.Type),
		Description:  p.Description,
		Sbom:         p.Sbom,
		OrderIndex:   p.OrderIndex,
	}
}

type OutputPortRequest struct {
	Name        string             `json:"name"`
	Version     *string            `json:"version,omitempty"`
	ContractId  *string            `json:"contractId,omitempty"`
	Type        *string            `json:"type,omitempty"`
	Description *string            `json:"description,omitempty"`
	Sbom        []domain.SbomEntry `json:"sbom,omitempty"`
	OrderIndex  int                `json:"orderIndex,omitempty"`
}

func (r OutputPortRequest) ToSpec() domain.OutputPortSpec {
	return domain.OutputPortSpec{
		Name:        r.Name,
		Version:     r.Version,
		ContractId:  r.ContractId,
		Type:        enums.Of[domain.OutputPortType](r.Type),
		Description: r.Description,
		Sbom:        r.Sbom,
		OrderIndex:  r.OrderIndex,
	}
}

type ManagementPort struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Type    string `json:"type"`

	URL         *string `json:"url,omitempty"`
	Channel     *string `json:"channel,omitempty"`
	Description *string `json:"description,omitempty"`
}

func ComposeManagementPort(p domain.ManagementPort) ManagementPort {
	return ManagementPort{
		Id:          p.Id,
		Name:        p.Name,
		Content:     string(p.Content),
		Type:        string(p.Type),
		URL:         p.URL,
		Channel:     p.Channel,
		Description: p.Description,
	}
}

type ManagementPortRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`

	URL         *string `json:"url,omitempty"`
	Channel     *string `json:"channel,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r ManagementPortRequest) ToSpec() domain.ManagementPortSpec {
	return domain.ManagementPortSpec{
		Name:        r.Name,
		Content:     domain.ManagementPortContent(r.Content),
		Type:        domain.ManagementPortType(r.Type),
		URL:         r.URL,
		Channel:     r.Channel,
		Description: r.Description,
	}
}
