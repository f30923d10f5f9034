package contracts

import (
	"github.com/lumendata/govcat/pkg/api/types/internal/enums"
	"github.com/lumendata/govcat/pkg/domain"
)

type Role struct {
	Id                   string  `json:"id"`
	Role                 string  `json:"role"`
	Description          *string `json:"description,omitempty"`
	Access               *string `json:"access,omitempty"`
	FirstLevelApprovers  *string `json:"firstLevelApprovers,omitempty"`
	SecondLevelApprovers *string `json:"secondLevelApprovers,omitempty"`
}

func ComposeRole(r domain.Role) Role {
	return Role{
		Id:                   r.Id,
		Role:                 r.Role,
		Description:          r.Description,
		Access:               r.Access,
		FirstLevelApprovers:  r.FirstLevelApprovers,
		SecondLevelApprovers: r.SecondLevelApprovers,
	}
}

type RoleRequest struct {
	Role                 string  `json:"role"`
	Description          *string `json:"description,omitempty"`
	Access               *string `json:"access,omitempty"`
	FirstLevelApprovers  *string `json:"firstLevelApprovers,omitempty"`
	SecondLevelApprovers *string `json:"secondLevelApprovers,omitempty"`
}

func (r RoleRequest) ToSpec() domain.RoleSpec {
	return domain.RoleSpec{
		Role:                 r.Role,
		Description:          r.Description,
		Access:               r.Access,
		FirstLevelApprovers:  r.FirstLevelApprovers,
		SecondLevelApprovers: r.SecondLevelApprovers,
	}
}

type Server struct {
	Id          string         `json:"id"`
	Server      string         `json:"server"`
	Type        string         `json:"type"`
	Description *string        `json:"description,omitempty"`
	Environment *string        `json:"environment,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
}

func ComposeServer(s domain.Server) Server {
	return Server{
		Id:          s.Id,
		Server:      s.Server,
		Type:        string(s.Type),
		Description: s.Description,
		Environment: s.Environment,
		Config:      s.Config,
	}
}

type ServerRequest struct {
	Server      string         `json:"server"`
	Type        string         `json:"type"`
	Description *string        `json:"description,omitempty"`
	Environment *string        `json:"environment,omitempty"`
	Config      map[string]any `json:"config,omitempty"`
}

func (r ServerRequest) ToSpec() domain.ServerSpec {
	return domain.ServerSpec{
		Server:      r.Server,
		Type:        domain.ServerType(r.Type),
		Description: r.Description,
		Environment: r.Environment,
		Config:      r.Config,
	}
}

type SlaProperty struct {
	Id       string  `json:"id"`
	Property string  `json:"property"`
	Value    string  `json:"value"`
	ValueExt *string `json:"valueExt,omitempty"`
	Unit     *string `json:"unit,omitempty"`
	Element  *string `json:"element,omitempty"`
	Driver   *string `json:"driver,omitempty"`
}

func ComposeSlaProperty(s domain.SlaProperty) SlaProperty {
	return SlaProperty{
		Id:       s.Id,
		Property: string(s.Property),
		Value:    s.Value,
		ValueExt: s.ValueExt,
		Unit:     s.Unit,
		Element:  s.Element,
		Driver:   enums.StrOf(s.Driver),
	}
}

type SlaPropertyRequest struct {
	Property string  `json:"property"`
	Value    string  `json:"value"`
	ValueExt *string `json:"valueExt,omitempty"`
	Unit     *string `json:"unit,omitempty"`
	Element  *string `json:"element,omitempty"`
	Driver   *string `json:"driver,omitempty"`
}

func (r SlaPropertyRequest) ToSpec() domain.SlaPropertySpec {
	return domain.SlaPropertySpec{
		Property: domain.SlaPropertyName(r.Property),
		Value:    r.Value,
		ValueExt: r.ValueExt,
		Unit:     r.Unit,
		Element:  r.Element,
		Driver:   enums.Of[domain.SlaDriver](r.Driver),
	}
}
