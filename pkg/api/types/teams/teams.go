// Package teams holds the wire types of the team aggregation API.
package teams

import (
	"github.com/lumendata/govcat/pkg/domain"
	domteams "github.com/lumendata/govcat/pkg/domain/teams"
	"github.com/lumendata/govcat/pkg/utils/slices"
)

type Member struct {
	Username string   `json:"username"`
	Name     *string  `json:"name,omitempty"`
	Roles    []string `json:"roles"`
}

func ComposeMember(m domteams.Member) Member {
	roles := m.Roles
	if roles == nil {
		roles = []string{}
	}
	return Member{
		Username: m.Username,
		Name:     m.Name,
		Roles:    roles,
	}
}

type DomainTeam struct {
	Domain        string   `json:"domain"`
	MemberCount   int      `json:"memberCount"`
	ContractCount int      `json:"contractCount"`
	ProductCount  int      `json:"productCount"`
	Members       []Member `json:"members"`
}

func ComposeDomainTeam(t domteams.DomainTeam) DomainTeam {
	composed := DomainTeam{
		Domain:        t.Domain,
		MemberCount:   t.MemberCount,
		ContractCount: t.ContractCount,
		ProductCount:  t.ProductCount,
		Members:       slices.Map(t.Members, ComposeMember),
	}
	if composed.Members == nil {
		composed.Members = []Member{}
	}
	return composed
}

// DomainMember is a flat membership row: a person together with the
// entity that declares them.
type DomainMember struct {
	ParentId   string  `json:"parentId"`
	ParentKind string  `json:"parentKind"`
	ParentName *string `json:"parentName,omitempty"`
	Domain     *string `json:"domain,omitempty"`

	Username string  `json:"username"`
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
}

func ComposeDomainMember(m domain.DomainMember) DomainMember {
	return DomainMember{
		ParentId:   m.ParentId,
		ParentKind: m.ParentKind,
		ParentName: m.ParentName,
		Domain:     m.Domain,
		Username:   m.Username,
		Name:       m.Name,
		Role:       m.Role,
	}
}
