package members

import (
	"time"

	"github.com/lumendata/govcat/pkg/domain"
)

// TeamMember is the wire shape of a person attached to a contract or a
// product.
type TeamMember struct {
	Id                 string     `json:"id"`
	Username           string     `json:"username"`
	Name               *string    `json:"name,omitempty"`
	Role               *string    `json:"role,omitempty"`
	Description        *string    `json:"description,omitempty"`
	DateIn             *time.Time `json:"dateIn,omitempty"`
	DateOut            *time.Time `json:"dateOut,omitempty"`
	ReplacedByUsername *string    `json:"replacedByUsername,omitempty"`
}

func Compose(m domain.TeamMember) TeamMember {
	return TeamMember{
		Id:                 m.Id,
		Username:           m.Username,
		Name:               m.Name,
		Role:               m.Role,
		Description:        m.Description,
		DateIn:             m.DateIn,
		DateOut:            m.DateOut,
		ReplacedByUsername: m.ReplacedByUsername,
	}
}

type Request struct {
	Username           string     `json:"username"`
	Name               *string    `json:"name,omitempty"`
	Role               *string    `json:"role,omitempty"`
	Description        *string    `json:"description,omitempty"`
	DateIn             *time.Time `json:"dateIn,omitempty"`
	DateOut            *time.Time `json:"dateOut,omitempty"`
	ReplacedByUsername *string    `json:"replacedByUsername,omitempty"`
}

func (r Request) ToSpec() domain.TeamMemberSpec {
	return domain.TeamMemberSpec{
		Username:           r.Username,
		Name:               r.Name,
		Role:               r.Role,
		Description:        r.Description,
		DateIn:             r.DateIn,
		DateOut:            r.DateOut,
		ReplacedByUsername: r.ReplacedByUsername,
	}
}
