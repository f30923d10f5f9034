package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Status is the lifecycle status shared by contracts and products.
type Status string

const (
	StatusProposed   Status = "proposed"
	StatusDraft      Status = "draft"
	StatusActive     Status = "active"
	StatusDeprecated Status = "deprecated"
	StatusRetired    Status = "retired"
)

func (s Status) String() string {
	return string(s)
}

func AsStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusProposed, StatusDraft, StatusActive, StatusDeprecated, StatusRetired:
		return Status(s), nil
	default:
		return Status(s), fmt.Errorf("%w: unknown status: %s", ErrInvalid, s)
	}
}

// SupportTool is the tool behind a support channel.
type SupportTool string

const (
	ToolEmail   SupportTool = "email"
	ToolSlack   SupportTool = "slack"
	ToolTeams   SupportTool = "teams"
	ToolDiscord SupportTool = "discord"
	ToolTicket  SupportTool = "ticket"
	ToolOther   SupportTool = "other"
)

func AsSupportTool(s string) (SupportTool, error) {
	switch SupportTool(s) {
	case ToolEmail, ToolSlack, ToolTeams, ToolDiscord, ToolTicket, ToolOther:
		return SupportTool(s), nil
	default:
		return SupportTool(s), fmt.Errorf("%w: unknown support tool: %s", ErrInvalid, s)
	}
}

// SupportScope is what a support channel is meant for.
type SupportScope string

const (
	ScopeInteractive   SupportScope = "interactive"
	ScopeAnnouncements SupportScope = "announcements"
	ScopeIssues        SupportScope = "issues"
)

func AsSupportScope(s string) (SupportScope, error) {
	switch SupportScope(s) {
	case ScopeInteractive, ScopeAnnouncements, ScopeIssues:
		return SupportScope(s), nil
	default:
		return SupportScope(s), fmt.Errorf("%w: unknown support scope: %s", ErrInvalid, s)
	}
}

// TeamMember is a person attached to a contract or a product.
//
// No uniqueness is enforced on Username per parent: the same person can
// appear twice, for example before and after a role change.
type TeamMember struct {
	Id                 string
	ParentId           string
	Username           string
	Name               *string
	Role               *string
	Description        *string
	DateIn             *time.Time
	DateOut            *time.Time
	ReplacedByUsername *string
}

// TeamMemberSpec is the input to create a TeamMember.
type TeamMemberSpec struct {
	Username           string
	Name               *string
	Role               *string
	Description        *string
	DateIn             *time.Time
	DateOut            *time.Time
	ReplacedByUsername *string
}

func (s TeamMemberSpec) Validate() error {
	if s.Username == "" {
		return fmt.Errorf("%w: team member username is required", ErrInvalid)
	}
	return nil
}

// SupportChannel is a way to reach the owning team.
type SupportChannel struct {
	Id            string
	ParentId      string
	Channel       string
	URL           string
	Description   *string
	Tool          *SupportTool
	Scope         *SupportScope
	InvitationURL *string
}

// SupportChannelSpec is the input to create a SupportChannel.
type SupportChannelSpec struct {
	Channel       string
	URL           string
	Description   *string
	Tool          *SupportTool
	Scope         *SupportScope
	InvitationURL *string
}

func (s SupportChannelSpec) Validate() error {
	if s.Channel == "" {
		return fmt.Errorf("%w: support channel name is required", ErrInvalid)
	}
	if err := validateURL(s.URL); err != nil {
		return err
	}
	if s.InvitationURL != nil {
		if err := validateURL(*s.InvitationURL); err != nil {
			return err
		}
	}
	if s.Tool != nil {
		if _, err := AsSupportTool(string(*s.Tool)); err != nil {
			return err
		}
	}
	if s.Scope != nil {
		if _, err := AsSupportScope(string(*s.Scope)); err != nil {
			return err
		}
	}
	return nil
}

// Parent kinds of a DomainMember.
const (
	ParentContract = "contract"
	ParentProduct  = "product"
)

// DomainMember is a team member joined with its owning entity, the raw
// material of the per-domain team view.
type DomainMember struct {
	ParentId   string
	ParentKind string
	ParentName *string
	Domain     *string

	Username string
	Name     *string
	Role     *string
}

// DomainCount is how many entities of one kind carry a domain value.
// A nil Domain groups the entities that declare none.
type DomainCount struct {
	Domain *string
	Count  int
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: not a valid URL: %q", ErrInvalid, s)
	}
	return nil
}
