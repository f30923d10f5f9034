package channels

import (
	"github.com/lumendata/govcat/pkg/api/types/internal/enums"
	"github.com/lumendata/govcat/pkg/domain"
)

// SupportChannel is the wire shape of a way to reach an owning team.
type SupportChannel struct {
	Id            string  `json:"id"`
	Channel       string  `json:"channel"`
	URL           string  `json:"url"`
	Description   *string `json:"description,omitempty"`
	Tool          *string `json:"tool,omitempty"`
	Scope         *string `json:"scope,omitempty"`
	InvitationURL *string `json:"invitationUrl,omitempty"`
}

func Compose(c domain.SupportChannel) SupportChannel {
	return SupportChannel{
		Id:            c.Id,
		Channel:       c.Channel,
		URL:           c.URL,
		Description:   c.Description,
		Tool:          enums.StrOf(c.Tool),
		Scope:         enums.StrOf(c.Scope),
		InvitationURL: c.InvitationURL,
	}
}

type Request struct {
	Channel       string  `json:"channel"`
	URL           string  `json:"url"`
	Description   *string `json:"description,omitempty"`
	Tool          *string `json:"tool,omitempty"`
	Scope         *string `json:"scope,omitempty"`
	InvitationURL *string `json:"invitationUrl,omitempty"`
}

func (r Request) ToSpec() domain.SupportChannelSpec {
	return domain.SupportChannelSpec{
		Channel:       r.Channel,
		URL:           r.URL,
		Description:   r.Description,
		Tool:          enums.Of[domain.SupportTool](r.Tool),
		Scope:         enums.Of[domain.SupportScope](r.Scope),
		InvitationURL: r.InvitationURL,
	}
}
