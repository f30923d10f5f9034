// Package teams derives the per-domain team view from contract and
// product ownership. Nothing here is stored: the view is recomputed
// from the repositories on every call.
package teams

import (
	"context"
	"sort"

	"github.com/lumendata/govcat/pkg/domain"
	kdbcontract "github.com/lumendata/govcat/pkg/domain/contract/db"
	kdbproduct "github.com/lumendata/govcat/pkg/domain/product/db"
)

// UnassignedDomain buckets entities that declare no domain.
const UnassignedDomain = "Unassigned"

// MemberPreviewLimit caps the member list of each team; MemberCount
// still reports the full number.
const MemberPreviewLimit = 10

// Member is one person in a domain team, with every role they hold
// across the domain's entities.
type Member struct {
	Username string
	Name     *string
	Roles    []string
}

// DomainTeam is the aggregate for one domain.
type DomainTeam struct {
	Domain        string
	MemberCount   int
	ContractCount int
	ProductCount  int
	Members       []Member
}

type Interface interface {
	// ByDomain recomputes the team view, sorted by domain name.
	ByDomain(ctx context.Context) ([]DomainTeam, error)

	// AllMembers returns the flat membership list, contract members
	// first.
	AllMembers(ctx context.Context) ([]domain.DomainMember, error)
}

type impl struct {
	contracts kdbcontract.ContractInterface
	products  kdbproduct.ProductInterface
}

func New(contracts kdbcontract.ContractInterface, products kdbproduct.ProductInterface) Interface {
	return &impl{contracts: contracts, products: products}
}

func bucketOf(d *string) string {
	if d == nil || *d == "" {
		return UnassignedDomain
	}
	return *d
}

// roster accumulates one team's members, deduplicated by username in
// first-seen order, with roles set-unioned in first-seen order.
type roster struct {
	order   []string
	members map[string]*Member
	roles   map[string]map[string]struct{}
}

func newRoster() *roster {
	return &roster{
		members: map[string]*Member{},
		roles:   map[string]map[string]struct{}{},
	}
}

func (r *roster) Add(m domain.DomainMember) {
	member, ok := r.members[m.Username]
	if !ok {
		member = &Member{Username: m.Username, Name: m.Name}
		r.members[m.Username] = member
		r.roles[m.Username] = map[string]struct{}{}
		r.order = append(r.order, m.Username)
	}
	if m.Role == nil || *m.Role == "" {
		return
	}
	if _, seen := r.roles[m.Username][*m.Role]; seen {
		return
	}
	r.roles[m.Username][*m.Role] = struct{}{}
	member.Roles = append(member.Roles, *m.Role)
}

func (r *roster) Members() []Member {
	out := make([]Member, 0, len(r.order))
	for _, username := range r.order {
		out = append(out, *r.members[username])
	}
	return out
}

func (i *impl) ByDomain(ctx context.Context) ([]DomainTeam, error) {
	contractCounts, err := i.contracts.Domains(ctx)
	if err != nil {
		return nil, err
	}
	productCounts, err := i.products.Domains(ctx)
	if err != nil {
		return nil, err
	}
	members, err := i.AllMembers(ctx)
	if err != nil {
		return nil, err
	}

	teams := map[string]*DomainTeam{}
	team := func(bucket string) *DomainTeam {
		if t, ok := teams[bucket]; ok {
			return t
		}
		t := &DomainTeam{Domain: bucket}
		teams[bucket] = t
		return t
	}

	for _, c := range contractCounts {
		team(bucketOf(c.Domain)).ContractCount += c.Count
	}
	for _, p := range productCounts {
		team(bucketOf(p.Domain)).ProductCount += p.Count
	}

	rosters := map[string]*roster{}
	for _, m := range members {
		bucket := bucketOf(m.Domain)
		team(bucket)
		r, ok := rosters[bucket]
		if !ok {
			r = newRoster()
			rosters[bucket] = r
		}
		r.Add(m)
	}

	out := make([]DomainTeam, 0, len(teams))
	for bucket, t := range teams {
		if r, ok := rosters[bucket]; ok {
			all := r.Members()
			t.MemberCount = len(all)
			if len(all) > MemberPreviewLimit {
				all = all[:MemberPreviewLimit]
			}
			t.Members = all
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].Domain < out[b].Domain
	})
	return out, nil
}

func (i *impl) AllMembers(ctx context.Context) ([]domain.DomainMember, error) {
	contractMembers, err := i.contracts.Members(ctx)
	if err != nil {
		return nil, err
	}
	productMembers, err := i.products.Members(ctx)
	if err != nil {
		return nil, err
	}
	return append(contractMembers, productMembers...), nil
}
