// Package postgres carries SQL helpers shared by the entity
// repositories. Not for use outside pkg/domain.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	kpool "github.com/lumendata/govcat/pkg/conn/db/postgres/pool"
	"github.com/lumendata/govcat/pkg/conn/db/postgres/scanner"
	"github.com/lumendata/govcat/pkg/domain"
	kpgerr "github.com/lumendata/govcat/pkg/domain/errors/dberrors/postgres"
	"github.com/lumendata/govcat/pkg/utils/slices"
)

// SetClause builds the SET list of a partial update.
type SetClause struct {
	exprs []string
	args  []interface{}
}

func NewSetClause() *SetClause {
	return &SetClause{}
}

// Add appends `"column" = $n`. Nil pointers are skipped, leaving the
// stored value untouched.
func (s *SetClause) Add(column string, value interface{}) {
	switch v := value.(type) {
	case *string:
		if v == nil {
			return
		}
	case *int:
		if v == nil {
			return
		}
	case *int64:
		if v == nil {
			return
		}
	case *bool:
		if v == nil {
			return
		}
	case *time.Time:
		if v == nil {
			return
		}
	}
	s.exprs = append(s.exprs, fmt.Sprintf(`"%s" = $%d`, column, len(s.args)+1))
	s.args = append(s.args, value)
}

// AddNullable appends `"column" = $n` unconditionally; a nil value
// writes SQL NULL.
func (s *SetClause) AddNullable(column string, value interface{}) {
	s.exprs = append(s.exprs, fmt.Sprintf(`"%s" = $%d`, column, len(s.args)+1))
	s.args = append(s.args, value)
}

// AddRaw appends an expression verbatim, without binding an argument.
func (s *SetClause) AddRaw(expr string) {
	s.exprs = append(s.exprs, expr)
}

func (s *SetClause) Empty() bool {
	return len(s.exprs) == 0
}

func (s *SetClause) Expr() string {
	return strings.Join(s.exprs, ", ")
}

// Next is the placeholder for the argument following Args.
func (s *SetClause) Next() string {
	return fmt.Sprintf("$%d", len(s.args)+1)
}

func (s *SetClause) Args() []interface{} {
	return s.args
}

// UpdateChild applies a SetClause to one row of table, by id.
//
// An empty clause still probes for the row, so a missing id reports
// consistently whether or not the delta changes anything.
func UpdateChild(ctx context.Context, conn kpool.Queryer, table string, id string, set *SetClause) error {
	if set.Empty() {
		var found int
		err := conn.QueryRow(
			ctx, fmt.Sprintf(`select count(*) from "%s" where "id" = $1`, table), id,
		).Scan(&found)
		if err != nil {
			return err
		}
		if found == 0 {
			return kpgerr.Missing{Table: table, Identity: id}
		}
		return nil
	}

	tag, err := conn.Exec(
		ctx,
		fmt.Sprintf(
			`update "%s" set %s where "id" = %s`,
			table, set.Expr(), set.Next(),
		),
		append(set.Args(), id)...,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return kpgerr.Missing{Table: table, Identity: id}
	}
	return nil
}

// DeleteChild removes one row of table by id. Missing rows are a no-op.
func DeleteChild(ctx context.Context, conn kpool.Queryer, table string, id string) error {
	_, err := conn.Exec(
		ctx, fmt.Sprintf(`delete from "%s" where "id" = $1`, table), id,
	)
	return err
}

// StringOf widens a typed-string pointer for binding as a SQL argument.
func StringOf[T ~string](p *T) *string {
	if p == nil {
		return nil
	}
	s := string(*p)
	return &s
}

// EmptyAsNil normalizes an empty slice to nil, so that serialized
// columns store SQL NULL rather than "[]". Both the insert and the
// update paths go through this, keeping the stored representation
// independent of the verb.
func EmptyAsNil[T any](v []T) []T {
	if len(v) == 0 {
		return nil
	}
	return v
}

func EmptyMapAsNil[V any](v map[string]V) map[string]V {
	if len(v) == 0 {
		return nil
	}
	return v
}

// WrapMissingParent turns a foreign key violation on a child insert
// into a Missing error for the parent row.
func WrapMissingParent(err error, table string, id string) error {
	if pgerr := new(pgconn.PgError); errors.As(err, &pgerr) {
		if pgerr.Code == pgerrcode.ForeignKeyViolation {
			return kpgerr.Missing{Table: table, Identity: id}
		}
	}
	return err
}

// ---- team members (same table shape under contracts and products) ----

type teamMemberRow struct {
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

func (r teamMemberRow) Model() domain.TeamMember {
	return domain.TeamMember{
		Id:                 r.Id,
		ParentId:           r.ParentId,
		Username:           r.Username,
		Name:               r.Name,
		Role:               r.Role,
		Description:        r.Description,
		DateIn:             r.DateIn,
		DateOut:            r.DateOut,
		ReplacedByUsername: r.ReplacedByUsername,
	}
}

func GetTeamMembers(ctx context.Context, conn kpool.Queryer, table string, fk string, parentId string) ([]domain.TeamMember, error) {
	rows, err := scanner.New[teamMemberRow]().QueryAll(
		ctx, conn,
		fmt.Sprintf(
			`
			select
				"id", "%s" as "parent_id", "username", "name", "role",
				"description", "date_in", "date_out", "replaced_by_username"
			from "%s"
			where "%s" = $1
			order by "username"
			`,
			fk, table, fk,
		),
		parentId,
	)
	if err != nil {
		return nil, err
	}
	return slices.Map(rows, teamMemberRow.Model), nil
}

func AddTeamMember(
	ctx context.Context, conn kpool.Queryer,
	table string, fk string, parentTable string, parentId string,
	spec domain.TeamMemberSpec,
) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	id := uuid.NewString()
	if _, err := conn.Exec(
		ctx,
		fmt.Sprintf(
			`
			insert into "%s" (
				"id", "%s", "username", "name", "role",
				"description", "date_in", "date_out", "replaced_by_username"
			) values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`,
			table, fk,
		),
		id, parentId, spec.Username, spec.Name, spec.Role,
		spec.Description, spec.DateIn, spec.DateOut, spec.ReplacedByUsername,
	); err != nil {
		return "", WrapMissingParent(err, parentTable, parentId)
	}
	return id, nil
}

// ---- support channels (same table shape under contracts and products) ----

type supportChannelRow struct {
	Id            string
	ParentId      string
	Channel       string
	Url           string
	Description   *string
	Tool          *string
	Scope         *string
	InvitationUrl *string
}

func (r supportChannelRow) Model() domain.SupportChannel {
	ch := domain.SupportChannel{
		Id:            r.Id,
		ParentId:      r.ParentId,
		Channel:       r.Channel,
		URL:           r.Url,
		Description:   r.Description,
		InvitationURL: r.InvitationUrl,
	}
	if r.Tool != nil {
		t := domain.SupportTool(*r.Tool)
		ch.Tool = &t
	}
	if r.Scope != nil {
		s := domain.SupportScope(*r.Scope)
		ch.Scope = &s
	}
	return ch
}

func GetSupportChannels(ctx context.Context, conn kpool.Queryer, table string, fk string, parentId string) ([]domain.SupportChannel, error) {
	rows, err := scanner.New[supportChannelRow]().QueryAll(
		ctx, conn,
		fmt.Sprintf(
			`
			select
				"id", "%s" as "parent_id", "channel", "url",
				"description", "tool", "scope", "invitation_url"
			from "%s"
			where "%s" = $1
			order by "channel"
			`,
			fk, table, fk,
		),
		parentId,
	)
	if err != nil {
		return nil, err
	}
	return slices.Map(rows, supportChannelRow.Model), nil
}

func AddSupportChannel(
	ctx context.Context, conn kpool.Queryer,
	table string, fk string, parentTable string, parentId string,
	spec domain.SupportChannelSpec,
) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	id := uuid.NewString()
	if _, err := conn.Exec(
		ctx,
		fmt.Sprintf(
			`
			insert into "%s" (
				"id", "%s", "channel", "url",
				"description", "tool", "scope", "invitation_url"
			) values ($1, $2, $3, $4, $5, $6, $7, $8)
			`,
			table, fk,
		),
		id, parentId, spec.Channel, spec.URL,
		spec.Description, StringOf(spec.Tool), StringOf(spec.Scope), spec.InvitationURL,
	); err != nil {
		return "", WrapMissingParent(err, parentTable, parentId)
	}
	return id, nil
}

// DomainCounts groups one entity table by its domain column.
func DomainCounts(ctx context.Context, conn kpool.Queryer, table string) ([]domain.DomainCount, error) {
	type countRow struct {
		Domain *string
		Count  int
	}
	rows, err := scanner.New[countRow]().QueryAll(
		ctx, conn,
		fmt.Sprintf(
			`select "domain", count(*) as "count" from "%s" group by "domain"`,
			table,
		),
	)
	if err != nil {
		return nil, err
	}
	return slices.Map(rows, func(r countRow) domain.DomainCount {
		return domain.DomainCount{Domain: r.Domain, Count: r.Count}
	}), nil
}

// ---- tags (same table shape under contracts and products) ----

func GetTags(ctx context.Context, conn kpool.Queryer, table string, fk string, parentId string) ([]string, error) {
	return scanner.New[string]().QueryAll(
		ctx, conn,
		fmt.Sprintf(
			`select "tag" from "%s" where "%s" = $1 order by "tag"`,
			table, fk,
		),
		parentId,
	)
}

func InsertTags(ctx context.Context, conn kpool.Queryer, table string, fk string, parentId string, tags []string) error {
	for _, tag := range tags {
		if _, err := conn.Exec(
			ctx,
			fmt.Sprintf(
				`insert into "%s" ("id", "%s", "tag") values ($1, $2, $3)`,
				table, fk,
			),
			uuid.NewString(), parentId, tag,
		); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceTags clears and rewrites the tag list of one parent row.
func ReplaceTags(ctx context.Context, conn kpool.Queryer, table string, fk string, parentId string, tags []string) error {
	if _, err := conn.Exec(
		ctx,
		fmt.Sprintf(`delete from "%s" where "%s" = $1`, table, fk),
		parentId,
	); err != nil {
		return err
	}
	return InsertTags(ctx, conn, table, fk, parentId, tags)
}
