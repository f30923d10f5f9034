package postgres

import (
	"context"
	"time"

	kpool "github.com/lumendata/govcat/pkg/conn/db/postgres/pool"
	"github.com/lumendata/govcat/pkg/conn/db/postgres/scanner"
	"github.com/lumendata/govcat/pkg/domain"
	"github.com/lumendata/govcat/pkg/utils/slices"
)

type userPG struct { // implements db.UserInterface
	pool kpool.Pool
}

func New(pool kpool.Pool) *userPG {
	return &userPG{pool: pool}
}

func (u *userPG) Upsert(ctx context.Context, identity domain.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}

	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	// last writer wins, every sighting refreshes last_seen_at.
	_, err = conn.Exec(
		ctx,
		`
		insert into "users" ("email", "name", "source", "last_seen_at")
		values ($1, $2, $3, now())
		on conflict ("email") do update
		set "name" = excluded."name",
		    "source" = excluded."source",
		    "last_seen_at" = excluded."last_seen_at"
		`,
		identity.Email, identity.Name, string(identity.Source),
	)
	return err
}

func (u *userPG) List(ctx context.Context) ([]domain.User, error) {
	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	type userRow struct {
		Email      string
		Name       *string
		Source     string
		LastSeenAt time.Time
		CreatedAt  time.Time
	}
	rows, err := scanner.New[userRow]().QueryAll(
		ctx, conn,
		`
		select "email", "name", "source", "last_seen_at", "created_at"
		from "users"
		order by "last_seen_at" desc
		`,
	)
	if err != nil {
		return nil, err
	}

	return slices.Map(rows, func(r userRow) domain.User {
		return domain.User{
			Email:      r.Email,
			Name:       r.Name,
			Source:     domain.IdentitySource(r.Source),
			LastSeenAt: r.LastSeenAt,
			CreatedAt:  r.CreatedAt,
		}
	}), nil
}
