package postgres

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	kpool "github.com/lumendata/govcat/pkg/conn/db/postgres/pool"
	kcontract "github.com/lumendata/govcat/pkg/domain/contract/db"
	kpgcontract "github.com/lumendata/govcat/pkg/domain/contract/db/postgres"
	dbInterface "github.com/lumendata/govcat/pkg/domain/govcat/db"
	kproduct "github.com/lumendata/govcat/pkg/domain/product/db"
	kpgproduct "github.com/lumendata/govcat/pkg/domain/product/db/postgres"
	kschema "github.com/lumendata/govcat/pkg/domain/schema/db"
	kpgschema "github.com/lumendata/govcat/pkg/domain/schema/db/postgres"
	kuser "github.com/lumendata/govcat/pkg/domain/user/db"
	kpguser "github.com/lumendata/govcat/pkg/domain/user/db/postgres"
	xe "github.com/lumendata/govcat/pkg/errors"
)

type govcatDBPostgres struct {
	pool      *pgxpool.Pool
	contracts kcontract.ContractInterface
	products  kproduct.ProductInterface
	users     kuser.UserInterface
	schema    kschema.SchemaInterface
}

type Config struct {
	SchemaRepository string
}

func DefaultConfig() Config {
	return Config{}
}

type Option func(*Config) *Config

func WithSchemaRepository(repository string) Option {
	return func(c *Config) *Config {
		c.SchemaRepository = repository
		return c
	}
}

func New(
	ctx context.Context,
	url string,
	options ...Option,
) (dbInterface.GovcatDatabase, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, xe.Wrap(err)
	}

	c := DefaultConfig()
	for _, option := range options {
		c = *option(&c)
	}

	p := kpool.Wrap(pool)
	var schema kschema.SchemaInterface = kpgschema.Null()
	if c.SchemaRepository != "" {
		schema = kpgschema.New(p, c.SchemaRepository)
	}

	return &govcatDBPostgres{
		pool:      pool,
		contracts: kpgcontract.New(p),
		products:  kpgproduct.New(p),
		users:     kpguser.New(p),
		schema:    schema,
	}, nil
}

func (g *govcatDBPostgres) Contracts() kcontract.ContractInterface {
	return g.contracts
}

func (g *govcatDBPostgres) Products() kproduct.ProductInterface {
	return g.products
}

func (g *govcatDBPostgres) Users() kuser.UserInterface {
	return g.users
}

func (g *govcatDBPostgres) Schema() kschema.SchemaInterface {
	return g.schema
}

func (g *govcatDBPostgres) Close() error {
	g.pool.Close()
	return nil
}
