package db

import (
	kcontract "github.com/lumendata/govcat/pkg/domain/contract/db"
	kproduct "github.com/lumendata/govcat/pkg/domain/product/db"
	kschema "github.com/lumendata/govcat/pkg/domain/schema/db"
	kuser "github.com/lumendata/govcat/pkg/domain/user/db"
)

type GovcatDatabase interface {
	Contracts() kcontract.ContractInterface
	Products() kproduct.ProductInterface
	Users() kuser.UserInterface
	Schema() kschema.SchemaInterface
	Close() error
}
