// Package stats holds the wire types of the dashboard stats API.
package stats

import (
	apicontracts "github.com/lumendata/govcat/pkg/api/types/contracts"
	apiproducts "github.com/lumendata/govcat/pkg/api/types/products"
)

type Stats struct {
	ContractCount int `json:"contractCount"`
	ProductCount  int `json:"productCount"`

	// the most recently updated entries, newest first.
	RecentContracts []apicontracts.Summary `json:"recentContracts"`
	RecentProducts  []apiproducts.Summary  `json:"recentProducts"`
}
