// Package compartments resolves human compartment names to cloud OCIDs by
// listing the tenancy's compartments and matching on name. Lookups are live
// on every call; this is an infrequent, human-in-the-loop workflow, not a
// hot path, so no caching layer is carried.
package compartments

import "context"

// Compartment is a tenancy resource-grouping unit.
type Compartment struct {
	OCID string `json:"ocid"`
	Name string `json:"name"`
}

// Lister lists every compartment visible in the tenancy.
type Lister interface {
	ListCompartments(ctx context.Context) ([]Compartment, error)
}
