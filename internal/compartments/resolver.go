package compartments

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Resolution is the outcome of a successful compartment lookup.
type Resolution struct {
	OCID string `json:"compartment_ocid"`
	Name string `json:"compartment_name"`
}

// Resolver resolves compartment names against a live tenancy listing.
type Resolver struct {
	lister  Lister
	logger  *slog.Logger
	timeout time.Duration
}

// NewResolver creates a compartment resolver. The timeout bounds each
// listing call; zero disables the bound.
func NewResolver(lister Lister, logger *slog.Logger, timeout time.Duration) *Resolver {
	return &Resolver{
		lister:  lister,
		logger:  logger.With("system", "compartments"),
		timeout: timeout,
	}
}

// ResolveOCID resolves a compartment name to its OCID. Matching is
// case-sensitive and first-match-wins; duplicate names are not disambiguated.
// ErrRemote wraps listing failures so callers can distinguish them from a
// name that simply does not exist.
func (r *Resolver) ResolveOCID(ctx context.Context, name string) (*Resolution, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	all, err := r.lister.ListCompartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	for _, c := range all {
		if c.Name == name {
			r.logger.Debug("compartment resolved", "name", name, "ocid", c.OCID)
			return &Resolution{OCID: c.OCID, Name: c.Name}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}
