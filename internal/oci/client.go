// Package oci adapts the OCI Go SDK for the rest of the service. It owns
// authentication provider selection (API-key configuration file or resource
// principal) and implements the compartment listing contract.
package oci

import (
	"context"
	"fmt"

	"github.com/adbstack/agent-tools/internal/compartments"
	"github.com/adbstack/agent-tools/internal/config"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/common/auth"
	"github.com/oracle/oci-go-sdk/v65/identity"
)

// Client wraps the SDK identity client with the tenancy scope and retry
// policy every call shares.
type Client struct {
	identity  identity.IdentityClient
	tenancyID string
	retry     common.RetryPolicy
}

// New creates a Client from cloud configuration. When UseResourcePrincipal
// is set the resource principal identity mode is used; otherwise the SDK
// configuration file (optionally a specific path and profile) supplies the
// API key credential.
func New(cfg *config.CloudConfig) (*Client, error) {
	provider, err := configurationProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("cloud configuration provider: %w", err)
	}

	client, err := identity.NewIdentityClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("identity client: %w", err)
	}

	if cfg.Region != "" {
		client.SetRegion(cfg.Region)
	}

	tenancyID, err := provider.TenancyOCID()
	if err != nil {
		return nil, fmt.Errorf("resolve tenancy: %w", err)
	}

	// Transient failures get a single retry; anything beyond that is the
	// caller's decision.
	retry := common.NewRetryPolicyWithOptions(common.WithMaximumNumberAttempts(2))

	return &Client{
		identity:  client,
		tenancyID: tenancyID,
		retry:     retry,
	}, nil
}

// TenancyID returns the OCID of the tenancy the client authenticates against.
func (c *Client) TenancyID() string {
	return c.tenancyID
}

// ListCompartments returns every active compartment in the tenancy,
// including nested compartments, following listing pagination to the end.
func (c *Client) ListCompartments(ctx context.Context) ([]compartments.Compartment, error) {
	var (
		results []compartments.Compartment
		page    *string
	)

	for {
		resp, err := c.identity.ListCompartments(ctx, identity.ListCompartmentsRequest{
			CompartmentId:          common.String(c.tenancyID),
			CompartmentIdInSubtree: common.Bool(true),
			AccessLevel:            identity.ListCompartmentsAccessLevelAccessible,
			Page:                   page,
			RequestMetadata: common.RequestMetadata{
				RetryPolicy: &c.retry,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("list compartments (tenancy %s): %w", c.tenancyID, err)
		}

		for _, item := range resp.Items {
			if item.LifecycleState != identity.CompartmentLifecycleStateActive {
				continue
			}
			results = append(results, compartments.Compartment{
				OCID: deref(item.Id),
				Name: deref(item.Name),
			})
		}

		if resp.OpcNextPage == nil {
			return results, nil
		}
		page = resp.OpcNextPage
	}
}

func configurationProvider(cfg *config.CloudConfig) (common.ConfigurationProvider, error) {
	if cfg.UseResourcePrincipal {
		return auth.ResourcePrincipalConfigurationProvider()
	}
	if cfg.ConfigPath != "" {
		return common.ConfigurationProviderFromFileWithProfile(cfg.ConfigPath, cfg.Profile, "")
	}
	return common.DefaultConfigProvider(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
