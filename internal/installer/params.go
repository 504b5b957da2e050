package installer

import (
	"strings"

	"github.com/adbstack/agent-tools/pkg/decode"
)

// SetupParams is the optional configuration payload an install run accepts.
// Only keys present in the payload are written; absent keys leave existing
// configuration untouched.
type SetupParams struct {
	UseResourcePrincipal *bool  `json:"use_resource_principal,omitempty"`
	CredentialName       string `json:"credential_name,omitempty"`
	CompartmentName      string `json:"compartment_name,omitempty"`
	CompartmentOCID      string `json:"compartment_ocid,omitempty"`
}

// ParseParams parses a JSON configuration payload, rejecting unknown keys.
// An empty payload yields zero-value params.
func ParseParams(payload string) (SetupParams, error) {
	if strings.TrimSpace(payload) == "" {
		return SetupParams{}, nil
	}
	return decode.JSON[SetupParams](strings.NewReader(payload))
}
