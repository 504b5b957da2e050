package credentials

import "errors"

// ErrConfigurationMissing indicates no credential was supplied explicitly and
// none is configured for the calling agent. Operations requiring cloud
// authentication must treat this as a precondition failure.
var ErrConfigurationMissing = errors.New("credential configuration missing")
