package installer

import "errors"

// ErrSetup marks a fatal installation failure: a grant or object-creation
// step whose success later steps depend on.
var ErrSetup = errors.New("setup failed")
