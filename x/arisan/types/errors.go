package types

import (
	"cosmossdk.io/errors"
)

// Module errors
var (
	ErrUnauthorized         = errors.Register(ModuleName, 1, "unauthorized")
	ErrInvalidConfiguration = errors.Register(ModuleName, 2, "invalid pool configuration")
	ErrPoolNotFound         = errors.Register(ModuleName, 3, "pool not found")
	ErrPoolNotActive        = errors.Register(ModuleName, 4, "pool is not active")
	ErrPoolFull             = errors.Register(ModuleName, 5, "pool is full")
	ErrAlreadyMember        = errors.Register(ModuleName, 6, "already a member")
	ErrIncorrectAmount      = errors.Register(ModuleName, 7, "contribution amount mismatch")
	ErrNotMember            = errors.Register(ModuleName, 8, "not a pool member")
	ErrCannotLeave          = errors.Register(ModuleName, 9, "cannot leave after the first draw or maturity")
	ErrNotMatured           = errors.Register(ModuleName, 10, "pool has not matured")
	ErrAlreadyWithdrawn     = errors.Register(ModuleName, 11, "payout already withdrawn")
	ErrInvalidRole          = errors.Register(ModuleName, 12, "invalid role")
	ErrRoleNotGranted       = errors.Register(ModuleName, 13, "role not granted")
	ErrBadgeMintFailed      = errors.Register(ModuleName, 14, "badge mint failed")
)
