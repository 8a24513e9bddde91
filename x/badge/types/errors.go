package types

import (
	"cosmossdk.io/errors"
)

// Module error codes
var (
	ErrUnauthorized       = errors.Register(ModuleName, 1, "caller lacks the required badge role")
	ErrInvalidBadgeType   = errors.Register(ModuleName, 2, "invalid badge type")
	ErrInvalidRecipient   = errors.Register(ModuleName, 3, "invalid recipient address")
	ErrBadgeNotFound      = errors.Register(ModuleName, 4, "badge not found")
	ErrTransferDisabled   = errors.Register(ModuleName, 5, "badges are non-transferable")
	ErrInvalidRole        = errors.Register(ModuleName, 6, "unknown role")
	ErrRoleNotGranted     = errors.Register(ModuleName, 7, "role not granted to account")
	ErrInvalidTrustConfig = errors.Register(ModuleName, 8, "invalid trust configuration")
)
