package types

import (
	"cosmossdk.io/errors"
)

// Module errors
var (
	ErrUnauthorized          = errors.Register(ModuleName, 1, "unauthorized")
	ErrEmptyParticipantSet   = errors.Register(ModuleName, 2, "no participants to draw from")
	ErrAlreadyDrawnThisRound = errors.Register(ModuleName, 3, "round already drawn")
	ErrRoundNotFound         = errors.Register(ModuleName, 4, "round not found")
	ErrInvalidConfig         = errors.Register(ModuleName, 5, "invalid lottery config")
	ErrInvalidPrize          = errors.Register(ModuleName, 6, "invalid prize amount")
	ErrBadgeMintFailed       = errors.Register(ModuleName, 7, "winner badge mint failed")
)
