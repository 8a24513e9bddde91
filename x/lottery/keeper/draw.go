package keeper

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/lottery/types"
)

// DrawLottery picks a winner from participants and records the round.
// A draw within RoundIntervalSeconds of the previous one is rejected,
// independent of the caller's own cadence bookkeeping.
// The round record is committed before the prize payment and the badge
// mint, so a failure in either cannot produce a second draw for the
// same round.
//
// Winner selection hashes the block header hash, block time, pool ID and
// round number. This is predictable by block proposers and is only
// suitable for low-stakes draws; do not reuse it where an adversarial
// proposer matters.
func (k *Keeper) DrawLottery(ctx sdk.Context, caller string, poolID uint64, participants []string, prize math.LegacyDec) (*types.Round, error) {
	if !k.trust.IsTrustedCaller(caller) && caller != k.trust.Authority {
		return nil, types.ErrUnauthorized
	}
	if len(participants) == 0 {
		return nil, types.ErrEmptyParticipantSet
	}
	if prize.IsNil() || prize.IsNegative() {
		return nil, types.ErrInvalidPrize
	}

	round := k.CurrentRound(ctx, poolID) + 1
	if prev := k.GetRound(ctx, poolID, round-1); prev != nil {
		if ctx.BlockTime().Unix()-prev.DrawnAt < k.GetConfig(ctx).RoundIntervalSeconds {
			return nil, types.ErrAlreadyDrawnThisRound
		}
	}

	winner := participants[k.winnerIndex(ctx, poolID, round, len(participants))]

	record := &types.Round{
		PoolID:       poolID,
		Round:        round,
		PrizeAmount:  prize,
		Winner:       winner,
		Participants: append([]string(nil), participants...),
		DrawnAt:      ctx.BlockTime().Unix(),
	}
	k.SetRound(ctx, record)
	k.setCurrentRound(ctx, poolID, round)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"lottery_drawn",
			sdk.NewAttribute("pool_id", strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute("round", strconv.FormatUint(round, 10)),
			sdk.NewAttribute("winner", winner),
			sdk.NewAttribute("prize", prize.String()),
		),
	)

	if k.prizePayer != nil && prize.IsPositive() {
		if err := k.prizePayer.PayPrize(ctx, winner, prize); err != nil {
			return nil, err
		}
	}

	if k.badgeMinter != nil {
		if err := k.badgeMinter.MintBadge(ctx, winner, "lottery_winner", poolID); err != nil {
			if k.badgePolicy == types.BadgePolicyMandatory {
				return nil, types.ErrBadgeMintFailed.Wrap(err.Error())
			}
			k.logger.Error("Winner badge mint failed", "pool_id", poolID, "round", round, "error", err)
		}
	}

	k.logger.Info("Lottery drawn",
		"pool_id", poolID,
		"round", round,
		"winner", winner,
		"prize", prize.String(),
	)

	return record, nil
}

// winnerIndex derives the winning index from block entropy
func (k *Keeper) winnerIndex(ctx sdk.Context, poolID, round uint64, n int) int {
	seed := make([]byte, 0, 64)
	seed = append(seed, ctx.HeaderHash()...)

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(ctx.BlockTime().Unix()))
	seed = append(seed, buf[:]...)
	binary.BigEndian.PutUint64(buf[:], poolID)
	seed = append(seed, buf[:]...)
	binary.BigEndian.PutUint64(buf[:], round)
	seed = append(seed, buf[:]...)

	digest := sha256.Sum256(seed)
	return int(binary.BigEndian.Uint64(digest[:8]) % uint64(n))
}
