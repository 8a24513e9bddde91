package app

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"

	arisantypes "github.com/openarisan/arisan-chain/x/arisan/types"
	badgekeeper "github.com/openarisan/arisan-chain/x/badge/keeper"
	lotterykeeper "github.com/openarisan/arisan-chain/x/lottery/keeper"
	lotterytypes "github.com/openarisan/arisan-chain/x/lottery/types"
	yieldkeeper "github.com/openarisan/arisan-chain/x/yield/keeper"
	yieldtypes "github.com/openarisan/arisan-chain/x/yield/types"
)

func baseCoins(amount math.LegacyDec) sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(arisantypes.BaseDenom, amount.TruncateInt()))
}

// arisanYieldAdapter narrows the yield keeper to the arisan expected
// interface. On withdrawal the yield portion is minted through the yield
// module account and moved to the arisan module account so pool payouts
// are fully funded; the mock strategy has no external source of return.
type arisanYieldAdapter struct {
	keeper *yieldkeeper.Keeper
	bank   bankkeeper.BaseKeeper
}

func newArisanYieldAdapter(keeper *yieldkeeper.Keeper, bank bankkeeper.BaseKeeper) arisantypes.YieldKeeper {
	return arisanYieldAdapter{keeper: keeper, bank: bank}
}

func (a arisanYieldAdapter) Deposit(ctx sdk.Context, poolID, strategyID uint64, amount math.LegacyDec) error {
	_, err := a.keeper.Deposit(ctx, poolID, strategyID, amount)
	return err
}

func (a arisanYieldAdapter) UpdateYield(ctx sdk.Context, poolID uint64) (math.LegacyDec, error) {
	inv, err := a.keeper.UpdateYield(ctx, poolID)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	return inv.YieldGenerated, nil
}

func (a arisanYieldAdapter) GetYield(ctx sdk.Context, poolID uint64) math.LegacyDec {
	return a.keeper.GetYield(ctx, poolID)
}

func (a arisanYieldAdapter) Withdraw(ctx sdk.Context, poolID uint64) (math.LegacyDec, error) {
	inv := a.keeper.GetInvestment(ctx, poolID)

	payout, err := a.keeper.Withdraw(ctx, poolID)
	if err != nil {
		return math.LegacyZeroDec(), err
	}

	yieldPart := payout.Sub(inv.PrincipalAmount)
	if yieldPart.IsPositive() {
		coins := baseCoins(yieldPart)
		if err := a.bank.MintCoins(ctx, yieldtypes.ModuleName, coins); err != nil {
			return math.LegacyZeroDec(), err
		}
		if err := a.bank.SendCoinsFromModuleToModule(ctx, yieldtypes.ModuleName, arisantypes.ModuleName, coins); err != nil {
			return math.LegacyZeroDec(), err
		}
	}
	return payout, nil
}

func (a arisanYieldAdapter) ReducePrincipal(ctx sdk.Context, poolID uint64, amount math.LegacyDec) error {
	return a.keeper.ReducePrincipal(ctx, poolID, amount)
}

// arisanLotteryAdapter lets the pool EndBlocker trigger draws as the
// arisan module account
type arisanLotteryAdapter struct {
	keeper *lotterykeeper.Keeper
	caller string
}

func newArisanLotteryAdapter(keeper *lotterykeeper.Keeper, caller string) arisantypes.LotteryKeeper {
	return arisanLotteryAdapter{keeper: keeper, caller: caller}
}

func (a arisanLotteryAdapter) DrawConfig(ctx sdk.Context) (math.LegacyDec, int64) {
	cfg := a.keeper.GetConfig(ctx)
	return cfg.PrizePoolPercentage, cfg.RoundIntervalSeconds
}

func (a arisanLotteryAdapter) Draw(ctx sdk.Context, poolID uint64, participants []string, prize math.LegacyDec) error {
	_, err := a.keeper.DrawLottery(ctx, a.caller, poolID, participants, prize)
	return err
}

// badgeMinterAdapter mints badges on behalf of a module account. The
// same adapter serves the arisan and lottery keepers, each with its own
// minter identity.
type badgeMinterAdapter struct {
	keeper *badgekeeper.Keeper
	minter string
}

func newBadgeMinterAdapter(keeper *badgekeeper.Keeper, minter string) badgeMinterAdapter {
	return badgeMinterAdapter{keeper: keeper, minter: minter}
}

func (a badgeMinterAdapter) MintBadge(ctx sdk.Context, recipient, badgeType string, poolID uint64) error {
	_, err := a.keeper.Mint(ctx, a.minter, recipient, badgeType, poolID)
	return err
}

// lotteryPrizePayer funds prizes by minting through the yield module
// account; prizes ride on top of the pooled yield rather than reducing
// the members' payout.
type lotteryPrizePayer struct {
	bank bankkeeper.BaseKeeper
}

func newLotteryPrizePayer(bank bankkeeper.BaseKeeper) lotterytypes.PrizePayer {
	return lotteryPrizePayer{bank: bank}
}

func (p lotteryPrizePayer) PayPrize(ctx sdk.Context, winner string, amount math.LegacyDec) error {
	winnerAddr, err := sdk.AccAddressFromBech32(winner)
	if err != nil {
		return err
	}
	coins := baseCoins(amount)
	if coins.IsZero() {
		return nil
	}
	if err := p.bank.MintCoins(ctx, yieldtypes.ModuleName, coins); err != nil {
		return err
	}
	return p.bank.SendCoinsFromModuleToAccount(ctx, yieldtypes.ModuleName, winnerAddr, coins)
}
