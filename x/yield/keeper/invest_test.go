package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/yield/types"
)

const testAuthority = "cosmos1authority..."

var testStart = time.Unix(1700000000, 0)

// setupKeeper creates a test keeper with an in-memory store and the
// default strategies seeded
func setupKeeper(tb testing.TB) (*Keeper, sdk.Context) {
	tb.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		tb.Fatalf("failed to load store: %v", err)
	}

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: testStart}, false, log.NewNopLogger())

	interfaceRegistry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(interfaceRegistry)

	k := NewKeeper(cdc, storeKey, testAuthority, log.NewNopLogger())
	k.SeedDefaultStrategies(ctx)

	return k, ctx
}

func TestAccrualOneYearAtFivePercent(t *testing.T) {
	k, ctx := setupKeeper(t)

	principal := math.LegacyNewDec(1000)
	if _, err := k.Deposit(ctx, 1, types.StrategyMockYield, principal); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	ctx = ctx.WithBlockTime(testStart.Add(365 * 24 * time.Hour))
	inv, err := k.UpdateYield(ctx, 1)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	// 1000 @ 500 bps over one year accrues 50, within 0.1%
	expected := math.LegacyNewDec(50)
	tolerance := principal.MulInt64(1).QuoInt64(1000)
	diff := inv.YieldGenerated.Sub(expected).Abs()
	if diff.GT(tolerance) {
		t.Errorf("expected yield near %s, got %s", expected, inv.YieldGenerated)
	}
	if !inv.CurrentValue.Equal(inv.PrincipalAmount.Add(inv.YieldGenerated)) {
		t.Error("current value must equal principal plus yield")
	}
}

func TestAccrualThirtyDays(t *testing.T) {
	k, ctx := setupKeeper(t)

	principal := math.LegacyNewDec(5) // five one-unit contributions
	if _, err := k.Deposit(ctx, 1, types.StrategyMockYield, principal); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	ctx = ctx.WithBlockTime(testStart.Add(30 * 24 * time.Hour))
	inv, err := k.UpdateYield(ctx, 1)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	// 5 * 0.05 * 30/365 ≈ 0.020547
	expected := types.CalculateProjectedYield(principal, 30*24*3600, types.MockYieldAPYBps, 1)
	if !inv.YieldGenerated.Equal(expected) {
		t.Errorf("expected yield %s, got %s", expected, inv.YieldGenerated)
	}
	if inv.YieldGenerated.LT(math.LegacyMustNewDecFromStr("0.020")) ||
		inv.YieldGenerated.GT(math.LegacyMustNewDecFromStr("0.021")) {
		t.Errorf("30-day yield out of range: %s", inv.YieldGenerated)
	}
}

func TestDepositZeroAmount(t *testing.T) {
	k, ctx := setupKeeper(t)

	if _, err := k.Deposit(ctx, 1, types.StrategyMockYield, math.LegacyZeroDec()); err != types.ErrZeroDeposit {
		t.Fatalf("expected ErrZeroDeposit, got %v", err)
	}
	if _, err := k.Deposit(ctx, 1, types.StrategyMockYield, math.LegacyNewDec(-5)); err != types.ErrZeroDeposit {
		t.Fatalf("expected ErrZeroDeposit for negative amount, got %v", err)
	}
}

func TestDepositUnsupportedStrategy(t *testing.T) {
	k, ctx := setupKeeper(t)

	// Unknown ID
	if _, err := k.Deposit(ctx, 1, 99, math.LegacyNewDec(100)); err != types.ErrUnsupportedStrategy {
		t.Fatalf("expected ErrUnsupportedStrategy, got %v", err)
	}

	// Registered but inactive
	if _, err := k.Deposit(ctx, 1, types.StrategyFixedAPY, math.LegacyNewDec(100)); err != types.ErrUnsupportedStrategy {
		t.Fatalf("expected ErrUnsupportedStrategy for inactive strategy, got %v", err)
	}

	// Activation makes it usable
	if err := k.SetStrategyActive(ctx, testAuthority, types.StrategyFixedAPY, true); err != nil {
		t.Fatalf("activate failed: %v", err)
	}
	if _, err := k.Deposit(ctx, 1, types.StrategyFixedAPY, math.LegacyNewDec(100)); err != nil {
		t.Fatalf("deposit after activation failed: %v", err)
	}
}

func TestWithdrawIdempotent(t *testing.T) {
	k, ctx := setupKeeper(t)

	principal := math.LegacyNewDec(1000)
	k.Deposit(ctx, 1, types.StrategyMockYield, principal)

	ctx = ctx.WithBlockTime(testStart.Add(30 * 24 * time.Hour))
	payout, err := k.Withdraw(ctx, 1)
	if err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}
	if !payout.GT(principal) {
		t.Errorf("payout %s must exceed principal %s", payout, principal)
	}

	if _, err := k.Withdraw(ctx, 1); err != types.ErrNoActiveInvestment {
		t.Fatalf("expected ErrNoActiveInvestment on second withdraw, got %v", err)
	}

	// No further accrual after withdrawal
	ctx = ctx.WithBlockTime(testStart.Add(60 * 24 * time.Hour))
	if got := k.GetTotalValue(ctx, 1); !got.Equal(payout) {
		t.Errorf("value must freeze at withdrawal: expected %s, got %s", payout, got)
	}
}

func TestYieldReadsZeroAfterWithdraw(t *testing.T) {
	k, ctx := setupKeeper(t)

	k.Deposit(ctx, 1, types.StrategyMockYield, math.LegacyNewDec(1000))

	ctx = ctx.WithBlockTime(testStart.Add(30 * 24 * time.Hour))
	if got := k.GetYield(ctx, 1); !got.IsPositive() {
		t.Fatalf("expected positive yield before withdrawal, got %s", got)
	}

	payout, err := k.Withdraw(ctx, 1)
	if err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}

	// Withdrawn investments report zero yield; the settled value stays
	if got := k.GetYield(ctx, 1); !got.IsZero() {
		t.Errorf("expected zero yield after withdrawal, got %s", got)
	}
	if got := k.GetYield(ctx, 42); !got.IsZero() {
		t.Errorf("expected zero yield for unknown pool, got %s", got)
	}
	if got := k.GetTotalValue(ctx, 1); !got.Equal(payout) {
		t.Errorf("settled value must stay at %s, got %s", payout, got)
	}
}

func TestWithdrawUnknownPool(t *testing.T) {
	k, ctx := setupKeeper(t)

	if _, err := k.Withdraw(ctx, 42); err != types.ErrNoActiveInvestment {
		t.Fatalf("expected ErrNoActiveInvestment, got %v", err)
	}
}

func TestPauseBlocksDepositsOnly(t *testing.T) {
	k, ctx := setupKeeper(t)

	k.Deposit(ctx, 1, types.StrategyMockYield, math.LegacyNewDec(500))

	if err := k.Pause(ctx, testAuthority); err != nil {
		t.Fatalf("pause failed: %v", err)
	}

	if _, err := k.Deposit(ctx, 2, types.StrategyMockYield, math.LegacyNewDec(100)); err != types.ErrDepositsPaused {
		t.Fatalf("expected ErrDepositsPaused, got %v", err)
	}

	// Accrual and withdrawal continue while paused
	ctx = ctx.WithBlockTime(testStart.Add(24 * time.Hour))
	if _, err := k.UpdateYield(ctx, 1); err != nil {
		t.Fatalf("update while paused failed: %v", err)
	}
	if _, err := k.Withdraw(ctx, 1); err != nil {
		t.Fatalf("withdraw while paused failed: %v", err)
	}

	if err := k.Unpause(ctx, testAuthority); err != nil {
		t.Fatalf("unpause failed: %v", err)
	}
	if _, err := k.Deposit(ctx, 2, types.StrategyMockYield, math.LegacyNewDec(100)); err != nil {
		t.Fatalf("deposit after unpause failed: %v", err)
	}
}

func TestPauseRequiresAuthority(t *testing.T) {
	k, ctx := setupKeeper(t)

	if err := k.Pause(ctx, "cosmos1intruder..."); err != types.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestReducePrincipal(t *testing.T) {
	k, ctx := setupKeeper(t)

	k.Deposit(ctx, 1, types.StrategyMockYield, math.LegacyNewDec(5))

	ctx = ctx.WithBlockTime(testStart.Add(10 * 24 * time.Hour))
	if err := k.ReducePrincipal(ctx, 1, math.LegacyNewDec(1)); err != nil {
		t.Fatalf("reduce failed: %v", err)
	}

	inv := k.GetInvestment(ctx, 1)
	if !inv.PrincipalAmount.Equal(math.LegacyNewDec(4)) {
		t.Errorf("expected principal 4, got %s", inv.PrincipalAmount)
	}
	// Yield accrued before the reduction stays
	if !inv.YieldGenerated.IsPositive() {
		t.Error("accrued yield must survive a principal reduction")
	}
	if !inv.CurrentValue.Equal(inv.PrincipalAmount.Add(inv.YieldGenerated)) {
		t.Error("current value must equal principal plus yield")
	}

	// Cannot reduce below zero
	if err := k.ReducePrincipal(ctx, 1, math.LegacyNewDec(100)); err != types.ErrInvalidAmount {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestTotalManagedFunds(t *testing.T) {
	k, ctx := setupKeeper(t)

	k.Deposit(ctx, 1, types.StrategyMockYield, math.LegacyNewDec(100))
	k.Deposit(ctx, 2, types.StrategyMockYield, math.LegacyNewDec(200))

	if total := k.GetTotalManagedFunds(ctx); !total.Equal(math.LegacyNewDec(300)) {
		t.Errorf("expected total 300, got %s", total)
	}

	k.Withdraw(ctx, 1)
	if total := k.GetTotalManagedFunds(ctx); !total.Equal(math.LegacyNewDec(200)) {
		t.Errorf("expected total 200 after withdraw, got %s", total)
	}

	k.ReducePrincipal(ctx, 2, math.LegacyNewDec(50))
	if total := k.GetTotalManagedFunds(ctx); !total.Equal(math.LegacyNewDec(150)) {
		t.Errorf("expected total 150 after reduction, got %s", total)
	}
}

func TestProjectedYieldMatchesAccrual(t *testing.T) {
	k, ctx := setupKeeper(t)

	principal := math.LegacyNewDec(1234)
	k.Deposit(ctx, 1, types.StrategyMockYield, principal)

	elapsed := int64(17 * 24 * 3600)
	ctx = ctx.WithBlockTime(testStart.Add(time.Duration(elapsed) * time.Second))

	projected := types.CalculateProjectedYield(principal, elapsed, types.MockYieldAPYBps, 1)
	if got := k.GetYield(ctx, 1); !got.Equal(projected) {
		t.Errorf("read-path yield %s must match projection %s", got, projected)
	}

	inv, _ := k.UpdateYield(ctx, 1)
	if !inv.YieldGenerated.Equal(projected) {
		t.Errorf("persisted yield %s must match projection %s", inv.YieldGenerated, projected)
	}
}

func TestProjectedYieldCompounding(t *testing.T) {
	principal := math.LegacyNewDec(1000)

	simple := types.CalculateProjectedYield(principal, types.SecondsPerYear, 500, 1)
	monthly := types.CalculateProjectedYield(principal, types.SecondsPerYear, 500, 12)

	if !monthly.GT(simple) {
		t.Errorf("monthly compounding %s must beat simple interest %s", monthly, simple)
	}
	// Compounded 5% over a year stays close to the nominal rate
	if monthly.GT(math.LegacyNewDec(53)) {
		t.Errorf("compounded yield unreasonably high: %s", monthly)
	}

	if !types.CalculateProjectedYield(principal, 0, 500, 1).IsZero() {
		t.Error("zero elapsed time must yield zero")
	}
	if !types.CalculateProjectedYield(math.LegacyZeroDec(), types.SecondsPerYear, 500, 1).IsZero() {
		t.Error("zero principal must yield zero")
	}
}
