package keeper

import (
	"context"
	"errors"
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

	"github.com/openarisan/arisan-chain/x/arisan/types"
	lotterykeeper "github.com/openarisan/arisan-chain/x/lottery/keeper"
	lotterytypes "github.com/openarisan/arisan-chain/x/lottery/types"
	yieldkeeper "github.com/openarisan/arisan-chain/x/yield/keeper"
	yieldtypes "github.com/openarisan/arisan-chain/x/yield/types"
)

const (
	testAuthority = "cosmos1authority..."
	testCreator   = "cosmos1creator..."
)

// testMembers are five deterministic bech32 addresses
var testMembers = func() []string {
	members := make([]string, 5)
	for i := range members {
		seed := make([]byte, 20)
		seed[0] = byte(i + 1)
		members[i] = sdk.AccAddress(seed).String()
	}
	return members
}()

// fakeBank tracks module account flows without real balances
type fakeBank struct {
	toModule   math.LegacyDec
	fromModule math.LegacyDec
	payouts    map[string]math.Int
}

func newFakeBank() *fakeBank {
	return &fakeBank{
		toModule:   math.LegacyZeroDec(),
		fromModule: math.LegacyZeroDec(),
		payouts:    make(map[string]math.Int),
	}
}

func (b *fakeBank) SendCoinsFromAccountToModule(ctx context.Context, sender sdk.AccAddress, module string, amt sdk.Coins) error {
	b.toModule = b.toModule.Add(math.LegacyNewDecFromInt(amt.AmountOf(types.BaseDenom)))
	return nil
}

func (b *fakeBank) SendCoinsFromModuleToAccount(ctx context.Context, module string, recipient sdk.AccAddress, amt sdk.Coins) error {
	got := amt.AmountOf(types.BaseDenom)
	b.fromModule = b.fromModule.Add(math.LegacyNewDecFromInt(got))
	prev, ok := b.payouts[recipient.String()]
	if !ok {
		prev = math.ZeroInt()
	}
	b.payouts[recipient.String()] = prev.Add(got)
	return nil
}

// fakeBadgeMinter records mints per badge type and optionally fails
type fakeBadgeMinter struct {
	byType map[string]int
	fail   bool
}

func newFakeBadgeMinter() *fakeBadgeMinter {
	return &fakeBadgeMinter{byType: make(map[string]int)}
}

func (m *fakeBadgeMinter) MintBadge(ctx sdk.Context, recipient, badgeType string, poolID uint64) error {
	if m.fail {
		return errors.New("registry offline")
	}
	m.byType[badgeType]++
	return nil
}

// yieldAdapter narrows the real yield keeper to the expected interface
type yieldAdapter struct {
	k *yieldkeeper.Keeper
}

func (a yieldAdapter) Deposit(ctx sdk.Context, poolID, strategyID uint64, amount math.LegacyDec) error {
	_, err := a.k.Deposit(ctx, poolID, strategyID, amount)
	return err
}

func (a yieldAdapter) UpdateYield(ctx sdk.Context, poolID uint64) (math.LegacyDec, error) {
	inv, err := a.k.UpdateYield(ctx, poolID)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	return inv.YieldGenerated, nil
}

func (a yieldAdapter) GetYield(ctx sdk.Context, poolID uint64) math.LegacyDec {
	return a.k.GetYield(ctx, poolID)
}

func (a yieldAdapter) Withdraw(ctx sdk.Context, poolID uint64) (math.LegacyDec, error) {
	return a.k.Withdraw(ctx, poolID)
}

func (a yieldAdapter) ReducePrincipal(ctx sdk.Context, poolID uint64, amount math.LegacyDec) error {
	return a.k.ReducePrincipal(ctx, poolID, amount)
}

// lotteryAdapter narrows the real lottery keeper to the expected interface
type lotteryAdapter struct {
	k      *lotterykeeper.Keeper
	caller string
}

func (a lotteryAdapter) DrawConfig(ctx sdk.Context) (math.LegacyDec, int64) {
	cfg := a.k.GetConfig(ctx)
	return cfg.PrizePoolPercentage, cfg.RoundIntervalSeconds
}

func (a lotteryAdapter) Draw(ctx sdk.Context, poolID uint64, participants []string, prize math.LegacyDec) error {
	_, err := a.k.DrawLottery(ctx, a.caller, poolID, participants, prize)
	return err
}

type fixture struct {
	keeper  *Keeper
	yield   *yieldkeeper.Keeper
	lottery *lotterykeeper.Keeper
	bank    *fakeBank
	badges  *fakeBadgeMinter
	ctx     sdk.Context
	start   time.Time
}

func setupFixture(tb testing.TB, badgePolicy string) *fixture {
	tb.Helper()

	arisanKey := storetypes.NewKVStoreKey(types.StoreKey)
	yieldKey := storetypes.NewKVStoreKey(yieldtypes.StoreKey)
	lotteryKey := storetypes.NewKVStoreKey(lotterytypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(arisanKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(yieldKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(lotteryKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		tb.Fatalf("failed to load store: %v", err)
	}

	start := time.Unix(1700000000, 0)
	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: start}, false, log.NewNopLogger()).
		WithHeaderHash([]byte("test-block-hash-0000000000000000"))

	interfaceRegistry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(interfaceRegistry)

	yk := yieldkeeper.NewKeeper(cdc, yieldKey, testAuthority, log.NewNopLogger())
	yk.SeedDefaultStrategies(ctx)

	lotteryTrust := lotterytypes.TrustConfig{
		Authority:      testAuthority,
		TrustedCallers: []string{types.ModuleName},
	}
	lk := lotterykeeper.NewKeeper(cdc, lotteryKey, lotteryTrust, lotterytypes.BadgePolicyBestEffort, nil, nil, log.NewNopLogger())

	bank := newFakeBank()
	badges := newFakeBadgeMinter()

	k := NewKeeper(
		cdc, arisanKey, testAuthority, badgePolicy,
		bank,
		yieldAdapter{k: yk},
		lotteryAdapter{k: lk, caller: types.ModuleName},
		badges,
		log.NewNopLogger(),
	)

	return &fixture{keeper: k, yield: yk, lottery: lk, bank: bank, badges: badges, ctx: ctx, start: start}
}

func defaultConfig() *types.PoolConfig {
	return &types.PoolConfig{
		Name:               "office arisan",
		ContributionAmount: math.LegacyNewDec(1),
		MaxMembers:         5,
		DurationSeconds:    30 * 24 * 60 * 60,
		StrategyID:         yieldtypes.StrategyMockYield,
	}
}

func TestCreatePoolValidation(t *testing.T) {
	f := setupFixture(t, types.BadgePolicyBestEffort)

	// Role required
	cfg := defaultConfig()
	if _, err := f.keeper.CreatePool(f.ctx, "cosmos1nobody...", cfg); err != types.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := f.keeper.GrantRole(f.ctx, testAuthority, types.RolePoolCreator, testCreator); err != nil {
		t.Fatalf("grant failed: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*types.PoolConfig)
	}{
		{"zero contribution", func(c *types.PoolConfig) { c.ContributionAmount = math.LegacyZeroDec() }},
		{"negative contribution", func(c *types.PoolConfig) { c.ContributionAmount = math.LegacyNewDec(-1) }},
		{"too few members", func(c *types.PoolConfig) { c.MaxMembers = 1 }},
		{"too many members", func(c *types.PoolConfig) { c.MaxMembers = 101 }},
		{"unsupported duration", func(c *types.PoolConfig) { c.DurationSeconds = 12345 }},
		{"empty name", func(c *types.PoolConfig) { c.Name = "" }},
	}
	for _, tc := range cases {
		c := defaultConfig()
		tc.mutate(c)
		if _, err := f.keeper.CreatePool(f.ctx, testCreator, c); err == nil {
			t.Errorf("%s: expected configuration error", tc.name)
		}
	}

	pool, err := f.keeper.CreatePool(f.ctx, testCreator, cfg)
	if err != nil {
		t.Fatalf("valid create failed: %v", err)
	}
	if pool.PoolID != 1 {
		t.Errorf("expected pool ID 1, got %d", pool.PoolID)
	}
	if pool.State != types.PoolStateActive {
		t.Errorf("new pool must be active, got %s", pool.State)
	}

	// IDs are monotonic
	pool2, _ := f.keeper.CreatePool(f.ctx, testCreator, defaultConfig())
	if pool2.PoolID != 2 {
		t.Errorf("expected pool ID 2, got %d", pool2.PoolID)
	}
}

func TestJoinValidation(t *testing.T) {
	f := setupFixture(t, types.BadgePolicyBestEffort)
	f.keeper.GrantRole(f.ctx, testAuthority, types.RolePoolCreator, testCreator)

	cfg := defaultConfig()
	cfg.MaxMembers = 2
	pool, _ := f.keeper.CreatePool(f.ctx, testCreator, cfg)

	one := math.LegacyNewDec(1)
	if _, err := f.keeper.Join(f.ctx, testMembers[0], 999, one); err != types.ErrPoolNotFound {
		t.Fatalf("expected ErrPoolNotFound, got %v", err)
	}
	if _, err := f.keeper.Join(f.ctx, testMembers[0], pool.PoolID, math.LegacyNewDec(2)); err != types.ErrIncorrectAmount {
		t.Fatalf("expected ErrIncorrectAmount, got %v", err)
	}

	if _, err := f.keeper.Join(f.ctx, testMembers[0], pool.PoolID, one); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if _, err := f.keeper.Join(f.ctx, testMembers[0], pool.PoolID, one); err != types.ErrAlreadyMember {
		t.Fatalf("expected ErrAlreadyMember, got %v", err)
	}

	if _, err := f.keeper.Join(f.ctx, testMembers[1], pool.PoolID, one); err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if _, err := f.keeper.Join(f.ctx, testMembers[2], pool.PoolID, one); err != types.ErrPoolFull {
		t.Fatalf("expected ErrPoolFull, got %v", err)
	}

	// Contributions land in the yield ledger
	if got := f.yield.GetTotalManagedFunds(f.ctx); !got.Equal(math.LegacyNewDec(2)) {
		t.Errorf("expected 2 under management, got %s", got)
	}
	// Join badges minted best-effort
	if f.badges.byType["join"] != 2 {
		t.Errorf("expected 2 join badges, got %d", f.badges.byType["join"])
	}
}

func TestJoinAfterMaturityRejected(t *testing.T) {
	f := setupFixture(t, types.BadgePolicyBestEffort)
	f.keeper.GrantRole(f.ctx, testAuthority, types.RolePoolCreator, testCreator)

	pool, _ := f.keeper.CreatePool(f.ctx, testCreator, defaultConfig())

	ctx := f.ctx.WithBlockTime(f.start.Add(31 * 24 * time.Hour))
	if _, err := f.keeper.Join(ctx, testMembers[0], pool.PoolID, math.LegacyNewDec(1)); err != types.ErrPoolNotActive {
		t.Fatalf("expected ErrPoolNotActive, got %v", err)
	}
}

func TestLeaveBeforeFirstDraw(t *testing.T) {
	f := setupFixture(t, types.BadgePolicyBestEffort)
	f.keeper.GrantRole(f.ctx, testAuthority, types.RolePoolCreator, testCreator)

	pool, _ := f.keeper.CreatePool(f.ctx, testCreator, defaultConfig())
	one := math.LegacyNewDec(1)
	f.keeper.Join(f.ctx, testMembers[0], pool.PoolID, one)
	f.keeper.Join(f.ctx, testMembers[1], pool.PoolID, one)

	if _, err := f.keeper.Leave(f.ctx, "cosmos1nobody...", pool.PoolID); err != types.ErrNotMember {
		t.Fatalf("expected ErrNotMember, got %v", err)
	}

	refund, err := f.keeper.Leave(f.ctx, testMembers[0], pool.PoolID)
	if err != nil {
		t.Fatalf("leave failed: %v", err)
	}
	if !refund.Equal(one) {
		t.Errorf("expected refund 1, got %s", refund)
	}

	got := f.keeper.GetPool(f.ctx, pool.PoolID)
	if got.IsMember(testMembers[0]) {
		t.Error("member must be removed")
	}
	if !got.TotalContributions.Equal(one) {
		t.Errorf("expected total 1 after leave, got %s", got.TotalContributions)
	}
	if total := f.yield.GetTotalManagedFunds(f.ctx); !total.Equal(one) {
		t.Errorf("yield ledger must shrink with the refund, got %s", total)
	}
}

func TestLeaveAfterDrawRejected(t *testing.T) {
	f := setupFixture(t, types.BadgePolicyBestEffort)
	f.keeper.GrantRole(f.ctx, testAuthority, types.RolePoolCreator, testCreator)

	pool, _ := f.keeper.CreatePool(f.ctx, testCreator, defaultConfig())
	one := math.LegacyNewDec(1)
	for _, m := range testMembers {
		f.keeper.Join(f.ctx, m, pool.PoolID, one)
	}

	// First draw after the default 7-day interval
	ctx := f.ctx.WithBlockTime(f.start.Add(8 * 24 * time.Hour))
	if err := f.keeper.EndBlocker(ctx); err != nil {
		t.Fatalf("endblocker failed: %v", err)
	}
	if got := f.keeper.GetPool(ctx, pool.PoolID); got.DrawsDone != 1 {
		t.Fatalf("expected 1 draw, got %d", got.DrawsDone)
	}

	if _, err := f.keeper.Leave(ctx, testMembers[0], pool.PoolID); err != types.ErrCannotLeave {
		t.Fatalf("expected ErrCannotLeave after a draw, got %v", err)
	}
}

func TestLeaveAfterMaturityRejected(t *testing.T) {
	f := setupFixture(t, types.BadgePolicyBestEffort)
	f.keeper.GrantRole(f.ctx, testAuthority, types.RolePoolCreator, testCreator)

	pool, _ := f.keeper.CreatePool(f.ctx, testCreator, defaultConfig())
	f.keeper.Join(f.ctx, testMembers[0], pool.PoolID, math.LegacyNewDec(1))

	ctx := f.ctx.WithBlockTime(f.start.Add(30 * 24 * time.Hour))
	if _, err := f.keeper.Leave(ctx, testMembers[0], pool.PoolID); err != types.ErrCannotLeave {
		t.Fatalf("expected ErrCannotLeave after maturity, got %v", err)
	}
}

// TestPoolLifecycleScenario walks five members through a 30-day pool:
// everyone contributes 1, the pool matures, and the payouts return the
// principal plus roughly 0.41% of mock yield each.
func TestPoolLifecycleScenario(t *testing.T) {
	f := setupFixture(t, types.BadgePolicyBestEffort)
	f.keeper.GrantRole(f.ctx, testAuthority, types.RolePoolCreator, testCreator)

	pool, err := f.keeper.CreatePool(f.ctx, testCreator, defaultConfig())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	one := math.LegacyNewDec(1)
	for _, m := range testMembers {
		if _, err := f.keeper.Join(f.ctx, m, pool.PoolID, one); err != nil {
			t.Fatalf("join %s failed: %v", m, err)
		}
	}

	got := f.keeper.GetPool(f.ctx, pool.PoolID)
	if !got.TotalContributions.Equal(math.LegacyNewDec(5)) {
		t.Fatalf("expected total contributions 5, got %s", got.TotalContributions)
	}

	// Too early
	if _, err := f.keeper.WithdrawFunds(f.ctx, testMembers[0], pool.PoolID); err != types.ErrNotMatured {
		t.Fatalf("expected ErrNotMatured, got %v", err)
	}

	// Mature and settle
	ctx := f.ctx.WithBlockTime(f.start.Add(30 * 24 * time.Hour))
	totalPaid := math.LegacyZeroDec()
	for _, m := range testMembers {
		payout, err := f.keeper.WithdrawFunds(ctx, m, pool.PoolID)
		if err != nil {
			t.Fatalf("withdraw %s failed: %v", m, err)
		}
		if !payout.GT(one) {
			t.Errorf("payout %s must exceed the contribution", payout)
		}
		totalPaid = totalPaid.Add(payout)
	}

	// 5 principal + 5 * 5% * 30/365 yield ≈ 5.02055
	expected := math.LegacyMustNewDecFromStr("5.020547")
	if totalPaid.Sub(expected).Abs().GT(math.LegacyMustNewDecFromStr("0.001")) {
		t.Errorf("expected total payout near %s, got %s", expected, totalPaid)
	}

	final := f.keeper.GetPool(ctx, pool.PoolID)
	if final.State != types.PoolStateCompleted {
		t.Errorf("expected completed pool, got %s", final.State)
	}
	if !final.InvestmentWithdrawn {
		t.Error("investment must be marked withdrawn")
	}
	if f.badges.byType["pool_completion"] != len(testMembers) {
		t.Errorf("expected %d completion badges, got %d", len(testMembers), f.badges.byType["pool_completion"])
	}

	// Idempotency per member
	if _, err := f.keeper.WithdrawFunds(ctx, testMembers[0], pool.PoolID); err != types.ErrAlreadyWithdrawn {
		t.Fatalf("expected ErrAlreadyWithdrawn, got %v", err)
	}
}

func TestEndBlockerDrawsLottery(t *testing.T) {
	f := setupFixture(t, types.BadgePolicyBestEffort)
	f.keeper.GrantRole(f.ctx, testAuthority, types.RolePoolCreator, testCreator)

	pool, _ := f.keeper.CreatePool(f.ctx, testCreator, defaultConfig())
	one := math.LegacyNewDec(1)
	for _, m := range testMembers {
		f.keeper.Join(f.ctx, m, pool.PoolID, one)
	}

	// Before the interval no draw happens
	early := f.ctx.WithBlockTime(f.start.Add(24 * time.Hour))
	f.keeper.EndBlocker(early)
	if f.lottery.CurrentRound(early, pool.PoolID) != 0 {
		t.Fatal("draw must wait for the interval")
	}

	ctx := f.ctx.WithBlockTime(f.start.Add(8 * 24 * time.Hour))
	if err := f.keeper.EndBlocker(ctx); err != nil {
		t.Fatalf("endblocker failed: %v", err)
	}

	round := f.lottery.GetRound(ctx, pool.PoolID, 1)
	if round == nil {
		t.Fatal("expected a round record after the interval")
	}
	found := false
	for _, m := range testMembers {
		if round.Winner == m {
			found = true
		}
	}
	if !found {
		t.Errorf("winner %s not a pool member", round.Winner)
	}
	if !round.PrizeAmount.IsPositive() {
		t.Errorf("prize must be positive, got %s", round.PrizeAmount)
	}

	// Same block: interval not elapsed again, no second draw
	f.keeper.EndBlocker(ctx)
	if f.lottery.CurrentRound(ctx, pool.PoolID) != 1 {
		t.Error("a second draw must wait for the next interval")
	}

	// Next interval draws round 2
	ctx2 := f.ctx.WithBlockTime(f.start.Add(16 * 24 * time.Hour))
	f.keeper.EndBlocker(ctx2)
	if f.lottery.CurrentRound(ctx2, pool.PoolID) != 2 {
		t.Error("expected round 2 after the next interval")
	}
}

func TestEmergencyCancel(t *testing.T) {
	f := setupFixture(t, types.BadgePolicyBestEffort)
	f.keeper.GrantRole(f.ctx, testAuthority, types.RolePoolCreator, testCreator)

	pool, _ := f.keeper.CreatePool(f.ctx, testCreator, defaultConfig())
	one := math.LegacyNewDec(1)
	f.keeper.Join(f.ctx, testMembers[0], pool.PoolID, one)
	f.keeper.Join(f.ctx, testMembers[1], pool.PoolID, one)

	if err := f.keeper.EmergencyCancel(f.ctx, "cosmos1nobody...", pool.PoolID, "test"); err != types.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := f.keeper.EmergencyCancel(f.ctx, testAuthority, pool.PoolID, "funds at risk"); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	got := f.keeper.GetPool(f.ctx, pool.PoolID)
	if got.State != types.PoolStateCancelled {
		t.Fatalf("expected cancelled, got %s", got.State)
	}

	// Joins blocked, draws blocked
	if _, err := f.keeper.Join(f.ctx, testMembers[2], pool.PoolID, one); err != types.ErrPoolNotActive {
		t.Fatalf("expected ErrPoolNotActive, got %v", err)
	}
	ctx := f.ctx.WithBlockTime(f.start.Add(8 * 24 * time.Hour))
	f.keeper.EndBlocker(ctx)
	if f.lottery.CurrentRound(ctx, pool.PoolID) != 0 {
		t.Error("cancelled pool must not draw")
	}

	// Principal-only refund, available immediately
	payout, err := f.keeper.WithdrawFunds(f.ctx, testMembers[0], pool.PoolID)
	if err != nil {
		t.Fatalf("refund failed: %v", err)
	}
	if !payout.Equal(one) {
		t.Errorf("expected principal-only refund of 1, got %s", payout)
	}

	// Terminal state is absorbing
	if err := f.keeper.EmergencyCancel(f.ctx, testAuthority, pool.PoolID, "again"); err != types.ErrPoolNotActive {
		t.Fatalf("expected ErrPoolNotActive on double cancel, got %v", err)
	}
}

func TestBadgePolicyMandatory(t *testing.T) {
	f := setupFixture(t, types.BadgePolicyMandatory)
	f.keeper.GrantRole(f.ctx, testAuthority, types.RolePoolCreator, testCreator)
	f.badges.fail = true

	pool, _ := f.keeper.CreatePool(f.ctx, testCreator, defaultConfig())
	if _, err := f.keeper.Join(f.ctx, testMembers[0], pool.PoolID, math.LegacyNewDec(1)); err == nil {
		t.Fatal("mandatory policy must abort the join on a badge failure")
	}
}

func TestBadgePolicyBestEffort(t *testing.T) {
	f := setupFixture(t, types.BadgePolicyBestEffort)
	f.keeper.GrantRole(f.ctx, testAuthority, types.RolePoolCreator, testCreator)
	f.badges.fail = true

	pool, _ := f.keeper.CreatePool(f.ctx, testCreator, defaultConfig())
	if _, err := f.keeper.Join(f.ctx, testMembers[0], pool.PoolID, math.LegacyNewDec(1)); err != nil {
		t.Fatalf("best-effort join must survive a badge failure: %v", err)
	}
	if got := f.keeper.GetPool(f.ctx, pool.PoolID); !got.IsMember(testMembers[0]) {
		t.Error("membership must be committed despite the badge failure")
	}
}

func TestPoolStatistics(t *testing.T) {
	f := setupFixture(t, types.BadgePolicyBestEffort)
	f.keeper.GrantRole(f.ctx, testAuthority, types.RolePoolCreator, testCreator)

	p1, _ := f.keeper.CreatePool(f.ctx, testCreator, defaultConfig())
	f.keeper.CreatePool(f.ctx, testCreator, defaultConfig())
	p3, _ := f.keeper.CreatePool(f.ctx, testCreator, defaultConfig())

	f.keeper.Join(f.ctx, testMembers[0], p1.PoolID, math.LegacyNewDec(1))
	f.keeper.EmergencyCancel(f.ctx, testAuthority, p3.PoolID, "test")

	stats := f.keeper.PoolStatistics(f.ctx)
	if stats.TotalPools != 3 || stats.ActivePools != 2 || stats.CancelledPools != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if !stats.TotalValue.Equal(math.LegacyNewDec(1)) {
		t.Errorf("expected total value 1, got %s", stats.TotalValue)
	}

	records := f.keeper.ListPoolRecords(f.ctx, 0, 10)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].PoolID != 1 || records[2].PoolID != 3 {
		t.Error("records must be ordered by pool ID")
	}
}
