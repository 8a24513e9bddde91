package keeper

import (
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

	"github.com/openarisan/arisan-chain/x/lottery/types"
)

const (
	testAuthority = "cosmos1authority..."
	testPoolMod   = "cosmos1poolmodule..."
)

var testParticipants = []string{
	"cosmos1alice...",
	"cosmos1bob...",
	"cosmos1carol...",
	"cosmos1dave...",
	"cosmos1erin...",
}

// recordingBadgeMinter records mint calls and optionally fails
type recordingBadgeMinter struct {
	minted []string
	fail   bool
}

func (m *recordingBadgeMinter) MintBadge(ctx sdk.Context, recipient, badgeType string, poolID uint64) error {
	if m.fail {
		return errors.New("registry offline")
	}
	m.minted = append(m.minted, recipient)
	return nil
}

// recordingPrizePayer records payouts
type recordingPrizePayer struct {
	paid map[string]math.LegacyDec
}

func (p *recordingPrizePayer) PayPrize(ctx sdk.Context, winner string, amount math.LegacyDec) error {
	if p.paid == nil {
		p.paid = make(map[string]math.LegacyDec)
	}
	p.paid[winner] = amount
	return nil
}

func setupKeeper(tb testing.TB, badgePolicy string, minter types.BadgeMinter, payer types.PrizePayer) (*Keeper, sdk.Context) {
	tb.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		tb.Fatalf("failed to load store: %v", err)
	}

	header := cmtproto.Header{Time: time.Unix(1700000000, 0)}
	ctx := sdk.NewContext(stateStore, header, false, log.NewNopLogger()).
		WithHeaderHash([]byte("test-block-hash-0000000000000000"))

	interfaceRegistry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(interfaceRegistry)

	trust := types.TrustConfig{
		Authority:      testAuthority,
		TrustedCallers: []string{testPoolMod},
	}
	k := NewKeeper(cdc, storeKey, trust, badgePolicy, minter, payer, log.NewNopLogger())

	return k, ctx
}

func TestDrawWinnerFromParticipants(t *testing.T) {
	minter := &recordingBadgeMinter{}
	payer := &recordingPrizePayer{}
	k, ctx := setupKeeper(t, types.BadgePolicyBestEffort, minter, payer)

	prize := math.LegacyMustNewDecFromStr("0.5")
	round, err := k.DrawLottery(ctx, testPoolMod, 1, testParticipants, prize)
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}

	found := false
	for _, p := range testParticipants {
		if round.Winner == p {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("winner %s not in participant set", round.Winner)
	}
	if round.Round != 1 {
		t.Errorf("expected round 1, got %d", round.Round)
	}
	if len(round.Participants) != len(testParticipants) {
		t.Error("round must snapshot the participant set")
	}

	// Prize paid and badge minted to the same winner
	if amount, ok := payer.paid[round.Winner]; !ok || !amount.Equal(prize) {
		t.Errorf("prize not paid to winner: %v", payer.paid)
	}
	if len(minter.minted) != 1 || minter.minted[0] != round.Winner {
		t.Errorf("winner badge not minted: %v", minter.minted)
	}
}

func TestDrawDeterministic(t *testing.T) {
	k1, ctx1 := setupKeeper(t, types.BadgePolicyBestEffort, nil, nil)
	k2, ctx2 := setupKeeper(t, types.BadgePolicyBestEffort, nil, nil)

	prize := math.LegacyOneDec()
	r1, err := k1.DrawLottery(ctx1, testPoolMod, 1, testParticipants, prize)
	if err != nil {
		t.Fatalf("draw 1 failed: %v", err)
	}
	r2, err := k2.DrawLottery(ctx2, testPoolMod, 1, testParticipants, prize)
	if err != nil {
		t.Fatalf("draw 2 failed: %v", err)
	}

	// Same header entropy, same pool, same round: same winner
	if r1.Winner != r2.Winner {
		t.Errorf("draw must be deterministic: %s vs %s", r1.Winner, r2.Winner)
	}
}

func TestDrawRoundCounterAdvances(t *testing.T) {
	k, ctx := setupKeeper(t, types.BadgePolicyBestEffort, nil, nil)

	if cur := k.CurrentRound(ctx, 1); cur != 0 {
		t.Fatalf("expected round 0 before any draw, got %d", cur)
	}

	k.DrawLottery(ctx, testPoolMod, 1, testParticipants, math.LegacyOneDec())
	if cur := k.CurrentRound(ctx, 1); cur != 1 {
		t.Errorf("expected round 1 after first draw, got %d", cur)
	}

	ctx = ctx.WithBlockTime(ctx.BlockTime().Add(7 * 24 * time.Hour))
	k.DrawLottery(ctx, testPoolMod, 1, testParticipants, math.LegacyOneDec())
	if cur := k.CurrentRound(ctx, 1); cur != 2 {
		t.Errorf("expected round 2 after second draw, got %d", cur)
	}

	// Per-pool counters are independent
	if cur := k.CurrentRound(ctx, 2); cur != 0 {
		t.Errorf("pool 2 counter must be untouched, got %d", cur)
	}
}

func TestDrawRejectsBeforeIntervalElapses(t *testing.T) {
	k, ctx := setupKeeper(t, types.BadgePolicyBestEffort, nil, nil)

	if _, err := k.DrawLottery(ctx, testPoolMod, 1, testParticipants, math.LegacyOneDec()); err != nil {
		t.Fatalf("first draw failed: %v", err)
	}

	// Same block: rejected
	if _, err := k.DrawLottery(ctx, testPoolMod, 1, testParticipants, math.LegacyOneDec()); err != types.ErrAlreadyDrawnThisRound {
		t.Fatalf("expected ErrAlreadyDrawnThisRound, got %v", err)
	}
	if cur := k.CurrentRound(ctx, 1); cur != 1 {
		t.Errorf("rejected draw must not advance the counter, got %d", cur)
	}

	// One second short of the interval: still rejected
	interval := k.GetConfig(ctx).RoundIntervalSeconds
	early := ctx.WithBlockTime(ctx.BlockTime().Add(time.Duration(interval-1) * time.Second))
	if _, err := k.DrawLottery(early, testPoolMod, 1, testParticipants, math.LegacyOneDec()); err != types.ErrAlreadyDrawnThisRound {
		t.Fatalf("expected ErrAlreadyDrawnThisRound before the interval, got %v", err)
	}

	// At the interval boundary: allowed
	due := ctx.WithBlockTime(ctx.BlockTime().Add(time.Duration(interval) * time.Second))
	if _, err := k.DrawLottery(due, testPoolMod, 1, testParticipants, math.LegacyOneDec()); err != nil {
		t.Fatalf("draw after the interval failed: %v", err)
	}
	if cur := k.CurrentRound(due, 1); cur != 2 {
		t.Errorf("expected round 2 after the interval, got %d", cur)
	}

	// Other pools are not gated by this pool's draws
	if _, err := k.DrawLottery(ctx, testPoolMod, 2, testParticipants, math.LegacyOneDec()); err != nil {
		t.Fatalf("draw on another pool failed: %v", err)
	}
}

func TestDrawEmptyParticipants(t *testing.T) {
	k, ctx := setupKeeper(t, types.BadgePolicyBestEffort, nil, nil)

	if _, err := k.DrawLottery(ctx, testPoolMod, 1, nil, math.LegacyOneDec()); err != types.ErrEmptyParticipantSet {
		t.Fatalf("expected ErrEmptyParticipantSet, got %v", err)
	}
	if cur := k.CurrentRound(ctx, 1); cur != 0 {
		t.Error("failed draw must not advance the round counter")
	}
}

func TestDrawUnauthorizedCaller(t *testing.T) {
	k, ctx := setupKeeper(t, types.BadgePolicyBestEffort, nil, nil)

	if _, err := k.DrawLottery(ctx, "cosmos1intruder...", 1, testParticipants, math.LegacyOneDec()); err != types.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestDrawBadgePolicyBestEffort(t *testing.T) {
	minter := &recordingBadgeMinter{fail: true}
	k, ctx := setupKeeper(t, types.BadgePolicyBestEffort, minter, nil)

	round, err := k.DrawLottery(ctx, testPoolMod, 1, testParticipants, math.LegacyOneDec())
	if err != nil {
		t.Fatalf("best-effort draw must survive a badge failure: %v", err)
	}
	if round == nil || k.GetRound(ctx, 1, 1) == nil {
		t.Error("round must be committed despite the badge failure")
	}
}

func TestDrawBadgePolicyMandatory(t *testing.T) {
	minter := &recordingBadgeMinter{fail: true}
	k, ctx := setupKeeper(t, types.BadgePolicyMandatory, minter, nil)

	if _, err := k.DrawLottery(ctx, testPoolMod, 1, testParticipants, math.LegacyOneDec()); err == nil {
		t.Fatal("mandatory policy must abort the draw on a badge failure")
	}
}

func TestConfigUpdateAuthority(t *testing.T) {
	k, ctx := setupKeeper(t, types.BadgePolicyBestEffort, nil, nil)

	cfg := k.GetConfig(ctx)
	if !cfg.PrizePoolPercentage.Equal(math.LegacyMustNewDecFromStr("0.10")) {
		t.Errorf("unexpected default prize percentage: %s", cfg.PrizePoolPercentage)
	}

	updated := types.Config{
		PrizePoolPercentage:  math.LegacyMustNewDecFromStr("0.25"),
		RoundIntervalSeconds: 24 * 60 * 60,
	}
	if err := k.SetConfig(ctx, "cosmos1intruder...", updated); err != types.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := k.SetConfig(ctx, testAuthority, updated); err != nil {
		t.Fatalf("config update failed: %v", err)
	}
	if got := k.GetConfig(ctx); !got.PrizePoolPercentage.Equal(updated.PrizePoolPercentage) {
		t.Errorf("config not persisted: %s", got.PrizePoolPercentage)
	}

	// Invalid percentage rejected
	bad := types.Config{PrizePoolPercentage: math.LegacyNewDec(2), RoundIntervalSeconds: 60}
	if err := k.SetConfig(ctx, testAuthority, bad); err != types.ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
