package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/openarisan/arisan-chain/x/badge/types"
)

const (
	testAdmin   = "cosmos1admin..."
	testPoolMod = "cosmos1poolmodule..."
	testUser    = "cosmos1user..."
	testUser2   = "cosmos1user2..."
)

// setupKeeper creates a test keeper with an in-memory store
func setupKeeper(tb testing.TB) (*Keeper, sdk.Context) {
	tb.Helper()

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		tb.Fatalf("failed to load store: %v", err)
	}

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Unix(1700000000, 0)}, false, log.NewNopLogger())

	interfaceRegistry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(interfaceRegistry)

	trust := types.TrustConfig{
		Admin:          testAdmin,
		TrustedMinters: []string{testPoolMod},
	}
	k := NewKeeper(cdc, storeKey, trust, log.NewNopLogger())

	return k, ctx
}

func TestMintSequentialTokenIDs(t *testing.T) {
	k, ctx := setupKeeper(t)

	for i := uint64(1); i <= 3; i++ {
		badge, err := k.Mint(ctx, testPoolMod, testUser, types.BadgeTypeJoin, 7)
		if err != nil {
			t.Fatalf("mint %d failed: %v", i, err)
		}
		if badge.TokenID != i {
			t.Errorf("expected token ID %d, got %d", i, badge.TokenID)
		}
	}

	if total := k.TotalMinted(ctx); total != 3 {
		t.Errorf("expected 3 badges minted, got %d", total)
	}
}

func TestMintUnauthorized(t *testing.T) {
	k, ctx := setupKeeper(t)

	_, err := k.Mint(ctx, testUser, testUser2, types.BadgeTypeJoin, 1)
	if err != types.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	// Failed mint must leave no state behind
	if total := k.TotalMinted(ctx); total != 0 {
		t.Errorf("expected 0 badges after failed mint, got %d", total)
	}
}

func TestMintInvalidBadgeType(t *testing.T) {
	k, ctx := setupKeeper(t)

	_, err := k.Mint(ctx, testPoolMod, testUser, "participation_trophy", 1)
	if err != types.ErrInvalidBadgeType {
		t.Fatalf("expected ErrInvalidBadgeType, got %v", err)
	}
}

func TestMintAfterRoleGrant(t *testing.T) {
	k, ctx := setupKeeper(t)

	// Not yet granted
	if _, err := k.Mint(ctx, testUser, testUser2, types.BadgeTypeLotteryWinner, 1); err != types.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized before grant, got %v", err)
	}

	if _, err := k.GrantRole(ctx, testAdmin, types.RoleMinter, testUser); err != nil {
		t.Fatalf("grant failed: %v", err)
	}

	badge, err := k.Mint(ctx, testUser, testUser2, types.BadgeTypeLotteryWinner, 1)
	if err != nil {
		t.Fatalf("mint after grant failed: %v", err)
	}
	if badge.Recipient != testUser2 {
		t.Errorf("expected recipient %s, got %s", testUser2, badge.Recipient)
	}

	// Revoke closes the door again
	if err := k.RevokeRole(ctx, testAdmin, types.RoleMinter, testUser); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if _, err := k.Mint(ctx, testUser, testUser2, types.BadgeTypeLotteryWinner, 1); err != types.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized after revoke, got %v", err)
	}
}

func TestGrantRoleRequiresAdmin(t *testing.T) {
	k, ctx := setupKeeper(t)

	if _, err := k.GrantRole(ctx, testUser, types.RoleMinter, testUser2); err != types.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if k.HasRole(ctx, types.RoleMinter, testUser2) {
		t.Error("role must not be granted by a non-admin")
	}
}

func TestRevokeUngrantedRole(t *testing.T) {
	k, ctx := setupKeeper(t)

	if err := k.RevokeRole(ctx, testAdmin, types.RoleMinter, testUser); err != types.ErrRoleNotGranted {
		t.Fatalf("expected ErrRoleNotGranted, got %v", err)
	}
}

func TestTransferDisabled(t *testing.T) {
	k, ctx := setupKeeper(t)

	badge, err := k.Mint(ctx, testPoolMod, testUser, types.BadgeTypeJoin, 1)
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	if err := k.Transfer(ctx, testUser, testUser2, badge.TokenID); err != types.ErrTransferDisabled {
		t.Fatalf("expected ErrTransferDisabled, got %v", err)
	}

	// Ownership unchanged
	got := k.GetBadge(ctx, badge.TokenID)
	if got == nil || got.Recipient != testUser {
		t.Error("badge ownership must be fixed at mint time")
	}
}

func TestBadgesByHolder(t *testing.T) {
	k, ctx := setupKeeper(t)

	k.Mint(ctx, testPoolMod, testUser, types.BadgeTypeJoin, 1)
	k.Mint(ctx, testPoolMod, testUser2, types.BadgeTypeJoin, 1)
	k.Mint(ctx, testPoolMod, testUser, types.BadgeTypePoolCompletion, 1)

	badges := k.GetBadgesByHolder(ctx, testUser)
	if len(badges) != 2 {
		t.Fatalf("expected 2 badges for holder, got %d", len(badges))
	}
	// Mint order preserved
	if badges[0].BadgeType != types.BadgeTypeJoin || badges[1].BadgeType != types.BadgeTypePoolCompletion {
		t.Error("badges not returned in mint order")
	}
}

func TestBadgesByPool(t *testing.T) {
	k, ctx := setupKeeper(t)

	k.Mint(ctx, testPoolMod, testUser, types.BadgeTypeJoin, 1)
	k.Mint(ctx, testPoolMod, testUser2, types.BadgeTypeJoin, 2)
	k.Mint(ctx, testPoolMod, testUser2, types.BadgeTypeLotteryWinner, 1)

	badges := k.GetBadgesByPool(ctx, 1)
	if len(badges) != 2 {
		t.Fatalf("expected 2 badges for pool 1, got %d", len(badges))
	}
}

func TestTopHolders(t *testing.T) {
	k, ctx := setupKeeper(t)

	for i := 0; i < 3; i++ {
		k.Mint(ctx, testPoolMod, testUser, types.BadgeTypeJoin, uint64(i+1))
	}
	k.Mint(ctx, testPoolMod, testUser2, types.BadgeTypeJoin, 1)

	top := k.TopHolders(ctx, 10)
	if len(top) != 2 {
		t.Fatalf("expected 2 holders, got %d", len(top))
	}
	if top[0].Holder != testUser || top[0].BadgeCount != 3 {
		t.Errorf("expected %s with 3 badges first, got %s with %d", testUser, top[0].Holder, top[0].BadgeCount)
	}
	if top[1].Holder != testUser2 || top[1].BadgeCount != 1 {
		t.Errorf("expected %s with 1 badge second, got %s with %d", testUser2, top[1].Holder, top[1].BadgeCount)
	}
}
