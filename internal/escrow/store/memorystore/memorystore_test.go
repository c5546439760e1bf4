package memorystore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
)

var testNow = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

func newOrder() escrow.Order {
	return escrow.Order{
		Owner:        escrow.Party{WalletHash: "owner", Address: "owner-addr"},
		Counterparty: escrow.Party{WalletHash: "ad-owner", Address: "ad-owner-addr"},
		Arbiter:      escrow.Party{WalletHash: "arbiter", Address: "arbiter-addr"},
		CryptoAmount: 1_00000000,
		FiatCurrency: "PHP",
		TradeType:    escrow.TradeTypeSell,
		TimeDuration: 30,
	}
}

func seed(t *testing.T, sut *MemoryStore, statuses ...escrow.StatusType) *store.OrderRecord {
	t.Helper()

	record, err := sut.CreateOrder(context.Background(), newOrder(), escrow.Contract{Address: "contract-addr", Version: "v1"})
	require.NoError(t, err)

	for _, s := range statuses {
		_, err = sut.AppendStatus(context.Background(), store.StatusUpdate{OrderID: record.Order.ID, Status: s})
		require.NoError(t, err)
	}

	return record
}

func TestMemoryStore_CreateOrder(t *testing.T) {
	// given
	sut := New(WithNow(func() time.Time { return testNow }))
	ctx := context.Background()

	// when
	record := seed(t, sut)

	// then
	require.Equal(t, escrow.StatusSubmitted, record.Status.Status)
	require.Equal(t, record.Order.ID, record.Contract.OrderID)
	require.Equal(t, testNow, record.Order.CreatedAt)

	order, err := sut.GetOrder(ctx, record.Order.ID)
	require.NoError(t, err)
	require.Equal(t, record.Order, *order)

	contract, err := sut.GetContractByAddress(ctx, "contract-addr")
	require.NoError(t, err)
	require.Equal(t, record.Contract, *contract)

	_, err = sut.CreateOrder(ctx, newOrder(), escrow.Contract{Address: "contract-addr", Version: "v1"})
	require.ErrorIs(t, err, store.ErrContractExists)

	_, err = sut.GetOrder(ctx, 999)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = sut.GetAppeal(ctx, record.Order.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryStore_AppendStatus(t *testing.T) {
	tt := []struct {
		name     string
		existing []escrow.StatusType
		update   store.StatusUpdate

		expectedErr     error
		expectedHistory int
	}{
		{
			name:            "valid progression",
			existing:        []escrow.StatusType{escrow.StatusConfirmed},
			update:          store.StatusUpdate{Status: escrow.StatusEscrowPending},
			expectedHistory: 3,
		},
		{
			name:            "no graph edge leaves history unchanged",
			existing:        []escrow.StatusType{escrow.StatusConfirmed},
			update:          store.StatusUpdate{Status: escrow.StatusPaid},
			expectedErr:     escrow.ErrInvalidProgression,
			expectedHistory: 2,
		},
		{
			name:            "unexpected current status",
			existing:        []escrow.StatusType{escrow.StatusConfirmed, escrow.StatusEscrowPending, escrow.StatusEscrowed, escrow.StatusPaid},
			update:          store.StatusUpdate{Status: escrow.StatusReleasePending, Expect: []escrow.StatusType{escrow.StatusAppealed}},
			expectedErr:     escrow.ErrUnexpectedStatus,
			expectedHistory: 5,
		},
		{
			name:            "expected current status",
			existing:        []escrow.StatusType{escrow.StatusConfirmed, escrow.StatusEscrowPending, escrow.StatusEscrowed, escrow.StatusPaid},
			update:          store.StatusUpdate{Status: escrow.StatusReleasePending, Expect: []escrow.StatusType{escrow.StatusPaid, escrow.StatusAppealed}},
			expectedHistory: 6,
		},
		{
			name:            "refund pending after release pending",
			existing:        []escrow.StatusType{escrow.StatusConfirmed, escrow.StatusEscrowPending, escrow.StatusEscrowed, escrow.StatusAppealed, escrow.StatusReleasePending},
			update:          store.StatusUpdate{Status: escrow.StatusRefundPending},
			expectedErr:     escrow.ErrConflictingStatus,
			expectedHistory: 6,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			sut := New()
			record := seed(t, sut, tc.existing...)
			tc.update.OrderID = record.Order.ID

			// when
			_, err := sut.AppendStatus(context.Background(), tc.update)

			// then
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.ErrorIs(t, err, escrow.ErrStateConflict)
			} else {
				require.NoError(t, err)
			}

			history, err := sut.GetStatusHistory(context.Background(), record.Order.ID)
			require.NoError(t, err)
			require.Len(t, history, tc.expectedHistory)
		})
	}
}

func TestMemoryStore_Settlement(t *testing.T) {
	// given
	sut := New()
	ctx := context.Background()
	record := seed(t, sut, escrow.StatusConfirmed, escrow.StatusEscrowPending, escrow.StatusEscrowed, escrow.StatusPaid)
	orderID := record.Order.ID

	pending, err := sut.AppendStatus(ctx, store.StatusUpdate{OrderID: orderID, Status: escrow.StatusReleasePending, Pending: escrow.ActionRelease})
	require.NoError(t, err)
	require.NotNil(t, pending.Transaction)
	require.Nil(t, pending.Transaction.TxID)

	settlement := &store.Settlement{
		Action: escrow.ActionRelease,
		TxID:   "bb",
		Recipients: []escrow.Recipient{
			{Address: "arbiter-addr", Amount: 500},
			{Address: "servicer-addr", Amount: 300},
			{Address: "owner-addr", Amount: 1_00000000},
		},
	}

	// when
	first, err := sut.AppendStatus(ctx, store.StatusUpdate{OrderID: orderID, Status: escrow.StatusReleased, Settlement: settlement, ResolveAppeal: true})
	require.NoError(t, err)
	second, err := sut.AppendStatus(ctx, store.StatusUpdate{OrderID: orderID, Status: escrow.StatusReleased, Settlement: settlement, ResolveAppeal: true})
	require.NoError(t, err)

	// then
	require.False(t, first.Replayed)
	require.True(t, second.Replayed)
	require.Equal(t, first.Status, second.Status)
	require.Equal(t, pending.Transaction.ID, first.Transaction.ID)
	require.Equal(t, "bb", *first.Transaction.TxID)
	require.Nil(t, first.Appeal)

	transactions, err := sut.ListTransactions(ctx, record.Contract.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	recipients, err := sut.GetRecipients(ctx, first.Transaction.ID)
	require.NoError(t, err)
	require.Len(t, recipients, 3)

	history, err := sut.GetStatusHistory(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, history, 7)

	stored, err := sut.GetTransaction(ctx, record.Contract.ID, escrow.ActionRelease, "bb")
	require.NoError(t, err)
	require.Equal(t, first.Transaction.ID, stored.ID)
}

func TestMemoryStore_ConcurrentPendingDecisions(t *testing.T) {
	for i := 0; i < 20; i++ {
		// given
		sut := New()
		record := seed(t, sut, escrow.StatusConfirmed, escrow.StatusEscrowPending, escrow.StatusEscrowed, escrow.StatusAppealed)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for j, s := range []escrow.StatusType{escrow.StatusReleasePending, escrow.StatusRefundPending} {
			wg.Add(1)
			go func(j int, s escrow.StatusType) {
				defer wg.Done()
				_, errs[j] = sut.AppendStatus(context.Background(), store.StatusUpdate{
					OrderID: record.Order.ID,
					Status:  s,
					Expect:  []escrow.StatusType{escrow.StatusAppealed},
				})
			}(j, s)
		}

		// when
		wg.Wait()

		// then
		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			require.ErrorIs(t, err, escrow.ErrStateConflict)
		}
		require.Equal(t, 1, succeeded)
	}
}

func TestMemoryStore_Appeals(t *testing.T) {
	// given
	now := testNow
	sut := New(WithNow(func() time.Time { return now }))
	ctx := context.Background()

	first := seed(t, sut, escrow.StatusConfirmed, escrow.StatusEscrowPending, escrow.StatusEscrowed)
	second, err := sut.CreateOrder(ctx, newOrder(), escrow.Contract{Address: "contract-addr-2", Version: "v1"})
	require.NoError(t, err)
	for _, s := range []escrow.StatusType{escrow.StatusConfirmed, escrow.StatusEscrowPending, escrow.StatusEscrowed} {
		_, err = sut.AppendStatus(ctx, store.StatusUpdate{OrderID: second.Order.ID, Status: s})
		require.NoError(t, err)
	}

	appeal := &escrow.Appeal{Owner: "owner", Type: escrow.AppealRelease, Reasons: []string{"seller unresponsive"}}

	// when
	res, err := sut.AppendStatus(ctx, store.StatusUpdate{OrderID: first.Order.ID, Status: escrow.StatusAppealed, Appeal: appeal})
	require.NoError(t, err)
	now = now.Add(time.Minute)
	_, err = sut.AppendStatus(ctx, store.StatusUpdate{OrderID: second.Order.ID, Status: escrow.StatusAppealed, Appeal: appeal})
	require.NoError(t, err)

	// then
	require.Equal(t, []string{"seller unresponsive"}, res.Appeal.Reasons)

	appeals, count, err := sut.ListAppeals(ctx, store.AppealFilter{Arbiter: "arbiter", State: store.AppealStatePending, Limit: 1})
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
	require.Len(t, appeals, 1)
	require.Equal(t, second.Order.ID, appeals[0].OrderID)

	_, err = sut.AppendStatus(ctx, store.StatusUpdate{OrderID: first.Order.ID, Status: escrow.StatusRefundPending, Pending: escrow.ActionRefund})
	require.NoError(t, err)
	resolved, err := sut.AppendStatus(ctx, store.StatusUpdate{
		OrderID:       first.Order.ID,
		Status:        escrow.StatusRefunded,
		Settlement:    &store.Settlement{Action: escrow.ActionRefund, TxID: "cc"},
		ResolveAppeal: true,
	})
	require.NoError(t, err)
	require.NotNil(t, resolved.Appeal.ResolvedAt)

	appeals, count, err = sut.ListAppeals(ctx, store.AppealFilter{State: store.AppealStateResolved})
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	require.Equal(t, first.Order.ID, appeals[0].OrderID)

	appeals, count, err = sut.ListAppeals(ctx, store.AppealFilter{Arbiter: "someone-else"})
	require.NoError(t, err)
	require.Zero(t, count)
	require.Empty(t, appeals)
}

func TestMemoryStore_ListExpiredOrders(t *testing.T) {
	// given
	sut := New(WithNow(func() time.Time { return testNow }))
	ctx := context.Background()

	expired := seed(t, sut, escrow.StatusConfirmed, escrow.StatusEscrowPending)
	expiresAt := testNow.Add(30 * time.Minute)
	_, err := sut.AppendStatus(ctx, store.StatusUpdate{OrderID: expired.Order.ID, Status: escrow.StatusEscrowed, ExpiresAt: &expiresAt})
	require.NoError(t, err)

	notEscrowed, err := sut.CreateOrder(ctx, newOrder(), escrow.Contract{Address: "contract-addr-2", Version: "v1"})
	require.NoError(t, err)

	// when
	before, err := sut.ListExpiredOrders(ctx, expiresAt.Add(-time.Second), escrow.AppealableStatuses, nil, 10)
	require.NoError(t, err)
	after, err := sut.ListExpiredOrders(ctx, expiresAt, escrow.AppealableStatuses, nil, 10)
	require.NoError(t, err)
	pastLast, err := sut.ListExpiredOrders(ctx, expiresAt, escrow.AppealableStatuses,
		&store.ExpiryCursor{ExpiresAt: expiresAt, ID: expired.Order.ID}, 10)
	require.NoError(t, err)
	beforeLast, err := sut.ListExpiredOrders(ctx, expiresAt, escrow.AppealableStatuses,
		&store.ExpiryCursor{ExpiresAt: expiresAt, ID: expired.Order.ID - 1}, 10)
	require.NoError(t, err)

	// then
	require.Empty(t, before)
	require.Len(t, after, 1)
	require.Equal(t, expired.Order.ID, after[0].ID)
	require.NotEqual(t, notEscrowed.Order.ID, after[0].ID)
	require.Empty(t, pastLast)
	require.Len(t, beforeLast, 1)
}

func TestMemoryStore_MarkStatusesRead(t *testing.T) {
	sut := New(WithNow(func() time.Time { return testNow }))
	ctx := context.Background()
	record := seed(t, sut, escrow.StatusConfirmed)

	updated, err := sut.MarkStatusesRead(ctx, record.Order.ID, escrow.RoleSeller)
	require.NoError(t, err)
	require.Equal(t, int64(2), updated)

	updated, err = sut.MarkStatusesRead(ctx, record.Order.ID, escrow.RoleSeller)
	require.NoError(t, err)
	require.Zero(t, updated)

	history, err := sut.GetStatusHistory(ctx, record.Order.ID)
	require.NoError(t, err)
	require.Equal(t, testNow, *history[0].SellerReadAt)
	require.Nil(t, history[0].BuyerReadAt)

	_, err = sut.MarkStatusesRead(ctx, record.Order.ID, escrow.RoleArbiter)
	require.ErrorIs(t, err, escrow.ErrPermissionDenied)
}
