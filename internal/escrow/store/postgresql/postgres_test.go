package postgresql

import (
	"context"
	"flag"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	testutils "github.com/rampp2p/escrow/internal/test_utils"
)

const (
	migrationsPath = "file://migrations"
	baseFixtures   = "fixtures/base"
)

var dbInfo string

type dbStatus struct {
	ID      int64  `db:"id"`
	OrderID int64  `db:"order_id"`
	Status  string `db:"status"`
}

type dbTransaction struct {
	ID         int64   `db:"id"`
	ContractID int64   `db:"contract_id"`
	Action     string  `db:"action"`
	TxID       *string `db:"txid"`
}

func TestMain(m *testing.M) {
	flag.Parse()

	if testing.Short() {
		return
	}

	os.Exit(testmain(m))
}

func testmain(m *testing.M) int {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Printf("failed to create pool: %v", err)
		return 1
	}

	port := "5437"
	resource, connStr, err := testutils.RunAndMigratePostgresql(pool, port, "escrow", migrationsPath)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer func() {
		err = pool.Purge(resource)
		if err != nil {
			log.Fatalf("failed to purge pool: %v", err)
		}
	}()

	dbInfo = connStr
	return m.Run()
}

func pruneTables(t *testing.T, db *sqlx.DB) {
	t.Helper()

	testutils.PruneTables(t, db.DB,
		"escrow.recipients",
		"escrow.transactions",
		"escrow.appeals",
		"escrow.statuses",
		"escrow.contracts",
		"escrow.orders",
	)
}

func readStatuses(t *testing.T, db *sqlx.DB, orderID int64) []dbStatus {
	t.Helper()

	var statuses []dbStatus
	err := db.Select(&statuses, `SELECT id, order_id, status FROM escrow.statuses WHERE order_id = $1 ORDER BY created_at, id`, orderID)
	require.NoError(t, err)
	return statuses
}

func readTransactions(t *testing.T, db *sqlx.DB, contractID int64) []dbTransaction {
	t.Helper()

	var transactions []dbTransaction
	err := db.Select(&transactions, `SELECT id, contract_id, action, txid FROM escrow.transactions WHERE contract_id = $1 ORDER BY id`, contractID)
	require.NoError(t, err)
	return transactions
}

func TestPostgresDB(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	postgresDB, err := New(dbInfo, 10, 10, WithNow(func() time.Time { return now }))
	require.NoError(t, err)
	defer postgresDB.Close()

	db := sqlx.NewDb(postgresDB.db, postgresDriverName)
	ctx := context.Background()

	t.Run("create order", func(t *testing.T) {
		// given
		defer pruneTables(t, db)

		order := escrow.Order{
			Owner:        escrow.Party{WalletHash: "owner", PublicKey: "02owner", Address: "owner-addr"},
			Counterparty: escrow.Party{WalletHash: "ad-owner", PublicKey: "02adowner", Address: "ad-owner-addr"},
			Arbiter:      escrow.Party{WalletHash: "arbiter", PublicKey: "02arbiter", Address: "arbiter-addr"},
			CryptoAmount: 1_00000000,
			FiatCurrency: "PHP",
			TradeType:    escrow.TradeTypeSell,
			TimeDuration: 30,
		}

		// when
		record, err := postgresDB.CreateOrder(ctx, order, escrow.Contract{Address: "contract-new", Version: "v1"})

		// then
		require.NoError(t, err)
		require.Equal(t, escrow.StatusSubmitted, record.Status.Status)
		require.Equal(t, now, record.Order.CreatedAt)

		stored, err := postgresDB.GetOrder(ctx, record.Order.ID)
		require.NoError(t, err)
		require.Equal(t, record.Order, *stored)

		contract, err := postgresDB.GetContractByAddress(ctx, "contract-new")
		require.NoError(t, err)
		require.Equal(t, record.Order.ID, contract.OrderID)

		require.Len(t, readStatuses(t, db, record.Order.ID), 1)

		_, err = postgresDB.CreateOrder(ctx, order, escrow.Contract{Address: "contract-new", Version: "v1"})
		require.ErrorIs(t, err, store.ErrContractExists)
	})

	t.Run("get missing rows", func(t *testing.T) {
		// given
		defer pruneTables(t, db)
		testutils.LoadFixtures(t, db.DB, baseFixtures)

		// when
		_, orderErr := postgresDB.GetOrder(ctx, 404)
		_, contractErr := postgresDB.GetContract(ctx, 404)
		_, appealErr := postgresDB.GetAppeal(ctx, 1)
		_, txErr := postgresDB.GetTransaction(ctx, 1, escrow.ActionRelease, "ff")

		// then
		require.ErrorIs(t, orderErr, store.ErrNotFound)
		require.ErrorIs(t, contractErr, store.ErrNotFound)
		require.ErrorIs(t, appealErr, store.ErrNotFound)
		require.ErrorIs(t, txErr, store.ErrNotFound)
	})

	t.Run("get order details", func(t *testing.T) {
		// given
		defer pruneTables(t, db)
		testutils.LoadFixtures(t, db.DB, baseFixtures)

		// when
		order, err := postgresDB.GetOrder(ctx, 1)
		require.NoError(t, err)
		history, err := postgresDB.GetStatusHistory(ctx, 1)
		require.NoError(t, err)
		appeal, err := postgresDB.GetAppeal(ctx, 2)
		require.NoError(t, err)
		transactions, err := postgresDB.ListTransactions(ctx, 1)
		require.NoError(t, err)
		recipients, err := postgresDB.GetRecipients(ctx, 1)
		require.NoError(t, err)

		// then
		require.Equal(t, uint64(1_00000000), order.CryptoAmount)
		require.Equal(t, escrow.TradeTypeSell, order.TradeType)
		require.Equal(t, time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC), *order.ExpiresAt)

		require.Len(t, history, 4)
		require.Equal(t, escrow.StatusEscrowed, escrow.Latest(history).Status)
		require.NotNil(t, history[0].SellerReadAt)
		require.Nil(t, history[0].BuyerReadAt)

		require.Equal(t, escrow.AppealRefund, appeal.Type)
		require.Equal(t, []string{"buyer did not pay", "no response"}, appeal.Reasons)
		require.Nil(t, appeal.ResolvedAt)

		require.Len(t, transactions, 1)
		require.Equal(t, escrow.ActionEscrow, transactions[0].Action)
		require.Equal(t, []escrow.Recipient{{
			ID:            1,
			TransactionID: 1,
			Address:       "contract-1",
			Amount:        100000800,
			CreatedAt:     time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
		}}, recipients)
	})

	t.Run("append status", func(t *testing.T) {
		tt := []struct {
			name   string
			update store.StatusUpdate

			expectedErr      error
			expectedStatuses int
		}{
			{
				name:             "paid after escrowed",
				update:           store.StatusUpdate{OrderID: 1, Status: escrow.StatusPaid},
				expectedStatuses: 5,
			},
			{
				name:             "escrowed twice",
				update:           store.StatusUpdate{OrderID: 1, Status: escrow.StatusEscrowed},
				expectedErr:      escrow.ErrDuplicateStatus,
				expectedStatuses: 4,
			},
			{
				name:             "paid straight from submitted",
				update:           store.StatusUpdate{OrderID: 3, Status: escrow.StatusPaid},
				expectedErr:      escrow.ErrInvalidProgression,
				expectedStatuses: 1,
			},
			{
				name:             "canceled after escrowed",
				update:           store.StatusUpdate{OrderID: 1, Status: escrow.StatusCanceled},
				expectedErr:      escrow.ErrConflictingStatus,
				expectedStatuses: 4,
			},
			{
				name:             "unexpected current status",
				update:           store.StatusUpdate{OrderID: 2, Status: escrow.StatusReleasePending, Expect: []escrow.StatusType{escrow.StatusPaid}},
				expectedErr:      escrow.ErrUnexpectedStatus,
				expectedStatuses: 5,
			},
			{
				name:        "missing order",
				update:      store.StatusUpdate{OrderID: 404, Status: escrow.StatusConfirmed},
				expectedErr: store.ErrNotFound,
			},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				// given
				defer pruneTables(t, db)
				testutils.LoadFixtures(t, db.DB, baseFixtures)

				// when
				res, err := postgresDB.AppendStatus(ctx, tc.update)

				// then
				require.Len(t, readStatuses(t, db, tc.update.OrderID), tc.expectedStatuses)
				if tc.expectedErr != nil {
					require.ErrorIs(t, err, tc.expectedErr)
					return
				}

				require.NoError(t, err)
				require.Equal(t, tc.update.Status, res.Status.Status)
				require.Equal(t, now, res.Status.CreatedAt)
			})
		}
	})

	t.Run("append escrowed sets expiry", func(t *testing.T) {
		// given
		defer pruneTables(t, db)
		testutils.LoadFixtures(t, db.DB, baseFixtures)

		_, err := postgresDB.AppendStatus(ctx, store.StatusUpdate{OrderID: 3, Status: escrow.StatusConfirmed})
		require.NoError(t, err)
		_, err = postgresDB.AppendStatus(ctx, store.StatusUpdate{OrderID: 3, Status: escrow.StatusEscrowPending, Pending: escrow.ActionEscrow})
		require.NoError(t, err)

		expiresAt := now.Add(time.Hour)

		// when
		res, err := postgresDB.AppendStatus(ctx, store.StatusUpdate{
			OrderID:   3,
			Status:    escrow.StatusEscrowed,
			ExpiresAt: &expiresAt,
			Settlement: &store.Settlement{
				Action:     escrow.ActionEscrow,
				TxID:       "dd",
				Recipients: []escrow.Recipient{{Address: "contract-3", Amount: 3300}},
			},
		})

		// then
		require.NoError(t, err)
		require.False(t, res.Replayed)

		order, err := postgresDB.GetOrder(ctx, 3)
		require.NoError(t, err)
		require.Equal(t, expiresAt, *order.ExpiresAt)

		transactions := readTransactions(t, db, 3)
		require.Len(t, transactions, 1)
		require.Equal(t, "dd", *transactions[0].TxID)
		require.Equal(t, res.Transaction.ID, transactions[0].ID)
	})

	t.Run("settlement is idempotent", func(t *testing.T) {
		// given
		defer pruneTables(t, db)
		testutils.LoadFixtures(t, db.DB, baseFixtures)

		pending, err := postgresDB.AppendStatus(ctx, store.StatusUpdate{OrderID: 2, Status: escrow.StatusRefundPending, Pending: escrow.ActionRefund})
		require.NoError(t, err)
		require.Nil(t, pending.Transaction.TxID)

		update := store.StatusUpdate{
			OrderID:       2,
			Status:        escrow.StatusRefunded,
			ResolveAppeal: true,
			Settlement: &store.Settlement{
				Action: escrow.ActionRefund,
				TxID:   "ee",
				Recipients: []escrow.Recipient{
					{Address: "arbiter-1-addr", Amount: 500},
					{Address: "servicer-addr", Amount: 300},
					{Address: "owner-2-addr", Amount: 50000000},
				},
			},
		}

		// when
		first, err := postgresDB.AppendStatus(ctx, update)
		require.NoError(t, err)
		second, err := postgresDB.AppendStatus(ctx, update)
		require.NoError(t, err)

		// then
		require.False(t, first.Replayed)
		require.True(t, second.Replayed)
		require.Equal(t, first.Status.ID, second.Status.ID)
		require.Equal(t, pending.Transaction.ID, first.Transaction.ID)
		require.NotNil(t, first.Appeal)
		require.Equal(t, now, *first.Appeal.ResolvedAt)

		require.Len(t, readTransactions(t, db, 2), 2)
		recipients, err := postgresDB.GetRecipients(ctx, first.Transaction.ID)
		require.NoError(t, err)
		require.Len(t, recipients, 3)

		statuses := readStatuses(t, db, 2)
		require.Len(t, statuses, 7)
		require.Equal(t, "RFN", statuses[6].Status)
	})

	t.Run("insert appeal", func(t *testing.T) {
		// given
		defer pruneTables(t, db)
		testutils.LoadFixtures(t, db.DB, baseFixtures)

		// when
		res, err := postgresDB.AppendStatus(ctx, store.StatusUpdate{
			OrderID: 1,
			Status:  escrow.StatusAppealed,
			Appeal:  &escrow.Appeal{Owner: "owner-1", Type: escrow.AppealRelease, Reasons: []string{"seller, unresponsive"}},
		})

		// then
		require.NoError(t, err)
		require.Equal(t, []string{"seller, unresponsive"}, res.Appeal.Reasons)

		appeal, err := postgresDB.GetAppeal(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, res.Appeal, appeal)
	})

	t.Run("concurrent pending decisions", func(t *testing.T) {
		// given
		defer pruneTables(t, db)
		testutils.LoadFixtures(t, db.DB, baseFixtures)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, decision := range []struct {
			status escrow.StatusType
			action escrow.ActionType
		}{
			{escrow.StatusReleasePending, escrow.ActionRelease},
			{escrow.StatusRefundPending, escrow.ActionRefund},
		} {
			wg.Add(1)
			go func(i int, status escrow.StatusType, action escrow.ActionType) {
				defer wg.Done()
				_, errs[i] = postgresDB.AppendStatus(ctx, store.StatusUpdate{
					OrderID: 2,
					Status:  status,
					Expect:  []escrow.StatusType{escrow.StatusAppealed},
					Pending: action,
				})
			}(i, decision.status, decision.action)
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
		require.Len(t, readStatuses(t, db, 2), 6)
		require.Len(t, readTransactions(t, db, 2), 2)
	})

	t.Run("list appeals", func(t *testing.T) {
		// given
		defer pruneTables(t, db)
		testutils.LoadFixtures(t, db.DB, baseFixtures)

		// when
		pending, pendingCount, err := postgresDB.ListAppeals(ctx, store.AppealFilter{Arbiter: "arbiter-1", State: store.AppealStatePending})
		require.NoError(t, err)
		resolved, resolvedCount, err := postgresDB.ListAppeals(ctx, store.AppealFilter{Arbiter: "arbiter-1", State: store.AppealStateResolved})
		require.NoError(t, err)
		other, otherCount, err := postgresDB.ListAppeals(ctx, store.AppealFilter{Arbiter: "arbiter-2", Limit: 10})
		require.NoError(t, err)

		// then
		require.Equal(t, int64(1), pendingCount)
		require.Len(t, pending, 1)
		require.Equal(t, int64(2), pending[0].OrderID)
		require.Zero(t, resolvedCount)
		require.Empty(t, resolved)
		require.Zero(t, otherCount)
		require.Empty(t, other)
	})

	t.Run("list expired orders", func(t *testing.T) {
		// given
		defer pruneTables(t, db)
		testutils.LoadFixtures(t, db.DB, baseFixtures)

		// when
		eleven := time.Date(2025, 5, 1, 11, 0, 0, 0, time.UTC)
		atTen, err := postgresDB.ListExpiredOrders(ctx, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC), escrow.AppealableStatuses, nil, 10)
		require.NoError(t, err)
		atEleven, err := postgresDB.ListExpiredOrders(ctx, eleven, escrow.AppealableStatuses, nil, 10)
		require.NoError(t, err)

		// then
		// order 2 expired too but is already appealed
		require.Empty(t, atTen)
		require.Len(t, atEleven, 1)
		require.Equal(t, int64(1), atEleven[0].ID)
		require.NotNil(t, atEleven[0].ExpiresAt)

		nextPage, err := postgresDB.ListExpiredOrders(ctx, eleven, escrow.AppealableStatuses,
			&store.ExpiryCursor{ExpiresAt: *atEleven[0].ExpiresAt, ID: atEleven[0].ID}, 10)
		require.NoError(t, err)
		require.Empty(t, nextPage)
	})

	t.Run("mark statuses read", func(t *testing.T) {
		// given
		defer pruneTables(t, db)
		testutils.LoadFixtures(t, db.DB, baseFixtures)

		// when
		sellerRows, err := postgresDB.MarkStatusesRead(ctx, 1, escrow.RoleSeller)
		require.NoError(t, err)
		buyerRows, err := postgresDB.MarkStatusesRead(ctx, 1, escrow.RoleBuyer)
		require.NoError(t, err)
		_, arbiterErr := postgresDB.MarkStatusesRead(ctx, 1, escrow.RoleArbiter)

		// then
		require.Equal(t, int64(3), sellerRows)
		require.Equal(t, int64(4), buyerRows)
		require.ErrorIs(t, arbiterErr, escrow.ErrPermissionDenied)
	})
}
