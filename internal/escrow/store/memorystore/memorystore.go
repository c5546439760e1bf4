package memorystore

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
)

// MemoryStore keeps all records in process. A single mutex serializes every write, which gives the same
// per-order guarantees as the row lock of the postgres store.
type MemoryStore struct {
	mu  sync.RWMutex
	now func() time.Time

	lastID       int64
	orders       map[int64]*escrow.Order
	contracts    map[int64]*escrow.Contract
	statuses     map[int64][]escrow.Status
	transactions map[int64][]*escrow.Transaction
	recipients   map[int64][]escrow.Recipient
	appeals      map[int64]*escrow.Appeal
}

func WithNow(nowFunc func() time.Time) func(*MemoryStore) {
	return func(m *MemoryStore) {
		m.now = nowFunc
	}
}

func New(opts ...func(*MemoryStore)) *MemoryStore {
	m := &MemoryStore{
		now:          time.Now,
		orders:       make(map[int64]*escrow.Order),
		contracts:    make(map[int64]*escrow.Contract),
		statuses:     make(map[int64][]escrow.Status),
		transactions: make(map[int64][]*escrow.Transaction),
		recipients:   make(map[int64][]escrow.Recipient),
		appeals:      make(map[int64]*escrow.Appeal),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *MemoryStore) nextID() int64 {
	m.lastID++
	return m.lastID
}

func (m *MemoryStore) CreateOrder(_ context.Context, order escrow.Order, contract escrow.Contract) (*store.OrderRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range m.contracts {
		if c.Address == contract.Address {
			return nil, store.ErrContractExists
		}
	}

	now := m.now().UTC()

	order.ID = m.nextID()
	order.CreatedAt = now
	order.ExpiresAt = nil

	contract.ID = m.nextID()
	contract.OrderID = order.ID
	contract.CreatedAt = now

	status := escrow.Status{ID: m.nextID(), OrderID: order.ID, Status: escrow.StatusSubmitted, CreatedAt: now}

	m.orders[order.ID] = cloneOrder(&order)
	m.contracts[order.ID] = &contract
	m.statuses[order.ID] = []escrow.Status{status}

	return &store.OrderRecord{Order: order, Contract: contract, Status: status}, nil
}

func (m *MemoryStore) GetOrder(_ context.Context, id int64) (*escrow.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneOrder(o), nil
}

func (m *MemoryStore) GetContract(_ context.Context, orderID int64) (*escrow.Contract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.contracts[orderID]
	if !ok {
		return nil, store.ErrNotFound
	}
	contract := *c
	return &contract, nil
}

func (m *MemoryStore) GetContractByAddress(_ context.Context, address string) (*escrow.Contract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.contracts {
		if c.Address == address {
			contract := *c
			return &contract, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemoryStore) GetStatusHistory(_ context.Context, orderID int64) ([]escrow.Status, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.statuses[orderID]), nil
}

func (m *MemoryStore) AppendStatus(_ context.Context, update store.StatusUpdate) (*store.AppendResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[update.OrderID]
	if !ok {
		return nil, store.ErrNotFound
	}

	history := m.statuses[update.OrderID]
	contract := m.contracts[update.OrderID]

	if (update.Settlement != nil || update.Pending != "") && contract == nil {
		return nil, store.ErrNotFound
	}

	if update.Settlement != nil {
		existing := m.findTransaction(contract.ID, update.Settlement.Action, &update.Settlement.TxID)
		if existing != nil {
			latest := escrow.Latest(history)
			if latest == nil {
				return nil, fmt.Errorf("%w: order has no status", escrow.ErrUnexpectedStatus)
			}
			return &store.AppendResult{Status: *latest, Transaction: cloneTransaction(existing), Replayed: true}, nil
		}
	}

	err := escrow.CheckCurrent(history, update.Expect...)
	if err != nil {
		return nil, err
	}

	err = escrow.ValidateTransition(history, update.Status)
	if err != nil {
		return nil, err
	}

	if update.Appeal != nil {
		if _, exists := m.appeals[update.OrderID]; exists {
			return nil, store.ErrAppealExists
		}
	}

	// all checks passed, nothing below fails
	now := m.now().UTC()
	result := &store.AppendResult{}

	status := escrow.Status{ID: m.nextID(), OrderID: update.OrderID, Status: update.Status, CreatedAt: now}
	m.statuses[update.OrderID] = append(history, status)
	result.Status = status

	if update.ExpiresAt != nil {
		expiresAt := update.ExpiresAt.UTC()
		order.ExpiresAt = &expiresAt
	}

	if update.Pending != "" {
		t := m.findTransaction(contract.ID, update.Pending, nil)
		if t == nil {
			t = &escrow.Transaction{ID: m.nextID(), ContractID: contract.ID, Action: update.Pending, CreatedAt: now}
			m.transactions[contract.ID] = append(m.transactions[contract.ID], t)
		}
		result.Transaction = cloneTransaction(t)
	}

	if update.Settlement != nil {
		txID := update.Settlement.TxID
		t := m.findTransaction(contract.ID, update.Settlement.Action, nil)
		if t != nil {
			t.TxID = &txID
		} else {
			t = &escrow.Transaction{ID: m.nextID(), ContractID: contract.ID, Action: update.Settlement.Action, TxID: &txID, CreatedAt: now}
			m.transactions[contract.ID] = append(m.transactions[contract.ID], t)
		}

		for _, r := range update.Settlement.Recipients {
			m.recipients[t.ID] = append(m.recipients[t.ID], escrow.Recipient{
				ID:            m.nextID(),
				TransactionID: t.ID,
				Address:       r.Address,
				Amount:        r.Amount,
				CreatedAt:     now,
			})
		}
		result.Transaction = cloneTransaction(t)
	}

	if update.Appeal != nil {
		a := &escrow.Appeal{
			ID:        m.nextID(),
			OrderID:   update.OrderID,
			Owner:     update.Appeal.Owner,
			Type:      update.Appeal.Type,
			Reasons:   slices.Clone(update.Appeal.Reasons),
			CreatedAt: now,
		}
		if a.Reasons == nil {
			a.Reasons = []string{}
		}
		m.appeals[update.OrderID] = a
		result.Appeal = cloneAppeal(a)
	}

	if update.ResolveAppeal {
		if a, ok := m.appeals[update.OrderID]; ok && a.ResolvedAt == nil {
			resolvedAt := now
			a.ResolvedAt = &resolvedAt
			result.Appeal = cloneAppeal(a)
		}
	}

	return result, nil
}

// findTransaction returns the transaction of the action with the txid, or the placeholder if txID is nil.
func (m *MemoryStore) findTransaction(contractID int64, action escrow.ActionType, txID *string) *escrow.Transaction {
	for _, t := range m.transactions[contractID] {
		if t.Action != action {
			continue
		}
		if txID == nil && t.TxID == nil {
			return t
		}
		if txID != nil && t.TxID != nil && *t.TxID == *txID {
			return t
		}
	}
	return nil
}

func (m *MemoryStore) MarkStatusesRead(_ context.Context, orderID int64, role escrow.Role) (int64, error) {
	if role != escrow.RoleSeller && role != escrow.RoleBuyer {
		return 0, fmt.Errorf("%w: only buyer and seller track read statuses", escrow.ErrPermissionDenied)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	var updated int64
	history := m.statuses[orderID]
	for i := range history {
		readAt := now
		switch {
		case role == escrow.RoleSeller && history[i].SellerReadAt == nil:
			history[i].SellerReadAt = &readAt
		case role == escrow.RoleBuyer && history[i].BuyerReadAt == nil:
			history[i].BuyerReadAt = &readAt
		default:
			continue
		}
		updated++
	}

	return updated, nil
}

func (m *MemoryStore) GetTransaction(_ context.Context, contractID int64, action escrow.ActionType, txID string) (*escrow.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t := m.findTransaction(contractID, action, &txID)
	if t == nil {
		return nil, store.ErrNotFound
	}
	return cloneTransaction(t), nil
}

func (m *MemoryStore) ListTransactions(_ context.Context, contractID int64) ([]escrow.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	transactions := make([]escrow.Transaction, 0, len(m.transactions[contractID]))
	for _, t := range m.transactions[contractID] {
		transactions = append(transactions, *cloneTransaction(t))
	}
	return transactions, nil
}

func (m *MemoryStore) GetRecipients(_ context.Context, transactionID int64) ([]escrow.Recipient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	recipients := slices.Clone(m.recipients[transactionID])
	if recipients == nil {
		recipients = []escrow.Recipient{}
	}
	return recipients, nil
}

func (m *MemoryStore) GetAppeal(_ context.Context, orderID int64) (*escrow.Appeal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.appeals[orderID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneAppeal(a), nil
}

func (m *MemoryStore) ListAppeals(_ context.Context, filter store.AppealFilter) ([]escrow.Appeal, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matching := make([]escrow.Appeal, 0)
	for orderID, a := range m.appeals {
		if filter.Arbiter != "" && m.orders[orderID].Arbiter.WalletHash != filter.Arbiter {
			continue
		}
		switch filter.State {
		case store.AppealStatePending:
			if a.ResolvedAt != nil {
				continue
			}
		case store.AppealStateResolved:
			if a.ResolvedAt == nil {
				continue
			}
		}
		matching = append(matching, *cloneAppeal(a))
	}

	sort.Slice(matching, func(i, j int) bool {
		if matching[i].CreatedAt.Equal(matching[j].CreatedAt) {
			return matching[i].ID > matching[j].ID
		}
		return matching[i].CreatedAt.After(matching[j].CreatedAt)
	})

	count := int64(len(matching))
	if filter.Offset >= len(matching) {
		return []escrow.Appeal{}, count, nil
	}
	matching = matching[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matching) {
		matching = matching[:filter.Limit]
	}

	return matching, count, nil
}

func (m *MemoryStore) ListExpiredOrders(_ context.Context, now time.Time, statuses []escrow.StatusType, after *store.ExpiryCursor, limit int) ([]escrow.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := make([]escrow.Order, 0)
	for id, o := range m.orders {
		if o.ExpiresAt == nil || o.ExpiresAt.After(now) {
			continue
		}

		if after != nil && !pastCursor(o, *after) {
			continue
		}

		latest := escrow.Latest(m.statuses[id])
		if latest == nil || !slices.Contains(statuses, latest.Status) {
			continue
		}

		orders = append(orders, *cloneOrder(o))
	}

	sort.Slice(orders, func(i, j int) bool {
		if orders[i].ExpiresAt.Equal(*orders[j].ExpiresAt) {
			return orders[i].ID < orders[j].ID
		}
		return orders[i].ExpiresAt.Before(*orders[j].ExpiresAt)
	})

	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}

	return orders, nil
}

func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

func pastCursor(o *escrow.Order, after store.ExpiryCursor) bool {
	if o.ExpiresAt.Equal(after.ExpiresAt) {
		return o.ID > after.ID
	}
	return o.ExpiresAt.After(after.ExpiresAt)
}

func cloneOrder(o *escrow.Order) *escrow.Order {
	c := *o
	if o.ExpiresAt != nil {
		expiresAt := *o.ExpiresAt
		c.ExpiresAt = &expiresAt
	}
	return &c
}

func cloneTransaction(t *escrow.Transaction) *escrow.Transaction {
	c := *t
	if t.TxID != nil {
		txID := *t.TxID
		c.TxID = &txID
	}
	return &c
}

func cloneAppeal(a *escrow.Appeal) *escrow.Appeal {
	c := *a
	c.Reasons = slices.Clone(a.Reasons)
	if a.ResolvedAt != nil {
		resolvedAt := *a.ResolvedAt
		c.ResolvedAt = &resolvedAt
	}
	return &c
}
