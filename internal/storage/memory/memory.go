package memory

// Package memory holds the authoritative in-memory ledger for a single run.
// It is owned by one ingestion loop and is not safe for concurrent use.
import (
    "fmt"
    "sort"

    "github.com/tinoosan/txnledger/internal/errs"
    "github.com/tinoosan/txnledger/internal/ledger"
)

// account is the per-client state: txn ids in the order they were admitted.
type account struct {
    history []ledger.TxnID
}

// remove deletes id from the history, keeping the order of the rest.
func (a *account) remove(id ledger.TxnID) {
    for i, h := range a.history {
        if h == id {
            a.history = append(a.history[:i], a.history[i+1:]...)
            return
        }
    }
}

// Store maps clients to their transaction history and lock state.
type Store struct {
    txns    map[ledger.TxnID]*ledger.ValueTxn
    clients map[ledger.ClientID]*account
    locked  map[ledger.ClientID]struct{}
}

// New constructs an empty store.
func New() *Store {
    return &Store{
        txns:    make(map[ledger.TxnID]*ledger.ValueTxn),
        clients: make(map[ledger.ClientID]*account),
        locked:  make(map[ledger.ClientID]struct{}),
    }
}

// Apply runs the state transition for tx and discards the outcome.
func (s *Store) Apply(tx ledger.Transaction) { _ = s.TryApply(tx) }

// TryApply runs the state transition for tx. A non-nil error names the reason
// the transaction had no effect on balances, history or the txn index. A
// duplicate still opens the client's account when it is the first one seen.
func (s *Store) TryApply(tx ledger.Transaction) error {
    switch t := tx.(type) {
    case *ledger.ValueTxn:
        return s.admit(t)
    case ledger.RefTxn:
        switch t.Type {
        case ledger.KindDispute:
            return s.setDisputed(t.ID, true)
        case ledger.KindResolve:
            return s.setDisputed(t.ID, false)
        case ledger.KindChargeback:
            return s.chargeback(t.Client, t.ID)
        }
    }
    return fmt.Errorf("%w: transaction %T", errs.ErrUnparseable, tx)
}

func (s *Store) admit(t *ledger.ValueTxn) error {
    if !t.Type.IsValue() {
        return fmt.Errorf("%w: value txn of kind %q", errs.ErrUnparseable, t.Type)
    }
    if _, ok := s.locked[t.Client]; ok {
        return errs.ErrLocked
    }
    acc, ok := s.clients[t.Client]
    if !ok {
        acc = &account{}
        s.clients[t.Client] = acc
    }
    // first writer wins while the id is in the store; a charged-back id is free again
    if _, ok := s.txns[t.ID]; ok {
        return errs.ErrDuplicate
    }
    // store a copy so later disputes never alias the caller's value
    stored := *t
    acc.history = append(acc.history, t.ID)
    s.txns[t.ID] = &stored
    return nil
}

// setDisputed looks up by txn id only; the reference's client id is not consulted.
func (s *Store) setDisputed(id ledger.TxnID, disputed bool) error {
    t, ok := s.txns[id]
    if !ok {
        return errs.ErrUnknownTxn
    }
    t.Disputed = disputed
    return nil
}

func (s *Store) chargeback(client ledger.ClientID, id ledger.TxnID) error {
    t, ok := s.txns[id]
    if !ok {
        return errs.ErrUnknownTxn
    }
    if !t.Disputed {
        return errs.ErrNotDisputed
    }
    acc, ok := s.clients[client]
    if !ok {
        return errs.ErrUnknownClient
    }
    delete(s.txns, id)
    acc.remove(id)
    s.locked[client] = struct{}{}
    return nil
}

// Summary projects the client's balances from scratch. The bool is false when
// the client never submitted a deposit or withdrawal.
func (s *Store) Summary(client ledger.ClientID) (ledger.AccountSummary, bool) {
    acc, ok := s.clients[client]
    if !ok {
        return ledger.AccountSummary{}, false
    }
    sum := ledger.Zero(client)
    for _, id := range acc.history {
        t, ok := s.txns[id]
        if !ok {
            continue
        }
        switch {
        case t.Type == ledger.KindDeposit && !t.Disputed:
            sum.Available = sum.Available.Add(t.Amount)
        case t.Type == ledger.KindDeposit:
            sum.Held = sum.Held.Add(t.Amount)
        case t.Type == ledger.KindWithdrawal && t.Amount.GreaterThan(sum.Available):
            // insufficient funds at this point in the history
        case t.Type == ledger.KindWithdrawal && !t.Disputed:
            sum.Available = sum.Available.Sub(t.Amount)
        case t.Type == ledger.KindWithdrawal:
            sum.Available = sum.Available.Sub(t.Amount)
            sum.Held = sum.Held.Add(t.Amount)
        }
    }
    sum.Total = sum.Available.Add(sum.Held)
    _, sum.Locked = s.locked[client]
    return sum, true
}

// Summaries projects every known client, ascending by client id.
func (s *Store) Summaries() []ledger.AccountSummary {
    ids := make([]ledger.ClientID, 0, len(s.clients))
    for id := range s.clients {
        ids = append(ids, id)
    }
    sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
    out := make([]ledger.AccountSummary, 0, len(ids))
    for _, id := range ids {
        if sum, ok := s.Summary(id); ok {
            out = append(out, sum)
        }
    }
    return out
}

// Len returns the number of value transactions currently stored.
func (s *Store) Len() int { return len(s.txns) }

// Clients returns the number of clients with an account.
func (s *Store) Clients() int { return len(s.clients) }

// Locked returns the number of locked clients.
func (s *Store) Locked() int { return len(s.locked) }

// IsLocked reports whether client has been locked by a chargeback.
func (s *Store) IsLocked(client ledger.ClientID) bool { _, ok := s.locked[client]; return ok }

// History returns a copy of the client's txn ids in admission order.
func (s *Store) History(client ledger.ClientID) []ledger.TxnID {
    acc, ok := s.clients[client]
    if !ok { return nil }
    out := make([]ledger.TxnID, len(acc.history))
    copy(out, acc.history)
    return out
}

// Txn returns a copy of a stored value transaction.
func (s *Store) Txn(id ledger.TxnID) (ledger.ValueTxn, bool) {
    t, ok := s.txns[id]
    if !ok { return ledger.ValueTxn{}, false }
    return *t, true
}
