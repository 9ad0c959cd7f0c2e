package ledger

import (
	"github.com/shopspring/decimal"
)

// ClientID identifies a client account.
type ClientID uint16

// TxnID identifies a value-bearing transaction. It is unique across all
// deposits and withdrawals in a run.
type TxnID uint32

// Scale is the number of fractional digits carried by every amount.
const Scale = 4

// Kind enumerates the transaction types accepted by the ledger.
type Kind string

const (
	// KindDeposit credits a client's available funds.
	KindDeposit Kind = "deposit"
	// KindWithdrawal debits a client's available funds when they suffice.
	KindWithdrawal Kind = "withdrawal"
	// KindDispute flags a prior value transaction as contested.
	KindDispute Kind = "dispute"
	// KindResolve clears the contested flag on a prior value transaction.
	KindResolve Kind = "resolve"
	// KindChargeback reverses a disputed transaction and locks the client.
	KindChargeback Kind = "chargeback"
)

// IsValue reports whether k carries an amount.
func (k Kind) IsValue() bool { return k == KindDeposit || k == KindWithdrawal }

// Transaction is implemented by ValueTxn and RefTxn.
type Transaction interface {
	ClientID() ClientID
	TxnID() TxnID
	Kind() Kind
}

// ValueTxn is a deposit or withdrawal. Disputed is the only field that
// changes after construction.
type ValueTxn struct {
	Type     Kind
	Client   ClientID
	ID       TxnID
	Amount   decimal.Decimal
	Disputed bool
}

// NewDeposit returns an undisputed deposit.
func NewDeposit(client ClientID, id TxnID, amount decimal.Decimal) *ValueTxn {
	return &ValueTxn{Type: KindDeposit, Client: client, ID: id, Amount: amount}
}

// NewWithdrawal returns an undisputed withdrawal.
func NewWithdrawal(client ClientID, id TxnID, amount decimal.Decimal) *ValueTxn {
	return &ValueTxn{Type: KindWithdrawal, Client: client, ID: id, Amount: amount}
}

func (t *ValueTxn) ClientID() ClientID { return t.Client }
func (t *ValueTxn) TxnID() TxnID       { return t.ID }
func (t *ValueTxn) Kind() Kind         { return t.Type }

// RefTxn is a dispute, resolve or chargeback. It points at a ValueTxn by id
// and carries no amount.
type RefTxn struct {
	Type   Kind
	Client ClientID
	ID     TxnID
}

func NewDispute(client ClientID, id TxnID) RefTxn {
	return RefTxn{Type: KindDispute, Client: client, ID: id}
}

func NewResolve(client ClientID, id TxnID) RefTxn {
	return RefTxn{Type: KindResolve, Client: client, ID: id}
}

func NewChargeback(client ClientID, id TxnID) RefTxn {
	return RefTxn{Type: KindChargeback, Client: client, ID: id}
}

func (t RefTxn) ClientID() ClientID { return t.Client }
func (t RefTxn) TxnID() TxnID       { return t.ID }
func (t RefTxn) Kind() Kind         { return t.Type }

// AccountSummary is a point-in-time projection of one client's balances.
// Total is always Available + Held.
type AccountSummary struct {
	Client    ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// Zero returns the summary of a client with no effective transactions.
func Zero(client ClientID) AccountSummary {
	z := decimal.New(0, -Scale)
	return AccountSummary{Client: client, Available: z, Held: z, Total: z}
}

// Equal compares balances numerically, ignoring decimal representation.
func (s AccountSummary) Equal(o AccountSummary) bool {
	return s.Client == o.Client &&
		s.Available.Equal(o.Available) &&
		s.Held.Equal(o.Held) &&
		s.Total.Equal(o.Total) &&
		s.Locked == o.Locked
}

// FormatAmount renders d in plain notation with exactly Scale fractional digits.
func FormatAmount(d decimal.Decimal) string { return d.StringFixed(Scale) }
