package ledger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tinoosan/txnledger/internal/errs"
)

// Parse turns one tokenized input row (kind, client, tx, [amount]) into a
// Transaction. Any failure wraps errs.ErrUnparseable; the row should be dropped.
func Parse(row []string) (Transaction, error) {
	if len(row) < 3 {
		return nil, fmt.Errorf("%w: want at least 3 fields, got %d", errs.ErrUnparseable, len(row))
	}
	client, err := strconv.ParseUint(strings.TrimSpace(row[1]), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: client %q", errs.ErrUnparseable, row[1])
	}
	id, err := strconv.ParseUint(strings.TrimSpace(row[2]), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: tx %q", errs.ErrUnparseable, row[2])
	}
	amount, hasAmount := parseAmount(row)

	c, t := ClientID(client), TxnID(id)
	switch kind := Kind(strings.TrimSpace(row[0])); {
	case kind == KindDeposit && hasAmount:
		return NewDeposit(c, t, amount), nil
	case kind == KindWithdrawal && hasAmount:
		return NewWithdrawal(c, t, amount), nil
	case kind == KindDispute && !hasAmount:
		return NewDispute(c, t), nil
	case kind == KindResolve && !hasAmount:
		return NewResolve(c, t), nil
	case kind == KindChargeback && !hasAmount:
		return NewChargeback(c, t), nil
	case kind.IsValue():
		return nil, fmt.Errorf("%w: %s requires an amount", errs.ErrUnparseable, kind)
	case kind == KindDispute || kind == KindResolve || kind == KindChargeback:
		return nil, fmt.Errorf("%w: %s must not carry an amount", errs.ErrUnparseable, kind)
	default:
		return nil, fmt.Errorf("%w: kind %q", errs.ErrUnparseable, row[0])
	}
}

// parseAmount reads the optional fourth field, rounded to Scale digits.
func parseAmount(row []string) (decimal.Decimal, bool) {
	if len(row) < 4 {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(row[3]))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d.Round(Scale), true
}
