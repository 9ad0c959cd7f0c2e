package errs

import "errors"

// Sentinel errors describing why a row or transaction had no effect.
// None of them are fatal to a run; callers count and drop.
var (
    // ErrUnparseable marks a row that could not become a transaction.
    ErrUnparseable = errors.New("unparseable")
    // ErrUnknownTxn is returned when a reference names a txn id not in the store.
    ErrUnknownTxn = errors.New("unknown_txn")
    // ErrUnknownClient is returned by a chargeback naming a client with no account.
    ErrUnknownClient = errors.New("unknown_client")
    // ErrNotDisputed is returned by a chargeback whose target is not disputed.
    ErrNotDisputed = errors.New("not_disputed")
    ErrLocked      = errors.New("locked")
    // ErrDuplicate indicates a value transaction reused a txn id still in the store.
    ErrDuplicate = errors.New("duplicate")
)

// Reason maps an error to a short label for logs and metrics.
func Reason(err error) string {
    switch {
    case err == nil:
        return "applied"
    case errors.Is(err, ErrUnparseable):
        return ErrUnparseable.Error()
    case errors.Is(err, ErrUnknownTxn):
        return ErrUnknownTxn.Error()
    case errors.Is(err, ErrUnknownClient):
        return ErrUnknownClient.Error()
    case errors.Is(err, ErrNotDisputed):
        return ErrNotDisputed.Error()
    case errors.Is(err, ErrLocked):
        return ErrLocked.Error()
    case errors.Is(err, ErrDuplicate):
        return ErrDuplicate.Error()
    default:
        return "other"
    }
}
