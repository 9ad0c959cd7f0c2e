package memory

import (
	"github.com/tinoosan/txnledger/internal/service/ingest"
)

// Compile-time interface assertions documenting which interfaces Store satisfies.
var (
	_ ingest.Ledger = (*Store)(nil)
)
