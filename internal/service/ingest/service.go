package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/tinoosan/txnledger/internal/errs"
	"github.com/tinoosan/txnledger/internal/ledger"
)

// RowSource yields tokenized rows in input order. Next returns io.EOF when
// exhausted; errors wrapping errs.ErrUnparseable skip a single row.
type RowSource interface {
	Next() (row []string, line int, err error)
}

// Ledger applies one transaction and reports why it had no effect, if so.
type Ledger interface {
	TryApply(tx ledger.Transaction) error
}

// Recorder receives one observation per row.
type Recorder interface {
	Observe(kind, result string)
}

// Stats summarises a run.
type Stats struct {
	Rows    int
	Applied int
	// Dropped counts rows by reason label (see errs.Reason).
	Dropped map[string]int
}

// DroppedTotal sums Dropped across reasons.
func (s Stats) DroppedTotal() int {
	n := 0
	for _, v := range s.Dropped {
		n += v
	}
	return n
}

// Service drives rows from a source into a ledger, strictly in order.
type Service interface {
	Run(ctx context.Context, src RowSource) (Stats, error)
}

type service struct {
	ledger Ledger
	rec    Recorder
	log    *slog.Logger
}

// New builds the ingestion service. rec may be nil.
func New(l Ledger, rec Recorder, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{ledger: l, rec: rec, log: logger}
}

// Run reads until EOF. Only source errors other than unparseable rows and
// context cancellation stop the run.
func (s *service) Run(ctx context.Context, src RowSource) (Stats, error) {
	st := Stats{Dropped: map[string]int{}}
	s.log.Info("ingest started")
	for {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		row, line, err := src.Next()
		if errors.Is(err, io.EOF) {
			s.log.Info("ingest complete", "rows", st.Rows, "applied", st.Applied, "dropped", st.DroppedTotal())
			return st, nil
		}
		if err != nil && !errors.Is(err, errs.ErrUnparseable) {
			return st, err
		}
		st.Rows++
		if err != nil {
			s.drop(&st, line, "", err)
			continue
		}
		tx, err := ledger.Parse(row)
		if err != nil {
			s.drop(&st, line, "", err)
			continue
		}
		if err := s.ledger.TryApply(tx); err != nil {
			s.drop(&st, line, string(tx.Kind()), err)
			continue
		}
		st.Applied++
		s.observe(string(tx.Kind()), errs.Reason(nil))
	}
}

func (s *service) drop(st *Stats, line int, kind string, err error) {
	reason := errs.Reason(err)
	st.Dropped[reason]++
	s.observe(kind, reason)
	s.log.Debug("row dropped", "line", line, "kind", kind, "reason", reason, "err", err)
}

func (s *service) observe(kind, result string) {
	if s.rec != nil {
		s.rec.Observe(kind, result)
	}
}
