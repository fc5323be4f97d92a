package state

import (
	"fmt"
	"strings"
	"time"
)

const (
	orderNumberPrefix   = "TP"
	receiptNumberPrefix = "RCP"
)

// Business numbers are human-facing and same-day-sequential:
// <PREFIX>-YYYYMMDD-NNNN. The sequence is derived by counting existing
// numbers carrying today's date stamp, so uniqueness holds only under the
// single-writer store.

func nextOrderNumber(orders []Order, now time.Time) string {
	stamp := dateStamp(now)
	seq := 1
	for _, o := range orders {
		if strings.Contains(o.OrderNumber, stamp) {
			seq++
		}
	}
	return fmt.Sprintf("%s-%s-%04d", orderNumberPrefix, stamp, seq)
}

func nextReceiptNumber(transactions []Transaction, now time.Time) string {
	stamp := dateStamp(now)
	seq := 1
	for _, t := range transactions {
		if strings.Contains(t.ReceiptNumber, stamp) {
			seq++
		}
	}
	return fmt.Sprintf("%s-%s-%04d", receiptNumberPrefix, stamp, seq)
}

func dateStamp(now time.Time) string {
	return now.Format("20060102")
}

// NextOrderNumber previews the number the next created order would get.
func (s *Store) NextOrderNumber() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextOrderNumber(s.snap.Orders, s.now())
}

// NextReceiptNumber previews the number the next transaction would get.
func (s *Store) NextReceiptNumber() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextReceiptNumber(s.snap.Transactions, s.now())
}
