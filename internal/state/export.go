package state

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ExportDocument is the downloadable backup of the catalog and sales
// collections. Re-ingesting it through Import restores a deep-equal
// snapshot of those collections.
type ExportDocument struct {
	ExportedAt   time.Time     `json:"exported_at"`
	Products     []Product     `json:"products"`
	Categories   []Category    `json:"categories"`
	Tables       []Table       `json:"tables"`
	Orders       []Order       `json:"orders"`
	Transactions []Transaction `json:"transactions"`
}

// FileName embeds the export date, e.g. "touchpay-export-2026-08-28.json".
func (d ExportDocument) FileName() string {
	return fmt.Sprintf("touchpay-export-%s.json", d.ExportedAt.Format("2006-01-02"))
}

func (s *Store) Export() ExportDocument {
	snap := s.Snapshot()
	return ExportDocument{
		ExportedAt:   s.now(),
		Products:     snap.Products,
		Categories:   snap.Categories,
		Tables:       snap.Tables,
		Orders:       snap.Orders,
		Transactions: snap.Transactions,
	}
}

func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.Export(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal export")
	}
	return data, nil
}

// Import bulk-replaces each exported collection through the set
// operations. Like every set, it is idempotent.
func (s *Store) Import(doc ExportDocument) {
	s.SetCategories(doc.Categories)
	s.SetProducts(doc.Products)
	s.SetTables(doc.Tables)
	s.SetOrders(doc.Orders)
	s.SetTransactions(doc.Transactions)
}

func (s *Store) ImportJSON(data []byte) error {
	var doc ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "unmarshal export")
	}
	s.Import(doc)
	return nil
}
