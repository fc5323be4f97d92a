package state

import (
	"sort"
	"time"
)

// Read-side aggregates. Each one recomputes fully from the snapshot it is
// given; collections are bounded to a single session so no incremental
// maintenance is kept.

// ComputeDashboardStats counts today's transactions and revenue (local
// midnight cutoff), orders in any status except selesai, and tables.
func ComputeDashboardStats(snap Snapshot, now time.Time) DashboardStats {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats := DashboardStats{TotalTables: len(snap.Tables)}
	for _, t := range snap.Transactions {
		if !t.CreatedAt.Before(midnight) {
			stats.TodayTransactions++
			stats.TodayRevenue += t.TotalAmount
		}
	}
	for _, o := range snap.Orders {
		if o.Status != OrderSelesai {
			stats.ActiveOrders++
		}
	}
	return stats
}

// ComputeSalesByDay buckets transaction totals per calendar day for the
// last n days, oldest first, today included. Empty days are kept as zero
// rows so a chart gets a continuous axis.
func ComputeSalesByDay(snap Snapshot, n int, now time.Time) []DailySales {
	if n <= 0 {
		return nil
	}
	byDay := make(map[string]*DailySales, n)
	out := make([]DailySales, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		out = append(out, DailySales{Date: key})
		byDay[key] = &out[len(out)-1]
	}
	for _, t := range snap.Transactions {
		key := t.CreatedAt.Format("2006-01-02")
		if row, ok := byDay[key]; ok {
			row.Total += t.TotalAmount
			row.Transactions++
		}
	}
	return out
}

// ComputeTopProducts ranks products by quantity sold across the order
// items behind every transaction. Revenue uses the current unit price.
func ComputeTopProducts(snap Snapshot, k int) []ProductSales {
	ordersByID := make(map[string]Order, len(snap.Orders))
	for _, o := range snap.Orders {
		ordersByID[o.ID] = o
	}

	sold := make(map[string]int, len(snap.Products))
	for _, t := range snap.Transactions {
		order, ok := ordersByID[t.OrderID]
		if !ok {
			continue
		}
		for _, it := range order.Items {
			sold[it.ProductID] += it.Quantity
		}
	}

	ranking := make([]ProductSales, 0, len(snap.Products))
	for _, p := range snap.Products {
		qty := sold[p.ID]
		ranking = append(ranking, ProductSales{
			ProductID: p.ID,
			Name:      p.Name,
			Sold:      qty,
			Revenue:   int64(qty) * p.Price,
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Sold > ranking[j].Sold })
	if k > 0 && len(ranking) > k {
		ranking = ranking[:k]
	}
	return ranking
}

// ComputePaymentMethodDistribution groups payments by method, summing the
// settled amount and counting occurrences. Methods come out in first-seen
// order.
func ComputePaymentMethodDistribution(snap Snapshot) []MethodShare {
	index := make(map[string]int)
	out := make([]MethodShare, 0, 4)
	for _, p := range snap.Payments {
		i, ok := index[p.Method]
		if !ok {
			i = len(out)
			index[p.Method] = i
			out = append(out, MethodShare{Method: p.Method})
		}
		out[i].Amount += p.Amount
		out[i].Count++
	}
	return out
}

// Store conveniences bound to the store clock.

func (s *Store) DashboardStats() DashboardStats {
	return ComputeDashboardStats(s.Snapshot(), s.now())
}

func (s *Store) SalesByDay(n int) []DailySales {
	return ComputeSalesByDay(s.Snapshot(), n, s.now())
}

func (s *Store) TopProducts(k int) []ProductSales {
	return ComputeTopProducts(s.Snapshot(), k)
}

func (s *Store) PaymentMethodDistribution() []MethodShare {
	return ComputePaymentMethodDistribution(s.Snapshot())
}
