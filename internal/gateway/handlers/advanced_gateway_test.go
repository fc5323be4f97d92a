package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"touchpay-system/internal/database/models"
)

func activePromo() models.PromoCode {
	return models.PromoCode{
		ID:            "promo-1",
		Code:          "HEMAT10",
		Name:          "Diskon 10%",
		DiscountType:  "percentage",
		DiscountValue: 10,
		ValidFrom:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		IsActive:      true,
	}
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestEvaluatePromoPercentage(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

	result := EvaluatePromo(activePromo(), 50000, now)
	assert.True(t, result.Valid)
	assert.Equal(t, int64(5000), result.Discount)
}

func TestEvaluatePromoPercentageCap(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	promo := activePromo()
	promo.MaxDiscountAmount = int64Ptr(3000)

	result := EvaluatePromo(promo, 50000, now)
	assert.True(t, result.Valid)
	assert.Equal(t, int64(3000), result.Discount)
}

func TestEvaluatePromoFixedClampsToOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	promo := activePromo()
	promo.DiscountType = "fixed"
	promo.DiscountValue = 20000

	result := EvaluatePromo(promo, 15000, now)
	assert.True(t, result.Valid)
	assert.Equal(t, int64(15000), result.Discount)
}

func TestEvaluatePromoRejections(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

	inactive := activePromo()
	inactive.IsActive = false
	assert.Equal(t, "Kode promo tidak aktif", EvaluatePromo(inactive, 50000, now).Reason)

	early := activePromo()
	early.ValidFrom = now.AddDate(0, 0, 1)
	assert.Equal(t, "Kode promo belum berlaku", EvaluatePromo(early, 50000, now).Reason)

	expired := activePromo()
	until := now.AddDate(0, 0, -1)
	expired.ValidUntil = &until
	assert.Equal(t, "Kode promo sudah kedaluwarsa", EvaluatePromo(expired, 50000, now).Reason)

	belowMin := activePromo()
	belowMin.MinOrderAmount = int64Ptr(100000)
	assert.Equal(t, "Total pesanan belum mencapai minimum", EvaluatePromo(belowMin, 50000, now).Reason)

	exhausted := activePromo()
	exhausted.UsageLimit = intPtr(5)
	exhausted.UsedCount = 5
	assert.Equal(t, "Kuota promo sudah habis", EvaluatePromo(exhausted, 50000, now).Reason)
}

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestPromoUpdatePatchKeepsOnlySetFields(t *testing.T) {
	until := time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local)
	req := UpdatePromoCodeRequest{
		Name:       strPtr("Diskon Akhir Tahun"),
		IsActive:   boolPtr(false),
		ValidUntil: &until,
	}

	u := req.updates()
	assert.Equal(t, map[string]interface{}{
		"name":        "Diskon Akhir Tahun",
		"is_active":   false,
		"valid_until": until,
	}, u)

	assert.Empty(t, UpdatePromoCodeRequest{}.updates())
}

func TestCustomerUpdatePatchKeepsOnlySetFields(t *testing.T) {
	req := UpdateCustomerRequest{
		Name:  strPtr("Siti Rahayu"),
		Phone: strPtr("0812-0000-0000"),
	}

	u := req.updates()
	assert.Equal(t, map[string]interface{}{
		"name":  "Siti Rahayu",
		"phone": "0812-0000-0000",
	}, u)

	assert.Empty(t, UpdateCustomerRequest{}.updates())
}

func TestChecklistTaskUpdatePatchCanDeactivate(t *testing.T) {
	req := UpdateChecklistTaskRequest{IsActive: boolPtr(false)}
	assert.Equal(t, map[string]interface{}{"is_active": false}, req.updates())

	req = UpdateChecklistTaskRequest{
		Title:    strPtr("Cek stok bahan baku"),
		Priority: strPtr("high"),
	}
	u := req.updates()
	assert.Equal(t, "Cek stok bahan baku", u["title"])
	assert.Equal(t, "high", u["priority"])
	assert.NotContains(t, u, "is_active")
}

func TestPaymentMethodUpdatePatchKeepsOnlySetFields(t *testing.T) {
	req := UpdatePaymentMethodRequest{
		DisplayName: strPtr("QRIS"),
		SortOrder:   intPtr(2),
		IsActive:    boolPtr(true),
	}

	u := req.updates()
	assert.Equal(t, map[string]interface{}{
		"display_name": "QRIS",
		"sort_order":   2,
		"is_active":    true,
	}, u)

	assert.Empty(t, UpdatePaymentMethodRequest{}.updates())
}

func TestEvaluatePromoRounding(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	promo := activePromo()
	promo.DiscountValue = 15

	// 15% of 333 is 49.95, which rounds to 50.
	result := EvaluatePromo(promo, 333, now)
	assert.True(t, result.Valid)
	assert.Equal(t, int64(50), result.Discount)
}
