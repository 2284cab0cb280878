package asset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

func pinClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func TestLookupSingleRecomputesWarranty(t *testing.T) {
	pinClock(t, time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC))

	got := Lookup("", "", "", "CUST-002")
	_, multi := got.(AssetList)
	require.True(t, multi, "CUST-002 owns two assets")

	got = Lookup("AST-STOR-001", "", "", "")
	a, ok := got.(Asset)
	require.True(t, ok, "expected a full asset record, got %T", got)
	assert.Equal(t, "Synology", a.Manufacturer)
	assert.Equal(t, 338, a.Warranty.RemainingDays, "countdown recomputed, not the stored snapshot")
}

func TestLookupBySerialCaseInsensitive(t *testing.T) {
	pinClock(t, time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC))

	got := Lookup("", "5cd23456abc", "", "")
	a, ok := got.(Asset)
	require.True(t, ok, "expected a full asset record, got %T", got)
	assert.Equal(t, "AST-WKS-001", a.AssetID)
}

func TestLookupByHostnamePartial(t *testing.T) {
	got := Lookup("", "", "megacorp", "")
	list, ok := got.(AssetList)
	require.True(t, ok, "expected a summary list, got %T", got)
	require.Equal(t, 2, list.TotalCount)
	assert.Equal(t, "AST-SRV-003", list.Assets[0].AssetID)
	assert.Equal(t, "AST-SRV-004", list.Assets[1].AssetID)
}

func TestLookupMiss(t *testing.T) {
	got := Lookup("AST-XXX-999", "", "", "")
	env, ok := got.(domain.Envelope)
	require.True(t, ok, "expected an error envelope, got %T", got)
	assert.Equal(t, "No assets found matching criteria", env.Error)
	assert.Contains(t, env.FollowUpTools, "lookup_asset")
	criteria := env.Context["search_criteria"].(map[string]any)
	assert.Equal(t, "AST-XXX-999", criteria["asset_id"])
}

func TestCheckWarrantyExpired(t *testing.T) {
	pinClock(t, time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC))

	got := CheckWarranty("AST-SRV-002")
	r, ok := got.(WarrantyReport)
	require.True(t, ok, "expected a warranty report, got %T", got)
	assert.Equal(t, -45, r.Warranty.RemainingDays)
	assert.True(t, r.Warranty.IsExpired)
	assert.False(t, r.Warranty.ExpiresSoon)
}

func TestCheckWarrantyExpiresSoon(t *testing.T) {
	pinClock(t, time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC))

	got := CheckWarranty("AST-WKS-002")
	r := got.(WarrantyReport)
	assert.Equal(t, 20, r.Warranty.RemainingDays)
	assert.False(t, r.Warranty.IsExpired)
	assert.True(t, r.Warranty.ExpiresSoon)
}

func TestCheckWarrantyMiss(t *testing.T) {
	got := CheckWarranty("AST-NOPE-000")
	env, ok := got.(domain.Envelope)
	require.True(t, ok)
	assert.Contains(t, env.Error, "AST-NOPE-000")
}

func TestLicensesByAsset(t *testing.T) {
	got := Licenses("AST-WKS-003", "")
	l, ok := got.(AssetLicenses)
	require.True(t, ok, "expected asset licenses, got %T", got)
	require.Equal(t, 2, l.TotalLicenses)
	assert.Equal(t, "VMware Workstation Pro", l.Licenses[0].Software)
	assert.Equal(t, "perpetual", l.Licenses[0].Expiration)
}

func TestLicensesByAssetNone(t *testing.T) {
	got := Licenses("AST-WKS-001", "")
	l := got.(AssetLicenses)
	assert.Zero(t, l.TotalLicenses)
	assert.NotNil(t, l.Licenses, "empty list serializes as [], not null")
}

func TestLicensesByCustomer(t *testing.T) {
	got := Licenses("", "CUST-007")
	l, ok := got.(CustomerLicenses)
	require.True(t, ok, "expected customer licenses, got %T", got)
	assert.Equal(t, 4, l.TotalLicenses)
	assert.Equal(t, 2, l.TotalAssetsWithLicenses)
	assert.Equal(t, "AST-SRV-003", l.Licenses[0].AssetID)
}

func TestLicensesMissingCriteria(t *testing.T) {
	got := Licenses("", "")
	env, ok := got.(domain.Envelope)
	require.True(t, ok, "expected an error envelope, got %T", got)
	assert.True(t, env.Retryable)
	assert.Equal(t, []string{"asset_id", "customer_id"}, env.Context["expected_arguments"])
}

func TestHistoryMostRecentFirst(t *testing.T) {
	pinClock(t, time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC))

	got := History("AST-SRV-001")
	h, ok := got.(HistoryReport)
	require.True(t, ok, "expected a history report, got %T", got)
	require.Equal(t, 3, h.TotalEvents)
	assert.Equal(t, "maintenance", h.History[0].EventType)
	assert.Equal(t, "purchase", h.History[1].EventType)
	assert.Equal(t, "warranty_start", h.History[2].EventType)
	assert.Equal(t, 839, h.AssetAgeDays)
}

func TestHistoryMiss(t *testing.T) {
	got := History("AST-GONE-123")
	_, ok := got.(domain.Envelope)
	assert.True(t, ok, "expected an error envelope, got %T", got)
}
