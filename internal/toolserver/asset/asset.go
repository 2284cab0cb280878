package asset

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

const dateLayout = "2006-01-02"

// now is swapped out in tests so warranty math stays deterministic.
var now = time.Now

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// warrantyDays returns whole days until the warranty end date. Negative once
// the warranty has lapsed.
func warrantyDays(endDate string) int {
	end, ok := parseDate(endDate)
	if !ok {
		return 0
	}
	return int(end.Sub(now()).Hours() / 24)
}

// search matches assets against any of the provided criteria (disjunction).
// Asset ID and customer ID match exactly, serial number case-insensitively,
// hostname on substring. With no criteria at all, every asset matches.
func search(assetID, serialNumber, hostname, customerID string) []*Asset {
	none := assetID == "" && serialNumber == "" && hostname == "" && customerID == ""
	var out []*Asset
	for i := range assets {
		a := &assets[i]
		match := none
		switch {
		case assetID != "" && a.AssetID == assetID:
			match = true
		case serialNumber != "" && strings.EqualFold(a.SerialNumber, serialNumber):
			match = true
		case hostname != "" && strings.Contains(strings.ToLower(a.Hostname), strings.ToLower(hostname)):
			match = true
		case customerID != "" && a.CustomerID == customerID:
			match = true
		}
		if match {
			out = append(out, a)
		}
	}
	return out
}

func findAsset(assetID string) *Asset {
	for i := range assets {
		if assets[i].AssetID == assetID {
			return &assets[i]
		}
	}
	return nil
}

// AssetSummary is the reduced row used when a lookup matches several assets.
type AssetSummary struct {
	AssetID      string `json:"asset_id"`
	SerialNumber string `json:"serial_number"`
	Hostname     string `json:"hostname"`
	AssetType    string `json:"asset_type"`
	CustomerID   string `json:"customer_id"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Status       string `json:"status"`
}

// AssetList is the multi-match result of a lookup.
type AssetList struct {
	Assets     []AssetSummary `json:"assets"`
	TotalCount int            `json:"total_count"`
}

// Lookup resolves assets by ID, serial number, hostname, or customer ID.
// A single match returns the full record with the warranty countdown
// recomputed; several matches return summaries.
func Lookup(assetID, serialNumber, hostname, customerID string) any {
	matches := search(assetID, serialNumber, hostname, customerID)
	switch len(matches) {
	case 0:
		criteria := map[string]any{}
		for k, v := range map[string]string{
			"asset_id": assetID, "serial_number": serialNumber,
			"hostname": hostname, "customer_id": customerID,
		} {
			if v != "" {
				criteria[k] = v
			}
		}
		return domain.NotFound(
			"No assets found matching criteria",
			"no asset matched the given identifiers",
			[]string{
				"Verify the asset ID, serial number, or hostname",
				"Search by customer_id to list a customer's assets",
			},
			"lookup_asset",
		).WithContext("search_criteria", criteria)
	case 1:
		a := *matches[0]
		a.Warranty.RemainingDays = warrantyDays(a.Warranty.EndDate)
		return a
	default:
		out := AssetList{Assets: make([]AssetSummary, 0, len(matches)), TotalCount: len(matches)}
		for _, a := range matches {
			out.Assets = append(out.Assets, AssetSummary{
				AssetID:      a.AssetID,
				SerialNumber: a.SerialNumber,
				Hostname:     a.Hostname,
				AssetType:    a.AssetType,
				CustomerID:   a.CustomerID,
				Manufacturer: a.Manufacturer,
				Model:        a.Model,
				Status:       a.Status,
			})
		}
		return out
	}
}

// WarrantyStatus extends the stored warranty with expiry flags computed at
// call time.
type WarrantyStatus struct {
	Warranty
	IsExpired   bool `json:"is_expired"`
	ExpiresSoon bool `json:"expires_soon"`
}

// WarrantyReport is the payload of check_warranty.
type WarrantyReport struct {
	AssetID      string         `json:"asset_id"`
	SerialNumber string         `json:"serial_number"`
	Hostname     string         `json:"hostname"`
	Manufacturer string         `json:"manufacturer"`
	Model        string         `json:"model"`
	Warranty     WarrantyStatus `json:"warranty"`
}

// CheckWarranty reports warranty coverage for an asset. expires_soon flags a
// warranty within its final 30 days.
func CheckWarranty(assetID string) any {
	a := findAsset(assetID)
	if a == nil {
		return notFoundByID(assetID)
	}
	remaining := warrantyDays(a.Warranty.EndDate)
	w := WarrantyStatus{Warranty: a.Warranty, IsExpired: remaining < 0, ExpiresSoon: remaining >= 0 && remaining <= 30}
	w.RemainingDays = remaining
	return WarrantyReport{
		AssetID:      a.AssetID,
		SerialNumber: a.SerialNumber,
		Hostname:     a.Hostname,
		Manufacturer: a.Manufacturer,
		Model:        a.Model,
		Warranty:     w,
	}
}

// AssetLicenses lists the licenses installed on one asset.
type AssetLicenses struct {
	AssetID       string    `json:"asset_id"`
	Hostname      string    `json:"hostname"`
	Licenses      []License `json:"licenses"`
	TotalLicenses int       `json:"total_licenses"`
}

// CustomerLicense is one license row in a customer-wide report, annotated
// with the asset it lives on.
type CustomerLicense struct {
	AssetID  string `json:"asset_id"`
	Hostname string `json:"hostname"`
	License
}

// CustomerLicenses aggregates licenses across all of a customer's assets.
type CustomerLicenses struct {
	CustomerID              string            `json:"customer_id"`
	Licenses                []CustomerLicense `json:"licenses"`
	TotalLicenses           int               `json:"total_licenses"`
	TotalAssetsWithLicenses int               `json:"total_assets_with_licenses"`
}

// Licenses reports software licenses for one asset or across a customer's
// fleet. Supplying neither criterion is a validation failure.
func Licenses(assetID, customerID string) any {
	switch {
	case assetID != "":
		a := findAsset(assetID)
		if a == nil {
			return notFoundByID(assetID)
		}
		lics := a.SoftwareLicenses
		if lics == nil {
			lics = []License{}
		}
		return AssetLicenses{AssetID: assetID, Hostname: a.Hostname, Licenses: lics, TotalLicenses: len(lics)}
	case customerID != "":
		out := CustomerLicenses{CustomerID: customerID, Licenses: []CustomerLicense{}}
		for i := range assets {
			a := &assets[i]
			if a.CustomerID != customerID {
				continue
			}
			if len(a.SoftwareLicenses) > 0 {
				out.TotalAssetsWithLicenses++
			}
			for _, lic := range a.SoftwareLicenses {
				out.Licenses = append(out.Licenses, CustomerLicense{AssetID: a.AssetID, Hostname: a.Hostname, License: lic})
			}
		}
		out.TotalLicenses = len(out.Licenses)
		return out
	default:
		return domain.Validation(
			"Missing license lookup criteria",
			"Neither asset_id nor customer_id was supplied.",
			[]string{
				"Provide asset_id to list licenses on one asset.",
				"Provide customer_id to aggregate licenses across a customer's assets.",
			},
		).WithContext("expected_arguments", []string{"asset_id", "customer_id"})
	}
}

// Event is one entry in an asset's lifecycle history.
type Event struct {
	Date        string `json:"date"`
	EventType   string `json:"event_type"`
	Description string `json:"description"`
	Details     any    `json:"details"`
}

// HistoryReport is the payload of get_asset_history.
type HistoryReport struct {
	AssetID       string  `json:"asset_id"`
	SerialNumber  string  `json:"serial_number"`
	Hostname      string  `json:"hostname"`
	CurrentStatus string  `json:"current_status"`
	History       []Event `json:"history"`
	TotalEvents   int     `json:"total_events"`
	AssetAgeDays  int     `json:"asset_age_days"`
}

// History reconstructs an asset's lifecycle (purchase, warranty start,
// last maintenance) most recent first.
func History(assetID string) any {
	a := findAsset(assetID)
	if a == nil {
		return notFoundByID(assetID)
	}

	events := []Event{
		{
			Date:        a.PurchaseDate,
			EventType:   "purchase",
			Description: fmt.Sprintf("Asset purchased - %s %s", a.Manufacturer, a.Model),
			Details:     map[string]any{"purchase_date": a.PurchaseDate, "location": a.Location},
		},
		{
			Date:        a.Warranty.StartDate,
			EventType:   "warranty_start",
			Description: fmt.Sprintf("Warranty coverage started - %s", a.Warranty.CoverageType),
			Details:     a.Warranty,
		},
	}
	if a.LastMaintenance != "" {
		events = append(events, Event{
			Date:        a.LastMaintenance,
			EventType:   "maintenance",
			Description: "Scheduled maintenance performed",
			Details:     map[string]any{"maintenance_date": a.LastMaintenance},
		})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date > events[j].Date })

	age := 0
	if purchased, ok := parseDate(a.PurchaseDate); ok {
		age = int(now().Sub(purchased).Hours() / 24)
	}
	return HistoryReport{
		AssetID:       a.AssetID,
		SerialNumber:  a.SerialNumber,
		Hostname:      a.Hostname,
		CurrentStatus: a.Status,
		History:       events,
		TotalEvents:   len(events),
		AssetAgeDays:  age,
	}
}

func notFoundByID(assetID string) domain.Envelope {
	return domain.NotFound(
		fmt.Sprintf("Asset %s not found", assetID),
		"no asset with that identifier exists",
		[]string{
			"Verify the asset ID format (AST-XXX-NNN)",
			"Use lookup_asset to search by serial number, hostname, or customer",
		},
		"lookup_asset",
	).WithContext("asset_id", assetID)
}
