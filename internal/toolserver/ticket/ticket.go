// Package ticket implements the ticket-management tool server: search,
// detail lookup, metrics, and similarity over a constant ticket dataset.
package ticket

import (
	"sort"
	"strings"
	"time"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

// now is the clock seam for date-relative metrics.
var now = time.Now

const dateLayout = "2006-01-02"

// SearchFilter holds the optional search criteria. Empty fields are
// unconstrained; supplied fields combine as a conjunction.
type SearchFilter struct {
	TicketID   string
	CustomerID string
	Status     string
	Priority   string
	Category   string
	OS         string
	Query      string
	StartDate  string
	EndDate    string
}

// SearchResult is the payload returned by search_tickets.
type SearchResult struct {
	Tickets        []Ticket          `json:"tickets"`
	TotalCount     int               `json:"total_count"`
	FiltersApplied map[string]string `json:"filters_applied"`
}

// Search returns every ticket matching all supplied filters, in dataset order.
func Search(f SearchFilter) SearchResult {
	results := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		if f.TicketID != "" && t.TicketID != f.TicketID {
			continue
		}
		if f.CustomerID != "" && t.CustomerID != f.CustomerID {
			continue
		}
		if f.Status != "" && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if f.OS != "" && !strings.Contains(strings.ToLower(t.OS), strings.ToLower(f.OS)) {
			continue
		}
		if f.Query != "" && !matchesText(t, f.Query) {
			continue
		}
		if f.StartDate != "" && t.CreatedDate < f.StartDate {
			continue
		}
		if f.EndDate != "" && t.CreatedDate > f.EndDate {
			continue
		}
		results = append(results, t)
	}

	applied := map[string]string{}
	for k, v := range map[string]string{
		"ticket_id": f.TicketID, "customer_id": f.CustomerID, "status": f.Status,
		"priority": f.Priority, "category": f.Category, "os": f.OS,
		"query": f.Query, "start_date": f.StartDate, "end_date": f.EndDate,
	} {
		if v != "" {
			applied[k] = v
		}
	}

	return SearchResult{Tickets: results, TotalCount: len(results), FiltersApplied: applied}
}

// matchesText reports whether query appears in the ticket's subject,
// description, or tags (case-insensitive).
func matchesText(t Ticket, query string) bool {
	searchable := strings.ToLower(t.Subject + " " + t.Description + " " + strings.Join(t.Tags, " "))
	return strings.Contains(searchable, strings.ToLower(query))
}

// Details returns the full ticket record, or a not-found envelope pointing
// the caller at search_tickets.
func Details(ticketID string) any {
	for _, t := range tickets {
		if t.TicketID == ticketID {
			return t
		}
	}
	return domain.NotFound(
		"Ticket "+ticketID+" not found",
		"The ticket_id did not match any tickets in the dataset.",
		[]string{
			"Call search_tickets with customer_id or priority filters to rediscover the ticket.",
			"Verify the ticket_id format (e.g., TKT-1001).",
		},
		"search_tickets",
	).WithContext("ticket_id", ticketID)
}

// Metrics is the payload returned by get_ticket_metrics.
type Metrics struct {
	TimePeriod         string  `json:"time_period"`
	StartDate          string  `json:"start_date"`
	TotalTickets       int     `json:"total_tickets"`
	OpenTickets        int     `json:"open_tickets"`
	InProgressTickets  int     `json:"in_progress_tickets"`
	ResolvedTickets    int     `json:"resolved_tickets"`
	AvgResolutionHours float64 `json:"avg_resolution_time_hours"`
}

// ComputeMetrics summarizes ticket volume and resolution time for a period.
// Unrecognized periods fall back to the full dataset.
func ComputeMetrics(timePeriod string) Metrics {
	today := now()
	var start string
	switch timePeriod {
	case "last_7_days":
		start = today.AddDate(0, 0, -7).Format(dateLayout)
	case "last_30_days":
		start = today.AddDate(0, 0, -30).Format(dateLayout)
	case "last_90_days":
		start = today.AddDate(0, 0, -90).Format(dateLayout)
	default:
		start = "2000-01-01"
	}

	m := Metrics{TimePeriod: timePeriod, StartDate: start}
	var resolvedHours float64
	for _, t := range tickets {
		if t.CreatedDate < start {
			continue
		}
		m.TotalTickets++
		switch t.Status {
		case "open":
			m.OpenTickets++
		case "in_progress":
			m.InProgressTickets++
		case "resolved":
			m.ResolvedTickets++
			created, err1 := time.Parse(dateLayout, t.CreatedDate)
			updated, err2 := time.Parse(dateLayout, t.LastUpdated)
			if err1 == nil && err2 == nil {
				resolvedHours += updated.Sub(created).Hours()
			}
		}
	}
	if m.ResolvedTickets > 0 {
		m.AvgResolutionHours = round1(resolvedHours / float64(m.ResolvedTickets))
	}
	return m
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

// SimilarTicket is one scored entry in a similarity result.
type SimilarTicket struct {
	TicketID        string   `json:"ticket_id"`
	Subject         string   `json:"subject"`
	Status          string   `json:"status"`
	Priority        string   `json:"priority"`
	SimilarityScore int      `json:"similarity_score"`
	CommonTags      []string `json:"common_tags"`
}

// SimilarResult is the payload returned by find_similar_tickets.
type SimilarResult struct {
	ReferenceTicketID      string          `json:"reference_ticket_id"`
	ReferenceTicketSubject string          `json:"reference_ticket_subject"`
	SimilarTickets         []SimilarTicket `json:"similar_tickets"`
	TotalFound             int             `json:"total_found"`
}

// FindSimilar scores every other ticket against the reference: 20 points per
// common tag, 30 for matching category, 20 for matching OS, 10 for matching
// priority. Results are sorted by score, highest first.
func FindSimilar(ticketID string, limit int) any {
	var ref *Ticket
	for i := range tickets {
		if tickets[i].TicketID == ticketID {
			ref = &tickets[i]
			break
		}
	}
	if ref == nil {
		return domain.NotFound(
			"Ticket "+ticketID+" not found",
			"Cannot compute similarity because the reference ticket is missing.",
			[]string{
				"Search for tickets by subject or tags using search_tickets.",
				"Make sure the ticket_id belongs to the same dataset (TKT-####).",
			},
			"search_tickets",
		).WithContext("ticket_id", ticketID)
	}
	if limit <= 0 {
		limit = 5
	}

	refTags := map[string]bool{}
	for _, tag := range ref.Tags {
		refTags[tag] = true
	}

	scored := make([]SimilarTicket, 0, len(tickets))
	for _, t := range tickets {
		if t.TicketID == ref.TicketID {
			continue
		}
		var common []string
		for _, tag := range t.Tags {
			if refTags[tag] {
				common = append(common, tag)
			}
		}
		score := len(common) * 20
		if t.Category == ref.Category {
			score += 30
		}
		if t.OS == ref.OS {
			score += 20
		}
		if t.Priority == ref.Priority {
			score += 10
		}
		if score > 0 {
			scored = append(scored, SimilarTicket{
				TicketID:        t.TicketID,
				Subject:         t.Subject,
				Status:          t.Status,
				Priority:        t.Priority,
				SimilarityScore: score,
				CommonTags:      common,
			})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SimilarityScore > scored[j].SimilarityScore
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	return SimilarResult{
		ReferenceTicketID:      ref.TicketID,
		ReferenceTicketSubject: ref.Subject,
		SimilarTickets:         scored,
		TotalFound:             len(scored),
	}
}
