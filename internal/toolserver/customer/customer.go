package customer

import (
	"fmt"
	"strings"

	"github.com/robertbarcik/mcp-helpdesk/internal/domain"
)

// find returns the first customer matching any of the provided criteria,
// scanning in dataset order. Customer ID and email match exactly (email
// case-insensitive), company name matches on substring.
func find(customerID, email, companyName string) *Customer {
	for i := range customers {
		c := &customers[i]
		if customerID != "" && c.CustomerID == customerID {
			return c
		}
		if email != "" && strings.EqualFold(c.Email, email) {
			return c
		}
		if companyName != "" && strings.Contains(strings.ToLower(c.CompanyName), strings.ToLower(companyName)) {
			return c
		}
	}
	return nil
}

// Lookup resolves a customer by ID, email, or company name.
func Lookup(customerID, email, companyName string) any {
	c := find(customerID, email, companyName)
	if c == nil {
		criteria := map[string]any{}
		if customerID != "" {
			criteria["customer_id"] = customerID
		}
		if email != "" {
			criteria["email"] = email
		}
		if companyName != "" {
			criteria["company_name"] = companyName
		}
		return domain.NotFound(
			"Customer not found",
			"no customer matched the given criteria",
			[]string{
				"Verify the customer ID, email, or company name",
				"Try a partial company name match",
			},
			"lookup_customer",
		).WithContext("search_criteria", criteria)
	}
	return *c
}

// StatusSummary is the account-status view of a customer.
type StatusSummary struct {
	CustomerID     string `json:"customer_id"`
	CompanyName    string `json:"company_name"`
	Status         string `json:"status"`
	Tier           string `json:"tier"`
	AccountManager string `json:"account_manager"`
	LastActivity   string `json:"last_activity"`
	CreatedDate    string `json:"created_date"`
}

// Status reports the current account status for a customer ID.
func Status(customerID string) any {
	c := find(customerID, "", "")
	if c == nil {
		return notFoundByID(customerID)
	}
	return StatusSummary{
		CustomerID:     c.CustomerID,
		CompanyName:    c.CompanyName,
		Status:         c.Status,
		Tier:           c.Tier,
		AccountManager: c.AccountManager,
		LastActivity:   c.LastActivity,
		CreatedDate:    c.CreatedDate,
	}
}

// SLAView pairs a customer identity with its SLA terms.
type SLAView struct {
	CustomerID  string   `json:"customer_id"`
	CompanyName string   `json:"company_name"`
	Tier        string   `json:"tier"`
	SLATerms    SLATerms `json:"sla_terms"`
}

// SLA returns the service-level agreement for a customer ID.
func SLA(customerID string) any {
	c := find(customerID, "", "")
	if c == nil {
		return notFoundByID(customerID)
	}
	return SLAView{
		CustomerID:  c.CustomerID,
		CompanyName: c.CompanyName,
		Tier:        c.Tier,
		SLATerms:    c.SLATerms,
	}
}

// ContactList is the contacts view of a customer account.
type ContactList struct {
	CustomerID    string    `json:"customer_id"`
	CompanyName   string    `json:"company_name"`
	Contacts      []Contact `json:"contacts"`
	TotalContacts int       `json:"total_contacts"`
}

// Contacts lists every contact on a customer account.
func Contacts(customerID string) any {
	c := find(customerID, "", "")
	if c == nil {
		return notFoundByID(customerID)
	}
	return ContactList{
		CustomerID:    c.CustomerID,
		CompanyName:   c.CompanyName,
		Contacts:      c.Contacts,
		TotalContacts: len(c.Contacts),
	}
}

func notFoundByID(customerID string) domain.Envelope {
	return domain.NotFound(
		fmt.Sprintf("Customer %s not found", customerID),
		"no customer with that identifier exists",
		[]string{
			"Verify the customer ID format (CUST-XXX)",
			"Use lookup_customer to search by email or company name",
		},
		"lookup_customer",
	).WithContext("customer_id", customerID)
}
