package ledger

import (
	"sort"
	"strings"

	"github.com/farxc/contract_consumption/internal/dataset"
)

// FilterSelection is the caller-owned set of search-box values for one
// interaction. Empty values impose no constraint.
type FilterSelection struct {
	Beneficiary   string
	CLC           string
	PaymentDate   string
	Amount        string
	Contract      string
	RequestLetter string
	Invoice       string
}

type predicate struct {
	column string
	value  string
}

// predicates returns the non-structural pairs in the order the search
// boxes appear on the dashboard. Order only affects iteration, not the
// result set: the predicates compose by AND.
func (f FilterSelection) predicates() []predicate {
	return []predicate{
		{dataset.ColBeneficiary, f.Beneficiary},
		{dataset.ColCLC, f.CLC},
		{dataset.ColPaymentDate, f.PaymentDate},
		{dataset.ColAmount, f.Amount},
		{dataset.ColContract, f.Contract},
		{dataset.ColRequestLetter, f.RequestLetter},
		{dataset.ColInvoice, f.Invoice},
	}
}

// IsZero reports whether no filter value is set.
func (f FilterSelection) IsZero() bool {
	for _, p := range f.predicates() {
		if p.value != "" {
			return false
		}
	}
	return true
}

// Filter applies the selection over the payments table: every non-empty
// value keeps only rows whose column contains it as a case-insensitive
// substring. Rows missing a filtered column never match.
//
// One structural rule runs before the predicate loop: a beneficiary
// filter that resolves to more than one distinct contract, with no
// contract filter set, forces an empty result. Disbursements of a
// multi-contract beneficiary must not be mixed into one view, because
// the consumption panel would silently aggregate across contracts.
func Filter(payments *dataset.Table, sel FilterSelection) []dataset.Row {
	if sel.Beneficiary != "" && sel.Contract == "" {
		if len(contractsForBeneficiary(payments, sel.Beneficiary)) > 1 {
			return []dataset.Row{}
		}
	}

	result := []dataset.Row{}
	for _, row := range payments.Rows() {
		if matchesAll(row, sel) {
			result = append(result, row)
		}
	}
	return result
}

func matchesAll(row dataset.Row, sel FilterSelection) bool {
	for _, p := range sel.predicates() {
		if p.value == "" {
			continue
		}
		cell, ok := row.Lookup(p.column)
		if !ok || !containsFold(cell, p.value) {
			return false
		}
	}
	return true
}

// containsFold is a case-insensitive substring test.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// contractsForBeneficiary collects the distinct non-empty contract
// numbers of all rows matching the beneficiary filter.
func contractsForBeneficiary(payments *dataset.Table, beneficiary string) []string {
	seen := map[string]bool{}
	for _, row := range payments.Rows() {
		cell, ok := row.Lookup(dataset.ColBeneficiary)
		if !ok || !containsFold(cell, beneficiary) {
			continue
		}
		if contract := row.Get(dataset.ColContract); contract != "" {
			seen[contract] = true
		}
	}

	contracts := make([]string, 0, len(seen))
	for c := range seen {
		contracts = append(contracts, c)
	}
	sort.Strings(contracts)
	return contracts
}

// DistinctValues returns the sorted distinct non-empty values of one
// column, for populating the dashboard dropdowns. An absent column
// yields an empty list.
func DistinctValues(t *dataset.Table, col string) []string {
	seen := map[string]bool{}
	for _, row := range t.Rows() {
		if val, ok := row.Lookup(col); ok && val != "" {
			seen[val] = true
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
