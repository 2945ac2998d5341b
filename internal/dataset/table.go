package dataset

import "strings"

// Canonical column headers as exported by the municipal finance system.
// Payment and commitment sheets keep their original headers end to end;
// all typing happens at use-site.
const (
	ColBeneficiary   = "BENEFICIARIO"
	ColContract      = "NUM_CONTRATO"
	ColRequestLetter = "OFICIO_SOLICITUD"
	ColCLC           = "CLC"
	ColAmount        = "importe"
	ColInvoice       = "FACTURA"
	ColPaymentDate   = "Fecha de pago"

	ColDocumentRef = "Texto cab.documento"
	ColTotalAmount = "Importe total (LC)"
)

// OptionalPaymentColumns are substituted as empty columns when the
// payments sheet does not carry them, instead of failing the load.
var OptionalPaymentColumns = []string{ColContract, ColRequestLetter, ColInvoice}

// Table is an in-memory tabular snapshot: ordered string columns and
// string cells. Headers are trimmed of surrounding whitespace when the
// table is built.
type Table struct {
	columns []string
	index   map[string]int
	cells   [][]string
}

// NewTable builds an empty table with the given (trimmed) headers.
func NewTable(columns []string) *Table {
	t := &Table{
		columns: make([]string, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for _, col := range columns {
		name := strings.TrimSpace(col)
		if _, exists := t.index[name]; exists {
			continue
		}
		t.index[name] = len(t.columns)
		t.columns = append(t.columns, name)
	}
	return t
}

// FromRecords builds a table from raw records where the first record is
// the header row. Short rows are padded with empty cells.
func FromRecords(records [][]string) *Table {
	if len(records) == 0 {
		return NewTable(nil)
	}
	t := NewTable(records[0])
	for _, rec := range records[1:] {
		t.Append(rec)
	}
	return t
}

// Append adds one row of cells in column order.
func (t *Table) Append(cells []string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.cells = append(t.cells, row)
}

// EnsureColumn adds an empty column when the header is missing, so
// downstream filters and joins see blank values rather than absence.
func (t *Table) EnsureColumn(name string) {
	name = strings.TrimSpace(name)
	if _, exists := t.index[name]; exists {
		return
	}
	t.index[name] = len(t.columns)
	t.columns = append(t.columns, name)
	for i := range t.cells {
		t.cells[i] = append(t.cells[i], "")
	}
}

// Columns returns the ordered header names.
func (t *Table) Columns() []string {
	return t.columns
}

// HasColumn reports whether the header is present.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[strings.TrimSpace(name)]
	return ok
}

// Nrow returns the number of data rows.
func (t *Table) Nrow() int {
	return len(t.cells)
}

// Row returns a view over the i-th data row.
func (t *Table) Row(i int) Row {
	return Row{table: t, idx: i}
}

// Rows returns views over every data row in order.
func (t *Table) Rows() []Row {
	rows := make([]Row, t.Nrow())
	for i := range rows {
		rows[i] = Row{table: t, idx: i}
	}
	return rows
}

// Row is a cheap view over one table row.
type Row struct {
	table *Table
	idx   int
}

// Lookup returns the cell under the given column and whether the column
// exists. Missing columns report false instead of panicking; callers
// treat that as "no data" per the fail-soft policy.
func (r Row) Lookup(col string) (string, bool) {
	if r.table == nil {
		return "", false
	}
	pos, ok := r.table.index[strings.TrimSpace(col)]
	if !ok || r.idx < 0 || r.idx >= len(r.table.cells) {
		return "", false
	}
	return r.table.cells[r.idx][pos], true
}

// Get returns the cell under the given column, or the empty string when
// the column is absent.
func (r Row) Get(col string) string {
	val, _ := r.Lookup(col)
	return val
}
