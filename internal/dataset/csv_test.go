package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadCSVTable(t *testing.T) {
	input := "BENEFICIARIO ;NUM_CONTRATO;importe\n" +
		"ACME;C1;1,000.00\n" +
		"Servicios Aguila;C2;500\n"

	table, err := readCSVTable(strings.NewReader(input), ';')
	assert.NoError(t, err)

	assert.Equal(t, []string{"BENEFICIARIO", "NUM_CONTRATO", "importe"}, table.Columns())
	assert.Equal(t, 2, table.Nrow())
	assert.Equal(t, "ACME", table.Row(0).Get("BENEFICIARIO"))
	assert.Equal(t, "1,000.00", table.Row(0).Get("importe"))
	assert.Equal(t, "C2", table.Row(1).Get("NUM_CONTRATO"))
}

func TestReadCSVTableEmptyInput(t *testing.T) {
	_, err := readCSVTable(strings.NewReader("BENEFICIARIO;importe\n"), ';')
	assert.Error(t, err)
}
