package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeReceiptName(t *testing.T) {
	cases := map[string]string{
		"factura A-102 .PDF":  "FACTURAA-102",
		"FACTURA A-102.pdf":   "FACTURAA-102",
		"facturaa-102":        "FACTURAA-102",
		"  recibo 33 .pdf  ":  "RECIBO33",
		"oficio\t2024 88.Pdf": "OFICIO202488",
	}

	for name, want := range cases {
		assert.Equal(t, want, NormalizeReceiptName(name), "NormalizeReceiptName(%q)", name)
	}
}

func TestReceiptIndexLookup(t *testing.T) {
	index := NewReceiptIndex(map[string]string{
		"factura A-102.pdf": "https://drive.example/a102",
		"FACTURA B-7 .PDF":  "https://drive.example/b7",
	})

	assert.Equal(t, 2, index.Len())
	assert.Equal(t, "https://drive.example/a102", index.LinkFor("FACTURA A-102"))
	assert.Equal(t, "https://drive.example/b7", index.LinkFor("factura b-7"))
	assert.Equal(t, ReceiptNotFound, index.LinkFor("FACTURA C-9"))
}
