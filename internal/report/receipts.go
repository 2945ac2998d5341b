package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ReceiptNotFound is rendered in place of a link when no scanned
// receipt matches a row.
const ReceiptNotFound = "NO ENCONTRADO"

// NormalizeReceiptName reduces a receipt filename to its lookup key:
// upper-cased, trailing .pdf marker stripped, all whitespace removed.
// Scanner operators name files inconsistently ("factura A-102 .PDF",
// "FACTURAA-102.pdf"), this folds those variants together.
func NormalizeReceiptName(name string) string {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, ".PDF")
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, key)
}

// ReceiptIndex maps normalized receipt filenames to view links. It is
// built once per session from an external folder listing.
type ReceiptIndex struct {
	links map[string]string
}

// NewReceiptIndex builds the index from a filename→link listing.
func NewReceiptIndex(listing map[string]string) *ReceiptIndex {
	links := make(map[string]string, len(listing))
	for name, link := range listing {
		links[NormalizeReceiptName(name)] = link
	}
	return &ReceiptIndex{links: links}
}

// LinkFor returns the link for a row's invoice reference, or the
// ReceiptNotFound marker when no scanned file matches.
func (ri *ReceiptIndex) LinkFor(reference string) string {
	if link, ok := ri.links[NormalizeReceiptName(reference)]; ok && link != "" {
		return link
	}
	return ReceiptNotFound
}

// Len returns the number of indexed receipts.
func (ri *ReceiptIndex) Len() int {
	return len(ri.links)
}

// ListLocalReceiptFolder lists the PDF files of a local directory as a
// filename→path mapping for NewReceiptIndex.
func ListLocalReceiptFolder(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipt folder %s: %v", dir, err)
	}

	listing := map[string]string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		listing[entry.Name()] = filepath.Join(dir, entry.Name())
	}
	return listing, nil
}
