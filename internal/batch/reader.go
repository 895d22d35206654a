package batch

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"codecard/internal/formats"
	"codecard/internal/logging"
	"codecard/internal/vcard"
)

// ErrNoRows is returned when a spreadsheet has a header but no data rows.
var ErrNoRows = errors.New("spreadsheet contains no data rows")

// ErrNoHeader is returned when the first row maps to no known columns.
var ErrNoHeader = errors.New("spreadsheet header matches no known columns")

// ErrUnknownFormat is returned when the upload is neither XLSX nor CSV.
var ErrUnknownFormat = errors.New("unrecognized spreadsheet format")

// headerAliases maps normalized header cells to contact field setters.
// Normalization lowercases and strips spaces, underscores, and dashes,
// so "First Name", "first_name", and "firstname" all land on the same
// field.
var headerAliases = map[string]func(c *vcard.Contact, value string){
	"firstname":    func(c *vcard.Contact, v string) { c.FirstName = v },
	"first":        func(c *vcard.Contact, v string) { c.FirstName = v },
	"givenname":    func(c *vcard.Contact, v string) { c.FirstName = v },
	"given":        func(c *vcard.Contact, v string) { c.FirstName = v },
	"lastname":     func(c *vcard.Contact, v string) { c.LastName = v },
	"last":         func(c *vcard.Contact, v string) { c.LastName = v },
	"surname":      func(c *vcard.Contact, v string) { c.LastName = v },
	"familyname":   func(c *vcard.Contact, v string) { c.LastName = v },
	"organization": func(c *vcard.Contact, v string) { c.Organization = v },
	"organisation": func(c *vcard.Contact, v string) { c.Organization = v },
	"org":          func(c *vcard.Contact, v string) { c.Organization = v },
	"company":      func(c *vcard.Contact, v string) { c.Organization = v },
	"title":        func(c *vcard.Contact, v string) { c.Title = v },
	"jobtitle":     func(c *vcard.Contact, v string) { c.Title = v },
	"position":     func(c *vcard.Contact, v string) { c.Title = v },
	"department":   func(c *vcard.Contact, v string) { c.Department = v },
	"dept":         func(c *vcard.Contact, v string) { c.Department = v },
	"phone":        func(c *vcard.Contact, v string) { c.Phone = v },
	"telephone":    func(c *vcard.Contact, v string) { c.Phone = v },
	"tel":          func(c *vcard.Contact, v string) { c.Phone = v },
	"workphone":    func(c *vcard.Contact, v string) { c.Phone = v },
	"mobile":       func(c *vcard.Contact, v string) { c.Mobile = v },
	"cell":         func(c *vcard.Contact, v string) { c.Mobile = v },
	"cellphone":    func(c *vcard.Contact, v string) { c.Mobile = v },
	"mobilephone":  func(c *vcard.Contact, v string) { c.Mobile = v },
	"email":        func(c *vcard.Contact, v string) { c.Email = v },
	"mail":         func(c *vcard.Contact, v string) { c.Email = v },
	"emailaddress": func(c *vcard.Contact, v string) { c.Email = v },
	"website":      func(c *vcard.Contact, v string) { c.Website = v },
	"url":          func(c *vcard.Contact, v string) { c.Website = v },
	"web":          func(c *vcard.Contact, v string) { c.Website = v },
	"homepage":     func(c *vcard.Contact, v string) { c.Website = v },
	"notes":        func(c *vcard.Contact, v string) { c.Notes = v },
	"note":         func(c *vcard.Contact, v string) { c.Notes = v },
	"comment":      func(c *vcard.Contact, v string) { c.Notes = v },
}

func normalizeHeader(cell string) string {
	var b strings.Builder
	b.Grow(len(cell))
	for _, r := range strings.ToLower(strings.TrimSpace(cell)) {
		switch r {
		case ' ', '_', '-', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// mapHeader resolves a header row to per-column setters. Columns with
// unrecognized headers get a nil entry and are skipped.
func mapHeader(header []string) ([]func(c *vcard.Contact, value string), int) {
	setters := make([]func(c *vcard.Contact, value string), len(header))
	matched := 0
	for i, cell := range header {
		if setter, ok := headerAliases[normalizeHeader(cell)]; ok {
			setters[i] = setter
			matched++
		} else if strings.TrimSpace(cell) != "" {
			logging.Debug("Ignoring unrecognized column %q", cell)
		}
	}
	return setters, matched
}

// ReadContacts parses an uploaded spreadsheet into contact records, one
// per data row. Row order is preserved. The filename is only used for
// format detection; content sniffing covers extensionless uploads.
func ReadContacts(r io.Reader, filename string) ([]vcard.Contact, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	switch formats.DetectSheetFormat(filename, data) {
	case formats.SheetXLSX:
		return readXLSX(data)
	case formats.SheetCSV:
		return readCSV(data)
	default:
		return nil, ErrUnknownFormat
	}
}

func readXLSX(data []byte) ([]vcard.Contact, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if closeErr := wb.Close(); closeErr != nil {
			logging.Warn("failed to close workbook: %v", closeErr)
		}
	}()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}

	// Only the first sheet is read, matching the single-table shape of
	// contact exports.
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rowsToContacts(rows)
}

func readCSV(data []byte) ([]vcard.Contact, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rowsToContacts(rows)
}

func rowsToContacts(rows [][]string) ([]vcard.Contact, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	setters, matched := mapHeader(rows[0])
	if matched == 0 {
		return nil, ErrNoHeader
	}

	var contacts []vcard.Contact
	for _, row := range rows[1:] {
		var c vcard.Contact
		for i, cell := range row {
			if i >= len(setters) || setters[i] == nil {
				continue
			}
			if value := strings.TrimSpace(cell); value != "" {
				setters[i](&c, value)
			}
		}
		// Fully blank rows still count: every input row yields an
		// output bundle, and an empty contact fails downstream with a
		// row-level error instead of silently shifting indices.
		contacts = append(contacts, c)
	}

	if len(contacts) == 0 {
		return nil, ErrNoRows
	}

	logging.Debug("Parsed %d contact rows (%d mapped columns)", len(contacts), matched)
	return contacts, nil
}
