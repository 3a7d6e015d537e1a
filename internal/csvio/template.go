package csvio

import (
	"encoding/csv"
	"io"
)

// templateRows holds one example row per collection so a template file
// shows the expected shape, not just the header.
var templateRows = map[string][]string{
	"providers": {
		"P001", "Dr. Alice Stone", "Emergency Medicine", "08:00", "16:00", "Mon;Tue;Wed",
	},
	"clients": {
		"C001", "Riverside Hospital", "Portland, OR",
	},
	"credentials": {
		"P001", "C001",
	},
	"shifts": {
		"", "P001", "C001", "2025-01-10T08:00:00", "2025-01-10T16:00:00", "Day", "",
	},
}

// templateHeaders maps collection names to their import headers.
var templateHeaders = map[string][]string{
	"providers":   ProviderHeader,
	"clients":     ClientHeader,
	"credentials": CredentialHeader,
	"shifts":      ShiftHeader,
}

// Collections lists the importable collection names.
func Collections() []string {
	return []string{"providers", "clients", "credentials", "shifts"}
}

// WriteTemplate writes an import template for the named collection: the
// header plus one example row.
func WriteTemplate(w io.Writer, collection string) error {
	header, ok := templateHeaders[collection]
	if !ok {
		return errUnknownCollection(collection)
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.Write(templateRows[collection]); err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}
