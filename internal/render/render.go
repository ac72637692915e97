// Package render projects entity records into display markup. It is a pure
// projection layer: it reads records handed to it and never touches the
// store. Formatting is declared per field through descriptors rather than
// inferred from field names.
package render

import (
	"fmt"
	"html"
	"strings"
	"time"
	"unicode"
)

// Formatter converts a raw field value into its display form.
type Formatter func(value string) string

// Field describes one projected column: the record key it reads, the
// human-readable label shown next to the value, and the formatter applied
// to the raw value.
type Field struct {
	Name   string
	Label  string
	Format Formatter
}

// Record is a flat projection of an entity, keyed by field name.
type Record map[string]string

// Plain returns a field descriptor with no value transformation.
func Plain(name string) Field {
	return Field{Name: name, Label: Humanize(name), Format: func(v string) string { return v }}
}

// Date returns a field descriptor that renders ISO dates (2006-01-02) in a
// long locale style ("January 2, 2006"). Values that do not parse, such as
// the "N/A" discharge sentinel, pass through untouched.
func Date(name string) Field {
	return Field{Name: name, Label: Humanize(name), Format: FormatDate}
}

// Currency returns a field descriptor for amounts that are already stored in
// display form ("$19.50"); the value passes through unchanged.
func Currency(name string) Field {
	return Field{Name: name, Label: Humanize(name), Format: func(v string) string { return v }}
}

// FormatDate renders an ISO date in long form, passing through anything that
// is not an ISO date.
func FormatDate(v string) string {
	if v == "" {
		return v
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return v
	}
	return t.Format("January 2, 2006")
}

// Humanize converts a camelCase field name into space-separated capitalized
// words: "admissionDate" -> "Admission Date", "id" -> "Id".
func Humanize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		// Break before an uppercase rune unless it continues an acronym run
		// ("patientID" -> "Patient ID", not "Patient I D").
		if unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// List renders records as <li> items, projecting the given fields in order.
// An empty record set yields the single placeholder line
// "No {label} records found." Field values are HTML-escaped.
func List(records []Record, fields []Field, label string) string {
	if len(records) == 0 {
		return fmt.Sprintf("<li>No %s records found.</li>", html.EscapeString(label))
	}

	var b strings.Builder
	for _, rec := range records {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			value := f.Format(rec[f.Name])
			parts = append(parts, fmt.Sprintf("<strong>%s:</strong> %s",
				html.EscapeString(f.Label), html.EscapeString(value)))
		}
		b.WriteString("<li>")
		b.WriteString(strings.Join(parts, " | "))
		b.WriteString("</li>")
	}
	return b.String()
}

// Option is one selectable entry in a dropdown.
type Option struct {
	ID   string
	Name string
}

// PharmacyOptions rebuilds the pharmacy dropdown markup. The list always
// starts with a blank "Select Pharmacy" sentinel option.
func PharmacyOptions(pharmacies []Option) string {
	var b strings.Builder
	b.WriteString(`<option value="">Select Pharmacy</option>`)
	for _, p := range pharmacies {
		b.WriteString(fmt.Sprintf(`<option value="%s">%s (%s)</option>`,
			html.EscapeString(p.ID), html.EscapeString(p.Name), html.EscapeString(p.ID)))
	}
	return b.String()
}
