package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

// errUnsupportedFormat is returned when the requested output format is not supported.
var errUnsupportedFormat = errors.New("unsupported output format")

// formatRecord renders a decoded message record in the requested format.
func formatRecord(msgType string, record any, format string) (string, error) {
	switch format {
	case formatJSON:
		return formatRecordJSON(msgType, record)
	case formatTable:
		return formatRecordTable(msgType, record)
	default:
		return "", fmt.Errorf("%w: %q", errUnsupportedFormat, format)
	}
}

func formatRecordJSON(msgType string, record any) (string, error) {
	data, err := json.MarshalIndent(map[string]any{
		"type":   msgType,
		"record": record,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal record to JSON: %w", err)
	}
	return string(data), nil
}

// formatRecordTable renders a record as "Field:\tValue" rows. Records are
// one of six unrelated struct types (BasicIDData, LocationData, ...), so
// rather than a formatter per type, the record is round-tripped through
// JSON into a field map and printed in a stable, sorted order.
func formatRecordTable(msgType string, record any) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", fmt.Errorf("unmarshal record fields: %w", err)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Type:\t%s\n", msgType)
	for _, name := range names {
		fmt.Fprintf(w, "%s:\t%v\n", name, fields[name])
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush tabwriter: %w", err)
	}

	return buf.String(), nil
}
