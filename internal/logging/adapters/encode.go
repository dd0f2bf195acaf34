package adapters

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resumeforge/internal/logging/types"
)

// encodeEntry renders an entry in the named format. Unknown formats fall
// back to JSON so a config typo never silences logging.
func encodeEntry(entry *types.Entry, format string) (string, error) {
	if strings.EqualFold(format, "text") {
		return encodeText(entry), nil
	}
	return encodeJSON(entry)
}

func encodeJSON(entry *types.Entry) (string, error) {
	record := map[string]interface{}{
		"level":   entry.Level.String(),
		"message": entry.Message,
		"time":    entry.Timestamp.Format(time.RFC3339),
	}
	for k, v := range entry.Fields {
		record[k] = v
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to encode log entry: %w", err)
	}
	return string(data), nil
}

func encodeText(entry *types.Entry) string {
	var b strings.Builder
	b.WriteString(entry.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"))
	b.WriteString(" [")
	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteString("] ")
	b.WriteString(entry.Message)
	for k, v := range entry.Fields {
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	return b.String()
}
