// Package mapper transforms one CSV row into a task-creation payload.
// Map is pure: it never performs I/O and reports non-fatal issues as
// warning strings for the caller to log.
package mapper

import (
	"fmt"
	"strings"

	"cuimport/internal/service"
)

// CustomFieldPrefix marks columns that map to custom fields. The ID is
// the column name with the prefix stripped.
const CustomFieldPrefix = "custom_"

// priorityLexicon maps priority text to ClickUp priority values.
var priorityLexicon = map[string]int{
	"urgent": 1,
	"high":   2,
	"normal": 3,
	"low":    4,
}

// Map builds a TaskPayload from one row. header preserves column order
// so custom fields append deterministically. A nil payload means the
// row is skipped (empty or missing name). Warnings cover non-fatal
// issues such as unparseable dates.
func Map(header []string, row map[string]string) (payload *service.TaskPayload, warnings []string) {
	name := row["name"]
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}

	payload = &service.TaskPayload{
		Name:        name,
		Description: row["description"],
	}

	if raw := row["due_date"]; raw != "" {
		if ms, ok := ParseDate(raw); ok {
			payload.DueDate = &ms
		} else {
			warnings = append(warnings, fmt.Sprintf("unparseable due_date %q, field omitted", raw))
		}
	}

	// Unrecognized priority text is omitted silently.
	if raw := row["priority"]; raw != "" {
		if p, ok := priorityLexicon[strings.ToLower(raw)]; ok {
			payload.Priority = &p
		}
	}

	if status := row["status"]; status != "" {
		payload.Status = status
	}

	if raw := row["tags"]; raw != "" {
		payload.Tags = splitList(raw, ",")
	}
	if raw := row["assignees"]; raw != "" {
		payload.Assignees = splitList(raw, ",")
	}

	if raw := row["subtasks"]; raw != "" {
		for _, seg := range splitList(raw, ";") {
			payload.Subtasks = append(payload.Subtasks, service.Subtask{Name: seg})
		}
	}

	// Custom fields follow header order, not map iteration order.
	for _, col := range header {
		if !strings.HasPrefix(col, CustomFieldPrefix) {
			continue
		}
		value := row[col]
		if value == "" {
			continue
		}
		payload.CustomFields = append(payload.CustomFields, service.CustomField{
			ID:    strings.TrimPrefix(col, CustomFieldPrefix),
			Value: value,
		})
	}

	return payload, warnings
}

// splitList splits on sep, trims each segment, and drops empties so
// trailing separators produce no empty strings.
func splitList(raw, sep string) []string {
	var out []string
	for _, seg := range strings.Split(raw, sep) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		out = append(out, seg)
	}
	return out
}
