package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/terraincognita07/kardia/internal/models"
)

// IntegerRecordFields are the draft fields persisted as nullable integers.
var IntegerRecordFields = []string{
	"heart_rate",
	"breathing",
	"dizziness",
	"speech_difficulty",
	"measured_heart_rate",
	"duration",
	"recovery_heart_rate",
}

// StringRecordFields are the draft fields persisted as never-null strings,
// with the empty string as the canonical unset value.
var StringRecordFields = []string{
	"activity",
	"body_part",
	"intake",
	"start_feeling",
	"start_type",
	"premonition",
	"sweating",
	"weakness",
	"chest_pain",
	"blood_pressure",
	"blood_sugar",
	"after_effects",
	"recovery_blood_pressure",
	"recovery_actions",
	"recovery_helpful",
	"sleep_hours",
	"stress",
	"medications",
	"notes",
}

const BooleanRecordField = "ecg_taken"

// SanitizeDraft coerces a loosely typed draft into the canonical shape:
// integer fields become int or nil, string fields become strings (nil and
// missing values become ""), and ecg_taken becomes a genuine bool. Fields
// outside the fixed sets, such as date, time and id, pass through
// unchanged. The input draft is never mutated and no input can make the
// coercion fail.
func SanitizeDraft(draft models.Draft) models.Draft {
	sanitized := make(models.Draft, len(draft)+len(IntegerRecordFields)+len(StringRecordFields)+1)
	for key, value := range draft {
		sanitized[key] = value
	}

	for _, field := range IntegerRecordFields {
		sanitized[field] = coerceInteger(sanitized[field])
	}
	sanitized[BooleanRecordField] = coerceBoolean(sanitized[BooleanRecordField])
	for _, field := range StringRecordFields {
		sanitized[field] = coerceString(sanitized[field])
	}
	return sanitized
}

// RecordFromDraft sanitizes the draft and decodes it into a typed record.
// Keys outside the record's field set are dropped.
func RecordFromDraft(draft models.Draft) (models.SymptomRecord, error) {
	serialized, err := json.Marshal(SanitizeDraft(draft))
	if err != nil {
		return models.SymptomRecord{}, fmt.Errorf("encode sanitized draft: %w", err)
	}
	record := models.SymptomRecord{}
	if err := json.Unmarshal(serialized, &record); err != nil {
		return models.SymptomRecord{}, fmt.Errorf("decode sanitized draft: %w", err)
	}
	return record, nil
}

func coerceInteger(raw any) any {
	switch value := raw.(type) {
	case nil:
		return nil
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return parseLeadingInt(strconv.FormatFloat(value, 'f', -1, 64))
	case string:
		return parseLeadingInt(value)
	default:
		return parseLeadingInt(fmt.Sprint(value))
	}
}

func coerceBoolean(raw any) bool {
	if value, ok := raw.(bool); ok {
		return value
	}
	return raw == "true"
}

func coerceString(raw any) string {
	switch value := raw.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}

// parseLeadingInt mirrors base-10 parseInt semantics: skip leading
// whitespace, accept an optional sign, then consume digits until the first
// non-digit. No digits means null.
func parseLeadingInt(value string) any {
	trimmed := strings.TrimLeft(value, " \t\n\r")

	start := 0
	if start < len(trimmed) && (trimmed[start] == '+' || trimmed[start] == '-') {
		start++
	}
	end := start
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == start {
		return nil
	}

	parsed, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return nil
	}
	return parsed
}
