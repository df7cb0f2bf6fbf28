// Package models defines canonical records for the RapiCredit back-office
// and the normalizers that map loosely-shaped core API payloads onto them.
//
// The core API has evolved through several field-naming generations
// (snake_case, camelCase, and a few renames), and different deployments
// still answer with different shapes. Every normalizer in this package
// reads each canonical field through an ordered key-preference chain and
// falls back to a documented default; normalization never fails.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// pickRaw returns the first present, non-nil value among keys.
func pickRaw(src map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := src[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// coerceString resolves the first present key to a string, else def.
// Numbers are formatted rather than dropped: ids and codes arrive as
// numbers from older backends.
func coerceString(src map[string]any, def string, keys ...string) string {
	v, ok := pickRaw(src, keys...)
	if !ok {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return def
	}
}

// coerceNumber resolves the first present key to a float64, else def.
// Numeric strings are parsed; unparseable values fall back to def.
func coerceNumber(src map[string]any, def float64, keys ...string) float64 {
	v, ok := pickRaw(src, keys...)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}

// coerceInt resolves the first present key to an int, truncating floats.
func coerceInt(src map[string]any, def int, keys ...string) int {
	return int(coerceNumber(src, float64(def), keys...))
}

// coerceBool resolves the first present key to a bool, else def.
// String forms ("true", "1") are accepted; numbers are nonzero-true.
func coerceBool(src map[string]any, def bool, keys ...string) bool {
	v, ok := pickRaw(src, keys...)
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "si", "sí":
			return true
		case "false", "0", "no":
			return false
		}
		return def
	case float64:
		return b != 0
	default:
		return def
	}
}

// coerceID resolves an identity field that may arrive as a raw string, a
// number, or a nested object carrying "_id" or "id".
func coerceID(src map[string]any, keys ...string) string {
	v, ok := pickRaw(src, keys...)
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case map[string]any:
		return coerceString(id, "", "_id", "id")
	default:
		return ""
	}
}

// coerceStringSlice resolves an array field that may arrive as a native
// array, a single scalar, or null/absent. Scalars are wrapped in a
// one-element slice; absent yields an empty slice, never nil entries.
func coerceStringSlice(src map[string]any, keys ...string) []string {
	v, ok := pickRaw(src, keys...)
	if !ok {
		return []string{}
	}
	switch arr := v.(type) {
	case []any:
		out := make([]string, 0, len(arr))
		for _, item := range arr {
			switch s := item.(type) {
			case string:
				out = append(out, s)
			case float64:
				out = append(out, strconv.FormatFloat(s, 'f', -1, 64))
			case nil:
				// skip
			default:
				out = append(out, fmt.Sprintf("%v", s))
			}
		}
		return out
	case []string:
		return arr
	case string:
		return []string{arr}
	case float64:
		return []string{strconv.FormatFloat(arr, 'f', -1, 64)}
	default:
		return []string{}
	}
}

var tokenReplacer = strings.NewReplacer(
	" ", "_", "-", "_",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ñ", "N",
)

// NormalizeToken uppercases and canonicalizes an enum-ish backend value
// (spaces and hyphens to underscores, accents stripped) for comparison.
func NormalizeToken(raw string) string {
	return tokenReplacer.Replace(strings.ToUpper(strings.TrimSpace(raw)))
}

// coerceFullName derives a display name: explicit full-name field first,
// then first+last joined with a single space (missing parts skipped),
// then a business name, then the entity's placeholder.
func coerceFullName(src map[string]any, placeholder string) string {
	if name := coerceString(src, "", "nombreCompleto", "nombre_completo", "fullName"); name != "" {
		return name
	}

	first := strings.TrimSpace(coerceString(src, "", "nombres", "nombre", "firstName"))
	last := strings.TrimSpace(coerceString(src, "", "apellidos", "apellido", "lastName"))
	parts := []string{}
	if first != "" {
		parts = append(parts, first)
	}
	if last != "" {
		parts = append(parts, last)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}

	if business := coerceString(src, "", "razonSocial", "razon_social", "empresa"); business != "" {
		return business
	}

	return placeholder
}
