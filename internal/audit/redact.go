// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package audit

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-med-keeper/models"
)

// RedactedMarker replaces designated values inside audit changes.
const RedactedMarker = "[ENCRYPTED]"

// Redact returns a copy of changes in which every change touching a
// designated field of entityType carries only redaction tokens. A change
// touches a designated field when its name equals the designated path, is
// nested below it ("emergencyContact.name"), or contains it
// ("emergencyContact"). List-valued designated fields are summarized as
// "[N items]".
func Redact(entityType models.EntityType, changes []models.Change) []models.Change {
	designated := models.DesignatedFields(entityType)

	out := make([]models.Change, len(changes))
	for i, c := range changes {
		out[i] = c

		d, exact, ok := matchDesignated(designated, c.Field)
		if !ok {
			continue
		}
		out[i].OldValue = redactValue(d, exact, c.OldValue)
		out[i].NewValue = redactValue(d, exact, c.NewValue)
	}

	return out
}

func matchDesignated(designated []models.DesignatedField, field string) (models.DesignatedField, bool, bool) {
	var (
		found models.DesignatedField
		ok    bool
	)
	for _, d := range designated {
		switch {
		case field == d.Path:
			return d, true, true
		case strings.HasPrefix(field, d.Path+"."), strings.HasPrefix(field, d.Path+"["),
			strings.HasPrefix(d.Path, field+"."):
			found, ok = d, true
		}
	}

	return found, false, ok
}

func redactValue(d models.DesignatedField, exact bool, v any) any {
	if v == nil {
		return nil
	}
	if d.List && exact {
		if n, ok := itemCount(v); ok {
			return fmt.Sprintf("[%d items]", n)
		}
	}

	return RedactedMarker
}

func itemCount(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), true
	case reflect.Pointer:
		if rv.IsNil() {
			return 0, false
		}
		return itemCount(rv.Elem().Interface())
	}

	return 0, false
}
