package shared

import (
	"reflect"
	"strings"

	"hotelsite/shared/constant"
	"hotelsite/shared/dto"
	"hotelsite/shared/timezone"
)

// TransformFields converts the non-zero fields of an update request struct into
// a column map for a partial update. Fields absent from the request are left
// untouched in the store; modified metadata is always refreshed.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// Slugify derives a URL slug from a title: lowercase, runs of non-alphanumerics
// collapsed to single dashes.
func Slugify(title string) string {
	var b strings.Builder

	dash := false

	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)

			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
			}

			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
