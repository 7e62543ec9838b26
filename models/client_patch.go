package models

import "fmt"

// patchable maps each field the PATCH surface may touch to its column
// constraints. id is deliberately absent: the key is immutable.
var patchable = map[string]struct {
	maxLen   int
	nullable bool
}{
	"nom":                {maxLen: 40},
	"prenom":             {maxLen: 30},
	"adresse":            {maxLen: 50},
	"genre":              {maxLen: 8, nullable: true},
	"complement_adresse": {maxLen: 50, nullable: true},
	"tel":                {maxLen: 10, nullable: true},
	"email":              {maxLen: 255, nullable: true},
	"newsletter":         {},
}

// ValidatePatch checks a decoded PATCH body against the allow-list before
// anything touches the store. A key present with a JSON null clears the
// column, so null is only accepted on nullable fields.
func ValidatePatch(fields map[string]any) error {
	for name, value := range fields {
		spec, ok := patchable[name]
		if !ok {
			return fmt.Errorf("field %q is not patchable", name)
		}

		if value == nil {
			if !spec.nullable {
				return fmt.Errorf("field %q cannot be null", name)
			}
			continue
		}

		if name == "newsletter" {
			n, ok := value.(float64)
			if !ok || n != float64(int(n)) {
				return fmt.Errorf("field %q must be an integer", name)
			}
			continue
		}

		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %q must be a string", name)
		}
		if len(s) > spec.maxLen {
			return fmt.Errorf("field %q exceeds %d characters", name, spec.maxLen)
		}
	}
	return nil
}

// ApplyPatch overwrites only the fields present in a validated PATCH body.
// Absent keys leave the row untouched.
func (c *Client) ApplyPatch(fields map[string]any) {
	if v, ok := fields["nom"]; ok {
		c.Nom = v.(string)
	}
	if v, ok := fields["prenom"]; ok {
		c.Prenom = v.(string)
	}
	if v, ok := fields["adresse"]; ok {
		c.Adresse = v.(string)
	}
	if v, ok := fields["genre"]; ok {
		c.Genre = optString(v)
	}
	if v, ok := fields["complement_adresse"]; ok {
		c.ComplementAdresse = optString(v)
	}
	if v, ok := fields["tel"]; ok {
		c.Tel = optString(v)
	}
	if v, ok := fields["email"]; ok {
		c.Email = optString(v)
	}
	if v, ok := fields["newsletter"]; ok {
		c.Newsletter = int(v.(float64))
	}
}

func optString(v any) *string {
	if v == nil {
		return nil
	}
	s := v.(string)
	return &s
}
