package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-appgen/internal/naming"
)

// ValidateID checks that id is a slug usable for file paths and derived
// identifiers: letters, digits, '-' and '_' only, with the first word
// starting with a letter.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return malformed("id", "is required")
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return malformed("id", fmt.Sprintf("%q contains %q; only letters, digits, '-' and '_' are allowed", id, r))
		}
	}
	if !naming.IsIdentifier(naming.TitleCase(id)) {
		return malformed("id", fmt.Sprintf("%q must start with a letter", id))
	}
	return nil
}

// Validate reports every shape and enum-domain problem in d. Returned errors
// are MalformedInputError and UnknownEnumValueError values joined with
// errors.Join, so callers can match either sentinel.
func (d Definition) Validate() error {
	var errs []error

	if err := ValidateID(d.ID); err != nil {
		errs = append(errs, err)
	}

	if d.Groups == nil {
		errs = append(errs, malformed("groups", "is required"))
	}
	seenGroups := make(map[string]struct{}, len(d.Groups))
	for _, entry := range d.Groups {
		field := "groups." + entry.Key
		if strings.TrimSpace(entry.Key) == "" {
			errs = append(errs, malformed("groups", "contains an empty key"))
			continue
		}
		if _, dup := seenGroups[entry.Key]; dup {
			errs = append(errs, malformed(field, "is declared more than once"))
		}
		seenGroups[entry.Key] = struct{}{}
		if !GroupTypes.Contains(entry.Group.Type) {
			errs = append(errs, unknown(field+".type", GroupTypes.Kind(), string(entry.Group.Type)))
		}
	}

	if d.Tags == nil {
		errs = append(errs, malformed("tags", "is required"))
	}
	for i, tag := range d.Tags {
		if !AppTags.Contains(tag) {
			errs = append(errs, unknown(fmt.Sprintf("tags[%d]", i), AppTags.Kind(), string(tag)))
		}
	}

	if d.SupportedNetworks == nil {
		errs = append(errs, malformed("supportedNetworks", "is required"))
	}
	seenNetworks := make(map[Network]struct{}, len(d.SupportedNetworks))
	for _, entry := range d.SupportedNetworks {
		field := "supportedNetworks." + string(entry.Network)
		if !Networks.Contains(entry.Network) {
			errs = append(errs, unknown("supportedNetworks", Networks.Kind(), string(entry.Network)))
		}
		if _, dup := seenNetworks[entry.Network]; dup {
			errs = append(errs, malformed(field, "is declared more than once"))
		}
		seenNetworks[entry.Network] = struct{}{}
		for i, action := range entry.Actions {
			if !AppActions.Contains(action) {
				errs = append(errs, unknown(fmt.Sprintf("%s[%d]", field, i), AppActions.Kind(), string(action)))
			}
		}
	}

	return errors.Join(errs...)
}

func unknown(field, kind, value string) error {
	return &UnknownEnumValueError{Field: field, Kind: kind, Value: value}
}
