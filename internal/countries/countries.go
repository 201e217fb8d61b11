// Package countries holds the static country list behind the country select
// column and the intake form.
package countries

import "strings"

// Country is a single directory entry.
type Country struct {
	Name      string `json:"countryName"`
	ShortCode string `json:"countryShortCode"`
}

// Option is a label/value pair for select inputs.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// All returns a copy of the full list in alphabetical order.
func All() []Country {
	out := make([]Country, len(countryData))
	copy(out, countryData)
	return out
}

// Filter moves priority codes to the front (in the given order), keeps only
// whitelisted codes when the whitelist is non-empty and drops blacklisted codes.
// Codes are ISO short codes compared case-insensitively.
func Filter(list []Country, priority, whitelist, blacklist []string) []Country {
	allow := codeSet(whitelist)
	deny := codeSet(blacklist)

	kept := make([]Country, 0, len(list))
	for _, c := range list {
		code := strings.ToUpper(c.ShortCode)
		if len(allow) > 0 {
			if _, ok := allow[code]; !ok {
				continue
			}
		}
		if _, ok := deny[code]; ok {
			continue
		}
		kept = append(kept, c)
	}
	if len(priority) == 0 {
		return kept
	}

	byCode := make(map[string]Country, len(kept))
	for _, c := range kept {
		byCode[strings.ToUpper(c.ShortCode)] = c
	}
	front := make([]Country, 0, len(priority))
	moved := make(map[string]struct{}, len(priority))
	for _, code := range priority {
		code = strings.ToUpper(code)
		if c, ok := byCode[code]; ok {
			if _, dup := moved[code]; dup {
				continue
			}
			front = append(front, c)
			moved[code] = struct{}{}
		}
	}
	out := front
	for _, c := range kept {
		if _, ok := moved[strings.ToUpper(c.ShortCode)]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

func codeSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[strings.ToUpper(code)] = struct{}{}
	}
	return set
}

// Directory is a filtered, immutable view of the country list.
type Directory struct {
	countries []Country
	names     map[string]struct{}
}

// DirectoryOptions holds the include/exclude lists applied once at construction.
type DirectoryOptions struct {
	Priority  []string
	Whitelist []string
	Blacklist []string
}

// NewDirectory loads and filters the list once.
func NewDirectory(opts DirectoryOptions) *Directory {
	filtered := Filter(All(), opts.Priority, opts.Whitelist, opts.Blacklist)
	names := make(map[string]struct{}, len(filtered))
	for _, c := range filtered {
		names[c.Name] = struct{}{}
	}
	return &Directory{countries: filtered, names: names}
}

// Options maps every entry to a select option whose label and value are the name.
func (d *Directory) Options() []Option {
	out := make([]Option, 0, len(d.countries))
	for _, c := range d.countries {
		out = append(out, Option{Label: c.Name, Value: c.Name})
	}
	return out
}

// Contains reports whether name is an exact directory entry.
func (d *Directory) Contains(name string) bool {
	_, ok := d.names[name]
	return ok
}
