package grid

import (
	"github.com/spec-kit/lead-dashboard/internal/countries"
	"github.com/spec-kit/lead-dashboard/internal/domain"
)

// ColumnID names an editable lead field.
type ColumnID string

const (
	ColumnName      ColumnID = "name"
	ColumnSubmitted ColumnID = "submitted"
	ColumnStatus    ColumnID = "status"
	ColumnCountry   ColumnID = "country"
)

// ColumnKind decides how a cell is edited.
type ColumnKind int

const (
	// KindText cells keep a draft until blurred.
	KindText ColumnKind = iota
	// KindDate cells behave like text cells.
	KindDate
	// KindSelect cells write through on every change.
	KindSelect
)

// Column describes one rendered column.
type Column struct {
	ID      ColumnID
	Header  string
	Kind    ColumnKind
	Options []countries.Option
}

// IsSelect reports whether the column edits through a fixed option list.
func (c Column) IsSelect() bool {
	return c.Kind == KindSelect
}

// HasOption reports whether value is one of the column's options.
func (c Column) HasOption(value string) bool {
	for _, o := range c.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// DefaultColumns returns the lead table layout with select options drawn from
// the lead statuses and the country directory.
func DefaultColumns(dir *countries.Directory) []Column {
	return LeadColumns(dir.Options())
}

// LeadColumns is DefaultColumns with country options supplied by the caller,
// typically the list served by the API.
func LeadColumns(countryOptions []countries.Option) []Column {
	statusOptions := make([]countries.Option, 0, len(domain.LeadStatuses))
	for _, s := range domain.LeadStatuses {
		statusOptions = append(statusOptions, countries.Option{Label: string(s), Value: string(s)})
	}
	return []Column{
		{ID: ColumnName, Header: "Name", Kind: KindText},
		{ID: ColumnSubmitted, Header: "Submitted", Kind: KindDate},
		{ID: ColumnStatus, Header: "Status", Kind: KindSelect, Options: statusOptions},
		{ID: ColumnCountry, Header: "Country", Kind: KindSelect, Options: countryOptions},
	}
}

func fieldValue(l domain.Lead, col ColumnID) string {
	switch col {
	case ColumnName:
		return l.Name
	case ColumnSubmitted:
		return l.Submitted
	case ColumnStatus:
		return string(l.Status)
	case ColumnCountry:
		return l.Country
	}
	return ""
}

func setField(l *domain.Lead, col ColumnID, value string) {
	switch col {
	case ColumnName:
		l.Name = value
	case ColumnSubmitted:
		l.Submitted = value
	case ColumnStatus:
		l.Status = domain.LeadStatus(value)
	case ColumnCountry:
		l.Country = value
	}
}
