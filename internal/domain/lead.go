package domain

// LeadStatus enumerates outreach states for a lead.
type LeadStatus string

const (
	LeadStatusPending    LeadStatus = "Pending"
	LeadStatusReachedOut LeadStatus = "Reached Out"
)

// LeadStatuses lists the statuses in display order.
var LeadStatuses = []LeadStatus{LeadStatusPending, LeadStatusReachedOut}

// Valid reports whether s is a known status.
func (s LeadStatus) Valid() bool {
	for _, known := range LeadStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// SubmittedLayout is the display format the store writes into Lead.Submitted.
const SubmittedLayout = "Jan 2, 2006, 3:04 PM"

// Lead is a prospective client's intake record.
type Lead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Submitted string     `json:"submitted"`
	Status    LeadStatus `json:"status"`
	Country   string     `json:"country"`
}

// LeadPatch holds the fields present in a partial update. Nil means untouched.
type LeadPatch struct {
	Name      *string     `json:"name,omitempty"`
	Submitted *string     `json:"submitted,omitempty"`
	Status    *LeadStatus `json:"status,omitempty"`
	Country   *string     `json:"country,omitempty"`
}

// Apply merges the present fields over l. ID is never touched.
func (p LeadPatch) Apply(l Lead) Lead {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Submitted != nil {
		l.Submitted = *p.Submitted
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.Country != nil {
		l.Country = *p.Country
	}
	return l
}

// PatchFromLead builds a patch carrying every mutable field of l.
func PatchFromLead(l Lead) LeadPatch {
	return LeadPatch{
		Name:      &l.Name,
		Submitted: &l.Submitted,
		Status:    &l.Status,
		Country:   &l.Country,
	}
}

// RowState is the edit mode of a grid row.
type RowState int

const (
	RowViewing RowState = iota
	RowEditing
)

func (s RowState) String() string {
	switch s {
	case RowEditing:
		return "editing"
	default:
		return "viewing"
	}
}
