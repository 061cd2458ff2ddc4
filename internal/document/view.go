package document

// DocumentView is the print-ready structure of an issued certificate. It is
// layout-free: the print adapter decides pagination and styling, the view
// only carries the legal text and its interpolated values.
type DocumentView struct {
	Number          string             `json:"number"`
	Title           string             `json:"title"`
	Subtitle        string             `json:"subtitle,omitempty"`
	Letterhead      []string           `json:"letterhead"`
	OfficeLine      string             `json:"office_line"`
	ControlLine     string             `json:"control_line,omitempty"`
	Salutation      string             `json:"salutation"`
	Paragraphs      []string           `json:"paragraphs"`
	Verification    *VerificationBlock `json:"verification,omitempty"`
	ApprovedHeading string             `json:"approved_heading,omitempty"`
	SignerName      string             `json:"signer_name"`
	SignerTitle     string             `json:"signer_title"`
	FooterNotes     []string           `json:"footer_notes,omitempty"`
}

// VerificationBlock holds witness signature lines above the approval block.
type VerificationBlock struct {
	Heading string          `json:"heading"`
	Lines   []SignatureLine `json:"lines"`
}

type SignatureLine struct {
	Name string `json:"name"`
	Role string `json:"role"`
}
