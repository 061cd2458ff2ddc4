package domain

// Resident is a read-only input to the certificate core. The residents
// module owns mutation; this core only takes issuance-time snapshots.
type Resident struct {
	ID            string  `json:"id"`
	FullName      string  `json:"full_name"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Purok         string  `json:"purok"`
	Status        string  `json:"status"`
	SpecialStatus *string `json:"special_status,omitempty"`
	HouseholdID   *string `json:"household_id,omitempty"`
}

// BarangaySettings feeds the document letterhead.
type BarangaySettings struct {
	BarangayName  string  `json:"barangay_name"`
	Municipality  string  `json:"municipality"`
	Province      string  `json:"province"`
	Address       *string `json:"address,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Email         *string `json:"email,omitempty"`
	CaptainName   string  `json:"captain_name"`
}

// DefaultSettings is used when no settings row has been saved yet.
func DefaultSettings() BarangaySettings {
	return BarangaySettings{
		BarangayName: "Poblacion",
		Municipality: "Lagangilang",
		Province:     "Abra",
		CaptainName:  "ALEJANDRO A. ALFILER",
	}
}
