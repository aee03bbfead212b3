package payload

// SeniorRegisterRequest mirrors the senior registration form. Age stays a
// string on the wire; the re-password field name is kept from the legacy
// client.
type SeniorRegisterRequest struct {
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Age         string `json:"age"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	City        string `json:"city"`
	Address     string `json:"address"`
	ContactPref string `json:"contactPref"`
	Language    string `json:"language"`
	Notes       string `json:"notes"`
	Password    string `json:"password"`
	RePassword  string `json:"re-password"`
}

// SeniorRegisterData is the success payload of /register/senior.
type SeniorRegisterData struct {
	Type     string `json:"type"`
	SeniorID string `json:"seniorId"`
}

// VolunteerRegisterRequest mirrors the volunteer registration form. Clients
// send the background check status under either of two field names; the
// *_status variant wins when both are present.
type VolunteerRegisterRequest struct {
	Firstname             string   `json:"firstname"`
	Lastname              string   `json:"lastname"`
	Phone                 string   `json:"phone"`
	Email                 string   `json:"email"`
	City                  string   `json:"city"`
	BackgroundCheck       string   `json:"background_check"`
	BackgroundCheckStatus string   `json:"background_check_status"`
	Password              string   `json:"password"`
	Availability          []string `json:"availability"`
}

// Status resolves the submitted background check value.
func (r *VolunteerRegisterRequest) Status() string {
	if r.BackgroundCheckStatus != "" {
		return r.BackgroundCheckStatus
	}
	return r.BackgroundCheck
}

// VolunteerRegisterResponse is the success body of /register/volunteer. The
// profile id sits at the top level, matching the legacy wire format.
type VolunteerRegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}
