package recognition

// Person is an immutable snapshot of a directory entry at fetch time.
// It is owned by the Recognition that embeds it.
type Person struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Department    string `json:"department"`
	ProfilePicURL string `json:"profile_pic_url"`
}

// Recognition is one peer recognition event: who gave how many points to
// whom, and why. Immutable after creation.
type Recognition struct {
	Amount   int    `json:"amount"`
	Reason   string `json:"reason"`
	Giver    Person `json:"giver"`
	Receiver Person `json:"receiver"`
}

// rawUser is a user object as the rewards API returns it.
type rawUser struct {
	DisplayName      string `json:"display_name"`
	Email            string `json:"email"`
	Country          string `json:"country"`
	ProfilePicURL    string `json:"profile_pic_url"`
	CustomProperties struct {
		Department string `json:"department"`
	} `json:"custom_properties"`
}

// rawRecord is one recognition event as the rewards API returns it.
type rawRecord struct {
	Amount        int     `json:"amount"`
	ReasonDecoded string  `json:"reason_decoded"`
	Giver         rawUser `json:"giver"`
	Receiver      rawUser `json:"receiver"`
}

// listResponse is the page envelope of the rewards API list endpoint.
type listResponse struct {
	Success bool        `json:"success"`
	Result  []rawRecord `json:"result"`
}

// person flattens a raw API user into a Person.
func (u rawUser) person() Person {
	return Person{
		Name:          u.DisplayName,
		Email:         u.Email,
		Department:    u.CustomProperties.Department,
		ProfilePicURL: u.ProfilePicURL,
	}
}

// recognition flattens a raw API record into a Recognition.
func (r rawRecord) recognition() Recognition {
	return Recognition{
		Amount:   r.Amount,
		Reason:   r.ReasonDecoded,
		Giver:    r.Giver.person(),
		Receiver: r.Receiver.person(),
	}
}

// filterRegion keeps records whose receiver country matches the region code
// and reshapes them. Input order is preserved; filtering never reorders.
func filterRegion(records []rawRecord, region string) []Recognition {
	out := make([]Recognition, 0, len(records))
	for _, r := range records {
		if r.Receiver.Country != region {
			continue
		}
		out = append(out, r.recognition())
	}
	return out
}
