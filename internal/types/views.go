package types

// ProfileSummary is one row of the search listing.
type ProfileSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// ProfileView is the merged profile+user representation returned by the
// self-profile endpoint.
type ProfileView struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Gender       string `json:"gender"`
	Hobby        string `json:"hobby"`
	ProfileImage string `json:"profile_image"`
}

// ProfileDetail is the view of somebody else's profile. Following is a
// read-only computed flag: whether the viewer currently follows the owner.
type ProfileDetail struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Gender       string `json:"gender"`
	Hobby        string `json:"hobby"`
	ProfileImage string `json:"profile_image"`
	Following    bool   `json:"following"`
}

// SearchPage is a paginated search result.
type SearchPage struct {
	Results  []ProfileSummary `json:"results"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}
