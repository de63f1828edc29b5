package types

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,max=24"`
	Password  string `json:"password" binding:"required,min=5"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender" binding:"required,oneof=Male Female"`
}

// TokenRequest is the body of POST /token.
type TokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the body of POST /token/refresh.
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// UpdateProfileRequest is the body of PUT/PATCH /profile. Pointer fields
// distinguish "leave unchanged" from "set to empty". User-owned and
// profile-owned fields are applied together inside one transaction.
type UpdateProfileRequest struct {
	Username     *string `json:"username,omitempty"`
	Email        *string `json:"email,omitempty"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	Password     *string `json:"password,omitempty"`
	Hobby        *string `json:"hobby,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

// FollowRequest is the write-only action body of POST /search/:id/follow.
type FollowRequest struct {
	Action string `json:"action" binding:"required,oneof=follow unfollow"`
}

// SearchFilters carries the raw query parameters of GET /search. The user
// field stays a string here; parsing it is part of the query contract and
// malformed input must surface as a client error.
type SearchFilters struct {
	User      string
	Username  string
	FirstName string
	LastName  string
}
