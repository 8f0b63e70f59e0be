package handler

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
}

type loginRequest struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// sessionResponse is returned by register and login; only the credential pair
// is echoed back, matching what the client needs to store.
type sessionResponse struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// userResponse is the full user document; identifiers and timestamps are
// serialized as strings.
type userResponse struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
	LastLogin string `json:"lastLogin"`
}
