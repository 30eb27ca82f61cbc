package api

// User is the account record returned by the auth endpoints.
type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	IsVerified     bool   `json:"isVerified"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	AuthProvider   string `json:"authProvider,omitempty"` // "email" or "google"
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

// Note is a single note as the backend stores it. The client only ever
// holds a cached copy; the backend owns normalization of tags and
// timestamps, so notes are replaced wholesale from responses rather
// than patched locally.
type Note struct {
	ID         string   `json:"_id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	UserID     string   `json:"userId"`
	Tags       []string `json:"tags,omitempty"`
	IsPinned   bool     `json:"isPinned"`
	IsArchived bool     `json:"isArchived"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

// Pagination describes one page of a notes listing.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalNotes  int  `json:"totalNotes"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NotesResponse is the payload of GET /notes.
type NotesResponse struct {
	Notes      []Note     `json:"notes"`
	Pagination Pagination `json:"pagination"`
}

// AuthResponse is the payload of the OTP-verify and google exchange
// endpoints: the authenticated user plus a bearer token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// OTPResponse is the payload of POST /auth/send-otp.
type OTPResponse struct {
	Email     string `json:"email"`
	ExpiresIn string `json:"expiresIn"`
}

// SendOTPRequest requests a one-time password email. Name and
// DateOfBirth are only sent during signup.
type SendOTPRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

// VerifyOTPRequest exchanges an emailed OTP for a session.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// UpdateProfileRequest updates the account profile.
type UpdateProfileRequest struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
}

// CreateNoteRequest is the draft submitted to POST /notes. The backend
// assigns the id and timestamps.
type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags,omitempty"`
	IsPinned bool     `json:"isPinned,omitempty"`
}

// UpdateNoteRequest is a partial update for PUT /notes/:id. Every field
// is a pointer: nil means "leave unchanged" server-side, which is a
// different thing from sending the zero value.
type UpdateNoteRequest struct {
	Title      *string   `json:"title,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	IsPinned   *bool     `json:"isPinned,omitempty"`
	IsArchived *bool     `json:"isArchived,omitempty"`
}

// Filter selects which notes GET /notes returns.
type Filter struct {
	Search     string
	Tags       []string
	IsPinned   *bool
	IsArchived *bool
	Page       int
	Limit      int
}

// Bool returns a pointer to b, for filling optional request fields.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s, for filling optional request fields.
func String(s string) *string { return &s }

// Strings returns a pointer to a copy of ss.
func Strings(ss []string) *[]string {
	out := make([]string, len(ss))
	copy(out, ss)
	return &out
}
