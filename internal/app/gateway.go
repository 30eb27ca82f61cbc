package app

import (
	"context"

	"github.com/thisisdkyadav/hdnotes/internal/api"
)

// Gateway is the remote surface the app depends on. *api.Client
// satisfies it; tests substitute a fake.
type Gateway interface {
	SendOTP(ctx context.Context, req api.SendOTPRequest) (*api.OTPResponse, error)
	VerifyOTP(ctx context.Context, req api.VerifyOTPRequest) (*api.AuthResponse, error)
	LoginWithGoogle(ctx context.Context, token string) (*api.AuthResponse, error)
	Profile(ctx context.Context) (*api.User, error)
	UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*api.User, error)

	CreateNote(ctx context.Context, req api.CreateNoteRequest) (*api.Note, error)
	ListNotes(ctx context.Context, f api.Filter) (*api.NotesResponse, error)
	Note(ctx context.Context, id string) (*api.Note, error)
	UpdateNote(ctx context.Context, id string, req api.UpdateNoteRequest) (*api.Note, error)
	DeleteNote(ctx context.Context, id string) error
}
