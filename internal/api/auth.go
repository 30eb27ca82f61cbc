package api

import (
	"context"
	"net/http"
)

// SendOTP asks the backend to email a one-time password. During signup
// the request also carries the chosen name and date of birth.
func (c *Client) SendOTP(ctx context.Context, req SendOTPRequest) (*OTPResponse, error) {
	var out OTPResponse
	if err := c.do(ctx, http.MethodPost, "/auth/send-otp", req, &out, "Failed to send OTP"); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyOTP exchanges an emailed OTP for an authenticated session.
func (c *Client) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify-otp", req, &out, "Failed to verify OTP"); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginWithGoogle exchanges a third-party identity token for a session.
// Token verification is entirely the backend's business.
func (c *Client) LoginWithGoogle(ctx context.Context, token string) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"token": token}
	if err := c.do(ctx, http.MethodPost, "/auth/google", body, &out, "Google authentication failed"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the current user's profile.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &out, "Failed to fetch profile"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile updates the current user's name and date of birth.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPut, "/auth/profile", req, &out, "Failed to update profile"); err != nil {
		return nil, err
	}
	return &out, nil
}
