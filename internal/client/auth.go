package client

import "context"

// AuthResult is the identity the backend issues on a successful login,
// registration or OTP verification.
type AuthResult struct {
	Token    string
	Role     string
	UserName string
}

func mapAuth(d authDTO) (AuthResult, error) {
	if d.Token == nil || *d.Token == "" {
		return AuthResult{}, &MappingError{Resource: "auth", Field: "token"}
	}
	return AuthResult{Token: *d.Token, Role: d.Role, UserName: d.UserName}, nil
}

type RegisterParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// Register creates an account and returns the issued identity.
func (c *Client) Register(ctx context.Context, params RegisterParams) (AuthResult, error) {
	var resp authDTO
	if err := c.do(ctx, "POST", "/auth/register", params, &resp); err != nil {
		return AuthResult{}, err
	}
	return mapAuth(resp)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var resp authDTO
	if err := c.do(ctx, "POST", "/auth/login", body, &resp); err != nil {
		return AuthResult{}, err
	}
	return mapAuth(resp)
}

// RequestOTP asks the backend to send a one-time code to the phone number.
func (c *Client) RequestOTP(ctx context.Context, phone string) error {
	body := map[string]string{"phone": phone}
	return c.do(ctx, "POST", "/auth/otp/request", body, nil)
}

// VerifyOTP exchanges a one-time code for a bearer token.
func (c *Client) VerifyOTP(ctx context.Context, phone, code string) (AuthResult, error) {
	body := map[string]string{"phone": phone, "code": code}

	var resp authDTO
	if err := c.do(ctx, "POST", "/auth/otp/verify", body, &resp); err != nil {
		return AuthResult{}, err
	}
	return mapAuth(resp)
}
