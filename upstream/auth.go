package upstream

import (
	"context"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// The upstream API calls the buyer role "customer". The gateway speaks
// buyer/staff/admin everywhere else, so the translation lives here.
func roleToUpstream(role string) string {
	if role == models.RoleBuyer {
		return "customer"
	}
	return role
}

func roleFromUpstream(role string) string {
	if role == "customer" {
		return models.RoleBuyer
	}
	return role
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login authenticates against POST /auth/login and returns the upstream
// access token plus the resolved account identity.
func (c *Client) Login(ctx context.Context, username, password, role string) (models.LoginResponse, error) {
	var resp models.LoginResponse
	payload := loginPayload{
		Username: username,
		Password: password,
		Role:     roleToUpstream(role),
	}
	if err := c.sendJSON(ctx, "POST", "/auth/login", "", payload, &resp); err != nil {
		return models.LoginResponse{}, err
	}
	resp.Role = roleFromUpstream(resp.Role)
	return resp, nil
}

// Register creates a buyer account via POST /auth/register.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.sendJSON(ctx, "POST", "/auth/register", "", req, nil)
}
