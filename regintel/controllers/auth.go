package controllers

// AuthController is a placeholder: there is no authentication system yet,
// so both endpoints answer with unauthenticated stubs.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

func (c *AuthController) Me() map[string]any {
	return map[string]any{"user": nil, "authenticated": false}
}

func (c *AuthController) Login() map[string]any {
	return map[string]any{"message": "Login functionality coming soon"}
}
