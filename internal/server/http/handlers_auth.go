package http

import (
	"net/mail"

	"github.com/gofiber/fiber/v2"
)

// bcrypt rejects longer inputs, so the boundary does too.
const maxPasswordBytes = 72

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "email and password are required")
	}
	if !validEmail(req.Email) {
		return badRequest(c, "invalid email format")
	}
	if len(req.Password) > maxPasswordBytes {
		return badRequest(c, "password must be at most 72 bytes")
	}

	pair, err := s.users.Register(c.UserContext(), req.Email, req.Password, req.Name)
	if err != nil {
		return s.serviceError(c, err, "email already registered")
	}

	return c.Status(fiber.StatusCreated).JSON(TokenPairResponse{
		UserID:       pair.UserID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return badRequest(c, "email and password are required")
	}

	pair, err := s.users.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return s.serviceError(c, err, "")
	}

	return c.JSON(TokenPairResponse{
		UserID:       pair.UserID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	})
}

func (s *Server) handleRefresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.RefreshToken == "" {
		return badRequest(c, "refresh token is required")
	}

	token, err := s.users.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return s.serviceError(c, err, "")
	}

	return c.JSON(RefreshResponse{
		AccessToken: token.Token,
		ExpiresIn:   token.ExpiresIn,
	})
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	if err := s.users.Logout(c.UserContext()); err != nil {
		return s.serviceError(c, err, "")
	}
	return c.JSON(SuccessResponse{Success: true})
}

func (s *Server) handleMe(c *fiber.Ctx) error {
	user, err := s.users.GetUser(c.UserContext(), currentUserID(c))
	if err != nil {
		return s.serviceError(c, err, "")
	}
	return c.JSON(ProfileResponse{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
}
