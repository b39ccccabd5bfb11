package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/fileblock/internal/common"
	"github.com/dmitrijs2005/fileblock/internal/extension"
	"github.com/dmitrijs2005/fileblock/internal/server/services"
)

func (s *Server) Ping(c *fiber.Ctx) error {
	return okMessage(c, fiber.StatusOK, "OK")
}

// GetFixed returns the stored catalog overrides for a user. Catalog names
// without a row are unblocked; the client merges against the catalog.
func (s *Server) GetFixed(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return fail(c, fiber.StatusBadRequest, "userId is required")
	}

	list, err := s.fixed.List(c.UserContext(), userID)
	if err != nil {
		s.logger.Error(c.UserContext(), err.Error())
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}

	return ok(c, fiber.StatusOK, list)
}

type putFixedRequest struct {
	UserID     string `json:"userId"`
	Extensions []struct {
		Name      string `json:"name"`
		IsBlocked bool   `json:"isBlocked"`
	} `json:"extensions"`
}

// PutFixed applies a bulk policy update. Idempotent per (userId, name).
func (s *Server) PutFixed(c *fiber.Ctx) error {
	var req putFixedRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.UserID == "" {
		return fail(c, fiber.StatusBadRequest, "userId is required")
	}
	if req.Extensions == nil {
		return fail(c, fiber.StatusBadRequest, "extensions array is required")
	}

	entries := make([]services.PolicyEntry, 0, len(req.Extensions))
	for _, e := range req.Extensions {
		entries = append(entries, services.PolicyEntry{Name: e.Name, IsBlocked: e.IsBlocked})
	}

	updated, err := s.fixed.SetPolicy(c.UserContext(), req.UserID, entries)
	if err != nil {
		s.logger.Error(c.UserContext(), err.Error())
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}

	s.logger.Info(c.UserContext(), "fixed policy saved", "userId", req.UserID, "entries", len(updated))
	return ok(c, fiber.StatusOK, updated)
}

// GetCustom returns the user's custom extensions, newest first.
func (s *Server) GetCustom(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return fail(c, fiber.StatusBadRequest, "userId is required")
	}

	list, err := s.custom.List(c.UserContext(), userID)
	if err != nil {
		s.logger.Error(c.UserContext(), err.Error())
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}

	return ok(c, fiber.StatusOK, list)
}

type postCustomRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// PostCustom adds a custom extension. Validation failures return 400 with
// the validator's message, duplicates return 409, success returns 201 with
// the created record.
func (s *Server) PostCustom(c *fiber.Ctx) error {
	var req postCustomRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if req.UserID == "" {
		return fail(c, fiber.StatusBadRequest, "userId is required")
	}
	if req.Name == "" {
		return fail(c, fiber.StatusBadRequest, "name is required")
	}

	created, err := s.custom.Add(c.UserContext(), req.UserID, req.Name)
	if err != nil {
		if errors.Is(err, extension.ErrAlreadyExists) {
			return fail(c, fiber.StatusConflict, err.Error())
		}
		if extension.IsValidationError(err) {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		s.logger.Error(c.UserContext(), err.Error())
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}

	s.logger.Info(c.UserContext(), "custom extension added", "userId", req.UserID, "name", created.Name)
	return ok(c, fiber.StatusCreated, created)
}

// DeleteCustom removes a custom extension by id, scoped to the owning
// user. Unknown or foreign-owned ids return 404.
func (s *Server) DeleteCustom(c *fiber.Ctx) error {
	id := c.Params("id")

	userID := c.Query("userId")
	if userID == "" {
		return fail(c, fiber.StatusBadRequest, "userId is required")
	}

	if err := s.custom.Delete(c.UserContext(), userID, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fail(c, fiber.StatusNotFound, "Extension not found")
		}
		s.logger.Error(c.UserContext(), err.Error())
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}

	s.logger.Info(c.UserContext(), "custom extension deleted", "userId", userID, "id", id)
	return okMessage(c, fiber.StatusOK, "Deleted")
}
