package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/pllus/social-api/internal/dto"
	"github.com/pllus/social-api/internal/model"
	"github.com/pllus/social-api/internal/repository"
)

// Follow adds a directed edge from the caller to the target user. The edge
// is written redundantly on both documents; the two writes are not atomic.
func Follow(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.TokenRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		caller, ok, resp := d.resolveCaller(c, ctx, req.Token)
		if !ok {
			return resp
		}

		target, ok, resp := d.targetUser(c, ctx, c.Params("id"))
		if !ok {
			return resp
		}

		if containsID(caller.Following, target.ID) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Already following"})
		}

		caller.Following = append(caller.Following, target.ID)
		target.Followers = append(target.Followers, caller.ID)
		if err := d.Users.Update(ctx, caller); err != nil {
			return internalError(c)
		}
		if err := d.Users.Update(ctx, target); err != nil {
			return internalError(c)
		}
		return c.SendString("User Followed successfully")
	}
}

// Unfollow removes the edge from both sides.
func Unfollow(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.TokenRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		caller, ok, resp := d.resolveCaller(c, ctx, req.Token)
		if !ok {
			return resp
		}

		target, ok, resp := d.targetUser(c, ctx, c.Params("id"))
		if !ok {
			return resp
		}

		if !containsID(caller.Following, target.ID) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Not following"})
		}

		caller.Following = removeID(caller.Following, target.ID)
		target.Followers = removeID(target.Followers, caller.ID)
		if err := d.Users.Update(ctx, caller); err != nil {
			return internalError(c)
		}
		if err := d.Users.Update(ctx, target); err != nil {
			return internalError(c)
		}
		return c.SendString("User Unfollowed successfully")
	}
}

// targetUser resolves the :id path parameter. A malformed id can never
// match a document, so it answers the same 404 as an absent one.
func (d Deps) targetUser(c *fiber.Ctx, ctx context.Context, hex string) (*model.User, bool, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return nil, false, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "User not found"})
	}
	target, err := d.Users.ByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, false, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "User not found"})
	}
	if err != nil {
		return nil, false, internalError(c)
	}
	return target, true, nil
}
