package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pllus/social-api/internal/dto"
)

// Like adds the caller to the post's liker set.
func Like(d Deps) fiber.Handler {
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

		post, ok, resp := d.targetPost(c, ctx, c.Params("id"))
		if !ok {
			return resp
		}

		if containsID(post.Likes, caller.ID) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Already liked"})
		}

		post.Likes = append(post.Likes, caller.ID)
		if err := d.Posts.Update(ctx, post); err != nil {
			return internalError(c)
		}
		return c.SendString("Post liked successfully")
	}
}

// Unlike removes the caller from the post's liker set.
func Unlike(d Deps) fiber.Handler {
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

		post, ok, resp := d.targetPost(c, ctx, c.Params("id"))
		if !ok {
			return resp
		}

		if !containsID(post.Likes, caller.ID) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Not liked"})
		}

		post.Likes = removeID(post.Likes, caller.ID)
		if err := d.Posts.Update(ctx, post); err != nil {
			return internalError(c)
		}
		return c.SendString("Post unliked successfully")
	}
}
