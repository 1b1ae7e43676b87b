package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pllus/social-api/internal/dto"
	"github.com/pllus/social-api/internal/model"
)

// Comment creates a comment on a post and appends its id to the post's
// comment list. Whitespace-only text counts as missing.
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "post id"
// @Param        body  body  dto.CommentRequest  true  "token, comment"
// @Success      200  {object}  dto.CommentCreatedResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/comment/{id} [post]
func Comment(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.CommentRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		if req.Token == "" {
			return unauthorized(c)
		}
		if strings.TrimSpace(req.Comment) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Please enter all fields"})
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

		comment := &model.Comment{
			Comment:   req.Comment,
			Author:    caller.ID,
			Post:      post.ID,
			CreatedAt: time.Now().UTC(),
		}
		id, err := d.Comments.Create(ctx, comment)
		if err != nil {
			return internalError(c)
		}

		post.Comments = append(post.Comments, id)
		if err := d.Posts.Update(ctx, post); err != nil {
			return internalError(c)
		}

		return c.JSON(dto.CommentCreatedResponse{CommentID: id.Hex()})
	}
}
