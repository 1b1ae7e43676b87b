package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/pllus/social-api/internal/dto"
	"github.com/pllus/social-api/internal/model"
	"github.com/pllus/social-api/internal/repository"
)

// CreatePost persists a new post and appends its id to the caller's post
// list. Two writes, not atomic; a failure in between leaves the post
// unreferenced on the author document.
// @Summary      Create post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePostRequest  true  "token, title, desc"
// @Success      200  {object}  dto.CreatePostResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/posts [post]
func CreatePost(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.CreatePostRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		if req.Token == "" {
			return unauthorized(c)
		}
		if req.Title == "" || req.Desc == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Please enter all fields"})
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		caller, ok, resp := d.resolveCaller(c, ctx, req.Token)
		if !ok {
			return resp
		}

		post := &model.Post{
			Title:     req.Title,
			Desc:      req.Desc,
			Author:    caller.ID,
			CreatedAt: time.Now().UTC(),
			Likes:     []bson.ObjectID{},
			Comments:  []bson.ObjectID{},
		}
		id, err := d.Posts.Create(ctx, post)
		if err != nil {
			return internalError(c)
		}

		caller.Posts = append(caller.Posts, id)
		if err := d.Users.Update(ctx, caller); err != nil {
			return internalError(c)
		}

		return c.JSON(dto.CreatePostResponse{
			PostID:    id.Hex(),
			Title:     post.Title,
			Desc:      post.Desc,
			CreatedAt: post.CreatedAt.Format(createdAtLayout),
		})
	}
}

// DeletePost removes the post document if the caller authored it. Comments
// and the author's post list are left untouched, matching the upstream
// contract.
func DeletePost(d Deps) fiber.Handler {
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

		if post.Author != caller.ID {
			return unauthorized(c)
		}

		if err := d.Posts.Delete(ctx, post.ID); err != nil {
			return internalError(c)
		}
		return c.SendString("Post deleted successfully")
	}
}

// GetPost returns one post with the author's name, like count and the
// ordered comment bodies.
// @Summary      Read post
// @Tags         posts
// @Produce      json
// @Param        id  path  string  true  "post id"
// @Param        Authorization  header  string  true  "Bearer token"
// @Success      200  {object}  dto.PostResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/posts/{id} [get]
func GetPost(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx(c)
		defer cancel()

		if _, ok, resp := d.resolveBearer(c, ctx); !ok {
			return resp
		}

		post, ok, resp := d.targetPost(c, ctx, c.Params("id"))
		if !ok {
			return resp
		}

		author, err := d.Users.ByID(ctx, post.Author)
		if err != nil {
			return internalError(c)
		}
		body, err := d.expandPost(ctx, post)
		if err != nil {
			return internalError(c)
		}
		body.Author = author.Name
		return c.JSON(body)
	}
}

// AllPosts returns every post authored by the caller, newest first.
// Unpaginated by contract.
func AllPosts(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx(c)
		defer cancel()

		caller, ok, resp := d.resolveBearer(c, ctx)
		if !ok {
			return resp
		}

		posts, err := d.Posts.ByAuthor(ctx, caller.ID)
		if err != nil {
			return internalError(c)
		}

		list := make([]dto.PostResponse, 0, len(posts))
		for i := range posts {
			body, err := d.expandPost(ctx, &posts[i])
			if err != nil {
				return internalError(c)
			}
			list = append(list, body)
		}
		return c.JSON(list)
	}
}

// expandPost builds the wire shape of a post, fetching its comments; one
// lookup per post, as upstream.
func (d Deps) expandPost(ctx context.Context, post *model.Post) (dto.PostResponse, error) {
	comments, err := d.Comments.ByPost(ctx, post.ID)
	if err != nil {
		return dto.PostResponse{}, err
	}
	texts := make([]string, 0, len(comments))
	for _, cm := range comments {
		texts = append(texts, cm.Comment)
	}
	return dto.PostResponse{
		PostID:    post.ID.Hex(),
		Title:     post.Title,
		Desc:      post.Desc,
		CreatedAt: post.CreatedAt.UTC().Format(createdAtLayout),
		Likes:     len(post.Likes),
		Comments:  texts,
	}, nil
}

func (d Deps) targetPost(c *fiber.Ctx, ctx context.Context, hex string) (*model.Post, bool, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return nil, false, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Post not found"})
	}
	post, err := d.Posts.ByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, false, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Post not found"})
	}
	if err != nil {
		return nil, false, internalError(c)
	}
	return post, true, nil
}
