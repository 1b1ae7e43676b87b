// Package handlers implements the route handlers of the social API.
//
// Token transport differs per route on purpose: mutating routes read the
// token from the JSON body, read routes from the Authorization header.
// Clients depend on that split, so it is preserved here.
package handlers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/pllus/social-api/internal/auth"
	"github.com/pllus/social-api/internal/dto"
	"github.com/pllus/social-api/internal/model"
	"github.com/pllus/social-api/internal/repository"
)

// Deps carries everything a handler needs. Built once in cmd/server.
type Deps struct {
	Gate       *auth.Gate
	Users      repository.UserStore
	Posts      repository.PostStore
	Comments   repository.CommentStore
	BcryptCost int
}

const dbTimeout = 5 * time.Second

// createdAtLayout matches JavaScript's Date.toUTCString output, which the
// original contract exposes; format UTC times only.
const createdAtLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

func requestCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), dbTimeout)
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal server error"})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid body"})
}

// bearerToken pulls the token out of the Authorization header. ok is false
// when the header is absent or not a bearer scheme.
func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get("Authorization")
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[len("bearer "):])
	return token, token != ""
}

// resolveCaller verifies a body-transported token and loads the caller's
// user record. On failure it writes the response and returns it as the
// error, so handlers can bail with a plain return. Status mapping follows
// the upstream contract: absent token is 401, a token that fails
// verification is the undifferentiated 500, and a token whose user no
// longer exists is 404.
func (d Deps) resolveCaller(c *fiber.Ctx, ctx context.Context, token string) (*model.User, bool, error) {
	if token == "" {
		return nil, false, unauthorized(c)
	}
	return d.lookupCaller(c, ctx, token)
}

// resolveBearer is resolveCaller for header-transported tokens.
func (d Deps) resolveBearer(c *fiber.Ctx, ctx context.Context) (*model.User, bool, error) {
	token, ok := bearerToken(c)
	if !ok {
		return nil, false, unauthorized(c)
	}
	return d.lookupCaller(c, ctx, token)
}

func (d Deps) lookupCaller(c *fiber.Ctx, ctx context.Context, token string) (*model.User, bool, error) {
	uid, err := d.Gate.Verify(token)
	if err != nil {
		return nil, false, internalError(c)
	}
	oid, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return nil, false, internalError(c)
	}
	user, err := d.Users.ByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, false, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}
	if err != nil {
		return nil, false, internalError(c)
	}
	return user, true, nil
}

func containsID(ids []bson.ObjectID, id bson.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []bson.ObjectID, id bson.ObjectID) []bson.ObjectID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
