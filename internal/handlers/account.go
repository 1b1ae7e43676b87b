package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/pllus/social-api/internal/dto"
	"github.com/pllus/social-api/internal/model"
	"github.com/pllus/social-api/internal/repository"
)

// Register creates a new account.
// @Summary      Register
// @Description  Creates a user with a bcrypt-hashed password and empty social sets
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "new account"
// @Success      201  {string}  string  "User created successfully"
// @Failure      400  {object}  dto.MessageResponse
// @Router       /api/register [post]
func Register(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		if req.Name == "" || req.Email == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Please enter all fields"})
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		_, err := d.Users.ByEmail(ctx, req.Email)
		if err == nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "User already exists"})
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return internalError(c)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), d.BcryptCost)
		if err != nil {
			return internalError(c)
		}

		user := &model.User{
			Name:      req.Name,
			Email:     req.Email,
			Password:  string(hash),
			Posts:     []bson.ObjectID{},
			Followers: []bson.ObjectID{},
			Following: []bson.ObjectID{},
		}
		if _, err := d.Users.Create(ctx, user); err != nil {
			return internalError(c)
		}
		return c.Status(fiber.StatusCreated).SendString("User created successfully")
	}
}

// Authenticate checks credentials and issues a token.
// @Summary      Authenticate
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AuthenticateRequest  true  "credentials"
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/authenticate [post]
func Authenticate(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.AuthenticateRequest
		if err := c.BodyParser(&req); err != nil {
			return invalidBody(c)
		}
		if req.Email == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Please enter all fields"})
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		user, err := d.Users.ByEmail(ctx, req.Email)
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "User not found"})
		}
		if err != nil {
			return internalError(c)
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Invalid credentials"})
		}

		token, err := d.Gate.Issue(user.ID.Hex())
		if err != nil {
			return internalError(c)
		}
		return c.JSON(dto.TokenResponse{Token: token})
	}
}

// Profile returns the caller's name and follower/following counts.
//
// Note the status quirk inherited from the original contract: an invalid
// token or a vanished user both answer 500 here, not 401.
// @Summary      Profile
// @Tags         account
// @Produce      json
// @Param        Authorization  header  string  true  "Bearer token"
// @Success      200  {object}  dto.ProfileResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/user [get]
func Profile(d Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return unauthorized(c)
		}

		ctx, cancel := requestCtx(c)
		defer cancel()

		uid, err := d.Gate.Verify(token)
		if err != nil {
			return internalError(c)
		}
		oid, err := bson.ObjectIDFromHex(uid)
		if err != nil {
			return internalError(c)
		}
		user, err := d.Users.ByID(ctx, oid)
		if err != nil {
			return internalError(c)
		}

		return c.JSON(dto.ProfileResponse{
			Name:          user.Name,
			NoOfFollowers: len(user.Followers),
			NoOfFollowing: len(user.Following),
		})
	}
}
