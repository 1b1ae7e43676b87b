package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pllus/social-api/internal/handlers"
)

// Register mounts the API under /api.
func Register(app *fiber.App, d handlers.Deps) {
	api := app.Group("/api")

	api.Post("/register", handlers.Register(d))
	api.Post("/authenticate", handlers.Authenticate(d))
	api.Get("/user", handlers.Profile(d))

	api.Post("/follow/:id", handlers.Follow(d))
	api.Post("/unfollow/:id", handlers.Unfollow(d))

	api.Post("/posts", handlers.CreatePost(d))
	api.Delete("/posts/:id", handlers.DeletePost(d))
	api.Get("/posts/:id", handlers.GetPost(d))
	api.Get("/all_posts", handlers.AllPosts(d))

	api.Post("/like/:id", handlers.Like(d))
	api.Post("/unlike/:id", handlers.Unlike(d))
	api.Post("/comment/:id", handlers.Comment(d))
}
