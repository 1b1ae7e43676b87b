// @title        Social API
// @version      1.0
// @description  Minimal social-networking backend: accounts, follows, posts, likes, comments.
// @BasePath     /api

package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	_ "github.com/pllus/social-api/docs"

	"github.com/pllus/social-api/internal/auth"
	"github.com/pllus/social-api/internal/config"
	"github.com/pllus/social-api/internal/database"
	"github.com/pllus/social-api/internal/handlers"
	"github.com/pllus/social-api/internal/repository"
	"github.com/pllus/social-api/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client, err := database.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Disconnect(client)
	db := client.Database(cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, handlers.Deps{
		Gate:       auth.New(cfg.JWTSecret),
		Users:      repository.NewUsers(db),
		Posts:      repository.NewPosts(db),
		Comments:   repository.NewComments(db),
		BcryptCost: cfg.BcryptCost,
	})

	log.Printf("server started on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
