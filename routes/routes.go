package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lolbd307-png/osamendibet25bd/config"
	"github.com/lolbd307-png/osamendibet25bd/controllers/bet"
	"github.com/lolbd307-png/osamendibet25bd/controllers/user"
	"github.com/lolbd307-png/osamendibet25bd/middlewares"
)

func Setup(app *fiber.App, cfg *config.Config) {
	app.Post("/auth/register", user.Register(cfg))
	app.Post("/auth/login", user.Login(cfg))

	api := app.Group("/api", middlewares.UserAuth(cfg))
	api.Post("/place-bet", bet.PlaceBet)
	api.Get("/profile", user.GetProfile)
	api.Get("/history", user.GetBetHistory)
	api.Post("/deposit", user.Deposit)
	api.Post("/withdraw", user.Withdraw)
}
