// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"starhub/internal/server/adapters/http/dto"
	"starhub/internal/server/adapters/http/handlers"
	"starhub/internal/server/adapters/http/middleware"
	"starhub/internal/server/ports/api"
	"starhub/internal/server/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
// Пары метод/путь - внешний контракт и сохраняются без префиксов версий.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	catalogUseCase api.CatalogUseCase,
	favoritesUseCase api.FavoritesUseCase,
	tokenSvc services.TokenService,
) {
	authHandler := handlers.NewAuthHandler(authUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesUseCase)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	requireAuth := middleware.NewAuthMiddleware(tokenSvc)

	// Публичные маршруты.
	app.Post("/login", authHandler.Login)

	// Защищенные маршруты пользователя регистрируются до "/user/:id",
	// чтобы "/user/favorites" не разбирался как параметр id.
	app.Get("/user/favorites", favoritesHandler.List, requireAuth)
	app.Get("/user/favorites/planets", favoritesHandler.ListPlanets, requireAuth)
	app.Get("/user/favorites/people", favoritesHandler.ListPeople, requireAuth)

	app.Get("/user", catalogHandler.ListUsers)
	app.Get("/user/:id", catalogHandler.GetUser)
	app.Get("/current-user", authHandler.CurrentUser, requireAuth)

	// Каталог (публичный).
	app.Get("/planet", catalogHandler.ListPlanets)
	app.Get("/planet/:id", catalogHandler.GetPlanet)
	app.Get("/people", catalogHandler.ListPeople)
	app.Get("/people/:id", catalogHandler.GetPeople)
	app.Delete("/people/:id", catalogHandler.DeletePeople)

	// Мутации избранного (требуют авторизации).
	app.Post("/favorite/planet/:id", favoritesHandler.AddPlanet, requireAuth)
	app.Delete("/favorite/planet/:id", favoritesHandler.RemovePlanet, requireAuth)
	app.Post("/favorite/people/:id", favoritesHandler.AddPeople, requireAuth)
	app.Delete("/favorite/people/:id", favoritesHandler.RemovePeople, requireAuth)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{
			Message: "Route not found",
		})
	})
}
