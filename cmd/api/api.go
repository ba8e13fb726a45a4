package api

import (
	"context"
	"net/http"
	"os"

	accountHandlers "github.com/vinoterra/winery-registry/account/handlers"
	adminHandlers "github.com/vinoterra/winery-registry/admintools/handlers"
	"github.com/vinoterra/winery-registry/framework/connection"
	"github.com/vinoterra/winery-registry/framework/mid"
	"github.com/vinoterra/winery-registry/framework/web"
	"github.com/vinoterra/winery-registry/logger"
	mailHandlers "github.com/vinoterra/winery-registry/mailer/handlers"
	notificationHandlers "github.com/vinoterra/winery-registry/notification/handlers"
	taxonomyHandlers "github.com/vinoterra/winery-registry/taxonomy/handlers"
	wineryHandlers "github.com/vinoterra/winery-registry/winery/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	backgroundContext := context.Background()

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	account := accountHandlers.NewAccount(loggerProvider, a.conn)
	winery := wineryHandlers.NewWinery(loggerProvider, a.conn)
	taxonomy := taxonomyHandlers.NewTaxonomy(loggerProvider, a.conn)
	notification := notificationHandlers.NewNotification(loggerProvider, a.conn)
	adminTools := adminHandlers.NewAdminTools(loggerProvider, a.conn)
	email := mailHandlers.NewEmail(backgroundContext, loggerProvider)

	app.Get("/health", healthCheck)

	// ACCOUNT LIFECYCLE EVENTS
	eventsGroup := web.NewGroup(app, "/events",
		mid.ServiceAccount(a.conn),
	)
	{
		eventsGroup.Post("/auth", account.HandleAuthEvent)
	}

	// AUTHENTICATED API
	apiGroup := web.NewGroup(app, "/api/v1",
		mid.AuthRequired(a.conn),
	)
	{
		usersGroup := apiGroup.NewSubgroup("/users")
		{
			usersGroup.Post("", account.CreateNewUser)
			usersGroup.Get("", account.ListAllUsers)
			usersGroup.Get("/admin", account.IsUserAdmin)
			usersGroup.Post("/:uid/disable", account.DisableUser)
			usersGroup.Delete("/:uid", account.DeleteUser)
			usersGroup.Patch("/:uid/password", account.UpdateUserPassword)
			usersGroup.Get("/:uid/tier", winery.GetUserTierAndLevel)
			usersGroup.Put("/:uid/tier", winery.UpdateUserTierAndLevel)
			usersGroup.Get("/:uid/winery-name", winery.GetWineryName)
		}

		wineriesGroup := apiGroup.NewSubgroup("/wineries")
		{
			wineriesGroup.Patch("/:uid/general-info", winery.RegisterGeneralInfo)
			wineriesGroup.Post("/fields", winery.CreateField)
			wineriesGroup.Get("/total-income", winery.GetTotalIncome)
		}

		taxonomiesGroup := apiGroup.NewSubgroup("/taxonomies")
		{
			taxonomiesGroup.Get("/level-map", taxonomy.GetLevelMap)
			taxonomiesGroup.Put("/level-map", taxonomy.SetLevelMap)
			taxonomiesGroup.Get("/:key", taxonomy.GetList)
			taxonomiesGroup.Put("/:key", taxonomy.SetList)
		}

		notificationsGroup := apiGroup.NewSubgroup("/notifications")
		{
			notificationsGroup.Post("", notification.CreateNotification)
			notificationsGroup.Delete("", notification.DeleteNotification)
		}

		adminGroup := apiGroup.NewSubgroup("/admin")
		{
			adminGroup.Post("/replace-field", adminTools.ReplaceDbFieldName)
		}

		filesGroup := apiGroup.NewSubgroup("/files")
		{
			filesGroup.Get("/download-url", adminTools.GetFileDownloadURLByPath)
		}

		apiGroup.Post("/email", email.SendEmail)
	}

	return app
}
