package server

import (
	"MedSyncAI/internal/auth"
	"MedSyncAI/internal/config"
	"MedSyncAI/internal/handler"
	"MedSyncAI/internal/logging"
	"MedSyncAI/internal/middleware"
	"MedSyncAI/internal/routes"
	"MedSyncAI/internal/session"
	"MedSyncAI/internal/view"

	_ "MedSyncAI/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Deps struct {
	Config   *config.Config
	Table    *routes.Table
	Registry *session.Registry
	Service  *auth.Service
}

// NewRouter wires every endpoint. Page paths are not registered with gin;
// they fall through to NoRoute and are resolved by the route table.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	// exact path matching only
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.Use(gin.Recovery(), logging.Middleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Invite-Code")
	router.Use(cors.New(corsConfig))

	router.SetHTMLTemplate(view.MustTemplates())

	cookies := middleware.CookieOptions{Secure: d.Config.CookieSecure, TokenTTL: d.Config.TokenTTL}
	h := handler.New(d.Table, d.Service, handler.Options{
		Cookies:    cookies,
		InviteCode: d.Config.InviteCode,
	})

	browser := middleware.BrowserSession(d.Registry, cookies)
	limiter := middleware.RateLimit(d.Config.RatePerMinute, d.Config.RateBurst)
	invite := middleware.InviteCodeMiddleware(d.Config.InviteCode)

	router.POST("/signup", limiter, browser, h.SignUpForm)
	router.POST("/signin", limiter, browser, h.SignInForm)
	router.POST("/signout", browser, h.SignOut)

	api := router.Group("/api")
	{
		api.POST("/auth/signup", limiter, invite, h.APISignup)
		api.POST("/auth/signin", limiter, h.APISignin)
		api.GET("/routes", h.Routes)
		api.GET("/session", browser, h.SessionState)
	}
	protected := router.Group("/api").Use(middleware.AuthMiddleware(d.Service))
	{
		protected.GET("/profile", h.Profile)
		protected.POST("/auth/signout", h.APISignout)
	}

	router.GET("/ws/session", browser, h.SessionEvents)
	router.GET("/ws/assistant", browser, h.Assistant)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(browser, h.Dispatch)
	return router
}
