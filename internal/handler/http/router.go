package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/handler/http/middleware"
	"github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase"
	usecasecontract "github.com/Faradar/Entrega-Final-Backend-Tomas-Echeveste-Arteaga/internal/usecase/contract"
)

// Router wires the handlers onto the gate-classified route surface.
type Router struct {
	userHandler    *UserHandler
	authHandler    *AuthHandler
	productHandler *ProductHandler
	cartHandler    *CartHandler
	chatHandler    *ChatHandler
	jwtService     usecase.JWTService
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	productUsecase *usecase.ProductUsecase,
	cartUsecase *usecase.CartUsecase,
	chatUsecase *usecase.ChatUsecase,
	jwtService usecase.JWTService,
	config usecasecontract.IConfigProvider,
) *Router {
	return &Router{
		userHandler:    NewUserHandler(userUsecase),
		authHandler:    NewAuthHandler(userUsecase, config.GetAppBaseURL()),
		productHandler: NewProductHandler(productUsecase),
		cartHandler:    NewCartHandler(cartUsecase),
		chatHandler:    NewChatHandler(chatUsecase),
		jwtService:     jwtService,
	}
}

// SetupRoutes mounts every route. The classifier chain per route follows the
// account route table: anonymous-only flows, authenticated flows and
// admin-only flows short-circuit before any handler runs.
func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.Use(middleware.Metrics())
	router.Use(middleware.Attach(r.jwtService))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Account routes: the classifier chain mirrors the storefront's user
	// router ordering.
	router.POST("/register", middleware.RequireAnonymous(), r.userHandler.Register)
	router.POST("/login", middleware.RequireAnonymous(), r.userHandler.Login)
	router.POST("/logout", middleware.RequireAuthenticated(), r.userHandler.Logout)

	router.GET("/github", middleware.RequireAnonymous(), r.authHandler.HandleGitHubLogin)
	router.GET("/github/callback", middleware.RequireAnonymous(), r.authHandler.HandleGitHubCallback)
	router.GET("/google", middleware.RequireAnonymous(), r.authHandler.HandleGoogleLogin)
	router.GET("/oauth2/redirect/accounts.google.com", middleware.RequireAnonymous(), r.authHandler.HandleGoogleCallback)

	router.GET("/currentUser", middleware.RequireAuthenticated(), r.userHandler.CurrentUser)
	router.GET("/users", middleware.RequireAdmin(), r.userHandler.GetAllUsers)

	router.POST("/resetPassword", r.userHandler.ResetPassword)
	router.PUT("/newPassword", r.userHandler.NewPassword)
	router.POST("/refreshToken", r.userHandler.RefreshToken)

	router.PUT("/premium/:uid", middleware.RequireAdmin(), r.userHandler.TogglePremium)
	router.DELETE("/deleteInactive", middleware.RequireAdmin(), r.userHandler.DeleteInactive)
	router.DELETE("/deleteUser/:uid", middleware.RequireAdmin(), r.userHandler.DeleteUser)

	// Catalog routes: reads are public, writes are admin-only.
	products := router.Group("/api/products")
	{
		products.GET("", r.productHandler.GetAllProducts)
		products.GET("/:pid", r.productHandler.GetProduct)
		products.POST("", middleware.RequireAdmin(), r.productHandler.CreateProduct)
		products.PUT("/:pid", middleware.RequireAdmin(), r.productHandler.UpdateProduct)
		products.DELETE("/:pid", middleware.RequireAdmin(), r.productHandler.DeleteProduct)
	}

	carts := router.Group("/api/carts")
	carts.Use(middleware.RequireAuthenticated())
	{
		carts.POST("", r.cartHandler.CreateCart)
		carts.GET("/:cid", r.cartHandler.GetCart)
		carts.POST("/:cid/products/:pid", r.cartHandler.AddProduct)
		carts.DELETE("/:cid/products/:pid", r.cartHandler.RemoveProduct)
		carts.DELETE("/:cid", r.cartHandler.DeleteCart)
	}

	chat := router.Group("/api/chat")
	chat.Use(middleware.RequireAuthenticated())
	{
		chat.GET("", r.chatHandler.GetHistory)
		chat.POST("", r.chatHandler.PostMessage)
	}
}
