package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/yizeng/gab/gin/gorm/party-venue/docs"
	v1 "github.com/yizeng/gab/gin/gorm/party-venue/internal/api/handler/v1"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/api/middleware"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/config"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/presentation"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/repository"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/service"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/timezone"
)

// Storage is the pair of DAOs backing the API, from whichever driver is configured.
type Storage struct {
	Celebrants repository.CelebrantDAO
	Bookings   repository.BookingDAO
}

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, storage Storage) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	celebrantSvc := service.NewCelebrantService(repository.NewCelebrantRepository(storage.Celebrants))
	bookingSvc := service.NewBookingService(repository.NewBookingRepository(storage.Bookings), repository.NewCelebrantRepository(storage.Celebrants))
	viewSvc := service.NewViewService(celebrantSvc, bookingSvc, presentation.NewMapper(conf.Venue.Timezone))

	s.MountHandlers(
		v1.NewCelebrantHandler(celebrantSvc),
		v1.NewBookingHandler(bookingSvc, timezone.Location(conf.Venue.Timezone)),
		v1.NewViewHandler(viewSvc),
	)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(celebrantHandler *v1.CelebrantHandler, bookingHandler *v1.BookingHandler, viewHandler *v1.ViewHandler) {
	celebrants := s.Router.Group("/Celebrants")
	{
		celebrants.GET("", celebrantHandler.HandleListCelebrants)
		celebrants.GET("/:code", celebrantHandler.HandleGetCelebrant)
		celebrants.POST("", celebrantHandler.HandleCreateCelebrant)
		celebrants.PUT("/:code", celebrantHandler.HandleUpdateCelebrant)
		celebrants.DELETE("/:code", celebrantHandler.HandleDeleteCelebrant)
	}

	bookings := s.Router.Group("/Bookings")
	{
		bookings.GET("", bookingHandler.HandleListBookings)
		bookings.GET("/:code", bookingHandler.HandleGetBooking)
		bookings.POST("", bookingHandler.HandleCreateBooking)
		bookings.PUT("/:code", bookingHandler.HandleUpdateBooking)
		bookings.DELETE("/:code", bookingHandler.HandleDeleteBooking)
	}

	views := s.Router.Group("/views")
	{
		views.GET("/celebrants", viewHandler.HandleListProfiles)
		views.GET("/celebrants/:code", viewHandler.HandleGetProfile)
		views.POST("/celebrants", viewHandler.HandleCreateProfile)
		views.PUT("/celebrants/:code", viewHandler.HandleUpdateProfile)
		views.GET("/bookings", viewHandler.HandleListEvents)
		views.GET("/bookings/:code", viewHandler.HandleGetEvent)
		views.POST("/bookings", viewHandler.HandleCreateEvent)
		views.PUT("/bookings/:code", viewHandler.HandleUpdateEvent)
		views.GET("/dashboard", viewHandler.HandleDashboard)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Party venue booking API"
	docs.SwaggerInfo.Description = "Celebrants, their birthday party bookings and the booking UI views."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
