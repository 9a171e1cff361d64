package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/sharecare/share-care-api/external/identity"
	"github.com/sharecare/share-care-api/logmodule"
	"github.com/sharecare/share-care-api/store"
)

const (
	defaultAuthTimeout = 5 * time.Second
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.ShareCareCore

	// Identity provider for bearer tokens
	verifier    identity.Verifier
	authTimeout time.Duration

	// require an owner on listing and request mutations
	protectMutations bool
}

// NewServer new instance of server
func NewServer(core store.ShareCareCore, verifier identity.Verifier) *Server {
	return &Server{
		store:            core,
		verifier:         verifier,
		authTimeout:      viper.GetDuration("auth.timeout"),
		protectMutations: viper.GetBool("auth.protect_mutations"),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", logmodule.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", logmodule.RequestIDHeader},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(logmodule.Ginrus("API"))

	r.GET("/", s.root)
	r.GET("/healthz", s.healthz)

	r.GET("/foods", s.availableFoods)
	r.GET("/sortByExpireDate", s.foodsByExpireDate)
	r.GET("/featuredFood", s.featuredFoods)
	r.GET("/foodRequest/:id", s.listFoodRequests)

	r.GET("/myAddedFoods", s.authMiddleware(), s.ownerQueryMiddleware(), s.myAddedFoods)
	r.GET("/foods/:id", s.authMiddleware(), s.getFood)

	mutationRoute := r.Group("")
	if s.protectMutations {
		mutationRoute.Use(s.authMiddleware())
	}
	{
		mutationRoute.POST("/foods", s.createFood)
		mutationRoute.PATCH("/foods/:id", s.updateFood)
		mutationRoute.DELETE("/foods/:id", s.deleteFood)
		mutationRoute.POST("/foodRequest", s.createFoodRequest)
	}

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, store.ErrFoodNotFound):
		abortWithEncoding(c, http.StatusNotFound, errorFoodNotFound)
	case errors.Is(err, store.ErrStoreUnavailable):
		log.WithError(err).Error("store unavailable")
		captureException(c, err)
		abortWithEncoding(c, http.StatusServiceUnavailable, errorStoreUnavailable, err)
	default:
		log.Error(err)
		captureException(c, err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
	return true
}

func captureException(c *gin.Context, err error) {
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
}

func (s *Server) root(c *gin.Context) {
	c.String(http.StatusOK, "Share & Care!")
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
