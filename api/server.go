package api

import (
	"fmt"
	"net/http"

	"github.com/MintVerse/MintVerse-Gateway/models"
	"github.com/MintVerse/MintVerse-Gateway/providers"
	"github.com/MintVerse/MintVerse-Gateway/providers/authapi"
	"github.com/MintVerse/MintVerse-Gateway/providers/datastore"
	"github.com/MintVerse/MintVerse-Gateway/services/cache"
	"github.com/MintVerse/MintVerse-Gateway/services/monitoring/logging"
	"github.com/MintVerse/MintVerse-Gateway/utils"
	"github.com/gin-gonic/gin"
)

// / If there's a better place to access this
// / TODO, I feel the config should be the one accessible like this
var TokenController *utils.TokenVerifier

type Server struct {
	router    *gin.Engine
	store     *datastore.Client
	auth      *authapi.Client
	config    *utils.Config
	logger    *logging.Logger
	cache     *cache.Cache
	providers *providers.ProviderService
}

func NewServer(envPath string) *Server {
	c, err := utils.LoadConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	store := datastore.NewDataStoreClient()
	auth := authapi.NewAuthClient()
	g := gin.Default()
	l := logging.NewLogger()

	ps := providers.NewProviderService()
	ps.AddProvider(store)
	ps.AddProvider(auth)

	g.Use(CORSMiddleware())
	g.Use(l.LoggingMiddleWare())

	TokenController = utils.NewTokenVerifier(c)

	return &Server{
		router:    g,
		store:     store,
		auth:      auth,
		config:    c,
		logger:    l,
		cache:     cache.NewCache(),
		providers: ps,
	}
}

func (s *Server) Start() {

	dr := models.SuccessResponse{
		Status:  "success",
		Message: "Welcome to MintVerse!",
		Version: utils.REVISION,
	}

	s.router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dr)
	})

	s.router.GET("/health", func(ctx *gin.Context) {
		status := gin.H{}
		for _, name := range []string{providers.DataStore, providers.AuthAPI} {
			_, registered := s.providers.GetProvider(name)
			status[name] = registered
		}
		ctx.JSON(http.StatusOK, models.NewSuccess("Service Health", status))
	})

	/// Register Object Routers Below
	Profile{}.router(s)
	Wallet{}.router(s)
	NFT{}.router(s)

	s.router.Run(fmt.Sprintf(":%v", s.config.ServerPort))
}
