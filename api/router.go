// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"campusfind/lostfound-api/db"
	"campusfind/lostfound-api/directory"
	"campusfind/lostfound-api/docdb"
	"campusfind/lostfound-api/mailer"
	"campusfind/lostfound-api/media"
	"campusfind/lostfound-api/middleware"
	"campusfind/lostfound-api/pkg/security"
	"campusfind/lostfound-api/signup"
	"campusfind/lostfound-api/store"
	"campusfind/lostfound-api/store/docstore"
	"campusfind/lostfound-api/store/mirror"
	"campusfind/lostfound-api/store/sqlstore"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

type API struct {
	Router *gin.Engine
	Stores *mirror.Factory
	Signup *signup.Flow
	Argon  *security.ArgonHash
	Media  media.Store
}

func NewRouter() (*API, error) {
	makeLogger()

	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize relational store, %w", err)
	}

	var (
		secondaryItems store.ItemStore
		secondaryUsers store.UserStore
	)

	if viper.GetBool("docstore.enabled") {
		rdb, err := docdb.New()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize document store, %w", err)
		}

		secondaryItems = docstore.NewItems(rdb)
		secondaryUsers = docstore.NewUsers(rdb)
	}

	cell := store.NewModeCell(
		viper.GetBool("storage.mirror"),
		viper.GetBool("storage.force_mirror"),
	)

	a := &API{
		Stores: mirror.NewFactory(mirror.FactoryOpts{
			PrimaryItems:   sqlstore.NewItems(conn),
			PrimaryUsers:   sqlstore.NewUsers(conn),
			SecondaryItems: secondaryItems,
			SecondaryUsers: secondaryUsers,
			Cell:           cell,
			Budget:         viper.GetDuration("storage.mirror_budget"),
		}),
		Argon: security.New(),
	}

	m, err := mailer.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mailer, %w", err)
	}

	a.Signup = signup.NewFlow(
		a.Stores,
		directory.NewClient(),
		m,
		signup.NewCodeStore(),
		signup.NewPendingStore(viper.GetDuration("signup.pending_ttl")),
		a.Argon,
	)

	a.Media, err = media.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media storage, %w", err)
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetInt64("userID"); v != 0 {
					fields = append(fields, zap.Int64("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	if local, ok := a.Media.(*media.Local); ok {
		router.Static("/uploads", local.Dir())
	}

	auth := middleware.NewAuthMiddleware(a.Stores)
	admin := middleware.NewAdminMiddleware()
	maxUploadSize := viper.GetInt64("upload.max_size")

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)
	}

	users := main.Group("/users", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/users 		-> Starts a signup attempt (directory lookup + code email)
		users.POST("", a.UserRegister)

		// POST /api/users/verify 	-> Confirms the emailed code and creates the account
		users.POST("/verify", a.UserVerify)

		// POST /api/users/login 	-> Logs in a user and sets the auth cookie
		users.POST("/login", a.UserLogin)

		// POST /api/users/logout 	-> Clears the auth cookie
		users.POST("/logout", a.UserLogout)

		// GET /api/users/me 		-> Returns the logged-in user
		users.GET("/me", auth, a.UserFetch)
	}

	items := main.Group("/items", auth)
	{
		// GET /api/items 		-> Lists all items
		items.GET("", cacheFor(15), a.ItemsAll)

		// GET /api/items/lost 		-> Lists lost items
		items.GET("/lost", cacheFor(15), a.ItemsLost)

		// GET /api/items/found 	-> Lists found items
		items.GET("/found", cacheFor(15), a.ItemsFound)

		// GET /api/items/:id 		-> Returns a single item
		items.GET("/:id", a.ItemFetch)

		// POST /api/items 		-> Creates an item and returns probable matches
		items.POST("", middleware.BodySizeLimiter(maxUploadSize), a.ItemCreate)
	}

	adminGroup := main.Group("/admin", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/admin/login 	-> Starts an admin session
		adminGroup.POST("/login", a.AdminLogin)

		// POST /api/admin/logout 	-> Ends the admin session
		adminGroup.POST("/logout", a.AdminLogout)

		// GET /api/admin/users 	-> Lists all users
		adminGroup.GET("/users", admin, a.AdminUsers)

		// DELETE /api/admin/users/:studentID -> Deletes a user
		adminGroup.DELETE("/users/:studentID", admin, a.AdminDeleteUser)

		// GET /api/admin/items 	-> Lists all items
		adminGroup.GET("/items", admin, a.AdminItems)

		// DELETE /api/admin/items/:id 	-> Deletes an item
		adminGroup.DELETE("/items/:id", admin, a.AdminDeleteItem)

		// GET /api/admin/mode 		-> Reports the current storage mode
		adminGroup.GET("/mode", admin, a.AdminMode)

		// POST /api/admin/mode 	-> Toggles write mirroring
		adminGroup.POST("/mode", admin, a.AdminSwitchMode)
	}

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
