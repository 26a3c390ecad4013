package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Deshan005/AdvancedServerSideCW2/internal/repository"
	mysqlRepo "github.com/Deshan005/AdvancedServerSideCW2/internal/repository/mysql"
	redisCache "github.com/Deshan005/AdvancedServerSideCW2/internal/repository/redis"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/workers"

	"github.com/Deshan005/AdvancedServerSideCW2/internal/rest"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/rest/middleware"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/usecase/blog"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/usecase/comment"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/usecase/follow"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/usecase/reaction"
	"github.com/Deshan005/AdvancedServerSideCW2/internal/usecase/user"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	defaultUploadDir   = "./uploads"
	defaultMaxOpen     = 25
	defaultMaxIdle     = 5
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func intEnv(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		log.Printf("failed to parse %s, using default %d", key, fallback)
		return fallback
	}
	return v
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < dbMaxRetry; i++ {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			var conn *sql.DB
			conn, err = db.DB()
			if err == nil {
				err = conn.Ping()
				if err == nil {
					break
				}
				log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				_ = conn.Close()
			} else {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			}
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	// pool policy is explicit; every repository shares this handle
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("got error when getting sql.DB from gorm.DB", err)
	}
	sqlDB.SetMaxOpenConns(intEnv("DB_MAX_OPEN_CONNS", defaultMaxOpen))
	sqlDB.SetMaxIdleConns(intEnv("DB_MAX_IDLE_CONNS", defaultMaxIdle))
	sqlDB.SetConnMaxLifetime(time.Hour)

	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDB := intEnv("CACHE_DB", defaultCacheDB)
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	if _, err = client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	rest.RegisterValidations()
	route := gin.Default()
	route.Use(middleware.CORS())
	timeout := intEnv("CONTEXT_TIMEOUT", defaultTimeout)
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = defaultUploadDir
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatal("failed to create upload dir: ", err)
	}
	route.Static("/uploads", uploadDir)

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	followRepo := mysqlRepo.NewFollowRepository(db)
	reactionRepo := mysqlRepo.NewReactionRepository(db)

	// Blog goes through three layers: mysql, cache, and the coordination
	// repository combining the two
	blogDBRepo := mysqlRepo.NewBlogRepository(db)
	blogCache := redisCache.NewBlogCache(client)
	blogRepo := repository.NewBlogRepository(blogDBRepo, blogCache)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	countsSyncer := workers.NewSyncCountsWorker(reactionRepo, blogCache)
	go countsSyncer.Start(ctx)

	// Build service layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtTTL := intEnv("JWT_EXPIRE_HOURS", 24)

	blogSvc := blog.NewService(blogRepo, userRepo)
	followSvc := follow.NewService(followRepo, userRepo)
	reactionSvc := reaction.NewService(reactionRepo, blogRepo, blogCache, countsSyncer)
	commentSvc := comment.NewService(reactionRepo, blogRepo, userRepo)
	userSvc := user.NewService(userRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)

	blogHandler := rest.NewBlogHandler(blogSvc, uploadDir)
	followHandler := rest.NewFollowHandler(followSvc)
	reactionHandler := rest.NewReactionHandler(reactionSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	userHandler := rest.NewUserHandler(userSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// Register routes
	route.POST("/auth/register", userHandler.Register)
	route.POST("/auth/login", userHandler.Login)

	route.GET("/blogs", blogHandler.FetchBlogs)
	route.GET("/blogs/:id", blogHandler.GetByID)
	route.GET("/blogs/:id/comments", commentHandler.FetchCommentsByBlog)
	route.GET("/blogs/:id/reactions", reactionHandler.Counts)

	route.GET("/users/:email", userHandler.GetProfile)
	route.GET("/users/:email/following", followHandler.ListFollowing)
	route.GET("/users/:email/followers", followHandler.ListFollowers)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/blogs", blogHandler.Store)
		authorized.PUT("/blogs/:id", blogHandler.Update)
		authorized.DELETE("/blogs/:id", blogHandler.Delete)
		authorized.POST("/blogs/:id/reactions", reactionHandler.React)
		authorized.GET("/blogs/:id/reactions/me", reactionHandler.MyReaction)
		authorized.POST("/blogs/:id/comments", commentHandler.CreateComment)
		authorized.GET("/feed", blogHandler.FollowingFeed)
		authorized.POST("/users/:email/follow", followHandler.Follow)
		authorized.DELETE("/users/:email/follow", followHandler.Unfollow)
		authorized.GET("/users/:email/follow", followHandler.IsFollowing)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
