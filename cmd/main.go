package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/milicamilutinovic/naprednebaze/config"
	"github.com/milicamilutinovic/naprednebaze/internal/api/account"
	"github.com/milicamilutinovic/naprednebaze/internal/api/comment"
	"github.com/milicamilutinovic/naprednebaze/internal/api/like"
	"github.com/milicamilutinovic/naprednebaze/internal/api/post"
	"github.com/milicamilutinovic/naprednebaze/internal/api/user"
	"github.com/milicamilutinovic/naprednebaze/internal/errors"
	"github.com/milicamilutinovic/naprednebaze/internal/middleware"
	neo4jrepo "github.com/milicamilutinovic/naprednebaze/internal/repository/neo4j"
	"github.com/milicamilutinovic/naprednebaze/internal/service"
	"github.com/milicamilutinovic/naprednebaze/internal/storage"
	"github.com/milicamilutinovic/naprednebaze/internal/util"
)

func main() {
	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 连接图数据库
	db, err := neo4jrepo.NewDB(
		config.AppConfig.Neo4jURI,
		config.AppConfig.Neo4jUser,
		config.AppConfig.Neo4jPassword,
		config.AppConfig.Neo4jDatabase,
	)
	if err != nil {
		util.Logger.Fatal("连接图数据库失败", zap.Error(err))
	}
	defer db.Close(context.Background())

	// 测试数据库连接
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.Verify(ctx); err != nil {
		cancel()
		util.Logger.Fatal("图数据库连接测试失败", zap.Error(err))
	}
	cancel()
	util.Logger.Info("图数据库连接成功")

	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("objectid", util.ValidateObjectID)
	}

	// 初始化存储后端
	uploadStorage, err := storage.New()
	if err != nil {
		util.Logger.Fatal("初始化存储后端失败", zap.Error(err))
	}

	// 初始化仓库、服务和处理器
	userRepo := neo4jrepo.NewUserRepository(db)
	postRepo := neo4jrepo.NewPostRepository(db)
	commentRepo := neo4jrepo.NewCommentRepository(db)
	graphRepo := neo4jrepo.NewGraphRepository(db)

	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo)
	graphService := service.NewGraphService(graphRepo)

	authHandler := account.NewAuthHandler(userService)
	userHandler := user.NewUserHandler(userService, uploadStorage)
	postHandler := post.NewPostHandler(postService, uploadStorage)
	commentHandler := comment.NewCommentHandler(commentService)
	likeHandler := like.NewLikeHandler(graphService)

	// 初始化错误监控
	errorMonitor := middleware.NewErrorMonitor()

	// 设置 Gin 路由
	r := gin.Default()

	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(errorMonitor))

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 上传的图片通过静态文件路径对外提供
	r.Static("/uploads", config.AppConfig.LocalStoragePath)

	// 健康检查，附带累计错误统计
	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Verify(ctx); err != nil {
			errors.HandleError(c, errors.Wrap(errors.ErrDatabase, "图数据库不可用", err))
			return
		}
		errors.HandleSuccess(c, gin.H{"errorCounts": errorMonitor.GetErrorCounts()}, "")
	})

	// 会话网关
	accountRoutes := r.Group("/account")
	{
		accountRoutes.POST("/register", authHandler.Register)
		accountRoutes.POST("/login", authHandler.Login)
		accountRoutes.POST("/logout", middleware.AuthMiddleware(), authHandler.Logout)
	}

	// 用户实体服务
	userRoutes := r.Group("/users")
	{
		userRoutes.POST("", userHandler.CreateUser)
		userRoutes.POST("/login", userHandler.Login)
		userRoutes.GET("/search", userHandler.SearchUsernames)
		userRoutes.GET("/:id", userHandler.GetUser)
		userRoutes.PUT("/:id", userHandler.UpdateUser)
		userRoutes.PUT("/:id/profile", userHandler.UpdateProfile)
		userRoutes.DELETE("/:id", userHandler.DeleteUser)
	}

	// 帖子实体服务
	postRoutes := r.Group("/posts")
	{
		postRoutes.POST("", postHandler.AddPost)
		postRoutes.POST("/upload", middleware.AuthMiddleware(), postHandler.CreatePost)
		postRoutes.GET("", postHandler.ListPosts)
		postRoutes.GET("/:postId", postHandler.GetPost)
		postRoutes.PUT("/:postId", postHandler.UpdatePost)
		postRoutes.DELETE("/:postId", postHandler.DeletePost)
	}

	// 评论实体服务
	commentRoutes := r.Group("/comments")
	{
		commentRoutes.POST("", commentHandler.CreateComment)
		commentRoutes.GET("/post/:postId", commentHandler.GetCommentsByPost)
		commentRoutes.GET("/:id", commentHandler.GetComment)
		commentRoutes.PUT("/:id", commentHandler.UpdateComment)
		commentRoutes.DELETE("/:id", commentHandler.DeleteComment)
	}

	// 关系边服务
	r.POST("/likes", likeHandler.LikePost)
	r.DELETE("/likes", likeHandler.UnlikePost)
	r.POST("/friends", likeHandler.Befriend)

	// 创建一个带有超时的 http.Server
	srv := &http.Server{
		Addr:    ":8080",
		Handler: r,
	}

	// 在一个新的 goroutine 中启动服务器
	go func() {
		util.Logger.Info("服务器正在启动，监听端口 :8080")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			util.Logger.Fatal("启动服务器失败", zap.Error(err))
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	util.Logger.Info("正在关闭服务器...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		util.Logger.Fatal("服务器强制关闭", zap.Error(err))
	}

	util.Logger.Info("服务器已优雅关闭")
}
