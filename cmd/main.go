package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rango-SAD/lost-and-found-project/config"
	"github.com/Rango-SAD/lost-and-found-project/internal/api/auth"
	"github.com/Rango-SAD/lost-and-found-project/internal/api/category"
	"github.com/Rango-SAD/lost-and-found-project/internal/api/interact"
	"github.com/Rango-SAD/lost-and-found-project/internal/api/lfmap"
	"github.com/Rango-SAD/lost-and-found-project/internal/api/post"
	"github.com/Rango-SAD/lost-and-found-project/internal/middleware"
	"github.com/Rango-SAD/lost-and-found-project/internal/repository/mongodb"
	"github.com/Rango-SAD/lost-and-found-project/internal/service"
	"github.com/Rango-SAD/lost-and-found-project/internal/storage"
	"github.com/Rango-SAD/lost-and-found-project/internal/store"
	"github.com/Rango-SAD/lost-and-found-project/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	config.Init()

	// 初始化日志
	util.InitLogger(config.AppConfig.LogLevel)
	defer util.Logger.Sync()

	util.Logger.Info("应用程序启动")

	// 连接文档数据库，连接为进程级单例，在关闭时断开
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := store.Connect(ctx, config.AppConfig.MongoURI, config.AppConfig.MongoDB)
	cancel()
	if err != nil {
		util.Logger.Fatal("连接数据库失败", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			util.Logger.Error("断开数据库连接失败", zap.Error(err))
		}
	}()
	util.Logger.Info("数据库连接成功")

	// 创建全文索引和标签索引
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = db.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		util.Logger.Fatal("创建索引失败", zap.Error(err))
	}

	// 注册自定义验证器
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("geopoint", util.ValidateGeoPoint)
	}

	// 初始化图片存储后端
	imageStorage, err := storage.New()
	if err != nil {
		util.Logger.Fatal("初始化图片存储失败", zap.Error(err))
	}

	// 初始化存储库、服务和处理器
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	otpRepo := mongodb.NewOTPRepository(db)

	emailService := service.NewEmailService()
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	moderationService := service.NewModerationService(postRepo, commentRepo, reportRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	userService := service.NewUserService(userRepo, otpRepo, emailService)

	postHandler := post.NewPostHandler(postService, imageStorage)
	interactHandler := interact.NewInteractHandler(commentService, moderationService)
	mapHandler := lfmap.NewMapHandler(postService)
	categoryHandler := category.NewCategoryHandler(categoryService)
	authHandler := auth.NewAuthHandler(userService)

	// 写入默认分类
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = categoryService.SeedDefaults(ctx)
	cancel()
	if err != nil {
		util.Logger.Error("写入默认分类失败", zap.Error(err))
	}

	// 初始化错误监控
	errorMonitor := middleware.NewErrorMonitor()

	// 设置 Gin 路由
	r := gin.Default()

	// 添加中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.ErrorMonitorMiddleware(errorMonitor))

	// 配置 CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{config.AppConfig.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"Authorization",
	}
	r.Use(cors.New(corsConfig))

	// 本地存储的图片经静态路由对外提供
	if config.AppConfig.StorageDriver == "local" {
		r.Static("/uploads", config.AppConfig.LocalStoragePath)
	}

	authRequired := middleware.AuthMiddleware()

	// 认证相关路由
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/send-otp", authHandler.SendOTP)
		authRoutes.POST("/register/confirm", authHandler.ConfirmRegister)
	}

	// 帖子相关路由
	posts := r.Group("/posts")
	{
		posts.POST("/add", authRequired, postHandler.CreatePost)
		posts.GET("/all", postHandler.ListAll)
		posts.GET("/publisher/:username", postHandler.ListByPublisher)
		posts.GET("/category/:category_key", postHandler.ListByCategory)
		posts.GET("/tag/:tag", postHandler.ListByTag)
		posts.GET("/search", postHandler.Search)
		posts.POST("/upload-image", authRequired, postHandler.UploadImage)
		posts.GET("/:id", postHandler.GetPost)
		posts.PUT("/:id", authRequired, postHandler.UpdatePost)
		posts.DELETE("/:id", authRequired, postHandler.DeletePost)
	}

	// 地图视图
	r.GET("/lostAndFoundItems", mapHandler.ListItems)

	// 评论与举报
	interactRoutes := r.Group("/interact")
	{
		interactRoutes.GET("/comments/:post_id", interactHandler.ListComments)
		interactRoutes.POST("/comment", authRequired, interactHandler.CreateComment)
		interactRoutes.POST("/report/:target_type/:target_id", authRequired, interactHandler.ReportContent)
	}

	// 分类
	categories := r.Group("/categories")
	{
		categories.POST("/add", authRequired, categoryHandler.CreateCategory)
		categories.GET("/all", categoryHandler.ListCategories)
	}

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

	// 等待中断信号以优雅地关闭服务器（设置 5 秒的超时时间）
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
