package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"golang.org/x/time/rate"

	"hangman/internal/hangman"
	"hangman/internal/questions"
	"hangman/internal/types"
)

func main() {
	_ = godotenv.Load()

	cfg := loadConfig()
	setupLogging(cfg.LogLevel, cfg.isProduction())
	logInfo("Starting Hangman in %s mode", map[bool]string{true: "production", false: "development"}[cfg.isProduction()])

	ctx, cancel := context.WithTimeout(context.Background(), cfg.QuestionsTimeout)
	src := questions.FromConfig(cfg.QuestionsURL, cfg.QuestionsFile, cfg.QuestionsTimeout)
	puzzles := questions.LoadOrEmpty(ctx, src)
	cancel()
	if len(puzzles) == 0 {
		logWarn("No questions loaded, players will see an empty board")
	} else {
		logInfo("Loaded %d questions", len(puzzles))
	}

	app := newApp(cfg, puzzles)

	templatesGlob, staticDir := "templates/*.html", "./static"
	if app.IsProduction && dirExists("dist") {
		logInfo("Serving assets from dist/ directory")
		templatesGlob, staticDir = "dist/templates/*.html", "./dist/static"
	} else {
		logInfo("Serving development assets from source directories")
	}
	if app.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := app.setupRouter(templatesGlob, staticDir)
	startServer(app, router)
}

// newApp builds the application state from config and loaded puzzles.
func newApp(cfg Config, puzzles []types.Puzzle) *App {
	policy, err := hangman.ParseWinPolicy(cfg.WinPolicy)
	if err != nil {
		logWarn("%v, using %s", err, hangman.PolicyFaithful)
		policy = hangman.PolicyFaithful
	}
	return &App{
		Config:       cfg,
		Puzzles:      lo.Filter(puzzles, validPuzzle),
		Figure:       figureFor(cfg.MaxLives),
		Policy:       policy,
		IsProduction: cfg.isProduction(),
		StartTime:    time.Now(),
		Sessions:     make(map[string]*playerSession),
		LimiterMap:   make(map[string]*rate.Limiter),
	}
}

// validPuzzle skips puzzles with a blank answer.
func validPuzzle(p types.Puzzle, _ int) bool {
	if hangman.NormalizeAnswer(p.Answer) == "" {
		logWarn("Skipping question %q: empty answer", p.Tip)
		return false
	}
	return true
}

// setupRouter installs middleware, templates, static files and routes.
func (app *App) setupRouter(templatesGlob, staticDir string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression,
		ginGzip.WithExcludedExtensions([]string{".svg", ".ico", ".png", ".jpg", ".jpeg", ".gif"}),
		ginGzip.WithExcludedPaths([]string{"/static/fonts"})))
	router.Use(app.cacheHeadersMiddleware())

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.LoadHTMLGlob(templatesGlob)
	router.Static("/static", staticDir)

	router.GET(RouteHome, app.homeHandler)
	router.POST(RouteGuess, app.rateLimitMiddleware(), app.guessHandler)
	router.POST(RouteNext, app.rateLimitMiddleware(), app.nextHandler)
	router.POST(RoutePlayAgain, app.rateLimitMiddleware(), app.playAgainHandler)
	router.GET(RouteGameState, app.gameStateHandler)
	router.GET(RouteAPIState, app.apiStateHandler)
	router.GET(RouteHealthz, app.healthzHandler)
	return router
}

func startServer(app *App, router *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + app.Config.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go app.sweepSessions(sweepCtx, 10*time.Minute)

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		stopSweep()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", app.Config.Port)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
