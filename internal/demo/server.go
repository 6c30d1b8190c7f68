package demo

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/errors"
	"github.com/zhubert/botconsole/internal/logger"
)

type chatRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type chatResponse struct {
	Response    string  `json:"response"`
	TypingDelay float64 `json:"typing_delay"`
}

type triggersResponse struct {
	Triggers    []bot.Trigger     `json:"triggers"`
	TypingDelay bot.DelaySettings `json:"typing_delay"`
}

// Server exposes a Store over the backend's REST routes
type Server struct {
	store  *Store
	engine *gin.Engine
}

// NewServer creates a server for store
func NewServer(store *Store) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	s := &Server{store: store, engine: engine}
	s.registerRoutes()
	return s
}

// Handler returns the HTTP handler serving the routes
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes() {
	r := s.engine
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/stats", s.getStats)
	r.POST("/chat", s.postChat)
	r.GET("/triggers", s.getTriggers)
	r.POST("/triggers/add", s.addTrigger)
	r.DELETE("/triggers/:name", s.deleteTrigger)
	r.PUT("/settings/delay", s.updateDelay)
}

func (s *Server) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Stats())
}

func (s *Server) postChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "user_id and message are required"})
		return
	}
	reply, delay := s.store.Chat(req.UserID, req.Message)
	c.JSON(http.StatusOK, chatResponse{Response: reply, TypingDelay: delay})
}

func (s *Server) getTriggers(c *gin.Context) {
	c.JSON(http.StatusOK, triggersResponse{Triggers: s.store.Triggers(), TypingDelay: s.store.Delay()})
}

func (s *Server) addTrigger(c *gin.Context) {
	var t bot.Trigger
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid trigger: " + err.Error()})
		return
	}
	t, err := bot.NewTrigger(t.Name, strings.Join(t.Keywords, ","), t.Type, t.Path)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": errors.Message(err)})
		return
	}
	if err := s.store.AddTrigger(t); err != nil {
		c.JSON(http.StatusConflict, gin.H{"detail": errors.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "added", "trigger": t})
}

func (s *Server) deleteTrigger(c *gin.Context) {
	name := c.Param("name")
	if err := s.store.DeleteTrigger(name); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": errors.Message(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted", "name": name})
}

func (s *Server) updateDelay(c *gin.Context) {
	var d bot.DelaySettings
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid delay settings: " + err.Error()})
		return
	}
	if err := d.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": errors.Message(err)})
		return
	}
	s.store.SetDelay(d)
	c.JSON(http.StatusOK, gin.H{"status": "updated", "typing_delay": d})
}

// requestLogger logs each request to the component logger instead of stdout,
// which the TUI owns.
func requestLogger() gin.HandlerFunc {
	log := logger.WithComponent("demo")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Running is a started stub backend
type Running struct {
	URL string
	srv *http.Server
}

// Start listens on addr (use "127.0.0.1:0" for any free port) and serves in
// the background until Shutdown.
func (s *Server) Start(addr string) (*Running, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.E(errors.Op("demo.Start"), errors.KindNetwork, err)
	}
	srv := &http.Server{Handler: s.engine, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.WithComponent("demo").Error("stub backend stopped", "error", err)
		}
	}()
	logger.WithComponent("demo").Info("stub backend listening", "addr", ln.Addr().String())
	return &Running{URL: "http://" + ln.Addr().String(), srv: srv}, nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends
func (r *Running) Shutdown(ctx context.Context) error {
	return r.srv.Shutdown(ctx)
}
