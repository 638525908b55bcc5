package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sipeed/walletd/pkg/config"
	"github.com/sipeed/walletd/pkg/engine"
	"github.com/sipeed/walletd/pkg/logger"
)

const maxRequestBodyBytes = 1 << 20 // 1 MB

// Server is the stateless HTTP control surface. Every call delegates to the
// engine; the server itself holds no wallet state.
type Server struct {
	cfg     *config.Config
	engine  *engine.Engine
	metrics *requestMetrics
	httpSrv *http.Server
}

func New(cfg *config.Config, eng *engine.Engine) *Server {
	s := &Server{
		cfg:     cfg,
		engine:  eng,
		metrics: newRequestMetrics(),
	}
	s.httpSrv = &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      s.Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(s.metrics.middleware)

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Get("/build-info", s.handleBuildInfo)
	r.Get("/networks", s.handleNetworks)
	r.Get("/accounts", s.handleAccounts)
	r.Get("/balance", s.handleBalance)
	r.Post("/tx/send", s.handleTxSend)
	r.Get("/tx/status", s.handleTxStatus)
	r.Get("/wc/sessions", s.handleSessions)
	r.Post("/wc/connect", s.handleWCConnect)
	r.Post("/wc/switch", s.handleWCSwitch)
	r.Post("/wc/disconnect", s.handleWCDisconnect)
	r.Handle("/metrics", s.metrics.handler())

	return r
}

// ListenAndServe blocks until the listener fails or Shutdown is called.
// A bind failure is how the losing daemon of an auto-start race exits.
func (s *Server) ListenAndServe() error {
	logger.InfoCF("daemon", "Control surface listening", map[string]any{
		"addr": s.cfg.ListenAddr(),
	})
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptimeSec": int64(s.engine.Uptime().Seconds()),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": s.engine.GetBuildInfo().Version,
	})
}

func (s *Server) handleBuildInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.GetBuildInfo())
}

func (s *Server) handleNetworks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"networks": s.engine.GetNetworks(),
	})
}

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"accounts": s.engine.GetAccounts(),
	})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	network := r.URL.Query().Get("network")
	if address == "" {
		writeBadRequest(w, errors.New("address is required"))
		return
	}
	if network == "" {
		writeBadRequest(w, errors.New("network is required"))
		return
	}

	result, err := s.engine.GetBalance(address, network)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTxSend(w http.ResponseWriter, r *http.Request) {
	var req engine.TxRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tx, err := s.engine.CreateTransaction(req)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"guid":   tx.GUID,
		"status": tx.Status,
	})
}

func (s *Server) handleTxStatus(w http.ResponseWriter, r *http.Request) {
	guid := r.URL.Query().Get("guid")
	if guid == "" {
		writeBadRequest(w, errors.New("guid is required"))
		return
	}
	writeJSON(w, http.StatusOK, s.engine.GetTransactionStatus(guid))
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sessions": s.engine.ListSessions(),
	})
}

func (s *Server) handleWCConnect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Network string `json:"network"`
		Address string `json:"address"`
		URI     string `json:"uri"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := s.engine.ConnectSession(req.Address, req.Network, req.URI)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleWCSwitch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Session string  `json:"session"`
		Address *string `json:"address"`
		Network *string `json:"network"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Session == "" {
		writeBadRequest(w, errors.New("session is required"))
		return
	}

	sess, err := s.engine.SwitchSession(req.Session, req.Address, req.Network)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleWCDisconnect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Session string `json:"session"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Session == "" {
		writeBadRequest(w, errors.New("session is required"))
		return
	}

	sess, err := s.engine.DisconnectSession(req.Session)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// decodeBody parses a JSON body defensively; malformed input yields a 400
// and a false return, never a panic.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeBadRequest(w, errors.New("invalid JSON body"))
		return false
	}
	return true
}
