// Package api exposes the wallet session over REST for local frontends and
// the CLI.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/oxtoacart/bpool"
	"golang.org/x/sync/singleflight"

	"github.com/bitfolio/bitfolio/core"
)

func New(
	registry core.Registry,
	session core.Session,
	activities core.ActivityStore,
	logger *slog.Logger,
) *Server {
	return &Server{
		registry:   registry,
		session:    session,
		activities: activities,
		logger:     logger.With("server", "api"),
		sf:         &singleflight.Group{},
		bufs:       bpool.NewBufferPool(64),
	}
}

type Server struct {
	registry   core.Registry
	session    core.Session
	activities core.ActivityStore
	logger     *slog.Logger
	sf         *singleflight.Group
	bufs       *bpool.BufferPool
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/providers", s.listProviders)

	r.Route("/session", func(r chi.Router) {
		r.Get("/", s.getSession)
		r.Post("/connect", s.connect)
		r.Post("/disconnect", s.disconnect)
	})

	r.Get("/balances/{class}", s.getBalance)
	r.Get("/assets/{class}", s.getAssets)
	r.Get("/history/{class}", s.getHistory)
	r.Get("/activity", s.listActivity)

	return r
}

func (s *Server) listProviders(w http.ResponseWriter, r *http.Request) {
	type providerView struct {
		core.ProviderDescriptor
		Installed bool `json:"installed"`
	}

	var views []providerView
	for _, d := range s.registry.List() {
		views = append(views, providerView{
			ProviderDescriptor: d,
			Installed:          s.registry.Detect(d.ID),
		})
	}

	s.renderJSON(w, http.StatusOK, map[string]any{"providers": views})
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	state := s.session.State()
	s.renderJSON(w, http.StatusOK, sessionView(state))
}

func (s *Server) connect(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Provider core.ProviderID `json:"provider"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Provider == "" {
		s.renderError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := s.session.Connect(r.Context(), body.Provider)
	if err != nil {
		s.renderErr(w, err)
		return
	}

	s.renderJSON(w, http.StatusOK, sessionView(state))
}

func (s *Server) disconnect(w http.ResponseWriter, r *http.Request) {
	s.session.Disconnect(r.Context())
	s.renderJSON(w, http.StatusOK, sessionView(core.SessionState{}))
}

func (s *Server) getBalance(w http.ResponseWriter, r *http.Request) {
	class := core.AssetClass(chi.URLParam(r, "class"))

	v, err, _ := s.sf.Do("balance:"+string(class), func() (any, error) {
		// followers share the leader's result, so the fetch must not die with
		// the leader's client
		return s.session.FetchBalance(context.WithoutCancel(r.Context()), class)
	})
	if err != nil {
		s.renderErr(w, err)
		return
	}

	snapshot := v.(core.BalanceSnapshot)
	view := map[string]any{
		"class":       class,
		"confirmed":   snapshot.Confirmed,
		"unconfirmed": snapshot.Unconfirmed,
		"total":       snapshot.Total,
	}
	switch class {
	case core.AssetBitcoin:
		view["display"] = core.FormatBTC(snapshot.Total)
	case core.AssetStacks:
		view["display"] = core.FormatSTX(snapshot.Total)
	}

	s.renderJSON(w, http.StatusOK, view)
}

func (s *Server) getAssets(w http.ResponseWriter, r *http.Request) {
	class := core.AssetClass(chi.URLParam(r, "class"))

	v, err, _ := s.sf.Do("assets:"+string(class), func() (any, error) {
		return s.session.FetchAssets(context.WithoutCancel(r.Context()), class)
	})
	if err != nil {
		if core.IsKind(err, core.ErrCapabilityUnsupported) {
			s.renderJSON(w, http.StatusOK, map[string]any{
				"class":     class,
				"supported": false,
				"assets":    []core.AssetItem{},
			})
			return
		}
		s.renderErr(w, err)
		return
	}

	items := v.([]core.AssetItem)
	if items == nil {
		items = []core.AssetItem{}
	}

	s.renderJSON(w, http.StatusOK, map[string]any{
		"class":     class,
		"supported": true,
		"assets":    items,
	})
}

func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	class := core.AssetClass(chi.URLParam(r, "class"))

	v, err, _ := s.sf.Do("history:"+string(class), func() (any, error) {
		return s.session.FetchHistory(context.WithoutCancel(r.Context()), class)
	})
	if err != nil {
		s.renderErr(w, err)
		return
	}

	type recordView struct {
		core.TransactionRecord
		Date string `json:"date,omitempty"`
	}

	records := v.([]core.TransactionRecord)
	views := make([]recordView, 0, len(records))
	for _, rec := range records {
		views = append(views, recordView{
			TransactionRecord: rec,
			Date:              core.FormatBlockTime(rec.BlockTime),
		})
	}

	s.renderJSON(w, http.StatusOK, map[string]any{
		"class":   class,
		"records": views,
	})
}

func (s *Server) listActivity(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 || n > 500 {
			s.renderError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	activities, err := s.activities.List(r.Context(), limit)
	if err != nil {
		s.renderErr(w, err)
		return
	}
	if activities == nil {
		activities = []*core.Activity{}
	}

	s.renderJSON(w, http.StatusOK, map[string]any{"activities": activities})
}

func sessionView(state core.SessionState) map[string]any {
	type addressView struct {
		core.AddressBinding
		Display string `json:"display"`
	}

	addresses := make([]addressView, 0, len(state.Addresses))
	for _, b := range state.Addresses {
		addresses = append(addresses, addressView{
			AddressBinding: b,
			Display:        core.TruncateAddress(b.Address, 6, 4),
		})
	}

	return map[string]any{
		"connected": state.Connected(),
		"provider":  state.Provider,
		"addresses": addresses,
	}
}

// renderErr maps the error taxonomy onto HTTP statuses.
func (s *Server) renderErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case err == core.ErrNotConnected, err == core.ErrAlreadyConnected, err == core.ErrSessionChanged:
		status = http.StatusConflict
	case core.IsKind(err, core.ErrProviderUnavailable):
		status = http.StatusNotFound
	case core.IsKind(err, core.ErrConnectionRejected):
		status = http.StatusForbidden
	case core.IsKind(err, core.ErrCapabilityUnsupported):
		status = http.StatusUnprocessableEntity
	case core.IsKind(err, core.ErrBalanceUnavailable):
		status = http.StatusUnprocessableEntity
	case core.IsKind(err, core.ErrIndexerUnavailable), core.IsKind(err, core.ErrMalformedResponse):
		status = http.StatusBadGateway
	}

	s.logger.Debug("request failed", "status", status, "err", err)

	body := map[string]any{"error": err.Error()}
	if kind := core.KindOf(err); kind != "" {
		body["kind"] = kind
	}
	if upstream := core.StatusOf(err); upstream > 0 {
		body["upstream_status"] = upstream
	}

	s.render(w, status, body)
}

func (s *Server) renderError(w http.ResponseWriter, status int, msg string) {
	s.render(w, status, map[string]any{"error": msg})
}

func (s *Server) renderJSON(w http.ResponseWriter, status int, body any) {
	s.render(w, status, body)
}

func (s *Server) render(w http.ResponseWriter, status int, body any) {
	buf := s.bufs.Get()
	defer s.bufs.Put(buf)

	if err := json.NewEncoder(buf).Encode(body); err != nil {
		s.logger.Error("encode response", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
