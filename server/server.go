// Package server hosts a single Moonlight game over an HTTP REST API.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/dekarrin/moonlight/internal/game"
	"github.com/dekarrin/moonlight/internal/mlw"
	"github.com/dekarrin/moonlight/server/api"
	"github.com/dekarrin/moonlight/server/dao"
	"github.com/dekarrin/moonlight/server/middle"
	"github.com/dekarrin/moonlight/server/mls"
	"github.com/go-chi/chi/v5"
)

// server:
//
//	POST   /login          - accepts user and password and returns a jwt.
//	DELETE /login/{id}     - ends user authentication session and invalidates the jwt.
//	POST   /tokens         - refreshes the token without requiring credentials (requires auth)
//	POST   /turns          - plays one line of input against the game (requires auth)
//	GET    /turns          - returns the transcript of the game (requires auth)
//	GET    /turns/{id}     - gets a particular turn from the transcript (requires auth)
//	GET    /play           - websocket; each message is played as a turn (requires auth)
//	GET    /info           - gets version info on the server and, if logged in, the game.

// MoonlightServer is an HTTP REST server that hosts one Moonlight game. Use
// New to create one.
type MoonlightServer struct {
	router chi.Router
	db     dao.Store
	svc    *mls.Service

	// playerName is the name of the player character in the hosted world,
	// and of the operator account.
	playerName string
}

// New creates a MoonlightServer from cfg. Unset fields of cfg are given their
// defaults before it is validated. The world data file is loaded and the store
// opened before New returns.
func New(cfg Config) (*MoonlightServer, error) {
	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	wd, err := mlw.Load(cfg.World)
	if err != nil {
		return nil, err
	}
	gs, err := game.New(wd.World, wd.Player)
	if err != nil {
		return nil, fmt.Errorf("world data file %q: %w", cfg.World, err)
	}

	db, err := cfg.Store.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Kind, err)
	}

	ms := &MoonlightServer{
		db:         db,
		svc:        mls.New(db, gs),
		playerName: wd.Player.Name,
	}
	a := api.API{
		Backend:     ms.svc,
		UnauthDelay: cfg.delay(),
		Secret:      cfg.Secret,
	}
	auth := middle.Auth{
		Accounts:    db.Accounts(),
		Secret:      cfg.Secret,
		UnauthDelay: cfg.delay(),
	}
	ms.router = newRouter(a, auth)

	return ms, nil
}

func newRouter(a api.API, auth middle.Auth) chi.Router {
	r := chi.NewRouter()
	r.NotFound(a.HTTPNotFound())
	r.MethodNotAllowed(a.HTTPMethodNotAllowed())

	r.Get("/", a.HTTPRedirect(api.PathPrefix+"/info"))

	r.Route(api.PathPrefix, func(r chi.Router) {
		r.With(auth.Optional).Get("/info", a.HTTPGetInfo())

		r.Post("/login", a.HTTPCreateLogin())
		r.With(auth.Required).Delete("/login/{id}", a.HTTPDeleteLogin())
		r.With(auth.Required).Post("/tokens", a.HTTPCreateToken())

		r.Route("/turns", func(r chi.Router) {
			r.Use(auth.Required)
			r.Post("/", a.HTTPCreateTurn())
			r.Get("/", a.HTTPGetAllTurns())
			r.Get("/{id}", a.HTTPGetTurn())
		})

		r.With(auth.Required).Get("/play", a.HTTPPlay())
	})

	return r
}

// CreateOperator creates the account that is used to play the hosted game.
// It is named after the player character in the world data.
func (ms *MoonlightServer) CreateOperator(ctx context.Context, password string) (dao.Account, error) {
	return ms.svc.CreateAccount(ctx, ms.playerName, password, dao.Operator)
}

// Handler returns the root handler of the server.
func (ms *MoonlightServer) Handler() http.Handler {
	return ms.router
}

// Close closes the store.
func (ms *MoonlightServer) Close() error {
	return ms.db.Close()
}

// ServeForever listens on the given address and port for HTTP REST client
// requests. An empty address means "localhost" and a port less than 1 means
// 8080. It only returns if the listener fails.
func (ms *MoonlightServer) ServeForever(address string, port int) error {
	if address == "" {
		address = "localhost"
	}
	if port < 1 {
		port = 8080
	}

	listenAddress := fmt.Sprintf("%s:%d", address, port)
	log.Printf("INFO  Listening on %s", listenAddress)
	return http.ListenAndServe(listenAddress, ms.router)
}
