package webserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"f1champsseason/pkg/log"
	"f1champsseason/pkg/model"
	"f1champsseason/pkg/pubsub"
	"f1champsseason/pkg/season"
)

const (
	TypeStandings = "standings"

	writeWait       = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{} // use default options

// StandingsSource is the read side of a season.
type StandingsSource interface {
	Snapshot() model.Standings
	RaceResults(raceName string) ([]model.ResultRow, error)
}

type Message struct {
	Type string `json:"type"`
	Body any    `json:"body"`
}

type Manager struct {
	r      *mux.Router
	addr   string
	source StandingsSource
	ps     *pubsub.PubSub[model.ResultRecorded]
}

func NewManager(addr string, source StandingsSource, ps *pubsub.PubSub[model.ResultRecorded]) *Manager {
	m := &Manager{
		r:      mux.NewRouter(),
		addr:   addr,
		source: source,
		ps:     ps,
	}

	m.rootHandlers()
	return m
}

func (m *Manager) Handler() http.Handler {
	return m.r
}

func (m *Manager) rootHandlers() {
	m.r.HandleFunc("/standings/drivers", m.driverStandings).Methods(http.MethodGet)
	m.r.HandleFunc("/standings/teams", m.teamStandings).Methods(http.MethodGet)
	m.r.HandleFunc("/races/{name}", m.raceResults).Methods(http.MethodGet)
	m.r.HandleFunc("/ws", m.liveStandings)
}

func (m *Manager) driverStandings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.source.Snapshot().Drivers)
}

func (m *Manager) teamStandings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, m.source.Snapshot().Teams)
}

func (m *Manager) raceResults(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	rows, err := m.source.RaceResults(name)
	if errors.Is(err, season.ErrUnknownEntity) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (m *Manager) liveStandings(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade", log.ErrorField(err))
		return
	}
	defer c.Close()

	events := m.ps.Subscribe(pubsub.TopicResults)
	defer m.ps.Unsubscribe(pubsub.TopicResults, events)

	// the reader only detects the peer going away
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err = writeMessage(c, m.source.Snapshot()); err != nil {
		log.Debug("websocket write", log.ErrorField(err))
		return
	}
	for {
		select {
		case <-gone:
			return
		case <-r.Context().Done():
			return
		case _, ok := <-events:
			if !ok {
				_ = c.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
					time.Now().Add(writeWait))
				return
			}
			// events only wake the writer; results recorded meanwhile are
			// already in the snapshot
			if err = writeMessage(c, m.source.Snapshot()); err != nil {
				log.Debug("websocket write", log.ErrorField(err))
				return
			}
		}
	}
}

func writeMessage(c *websocket.Conn, standings model.Standings) error {
	if err := c.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.WriteJSON(Message{Type: TypeStandings, Body: standings})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn("writing response", log.ErrorField(err))
	}
}

// Serve blocks until ctx is done, then shuts the server down gracefully.
func (m *Manager) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         m.addr,
		WriteTimeout: time.Second * 15,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      m.r,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("webserver listening", log.String("addr", m.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return errors.Wrap(err, "webserver")
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("webserver shutting down")
	return srv.Shutdown(shutdownCtx)
}
