package api

import (
	"encoding/json"
	"net/http"

	"github.com/matt-g-everett/ledseq/stream"
	"github.com/sirupsen/logrus"
)

// StatusSource reports what is being displayed.
type StatusSource interface {
	Status() stream.Status
}

// Api serves the web client and the status endpoint.
type Api struct {
	addr   string
	source StatusSource
	log    *logrus.Entry
}

// NewApi creates an instance of an Api.
func NewApi(addr string, source StatusSource) *Api {
	a := new(Api)
	a.addr = addr
	a.source = source
	a.log = logrus.WithField("component", "api")
	return a
}

// Handler returns the routes served by the Api.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", a.handleStatus)
	mux.Handle("/", http.FileServer(http.Dir("client/dist")))
	return mux
}

func (a *Api) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(a.source.Status()); err != nil {
		a.log.WithError(err).Warn("Failed to write status")
	}
}

// Serve listens on the configured address until the server fails.
func (a *Api) Serve() error {
	a.log.WithField("addr", a.addr).Info("Listening...")
	return http.ListenAndServe(a.addr, a.Handler())
}
