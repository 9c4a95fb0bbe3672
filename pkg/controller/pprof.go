package controller

import (
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
)

// PprofRouter returns a router exposing net/http/pprof handlers. It must be
// mounted at /debug/pprof so that named profiles resolve.
func PprofRouter() chi.Router {
	r := chi.NewRouter()

	r.HandleFunc("/cmdline", pprof.Cmdline)
	r.HandleFunc("/profile", pprof.Profile)
	r.HandleFunc("/symbol", pprof.Symbol)
	r.HandleFunc("/trace", pprof.Trace)
	r.HandleFunc("/*", pprof.Index)

	return r
}
