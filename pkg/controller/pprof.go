package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where PprofMux expects to be mounted.
const PprofPrefix = "/debug/pprof/"

// PprofMux returns an http.ServeMux with the net/http/pprof handlers
// registered under PprofPrefix. Mount it on the main server at the same prefix.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPrefix, pprof.Index)
	mux.HandleFunc(PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"trace", pprof.Trace)

	return mux
}
