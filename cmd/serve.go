package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/matthunz/staff/chord"
	"github.com/matthunz/staff/constants"
	"github.com/matthunz/staff/index"
	"github.com/matthunz/staff/model"
	"github.com/matthunz/staff/util"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NOTE: loaded once before serving, read only afterwards
var loadedIndex *model.Index

const maxSearchResults = 100

type requestIDKey struct{}

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord API over HTTP on STAFF_ADDR",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		LoadServeFiles()
		addr := constants.GetAddr()
		logrus.WithField("addr", addr).Info("Serving")
		return http.ListenAndServe(addr, NewRouter())
	},
}

// LoadServeFiles loads the chord index if one has been built. Without it
// every endpoint but /search still works.
func LoadServeFiles() {
	idx, err := index.Load(constants.GetIndexFile())
	if err != nil {
		logrus.WithError(err).Warn("Serving without an index")
		loadedIndex = nil
		return
	}
	loadedIndex = &idx
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(withRequestID)
	router.HandleFunc("/chords/name", HandleName).Methods("POST")
	router.HandleFunc("/chords", HandleChord).Methods("GET").Queries("symbol", "{symbol}")
	router.HandleFunc("/search", HandleSearch).Methods("GET").Queries("symbol", "{symbol}")
	return cors.Default().Handler(router)
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		logrus.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
		}).Debug("Request")
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("Could not encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func newChordResponse(c chord.Chord) model.ChordResponse {
	res := model.ChordResponse{
		Symbol:      c.String(),
		Root:        c.Root.String(),
		IsInversion: c.IsInversion,
		Intervals:   []string{},
		Notes:       []int{},
	}
	if c.Bass != nil {
		res.Bass = c.Bass.String()
	}
	for _, i := range c.RootIntervals().Slice() {
		res.Intervals = append(res.Intervals, i.String())
	}
	for _, n := range c.Notes() {
		res.Notes = append(res.Notes, int(n))
	}
	return res
}

func intNotes(notes model.Notes) []int {
	res := make([]int, len(notes))
	for i, n := range notes {
		res[i] = int(n)
	}
	return res
}

func HandleName(w http.ResponseWriter, r *http.Request) {
	var input model.NameRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("could not decode request body: "+err.Error()))
		return
	}
	if len(input.Notes) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("at least one note is required"))
		return
	}

	chords, err := nameNotes(input.Notes, input.Root, input.All)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := model.NameResponse{RequestID: requestID(r), Chords: []model.ChordResponse{}}
	for _, c := range chords {
		res.Chords = append(res.Chords, newChordResponse(c))
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	c, err := chord.Parse(r.URL.Query().Get("symbol"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, newChordResponse(c))
}

func HandleSearch(w http.ResponseWriter, r *http.Request) {
	if loadedIndex == nil {
		writeError(w, http.StatusServiceUnavailable, index.ErrNotIndexed)
		return
	}

	symbol, found, err := index.Search(*loadedIndex, r.URL.Query().Get("symbol"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := model.SearchResponse{
		RequestID:  requestID(r),
		Symbol:     symbol,
		NumMatches: len(found),
		Results:    make([]model.SearchResult, 0),
	}
	// TODO: add pagination
	for _, o := range found[:util.Min(maxSearchResults, len(found))] {
		res.Results = append(res.Results, model.SearchResult{
			File:   loadedIndex.Files[o.FileNum],
			FileId: o.FileNum,
			Offset: float32(o.Offset) / 1000,
			Notes:  intNotes(o.Notes),
		})
	}
	writeJSON(w, http.StatusOK, res)
}
