//go:build e2e
// +build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/matthunz/staff/chord"
	"github.com/matthunz/staff/cmd"
	"github.com/matthunz/staff/midi"
	"github.com/matthunz/staff/model"
	"github.com/stretchr/testify/assert"
)

var mediaDir string

func TestMain(m *testing.M) {
	media, err := os.MkdirTemp("", "staff-media")
	if err != nil {
		panic(err.Error())
	}
	out, err := os.MkdirTemp("", "staff-out")
	if err != nil {
		panic(err.Error())
	}
	mediaDir = media
	os.Setenv("INDEX_PATH", out)

	for name, symbol := range map[string]string{"c.mid": "C", "c-again.mid": "C", "f.mid": "F", "am.mid": "Am"} {
		c, err := chord.Parse(symbol)
		if err != nil {
			panic(err.Error())
		}
		if err := midi.WriteChordFile(filepath.Join(media, name), c); err != nil {
			panic(err.Error())
		}
	}

	if err := cmd.Index(media, 0); err != nil {
		panic(err.Error())
	}
	cmd.LoadServeFiles()

	exitVal := m.Run()

	os.RemoveAll(media)
	os.RemoveAll(out)
	os.Exit(exitVal)
}

func search(t *testing.T, symbol string) model.SearchResponse {
	req := httptest.NewRequest(http.MethodGet, "/search?symbol="+url.QueryEscape(symbol), nil)
	w := httptest.NewRecorder()
	cmd.NewRouter().ServeHTTP(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)

	var searchResponse model.SearchResponse
	if err := json.Unmarshal(respBody, &searchResponse); err != nil {
		t.Fatal(err)
	}
	return searchResponse
}

func TestBasicCChordE2E(t *testing.T) {
	res := search(t, "C")

	assert := assert.New(t)
	assert.Equal("C", res.Symbol)
	assert.Equal(2, res.NumMatches)
	for _, r := range res.Results {
		assert.Equal([]int{60, 64, 67}, r.Notes)
		assert.Equal(float32(0), r.Offset)
	}
}

func TestBasicFChordE2E(t *testing.T) {
	res := search(t, "F")

	assert := assert.New(t)
	assert.Equal(1, res.NumMatches)
	assert.Equal(filepath.Join(mediaDir, "f.mid"), res.Results[0].File)
}

func TestSpellingIsNormalizedE2E(t *testing.T) {
	res := search(t, "Cbm")
	assert.Equal(t, "Bm", res.Symbol)
	assert.Equal(t, 0, res.NumMatches)

	res = search(t, "Am")
	assert.Equal(t, 1, res.NumMatches)
}
