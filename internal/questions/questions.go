// Package questions loads the tip/answer pairs played by a session.
//
// Sources return FetchError when the data cannot be retrieved and
// MalformedDataError when it is not a JSON array of objects each carrying a
// "tip" and an "answer". LoadOrEmpty turns either into an empty set.
package questions

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"hangman/internal/types"
)

//go:embed questions.json
var embeddedQuestions []byte

// Source supplies an ordered sequence of puzzles.
type Source interface {
	Load(ctx context.Context) ([]types.Puzzle, error)
}

// FetchError reports that the payload could not be retrieved.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch questions from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// MalformedDataError reports a payload with the wrong shape.
type MalformedDataError struct {
	Source string
	Reason string
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("malformed questions from %s: %s", e.Source, e.Reason)
}

// Parse validates and decodes a questions payload.
func Parse(source string, data []byte) ([]types.Puzzle, error) {
	if !gjson.ValidBytes(data) {
		return nil, &MalformedDataError{Source: source, Reason: "invalid JSON"}
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, &MalformedDataError{Source: source, Reason: "expected an array"}
	}
	var bad error
	root.ForEach(func(key, item gjson.Result) bool {
		if !item.IsObject() || !item.Get("tip").Exists() || !item.Get("answer").Exists() {
			bad = &MalformedDataError{
				Source: source,
				Reason: fmt.Sprintf("item %d is not a tip/answer object", key.Int()),
			}
			return false
		}
		return true
	})
	if bad != nil {
		return nil, bad
	}
	var puzzles []types.Puzzle
	if err := json.Unmarshal(data, &puzzles); err != nil {
		return nil, &MalformedDataError{Source: source, Reason: err.Error()}
	}
	return puzzles, nil
}

// LoadOrEmpty loads from src and logs a warning instead of failing.
func LoadOrEmpty(ctx context.Context, src Source) []types.Puzzle {
	puzzles, err := src.Load(ctx)
	if err != nil {
		var fe *FetchError
		var me *MalformedDataError
		switch {
		case errors.As(err, &fe):
			log.Warn().Err(err).Str("source", fe.Source).Msg("questions unavailable")
		case errors.As(err, &me):
			log.Warn().Err(err).Str("source", me.Source).Msg("received data is not a list of tips and answers")
		default:
			log.Warn().Err(err).Msg("questions unavailable")
		}
		return []types.Puzzle{}
	}
	return puzzles
}

// EmbeddedSource serves the bundled default questions.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(context.Context) ([]types.Puzzle, error) {
	return Parse("embedded", embeddedQuestions)
}

// FileSource reads questions from a JSON file.
type FileSource struct {
	Path string
}

func (f FileSource) Load(ctx context.Context) ([]types.Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Source: f.Path, Err: err}
	}
	log.Info().Str("path", f.Path).Msg("loading questions from file")
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &FetchError{Source: f.Path, Err: err}
	}
	return Parse(f.Path, data)
}

// HTTPSource fetches questions over HTTP.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// maxPayload bounds the size of a fetched questions document.
const maxPayload = 4 << 20

func (h HTTPSource) Load(ctx context.Context) ([]types.Puzzle, error) {
	client := h.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, &FetchError{Source: h.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	log.Info().Str("url", h.URL).Msg("fetching questions")
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: h.URL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Source: h.URL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		return nil, &FetchError{Source: h.URL, Err: err}
	}
	return Parse(h.URL, data)
}

// FromConfig picks a source: a URL wins over a file, and with neither the
// embedded questions are used.
func FromConfig(url, path string, timeout time.Duration) Source {
	switch {
	case url != "":
		return HTTPSource{URL: url, Client: &http.Client{Timeout: timeout}}
	case path != "":
		return FileSource{Path: path}
	default:
		return EmbeddedSource{}
	}
}
