package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/internal/client/api"
)

func TestClient_CreateNote(t *testing.T) {
	t.Run("nil category is sent as JSON null", func(t *testing.T) {
		var got map[string]json.RawMessage
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/notes", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))

			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, &got))

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":1,"title":"t","content":"c","categoryId":null,"category":null}`))
		}))
		defer srv.Close()

		note, err := api.NewClient(srv.URL).CreateNote(context.Background(), "t", "c", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), note.ID)

		require.Contains(t, got, "categoryId")
		assert.Equal(t, "null", string(got["categoryId"]))
	})

	t.Run("server error becomes an APIError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"Title and content are required"}`))
		}))
		defer srv.Close()

		_, err := api.NewClient(srv.URL).CreateNote(context.Background(), "", "c", nil)
		require.Error(t, err)

		var apiErr *api.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Title and content are required", apiErr.Message)
	})
}

func TestClient_UpdateNote(t *testing.T) {
	t.Run("only the given fields are sent", func(t *testing.T) {
		var got map[string]json.RawMessage
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPut, r.Method)
			require.Equal(t, "/api/notes/7", r.URL.Path)

			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, &got))

			w.Write([]byte(`{"id":7,"title":"renamed","content":"c"}`))
		}))
		defer srv.Close()

		note, err := api.NewClient(srv.URL).UpdateNote(context.Background(), 7, map[string]any{"title": "renamed"})
		require.NoError(t, err)
		assert.Equal(t, "renamed", note.Title)

		assert.Contains(t, got, "title")
		assert.NotContains(t, got, "content")
		assert.NotContains(t, got, "categoryId")
	})

	t.Run("explicit null clears the category", func(t *testing.T) {
		var got map[string]json.RawMessage
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, &got))

			w.Write([]byte(`{"id":7,"title":"t","content":"c","categoryId":null}`))
		}))
		defer srv.Close()

		_, err := api.NewClient(srv.URL).UpdateNote(context.Background(), 7, map[string]any{"categoryId": nil})
		require.NoError(t, err)

		require.Contains(t, got, "categoryId")
		assert.Equal(t, "null", string(got["categoryId"]))
	})
}

func TestClient_DeleteNote(t *testing.T) {
	t.Run("no content is success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		assert.NoError(t, api.NewClient(srv.URL).DeleteNote(context.Background(), 3))
	})

	t.Run("not found surfaces the message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"Note not found"}`))
		}))
		defer srv.Close()

		err := api.NewClient(srv.URL).DeleteNote(context.Background(), 3)
		var apiErr *api.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Note not found", apiErr.Message)
	})
}

func TestClient_ListNotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/notes", r.URL.Path)
		w.Write([]byte(`[{"id":2,"title":"b","content":"y"},{"id":1,"title":"a","content":"x"}]`))
	}))
	defer srv.Close()

	notes, err := api.NewClient(srv.URL).ListNotes(context.Background())
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, int64(2), notes[0].ID)
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, err := api.NewClient(srv.URL).ListNotes(context.Background())
	var apiErr *api.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Message)
}
