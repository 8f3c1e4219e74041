package clientcli_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sagarc03/drills/clientcli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *clientcli.Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	client, err := clientcli.New(&clientcli.Config{Endpoint: server.URL})
	require.NoError(t, err)
	return client
}

func TestNew(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		client, err := clientcli.New(&clientcli.Config{Endpoint: "http://localhost:9000"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000", client.Endpoint())
	})

	t.Run("empty endpoint uses default", func(t *testing.T) {
		client, err := clientcli.New(&clientcli.Config{})
		require.NoError(t, err)
		assert.Equal(t, clientcli.DefaultEndpoint, client.Endpoint())
	})

	t.Run("trailing slash removed", func(t *testing.T) {
		client, err := clientcli.New(&clientcli.Config{Endpoint: "http://localhost:9000/"})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000", client.Endpoint())
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := clientcli.New(nil)
		assert.ErrorIs(t, err, clientcli.ErrConfigRequired)
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		_, err := clientcli.New(&clientcli.Config{Endpoint: "ftp://example.com"})
		assert.ErrorIs(t, err, clientcli.ErrInvalidEndpoint)
	})

	t.Run("options applied", func(t *testing.T) {
		hc := &http.Client{}
		client, err := clientcli.New(&clientcli.Config{}, clientcli.WithHTTPClient(hc), clientcli.WithTimeout(time.Second))
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, time.Second, hc.Timeout)
	})
}

func TestClient_Greet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/greetings", r.URL.Path)
		assert.Equal(t, "Aragorn", r.URL.Query().Get("name"))
		assert.Equal(t, "Human", r.URL.Query().Get("race"))
		_, _ = w.Write([]byte("Greetings Aragorn the Human, welcome to our kingdom."))
	})

	got, err := client.Greet(context.Background(), clientcli.GreetOptions{Name: "Aragorn", Race: "Human"})
	require.NoError(t, err)
	assert.Equal(t, "Greetings Aragorn the Human, welcome to our kingdom.", got)
}

func TestClient_Sum(t *testing.T) {
	t.Run("decodes json", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sum", r.URL.Path)
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.Equal(t, "1.5", r.URL.Query().Get("a"))
			assert.Equal(t, "2", r.URL.Query().Get("b"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"a":1.5,"b":2,"sum":3.5}`))
		})

		got, err := client.Sum(context.Background(), clientcli.SumOptions{A: 1.5, B: 2})
		require.NoError(t, err)
		assert.Equal(t, &clientcli.SumResult{A: 1.5, B: 2, Sum: 3.5}, got)
	})

	t.Run("bad json", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		})

		_, err := client.Sum(context.Background(), clientcli.SumOptions{A: 1, B: 2})
		assert.Error(t, err)
	})
}

func TestClient_Cipher(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/cipher", r.URL.Path)
			assert.Equal(t, "hello", r.URL.Query().Get("text"))
			assert.Equal(t, "3", r.URL.Query().Get("shift"))
			_, _ = w.Write([]byte("KHOOR"))
		})

		got, err := client.Cipher(context.Background(), clientcli.CipherOptions{Text: "hello", Shift: 3})
		require.NoError(t, err)
		assert.Equal(t, &clientcli.CipherResult{Text: "hello", Shift: 3, Ciphertext: "KHOOR"}, got)
	})

	t.Run("empty text rejected locally", func(t *testing.T) {
		client, err := clientcli.New(&clientcli.Config{Endpoint: "http://127.0.0.1:1"})
		require.NoError(t, err)

		_, err = client.Cipher(context.Background(), clientcli.CipherOptions{Shift: 3})
		assert.ErrorIs(t, err, clientcli.ErrEmptyText)
	})

	t.Run("bad request", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "shift must be a number", http.StatusBadRequest)
		})

		_, err := client.Cipher(context.Background(), clientcli.CipherOptions{Text: "x", Shift: 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, clientcli.ErrBadRequest)

		var apiErr *clientcli.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsBadRequest())
		assert.Equal(t, "shift must be a number", apiErr.Body)
	})
}

func TestClient_Lotto(t *testing.T) {
	t.Run("sends repeated numbers", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/lotto", r.URL.Path)
			assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, r.URL.Query()["numbers"])
			_, _ = w.Write([]byte(`{"guesses":[1,2,3,4,5,6],"winning_numbers":[1,2,3,4,5,7],"misses":[7],"message":"Congratulations! You win $100!"}`))
		})

		got, err := client.Lotto(context.Background(), clientcli.LottoOptions{Numbers: []int{1, 2, 3, 4, 5, 6}})
		require.NoError(t, err)
		assert.Equal(t, []int{7}, got.Misses)
		assert.Equal(t, "Congratulations! You win $100!", got.Message)
	})

	t.Run("no numbers", func(t *testing.T) {
		client, err := clientcli.New(&clientcli.Config{})
		require.NoError(t, err)

		_, err = client.Lotto(context.Background(), clientcli.LottoOptions{})
		assert.ErrorIs(t, err, clientcli.ErrNoNumbers)
	})
}

func TestClient_EchoAndPing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			_, _ = w.Write([]byte("Hello Drills!"))
		case "/echo":
			_, _ = w.Write([]byte("Here are some details of your request:"))
		default:
			http.NotFound(w, r)
		}
	})

	require.NoError(t, client.Ping(context.Background()))

	got, err := client.Echo(context.Background())
	require.NoError(t, err)
	assert.Contains(t, got, "details of your request")
}

func TestClient_NotFound(t *testing.T) {
	client := newTestClient(t, http.NotFound)

	err := client.Ping(context.Background())
	assert.ErrorIs(t, err, clientcli.ErrNotFound)
	assert.NotErrorIs(t, err, clientcli.ErrBadRequest)
}

func TestAPIError(t *testing.T) {
	err := &clientcli.APIError{StatusCode: http.StatusBadRequest, Body: "text is required"}
	assert.Equal(t, "server error: 400 - text is required", err.Error())

	wrapped := fmt.Errorf("cipher: %w", err)
	assert.True(t, errors.Is(wrapped, clientcli.ErrBadRequest))
	assert.False(t, errors.Is(wrapped, clientcli.ErrNotFound))
}
