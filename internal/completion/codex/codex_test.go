package codex_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitbench/internal/completion/codex"
)

func TestNewClient(t *testing.T) {
	tests := map[string]struct {
		cfg    codex.ClientConfig
		expErr bool
	}{
		"A config with an API key should create the client": {
			cfg: codex.ClientConfig{APIKey: "test-key"},
		},

		"A config without an API key should fail": {
			cfg:    codex.ClientConfig{},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			client, err := codex.NewClient(test.cfg)

			if test.expErr {
				assert.Error(err)
				assert.Nil(client)
			} else {
				assert.NoError(err)
				assert.NotNil(client)
			}
		})
	}
}

func TestClientComplete(t *testing.T) {
	tests := map[string]struct {
		handler http.HandlerFunc
		timeout time.Duration
		expText string
	}{
		"A successful response should return the first choice's text": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				resp := map[string]any{
					"choices": []map[string]any{
						{"text": "git checkout --theirs file.txt\ngit add file.txt\n"},
						{"text": "ignored second choice"},
					},
				}
				_ = json.NewEncoder(w).Encode(resp)
			},
			expText: "git checkout --theirs file.txt\ngit add file.txt",
		},

		"A non-2xx response should return an empty completion": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
			},
			expText: "",
		},

		"A response without choices should return an empty completion": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices": []}`))
			},
			expText: "",
		},

		"A malformed response body should return an empty completion": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			expText: "",
		},

		"A timed out call should return an empty completion": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
				_, _ = w.Write([]byte(`{"choices": [{"text": "too late"}]}`))
			},
			timeout: 50 * time.Millisecond,
			expText: "",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			server := httptest.NewServer(test.handler)
			defer server.Close()

			client, err := codex.NewClient(codex.ClientConfig{
				APIKey:  "test-key",
				BaseURL: server.URL,
				Timeout: test.timeout,
			})
			require.NoError(err)

			got, err := client.Complete(context.Background(), "test prompt")

			// Remote failures are never surfaced as errors.
			assert.NoError(err)
			assert.Equal(test.expText, got)
		})
	}
}

func TestClientCompleteSendsFixedParameters(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"choices": [{"text": "git status"}]}`))
	}))
	defer server.Close()

	client, err := codex.NewClient(codex.ClientConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(err)

	_, err = client.Complete(context.Background(), "test prompt")
	require.NoError(err)

	assert.Equal("code-davinci-002", gotBody["model"])
	assert.Equal("test prompt", gotBody["prompt"])
	assert.Equal(0.5, gotBody["temperature"])
	assert.Equal(float64(500), gotBody["max_tokens"])
	assert.Equal([]any{"\n\n"}, gotBody["stop"])
}
