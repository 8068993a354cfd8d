package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/courier/http"
)

const sampleConfig = `
environments:
  staging:
    baseUrl: https://staging.example.com
    headers:
      X-Env: staging
      Accept: application/json
requests:
  createUser:
    method: POST
    path: /users
    headers:
      Accept: application/vnd.api+json
    params:
      name: John
  login:
    method: POST
    path: /oauth/token
    encoding: form
    params:
      grant_type: client_credentials
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Len(t, cfg.Environments, 1)
	assert.Len(t, cfg.Requests, 2)
	assert.Equal(t, "https://staging.example.com", cfg.Environments["staging"].BaseURL)
	assert.Equal(t, "form", cfg.Requests["login"].Encoding)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("requests: ["))
	assert.Error(t, err)
}

func TestBuildRequest(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	req, err := cfg.BuildRequest("staging", "createUser")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method())
	assert.Equal(t, "https://staging.example.com", req.BaseURL())
	assert.Equal(t, http.EncodingJSON, req.ParameterEncoding())
	assert.Equal(t, "John", req.Parameters()["name"])

	// Request header replaces the environment default for the same key.
	assert.True(t, req.Headers().Contains(http.Accept("application/vnd.api+json")))
	assert.False(t, req.Headers().Contains(http.Accept("application/json")))
	assert.True(t, req.Headers().Contains(http.Header{Key: "X-Env", Value: "staging"}))

	httpReq, err := req.Build()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com/users", httpReq.URL.String())
}

func TestBuildRequest_FormEncoding(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	req, err := cfg.BuildRequest("staging", "login")
	require.NoError(t, err)
	assert.Equal(t, http.EncodingForm, req.ParameterEncoding())
}

func TestBuildRequest_Unknown(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	_, err = cfg.BuildRequest("prod", "createUser")
	assert.ErrorContains(t, err, "unknown environment")

	_, err = cfg.BuildRequest("staging", "nope")
	assert.ErrorContains(t, err, "unknown request")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		config        string
		expectedPaths []string
	}{
		{
			name:          "Valid config",
			config:        sampleConfig,
			expectedPaths: nil,
		},
		{
			name:          "Empty config",
			config:        "{}",
			expectedPaths: []string{"environments", "requests"},
		},
		{
			name: "Missing baseUrl",
			config: `
environments:
  dev: {}
requests:
  ping:
    method: GET
`,
			expectedPaths: []string{"environments.dev.baseUrl"},
		},
		{
			name: "Relative baseUrl",
			config: `
environments:
  dev:
    baseUrl: example.com/api
requests:
  ping:
    method: GET
`,
			expectedPaths: []string{"environments.dev.baseUrl"},
		},
		{
			name: "Missing method and bad encoding",
			config: `
environments:
  dev:
    baseUrl: https://example.com
requests:
  ping:
    encoding: msgpack
`,
			expectedPaths: []string{"requests.ping.method", "requests.ping.encoding"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.config))
			require.NoError(t, err)

			errs := Validate(cfg)
			var paths []string
			for _, e := range errs {
				paths = append(paths, e.Path)
			}
			assert.ElementsMatch(t, tc.expectedPaths, paths)
		})
	}
}
