package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/courier/http"
)

// Config represents the top-level configuration file structure.
type Config struct {
	// Environments defines target environments with base URLs and default headers
	Environments map[string]Environment `yaml:"environments"`

	// Requests defines named request descriptions
	Requests map[string]Request `yaml:"requests"`
}

// Environment represents a target environment.
type Environment struct {
	// BaseURL is the base URL for all requests in this environment
	BaseURL string `yaml:"baseUrl"`

	// Headers are default headers added to every request in this environment
	Headers map[string]string `yaml:"headers,omitempty"`
}

// Request represents a named request description.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE, etc.)
	Method string `yaml:"method"`

	// Path is joined onto the environment's base URL
	Path string `yaml:"path"`

	// Headers are request-specific headers
	Headers map[string]string `yaml:"headers,omitempty"`

	// Params is the unencoded request body
	Params map[string]interface{} `yaml:"params,omitempty"`

	// Encoding selects the body encoding: "json" (default) or "form"
	Encoding string `yaml:"encoding,omitempty"`
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses configuration bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// BuildRequest assembles the named request for the named environment into a
// core request description. Environment headers apply first, then request
// headers, so a request header replaces an environment default sharing its
// key.
func (c *Config) BuildRequest(envName, reqName string) (*http.Request, error) {
	env, ok := c.Environments[envName]
	if !ok {
		return nil, fmt.Errorf("unknown environment %q", envName)
	}
	tmpl, ok := c.Requests[reqName]
	if !ok {
		return nil, fmt.Errorf("unknown request %q", reqName)
	}

	encoding, err := parseEncoding(tmpl.Encoding)
	if err != nil {
		return nil, fmt.Errorf("request %q: %w", reqName, err)
	}

	req := http.NewRequest(http.Method(tmpl.Method), tmpl.Path).
		WithBaseURL(env.BaseURL).
		WithEncoding(encoding)
	for key, value := range env.Headers {
		req.Headers().Set(http.Header{Key: key, Value: value})
	}
	for key, value := range tmpl.Headers {
		req.Headers().Set(http.Header{Key: key, Value: value})
	}
	if tmpl.Params != nil {
		req.WithParams(http.Parameters(tmpl.Params))
	}
	return req, nil
}

func parseEncoding(name string) (http.Encoding, error) {
	switch name {
	case "", "json":
		return http.EncodingJSON, nil
	case "form":
		return http.EncodingForm, nil
	default:
		return "", fmt.Errorf("unknown encoding %q", name)
	}
}
