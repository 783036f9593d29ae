//go:build unit

/*
 * @license
 * Copyright 2025 Dynatrace LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sendgrid_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	coreapi "github.com/dynatrace/dynatrace-configuration-as-code-core/api"
	corerest "github.com/dynatrace/dynatrace-configuration-as-code-core/api/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynatrace/sendgrid-manager/internal/secret"
	"github.com/dynatrace/sendgrid-manager/pkg/sendgrid"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *sendgrid.HTTPClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := sendgrid.NewClient(t.Context(), server.URL, secret.MaskedString("SG.test-key"),
		sendgrid.WithHTTPClient(server.Client()),
		sendgrid.WithUserAgent("sendgrid-manager/test"))
	require.NoError(t, err)
	return c
}

func TestNewClient_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  secret.MaskedString
	}{
		{"missing scheme", "api.sendgrid.com", "key"},
		{"unparsable url", "http://[::1", "key"},
		{"empty key", "https://api.sendgrid.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sendgrid.NewClient(t.Context(), tt.url, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestListTemplates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v3/templates", r.URL.Path)
		assert.Equal(t, "Bearer SG.test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "sendgrid-manager/test", r.Header.Get("User-Agent"))
		assert.Equal(t, "legacy,dynamic", r.URL.Query().Get("generations"))
		assert.Equal(t, "200", r.URL.Query().Get("page_size"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprint(w, `{
			"result": [
				{"id": "d-1", "name": "welcome", "generation": "dynamic", "versions": [
					{"id": "v-1", "template_id": "d-1", "active": 1, "name": "Welcome v1"},
					{"id": "v-2", "template_id": "d-1", "active": 0, "name": "Welcome v2"}
				]},
				{"id": "d-2", "name": "empty", "versions": []}
			],
			"_metadata": {"self": "https://api.sendgrid.com/v3/templates", "count": 2}
		}`)
	})

	templates, err := c.ListTemplates(t.Context())
	require.NoError(t, err)

	require.Len(t, templates, 2)
	assert.Equal(t, "d-1", templates[0].ID)
	assert.Equal(t, "welcome", templates[0].Name)
	require.Len(t, templates[0].Versions, 2)
	assert.True(t, templates[0].Versions[0].IsActive())
	assert.False(t, templates[0].Versions[1].IsActive())
	assert.Empty(t, templates[1].Versions)
}

func TestListTemplates_FollowsPagination(t *testing.T) {
	var calls atomic.Int32
	var serverURL string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Query().Get("page_token") {
		case "":
			_, _ = fmt.Fprintf(w, `{"result":[{"id":"d-1","name":"a","versions":[]}],"_metadata":{"next":"%s/v3/templates?page_token=p2&page_size=200"}}`, serverURL)
		case "p2":
			_, _ = fmt.Fprint(w, `{"result":[{"id":"d-2","name":"b","versions":[]}],"_metadata":{}}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	t.Cleanup(server.Close)
	serverURL = server.URL

	c, err := sendgrid.NewClient(t.Context(), server.URL, "key", sendgrid.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	templates, err := c.ListTemplates(t.Context())
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	require.Len(t, templates, 2)
	assert.Equal(t, "d-1", templates[0].ID)
	assert.Equal(t, "d-2", templates[1].ID)
}

func TestListTemplates_StopsOnRepeatedPageToken(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = fmt.Fprint(w, `{"result":[],"_metadata":{"next":"https://api.sendgrid.com/v3/templates?page_token=same"}}`)
	})

	_, err := c.ListTemplates(t.Context())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestListTemplates_LegacyResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"templates":[{"id":"0b1c","name":"legacy","versions":[{"id":"v","template_id":"0b1c","active":1,"name":"legacy v"}]}]}`)
	})

	templates, err := c.ListTemplates(t.Context())
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "legacy", templates[0].Name)
}

func TestListTemplates_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"errors":[{"field":null,"message":"authorization required"}]}`)
	})

	_, err := c.ListTemplates(t.Context())
	require.Error(t, err)

	var apiErr coreapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestListTemplates_InvalidJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"result": [`)
	})

	_, err := c.ListTemplates(t.Context())
	assert.ErrorContains(t, err, "failed to parse template list")
}

func TestGetVersion(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/templates/d-1/versions/v-1", r.URL.Path)
		assert.Equal(t, "Bearer SG.test-key", r.Header.Get("Authorization"))
		_, _ = fmt.Fprint(w, `{"id":"v-1","template_id":"d-1","active":1,"name":"Welcome v1","plain_content":"Hi","html_content":"<p>Hi</p>"}`)
	})

	v, err := c.GetVersion(t.Context(), "d-1", "v-1")
	require.NoError(t, err)

	assert.Equal(t, "Welcome v1", v.Name)
	require.NotNil(t, v.PlainContent)
	require.NotNil(t, v.HTMLContent)
	assert.Equal(t, "Hi", *v.PlainContent)
	assert.Equal(t, "<p>Hi</p>", *v.HTMLContent)
}

func TestGetVersion_MissingContentIsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `{"id":"v-1","template_id":"d-1","active":1,"name":"no content"}`)
	})

	v, err := c.GetVersion(t.Context(), "d-1", "v-1")
	require.NoError(t, err)
	assert.Nil(t, v.PlainContent)
	assert.Nil(t, v.HTMLContent)
}

func TestGetVersion_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetVersion(t.Context(), "d-1", "v-1")
	require.Error(t, err)
	assert.ErrorContains(t, err, `failed to get version "v-1" of template "d-1"`)
}

func TestNewClient_HTTPListenerSeesTraffic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":[]}`))
	}))
	defer server.Close()

	var requests, responses atomic.Int32
	listener := &corerest.HTTPListener{Callback: func(rr corerest.RequestResponse) {
		if _, ok := rr.IsRequest(); ok {
			requests.Add(1)
		}
		if _, ok := rr.IsResponse(); ok {
			responses.Add(1)
		}
	}}

	c, err := sendgrid.NewClient(t.Context(), server.URL, "key",
		sendgrid.WithHTTPClient(server.Client()),
		sendgrid.WithHTTPListener(listener))
	require.NoError(t, err)

	_, err = c.ListTemplates(t.Context())
	require.NoError(t, err)

	assert.Equal(t, int32(1), requests.Load())
	assert.Equal(t, int32(1), responses.Load())
}
