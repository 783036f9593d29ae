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

package sendgrid

import "net/http"

// CustomUserAgentTransport is a http.RoundTripper that sets a fixed user agent on each request.
type CustomUserAgentTransport struct {
	http.RoundTripper
	userAgent string
}

// NewCustomUserAgentTransport wraps baseTransport, or http.DefaultTransport if it is nil.
func NewCustomUserAgentTransport(baseTransport http.RoundTripper, userAgent string) *CustomUserAgentTransport {
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	return &CustomUserAgentTransport{
		RoundTripper: baseTransport,
		userAgent:    userAgent,
	}
}

func (t *CustomUserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the request they are given
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.RoundTripper.RoundTrip(r)
}
