// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound is registered as both the NotFound and the MethodNotAllowed
// handler of the router: a known path requested with an unsupported method
// is answered with 404 like an unknown path, so the route table is not
// disclosed.
func notFound(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
