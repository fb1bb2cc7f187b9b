package main

import "resumeapi/docs"

// configureSwagger points the served document at the public host. Call it
// once, before the server starts.
func configureSwagger(host, scheme string) {
	if scheme == "" {
		scheme = "http"
	}
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.Schemes = []string{scheme}
}
