package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumeapi/docs"
)

func TestConfigureSwagger(t *testing.T) {
	host, schemes := docs.SwaggerInfo.Host, docs.SwaggerInfo.Schemes
	t.Cleanup(func() {
		docs.SwaggerInfo.Host, docs.SwaggerInfo.Schemes = host, schemes
	})

	configureSwagger("cv.example.com", "https")
	assert.Equal(t, "cv.example.com", docs.SwaggerInfo.Host)
	assert.Equal(t, []string{"https"}, docs.SwaggerInfo.Schemes)

	configureSwagger("localhost:8080", "")
	assert.Equal(t, []string{"http"}, docs.SwaggerInfo.Schemes)
	assert.Contains(t, docs.SwaggerInfo.ReadDoc(), `"host": "localhost:8080"`)
}
