package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder_Build(t *testing.T) {
	builder := NewMetricsBuilder("test")
	server := gin.New()
	server.Use(builder.Build())
	server.GET("/quiz/test/:id", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "OK")
	})

	for _, path := range []string{"/quiz/test/1", "/quiz/test/2", "/not/exist"} {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		server.ServeHTTP(httptest.NewRecorder(), req)
	}

	// 同一个路由模板只有一组标签
	assert.Equal(t, float64(2),
		testutil.ToFloat64(builder.counterVec.WithLabelValues(http.MethodGet, "/quiz/test/:id", "200")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(builder.counterVec.WithLabelValues(http.MethodGet, unknownPath, "404")))
}
