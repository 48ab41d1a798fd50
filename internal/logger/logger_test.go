package logger

import (
	"bytes"
	"errors"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestFormatFields_SortedKeys(t *testing.T) {
	got := formatFields(Fields{
		"mode":        "STRICT",
		"count":       10,
		"duration_ms": int64(1234),
		"cost":        0.5,
	})
	assert.Equal(t, "{cost=0.50, count=10, duration_ms=1234, mode=STRICT}", got)
	assert.Equal(t, "", formatFields(nil))
}

func TestLevels(t *testing.T) {
	buf := captureLog(t)

	Info("analysis done", Fields{"mode": "DISCOVERY"})
	Warn("odd count", Fields{"count": 7})
	Debug("raw", nil)
	Error("provider failed", errors.New("boom"), Fields{"model": "m"})
	Error("no cause", nil, nil)

	out := buf.String()
	assert.Contains(t, out, "[INFO] analysis done {mode=DISCOVERY}")
	assert.Contains(t, out, "[WARN] odd count {count=7}")
	assert.Contains(t, out, "[DEBUG] raw")
	assert.Contains(t, out, "[ERROR] provider failed: boom {model=m}")
	assert.Contains(t, out, "[ERROR] no cause: <nil>")
}

func TestWithContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/v1/analyze", nil)
	c.Set("request_id", "req-1")

	fields := WithContext(c)
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/api/v1/analyze", fields["path"])
}
