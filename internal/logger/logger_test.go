package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, parseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, parseLevel("warn"))
	assert.Equal(t, logrus.ErrorLevel, parseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, parseLevel(""))
	assert.Equal(t, logrus.InfoLevel, parseLevel("verbose"))
}

func TestNewWithOptions_JSONOutsideLocal(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Environment: "production", Output: &buf})

	log.Component("aggregator").WithError(errors.New("boom")).Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "aggregator", line["component"])
	assert.Equal(t, "boom", line["error"])
}

func TestWithRequest_UsesHeaderID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Environment: "production", Output: &buf})

	req := httptest.NewRequest("GET", "/api/v1/dashboard", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	log.WithRequest(req).Info("req")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "abc-123", line["req_id"])
	assert.Equal(t, "/api/v1/dashboard", line["path"])
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	assert.Len(t, RequestID(req), 36)
}

func TestWithError_Nil(t *testing.T) {
	log := NewNop()
	assert.Same(t, log.Entry, log.WithError(nil))
}
