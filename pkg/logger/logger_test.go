package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Writer: &buf})

	log.WithComponent("Syncer").Info("sync finished", "shop", "demo.myshopify.com", "posts", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "sync finished", record["message"])
	assert.Equal(t, "Syncer", record["component"])
	assert.Equal(t, "demo.myshopify.com", record["shop"])
}

func TestNew_ProductionDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Writer: &buf})

	log.Debug("noisy")

	assert.Empty(t, buf.String())
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Writer: &buf})

	log.Printf("PROVIDE %s", "config")

	assert.Contains(t, buf.String(), "PROVIDE config")
}
