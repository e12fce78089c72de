package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunListAlgorithms(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunListAlgorithms(&out, "text"))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 5)
		assert.Equal(t, []string{"ALGORITHM", "LABEL", "KEY", "NONCE", "TAG", "SHAPE"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"aes128-gcm", "AES128-GCM", "16", "12", "16", "seal"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"ascon128", "ASCON128", "16", "16", "16", "nist"}, strings.Fields(lines[3]))
		assert.Equal(t, []string{"chacha20-poly1305", "ChaChaPoly", "32", "12", "16", "session"}, strings.Fields(lines[4]))
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, RunListAlgorithms(&out, "json"))

		var algorithms []algorithmOutput
		require.NoError(t, json.Unmarshal(out.Bytes(), &algorithms))
		require.Len(t, algorithms, 4)
		assert.Equal(t, algorithmOutput{
			Algorithm: "aes256-gcm",
			Label:     "AES256-GCM",
			KeyLen:    32,
			NonceLen:  12,
			TagLen:    16,
			Shape:     "seal",
		}, algorithms[1])
	})
}
