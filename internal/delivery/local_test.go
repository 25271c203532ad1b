package delivery

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trucklink/orderfile/internal/service"
)

func TestDeliverWritesOrderFile(t *testing.T) {
	dir := t.TempDir()
	d, err := NewLocalDeliverer(dir, zerolog.Nop())
	require.NoError(t, err)

	payload := []byte("<?xml version=\"1.0\"?>\n<Order></Order>\n")
	err = d.Deliver(context.Background(), service.OrderFile{
		FileName: "SFIM1234567_ABCU1234567.xml",
		Payload:  base64.StdEncoding.EncodeToString(payload),
		Summary:  []byte("%PDF-1.4"),
	})
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(dir, "SFIM1234567_ABCU1234567.xml"))
	require.NoError(t, err)
	assert.Equal(t, payload, written)

	summary, err := os.ReadFile(filepath.Join(dir, "SFIM1234567_ABCU1234567.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), summary)
}

func TestDeliverRejectsBadPayload(t *testing.T) {
	d, err := NewLocalDeliverer(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)

	err = d.Deliver(context.Background(), service.OrderFile{
		FileName: "broken.xml",
		Payload:  "not base64!!",
	})
	assert.Error(t, err)
}

func TestNewLocalDelivererRequiresDir(t *testing.T) {
	_, err := NewLocalDeliverer("", zerolog.Nop())
	assert.Error(t, err)
}
