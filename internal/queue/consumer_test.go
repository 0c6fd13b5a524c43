package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-booking/internal/config"
)

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func sampleEvent() BookingConfirmedEvent {
	return BookingConfirmedEvent{
		EventID:   "4f2b0f5e-test",
		BookingID: 12,
		UserID:    3,
		UserEmail: "guest@example.com",
		RoomID:    7,
		RoomName:  "Standard Double",
		HotelName: "Grand Plaza",
		DateFrom:  "2024-06-01",
		DateTo:    "2024-06-05",
		TotalDays: 4,
		TotalCost: 48000,
	}
}

func TestRenderConfirmation(t *testing.T) {
	subject, body := RenderConfirmation(sampleEvent())

	assert.Equal(t, "Booking confirmed: Grand Plaza", subject)
	assert.Contains(t, body, "booking #12")
	assert.Contains(t, body, "Standard Double")
	assert.Contains(t, body, "Check-in:  2024-06-01")
	assert.Contains(t, body, "Check-out: 2024-06-05")
	assert.Contains(t, body, "Nights:    4")
	assert.Contains(t, body, "Total:     48000")
}

func TestHandleMessageRejectsBadPayloads(t *testing.T) {
	mailer := NewMailer(config.SMTPConfig{})

	err := handleMessage([]byte("{not json"), mailer)
	assert.Error(t, err)

	ev := sampleEvent()
	ev.UserEmail = ""
	raw, jerr := json.Marshal(ev)
	require.NoError(t, jerr)
	err = handleMessage(raw, mailer)
	assert.ErrorContains(t, err, "no recipient")
}

func TestHandleMessageDeliversViaMailer(t *testing.T) {
	chdir(t, t.TempDir())

	mailer := NewMailer(config.SMTPConfig{}) // no host: file-log fallback
	raw, err := json.Marshal(sampleEvent())
	require.NoError(t, err)
	require.NoError(t, handleMessage(raw, mailer))

	logged, err := os.ReadFile(filepath.Join("logs", "booking.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logged), "to=guest@example.com")
	assert.Contains(t, string(logged), "Booking confirmed: Grand Plaza")
}

func TestMailerLogAppends(t *testing.T) {
	chdir(t, t.TempDir())

	mailer := NewMailer(config.SMTPConfig{})
	require.NoError(t, mailer.Send("a@example.com", "first", "x"))
	require.NoError(t, mailer.Send("b@example.com", "second", "y"))

	logged, err := os.ReadFile(filepath.Join("logs", "booking.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logged), "to=a@example.com")
	assert.Contains(t, string(logged), "to=b@example.com")
}
