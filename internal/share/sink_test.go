package share

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	texts []string
	mimes []string
}

func (c *captureSink) Send(text, mimeType string) {
	c.texts = append(c.texts, text)
	c.mimes = append(c.mimes, mimeType)
}

func TestDeliverUsesTextPlain(t *testing.T) {
	sink := &captureSink{}
	require.True(t, Deliver(sink, "halo"))
	require.Equal(t, []string{"halo"}, sink.texts)
	require.Equal(t, []string{MIMETextPlain}, sink.mimes)
}

func TestDeliverWithoutSinkIsSkipped(t *testing.T) {
	require.False(t, Deliver(nil, "halo"))
}

func TestFanoutSkipsNilSinks(t *testing.T) {
	first, second := &captureSink{}, &captureSink{}
	Fanout{first, nil, second}.Send("pesan", MIMETextPlain)
	require.Equal(t, []string{"pesan"}, first.texts)
	require.Equal(t, []string{"pesan"}, second.texts)
}

func TestLogSinkWritesEntry(t *testing.T) {
	var buf bytes.Buffer
	LogSink{Logger: zerolog.New(&buf)}.Send("Data Laundry", MIMETextPlain)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "share_message", entry["message"])
	require.Equal(t, MIMETextPlain, entry["mime_type"])
	require.Equal(t, "Data Laundry", entry["text"])
}

func TestFromNames(t *testing.T) {
	logger := zerolog.Nop()
	var out bytes.Buffer

	sink, err := FromNames([]string{SinkLog}, logger, &out)
	require.NoError(t, err)
	require.IsType(t, LogSink{}, sink)

	sink, err = FromNames(nil, logger, &out)
	require.NoError(t, err)
	require.Nil(t, sink)
	require.False(t, Deliver(sink, "halo"))

	_, err = FromNames([]string{"whatsapp"}, logger, &out)
	require.ErrorContains(t, err, "whatsapp")
}

func TestFromNamesFansOut(t *testing.T) {
	var logBuf, out bytes.Buffer
	sink, err := FromNames([]string{SinkLog, SinkStdout}, zerolog.New(&logBuf), &out)
	require.NoError(t, err)
	require.IsType(t, Fanout{}, sink)

	require.True(t, Deliver(sink, "Data Laundry"))
	require.Equal(t, "Data Laundry\n\n", out.String())
	require.Contains(t, logBuf.String(), "share_message")
}

func TestSinkFunc(t *testing.T) {
	var got string
	SinkFunc(func(text, _ string) { got = text }).Send("x", MIMETextPlain)
	require.Equal(t, "x", got)
}
