package server

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/kyp-analysis/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 7, 15, 4, 5, 0, time.UTC)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 2 * time.Second,
		},
		Log: config.LogConfig{Level: "debug", Format: "json"},
		RateLimit: config.RateLimitConfig{
			Enabled:       true,
			DefaultLimit:  600,
			DefaultWindow: time.Minute,
			ReportLimit:   30,
			ReportWindow:  time.Minute,
			ReportBurst:   20,
		},
		Report: config.ReportConfig{Font: "Calibri", FontSize: 11},
	}
}

// newTestServer builds a server on a fixed clock whose logs go to the returned buffer.
func newTestServer(t *testing.T, mutate ...func(*config.Config)) (*Server, *bytes.Buffer) {
	t.Helper()

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	var logs bytes.Buffer
	s, err := New(cfg, zerolog.New(zerolog.SyncWriter(&logs)), WithClock(fixedClock))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, &logs
}

// documentText extracts the visible text of word/document.xml, one line per
// paragraph, with line breaks and tabs restored.
func documentText(t *testing.T, data []byte) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var raw []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		raw, err = io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
	}
	require.NotNil(t, raw, "word/document.xml missing from package")

	var sb strings.Builder
	dec := xml.NewDecoder(bytes.NewReader(raw))
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inText = true
			case "br":
				sb.WriteString("\n")
			case "tab":
				sb.WriteString("\t")
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(el)
			}
		}
	}
	return sb.String()
}
