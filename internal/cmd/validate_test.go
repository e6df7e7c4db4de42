package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelpr/pkg/labels"
)

func TestValidateRules_Offline(t *testing.T) {
	settings := testSettings(t, "", testEvent)
	settings.Token = ""

	var out bytes.Buffer
	err := validateRules(context.Background(), &out, io.Discard, settings, "")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Rules: 2")
	assert.Contains(t, out.String(), "Governed labels: area:src, docs")
}

func TestValidateRules_InvalidRules(t *testing.T) {
	settings := testSettings(t, "", testEvent)
	settings.ConfigPath = writeFile(t, settings.Workspace, "bad.yml", "- regExp: \"\"\n  labels: []\n")

	err := validateRules(context.Background(), io.Discard, io.Discard, settings, "")
	assert.True(t, labels.IsConfigurationError(err))
}

func TestValidateRules_MissingRepositoryLabels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/repos/acme/widgets/labels" {
			_ = json.NewEncoder(w).Encode([]map[string]string{{"name": "docs"}, {"name": "bug"}})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	settings := testSettings(t, server.URL, testEvent)

	var out bytes.Buffer
	err := validateRules(context.Background(), &out, io.Discard, settings, "acme/widgets")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Labels not defined in acme/widgets yet: area:src")
}

func TestValidateRules_RepositoryRequiresToken(t *testing.T) {
	settings := testSettings(t, "", testEvent)
	settings.Token = ""

	var errOut bytes.Buffer
	err := validateRules(context.Background(), io.Discard, &errOut, settings, "acme/widgets")
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "GITHUB_TOKEN")
}

func TestParseRepository(t *testing.T) {
	tests := []struct {
		input   string
		owner   string
		name    string
		wantErr bool
	}{
		{input: "acme/widgets", owner: "acme", name: "widgets"},
		{input: " acme/widgets ", owner: "acme", name: "widgets"},
		{input: "acme", wantErr: true},
		{input: "/widgets", wantErr: true},
		{input: "acme/", wantErr: true},
		{input: "acme/widgets/extra", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			owner, name, err := parseRepository(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.name, name)
		})
	}
}
