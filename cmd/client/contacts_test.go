package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/MKhiriev/go-contact-keeper/models"
)

func parseContact(t *testing.T, stdin string, args ...string) (models.Contact, error) {
	t.Helper()

	var (
		got    models.Contact
		gotErr error
	)
	cmd := &cli.Command{
		Name:  "create",
		Flags: contactFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			got, gotErr = contactFromCommand(cmd, strings.NewReader(stdin))
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"create"}, args...)))
	return got, gotErr
}

func TestContactFromCommand_Flags(t *testing.T) {
	got, err := parseContact(t, "",
		"--name", "Ada",
		"--email", "ada@example.com",
		"--email", "al@example.org",
		"--phone", "+44 20",
		"--postal-address", "London",
		"--title", "Analyst",
	)
	require.NoError(t, err)
	assert.Equal(t, models.Contact{
		Name:    "Ada",
		Emails:  []string{"ada@example.com", "al@example.org"},
		Phones:  []string{"+44 20"},
		Address: "London",
		Title:   "Analyst",
	}, got)
}

func TestContactFromCommand_InputFileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contact.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Ada","gender":"female","emails":["old@example.com"]}`), 0o600))

	got, err := parseContact(t, "", "--input", path, "--email", "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, "female", got.Gender)
	assert.Equal(t, []string{"new@example.com"}, got.Emails)
}

func TestContactFromCommand_Stdin(t *testing.T) {
	got, err := parseContact(t, `{"name":"Grace","github":"ghopper"}`, "-i", "-")
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.Name)
	assert.Equal(t, "ghopper", got.GitHub)
}

func TestContactFromCommand_Errors(t *testing.T) {
	_, err := parseContact(t, "", "--input", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "error opening contact input")

	_, err = parseContact(t, "{not json", "--input", "-")
	assert.ErrorContains(t, err, "error decoding contact input")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, models.SearchResult{ID: "c1", Name: "Ada"}))
	assert.Equal(t, "{\n  \"_id\": \"c1\",\n  \"name\": \"Ada\"\n}\n", buf.String())
}

func TestRootCommand_Layout(t *testing.T) {
	root := newRootCommand(buildInfo())

	var names []string
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"keys", "contacts", "search"}, names)
	assert.Contains(t, root.Version, "N/A")
}
