package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCommand(t *testing.T) {
	c := NewConverter()

	result, err := c.ConvertCommand(`curl 'https://api.example.com/users' -X 'POST' -H 'Content-Type: application/json' -d '{"name":"John"}'`)
	require.NoError(t, err)

	assert.Contains(t, result, "### post_users")
	assert.Contains(t, result, "POST https://api.example.com/users")
	assert.Contains(t, result, "Content-Type: application/json")
	assert.Contains(t, result, `{"name":"John"}`)
}

func TestConvertCommand_ImplicitPost(t *testing.T) {
	c := NewConverter()

	result, err := c.ConvertCommand(`curl 'https://api.example.com/users' -d 'name=John'`)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result, "### post_users\n"), "got: %s", result)
	assert.Contains(t, result, "POST https://api.example.com/users")
}

func TestConvertCommand_DefaultsToGet(t *testing.T) {
	c := NewConverter()

	result, err := c.ConvertCommand(`curl 'https://api.example.com/users'`)
	require.NoError(t, err)

	assert.Contains(t, result, "GET https://api.example.com/users")
}

func TestConvertCommand_MultipleDataJoined(t *testing.T) {
	c := NewConverter()

	result, err := c.ConvertCommand(`curl 'https://api.example.com/form' -d 'a=1' -d 'b=2'`)
	require.NoError(t, err)

	assert.Contains(t, result, "a=1&b=2")
}

func TestConvertCommand_Flags(t *testing.T) {
	c := NewConverter()

	result, err := c.ConvertCommand(`curl 'https://api.example.com/users' -v --insecure`)
	require.NoError(t, err)
	assert.Contains(t, result, "# @flag -v")
	assert.Contains(t, result, "# @flag --insecure")

	c = NewConverter(WithFlags(false))
	result, err = c.ConvertCommand(`curl 'https://api.example.com/users' -v`)
	require.NoError(t, err)
	assert.NotContains(t, result, "# @flag")
}

func TestConvertCommand_RootPathName(t *testing.T) {
	c := NewConverter()

	result, err := c.ConvertCommand(`curl 'https://api.example.com'`)
	require.NoError(t, err)
	assert.Contains(t, result, "### get_root")
}

func TestConvertCommand_Invalid(t *testing.T) {
	c := NewConverter()

	_, err := c.ConvertCommand(`not a curl command`)
	assert.Error(t, err)
}
