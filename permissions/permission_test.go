package permissions_test

import (
	"appointly/permissions"
	"appointly/shared/constant"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedDocument(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.True(t, data.IsPublic("/v1/appointments/available/{businessIdentifier}", http.MethodGet))
	assert.True(t, data.IsPublic("/v1/public/{businessIdentifier}/appointments", http.MethodPost))
	assert.False(t, data.IsPublic("/v1/appointments/{id}", http.MethodDelete))

	assert.True(t, data.Allows("/v1/appointments/recurring", http.MethodPost, constant.RoleOwner))
	assert.True(t, data.Allows("/v1/appointments/recurring", http.MethodPost, constant.RoleAdmin))
	assert.False(t, data.Allows("/v1/appointments/recurring", http.MethodPost, "customer"))
}

func TestParse(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[
		{"path":"/v1/things","method":"GET","permissions":["owner"]},
		{"path":"/v1/things","method":"POST","permissions":[]}
	]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"owner"}, data.FindPermissions("/v1/things", http.MethodGet).Permissions)
	assert.True(t, data.Allows("/v1/things", http.MethodPost, "anyone"))
	assert.True(t, data.Allows("/v1/unlisted", http.MethodGet, "anyone"))
	assert.False(t, data.Allows("/v1/things", http.MethodGet, "staff"))

	_, err = permissions.Parse([]byte(`{"endpoints":[
		{"path":"/v1/things","method":"GET"},
		{"path":"/v1/things","method":"GET"}
	]}`))
	assert.Error(t, err)

	_, err = permissions.Parse([]byte(`{"endpoints":`))
	assert.Error(t, err)
}
