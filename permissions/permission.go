package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// PermissionData maps chi route patterns to the roles allowed on them.
type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func routeKey(method, path string) string {
	return method + " " + path
}

func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index == nil {
		idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
			return rp.Path == path && rp.Method == method
		})

		if idx == -1 {
			return Permission{}
		}

		return r.Endpoints[idx]
	}

	return r.index[routeKey(method, path)]
}

// IsPublic reports whether the route needs no token at all.
func (r *PermissionData) IsPublic(path, method string) bool {
	return r.FindPermissions(path, method).Skip
}

// Allows reports whether role may call the route. Routes without a role list
// are open to any authenticated caller.
func (r *PermissionData) Allows(path, method, role string) bool {
	if r.Skip {
		return true
	}

	permission := r.FindPermissions(path, method)
	if permission.Skip || len(permission.Permissions) == 0 {
		return true
	}

	return slices.Contains(permission.Permissions, role)
}

// Parse decodes a permission document and indexes it by method and path.
func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	permissions.index = make(map[string]Permission, len(permissions.Endpoints))

	for _, endpoint := range permissions.Endpoints {
		key := routeKey(endpoint.Method, endpoint.Path)
		if _, exists := permissions.index[key]; exists {
			return nil, fmt.Errorf("duplicate permission for %s", key)
		}

		permissions.index[key] = endpoint
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
