package submit

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the full mount path of the submit endpoint under basePath.
func (c *Component) MountPath(basePath string) string {
	return mountPath(basePath, c.opts.RoutePath)
}

// RegisterRoutes registers the submit handler under basePath on mux and
// returns the mounted pattern.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("submit: missing mux")
	}
	pattern := c.MountPath(basePath)
	mux.Handle(pattern, c.Handler())
	return pattern, nil
}

func mountPath(basePath, routePath string) string {
	basePath = strings.TrimSpace(basePath)
	routePath = strings.TrimSpace(routePath)

	if routePath == "" {
		routePath = "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	if basePath == "" || basePath == "/" {
		return routePath
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimRight(basePath, "/")
	return basePath + routePath
}
