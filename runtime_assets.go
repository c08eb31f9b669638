package ajaxform

import (
	"io/fs"

	"github.com/goliatone/go-ajaxform/pkg/assets"
)

// ClientAssetsFS exposes the embedded client runtime scripts (query utility,
// templating engine, AJAX runtime) so Go applications can serve them without
// a frontend build step.
//
// Typical mount:
//
//	mux.Handle("/assets/ajaxform/",
//	  http.StripPrefix("/assets/ajaxform/",
//	    http.FileServerFS(ajaxform.ClientAssetsFS()),
//	  ),
//	)
func ClientAssetsFS() fs.FS {
	return assets.FS()
}
