package http

import (
	"net/http"

	pkgErrors "worklife-balance/pkg/errors"
)

var errCouldNotLogout = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Could not log out")
