package handlers

import (
	"errors"
	"net/http"

	"github.com/rohits-web03/notedrop/internal/logger"
	"github.com/rohits-web03/notedrop/internal/services"
	"github.com/rohits-web03/notedrop/internal/utils"
)

// serviceError is the single boundary mapping service errors onto the
// response envelope. Unknown errors become a generic 500.
func serviceError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{Success: false, Message: verr.Message})
	case errors.Is(err, services.ErrEmailTaken):
		// duplicate email maps to 400 by this API's convention
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{Success: false, Message: "Email already registered"})
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{Success: false, Message: "Invalid email or password"})
	case errors.Is(err, services.ErrNotFound):
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{Success: false, Message: "Not found"})
	default:
		logger.Log.Error("Unhandled error: ", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{Success: false, Message: "Internal Server Error"})
	}
}
