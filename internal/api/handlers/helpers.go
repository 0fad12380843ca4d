package handlers

import (
	"log"
	"net/http"
	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"

	"github.com/labstack/echo/v4"
)

const statusFailed = "FAILED"

func success() contracts.Envelope {
	return contracts.Envelope{Status: domain.StatusSuccess}
}

// fail answers with the backend's failure envelope. Business-rule failures use
// 200 so the client sees a domain failure on a well-formed response.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, contracts.ErrorBody{Status: statusFailed, Message: msg})
}

func internalError(c echo.Context, op string, err error) error {
	log.Printf("%s failed: method=%s path=%s err=%v", op, c.Request().Method, c.Request().URL.Path, err)
	return fail(c, http.StatusInternalServerError, "internal server error")
}

func successWith(msg string) contracts.Envelope {
	return contracts.Envelope{Status: domain.StatusSuccess, Message: msg}
}
