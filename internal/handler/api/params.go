package api

import (
	"net/http"
	"strconv"

	"petstore-backend/internal/handler/httperr"
	"petstore-backend/internal/infra"
	"petstore-backend/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// pathID parses a positive integer path parameter, aborting with 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.Newf("%s must be positive", name)
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// abortWithUseCaseError maps use case failures to status codes.
func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, errs.ErrDomainValidation), errs.Is(err, errs.ErrDanglingReference):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		httperr.AbortWithError(c, http.StatusConflict, err, "Resource is still referenced", nil)
	case infra.IsKind(err, infra.KindDuplicateKey):
		httperr.AbortWithError(c, http.StatusConflict, err, "Resource already exists", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

func notFound(c *gin.Context, what string, id int64) {
	httperr.AbortWithError(c, http.StatusNotFound, errs.Newf("%s %d not found", what, id), what+" not found", nil)
}
