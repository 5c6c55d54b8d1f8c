package status

import (
	"fmt"
	"net/http"
)

var (
	WarnEmptySearchQuery = fmt.Errorf("search query should not be empty")
	WarnEmptyCommentBody = fmt.Errorf("comment body should not be empty")
)

func WarningStatusBadRequest(err error) Toast {
	return Toast{
		Message:    err.Error(),
		StatusCode: http.StatusBadRequest,
	}
}

func WarningStatunUnauthorized(err error) Toast {
	return Toast{
		Message:    err.Error(),
		StatusCode: http.StatusUnauthorized,
	}
}

func WarningStatusForbidden(err error) Toast {
	return Toast{
		Message:    err.Error(),
		StatusCode: http.StatusForbidden,
	}
}
