package status

import (
	"fmt"
	"net/http"
)

var (
	ErrDatabaseNotReady        = fmt.Errorf("database not initialized")
	ErrDB                      = fmt.Errorf("unexpected database error")
	ErrParsingForm             = fmt.Errorf("failed to parse a form")
	ErrDecodingForm            = fmt.Errorf("failed to decode a form")
	ErrFailedtoValidateRequest = fmt.Errorf("failed to validate a request")

	ErrArticleNotFound       = fmt.Errorf("article not found")
	ErrCreateArticleComment  = fmt.Errorf("failed to create an article comment")
	ErrGetAllArticleComments = fmt.Errorf("failed to get all article's comments")
	ErrSearch                = fmt.Errorf("search failed")
)

func ErrorNotFound(err error) Toast {
	return Toast{
		Message:    err.Error(),
		StatusCode: http.StatusNotFound,
	}
}

func ErrorInternalServerError(err error) Toast {
	return Toast{
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
	}
}
