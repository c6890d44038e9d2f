package response

import (
	"context"
	stderrors "errors"
	"net/http"

	"Storefront/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ErrorBody struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{Message: msg},
	}
}

// ErrorHandler is installed with httpx.SetErrorHandlerCtx. A CodeMsg whose
// code is an HTTP error status is written as-is; anything else is logged and
// hidden behind a 500.
func ErrorHandler(ctx context.Context, err error) (int, any) {
	var cm *errors.CodeMsg
	if stderrors.As(err, &cm) && cm.Code >= http.StatusBadRequest && cm.Code < 600 {
		return cm.Code, NewErrorResponse(cm.Msg)
	}

	logx.WithContext(ctx).Errorf("unhandled error: %v", err)
	return http.StatusInternalServerError, NewErrorResponse(errno.Internal)
}
