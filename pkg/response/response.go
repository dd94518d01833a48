package response

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"realtime-client/pkg/discord"
	"realtime-client/pkg/errors"

	"github.com/gin-gonic/gin"
)

const reportTimeout = 15 * time.Second

// NewOKResp wraps data in the success envelope.
func NewOKResp(data any) Resp {
	return Resp{Message: MessageSuccess, Data: data}
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error writes err as an envelope. Errors that carry no HTTP meaning are
// answered with a generic 500 and reported to d when it is set.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	status, resp, known := toResp(err)
	if !known && d != nil && err != nil {
		report(d, c.Request.Method+" "+c.Request.URL.Path, err)
	}
	c.JSON(status, resp)
}

func HttpError(c *gin.Context, err *errors.HTTPError) {
	Error(c, err, nil)
}

// ErrorWithMap translates err through eMap (matching with errors.Is) before
// falling back to Error.
func ErrorWithMap(c *gin.Context, err error, eMap ErrorMapping) {
	for target, httpErr := range eMap {
		if stderrors.Is(err, target) {
			Error(c, httpErr, nil)
			return
		}
	}
	Error(c, err, nil)
}

func toResp(err error) (int, Resp, bool) {
	var vErr *errors.ValidationError
	if stderrors.As(err, &vErr) {
		return http.StatusBadRequest, Resp{ErrorCode: vErr.Code, Message: vErr.Error()}, true
	}
	var hErr *errors.HTTPError
	if stderrors.As(err, &hErr) {
		status := hErr.StatusCode
		if status == 0 {
			status = http.StatusBadRequest
		}
		return status, Resp{ErrorCode: hErr.Code, Message: hErr.Message}, true
	}
	return http.StatusInternalServerError, Resp{ErrorCode: InternalServerErrorCode, Message: DefaultErrorMessage}, false
}

// report runs detached from the request; the webhook client logs its own
// failures.
func report(d discord.IDiscord, route string, err error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()
		_ = d.SendError(ctx, "Control server error", route, err)
	}()
}
