package httpserver

import (
	"net/http"

	"realtime-client/internal/app"
	"realtime-client/internal/notification"
	"realtime-client/pkg/errors"
	"realtime-client/pkg/response"

	"github.com/gin-gonic/gin"
)

var errMap = response.ErrorMapping{
	app.ErrEmptyProjectID: errors.NewHTTPError(110001, "Project id is required", http.StatusBadRequest),
}

// healthCheck reports loop, channel, router and presenter counters.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	st, err := srv.ctl.Status(c.Request.Context())
	if err != nil {
		response.HttpError(c, errors.NewUnavailableHTTPError("Event loop not available"))
		return
	}
	response.OK(c, gin.H{
		"status":  "healthy",
		"service": "realtime-client",
		"stats":   st,
	})
}

func (srv *HTTPServer) page(c *gin.Context) {
	snap, err := srv.ctl.Snapshot(c.Request.Context())
	if err != nil {
		response.Error(c, err, srv.discord)
		return
	}
	response.OK(c, snap)
}

func (srv *HTTPServer) channels(c *gin.Context) {
	infos, err := srv.ctl.Channels(c.Request.Context())
	if err != nil {
		response.Error(c, err, srv.discord)
		return
	}
	response.OK(c, infos)
}

func (srv *HTTPServer) addProject(c *gin.Context) {
	id := c.Param("id")
	added, err := srv.ctl.AddProject(c.Request.Context(), id)
	if err != nil {
		response.ErrorWithMap(c, err, errMap)
		return
	}
	response.OK(c, gin.H{"project_id": id, "added": added})
}

func (srv *HTTPServer) removeProject(c *gin.Context) {
	id := c.Param("id")
	removed, err := srv.ctl.RemoveProject(c.Request.Context(), id)
	if err != nil {
		response.ErrorWithMap(c, err, errMap)
		return
	}
	if !removed {
		response.HttpError(c, errors.NewNotFoundHTTPError("Project not rendered"))
		return
	}
	response.OK(c, gin.H{"project_id": id, "removed": true})
}

// dismiss is idempotent: a second dismissal answers 200 with dismissed=false.
func (srv *HTTPServer) dismiss(c *gin.Context) {
	id := c.Param("element_id")
	if !notification.IsElementID(id) {
		response.Error(c, errors.NewValidationError(response.ValidationErrorCode, "element_id",
			"must name a notification or toast"), nil)
		return
	}
	dismissed, err := srv.ctl.Dismiss(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err, srv.discord)
		return
	}
	response.OK(c, gin.H{"element_id": id, "dismissed": dismissed})
}
