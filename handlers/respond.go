package handlers

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"tourdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError reports a service error. Scripts get a JSON status; form posts
// are redirected back with a flash_error cookie.
func respondError(c *gin.Context, err error, redirect string) {
	status := utils.StatusFor(err)
	message := utils.UserMessage(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Error("Request failed", zap.Error(err))
	}
	if utils.WantsJSON(c) || redirect == "" {
		c.JSON(status, gin.H{"error": message})
		return
	}
	utils.SetFlash(c, utils.FlashErrorCookie, message)
	c.Redirect(http.StatusFound, redirect)
}

// respondSaved reports a successful write.
func respondSaved(c *gin.Context, status int, message, redirect string, data any) {
	if utils.WantsJSON(c) || redirect == "" {
		c.JSON(status, gin.H{"success": true, "message": message, "data": data})
		return
	}
	utils.SetFlash(c, utils.FlashSuccessCookie, message)
	c.Redirect(http.StatusFound, redirect)
}

// bindInput decodes JSON or form bodies depending on Content-Type.
func bindInput(c *gin.Context, dst any, redirect string) bool {
	if err := c.ShouldBind(dst); err != nil {
		getLogger(c).Debug("Invalid request body", zap.Error(err))
		respondError(c, utils.NewValidationError("body", "Invalid request: "+err.Error()), redirect)
		return false
	}
	return true
}

// pageData wraps page payloads with any pending flash messages.
func pageData(c *gin.Context, data gin.H) gin.H {
	success, failure := utils.ConsumeFlash(c)
	if data == nil {
		data = gin.H{}
	}
	if success != "" {
		data["flash_success"] = success
	}
	if failure != "" {
		data["flash_error"] = failure
	}
	return data
}

// dataTable is the response shape consumed by the back-office tables.
type dataTable struct {
	Data []gin.H `json:"data"`
}

// actionLink is one button rendered in a datatable action cell.
type actionLink struct {
	Label  string
	Href   string
	Method string
	Class  string
}

// renderActions builds escaped action markup. Links with a Method other than
// GET carry it in data-method for the front end to submit.
func renderActions(links ...actionLink) string {
	var b strings.Builder
	for i, l := range links {
		if i > 0 {
			b.WriteByte(' ')
		}
		method := l.Method
		if method == "" {
			method = http.MethodGet
		}
		fmt.Fprintf(&b, `<a href="%s" class="%s" data-method="%s">%s</a>`,
			html.EscapeString(l.Href), html.EscapeString(l.Class), method, html.EscapeString(l.Label))
	}
	return b.String()
}

func editDeleteActions(base, id string) string {
	return renderActions(
		actionLink{Label: "Edit", Href: base + "/" + id + "/edit", Class: "btn btn-sm btn-primary"},
		actionLink{Label: "Delete", Href: base + "/" + id, Method: http.MethodDelete, Class: "btn btn-sm btn-danger"},
	)
}
