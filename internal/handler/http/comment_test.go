package http

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/storefront/internal/app"
	"github.com/MKhiriev/storefront/internal/service"
	"github.com/MKhiriev/storefront/models"
)

func TestComment(t *testing.T) {
	h, m := newTestHandler(t)
	cookie := loginCookie(t, h, 7)

	m.auth.EXPECT().RequireAuthenticated(gomock.Any(), int64(7)).Return(models.User{ID: 7}, nil)
	m.comment.EXPECT().AddComment(gomock.Any(), int64(3), int64(7), "とても良い商品でした").Return(nil)

	form := url.Values{"content": {"とても良い商品でした"}}
	req := newFormRequest(http.MethodPost, "/comments/3", form.Encode())
	req.AddCookie(cookie)
	rr := serve(h, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/users/7", rr.Header().Get("Location"))
}

func TestComment_Anonymous(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().RequireAuthenticated(gomock.Any(), int64(0)).Return(models.User{}, service.ErrPermissionDenied)

	rr := serve(h, newFormRequest(http.MethodPost, "/comments/3", "content=hi"))

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgLoginRequired)
}

func TestComment_Error(t *testing.T) {
	h, m := newTestHandler(t)
	cookie := loginCookie(t, h, 7)

	m.auth.EXPECT().RequireAuthenticated(gomock.Any(), int64(7)).Return(models.User{ID: 7}, nil)
	m.comment.EXPECT().AddComment(gomock.Any(), int64(3), int64(7), "hi").Return(errors.New("boom"))

	req := newFormRequest(http.MethodPost, "/comments/3", "content=hi")
	req.AddCookie(cookie)
	rr := serve(h, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
