package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/x-xyz/goauction/domain"
)

type httpSuite struct {
	suite.Suite
}

func TestHttp(t *testing.T) {
	suite.Run(t, new(httpSuite))
}

func (s *httpSuite) resp(status int, data interface{}) (int, JsonResponse) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(MakeJsonResp(c, status, data))
	res := JsonResponse{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	return rec.Code, res
}

func (s *httpSuite) TestSuccess() {
	code, res := s.resp(http.StatusOK, "ok")
	s.Equal(http.StatusOK, code)
	s.Equal(JsonResponseStatusSuccess, res.Status)
	s.Equal("ok", res.Data)
}

func (s *httpSuite) TestErrorKinds() {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{domain.NewError(domain.ErrValidation, "Price cannot be 0"), http.StatusBadRequest, "Price cannot be 0"},
		{domain.NewError(domain.ErrAuthorization, "Only nft seller"), http.StatusForbidden, "Only nft seller"},
		{xerrors.Errorf("wrapped: %w", domain.NewError(domain.ErrState, "Auction has ended")), http.StatusConflict, "wrapped: Auction has ended"},
		{domain.ErrNotFound, http.StatusNotFound, domain.ErrNotFound.Error()},
		{errors.New("mongo down"), http.StatusInternalServerError, domain.ErrInternalServerError.Error()},
	}
	for _, t := range tests {
		code, res := s.resp(http.StatusInternalServerError, t.err)
		s.Equal(t.status, code)
		s.Equal(JsonResponseStatusFail, res.Status)
		s.Equal(t.msg, res.Data)
	}
}
