package handlers_test

import (
	"net/http"
	"testing"

	"github.com/abdulaziz1812/service-review-system-server/handlers"
	"github.com/abdulaziz1812/service-review-system-server/utils"

	"github.com/stretchr/testify/require"
)

func TestIssueTokenSetsHTTPOnlyCookie(t *testing.T) {
	r := newTestRouter(&stubCatalog{}, &stubReviews{}, &stubAccounts{})

	w := doRequest(r, http.MethodPost, "/jwt", `{"email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	res := w.Result()
	var cookie *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == handlers.TokenCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	require.True(t, cookie.HttpOnly)
	require.NotEmpty(t, cookie.Value)
	require.Equal(t, int(handlers.TokenTTL.Seconds()), cookie.MaxAge)

	// The cookie carries a verifiable credential for the submitted identity.
	email, err := utils.ExtractEmailFromToken(cookie.Value)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", email)
}

func TestLogoutExpiresCookie(t *testing.T) {
	r := newTestRouter(&stubCatalog{}, &stubReviews{}, &stubAccounts{})

	w := doRequest(r, http.MethodPost, "/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	res := w.Result()
	var cookie *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == handlers.TokenCookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	require.Empty(t, cookie.Value)
	require.Negative(t, cookie.MaxAge)
}

func TestIssueTokenRejectsMalformedBody(t *testing.T) {
	r := newTestRouter(&stubCatalog{}, &stubReviews{}, &stubAccounts{})

	w := doRequest(r, http.MethodPost, "/jwt", `{not json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
