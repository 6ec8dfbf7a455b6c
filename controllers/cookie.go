package controllers

import (
	"net/http"
	"time"

	"shopprr-backend/config"
)

// setSessionCookie writes the session cookie using the shared policy.
// Customer and admin flows differ only in the ttl they pass.
func setSessionCookie(w http.ResponseWriter, policy config.SessionPolicy, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     policy.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		SameSite: policy.SameSite,
		Secure:   policy.Secure,
		HttpOnly: true,
	})
}

// clearSessionCookie expires the session cookie on the client. The token
// itself is not revoked server-side; it lapses at its natural expiry.
func clearSessionCookie(w http.ResponseWriter, policy config.SessionPolicy) {
	http.SetCookie(w, &http.Cookie{
		Name:     policy.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: policy.SameSite,
		Secure:   policy.Secure,
		HttpOnly: true,
	})
}
