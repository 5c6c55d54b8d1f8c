package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/godruoyi/go-snowflake"
)

const (
	CookieKey        = "AMANHIMSELF_BLOG_USERNAME"
	DefaultAvatarURL = "https://avatars.githubusercontent.com/u/10234615?v=4"

	usernameCookieMaxAge = 365 * 24 * time.Hour
)

func generateUsername() string {
	return "user_" + strconv.FormatUint(snowflake.ID(), 10)
}

func getAvatarURL(username string) string {
	parts := strings.Split(username, "_")

	if len(parts) != 2 {
		return DefaultAvatarURL
	}

	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return DefaultAvatarURL
	}

	return fmt.Sprintf("https://robohash.org/%d?set=set4", id)
}

// usernameFromRequest returns the commenter's username cookie, minting one
// and setting it on the response when the visitor has none yet.
func usernameFromRequest(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(CookieKey); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	username := generateUsername()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieKey,
		Value:    username,
		Path:     "/",
		MaxAge:   int(usernameCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return username
}
