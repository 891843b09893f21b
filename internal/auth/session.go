package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	SessionName = "parkreg-session"

	sessionOperatorID = "operator_id"
	sessionUsername   = "username"
	sessionRole       = "role"
)

// NewSessionStore returns the cookie store backing the operator console login.
func NewSessionStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(RefreshTokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// StartSession writes the operator identity into the session cookie.
func StartSession(c *gin.Context, store sessions.Store, op Operator) error {
	session, _ := store.Get(c.Request, SessionName)
	session.Values[sessionOperatorID] = op.ID
	session.Values[sessionUsername] = op.Username
	session.Values[sessionRole] = op.Role
	return session.Save(c.Request, c.Writer)
}

func EndSession(c *gin.Context, store sessions.Store) error {
	session, _ := store.Get(c.Request, SessionName)
	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1
	return session.Save(c.Request, c.Writer)
}

func operatorFromSession(r *http.Request, store sessions.Store) (Operator, bool) {
	if store == nil {
		return Operator{}, false
	}
	session, err := store.Get(r, SessionName)
	if err != nil || session.IsNew {
		return Operator{}, false
	}

	id, idOk := session.Values[sessionOperatorID].(int)
	username, _ := session.Values[sessionUsername].(string)
	role, roleOk := session.Values[sessionRole].(string)
	if !idOk || id == 0 || !roleOk {
		return Operator{}, false
	}
	return Operator{ID: id, Username: username, Role: role}, true
}
