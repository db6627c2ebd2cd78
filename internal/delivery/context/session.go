package context

import (
	"context"

	"waiter/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the key of the session admitted by the route guard.
const KeySession ContextKey = "session"

// BindSession stores the admitted session on c and on the request's context.Context.
func BindSession(c echo.Context, session entity.Session) {
	c.Set(string(KeySession), session)
	c.SetRequest(c.Request().WithContext(WithSession(c.Request().Context(), session)))
}

// Session returns the session the guard admitted for this request.
func Session(c echo.Context) (entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(entity.Session)

	return session, ok
}

// WithSession returns a new context with the session.
func WithSession(ctx context.Context, session entity.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}

// SessionFrom returns the session carried by ctx.
func SessionFrom(ctx context.Context) (entity.Session, bool) {
	session, ok := ctx.Value(KeySession).(entity.Session)

	return session, ok
}
