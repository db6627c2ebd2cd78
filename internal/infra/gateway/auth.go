package gateway

import (
	"context"
	"net/http"

	"waiter/internal/domain/entity"
	domainerrors "waiter/internal/domain/errors"
	"waiter/internal/errors"
)

// identityRoutes are probed in order by CurrentUser.
var identityRoutes = []string{"/auth/me", "/users/me", "/me"}

// Login posts the waiter's credentials. A response without an access token or
// a role is rejected as invalid.
func (c *Client) Login(ctx context.Context, creds entity.Credentials) (*entity.LoginResult, error) {
	raw, err := c.do(ctx, http.MethodPost, "/auth/login/waiter", nil, creds)
	if err != nil {
		return nil, err
	}

	obj, ok := asObject(raw)
	if !ok {
		return nil, domainerrors.ErrInvalidLoginResponse.WithDetails("response is not an object")
	}

	token := obj.str("accessToken")
	user, ok := decodeUser(obj["user"])
	if token == "" || !ok || user.Role.IsZero() {
		return nil, domainerrors.ErrInvalidLoginResponse.WithDetails("missing access token or role")
	}

	return &entity.LoginResult{AccessToken: token, User: *user}, nil
}

// CurrentUser returns the first identity route answering with a name.
func (c *Client) CurrentUser(ctx context.Context) (*entity.StaffUser, error) {
	var errs []error
	for _, route := range identityRoutes {
		raw, err := c.do(ctx, http.MethodGet, route, nil, nil)
		if err != nil {
			errs = append(errs, err)

			continue
		}
		if user, ok := decodeUser(raw); ok && user.Name != "" {
			return user, nil
		}
	}

	if len(errs) == 0 {
		return nil, errors.New("no identity route returned a name")
	}

	return nil, errors.Join(errs...)
}
