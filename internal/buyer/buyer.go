// Package buyer maps requests to baskets through an opaque buyer token kept
// in a client cookie.
//
// The token is a bearer capability: whoever presents it can read and change
// the basket. It is neither signed nor tied to an account.
package buyer

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Keoroanthony/storefront/internal/models"
	"github.com/Keoroanthony/storefront/internal/store"
)

const CookieName = "buyerId"

// ErrNoBuyerID means the request carries no buyer cookie at all.
var ErrNoBuyerID = errors.New("no buyer id on request")

type Resolver struct {
	baskets store.BasketStore
	ttl     time.Duration
	secure  bool
}

func NewResolver(baskets store.BasketStore, ttl time.Duration, secure bool) *Resolver {
	return &Resolver{baskets: baskets, ttl: ttl, secure: secure}
}

// BuyerID returns the token carried by the request, if any.
func BuyerID(c *gin.Context) (string, bool) {
	value, err := c.Cookie(CookieName)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

// RetrieveBasket loads the basket for the request's buyer token. It returns
// ErrNoBuyerID when there is no token and store.ErrNotFound when the token
// matches no basket.
func (r *Resolver) RetrieveBasket(ctx context.Context, c *gin.Context) (*models.Basket, error) {
	buyerID, ok := BuyerID(c)
	if !ok {
		return nil, ErrNoBuyerID
	}
	return r.baskets.FindByBuyer(ctx, buyerID)
}

// CreateBasket issues a fresh token to the client and returns an unsaved
// basket owned by it. Saving is left to the caller.
func (r *Resolver) CreateBasket(c *gin.Context) *models.Basket {
	buyerID := uuid.NewString()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, buyerID, int(r.ttl.Seconds()), "/", "", r.secure, true)

	return &models.Basket{BuyerID: buyerID}
}

// RetrieveOrCreate returns the existing basket or a new unsaved one when the
// request has no token or a token with no basket behind it.
func (r *Resolver) RetrieveOrCreate(ctx context.Context, c *gin.Context) (*models.Basket, error) {
	basket, err := r.RetrieveBasket(ctx, c)
	switch {
	case err == nil:
		return basket, nil
	case errors.Is(err, ErrNoBuyerID), errors.Is(err, store.ErrNotFound):
		return r.CreateBasket(c), nil
	default:
		return nil, err
	}
}
