// Package middleware provides gin middleware shared by all handlers.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/altx-finance/ledger-engine/pkg/jsonresponse"
)

// Context keys set by Identity.
const (
	ActorKey = "actor"
	OwnerKey = "owner"
)

// Headers carrying the caller identity. Authentication happens upstream;
// the engine only needs an actor string for audit records and an owner
// string to scope reads.
const (
	ActorHeader = "X-Actor"
	OwnerHeader = "X-Owner"
)

var errActorRequired = errors.New("X-Actor header is required")

// Identity extracts the caller identity headers into the gin context.
// Requests without an actor are rejected. The owner defaults to the actor.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader(ActorHeader)
		if actor == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, jsonresponse.Error(errActorRequired))
			return
		}

		owner := c.GetHeader(OwnerHeader)
		if owner == "" {
			owner = actor
		}

		c.Set(ActorKey, actor)
		c.Set(OwnerKey, owner)

		c.Next()
	}
}

// Actor returns the actor set by Identity.
func Actor(c *gin.Context) string {
	return c.GetString(ActorKey)
}

// Owner returns the owner scope set by Identity.
func Owner(c *gin.Context) string {
	return c.GetString(OwnerKey)
}
