// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/startupbridge/internal/app/store/activity"
	listingstore "github.com/dalemusser/startupbridge/internal/app/store/listings"
	messagestore "github.com/dalemusser/startupbridge/internal/app/store/messages"
	needstore "github.com/dalemusser/startupbridge/internal/app/store/needs"
	"github.com/dalemusser/startupbridge/internal/app/system/auth"
	"github.com/dalemusser/startupbridge/internal/app/system/ratelimit"
)

// DBDeps holds the back-end dependencies for the app. Every store lives in
// process memory, so a restart starts from the seed catalog again.
type DBDeps struct {
	Listings *listingstore.Store
	Needs    *needstore.Store
	Activity *activity.Store
	Messages *messagestore.Store

	Identity     *auth.StaticProvider
	LoginLimiter *ratelimit.LoginLimiter
}
