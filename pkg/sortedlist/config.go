package sortedlist

import (
	"context"

	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
)

// EnvKeyCheckInvariants is the environment variable that turns on CheckInvariants at start up.
const EnvKeyCheckInvariants = "SORTEDLIST_CHECK_INVARIANTS"

// CheckInvariants makes every mutating operation validate the whole list afterwards.
// A violation is logged and then raised as a panic, since it can only be caused by a bug.
//
// It is meant for debugging and testing, as validation walks every node.
// The setting is global and not safe to change while lists are in use.
var CheckInvariants bool

func init() {
	enabled, err := lookupCheckInvariants()
	if err != nil {
		logger.Warn(context.Background(), "invalid invariant checking setting, checking stays disabled",
			logging.Field("env", EnvKeyCheckInvariants),
			logging.ErrField(err))
		return
	}
	CheckInvariants = enabled
}

func lookupCheckInvariants() (bool, error) {
	enabled, ok, err := env.Lookup[bool](EnvKeyCheckInvariants)
	if err != nil || !ok {
		return false, err
	}
	return enabled, nil
}
