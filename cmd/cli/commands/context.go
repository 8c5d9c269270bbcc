package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yathwxk/Community-Assistance-Platform/internal/config"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/clients/helpdeskclient"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/services"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/postgres"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/redisstore"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/session"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/view"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	API      *helpdeskclient.Client
	Sessions *session.Manager
	Database *postgres.DB      // nil unless sessions are kept in PostgreSQL
	Cache    *redisstore.Store // nil unless sessions are kept in Redis
	Terminal *Terminal
	View     *view.Renderer
	Logger   *zap.Logger
	Ctx      context.Context
}

func (app *AppContext) dashboard() *services.Dashboard {
	return services.NewDashboard(app.API, app.Sessions, app.Terminal, app.Terminal, app.Logger)
}

// outcomeError maps an action outcome to the command's exit status.
// The user has already been told what happened.
func outcomeError(action string, outcome services.ActionOutcome) error {
	switch outcome {
	case services.OutcomeUnauthenticated:
		return services.ErrNotAuthenticated
	case services.OutcomeFailed:
		return fmt.Errorf("%s failed", action)
	}
	return nil
}

var errMemberUnavailable = errors.New("member details unavailable")
