package commands

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/services"
)

func (app *AppContext) community(onRender func(services.RosterView)) *services.Community {
	return services.NewCommunity(app.API, app.Terminal, app.Logger, app.Cfg.SearchDebounce, onRender)
}

func memberFilterFromFlags(cmd *cobra.Command) (services.MemberFilter, error) {
	roleFlag, _ := cmd.Flags().GetString("role")
	activityFlag, _ := cmd.Flags().GetString("activity")
	minFlag, _ := cmd.Flags().GetString("min-rating")
	search, _ := cmd.Flags().GetString("search")

	role, err := parseRole(roleFlag)
	if err != nil {
		return services.MemberFilter{}, err
	}
	activity, err := parseActivity(activityFlag)
	if err != nil {
		return services.MemberFilter{}, err
	}
	minRating, err := parseMinRating(minFlag)
	if err != nil {
		return services.MemberFilter{}, err
	}

	return services.MemberFilter{
		Role:          role,
		ActivityLevel: activity,
		MinRating:     minRating,
		Search:        search,
	}, nil
}

func addMemberFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("role", "", "Only show VOLUNTEER or RESIDENT members")
	cmd.Flags().String("activity", "", "Only show an activity level, e.g. very-active")
	cmd.Flags().String("min-rating", "", "Only show members rated at least this")
	cmd.Flags().String("search", "", "Only show members whose name contains this")
}

// CommunityCmd creates the community command
func CommunityCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "community",
		Short: "Show community members and stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := memberFilterFromFlags(cmd)
			if err != nil {
				return err
			}

			app.Logger.Debug("community command", zap.Any("filter", filter))

			c := app.community(nil)
			defer c.Close()

			c.SetCriteria(filter)
			app.View.Roster(c.Load(app.Ctx))
			return nil
		},
	}

	addMemberFilterFlags(cmd)

	return cmd
}

// MemberCmd creates the member command
func MemberCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "member <member_id>",
		Short: "Show a member's profile, recent requests and reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID, err := parseID("member_id", args[0])
			if err != nil {
				return err
			}

			c := app.community(nil)
			defer c.Close()

			member, ok := c.ViewMember(app.Ctx, memberID)
			if !ok {
				return errMemberUnavailable
			}
			app.View.MemberDetail(member)
			return nil
		},
	}
}

// ContactCmd creates the contact command
func ContactCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "contact <member_id>",
		Short: "Contact a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID, err := parseID("member_id", args[0])
			if err != nil {
				return err
			}
			app.community(nil).Contact(memberID)
			return nil
		},
	}
}

// BrowseCmd creates the browse command: a live roster where typed text
// searches by name once typing pauses
func BrowseCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the community roster interactively with live search",
		Long: `Browse the community roster interactively. Any text you enter searches
member names; the roster is re-filtered once you stop typing.

Commands start with ':'. Type ':help' to list them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := memberFilterFromFlags(cmd)
			if err != nil {
				return err
			}

			// Debounced renders arrive on the timer goroutine; everything
			// else writes while holding outMu
			var outMu sync.Mutex
			c := app.community(func(view services.RosterView) {
				outMu.Lock()
				defer outMu.Unlock()
				app.View.Roster(view)
			})
			defer c.Close()

			c.SetCriteria(filter)
			app.View.Roster(c.Load(app.Ctx))

			for {
				line, err := app.Terminal.ReadLine("")
				if err != nil {
					return nil
				}

				outMu.Lock()
				done, err := browseLine(app, c, line)
				if err != nil {
					app.View.Error(err.Error())
				}
				outMu.Unlock()
				if done {
					return nil
				}
			}
		},
	}

	addMemberFilterFlags(cmd)

	return cmd
}

const browseHelp = `  <text>              search member names
  :role <role>        filter by role (empty clears)
  :activity <level>   filter by activity level (empty clears)
  :min <rating>       filter by minimum rating (empty clears)
  :view <id>          show a member's profile
  :contact <id>       contact a member
  :clear              clear the search
  :refresh            re-fetch the roster
  :quit               leave`

// browseLine handles one line of browse input and reports whether to stop
func browseLine(app *AppContext, c *services.Community, line string) (bool, error) {
	render := app.View.Roster
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		if line == "" {
			render(c.ClearSearch())
			return false, nil
		}
		c.Search(line)
		return false, nil
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(line, ":"), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "quit", "q", "exit":
		return true, nil
	case "help":
		app.Terminal.Alert("Browse commands:\n" + browseHelp)
	case "clear":
		render(c.ClearSearch())
	case "refresh":
		render(c.Refresh(app.Ctx))
	case "role":
		role, err := parseRole(arg)
		if err != nil {
			return false, err
		}
		render(c.SetRole(role))
	case "activity":
		level, err := parseActivity(arg)
		if err != nil {
			return false, err
		}
		render(c.SetActivity(level))
	case "min":
		minRating, err := parseMinRating(arg)
		if err != nil {
			return false, err
		}
		render(c.SetMinRating(minRating))
	case "view":
		memberID, err := parseID("member_id", arg)
		if err != nil {
			return false, err
		}
		if member, ok := c.ViewMember(app.Ctx, memberID); ok {
			app.View.MemberDetail(member)
		}
	case "contact":
		memberID, err := parseID("member_id", arg)
		if err != nil {
			return false, err
		}
		c.Contact(memberID)
	default:
		app.Terminal.Alert("Unknown command :" + name + " (type ':help')")
	}
	return false, nil
}
