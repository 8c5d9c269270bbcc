package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yathwxk/Community-Assistance-Platform/pkg/clients/helpdeskclient"
	"github.com/yathwxk/Community-Assistance-Platform/pkg/core/services"
)

// DashboardCmd creates the dashboard command
func DashboardCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show available requests, your requests or your assignments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tabName, _ := cmd.Flags().GetString("tab")
			categoryFlag, _ := cmd.Flags().GetString("category")
			urgencyFlag, _ := cmd.Flags().GetString("urgency")
			search, _ := cmd.Flags().GetString("search")

			tab, err := services.ParseTab(tabName)
			if err != nil {
				return err
			}
			category, err := parseCategory(categoryFlag)
			if err != nil {
				return err
			}
			urgency, err := parseUrgency(urgencyFlag)
			if err != nil {
				return err
			}

			app.Logger.Debug("dashboard command",
				zap.String("tab", tabName),
				zap.String("category", string(category)),
				zap.String("urgency", string(urgency)),
				zap.String("search", search))

			d := app.dashboard()
			d.UseFilter(helpdeskclient.RequestFilter{
				Category: category,
				Urgency:  urgency,
				Search:   strings.TrimSpace(search),
			})
			view, err := d.Init(app.Ctx)
			if err != nil {
				return err
			}
			if tab != services.TabAvailable {
				if view, err = d.ShowTab(app.Ctx, tab); err != nil {
					return err
				}
			}

			fmt.Fprintf(app.Terminal.Out(), "\nWelcome back, %s!\n\n", d.User().Name)
			app.View.TabView(view)
			return nil
		},
	}

	cmd.Flags().String("tab", string(services.TabAvailable), "Tab to show: available, my-requests or my-assignments")
	cmd.Flags().String("category", "", "Filter available requests by category")
	cmd.Flags().String("urgency", "", "Filter available requests by urgency")
	cmd.Flags().String("search", "", "Search available requests")

	return cmd
}

// AcceptCmd creates the accept command
func AcceptCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "accept <request_id>",
		Short: "Volunteer to help with an open request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID, err := parseID("request_id", args[0])
			if err != nil {
				return err
			}

			app.Logger.Debug("accept command", zap.Int64("request_id", requestID))

			d := app.dashboard()
			outcome := d.Accept(app.Ctx, requestID)
			if outcome == services.OutcomeSucceeded {
				app.View.TabView(d.View())
			}
			return outcomeError("accept", outcome)
		},
	}
}

// CompleteCmd creates the complete command
func CompleteCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <request_id>",
		Short: "Mark a request you are helping with as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID, err := parseID("request_id", args[0])
			if err != nil {
				return err
			}

			app.Logger.Debug("complete command", zap.Int64("request_id", requestID))

			d := app.dashboard()
			outcome := d.Complete(app.Ctx, requestID)
			if outcome == services.OutcomeSucceeded {
				app.View.TabView(d.View())
			}
			return outcomeError("complete", outcome)
		},
	}
}

// EditCmd creates the edit command
func EditCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <request_id>",
		Short: "Edit one of your open requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID, err := parseID("request_id", args[0])
			if err != nil {
				return err
			}
			app.dashboard().EditRequest(requestID)
			return nil
		},
	}
}

// DeleteCmd creates the delete command
func DeleteCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <request_id>",
		Short: "Delete one of your open requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID, err := parseID("request_id", args[0])
			if err != nil {
				return err
			}
			app.dashboard().DeleteRequest(requestID)
			return nil
		},
	}
}

// ReviewCmd creates the review command
func ReviewCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review <request_id>",
		Short: "Rate the volunteer who completed one of your requests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requestID, err := parseID("request_id", args[0])
			if err != nil {
				return err
			}
			volunteerID, _ := cmd.Flags().GetInt64("volunteer")
			rating, _ := cmd.Flags().GetInt("rating")
			comment, _ := cmd.Flags().GetString("comment")

			app.Logger.Debug("review command",
				zap.Int64("request_id", requestID),
				zap.Int64("volunteer_id", volunteerID),
				zap.Int("rating", rating))

			d := app.dashboard()
			if _, ok := services.CheckAuth(app.Ctx, app.Sessions, app.Terminal); !ok {
				return services.ErrNotAuthenticated
			}

			form := d.OpenReview(requestID, volunteerID)
			form.Comment = strings.TrimSpace(comment)
			if cmd.Flags().Changed("rating") {
				form.Stars.Click(rating)
			} else if err := promptRating(app, form); err != nil {
				return err
			}

			app.View.ReviewForm(form)

			outcome := d.SubmitReview(app.Ctx)
			if outcome == services.OutcomeSucceeded {
				app.View.TabView(d.View())
			}
			return outcomeError("review", outcome)
		},
	}

	cmd.Flags().Int64("volunteer", 0, "ID of the volunteer who helped")
	cmd.Flags().Int("rating", 0, "Rating from 1 to 5")
	cmd.Flags().String("comment", "", "Optional comment")

	return cmd
}

// promptRating previews each entered rating on the star widget until one is confirmed
func promptRating(app *AppContext, form *services.ReviewForm) error {
	for {
		app.View.StarPicker(&form.Stars)
		line, err := app.Terminal.ReadLine("Rating (1-5, enter to confirm): ")
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			form.Stars.Leave()
			if form.Stars.Value() > 0 {
				return nil
			}
			app.Terminal.Alert("Please select a rating")
			continue
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > 5 {
			app.Terminal.Alert("Enter a number from 1 to 5")
			continue
		}
		form.Stars.Hover(n)
		form.Stars.Click(n)
	}
}

// PostCmd creates the post command
func PostCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new help request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			description, _ := cmd.Flags().GetString("description")
			categoryFlag, _ := cmd.Flags().GetString("category")
			urgencyFlag, _ := cmd.Flags().GetString("urgency")

			category, err := parseCategory(categoryFlag)
			if err != nil {
				return err
			}
			urgency, err := parseUrgency(urgencyFlag)
			if err != nil {
				return err
			}

			app.Logger.Debug("post command", zap.String("title", title), zap.String("category", string(category)))

			req, err := services.PostRequest(app.Ctx, app.API, app.Sessions, app.Terminal, app.Logger, services.PostRequestInput{
				Title:       strings.TrimSpace(title),
				Description: strings.TrimSpace(description),
				Category:    category,
				Urgency:     urgency,
			})
			if err != nil {
				return err
			}

			app.View.Success("Request posted")
			if req != nil {
				app.View.RequestCard(services.NewOwnRequestCard(*req))
			}
			return nil
		},
	}

	cmd.Flags().String("title", "", "Short title")
	cmd.Flags().String("description", "", "What you need help with")
	cmd.Flags().String("category", "OTHER", "Category, e.g. TOOLS or ERRANDS")
	cmd.Flags().String("urgency", "MEDIUM", "LOW, MEDIUM or HIGH")

	return cmd
}
