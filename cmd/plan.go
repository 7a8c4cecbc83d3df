package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"festeasy/config"
	"festeasy/models"
	ai "festeasy/services/intelligence"
	"festeasy/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const cliSessionKey = "cli"

var (
	planBudget   float64
	planLocation string
	planConfirm  bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate one party plan against the seed catalog and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadConfig(cfgFile)
		logger := utils.GetLogger()
		defer logger.Sync()

		a := newApp(cmd.Context(), config.AppConfig, logger)
		defer a.Close()

		req := models.PlanRequest{Budget: planBudget, Location: planLocation}
		return runPlan(cmd.Context(), a, cmd.OutOrStdout(), req, planConfirm)
	},
}

func init() {
	planCmd.Flags().Float64Var(&planBudget, "budget", 0, "total budget in MXN")
	planCmd.Flags().StringVar(&planLocation, "location", "", "event city")
	planCmd.Flags().BoolVar(&planConfirm, "confirm", false, "replace the cart with the plan and print it")
	planCmd.Flags().Duration("timeout", 0, "remote call timeout (PLANNER_TIMEOUT)")
	planCmd.Flags().String("model", "", "Gemini model (GEMINI_MODEL)")
	viper.BindPFlag("PLANNER_TIMEOUT", planCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("GEMINI_MODEL", planCmd.Flags().Lookup("model"))
	planCmd.MarkFlagRequired("budget")
	planCmd.MarkFlagRequired("location")
}

// runPlan writes the proposed plan, and the cart when confirm is set, to out
// as JSON. Planner failures come back as the user-facing message only; the
// cause is logged.
func runPlan(ctx context.Context, a *app, out io.Writer, req models.PlanRequest, confirm bool) error {
	plan, err := a.workflow.Propose(ctx, cliSessionKey, req)
	if err != nil {
		a.logger.Debug("plan command failed", zap.Error(err))
		return errors.New(ai.UserMessage(err))
	}

	result := map[string]any{"plan": plan}
	if confirm {
		if _, err := a.workflow.Confirm(ctx, cliSessionKey); err != nil {
			return err
		}
		result["cart"] = models.CartView{Items: a.store.Cart(), Total: a.store.CartTotal()}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
