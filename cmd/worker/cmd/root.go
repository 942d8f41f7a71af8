package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/torxlabs/go-treasury/cmd/setup"
	helperFlag "github.com/torxlabs/go-treasury/internal/common/flag"
	"github.com/torxlabs/go-treasury/internal/common/graceful"
	"github.com/torxlabs/go-treasury/internal/common/log"
	"github.com/torxlabs/go-treasury/internal/config"
	"github.com/torxlabs/go-treasury/internal/deliveries/job"
	"github.com/torxlabs/go-treasury/internal/services"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to configuring and running a job",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().Bool(runJobCmdDryRun, false, "plan without moving money")
	runJobCmd.Flags().Bool(runJobCmdForce, false, "run even when pending transfers exist")
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List job name and version",
		Long:  ``,
		Run:   list,
	}
)

func list(ccmd *cobra.Command, args []string) {
	j := job.New(config.Config{}, &services.Services{})
	for version, l := range j.Routes {
		for name := range l {
			list := fmt.Sprintf("version=%s, name=%s", version, name)
			fmt.Println(list)
		}
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n={job-name} -v={job-version}",
		Run:     runJob,
	}
	runJobCmdName    = "name"
	runJobCmdVersion = "version"
	runJobCmdDryRun  = "dry-run"
	runJobCmdForce   = "force"
)

func runJob(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	dryRun, _ := ccmd.Flags().GetBool(runJobCmdDryRun)
	force, _ := ccmd.Flags().GetBool(runJobCmdForce)

	s, stoppers, err := setup.Init("job")
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stoppers...)

	j := job.New(s.Config, s.Service)
	j.Start(ctx, helperFlag.Job{
		JobName: name,
		Version: version,
		DryRun:  dryRun,
		Force:   force,
	})
	log.Info(ctx, "job server stopped!")
}
