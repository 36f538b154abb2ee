package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/client"
)

var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render("error:"), err)
		os.Exit(1)
	}
}

// settings resolves every persistent flag from the command line first, then from ERP_* env
// variables, then from the flag default.
type settings struct {
	v *viper.Viper
}

func (s settings) identity() client.Identity {
	return client.Identity{
		UserID:       s.v.GetString("user_id"),
		Role:         s.v.GetString("user_role"),
		BusinessUnit: s.v.GetString("user_bu"),
	}
}

func (s settings) client() *client.Client {
	return client.New(s.v.GetString("api_url"), s.identity(), client.WithLanguage(s.v.GetString("lang")))
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cfg := settings{v: v}

	rootCmd := &cobra.Command{
		Use:           "tmplctl",
		Short:         "Preview task templates and turn them into project tasks",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogger(v.GetBool("verbose"))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("api-url", "http://localhost:8080", "Base URL of the task template API (ERP_API_URL)")
	flags.String("user-id", "", "Acting user id (ERP_USER_ID)")
	flags.String("role", "", "Acting user role (ERP_USER_ROLE)")
	flags.String("bu", "", "Acting user business unit (ERP_USER_BU)")
	flags.String("lang", "en", "Language of server error messages (ERP_LANG)")
	flags.BoolP("verbose", "v", false, "Log requests to stderr")

	bindings := map[string]string{
		"api_url":   "api-url",
		"user_id":   "user-id",
		"user_role": "role",
		"user_bu":   "bu",
		"lang":      "lang",
		"verbose":   "verbose",
	}
	for key, flag := range bindings {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
	v.SetEnvPrefix("ERP")
	v.AutomaticEnv()

	rootCmd.AddCommand(templatesCmd(cfg))
	rootCmd.AddCommand(previewCmd(cfg))
	rootCmd.AddCommand(localCmd(cfg))
	rootCmd.AddCommand(generateCmd(cfg))

	return rootCmd
}

func initLogger(verbose bool) error {
	logger := zap.NewNop()
	if verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = dev
	}
	zap.ReplaceGlobals(logger)
	return nil
}
