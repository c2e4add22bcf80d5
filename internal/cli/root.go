package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pratik-mahalle/calendrical/internal/domain/calendar"
	"github.com/pratik-mahalle/calendrical/internal/pkg/logger"
	"github.com/pratik-mahalle/calendrical/internal/services"
	"github.com/pratik-mahalle/calendrical/pkg/client"
	"github.com/pratik-mahalle/calendrical/pkg/datetime"
	"github.com/pratik-mahalle/calendrical/pkg/tzdb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// state is everything one command tree shares
type state struct {
	v            *viper.Viper
	cfgFile      string
	outputFormat string
	serverURL    string
	zone         string

	// rules replaces the host zone database when set
	rules   datetime.ZoneRules
	service calendar.Service
}

func newState() *state {
	return &state{v: viper.New()}
}

// Execute runs the calendrical command line
func Execute() error {
	return newRootCmd(newState()).Execute()
}

func newRootCmd(st *state) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "calendrical",
		Short: "calendrical - calendar and time zone arithmetic",
		Long: `calendrical converts between instants and local date-times in IANA
time zones and does calendar arithmetic on them. It works against the host
zone database, or against a calendrical server when --server is given.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := st.initConfig(); err != nil {
				return err
			}
			if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
				return nil
			}
			return st.initService()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&st.cfgFile, "config", "", "config file (default $HOME/.calendrical/config.yaml)")
	flags.StringVarP(&st.outputFormat, "output", "o", "", "output format: table, json, yaml")
	flags.StringVar(&st.serverURL, "server", "", "server URL; calculations run locally when empty")
	flags.StringVarP(&st.zone, "zone", "z", "", "time zone id (default: the system zone)")

	_ = st.v.BindPFlag("output", flags.Lookup("output"))
	_ = st.v.BindPFlag("server_url", flags.Lookup("server"))
	_ = st.v.BindPFlag("zone", flags.Lookup("zone"))

	rootCmd.AddCommand(newLocalCmd(st))
	rootCmd.AddCommand(newInstantCmd(st))
	rootCmd.AddCommand(newPlusCmd(st))
	rootCmd.AddCommand(newUntilCmd(st))
	rootCmd.AddCommand(newPeriodCmd(st))
	rootCmd.AddCommand(newDateCmd(st))
	rootCmd.AddCommand(newOffsetCmd(st))
	rootCmd.AddCommand(newZonesCmd(st))
	rootCmd.AddCommand(newConfigCmd(st))

	return rootCmd
}

func (st *state) initConfig() error {
	if st.cfgFile != "" {
		st.v.SetConfigFile(st.cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return err
		}
		st.v.AddConfigPath(dir)
		st.v.SetConfigName("config")
		st.v.SetConfigType("yaml")
	}

	st.v.SetEnvPrefix("CALENDRICAL")
	st.v.AutomaticEnv()

	st.v.SetDefault("output", "table")
	st.v.SetDefault("log_level", "warn")

	if err := st.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// initService picks the remote client when a server is configured and the
// local zone database otherwise
func (st *state) initService() error {
	if st.service != nil {
		return nil
	}

	if url := st.v.GetString("server_url"); url != "" {
		st.service = newRemoteService(client.NewClient(client.Config{
			BaseURL:   url,
			UserAgent: "calendrical-cli",
		}))
		return nil
	}

	log := logger.New(logger.Config{
		Level:      st.v.GetString("log_level"),
		Format:     "console",
		OutputPath: "stderr",
	})

	rules := st.rules
	if rules == nil {
		provider, err := tzdb.New(tzdb.Config{
			ZoneinfoDir: st.v.GetString("zoneinfo_dir"),
			CacheSize:   st.v.GetInt("zone_cache_size"),
		}, log)
		if err != nil {
			return err
		}
		rules = provider
	}
	st.service = services.NewCalendarService(datetime.NewZones(rules), log)
	return nil
}

func (st *state) getOutputFormat() string {
	return st.v.GetString("output")
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".calendrical"), nil
}
