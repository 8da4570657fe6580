package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/memad/portfolio/internal/client"
)

// Config keys; each is also read from PORTFOLIOCTL_<KEY>.
const (
	cfgKeyServer = "server"
	cfgKeyToken  = "token"
	cfgKeyJSON   = "json"

	defaultServer  = "http://localhost:8080"
	configFileName = ".portfolioctl"
	configFileType = "yaml"
)

// cli carries per-invocation state shared by the subcommands.
type cli struct {
	v          *viper.Viper
	in         io.Reader
	out        io.Writer
	configFile string
	client     *client.Client
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	c := &cli{v: viper.New(), in: in, out: out}

	root := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Manage portfolio projects and presentations",
		Long:          `portfolioctl talks to a running portfolio server. Reads are public; changes need an admin token from "portfolioctl login".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (default: ~/.portfolioctl.yaml)")
	flags.String(cfgKeyServer, defaultServer, "portfolio server base URL")
	flags.String(cfgKeyToken, "", "admin session token")
	flags.Bool(cfgKeyJSON, false, "output as JSON")

	root.AddCommand(
		c.projectsCmd(),
		c.presentationsCmd(),
		c.loginCmd(),
		c.hashPasswordCmd(),
		c.versionCmd(),
	)
	return root
}

func (c *cli) init(cmd *cobra.Command) error {
	for _, key := range []string{cfgKeyServer, cfgKeyToken, cfgKeyJSON} {
		if err := c.v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	c.v.SetEnvPrefix("PORTFOLIOCTL")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	if c.configFile != "" {
		c.v.SetConfigFile(c.configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		c.v.SetConfigName(configFileName)
		c.v.SetConfigType(configFileType)
		c.v.AddConfigPath(home)
	}
	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(c.configFile != "" && errors.Is(err, os.ErrNotExist)) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	c.client = client.New(c.v.GetString(cfgKeyServer), client.WithToken(c.v.GetString(cfgKeyToken)))
	return nil
}

func (c *cli) jsonOutput() bool {
	return c.v.GetBool(cfgKeyJSON)
}

// saveToken writes token into the config file so later invocations pick it up.
func (c *cli) saveToken(token string) (string, error) {
	path := c.v.ConfigFileUsed()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate home directory: %w", err)
		}
		path = filepath.Join(home, configFileName+"."+configFileType)
	}

	file := viper.New()
	file.SetConfigFile(path)
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return "", fmt.Errorf("read config: %w", err)
		}
	}
	file.Set(cfgKeyToken, token)
	if file.GetString(cfgKeyServer) == "" {
		file.Set(cfgKeyServer, c.v.GetString(cfgKeyServer))
	}
	if err := file.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
