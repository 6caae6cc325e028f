package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/icykcyber/genbot/cmd/bot"
	"github.com/icykcyber/genbot/internal/adapters/config"
	setupBot "github.com/icykcyber/genbot/internal/adapters/controller/telegram/setup"
	"github.com/icykcyber/genbot/internal/adapters/controller/web"
	"github.com/icykcyber/genbot/internal/domain/configurator"
	"github.com/icykcyber/genbot/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "genbot",
		Short: "Image generation configurator bot",
		Long: `genbot serves the image generation configurator mini-app and the
Telegram bot that receives the configurations it produces.`,
		Example: `  # Run the bot and the web server
  genbot serve --config config.yaml

  # Build a generation link
  genbot link --size 7 --count 3 --colors FF0000-00FF00 --bg 0000FF

  # Inspect a payload or a configurator query
  genbot decode gen_7_3_FF0000-00FF00_0000FF
  genbot decode "size=20&count=0&colors=FF0000"`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the yaml config (default: ./config.yaml)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Telegram bot and the configurator web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}

	var (
		size, count  int
		colors, bg   string
		botUsername  string
		withDeepLink bool
	)
	linkCmd := &cobra.Command{
		Use:   "link",
		Short: "Encode a configuration into a generation payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configurator.New()
			cfg.SetAspectIndex(size)
			cfg.SetImageCount(count)
			for _, token := range configurator.SplitColors(colors) {
				if !cfg.AddColor(token) {
					return fmt.Errorf("invalid or extra color %q", token)
				}
			}
			if bg != "" && !cfg.SetBackground(bg) {
				return fmt.Errorf("invalid background color %q", bg)
			}

			payload := configurator.EncodeLink(cfg)
			if withDeepLink {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), configurator.DeepLinkURL(botUsername, payload))
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), payload)
			return err
		},
	}
	linkCmd.Flags().IntVar(&size, "size", configurator.DefaultAspectIndex, "Aspect ratio index (0-14)")
	linkCmd.Flags().IntVar(&count, "count", configurator.DefaultImageCount, "Number of images (1-4)")
	linkCmd.Flags().StringVar(&colors, "colors", "", "Hyphen joined accent colors, e.g. FF0000-00FF00")
	linkCmd.Flags().StringVar(&bg, "bg", "", "Background color")
	linkCmd.Flags().StringVar(&botUsername, "bot", "icykcyber_bot", "Bot username used for the deep link")
	linkCmd.Flags().BoolVar(&withDeepLink, "url", false, "Print the t.me deep link instead of the bare payload")

	decodeCmd := &cobra.Command{
		Use:   "decode <payload|query>",
		Short: "Decode a generation payload or a configurator query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return decode(cmd.OutOrStdout(), args[0])
		},
	}

	rootCmd.RunE = serveCmd.RunE
	rootCmd.AddCommand(serveCmd, linkCmd, decodeCmd)
	return rootCmd
}

func serve(ctx context.Context, configPath string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get(configPath)

	b, err := bot.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}
	setupBot.Setup(b)

	webLogger, err := logger.Named("web")
	if err != nil {
		return err
	}
	server := web.New(web.Options{
		Host:        viper.GetString("web.host"),
		Port:        viper.GetInt("web.port"),
		BotUsername: viper.GetString("bot.username"),
		SessionTTL:  viper.GetDuration("web.session-ttl"),
		Debug:       viper.GetBool("settings.debug"),
	}, cfg.Redis.Sessions, webLogger)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		b.Start()
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Log.Info("Shutting down")

		b.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// decode prints the configuration behind a payload or a configurator query.
// A query may be given bare, with a leading '?', or as a full URL.
func decode(out io.Writer, input string) error {
	if strings.HasPrefix(input, configurator.LinkPrefix+"_") {
		cfg, err := configurator.ParseLink(input)
		if err != nil {
			return err
		}
		return printConfiguration(out, cfg, "")
	}

	rawQuery := strings.TrimPrefix(input, "?")
	if u, err := url.Parse(input); err == nil && u.Scheme != "" {
		rawQuery = u.RawQuery
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return fmt.Errorf("failed to parse query: %w", err)
	}

	cfg := configurator.New()
	res := configurator.DecodeQuery(values, cfg)
	for _, issue := range res.Issues {
		if _, err = fmt.Fprintf(out, "skipped: %v\n", issue); err != nil {
			return err
		}
	}
	return printConfiguration(out, cfg, res.MessageID)
}

func printConfiguration(out io.Writer, cfg *configurator.Configuration, messageID string) error {
	bg, ok := cfg.Background()
	if !ok {
		bg = "none"
	}
	colors := strings.Join(cfg.Colors(), " ")
	if colors == "" {
		colors = "none"
	}

	_, err := fmt.Fprintf(out, "aspect: %s (index %d)\nimages: %d\ncolors: %s\nbackground: %s\npayload: %s\n",
		cfg.Aspect(), cfg.AspectIndex(), cfg.ImageCount(), colors, bg, configurator.EncodeLink(cfg))
	if err != nil {
		return err
	}
	if messageID != "" {
		_, err = fmt.Fprintf(out, "message_id: %s\n", messageID)
	}
	return err
}
