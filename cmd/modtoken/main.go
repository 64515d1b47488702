// Команда modtoken выпускает JWT для модераторов.
// Ключ подписи берётся из того же конфига, что и у сервера.
package main

import (
	"flag"
	"os"
	"time"

	"halarcraft/internal/config"
	"halarcraft/internal/lib/jwt"

	"github.com/fatih/color"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file")
		moderator  = flag.String("moderator", "", "moderator name for the token subject")
		ttl        = flag.Duration("ttl", 0, "token lifetime, defaults to moderation.token_ttl")
	)
	flag.Parse()

	if *configPath == "" {
		*configPath = os.Getenv("CONFIG_PATH")
	}
	if *configPath == "" {
		color.Red("config path is required (--config or CONFIG_PATH)")
		os.Exit(1)
	}
	if *moderator == "" {
		color.Red("--moderator is required")
		os.Exit(1)
	}

	cfg := config.MustLoadPath(*configPath)

	duration := cfg.Moderation.TokenTTL
	if *ttl > 0 {
		duration = *ttl
	}

	token, err := jwt.NewModeratorToken(*moderator, []byte(cfg.Moderation.SigningKey), duration)
	if err != nil {
		color.Red("failed to issue token: %v", err)
		os.Exit(1)
	}

	color.Green("moderator token for %s (valid %s):", *moderator, duration)
	color.Cyan("%s", token)
	color.Yellow("expires at %s", time.Now().Add(duration).Format(time.RFC3339))
}
