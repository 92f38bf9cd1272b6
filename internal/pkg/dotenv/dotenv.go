package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подтягивает .env и обрабатывает флаг -port, который имеет
// приоритет над переменной окружения PORT. Удобно поднимать второй
// экземпляр сервиса локально, не трогая .env.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
