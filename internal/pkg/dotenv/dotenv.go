package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подтягивает переменные из .env и применяет флаги командной строки.
// Отсутствие .env не ошибка: в контейнере конфигурация приходит из окружения.
func Load() error {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
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
