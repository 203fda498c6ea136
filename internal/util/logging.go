package util

import (
	"fmt"
	"log"
)

// LogError пишет ошибку в лог и возвращает её обёрнутой тем же сообщением
func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}
