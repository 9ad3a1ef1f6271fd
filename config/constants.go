package config

import (
	"fmt"
	"os"
	"strings"
)

// AllowedConstants lists the keys the constants API may update. Everything
// else in the environment, the bot token above all, stays untouchable.
var AllowedConstants = []string{
	"AI_SYSTEM_MESSAGE",
	"AI_USER_MESSAGE_FIRST",
	"AI_USER_MESSAGE_SECOND",
	"AI_CHARACTER",
	"AI_ASSISTANT_MESSAGE",
	"AI_ERROR_MESSAGE",
}

func isAllowedConstant(key string) bool {
	for _, allowed := range AllowedConstants {
		if key == allowed {
			return true
		}
	}
	return false
}

// UpdateAI applies allow-listed values to the in-memory AI strings and
// rewrites the .env file at envPath, preserving any BOT_TOKEN lines already
// there. Keys outside the allow-list are ignored.
func (c *Config) UpdateAI(values map[string]string, envPath string) error {
	c.aiMu.Lock()
	for key, value := range values {
		if !isAllowedConstant(key) {
			continue
		}
		switch key {
		case "AI_SYSTEM_MESSAGE":
			c.ai.SystemMessage = value
		case "AI_USER_MESSAGE_FIRST":
			c.ai.UserMessageFirst = value
		case "AI_USER_MESSAGE_SECOND":
			c.ai.UserMessageSecond = value
		case "AI_CHARACTER":
			c.ai.Character = value
		case "AI_ASSISTANT_MESSAGE":
			c.ai.AssistantMessage = value
		case "AI_ERROR_MESSAGE":
			c.ai.ErrorMessage = value
		}
		os.Setenv(key, value)
	}
	ai := c.ai
	c.aiMu.Unlock()

	return writeEnvFile(envPath, ai)
}

// writeEnvFile rebuilds the .env file from the preserved token lines plus the
// current AI strings
func writeEnvFile(envPath string, ai AIText) error {
	var lines []string

	if data, err := os.ReadFile(envPath); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			if strings.HasPrefix(line, "BOT_TOKEN") {
				lines = append(lines, line)
			}
		}
	}

	entries := []struct {
		key   string
		value string
	}{
		{"AI_SYSTEM_MESSAGE", ai.SystemMessage},
		{"AI_USER_MESSAGE_FIRST", ai.UserMessageFirst},
		{"AI_USER_MESSAGE_SECOND", ai.UserMessageSecond},
		{"AI_CHARACTER", ai.Character},
		{"AI_ASSISTANT_MESSAGE", ai.AssistantMessage},
		{"AI_ERROR_MESSAGE", ai.ErrorMessage},
	}
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s=%s", entry.key, formatEnvValue(entry.value)))
	}

	if err := os.WriteFile(envPath, []byte(strings.Join(lines, "\n")), 0o600); err != nil {
		return fmt.Errorf("failed to write env file: %w", err)
	}
	return nil
}

// formatEnvValue quotes a value when it would otherwise break .env parsing
func formatEnvValue(value string) string {
	if strings.ContainsAny(value, "\n\"'") {
		return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
	}
	if strings.Contains(value, " ") {
		return `"` + value + `"`
	}
	return value
}
