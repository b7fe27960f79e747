package greeting

import (
	"os"
	"os/user"
	"strings"
)

// CurrentUser returns the login name of the user running the process.
// A Windows "DOMAIN\name" account is reduced to "name".
func CurrentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return stripDomain(u.Username)
	}
	return userFromEnv(os.Getenv)
}

func userFromEnv(getenv func(string) string) string {
	for _, key := range []string{"USER", "USERNAME"} {
		if v := getenv(key); v != "" {
			return stripDomain(v)
		}
	}
	return "unknown"
}

func stripDomain(name string) string {
	if i := strings.LastIndex(name, `\`); i >= 0 {
		return name[i+1:]
	}
	return name
}
