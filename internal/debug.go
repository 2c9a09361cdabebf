package internal

import (
	"fmt"
	"log"
	"os"
	"os/user"
	"regexp"
	"sort"
	"strings"

	"github.com/earthboundkid/versioninfo/v2"
	"github.com/rm-hull/image-transform/internal/fileaccess"
)

const EnvPrefix = "IMAGE_TRANSFORM_"

var sensitiveRegex = regexp.MustCompile(`(?i)(PASSWORD|API_KEY|ACCESS_KEY|SECRET|TOKEN)`)

func ShowVersion() {
	log.Printf("Version: %s\n", versioninfo.Short())
}

func EnvironmentVars() {
	log.Println("Environment variables")
	for _, line := range environment(os.Environ(), EnvPrefix) {
		log.Printf("  %s\n", line)
	}
}

// environment returns the "KEY: value" pairs whose key starts with prefix,
// sorted by key, with sensitive values masked.
func environment(environ []string, prefix string) []string {
	lines := make([]string, 0)
	for _, entry := range environ {
		key, value, _ := strings.Cut(entry, "=")
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if sensitiveRegex.MatchString(key) {
			value = "********"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", key, value))
	}
	sort.Strings(lines)
	return lines
}

// AccessReport logs who we are running as and what we can do with each
// path, which is usually the first question when a save fails.
func AccessReport(checker fileaccess.Checker, paths ...string) {
	if currentUser, err := user.Current(); err != nil {
		log.Printf("Error getting current user: %v", err)
	} else {
		log.Printf("User: uid=%s(%s) gid=%s", currentUser.Uid, currentUser.Username, currentUser.Gid)
	}

	for _, line := range access(checker, paths) {
		log.Printf("  %s", line)
	}
}

func access(checker fileaccess.Checker, paths []string) []string {
	lines := make([]string, 0, len(paths))
	for _, path := range paths {
		if path == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: readable=%t writable=%t",
			path, checker.IsReadable(path), checker.IsWritable(path)))
	}
	return lines
}
