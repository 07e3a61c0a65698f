package listing

import (
	"net"
	"strconv"
	"strings"
)

// sessionEndingSubstrings mark links likely to end the requester's session.
var sessionEndingSubstrings = []string{"logout", "logoff", "exit", "signout"}

func isSessionEnding(s string) bool {
	for _, sub := range sessionEndingSubstrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func isDotEntry(name string) bool {
	return name == "." || name == ".."
}

// isFileName applies the listing heuristic: a dot anywhere means a file.
func isFileName(name string) bool {
	return strings.Contains(name, ".")
}

func collapseSlashes(p string) string {
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

func trimPrefixSetting(prefix string) string {
	return strings.TrimRight(prefix, " \t\r\n")
}

// stripWindowsPrefix returns the part of dir after the first occurrence of
// prefix. dir is matched with a trailing separator so that the prefix
// directory itself ("C:\var\www" for prefix "C:\var\www\") maps to the
// root. An empty prefix leaves dir unchanged.
func stripWindowsPrefix(dir, prefix string) (string, bool) {
	prefix = trimPrefixSetting(prefix)
	if prefix == "" {
		return dir, true
	}
	if !strings.HasSuffix(dir, `\`) && !strings.HasSuffix(dir, "/") {
		dir += `\`
	}
	_, after, found := strings.Cut(dir, prefix)
	return after, found
}

// linuxBase is the path segment placed before Linux directories. The
// placeholder default counts as no prefix.
func linuxBase(prefix string) string {
	prefix = trimPrefixSetting(prefix)
	if prefix == DefaultPathPrefix || prefix == "" {
		return ""
	}
	return prefix
}

// entryPath joins base, dir and name into an absolute URL path. Directory
// entries get a trailing slash.
func entryPath(base, dir, name string) string {
	head := strings.ReplaceAll("/"+base+"/"+dir+"/", `\`, "/")
	p := collapseSlashes(head + name)
	if !isFileName(name) && !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

func buildURL(cfg ParseConfig, path string) string {
	return string(cfg.Scheme) + "://" + net.JoinHostPort(cfg.Hostname, strconv.Itoa(cfg.Port)) + path
}
